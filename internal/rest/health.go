package rest

import (
	"net/http"

	"github.com/AMFarhan21/fres"
	"github.com/labstack/echo/v4"
)

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, fres.Response.StatusOK("ok"))
}
