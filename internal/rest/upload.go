package rest

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"capitalRuns/domain"
	"capitalRuns/pkg/logger"

	"github.com/labstack/echo/v4"
)

type ImportService interface {
	ImportExperimentRuns(ctx context.Context, src io.Reader, businessUnit string) (int, error)
}

type UploadHandler struct {
	importService ImportService
	timeout       time.Duration
}

func NewUploadHandler(importService ImportService) *UploadHandler {
	return &UploadHandler{
		importService: importService,
		timeout:       30 * time.Second,
	}
}

// UploadCSV takes a multipart file plus a business_unit form field and bulk
// imports experiment runs from it.
func (h *UploadHandler) UploadCSV(c echo.Context) error {
	businessUnit := c.FormValue("business_unit")
	if businessUnit == "" {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "business unit is required"})
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		logger.Error("Missing uploaded file", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "file is required"})
	}

	src, err := fileHeader.Open()
	if err != nil {
		logger.Error("Failed to open uploaded file", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}
	defer src.Close()

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	count, err := h.importService.ImportExperimentRuns(ctx, src, businessUnit)
	if err != nil {
		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: validationErr.Error()})
		}
		logger.Error("Failed to import csv", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success":      true,
		"message":      fmt.Sprintf("successfully processed %d experiment runs from CSV", count),
		"runs_created": count,
	})
}
