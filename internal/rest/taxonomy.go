package rest

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"capitalRuns/domain"
	"capitalRuns/pkg/logger"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type TaxonomyService interface {
	BusinessUnits(ctx context.Context) ([]string, error)
	Products(ctx context.Context, businessUnit string) ([]string, error)
	BaselEventTypes(ctx context.Context, businessUnit string) ([]string, error)
	CreateBusinessUnit(ctx context.Context, unit domain.BusinessUnit, products, eventTypes []string) (bool, error)
	ResetAll(ctx context.Context) error
}

type TaxonomyHandler struct {
	taxonomyService TaxonomyService
	validator       *validator.Validate
	timeout         time.Duration
}

func NewTaxonomyHandler(taxonomyService TaxonomyService) *TaxonomyHandler {
	return &TaxonomyHandler{
		taxonomyService: taxonomyService,
		validator:       validator.New(),
		timeout:         10 * time.Second,
	}
}

type CreateBusinessUnitRequest struct {
	Name            string   `json:"name" validate:"required"`
	Products        []string `json:"products"`
	BaselEventTypes []string `json:"baselEventTypes"`
}

func (h *TaxonomyHandler) GetBusinessUnits(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	units, err := h.taxonomyService.BusinessUnits(ctx)
	if err != nil {
		logger.Error("Failed to list business units", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"business_units": units,
	})
}

func (h *TaxonomyHandler) CreateBusinessUnit(c echo.Context) error {
	var req CreateBusinessUnitRequest

	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate business unit request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	created, err := h.taxonomyService.CreateBusinessUnit(ctx, domain.BusinessUnit{Name: req.Name}, req.Products, req.BaselEventTypes)
	if err != nil {
		logger.Error("Failed to create business unit", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	message := fmt.Sprintf("business unit %s created successfully", req.Name)
	if !created {
		message = fmt.Sprintf("business unit %s already exists", req.Name)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"message": message,
	})
}

func (h *TaxonomyHandler) GetProducts(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	products, err := h.taxonomyService.Products(ctx, c.QueryParam("business_unit"))
	if err != nil {
		logger.Error("Failed to list products", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"products": products,
	})
}

func (h *TaxonomyHandler) GetBaselEventTypes(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	eventTypes, err := h.taxonomyService.BaselEventTypes(ctx, c.QueryParam("business_unit"))
	if err != nil {
		logger.Error("Failed to list basel event types", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"basel_event_types": eventTypes,
	})
}

func (h *TaxonomyHandler) ResetData(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if err := h.taxonomyService.ResetAll(ctx); err != nil {
		logger.Error("Failed to reset data", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "all data has been reset successfully",
	})
}
