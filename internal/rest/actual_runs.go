package rest

import (
	"context"
	"net/http"
	"time"

	"capitalRuns/domain"
	"capitalRuns/pkg/logger"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// ResponseError represent the response error struct
type ResponseError struct {
	Message string `json:"message"`
}

type ActualRunService interface {
	CreateActualRun(ctx context.Context, run *domain.ActualRun) (*domain.ActualRun, error)
	ListActualRuns(ctx context.Context) ([]domain.ActualRun, error)
}

type ActualRunsHandler struct {
	runService ActualRunService
	validator  *validator.Validate
	timeout    time.Duration
}

func NewActualRunsHandler(runService ActualRunService) *ActualRunsHandler {
	return &ActualRunsHandler{
		runService: runService,
		validator:  validator.New(),
		timeout:    10 * time.Second,
	}
}

type CreateActualRunRequest struct {
	BusinessUnit   string `json:"business_unit" validate:"required"`
	Product        string `json:"product" validate:"required"`
	BaselEventType string `json:"basel_event_type" validate:"required"`
	Description    string `json:"description"`
	RunDate        string `json:"run_date" validate:"required"`
}

func (h *ActualRunsHandler) CreateActualRun(c echo.Context) error {
	var req CreateActualRunRequest

	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate actual run request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	run, err := h.runService.CreateActualRun(ctx, &domain.ActualRun{
		BusinessUnit:   req.BusinessUnit,
		Product:        req.Product,
		BaselEventType: req.BaselEventType,
		Description:    req.Description,
		RunDate:        req.RunDate,
	})
	if err != nil {
		logger.Error("Failed to create actual run", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"success": true,
		"id":      run.ID,
		"message": "actual run created successfully",
	})
}

func (h *ActualRunsHandler) GetActualRuns(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	runs, err := h.runService.ListActualRuns(ctx)
	if err != nil {
		logger.Error("Failed to list actual runs", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"runs": runs,
	})
}
