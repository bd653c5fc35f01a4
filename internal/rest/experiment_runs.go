package rest

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"capitalRuns/domain"
	"capitalRuns/pkg/logger"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type ExperimentRunService interface {
	CreateExperimentRun(ctx context.Context, run *domain.ExperimentRun) (*domain.ExperimentRun, error)
	ListExperimentRuns(ctx context.Context) ([]domain.ExperimentRun, error)
	DeleteExperimentRun(ctx context.Context, id string) error
}

type ExperimentRunsHandler struct {
	runService ExperimentRunService
	validator  *validator.Validate
	timeout    time.Duration
}

func NewExperimentRunsHandler(runService ExperimentRunService) *ExperimentRunsHandler {
	return &ExperimentRunsHandler{
		runService: runService,
		validator:  validator.New(),
		timeout:    10 * time.Second,
	}
}

type CreateExperimentRunRequest struct {
	BusinessUnit   string `json:"business_unit" validate:"required"`
	Product        string `json:"product" validate:"required"`
	BaselEventType string `json:"basel_event_type" validate:"required"`
	Description    string `json:"description"`
	ExperimentName string `json:"experiment_name" validate:"required"`
}

func (h *ExperimentRunsHandler) CreateExperimentRun(c echo.Context) error {
	var req CreateExperimentRunRequest

	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate experiment run request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	run, err := h.runService.CreateExperimentRun(ctx, &domain.ExperimentRun{
		BusinessUnit:   req.BusinessUnit,
		Product:        req.Product,
		BaselEventType: req.BaselEventType,
		Description:    req.Description,
		ExperimentName: req.ExperimentName,
	})
	if err != nil {
		logger.Error("Failed to create experiment run", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"success": true,
		"id":      run.ID,
		"message": "experiment run created successfully",
	})
}

func (h *ExperimentRunsHandler) GetExperimentRuns(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	runs, err := h.runService.ListExperimentRuns(ctx)
	if err != nil {
		logger.Error("Failed to list experiment runs", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"runs": runs,
	})
}

func (h *ExperimentRunsHandler) DeleteExperimentRun(c echo.Context) error {
	id := c.Param("id")

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if err := h.runService.DeleteExperimentRun(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.JSON(http.StatusNotFound, ResponseError{Message: fmt.Sprintf("experiment run with id %s not found", id)})
		}
		logger.Error("Failed to delete experiment run", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"message": fmt.Sprintf("experiment run %s deleted successfully", id),
	})
}
