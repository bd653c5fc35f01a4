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

type ScenarioRunService interface {
	CreateScenarioRun(ctx context.Context, run *domain.ScenarioRun) (*domain.ScenarioRun, error)
	ListScenarioRuns(ctx context.Context) ([]domain.ScenarioRun, error)
	UpdateScenarioRunStatus(ctx context.Context, id, status string) error
}

type ScenarioRunsHandler struct {
	runService ScenarioRunService
	validator  *validator.Validate
	timeout    time.Duration
}

func NewScenarioRunsHandler(runService ScenarioRunService) *ScenarioRunsHandler {
	return &ScenarioRunsHandler{
		runService: runService,
		validator:  validator.New(),
		timeout:    10 * time.Second,
	}
}

type CreateScenarioRunRequest struct {
	Name         string `json:"name" validate:"required"`
	BusinessUnit string `json:"business_unit" validate:"required"`
	Product      string `json:"product" validate:"required"`
	Status       string `json:"status"`
}

type UpdateScenarioRunRequest struct {
	Status string `json:"status" validate:"required"`
}

func (h *ScenarioRunsHandler) CreateScenarioRun(c echo.Context) error {
	var req CreateScenarioRunRequest

	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate scenario run request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	run, err := h.runService.CreateScenarioRun(ctx, &domain.ScenarioRun{
		Name:         req.Name,
		BusinessUnit: req.BusinessUnit,
		Product:      req.Product,
		Status:       req.Status,
	})
	if err != nil {
		logger.Error("Failed to create scenario run", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"success": true,
		"id":      run.ID,
		"message": "scenario run created successfully",
	})
}

func (h *ScenarioRunsHandler) GetScenarioRuns(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	runs, err := h.runService.ListScenarioRuns(ctx)
	if err != nil {
		logger.Error("Failed to list scenario runs", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"runs": runs,
	})
}

func (h *ScenarioRunsHandler) UpdateScenarioRun(c echo.Context) error {
	id := c.Param("id")

	var req UpdateScenarioRunRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate scenario run update", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if err := h.runService.UpdateScenarioRunStatus(ctx, id, req.Status); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.JSON(http.StatusNotFound, ResponseError{Message: fmt.Sprintf("scenario run with id %s not found", id)})
		}
		logger.Error("Failed to update scenario run", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"message": fmt.Sprintf("scenario run %s updated successfully", id),
	})
}
