package runs

import (
	"context"
	"errors"
	"fmt"

	"capitalRuns/domain"
	"capitalRuns/pkg/logger"
	"capitalRuns/pkg/metrics"
)

// StatusRunning is the status every scenario run starts in.
const StatusRunning = "running"

// ActualRunRepository contract interface
type ActualRunRepository interface {
	Create(ctx context.Context, run *domain.ActualRun) error
	FindAll(ctx context.Context) ([]domain.ActualRun, error)
}

// ExperimentRunRepository contract interface
type ExperimentRunRepository interface {
	Create(ctx context.Context, run *domain.ExperimentRun) error
	FindAll(ctx context.Context) ([]domain.ExperimentRun, error)
	Delete(ctx context.Context, id string) error
}

// ScenarioRunRepository contract interface
type ScenarioRunRepository interface {
	Create(ctx context.Context, run *domain.ScenarioRun) error
	FindAll(ctx context.Context) ([]domain.ScenarioRun, error)
	UpdateStatus(ctx context.Context, id, status string) error
}

type runService struct {
	actualRepo     ActualRunRepository
	experimentRepo ExperimentRunRepository
	scenarioRepo   ScenarioRunRepository
}

func NewRunService(actualRepo ActualRunRepository, experimentRepo ExperimentRunRepository, scenarioRepo ScenarioRunRepository) *runService {
	return &runService{
		actualRepo:     actualRepo,
		experimentRepo: experimentRepo,
		scenarioRepo:   scenarioRepo,
	}
}

func (s *runService) CreateActualRun(ctx context.Context, run *domain.ActualRun) (*domain.ActualRun, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	if run.BusinessUnit == "" || run.Product == "" || run.BaselEventType == "" {
		return nil, errors.New("business unit, product and basel event type are required")
	}
	if run.RunDate == "" {
		return nil, errors.New("run date is required")
	}

	if err := s.actualRepo.Create(ctx, run); err != nil {
		logger.Error("failed to create actual run", err)
		return nil, fmt.Errorf("failed to create actual run: %w", err)
	}

	metrics.RunsCreated.WithLabelValues("actual").Inc()
	logger.Info("actual run created", "id", run.ID)

	return run, nil
}

func (s *runService) ListActualRuns(ctx context.Context) ([]domain.ActualRun, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	runs, err := s.actualRepo.FindAll(ctx)
	if err != nil {
		logger.Error("failed to list actual runs", err)
		return nil, err
	}

	return runs, nil
}

func (s *runService) CreateExperimentRun(ctx context.Context, run *domain.ExperimentRun) (*domain.ExperimentRun, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	if run.BusinessUnit == "" || run.Product == "" || run.BaselEventType == "" {
		return nil, errors.New("business unit, product and basel event type are required")
	}
	if run.ExperimentName == "" {
		return nil, errors.New("experiment name is required")
	}

	if err := s.experimentRepo.Create(ctx, run); err != nil {
		logger.Error("failed to create experiment run", err)
		return nil, fmt.Errorf("failed to create experiment run: %w", err)
	}

	metrics.RunsCreated.WithLabelValues("experiment").Inc()
	logger.Info("experiment run created", "id", run.ID)

	return run, nil
}

func (s *runService) ListExperimentRuns(ctx context.Context) ([]domain.ExperimentRun, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	runs, err := s.experimentRepo.FindAll(ctx)
	if err != nil {
		logger.Error("failed to list experiment runs", err)
		return nil, err
	}

	return runs, nil
}

func (s *runService) DeleteExperimentRun(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := s.experimentRepo.Delete(ctx, id); err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			logger.Error("failed to delete experiment run", err, "id", id)
		}
		return err
	}

	logger.Info("experiment run deleted", "id", id)

	return nil
}

func (s *runService) CreateScenarioRun(ctx context.Context, run *domain.ScenarioRun) (*domain.ScenarioRun, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	if run.Name == "" || run.BusinessUnit == "" || run.Product == "" {
		return nil, errors.New("name, business unit and product are required")
	}
	if run.Status == "" {
		run.Status = StatusRunning
	}

	if err := s.scenarioRepo.Create(ctx, run); err != nil {
		logger.Error("failed to create scenario run", err)
		return nil, fmt.Errorf("failed to create scenario run: %w", err)
	}

	metrics.RunsCreated.WithLabelValues("scenario").Inc()
	logger.Info("scenario run created", "id", run.ID, "status", run.Status)

	return run, nil
}

func (s *runService) ListScenarioRuns(ctx context.Context) ([]domain.ScenarioRun, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	runs, err := s.scenarioRepo.FindAll(ctx)
	if err != nil {
		logger.Error("failed to list scenario runs", err)
		return nil, err
	}

	return runs, nil
}

func (s *runService) UpdateScenarioRunStatus(ctx context.Context, id, status string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if status == "" {
		return errors.New("status is required")
	}

	if err := s.scenarioRepo.UpdateStatus(ctx, id, status); err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			logger.Error("failed to update scenario run", err, "id", id)
		}
		return err
	}

	logger.Info("scenario run updated", "id", id, "status", status)

	return nil
}
