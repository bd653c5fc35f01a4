package runs

import (
	"context"
	"errors"
	"testing"

	"capitalRuns/domain"
	"capitalRuns/internal/repository/csvstore"
)

func newTestService(t *testing.T) *runService {
	t.Helper()

	store, err := csvstore.NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	return NewRunService(
		csvstore.NewActualRunRepository(store),
		csvstore.NewExperimentRunRepository(store),
		csvstore.NewScenarioRunRepository(store),
	)
}

func TestCreateActualRunRequiresFields(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.CreateActualRun(context.Background(), &domain.ActualRun{BusinessUnit: "CIB"})
	if err == nil {
		t.Fatal("expected error for missing fields")
	}
}

func TestCreateActualRunRetrievableAfterCreate(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	run, err := svc.CreateActualRun(ctx, &domain.ActualRun{
		BusinessUnit:   "CIB",
		Product:        "TPS",
		BaselEventType: "EF",
		RunDate:        "2026-06-30",
	})
	if err != nil {
		t.Fatalf("CreateActualRun: %v", err)
	}
	if run.ID == "" {
		t.Fatal("expected generated id")
	}

	listed, err := svc.ListActualRuns(ctx)
	if err != nil {
		t.Fatalf("ListActualRuns: %v", err)
	}
	if len(listed) != 1 || listed[0].ID != run.ID {
		t.Fatalf("run not retrievable immediately after create: %v", listed)
	}
}

func TestCreateScenarioRunDefaultsToRunning(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	run, err := svc.CreateScenarioRun(ctx, &domain.ScenarioRun{
		Name:         "stress-q2",
		BusinessUnit: "PBB",
		Product:      "Card",
	})
	if err != nil {
		t.Fatalf("CreateScenarioRun: %v", err)
	}
	if run.Status != StatusRunning {
		t.Fatalf("expected default status %q, got %q", StatusRunning, run.Status)
	}
}

func TestUpdateScenarioRunStatusIdempotent(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	run, err := svc.CreateScenarioRun(ctx, &domain.ScenarioRun{Name: "stress-q2", BusinessUnit: "PBB", Product: "Card"})
	if err != nil {
		t.Fatalf("CreateScenarioRun: %v", err)
	}

	if err := svc.UpdateScenarioRunStatus(ctx, run.ID, "complete"); err != nil {
		t.Fatalf("UpdateScenarioRunStatus: %v", err)
	}
	if err := svc.UpdateScenarioRunStatus(ctx, run.ID, "complete"); err != nil {
		t.Fatalf("UpdateScenarioRunStatus repeat: %v", err)
	}

	listed, err := svc.ListScenarioRuns(ctx)
	if err != nil {
		t.Fatalf("ListScenarioRuns: %v", err)
	}
	if listed[0].Status != "complete" {
		t.Fatalf("expected status complete, got %q", listed[0].Status)
	}
}

func TestUpdateScenarioRunStatusNotFound(t *testing.T) {
	svc := newTestService(t)

	err := svc.UpdateScenarioRunStatus(context.Background(), "missing", "complete")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteExperimentRunNotFound(t *testing.T) {
	svc := newTestService(t)

	err := svc.DeleteExperimentRun(context.Background(), "missing")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
