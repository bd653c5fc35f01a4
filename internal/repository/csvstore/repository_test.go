package csvstore

import (
	"context"
	"errors"
	"testing"

	"capitalRuns/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	return store
}

func TestActualRunRepositoryCreateAssignsIdentity(t *testing.T) {
	repo := NewActualRunRepository(newTestStore(t))
	ctx := context.Background()

	first := &domain.ActualRun{BusinessUnit: "CIB", Product: "TPS", BaselEventType: "EF", RunDate: "2026-01-31"}
	second := &domain.ActualRun{BusinessUnit: "PBB", Product: "Card", BaselEventType: "IF", RunDate: "2026-02-28"}

	if err := repo.Create(ctx, first); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := repo.Create(ctx, second); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if first.ID == "" || second.ID == "" {
		t.Fatal("expected generated ids")
	}
	if first.ID == second.ID {
		t.Fatalf("ids must be unique, both were %s", first.ID)
	}
	if first.CreatedAt == "" {
		t.Fatal("expected created_at to be stamped")
	}

	runs, err := repo.FindAll(ctx)
	if err != nil {
		t.Fatalf("FindAll: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	if runs[0].ID != first.ID || runs[1].ID != second.ID {
		t.Fatal("runs not retrievable in insertion order")
	}
	if runs[0].RunDate != "2026-01-31" {
		t.Fatalf("run_date not round-tripped: %q", runs[0].RunDate)
	}
}

func TestExperimentRunRepositoryDelete(t *testing.T) {
	repo := NewExperimentRunRepository(newTestStore(t))
	ctx := context.Background()

	keep := &domain.ExperimentRun{BusinessUnit: "CIB", Product: "TPS", BaselEventType: "EF", ExperimentName: "exp-a"}
	drop := &domain.ExperimentRun{BusinessUnit: "CIB", Product: "TPS", BaselEventType: "EF", ExperimentName: "exp-b"}

	if err := repo.Create(ctx, keep); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := repo.Create(ctx, drop); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := repo.Delete(ctx, drop.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	runs, err := repo.FindAll(ctx)
	if err != nil {
		t.Fatalf("FindAll: %v", err)
	}
	if len(runs) != 1 || runs[0].ID != keep.ID {
		t.Fatalf("expected only %s to remain, got %v", keep.ID, runs)
	}

	if err := repo.Delete(ctx, drop.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestExperimentRunRepositoryCreateBatchSharesSchemaWithCreate(t *testing.T) {
	repo := NewExperimentRunRepository(newTestStore(t))
	ctx := context.Background()

	if err := repo.Create(ctx, &domain.ExperimentRun{BusinessUnit: "CIB", Product: "TPS", BaselEventType: "EF", ExperimentName: "manual"}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	batch := []domain.ExperimentRun{
		{BusinessUnit: "CIB", Product: "TPS", BaselEventType: "EF", ExperimentName: "import", OneInTwo: "1.5", OneInFive: "2.5", OneInTen: "3.5", OneInTwenty: "4.5"},
	}
	if err := repo.CreateBatch(ctx, batch); err != nil {
		t.Fatalf("CreateBatch: %v", err)
	}

	runs, err := repo.FindAll(ctx)
	if err != nil {
		t.Fatalf("FindAll: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	if runs[0].OneInTen != "" {
		t.Fatalf("manual run should have empty quantiles, got %q", runs[0].OneInTen)
	}
	if runs[1].OneInTen != "3.5" {
		t.Fatalf("imported quantile not round-tripped: %q", runs[1].OneInTen)
	}
}

func TestScenarioRunRepositoryUpdateStatus(t *testing.T) {
	repo := NewScenarioRunRepository(newTestStore(t))
	ctx := context.Background()

	run := &domain.ScenarioRun{Name: "stress", BusinessUnit: "PBB", Product: "Card", Status: "running"}
	if err := repo.Create(ctx, run); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := repo.UpdateStatus(ctx, run.ID, "complete"); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	// Same status again must also succeed.
	if err := repo.UpdateStatus(ctx, run.ID, "complete"); err != nil {
		t.Fatalf("UpdateStatus repeat: %v", err)
	}

	runs, err := repo.FindAll(ctx)
	if err != nil {
		t.Fatalf("FindAll: %v", err)
	}
	if runs[0].Status != "complete" {
		t.Fatalf("expected status complete, got %q", runs[0].Status)
	}

	if err := repo.UpdateStatus(ctx, "missing", "x"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestTaxonomyRepositoryAbsentTables(t *testing.T) {
	repo := NewTaxonomyRepository(newTestStore(t))
	ctx := context.Background()

	if _, ok, err := repo.BusinessUnits(ctx); err != nil || ok {
		t.Fatalf("expected absent business-unit table, ok=%v err=%v", ok, err)
	}
	if _, ok, err := repo.Products(ctx, ""); err != nil || ok {
		t.Fatalf("expected absent product table, ok=%v err=%v", ok, err)
	}
	if _, ok, err := repo.EventTypes(ctx, "CIB"); err != nil || ok {
		t.Fatalf("expected absent event-type table, ok=%v err=%v", ok, err)
	}
}

func TestTaxonomyRepositoryProductsKeepDuplicates(t *testing.T) {
	repo := NewTaxonomyRepository(newTestStore(t))
	ctx := context.Background()

	if err := repo.AddProducts(ctx, "CIB", []string{"TPS", "TPS"}); err != nil {
		t.Fatalf("AddProducts: %v", err)
	}
	if err := repo.AddProducts(ctx, "PBB", []string{"Card"}); err != nil {
		t.Fatalf("AddProducts: %v", err)
	}

	products, ok, err := repo.Products(ctx, "CIB")
	if err != nil || !ok {
		t.Fatalf("Products: ok=%v err=%v", ok, err)
	}
	if len(products) != 2 {
		t.Fatalf("duplicates must be kept, got %v", products)
	}

	filtered, ok, err := repo.Products(ctx, "ZZZ")
	if err != nil || !ok {
		t.Fatalf("Products: ok=%v err=%v", ok, err)
	}
	if len(filtered) != 0 {
		t.Fatalf("expected no rows for unknown unit, got %v", filtered)
	}
}

func TestTaxonomyRepositoryPurgeAllRemovesRunTables(t *testing.T) {
	store := newTestStore(t)
	taxRepo := NewTaxonomyRepository(store)
	actualRepo := NewActualRunRepository(store)
	ctx := context.Background()

	if err := actualRepo.Create(ctx, &domain.ActualRun{BusinessUnit: "CIB", Product: "TPS", BaselEventType: "EF", RunDate: "2026-03-31"}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := taxRepo.CreateBusinessUnit(ctx, "CIB"); err != nil {
		t.Fatalf("CreateBusinessUnit: %v", err)
	}

	if err := taxRepo.PurgeAll(ctx); err != nil {
		t.Fatalf("PurgeAll: %v", err)
	}

	runs, err := actualRepo.FindAll(ctx)
	if err != nil {
		t.Fatalf("FindAll: %v", err)
	}
	if len(runs) != 0 {
		t.Fatalf("expected run table purged, got %v", runs)
	}
	if _, ok, err := taxRepo.BusinessUnits(ctx); err != nil || ok {
		t.Fatalf("expected business-unit table purged, ok=%v err=%v", ok, err)
	}
}
