package csvstore

import (
	"context"
	"fmt"
	"time"

	"capitalRuns/domain"

	"github.com/google/uuid"
)

var experimentRunHeader = []string{
	"id", "business_unit", "product", "basel_event_type", "description",
	"experiment_name", "created_at", "1in2", "1in5", "1in10", "1in20",
}

type ExperimentRunRepository struct {
	table *Table
}

func NewExperimentRunRepository(store *Store) *ExperimentRunRepository {
	return &ExperimentRunRepository{
		table: store.Table("experiment_runs"),
	}
}

// Create assigns the id and creation timestamp and appends the run. The
// quantile columns stay empty for API-created runs; the bulk-import path
// fills them via CreateBatch. Both paths share one column set so the table
// schema cannot drift between them.
func (r *ExperimentRunRepository) Create(ctx context.Context, run *domain.ExperimentRun) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	stamp(run)
	if err := r.table.Append(experimentRunHeader, encodeExperimentRun(run)); err != nil {
		return fmt.Errorf("failed to append experiment run: %w", err)
	}

	return nil
}

// CreateBatch assigns ids and timestamps to every run and appends them all.
func (r *ExperimentRunRepository) CreateBatch(ctx context.Context, runs []domain.ExperimentRun) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	rows := make([][]string, 0, len(runs))
	for i := range runs {
		stamp(&runs[i])
		rows = append(rows, encodeExperimentRun(&runs[i]))
	}

	if err := r.table.AppendAll(experimentRunHeader, rows); err != nil {
		return fmt.Errorf("failed to append experiment runs: %w", err)
	}

	return nil
}

func (r *ExperimentRunRepository) FindAll(ctx context.Context) ([]domain.ExperimentRun, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	header, rows, err := r.table.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read experiment runs: %w", err)
	}
	if header == nil {
		return []domain.ExperimentRun{}, nil
	}

	cols := newColumnMap(header)
	runs := make([]domain.ExperimentRun, 0, len(rows))
	for _, row := range rows {
		runs = append(runs, domain.ExperimentRun{
			ID:             cols.get(row, "id"),
			BusinessUnit:   cols.get(row, "business_unit"),
			Product:        cols.get(row, "product"),
			BaselEventType: cols.get(row, "basel_event_type"),
			Description:    cols.get(row, "description"),
			ExperimentName: cols.get(row, "experiment_name"),
			CreatedAt:      cols.get(row, "created_at"),
			OneInTwo:       cols.get(row, "1in2"),
			OneInFive:      cols.get(row, "1in5"),
			OneInTen:       cols.get(row, "1in10"),
			OneInTwenty:    cols.get(row, "1in20"),
		})
	}

	return runs, nil
}

// Delete removes exactly one run by id. Returns domain.ErrNotFound when the
// table or the id is absent.
func (r *ExperimentRunRepository) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	return r.table.DeleteByID(id)
}

func stamp(run *domain.ExperimentRun) {
	run.ID = uuid.NewString()
	run.CreatedAt = time.Now().UTC().Format(time.RFC3339)
}

func encodeExperimentRun(run *domain.ExperimentRun) []string {
	return []string{
		run.ID, run.BusinessUnit, run.Product, run.BaselEventType, run.Description,
		run.ExperimentName, run.CreatedAt, run.OneInTwo, run.OneInFive, run.OneInTen, run.OneInTwenty,
	}
}
