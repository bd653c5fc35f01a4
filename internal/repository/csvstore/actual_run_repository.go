package csvstore

import (
	"context"
	"fmt"
	"time"

	"capitalRuns/domain"

	"github.com/google/uuid"
)

var actualRunHeader = []string{"id", "business_unit", "product", "basel_event_type", "description", "run_date", "created_at"}

type ActualRunRepository struct {
	table *Table
}

func NewActualRunRepository(store *Store) *ActualRunRepository {
	return &ActualRunRepository{
		table: store.Table("actual_runs"),
	}
}

// Create assigns the id and creation timestamp and appends the run.
func (r *ActualRunRepository) Create(ctx context.Context, run *domain.ActualRun) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	run.ID = uuid.NewString()
	run.CreatedAt = time.Now().UTC().Format(time.RFC3339)

	row := []string{run.ID, run.BusinessUnit, run.Product, run.BaselEventType, run.Description, run.RunDate, run.CreatedAt}
	if err := r.table.Append(actualRunHeader, row); err != nil {
		return fmt.Errorf("failed to append actual run: %w", err)
	}

	return nil
}

func (r *ActualRunRepository) FindAll(ctx context.Context) ([]domain.ActualRun, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	header, rows, err := r.table.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read actual runs: %w", err)
	}
	if header == nil {
		return []domain.ActualRun{}, nil
	}

	cols := newColumnMap(header)
	runs := make([]domain.ActualRun, 0, len(rows))
	for _, row := range rows {
		runs = append(runs, domain.ActualRun{
			ID:             cols.get(row, "id"),
			BusinessUnit:   cols.get(row, "business_unit"),
			Product:        cols.get(row, "product"),
			BaselEventType: cols.get(row, "basel_event_type"),
			Description:    cols.get(row, "description"),
			RunDate:        cols.get(row, "run_date"),
			CreatedAt:      cols.get(row, "created_at"),
		})
	}

	return runs, nil
}
