package csvstore

import (
	"context"
	"fmt"
	"time"

	"capitalRuns/domain"

	"github.com/google/uuid"
)

var scenarioRunHeader = []string{"id", "name", "business_unit", "product", "status", "created_at"}

type ScenarioRunRepository struct {
	table *Table
}

func NewScenarioRunRepository(store *Store) *ScenarioRunRepository {
	return &ScenarioRunRepository{
		table: store.Table("scenario_runs"),
	}
}

// Create assigns the id and creation timestamp and appends the run.
func (r *ScenarioRunRepository) Create(ctx context.Context, run *domain.ScenarioRun) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	run.ID = uuid.NewString()
	run.CreatedAt = time.Now().UTC().Format(time.RFC3339)

	row := []string{run.ID, run.Name, run.BusinessUnit, run.Product, run.Status, run.CreatedAt}
	if err := r.table.Append(scenarioRunHeader, row); err != nil {
		return fmt.Errorf("failed to append scenario run: %w", err)
	}

	return nil
}

func (r *ScenarioRunRepository) FindAll(ctx context.Context) ([]domain.ScenarioRun, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	header, rows, err := r.table.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario runs: %w", err)
	}
	if header == nil {
		return []domain.ScenarioRun{}, nil
	}

	cols := newColumnMap(header)
	runs := make([]domain.ScenarioRun, 0, len(rows))
	for _, row := range rows {
		runs = append(runs, domain.ScenarioRun{
			ID:           cols.get(row, "id"),
			Name:         cols.get(row, "name"),
			BusinessUnit: cols.get(row, "business_unit"),
			Product:      cols.get(row, "product"),
			Status:       cols.get(row, "status"),
			CreatedAt:    cols.get(row, "created_at"),
		})
	}

	return runs, nil
}

// UpdateStatus rewrites the table with the matching run's status set to
// status. Returns domain.ErrNotFound when the table or the id is absent.
func (r *ScenarioRunRepository) UpdateStatus(ctx context.Context, id, status string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	return r.table.UpdateFieldByID(id, "status", status)
}
