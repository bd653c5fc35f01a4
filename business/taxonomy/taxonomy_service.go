package taxonomy

import (
	"context"
	"errors"
	"fmt"

	"capitalRuns/domain"
	"capitalRuns/pkg/logger"
	"capitalRuns/pkg/metrics"
)

// Repository contract interface over the three taxonomy tables plus the
// purge used by reset. Everything here goes through record-store primitives;
// the service never touches the files itself.
type Repository interface {
	BusinessUnits(ctx context.Context) ([]string, bool, error)
	CreateBusinessUnit(ctx context.Context, name string) error
	Products(ctx context.Context, businessUnit string) ([]string, bool, error)
	AddProducts(ctx context.Context, businessUnit string, products []string) error
	EventTypes(ctx context.Context, businessUnit string) ([]string, bool, error)
	AddEventTypes(ctx context.Context, businessUnit string, eventTypes []string) error
	PurgeAll(ctx context.Context) error
	ReplaceBusinessUnits(ctx context.Context, names []string) error
	ReplaceProducts(ctx context.Context, products []domain.Product) error
	ReplaceEventTypes(ctx context.Context, eventTypes []domain.BaselEventType) error
}

type taxonomyService struct {
	repo Repository
}

func NewTaxonomyService(repo Repository) *taxonomyService {
	return &taxonomyService{repo: repo}
}

// BusinessUnits returns the persisted business-unit names, or the built-in
// defaults when the table is absent or empty.
func (s *taxonomyService) BusinessUnits(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	names, ok, err := s.repo.BusinessUnits(ctx)
	if err != nil {
		logger.Error("failed to read business units", err)
		return nil, err
	}
	if !ok || len(names) == 0 {
		return append([]string(nil), defaultBusinessUnits...), nil
	}

	return names, nil
}

// Products returns product names for the business unit, or every distinct
// product when businessUnit is empty. Falls back to the built-in default
// mapping when the product table is absent.
func (s *taxonomyService) Products(ctx context.Context, businessUnit string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	values, ok, err := s.repo.Products(ctx, businessUnit)
	if err != nil {
		logger.Error("failed to read products", err)
		return nil, err
	}
	if !ok {
		return defaultValues(defaultProducts, businessUnit), nil
	}
	if businessUnit == "" {
		return dedupe(values), nil
	}

	return values, nil
}

// BaselEventTypes is symmetric to Products over the event-type table.
func (s *taxonomyService) BaselEventTypes(ctx context.Context, businessUnit string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	values, ok, err := s.repo.EventTypes(ctx, businessUnit)
	if err != nil {
		logger.Error("failed to read basel event types", err)
		return nil, err
	}
	if !ok {
		return defaultValues(defaultEventTypes, businessUnit), nil
	}
	if businessUnit == "" {
		return dedupe(values), nil
	}

	return values, nil
}

// CreateBusinessUnit appends the unit name unless it already exists, then
// appends every supplied product and event type as new rows regardless.
// Only the unit name is deduplicated; re-submitting the same taxonomy
// duplicates its product and event-type rows.
func (s *taxonomyService) CreateBusinessUnit(ctx context.Context, unit domain.BusinessUnit, products, eventTypes []string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, fmt.Errorf("context error: %w", err)
	}

	if unit.Name == "" {
		return false, errors.New("business unit name is required")
	}

	names, ok, err := s.repo.BusinessUnits(ctx)
	if err != nil {
		logger.Error("failed to read business units", err)
		return false, err
	}

	exists := false
	if ok {
		for _, name := range names {
			if name == unit.Name {
				exists = true
				break
			}
		}
	}

	if !exists {
		if err := s.repo.CreateBusinessUnit(ctx, unit.Name); err != nil {
			logger.Error("failed to create business unit", err)
			return false, err
		}
	}

	if len(products) > 0 {
		if err := s.repo.AddProducts(ctx, unit.Name, products); err != nil {
			logger.Error("failed to add products", err)
			return false, err
		}
	}
	if len(eventTypes) > 0 {
		if err := s.repo.AddEventTypes(ctx, unit.Name, eventTypes); err != nil {
			logger.Error("failed to add basel event types", err)
			return false, err
		}
	}

	logger.Info("business unit saved", "name", unit.Name, "existed", exists)

	return !exists, nil
}

// ResetAll deletes every persisted table and reseeds the taxonomy tables
// from the built-in defaults. Destructive and irreversible; any confirmation
// belongs to the caller.
func (s *taxonomyService) ResetAll(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := s.repo.PurgeAll(ctx); err != nil {
		logger.Error("failed to purge tables", err)
		return err
	}

	if err := s.repo.ReplaceBusinessUnits(ctx, defaultBusinessUnits); err != nil {
		logger.Error("failed to seed business units", err)
		return err
	}

	var products []domain.Product
	for _, unit := range defaultBusinessUnits {
		for _, p := range defaultProducts[unit] {
			products = append(products, domain.Product{BusinessUnit: unit, Product: p})
		}
	}
	if err := s.repo.ReplaceProducts(ctx, products); err != nil {
		logger.Error("failed to seed products", err)
		return err
	}

	var eventTypes []domain.BaselEventType
	for _, unit := range defaultBusinessUnits {
		for _, et := range defaultEventTypes[unit] {
			eventTypes = append(eventTypes, domain.BaselEventType{BusinessUnit: unit, EventType: et})
		}
	}
	if err := s.repo.ReplaceEventTypes(ctx, eventTypes); err != nil {
		logger.Error("failed to seed basel event types", err)
		return err
	}

	metrics.ResetTotal.Inc()
	logger.Info("all data reset to seed state")

	return nil
}

func dedupe(values []string) []string {
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}

	return out
}
