package csvstore

import (
	"context"
	"fmt"

	"capitalRuns/domain"
)

var (
	businessUnitHeader = []string{"name"}
	productHeader      = []string{"business_unit", "product"}
	eventTypeHeader    = []string{"business_unit", "basel_event_type"}
)

// TaxonomyRepository covers the three taxonomy tables. They carry no
// generated ids; business-unit names are kept unique by an insert-time
// check, product and event-type rows are appended as given.
type TaxonomyRepository struct {
	store      *Store
	units      *Table
	products   *Table
	eventTypes *Table
}

func NewTaxonomyRepository(store *Store) *TaxonomyRepository {
	return &TaxonomyRepository{
		store:      store,
		units:      store.Table("business_units"),
		products:   store.Table("products"),
		eventTypes: store.Table("basel_event_types"),
	}
}

// BusinessUnits returns every business-unit name in file order. ok is false
// when the table has never been written, so the caller can fall back to the
// built-in defaults.
func (r *TaxonomyRepository) BusinessUnits(ctx context.Context) ([]string, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, fmt.Errorf("context error: %w", err)
	}

	header, rows, err := r.units.ReadAll()
	if err != nil {
		return nil, false, fmt.Errorf("failed to read business units: %w", err)
	}
	if header == nil {
		return nil, false, nil
	}

	cols := newColumnMap(header)
	names := make([]string, 0, len(rows))
	for _, row := range rows {
		names = append(names, cols.get(row, "name"))
	}

	return names, true, nil
}

// CreateBusinessUnit appends one business-unit row.
func (r *TaxonomyRepository) CreateBusinessUnit(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.units.Append(businessUnitHeader, []string{name}); err != nil {
		return fmt.Errorf("failed to append business unit: %w", err)
	}

	return nil
}

// Products returns product names, filtered by business unit when
// businessUnit is non-empty. ok is false when the table has never been
// written.
func (r *TaxonomyRepository) Products(ctx context.Context, businessUnit string) ([]string, bool, error) {
	return r.taxonomyValues(ctx, r.products, "product", businessUnit)
}

// AddProducts appends one row per product, duplicates included.
func (r *TaxonomyRepository) AddProducts(ctx context.Context, businessUnit string, products []string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	rows := make([][]string, 0, len(products))
	for _, p := range products {
		rows = append(rows, []string{businessUnit, p})
	}
	if err := r.products.AppendAll(productHeader, rows); err != nil {
		return fmt.Errorf("failed to append products: %w", err)
	}

	return nil
}

// EventTypes returns Basel event-type names, filtered by business unit when
// businessUnit is non-empty. ok is false when the table has never been
// written.
func (r *TaxonomyRepository) EventTypes(ctx context.Context, businessUnit string) ([]string, bool, error) {
	return r.taxonomyValues(ctx, r.eventTypes, "basel_event_type", businessUnit)
}

// AddEventTypes appends one row per event type, duplicates included.
func (r *TaxonomyRepository) AddEventTypes(ctx context.Context, businessUnit string, eventTypes []string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	rows := make([][]string, 0, len(eventTypes))
	for _, et := range eventTypes {
		rows = append(rows, []string{businessUnit, et})
	}
	if err := r.eventTypes.AppendAll(eventTypeHeader, rows); err != nil {
		return fmt.Errorf("failed to append basel event types: %w", err)
	}

	return nil
}

// PurgeAll removes every table file, run tables included. Reset-only path.
func (r *TaxonomyRepository) PurgeAll(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.store.RemoveAll(); err != nil {
		return fmt.Errorf("failed to purge tables: %w", err)
	}

	return nil
}

// ReplaceBusinessUnits overwrites the business-unit table with names.
func (r *TaxonomyRepository) ReplaceBusinessUnits(ctx context.Context, names []string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	rows := make([][]string, 0, len(names))
	for _, name := range names {
		rows = append(rows, []string{name})
	}
	if err := r.units.WriteAll(businessUnitHeader, rows); err != nil {
		return fmt.Errorf("failed to replace business units: %w", err)
	}

	return nil
}

// ReplaceProducts overwrites the product table.
func (r *TaxonomyRepository) ReplaceProducts(ctx context.Context, products []domain.Product) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	rows := make([][]string, 0, len(products))
	for _, p := range products {
		rows = append(rows, []string{p.BusinessUnit, p.Product})
	}
	if err := r.products.WriteAll(productHeader, rows); err != nil {
		return fmt.Errorf("failed to replace products: %w", err)
	}

	return nil
}

// ReplaceEventTypes overwrites the event-type table.
func (r *TaxonomyRepository) ReplaceEventTypes(ctx context.Context, eventTypes []domain.BaselEventType) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	rows := make([][]string, 0, len(eventTypes))
	for _, et := range eventTypes {
		rows = append(rows, []string{et.BusinessUnit, et.EventType})
	}
	if err := r.eventTypes.WriteAll(eventTypeHeader, rows); err != nil {
		return fmt.Errorf("failed to replace basel event types: %w", err)
	}

	return nil
}

func (r *TaxonomyRepository) taxonomyValues(ctx context.Context, table *Table, field, businessUnit string) ([]string, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, fmt.Errorf("context error: %w", err)
	}

	var (
		hdr  []string
		rows [][]string
		err  error
	)
	if businessUnit != "" {
		hdr, rows, err = table.Filter("business_unit", businessUnit)
	} else {
		hdr, rows, err = table.ReadAll()
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read %s table: %w", field, err)
	}
	if hdr == nil {
		// A nil header means the file is absent or empty; only the absent
		// case falls back to the built-in defaults.
		if !table.Exists() {
			return nil, false, nil
		}
		return []string{}, true, nil
	}

	cols := newColumnMap(hdr)
	values := make([]string, 0, len(rows))
	for _, row := range rows {
		values = append(values, cols.get(row, field))
	}

	return values, true, nil
}
