package taxonomy

import (
	"context"
	"reflect"
	"testing"

	"capitalRuns/domain"
	"capitalRuns/internal/repository/csvstore"
)

func newTestService(t *testing.T) *taxonomyService {
	t.Helper()

	store, err := csvstore.NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	return NewTaxonomyService(csvstore.NewTaxonomyRepository(store))
}

func TestBusinessUnitsDefaultsWhenAbsent(t *testing.T) {
	svc := newTestService(t)

	units, err := svc.BusinessUnits(context.Background())
	if err != nil {
		t.Fatalf("BusinessUnits: %v", err)
	}

	want := []string{"CFs", "CIB", "PBB"}
	if !reflect.DeepEqual(units, want) {
		t.Fatalf("expected default units %v, got %v", want, units)
	}
}

func TestProductsDefaultsForKnownUnit(t *testing.T) {
	svc := newTestService(t)

	products, err := svc.Products(context.Background(), "PBB")
	if err != nil {
		t.Fatalf("Products: %v", err)
	}

	want := []string{"Transactional", "Lending", "VAF", "HL", "Card", "SBFC", "W&I", "Cash"}
	if !reflect.DeepEqual(products, want) {
		t.Fatalf("expected PBB defaults %v, got %v", want, products)
	}
}

func TestProductsDefaultsUnionForUnknownUnit(t *testing.T) {
	svc := newTestService(t)

	products, err := svc.Products(context.Background(), "NOPE")
	if err != nil {
		t.Fatalf("Products: %v", err)
	}

	seen := make(map[string]bool)
	for _, p := range products {
		if seen[p] {
			t.Fatalf("union must be deduplicated, %q appears twice", p)
		}
		seen[p] = true
	}
	for _, p := range []string{"Business Enablers", "TPS", "Card"} {
		if !seen[p] {
			t.Fatalf("union missing %q: %v", p, products)
		}
	}
}

func TestBaselEventTypesDefaultsForKnownUnit(t *testing.T) {
	svc := newTestService(t)

	eventTypes, err := svc.BaselEventTypes(context.Background(), "CIB")
	if err != nil {
		t.Fatalf("BaselEventTypes: %v", err)
	}

	want := []string{"BDSF", "IF", "CPBP", "EDPM", "EF"}
	if !reflect.DeepEqual(eventTypes, want) {
		t.Fatalf("expected CIB defaults %v, got %v", want, eventTypes)
	}
}

func TestCreateBusinessUnitDeduplicatesNameOnly(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateBusinessUnit(ctx, domain.BusinessUnit{Name: "Retail"}, []string{"Loans"}, []string{"EF"})
	if err != nil {
		t.Fatalf("CreateBusinessUnit: %v", err)
	}
	if !created {
		t.Fatal("first create should report created")
	}

	// Re-submitting dedupes the unit name but appends the children again.
	created, err = svc.CreateBusinessUnit(ctx, domain.BusinessUnit{Name: "Retail"}, []string{"Loans"}, []string{"EF"})
	if err != nil {
		t.Fatalf("CreateBusinessUnit repeat: %v", err)
	}
	if created {
		t.Fatal("second create should report already exists")
	}

	units, err := svc.BusinessUnits(ctx)
	if err != nil {
		t.Fatalf("BusinessUnits: %v", err)
	}
	if !reflect.DeepEqual(units, []string{"Retail"}) {
		t.Fatalf("expected single Retail unit, got %v", units)
	}

	products, err := svc.Products(ctx, "Retail")
	if err != nil {
		t.Fatalf("Products: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("expected duplicated product rows, got %v", products)
	}
}

func TestResetAllSeedsDefaults(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if _, err := svc.CreateBusinessUnit(ctx, domain.BusinessUnit{Name: "Temp"}, []string{"X"}, nil); err != nil {
		t.Fatalf("CreateBusinessUnit: %v", err)
	}

	if err := svc.ResetAll(ctx); err != nil {
		t.Fatalf("ResetAll: %v", err)
	}

	units, err := svc.BusinessUnits(ctx)
	if err != nil {
		t.Fatalf("BusinessUnits: %v", err)
	}
	if !reflect.DeepEqual(units, []string{"CFs", "CIB", "PBB"}) {
		t.Fatalf("expected the three default units, got %v", units)
	}

	products, err := svc.Products(ctx, "")
	if err != nil {
		t.Fatalf("Products: %v", err)
	}
	want := map[string]bool{}
	for _, list := range defaultProducts {
		for _, p := range list {
			want[p] = true
		}
	}
	if len(products) != len(want) {
		t.Fatalf("expected union of all default products (%d), got %d: %v", len(want), len(products), products)
	}
	for _, p := range products {
		if !want[p] {
			t.Fatalf("unexpected product %q after reset", p)
		}
	}

	eventTypes, err := svc.BaselEventTypes(ctx, "CFs")
	if err != nil {
		t.Fatalf("BaselEventTypes: %v", err)
	}
	if !reflect.DeepEqual(eventTypes, []string{"DTPA", "EPWS", "EDPM - FIFC", "CPBP", "IF", "EDPM - TAX", "EF"}) {
		t.Fatalf("unexpected CFs event types after reset: %v", eventTypes)
	}
}
