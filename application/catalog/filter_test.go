package catalog_test

import (
	"reflect"
	"testing"

	"github.com/ecomstore/catalog/application/catalog"
	"github.com/ecomstore/catalog/model"
)

func sampleProducts() []model.Product {
	return []model.Product{
		{ID: 1, Name: "Wireless Headphones", Price: 120, Availability: true},
		{ID: 2, Name: "Desk Lamp", Price: 35.5, Availability: false},
		{ID: 3, Name: "Mechanical Keyboard", Price: 89.99, Availability: true},
		{ID: 4, Name: "headphone stand", Price: 15, Availability: true},
		{ID: 5, Name: "Standing Desk", Price: 499, Availability: false},
	}
}

func ids(products []model.Product) []uint64 {
	out := make([]uint64, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name     string
		products []model.Product
		criteria model.FilterCriteria
		wantIDs  []uint64
	}{
		{
			name:     "no constraints keeps everything in order",
			products: sampleProducts(),
			criteria: model.FilterCriteria{},
			wantIDs:  []uint64{1, 2, 3, 4, 5},
		},
		{
			name:     "search term is a case-insensitive substring match",
			products: sampleProducts(),
			criteria: model.FilterCriteria{SearchTerm: "HEADPHONE"},
			wantIDs:  []uint64{1, 4},
		},
		{
			name:     "whitespace-only search term means no constraint",
			products: sampleProducts(),
			criteria: model.FilterCriteria{SearchTerm: "   "},
			wantIDs:  []uint64{1, 2, 3, 4, 5},
		},
		{
			name:     "price bounds are inclusive",
			products: sampleProducts(),
			criteria: model.FilterCriteria{MinPrice: "35.5", MaxPrice: "120"},
			wantIDs:  []uint64{1, 2, 3},
		},
		{
			name:     "non-numeric bounds are unbounded",
			products: sampleProducts(),
			criteria: model.FilterCriteria{MinPrice: "abc", MaxPrice: ""},
			wantIDs:  []uint64{1, 2, 3, 4, 5},
		},
		{
			name:     "only available drops unavailable records",
			products: sampleProducts(),
			criteria: model.FilterCriteria{OnlyAvailable: true},
			wantIDs:  []uint64{1, 3, 4},
		},
		{
			name:     "all constraints combine with AND",
			products: sampleProducts(),
			criteria: model.FilterCriteria{SearchTerm: "desk", MinPrice: "30", MaxPrice: "500", OnlyAvailable: true},
			wantIDs:  []uint64{},
		},
		{
			name:     "empty input yields empty output",
			products: []model.Product{},
			criteria: model.FilterCriteria{SearchTerm: "anything"},
			wantIDs:  []uint64{},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got := catalog.Filter(tt.products, tt.criteria)
			if !reflect.DeepEqual(ids(got), tt.wantIDs) {
				t.Fatalf("Filter() ids = %v, want %v", ids(got), tt.wantIDs)
			}
		})
	}
}

func TestFilter_Idempotent(t *testing.T) {
	criteria := model.FilterCriteria{SearchTerm: "desk", MaxPrice: "500"}

	once := catalog.Filter(sampleProducts(), criteria)
	twice := catalog.Filter(once, criteria)

	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("Filter() not idempotent: first %v, second %v", ids(once), ids(twice))
	}
}

func TestFilter_AvailabilityMonotonic(t *testing.T) {
	products := sampleProducts()

	narrow := catalog.Filter(products, model.FilterCriteria{OnlyAvailable: true})
	wide := catalog.Filter(products, model.FilterCriteria{OnlyAvailable: false})

	wideIDs := make(map[uint64]bool, len(wide))
	for _, p := range wide {
		wideIDs[p.ID] = true
	}
	for _, p := range narrow {
		if !wideIDs[p.ID] {
			t.Fatalf("id %d in available-only result but not in unconstrained result", p.ID)
		}
	}
}

func TestFilter_InputNotModified(t *testing.T) {
	products := sampleProducts()
	before := ids(products)

	catalog.Filter(products, model.FilterCriteria{OnlyAvailable: true})

	if !reflect.DeepEqual(ids(products), before) {
		t.Fatalf("Filter() modified its input: %v", ids(products))
	}
}
