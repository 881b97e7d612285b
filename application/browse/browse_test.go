package browse_test

import (
	"context"
	"sync"
	"testing"

	"github.com/ecomstore/catalog/application/browse"
	appcatalog "github.com/ecomstore/catalog/application/catalog"
	sourcemocks "github.com/ecomstore/catalog/mocks/repository/product"
	"github.com/ecomstore/catalog/model"
	"github.com/stretchr/testify/mock"
)

func TestDeriveQuery(t *testing.T) {
	state := browse.State{
		Page:         3,
		ItemsPerPage: 12,
		SortBy:       "rating",
		SortOrder:    "asc",
		Filters:      model.FilterCriteria{SearchTerm: "lamp", OnlyAvailable: true},
	}

	opts := browse.DeriveQuery(state)

	if opts.Page != 3 || opts.Limit != 12 || opts.SortBy != "rating" || opts.SortOrder != "asc" {
		t.Fatalf("DeriveQuery() = %+v", opts)
	}
	if opts.Filters.SearchTerm != "lamp" || !opts.Filters.OnlyAvailable {
		t.Fatalf("DeriveQuery() filters = %+v", opts.Filters)
	}
}

func TestController_FilterAndSortChangesResetPage(t *testing.T) {
	source := sourcemocks.NewCatalogSource(t)
	source.
		On("FetchAll", mock.Anything).
		Return([]model.Product{{ID: 1, Name: "Lamp", Price: 10, Availability: true}}, nil).
		Times(4)

	ctrl := browse.NewController(appcatalog.NewCatalogApp(source, nil), 12)

	ctrl.SetPage(context.Background(), 5)
	if got := ctrl.State().Page; got != 5 {
		t.Fatalf("page after SetPage = %d, want 5", got)
	}

	ctrl.SetFilters(context.Background(), model.FilterCriteria{SearchTerm: "lamp"})
	if got := ctrl.State().Page; got != 1 {
		t.Fatalf("page after SetFilters = %d, want 1", got)
	}

	ctrl.SetPage(context.Background(), 0) // engine clamps, state keeps the raw value
	ctrl.SetSort(context.Background(), "name", "asc")
	if got := ctrl.State().Page; got != 1 {
		t.Fatalf("page after SetSort = %d, want 1", got)
	}

	view := ctrl.View()
	if view.Loading || view.Error != "" {
		t.Fatalf("view = %+v", view)
	}
	if len(view.Products) != 1 || view.Products[0].ID != 1 {
		t.Fatalf("view products = %+v", view.Products)
	}
}

func TestController_StaleResponseDiscarded(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})

	source := sourcemocks.NewCatalogSource(t)
	// the first query stalls until released and would show the stale record
	source.
		On("FetchAll", mock.Anything).
		Return(func(ctx context.Context) ([]model.Product, error) {
			close(started)
			<-release
			return []model.Product{{ID: 1, Name: "Stale"}}, nil
		}).
		Once()
	// the second query answers immediately with the fresh record
	source.
		On("FetchAll", mock.Anything).
		Return([]model.Product{{ID: 2, Name: "Fresh"}}, nil).
		Once()

	ctrl := browse.NewController(appcatalog.NewCatalogApp(source, nil), 12)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		ctrl.Refresh(context.Background())
	}()

	<-started
	ctrl.SetPage(context.Background(), 1)

	fresh := ctrl.View()
	if len(fresh.Products) != 1 || fresh.Products[0].ID != 2 {
		t.Fatalf("view after second query = %+v", fresh.Products)
	}

	close(release)
	wg.Wait()

	// the first query finished last but must not have overwritten the view
	final := ctrl.View()
	if len(final.Products) != 1 || final.Products[0].ID != 2 {
		t.Fatalf("stale response overwrote the view: %+v", final.Products)
	}
	if final.Loading {
		t.Fatalf("view still loading after both queries settled")
	}
}

func TestController_SourceFailureSurfacesError(t *testing.T) {
	source := sourcemocks.NewCatalogSource(t)
	source.
		On("FetchAll", mock.Anything).
		Return(nil, context.DeadlineExceeded).
		Once()

	ctrl := browse.NewController(appcatalog.NewCatalogApp(source, nil), 12)
	ctrl.Refresh(context.Background())

	view := ctrl.View()
	if view.Error == "" {
		t.Fatalf("expected a user-facing error message")
	}
	if view.Loading {
		t.Fatalf("view still loading after failed query")
	}
}
