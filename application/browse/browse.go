package browse

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/ecomstore/catalog/application/catalog"
	"github.com/ecomstore/catalog/constant"
	"github.com/ecomstore/catalog/model"
)

// State is the explicit browse session state: which page the user is on and
// under which filters and sort order.
type State struct {
	Page         int
	ItemsPerPage int
	SortBy       string
	SortOrder    string
	Filters      model.FilterCriteria
}

// View is a snapshot of what the session currently shows.
type View struct {
	Loading    bool
	Error      string
	Products   []model.Product
	Pagination model.Pagination
}

// Controller owns one browse session. Changing filters or sort resets the
// page to 1 and re-queries; when queries overlap, only the latest-issued
// query's result is applied (last-write-wins), so a slow stale response can
// never overwrite a fresher one.
type Controller interface {
	SetFilters(ctx context.Context, filters model.FilterCriteria)
	SetSort(ctx context.Context, field, order string)
	SetPage(ctx context.Context, page int)
	Refresh(ctx context.Context)
	View() View
	State() State
}

type controllerImpl struct {
	app catalog.CatalogApp

	mu    sync.Mutex
	state State
	view  View

	seq atomic.Uint64
}

func NewController(app catalog.CatalogApp, itemsPerPage int) Controller {
	if itemsPerPage <= 0 {
		itemsPerPage = constant.DefaultItemsPerPage
	}
	return &controllerImpl{
		app: app,
		state: State{
			Page:         constant.DefaultPage,
			ItemsPerPage: itemsPerPage,
			SortBy:       constant.DefaultSortBy,
			SortOrder:    constant.DefaultSortOrder,
		},
	}
}

// DeriveQuery maps session state to query options. Pure.
func DeriveQuery(s State) *model.QueryOptions {
	return &model.QueryOptions{
		Page:      s.Page,
		Limit:     s.ItemsPerPage,
		SortBy:    s.SortBy,
		SortOrder: s.SortOrder,
		Filters:   s.Filters,
	}
}

func (c *controllerImpl) SetFilters(ctx context.Context, filters model.FilterCriteria) {
	c.mu.Lock()
	c.state.Filters = filters
	c.state.Page = 1
	c.mu.Unlock()

	c.Refresh(ctx)
}

func (c *controllerImpl) SetSort(ctx context.Context, field, order string) {
	c.mu.Lock()
	c.state.SortBy = field
	c.state.SortOrder = order
	c.state.Page = 1
	c.mu.Unlock()

	c.Refresh(ctx)
}

func (c *controllerImpl) SetPage(ctx context.Context, page int) {
	c.mu.Lock()
	c.state.Page = page
	c.mu.Unlock()

	c.Refresh(ctx)
}

// Refresh issues a query for the current state. The query is tagged with a
// sequence number on issue; its result is applied only while no later query
// has been issued.
func (c *controllerImpl) Refresh(ctx context.Context) {
	seq := c.seq.Add(1)

	c.mu.Lock()
	opts := DeriveQuery(c.state)
	c.view.Loading = true
	c.view.Error = ""
	c.mu.Unlock()

	result := c.app.ProcessQuery(ctx, opts)

	c.mu.Lock()
	defer c.mu.Unlock()

	if seq != c.seq.Load() {
		// a newer query owns the view now
		return
	}

	c.view.Loading = false
	if !result.Success {
		c.view.Error = result.Error
		return
	}
	c.view.Products = result.Products
	c.view.Pagination = result.Pagination
}

func (c *controllerImpl) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()

	view := c.view
	view.Products = append([]model.Product(nil), c.view.Products...)
	return view
}

func (c *controllerImpl) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}
