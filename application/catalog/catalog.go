package catalog

import (
	"context"
	"strings"

	"github.com/ecomstore/catalog/constant"
	"github.com/ecomstore/catalog/model"
	productrepo "github.com/ecomstore/catalog/repository/product"
	"github.com/ecomstore/catalog/utils/logger"
	"go.uber.org/zap"
)

// SearchEventPublisher publishes search analytics events. Implementations
// must be safe for concurrent use.
type SearchEventPublisher interface {
	PublishSearchEvent(term string, results int) error
}

// Invalidator is implemented by sources that cache the catalog snapshot.
type Invalidator interface {
	Invalidate(ctx context.Context) error
}

type CatalogApp interface {
	ProcessQuery(ctx context.Context, opts *model.QueryOptions) *model.QueryResult
	InvalidateCache(ctx context.Context) error
}

type catalogAppImpl struct {
	source    productrepo.CatalogSource
	publisher SearchEventPublisher
}

// NewCatalogApp wires the query pipeline to a data source. publisher may be
// nil, in which case search events are not emitted.
func NewCatalogApp(source productrepo.CatalogSource, publisher SearchEventPublisher) CatalogApp {
	return &catalogAppImpl{
		source:    source,
		publisher: publisher,
	}
}

// ProcessQuery runs one query cycle: fetch the full collection, then filter,
// sort and paginate it. The result is always an envelope; a failed fetch
// yields Success=false with a display-ready message instead of an error.
func (s *catalogAppImpl) ProcessQuery(ctx context.Context, opts *model.QueryOptions) *model.QueryResult {
	if opts == nil {
		opts = &model.QueryOptions{}
	}

	page := opts.Page
	if page <= 0 {
		page = constant.DefaultPage
	}
	limit := opts.Limit
	if limit <= 0 {
		limit = constant.DefaultItemsPerPage
	}
	sortBy := opts.SortBy
	if sortBy == "" {
		sortBy = constant.DefaultSortBy
	}
	sortOrder := opts.SortOrder
	if sortOrder == "" {
		sortOrder = constant.DefaultSortOrder
	}

	products, err := s.source.FetchAll(ctx)
	if err != nil {
		logger.Error("[ProcessQuery] error source.FetchAll", zap.String("error", err.Error()))
		return &model.QueryResult{
			Success:  false,
			Products: []model.Product{},
			Pagination: model.Pagination{
				CurrentPage:  1,
				ItemsPerPage: limit,
			},
			Filters: model.AppliedFilters{
				Applied:  opts.Filters.Applied(),
				Criteria: opts.Filters,
			},
			Error: constant.ErrorTypeMessage[constant.ErrCatalogUnavailable],
		}
	}

	products = Filter(products, opts.Filters)
	products = Sort(products, constant.ParseSortKey(sortBy), constant.ParseSortDirection(sortOrder))
	items, pagination := Paginate(products, page, limit)

	s.publishSearchEvent(opts.Filters.SearchTerm, pagination.TotalProducts)

	return &model.QueryResult{
		Success:    true,
		Products:   items,
		Pagination: pagination,
		Filters: model.AppliedFilters{
			Applied:  opts.Filters.Applied(),
			Criteria: opts.Filters,
		},
	}
}

// InvalidateCache drops the cached catalog snapshot when the source keeps
// one; it is a no-op for plain sources.
func (s *catalogAppImpl) InvalidateCache(ctx context.Context) error {
	inv, ok := s.source.(Invalidator)
	if !ok {
		return nil
	}
	if err := inv.Invalidate(ctx); err != nil {
		logger.Error("[InvalidateCache] error source.Invalidate", zap.String("error", err.Error()))
		return err
	}
	logger.Info("[InvalidateCache] catalog snapshot dropped")
	return nil
}

// publishSearchEvent emits a fire-and-forget analytics event for non-blank
// search terms.
func (s *catalogAppImpl) publishSearchEvent(term string, results int) {
	if s.publisher == nil || strings.TrimSpace(term) == "" {
		return
	}
	go func() {
		if err := s.publisher.PublishSearchEvent(term, results); err != nil {
			logger.Warn("[publishSearchEvent] err publisher.PublishSearchEvent", zap.String("error", err.Error()))
		}
	}()
}
