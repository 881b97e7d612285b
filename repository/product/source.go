package product

import (
	"context"

	"github.com/ecomstore/catalog/model"
)

// CatalogSource produces the full current product collection. The query
// pipeline does not care whether the collection is generated in memory,
// read from MySQL, or fetched from an upstream catalog service.
type CatalogSource interface {
	FetchAll(ctx context.Context) ([]model.Product, error)
}
