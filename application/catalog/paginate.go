package catalog

import (
	"github.com/ecomstore/catalog/model"
)

// Paginate windows an already filtered and sorted collection into one page.
// The requested page is clamped to [1, totalPages] (1 when there are no
// results); out-of-range windows produce a shorter or empty final page,
// never an error.
func Paginate(products []model.Product, page, itemsPerPage int) ([]model.Product, model.Pagination) {
	total := len(products)

	totalPages := 0
	if itemsPerPage > 0 {
		totalPages = (total + itemsPerPage - 1) / itemsPerPage
	}

	current := page
	if current < 1 {
		current = 1
	}
	if totalPages == 0 {
		current = 1
	} else if current > totalPages {
		current = totalPages
	}

	start := (current - 1) * itemsPerPage
	end := start + itemsPerPage
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	items := make([]model.Product, 0, end-start)
	items = append(items, products[start:end]...)

	return items, model.Pagination{
		CurrentPage:     current,
		TotalPages:      totalPages,
		TotalProducts:   total,
		ItemsPerPage:    itemsPerPage,
		HasNextPage:     current < totalPages,
		HasPreviousPage: current > 1,
	}
}
