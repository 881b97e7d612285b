package model

import (
	"math"
	"strconv"
	"strings"
)

// Product represents one catalog item. Records are immutable after creation;
// the query pipeline always derives new slices instead of editing in place.
type Product struct {
	ID            uint64   `db:"id" json:"id"`
	Name          string   `db:"name" json:"name"`
	Price         Numeric  `db:"price" json:"price"`
	OriginalPrice Numeric  `db:"original_price" json:"originalPrice"`
	Discount      Numeric  `db:"discount" json:"discount"`
	Category      string   `db:"category" json:"category"`
	Brand         string   `db:"brand" json:"brand"`
	Rating        Numeric  `db:"rating" json:"rating"`
	Reviews       int      `db:"reviews" json:"reviews"`
	Availability  bool     `db:"availability" json:"availability"`
	InStock       int      `db:"in_stock" json:"inStock"`
	Description   string   `db:"description" json:"description,omitempty"`
	Image         string   `db:"image" json:"image,omitempty"`
	Tags          []string `db:"-" json:"tags,omitempty"`
}

// FilterCriteria narrows a product collection for one query. Price bounds are
// kept as the raw request strings; empty or non-numeric input means unbounded.
type FilterCriteria struct {
	SearchTerm    string `json:"searchTerm,omitempty"`
	MinPrice      string `json:"minPrice,omitempty"`
	MaxPrice      string `json:"maxPrice,omitempty"`
	OnlyAvailable bool   `json:"onlyAvailable,omitempty"`
}

// EffectiveBounds resolves the raw price bounds: min defaults to 0 and max to
// +Inf when the supplied value is empty or not a number.
func (c FilterCriteria) EffectiveBounds() (min, max float64) {
	min = 0
	max = math.Inf(1)

	if v, err := strconv.ParseFloat(strings.TrimSpace(c.MinPrice), 64); err == nil {
		min = v
	}
	if v, err := strconv.ParseFloat(strings.TrimSpace(c.MaxPrice), 64); err == nil {
		max = v
	}
	return min, max
}

// Applied reports whether any constraint is non-neutral.
func (c FilterCriteria) Applied() bool {
	return strings.TrimSpace(c.SearchTerm) != "" ||
		strings.TrimSpace(c.MinPrice) != "" ||
		strings.TrimSpace(c.MaxPrice) != "" ||
		c.OnlyAvailable
}

// Pagination is the page metadata derived on every query.
type Pagination struct {
	CurrentPage     int  `json:"currentPage"`
	TotalPages      int  `json:"totalPages"`
	TotalProducts   int  `json:"totalProducts"`
	ItemsPerPage    int  `json:"itemsPerPage"`
	HasNextPage     bool `json:"hasNextPage"`
	HasPreviousPage bool `json:"hasPreviousPage"`
}

// QueryOptions is the query boundary input. Zero values resolve to the
// catalog defaults (page 1, limit 9, sort by price descending).
type QueryOptions struct {
	Page      int            `json:"page"`
	Limit     int            `json:"limit"`
	SortBy    string         `json:"sortBy"`
	SortOrder string         `json:"sortOrder"`
	Filters   FilterCriteria `json:"filters"`
}

// AppliedFilters echoes the criteria a result was produced under.
type AppliedFilters struct {
	Applied  bool           `json:"applied"`
	Criteria FilterCriteria `json:"criteria"`
}

// QueryResult is the envelope returned for every catalog query. A failed
// data acquisition yields Success=false, an empty product list, zeroed
// pagination (items per page preserved) and a display-ready error message.
type QueryResult struct {
	Success    bool           `json:"success"`
	Products   []Product      `json:"products"`
	Pagination Pagination     `json:"pagination"`
	Filters    AppliedFilters `json:"filters"`
	Error      string         `json:"error,omitempty"`
}
