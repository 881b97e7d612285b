package catalog

import (
	"strings"

	"github.com/ecomstore/catalog/model"
)

// Filter returns the products matching every constraint in criteria. It is
// pure and preserves the relative order of retained records. A record is kept
// when its name contains the trimmed search term (case-insensitive), its
// price falls inside the effective bounds (inclusive), and, when
// OnlyAvailable is set, it is available.
func Filter(products []model.Product, criteria model.FilterCriteria) []model.Product {
	term := strings.ToLower(strings.TrimSpace(criteria.SearchTerm))
	minPrice, maxPrice := criteria.EffectiveBounds()

	filtered := make([]model.Product, 0, len(products))
	for _, p := range products {
		if term != "" && !strings.Contains(strings.ToLower(p.Name), term) {
			continue
		}
		price := p.Price.Float64()
		if price < minPrice || price > maxPrice {
			continue
		}
		if criteria.OnlyAvailable && !p.Availability {
			continue
		}
		filtered = append(filtered, p)
	}

	return filtered
}
