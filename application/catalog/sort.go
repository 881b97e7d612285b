package catalog

import (
	"sort"

	"github.com/ecomstore/catalog/constant"
	"github.com/ecomstore/catalog/model"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Sort returns a new slice ordered by the given key and direction. The input
// is never modified. The sort is stable, so records with equal keys keep
// their prior relative order. Name ordering is locale-aware and
// case-insensitive; the numeric keys compare their coerced values.
func Sort(products []model.Product, key constant.SortKey, direction constant.SortDirection) []model.Product {
	sorted := append([]model.Product(nil), products...)

	var compare func(a, b model.Product) int
	switch key {
	case constant.SortByName:
		// collators buffer internally and are not goroutine-safe,
		// so each call gets its own
		coll := collate.New(language.English, collate.IgnoreCase)
		compare = func(a, b model.Product) int {
			return coll.CompareString(a.Name, b.Name)
		}
	case constant.SortByRating:
		compare = func(a, b model.Product) int {
			return compareFloat(a.Rating.Float64(), b.Rating.Float64())
		}
	case constant.SortByDiscount:
		compare = func(a, b model.Product) int {
			return compareFloat(a.Discount.Float64(), b.Discount.Float64())
		}
	default:
		compare = func(a, b model.Product) int {
			return compareFloat(a.Price.Float64(), b.Price.Float64())
		}
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		c := compare(sorted[i], sorted[j])
		if direction == constant.SortDesc {
			return c > 0
		}
		return c < 0
	})

	return sorted
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
