package constant

// SortKey enumerates the supported product sort fields.
type SortKey int

const (
	SortByPrice SortKey = iota
	SortByName
	SortByRating
	SortByDiscount
)

// SortDirection enumerates sort orderings.
type SortDirection int

const (
	SortAsc SortDirection = iota
	SortDesc
)

// ParseSortKey maps a request-level sort field to its SortKey.
// Unknown or empty values fall back to price.
func ParseSortKey(s string) SortKey {
	switch s {
	case "name":
		return SortByName
	case "rating":
		return SortByRating
	case "discount":
		return SortByDiscount
	default:
		return SortByPrice
	}
}

// ParseSortDirection maps a request-level sort order to its SortDirection.
// Anything other than "asc" sorts descending.
func ParseSortDirection(s string) SortDirection {
	if s == "asc" {
		return SortAsc
	}
	return SortDesc
}

const (
	// DefaultPage is used when a query omits the page number.
	DefaultPage = 1
	// DefaultItemsPerPage is the service-level page size default.
	DefaultItemsPerPage = 9
	// DefaultSortBy is applied when no sort field is supplied.
	DefaultSortBy = "price"
	// DefaultSortOrder is applied when no sort order is supplied.
	DefaultSortOrder = "desc"
)
