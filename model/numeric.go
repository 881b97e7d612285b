package model

import (
	"strconv"
	"strings"
)

// Numeric is a float64 that tolerates malformed input. Catalog feeds are not
// always clean: a price may arrive as a JSON string, null, or garbage. Any
// value without a numeric reading decodes as 0 instead of failing the record.
type Numeric float64

func (n *Numeric) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	s = strings.Trim(s, `"`)
	if s == "" || s == "null" {
		*n = 0
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		*n = 0
		return nil
	}
	*n = Numeric(f)
	return nil
}

// Scan implements sql.Scanner with the same coercion rules as UnmarshalJSON.
func (n *Numeric) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*n = 0
	case float64:
		*n = Numeric(v)
	case int64:
		*n = Numeric(v)
	case []byte:
		f, err := strconv.ParseFloat(strings.TrimSpace(string(v)), 64)
		if err != nil {
			*n = 0
			return nil
		}
		*n = Numeric(f)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			*n = 0
			return nil
		}
		*n = Numeric(f)
	default:
		*n = 0
	}
	return nil
}

func (n Numeric) Float64() float64 {
	return float64(n)
}
