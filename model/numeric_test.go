package model_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/ecomstore/catalog/model"
)

func TestNumeric_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want float64
	}{
		{name: "plain number", in: `{"price": 19.99}`, want: 19.99},
		{name: "numeric string", in: `{"price": "42.5"}`, want: 42.5},
		{name: "null coerces to zero", in: `{"price": null}`, want: 0},
		{name: "garbage coerces to zero", in: `{"price": "not-a-price"}`, want: 0},
		{name: "missing field stays zero", in: `{}`, want: 0},
		{name: "empty string coerces to zero", in: `{"price": ""}`, want: 0},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			var rec struct {
				Price model.Numeric `json:"price"`
			}
			if err := json.Unmarshal([]byte(tt.in), &rec); err != nil {
				t.Fatalf("Unmarshal() error = %v, malformed numerics must not fail the record", err)
			}
			if rec.Price.Float64() != tt.want {
				t.Fatalf("price = %v, want %v", rec.Price.Float64(), tt.want)
			}
		})
	}
}

func TestNumeric_Scan(t *testing.T) {
	tests := []struct {
		name string
		src  interface{}
		want float64
	}{
		{name: "float64", src: 12.5, want: 12.5},
		{name: "int64", src: int64(7), want: 7},
		{name: "bytes", src: []byte("3.25"), want: 3.25},
		{name: "string", src: "99", want: 99},
		{name: "nil", src: nil, want: 0},
		{name: "garbage bytes", src: []byte("n/a"), want: 0},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			var n model.Numeric
			if err := n.Scan(tt.src); err != nil {
				t.Fatalf("Scan() error = %v", err)
			}
			if n.Float64() != tt.want {
				t.Fatalf("value = %v, want %v", n.Float64(), tt.want)
			}
		})
	}
}

func TestFilterCriteria_EffectiveBounds(t *testing.T) {
	tests := []struct {
		name     string
		criteria model.FilterCriteria
		wantMin  float64
		maxIsInf bool
		wantMax  float64
	}{
		{name: "both empty", criteria: model.FilterCriteria{}, wantMin: 0, maxIsInf: true},
		{name: "both set", criteria: model.FilterCriteria{MinPrice: "50", MaxPrice: "200"}, wantMin: 50, wantMax: 200},
		{name: "non-numeric min", criteria: model.FilterCriteria{MinPrice: "cheap", MaxPrice: "10"}, wantMin: 0, wantMax: 10},
		{name: "whitespace padded", criteria: model.FilterCriteria{MinPrice: " 5 ", MaxPrice: " 15 "}, wantMin: 5, wantMax: 15},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			min, max := tt.criteria.EffectiveBounds()
			if min != tt.wantMin {
				t.Fatalf("min = %v, want %v", min, tt.wantMin)
			}
			if tt.maxIsInf {
				if !math.IsInf(max, 1) {
					t.Fatalf("max = %v, want +Inf", max)
				}
				return
			}
			if max != tt.wantMax {
				t.Fatalf("max = %v, want %v", max, tt.wantMax)
			}
		})
	}
}
