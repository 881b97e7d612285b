package product

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"strings"

	"github.com/ecomstore/catalog/model"
)

// generatedSource holds a deterministic in-memory catalog. The same count
// always yields the same records, so tests and local runs are reproducible.
type generatedSource struct {
	products []model.Product
}

var (
	genAdjectives = []string{"Classic", "Modern", "Premium", "Compact", "Wireless", "Ergonomic", "Portable", "Smart", "Vintage", "Deluxe"}
	genNouns      = []string{"Headphones", "Backpack", "Keyboard", "Lamp", "Speaker", "Watch", "Mug", "Chair", "Camera", "Sneakers"}
	genCategories = []string{"Electronics", "Home", "Fashion", "Sports", "Office"}
	genBrands     = []string{"Acme", "Nordica", "Vertex", "Lumio", "Crafted"}
)

// NewGeneratedSource builds a catalog of count pseudo-random products with a
// fixed seed.
func NewGeneratedSource(count int) CatalogSource {
	rng := rand.New(rand.NewSource(42))

	products := make([]model.Product, 0, count)
	for i := 0; i < count; i++ {
		adj := genAdjectives[rng.Intn(len(genAdjectives))]
		noun := genNouns[rng.Intn(len(genNouns))]
		category := genCategories[rng.Intn(len(genCategories))]
		brand := genBrands[rng.Intn(len(genBrands))]

		price := math.Round((5+rng.Float64()*495)*100) / 100

		// roughly half the catalog carries a discount badge
		discount := 0
		if rng.Intn(2) == 1 {
			discount = 5 + rng.Intn(41)
		}
		originalPrice := price
		if discount > 0 {
			originalPrice = math.Round(price/(1-float64(discount)/100)*100) / 100
		}

		available := rng.Intn(5) != 0
		inStock := 0
		if available {
			inStock = 1 + rng.Intn(200)
		}

		name := fmt.Sprintf("%s %s %d", adj, noun, i+1)
		products = append(products, model.Product{
			ID:            uint64(i + 1),
			Name:          name,
			Price:         model.Numeric(price),
			OriginalPrice: model.Numeric(originalPrice),
			Discount:      model.Numeric(discount),
			Category:      category,
			Brand:         brand,
			Rating:        model.Numeric(math.Round((1+rng.Float64()*4)*10) / 10),
			Reviews:       rng.Intn(2000),
			Availability:  available,
			InStock:       inStock,
			Description:   fmt.Sprintf("%s by %s.", name, brand),
			Image:         fmt.Sprintf("/images/products/%d.jpg", i+1),
			Tags:          []string{strings.ToLower(category), strings.ToLower(brand)},
		})
	}

	return &generatedSource{products: products}
}

// FetchAll returns a fresh copy of the catalog slice so callers can never
// reorder the shared backing array.
func (s *generatedSource) FetchAll(ctx context.Context) ([]model.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return append([]model.Product(nil), s.products...), nil
}
