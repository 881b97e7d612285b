package product

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/ecomstore/catalog/model"
)

// httpSource fetches the catalog from an upstream service that returns the
// full product list as a JSON array.
type httpSource struct {
	url    string
	client *http.Client
}

func NewHTTPSource(url string) CatalogSource {
	return &httpSource{
		url:    url,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

func (s *httpSource) FetchAll(ctx context.Context) ([]model.Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog upstream returned status %d", resp.StatusCode)
	}

	var products []model.Product
	if err := json.NewDecoder(resp.Body).Decode(&products); err != nil {
		return nil, fmt.Errorf("decode catalog response: %w", err)
	}

	return products, nil
}
