package transport_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	appcatalog "github.com/ecomstore/catalog/application/catalog"
	authmocks "github.com/ecomstore/catalog/mocks/application/auth"
	"github.com/ecomstore/catalog/model"
	productrepo "github.com/ecomstore/catalog/repository/product"
	"github.com/ecomstore/catalog/transport"
	"github.com/stretchr/testify/mock"
)

func newTestServer(t *testing.T, authApp *authmocks.AuthApp) http.Handler {
	t.Helper()
	catalogApp := appcatalog.NewCatalogApp(productrepo.NewGeneratedSource(150), nil)
	return transport.NewTransport(authApp, catalogApp, "internal-key")
}

func TestListProducts(t *testing.T) {
	authApp := authmocks.NewAuthApp(t)
	authApp.
		On("ValidateToken", mock.Anything, "valid-token").
		Return("Admin", nil)

	handler := newTestServer(t, authApp)

	tests := []struct {
		name  string
		query string
		check func(t *testing.T, result model.QueryResult)
	}{
		{
			name:  "default query returns first page of nine",
			query: "",
			check: func(t *testing.T, result model.QueryResult) {
				if !result.Success {
					t.Fatalf("success = false, error = %q", result.Error)
				}
				if len(result.Products) != 9 {
					t.Fatalf("products = %d, want 9", len(result.Products))
				}
				if result.Pagination.CurrentPage != 1 || result.Pagination.TotalProducts != 150 {
					t.Fatalf("pagination = %+v", result.Pagination)
				}
			},
		},
		{
			name:  "malformed page and limit fall back to defaults",
			query: "?page=abc&limit=-3",
			check: func(t *testing.T, result model.QueryResult) {
				if result.Pagination.CurrentPage != 1 || result.Pagination.ItemsPerPage != 9 {
					t.Fatalf("pagination = %+v", result.Pagination)
				}
			},
		},
		{
			name:  "page beyond the end is clamped, not rejected",
			query: "?page=9999&limit=12",
			check: func(t *testing.T, result model.QueryResult) {
				if result.Pagination.CurrentPage != result.Pagination.TotalPages {
					t.Fatalf("currentPage = %d, totalPages = %d",
						result.Pagination.CurrentPage, result.Pagination.TotalPages)
				}
			},
		},
		{
			name:  "filters and sort are applied",
			query: "?min_price=50&max_price=200&only_available=true&sort_by=price&sort_order=asc&limit=9",
			check: func(t *testing.T, result model.QueryResult) {
				if !result.Filters.Applied {
					t.Fatalf("filters.applied = false")
				}
				prev := 0.0
				for _, p := range result.Products {
					price := p.Price.Float64()
					if price < 50 || price > 200 || !p.Availability {
						t.Fatalf("product %d violates filters: price=%.2f available=%v", p.ID, price, p.Availability)
					}
					if price < prev {
						t.Fatalf("prices not ascending")
					}
					prev = price
				}
			},
		},
		{
			name:  "unmatched search returns an empty success envelope",
			query: "?search=zzz-no-match",
			check: func(t *testing.T, result model.QueryResult) {
				if !result.Success || len(result.Products) != 0 {
					t.Fatalf("result = %+v", result)
				}
				if result.Pagination.TotalPages != 0 || result.Pagination.CurrentPage != 1 {
					t.Fatalf("pagination = %+v", result.Pagination)
				}
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/products"+tt.query, nil)
			req.Header.Set("Authorization", "Bearer valid-token")
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
			}

			var result model.QueryResult
			if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
				t.Fatalf("decode response: %v", err)
			}
			tt.check(t, result)
		})
	}
}

func TestListProducts_RequiresToken(t *testing.T) {
	handler := newTestServer(t, authmocks.NewAuthApp(t))

	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestLogin(t *testing.T) {
	authApp := authmocks.NewAuthApp(t)
	authApp.
		On("Login", mock.Anything, &model.LoginRequest{Username: "Admin", Password: "123456"}).
		Return(&model.LoginResponse{Username: "Admin", Token: "issued-token"}, nil).
		Once()

	handler := newTestServer(t, authApp)

	req := httptest.NewRequest(http.MethodPost, "/login",
		strings.NewReader(`{"username":"Admin","password":"123456"}`))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "issued-token") {
		t.Fatalf("body does not carry the token: %s", rec.Body.String())
	}
}

func TestLogin_MissingFields(t *testing.T) {
	handler := newTestServer(t, authmocks.NewAuthApp(t))

	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"username":"Admin"}`))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestRefreshCatalog_RequiresInternalKey(t *testing.T) {
	handler := newTestServer(t, authmocks.NewAuthApp(t))

	req := httptest.NewRequest(http.MethodPost, "/internal/v1/catalog/refresh", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("status without key = %d, want 403", rec.Code)
	}

	req = httptest.NewRequest(http.MethodPost, "/internal/v1/catalog/refresh", nil)
	req.Header.Set("Authorization", "Bearer internal-key")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status with key = %d, body = %s", rec.Code, rec.Body.String())
	}
}
