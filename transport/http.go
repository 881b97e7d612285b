package transport

import (
	"encoding/json"
	"net/http"
	"strconv"

	authapp "github.com/ecomstore/catalog/application/auth"
	catalogapp "github.com/ecomstore/catalog/application/catalog"
	"github.com/ecomstore/catalog/constant"
	"github.com/ecomstore/catalog/model"
	utilsContext "github.com/ecomstore/catalog/utils/context"
	"github.com/ecomstore/catalog/utils/errors"
	"github.com/ecomstore/catalog/utils/logger"
	validatorx "github.com/ecomstore/catalog/utils/validator"
	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

type RestHandler struct {
	AuthApp    authapp.AuthApp
	CatalogApp catalogapp.CatalogApp
}

func NewTransport(AuthApp authapp.AuthApp, CatalogApp catalogapp.CatalogApp, internalAPIKey string) http.Handler {
	mux := mux.NewRouter()

	rh := &RestHandler{
		AuthApp:    AuthApp,
		CatalogApp: CatalogApp,
	}

	// Swagger UI
	mux.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// Public routes
	mux.HandleFunc("/login", rh.Login).Methods(http.MethodPost)

	// protected routes
	mux.HandleFunc("/products", rh.ListProducts).Methods(http.MethodGet)

	// internal routes (static service key, called by the refresh consumer)
	internal := mux.PathPrefix("/internal").Subrouter()
	internal.Use(InternalMiddleware(internalAPIKey))
	internal.HandleFunc("/v1/catalog/refresh", rh.RefreshCatalog).Methods(http.MethodPost)

	// middleware
	mux.Use(LoggingMiddleware())
	mux.Use(AuthMiddleware(AuthApp))

	return mux
}

// Login handler
// @Summary Admin login
// @Description Login with the admin credentials and receive JWT token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Login Request"
// @Success 200 {object} model.LoginResponse
// @Failure 400 {object} errors.CustomError
// @Router /login [post]
func (s *RestHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if s.AuthApp == nil {
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}

	res, err := s.AuthApp.Login(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ListProducts handler
// @Summary List products
// @Description Query the catalog with search, price bounds, availability filter, sorting and pagination
// @Tags Catalog
// @Produce json
// @Param page query int false "Page number (out-of-range values are clamped)"
// @Param limit query int false "Items per page"
// @Param sort_by query string false "Sort field: price, name, rating or discount"
// @Param sort_order query string false "Sort order: asc or desc"
// @Param search query string false "Case-insensitive name search"
// @Param min_price query string false "Minimum price (inclusive)"
// @Param max_price query string false "Maximum price (inclusive)"
// @Param only_available query bool false "Only available products"
// @Success 200 {object} model.QueryResult
// @Security BearerAuth
// @Router /products [get]
func (s *RestHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if s.CatalogApp == nil {
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}

	// malformed numbers fall back to defaults; page clamping and price-bound
	// defaulting are part of the query contract, not request validation
	q := r.URL.Query()
	opts := &model.QueryOptions{
		Page:      parseIntDefault(q.Get("page"), constant.DefaultPage),
		Limit:     parseIntDefault(q.Get("limit"), constant.DefaultItemsPerPage),
		SortBy:    q.Get("sort_by"),
		SortOrder: q.Get("sort_order"),
		Filters: model.FilterCriteria{
			SearchTerm:    q.Get("search"),
			MinPrice:      q.Get("min_price"),
			MaxPrice:      q.Get("max_price"),
			OnlyAvailable: parseBoolDefault(q.Get("only_available"), false),
		},
	}

	result := s.CatalogApp.ProcessQuery(ctx, opts)

	if username, ok := utilsContext.GetUsername(ctx); ok {
		logger.Get().Debug("[ListProducts] query served",
			zap.String("username", username),
			zap.Int("results", result.Pagination.TotalProducts),
		)
	}

	// the query result is already an envelope; return it verbatim so the
	// caller can retry a failed query by re-issuing it
	writeJSON(w, result)
}

// RefreshCatalog handler
// @Summary Drop the cached catalog snapshot
// @Description Internal endpoint used when upstream product data changed
// @Tags Internal
// @Produce json
// @Success 200 {object} transport.baseResponse
// @Router /internal/v1/catalog/refresh [post]
func (s *RestHandler) RefreshCatalog(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if s.CatalogApp == nil {
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}

	if err := s.CatalogApp.InvalidateCache(ctx); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}

	writeSuccess(w, nil)
}

func parseIntDefault(s string, fallback int) int {
	if s == "" {
		return fallback
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

func parseBoolDefault(s string, fallback bool) bool {
	if s == "" {
		return fallback
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return fallback
	}
	return b
}
