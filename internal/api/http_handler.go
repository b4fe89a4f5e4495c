package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/Jamess-Lucass/ecommerce-shop-ui/internal/basket"
	"github.com/Jamess-Lucass/ecommerce-shop-ui/internal/cache"
	"github.com/Jamess-Lucass/ecommerce-shop-ui/internal/domain"
	"github.com/Jamess-Lucass/ecommerce-shop-ui/internal/money"
	"github.com/Jamess-Lucass/ecommerce-shop-ui/internal/query"
	"github.com/Jamess-Lucass/ecommerce-shop-ui/internal/remote"
	"github.com/Jamess-Lucass/ecommerce-shop-ui/internal/session"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

// Cache key paths. Keys mirror the upstream resource paths so an entry is
// addressed the same way regardless of which handler touched it.
const (
	catalogPath = "/api/v1/catalog"
	basketsPath = "/api/v1/baskets"
)

const genericErrorMessage = "Something went wrong, please try again later"

// HTTPHandler holds dependencies for the storefront HTTP handlers. The
// catalog, basket and order services may be nil when their base URL is not
// configured; the affected endpoints then degrade per-feature instead of the
// whole client failing.
type HTTPHandler struct {
	identity remote.IdentityService
	catalog  remote.CatalogService
	baskets  remote.BasketService
	orders   remote.OrderService
	cache    *cache.Cache
	session  *session.Session
	browser  *query.Browser
	validate *validator.Validate
	logger   *slog.Logger
}

// NewHTTPHandler creates a new HTTPHandler with dependencies.
func NewHTTPHandler(
	identity remote.IdentityService,
	catalog remote.CatalogService,
	baskets remote.BasketService,
	orders remote.OrderService,
	c *cache.Cache,
	s *session.Session,
	browser *query.Browser,
	logger *slog.Logger,
) *HTTPHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &HTTPHandler{
		identity: identity,
		catalog:  catalog,
		baskets:  baskets,
		orders:   orders,
		cache:    c,
		session:  s,
		browser:  browser,
		validate: validator.New(),
		logger:   logger,
	}
}

// --- Helpers ---

// ErrorResponse defines the structure for JSON error responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, ErrorResponse{Error: message})
}

func respondWithJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if payload != nil {
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			slog.Default().Error("failed to encode JSON response", "error", err)
		}
	}
}

// respondServiceFailure maps an error from the remote layer onto the
// storefront's error taxonomy: not-found renders an inline message in place
// of content, anything else surfaces the server-provided message when there
// is one and a generic fallback otherwise. Nothing is retried.
func (h *HTTPHandler) respondServiceFailure(w http.ResponseWriter, err error, notFoundMessage string) {
	switch {
	case errors.Is(err, context.Canceled):
		// The caller went away; there is nobody to respond to.
	case errors.Is(err, remote.ErrNotFound):
		respondWithJSON(w, http.StatusNotFound, ErrorResponse{Error: notFoundMessage})
	case errors.Is(err, remote.ErrUnauthorized):
		respondWithError(w, http.StatusUnauthorized, "You must be signed in to do that")
	default:
		h.logger.Error("remote service call failed", "error", err)
		var apiErr *remote.APIError
		if errors.As(err, &apiErr) && apiErr.Message != "" {
			respondWithError(w, http.StatusBadGateway, apiErr.Message)
			return
		}
		respondWithError(w, http.StatusBadGateway, genericErrorMessage)
	}
}

func (h *HTTPHandler) catalogConfigured(w http.ResponseWriter) bool {
	if h.catalog == nil {
		respondWithError(w, http.StatusServiceUnavailable, "The catalog is currently unavailable")
		return false
	}
	return true
}

func (h *HTTPHandler) basketsConfigured(w http.ResponseWriter) bool {
	if h.baskets == nil {
		respondWithError(w, http.StatusServiceUnavailable, "Baskets are currently unavailable")
		return false
	}
	return true
}

func (h *HTTPHandler) ordersConfigured(w http.ResponseWriter) bool {
	if h.orders == nil {
		respondWithError(w, http.StatusServiceUnavailable, "Orders are currently unavailable")
		return false
	}
	return true
}

// --- Auth Handlers ---

func (h *HTTPHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	if user, ok := h.session.User(); ok {
		respondWithJSON(w, http.StatusOK, user)
		return
	}

	user, err := h.identity.Me(r.Context())
	if err != nil {
		if errors.Is(err, remote.ErrUnauthorized) {
			respondWithError(w, http.StatusUnauthorized, "Not signed in")
			return
		}
		h.respondServiceFailure(w, err, "Your profile could not be retrieved")
		return
	}

	h.session.SetUser(*user)
	respondWithJSON(w, http.StatusOK, user)
}

func (h *HTTPHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	returnURL := r.URL.Query().Get("return_url")
	if returnURL == "" {
		returnURL = r.Referer()
	}
	if returnURL == "" {
		returnURL = "/"
	}

	http.Redirect(w, r, h.session.SignInURL(returnURL), http.StatusTemporaryRedirect)
}

func (h *HTTPHandler) SignOut(w http.ResponseWriter, r *http.Request) {
	if err := h.identity.SignOut(r.Context()); err != nil {
		// No retry on sign-out failure; surface a generic notification.
		h.respondServiceFailure(w, err, genericErrorMessage)
		return
	}

	h.session.ClearUser()

	returnURL := r.Referer()
	if returnURL == "" {
		returnURL = "/"
	}
	respondWithJSON(w, http.StatusOK, struct {
		RedirectURL string `json:"redirectUrl"`
	}{RedirectURL: h.session.SignInURL(returnURL)})
}

// --- Catalog Handlers ---

type catalogPageResponse struct {
	Value      []domain.Catalog `json:"value"`
	Pagination *query.PageInfo  `json:"pagination,omitempty"`
}

// GetCatalog serves the catalog page for the current browse query. The
// encoded query doubles as the cache key, so a repeat visit to the same page
// is served from cache without a refetch.
func (h *HTTPHandler) GetCatalog(w http.ResponseWriter, r *http.Request) {
	if !h.catalogConfigured(w) {
		return
	}

	q := h.browser.Query()
	key := cache.Key{Path: catalogPath, Ref: q.Encode()}

	if v, ok := h.cache.Get(key); ok {
		if res, ok := v.(*domain.APIResponse[domain.Catalog]); ok {
			respondWithJSON(w, http.StatusOK, catalogPage(q, res))
			return
		}
	}

	token := h.cache.Begin(key)
	res, err := h.catalog.List(r.Context(), q)
	if err != nil {
		h.respondServiceFailure(w, err, "Could not retrieve the catalog")
		return
	}
	h.cache.Commit(key, token, res)

	respondWithJSON(w, http.StatusOK, catalogPage(q, res))
}

func catalogPage(q query.Query, res *domain.APIResponse[domain.Catalog]) catalogPageResponse {
	page := catalogPageResponse{Value: res.Value}
	if page.Value == nil {
		page.Value = []domain.Catalog{}
	}
	if res.Count != nil {
		info := q.DerivePageInfo(*res.Count)
		page.Pagination = &info
	}
	return page
}

// SearchInput sets the catalog free-text search term.
type SearchInput struct {
	Term string `json:"term" validate:"max=256"`
}

// SetCatalogSearch records a search term. The term is committed to the browse
// query only once input has settled: rapid successive calls collapse into
// one, so the response is 202 and the change is observable on GetCatalog
// after the debounce elapses.
func (h *HTTPHandler) SetCatalogSearch(w http.ResponseWriter, r *http.Request) {
	if !h.catalogConfigured(w) {
		return
	}

	var input SearchInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	defer r.Body.Close()

	if err := h.validate.Struct(input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	h.browser.SetSearch(input.Term)
	respondWithJSON(w, http.StatusAccepted, nil)
}

// FilterInput sets the structured catalog filters. Empty fields are dropped;
// submitting every field empty clears the filter entirely.
type FilterInput struct {
	Name        string `json:"name" validate:"omitempty,max=256"`
	Description string `json:"description" validate:"omitempty,max=256"`
}

func (h *HTTPHandler) SetCatalogFilters(w http.ResponseWriter, r *http.Request) {
	if !h.catalogConfigured(w) {
		return
	}

	var input FilterInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	defer r.Body.Close()

	if err := h.validate.Struct(input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	h.browser.SetFilters(map[string]string{
		"name":        input.Name,
		"description": input.Description,
	})
	respondWithJSON(w, http.StatusOK, h.browseState())
}

// PageInput moves the catalog browse position to a 1-based page.
type PageInput struct {
	Page int `json:"page" validate:"required,gte=1"`
}

func (h *HTTPHandler) SetCatalogPage(w http.ResponseWriter, r *http.Request) {
	if !h.catalogConfigured(w) {
		return
	}

	var input PageInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	defer r.Body.Close()

	if err := h.validate.Struct(input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	h.browser.SetPage(input.Page)
	respondWithJSON(w, http.StatusOK, h.browseState())
}

func (h *HTTPHandler) browseState() any {
	return struct {
		Query string `json:"query"`
	}{Query: h.browser.Query().Encode()}
}

func (h *HTTPHandler) GetCatalogItem(w http.ResponseWriter, r *http.Request) {
	if !h.catalogConfigured(w) {
		return
	}

	id := chi.URLParam(r, "catalogId")
	key := cache.Key{Path: catalogPath, Ref: id}

	if v, ok := h.cache.Get(key); ok {
		if item, ok := v.(*domain.Catalog); ok {
			respondWithJSON(w, http.StatusOK, item)
			return
		}
	}

	token := h.cache.Begin(key)
	item, err := h.catalog.Get(r.Context(), id)
	if err != nil {
		h.respondServiceFailure(w, err, "Could not retrieve the catalog item")
		return
	}
	h.cache.Commit(key, token, item)

	respondWithJSON(w, http.StatusOK, item)
}

func (h *HTTPHandler) LikeCatalogItem(w http.ResponseWriter, r *http.Request) {
	h.toggleLike(w, r, true)
}

func (h *HTTPHandler) UnlikeCatalogItem(w http.ResponseWriter, r *http.Request) {
	h.toggleLike(w, r, false)
}

// toggleLike performs the like/unlike call and, on success, optimistically
// patches the cached item and the cached browse page in place rather than
// refetching either.
func (h *HTTPHandler) toggleLike(w http.ResponseWriter, r *http.Request, liked bool) {
	if !h.catalogConfigured(w) {
		return
	}

	id := chi.URLParam(r, "catalogId")

	var err error
	if liked {
		err = h.catalog.Like(r.Context(), id)
	} else {
		err = h.catalog.Unlike(r.Context(), id)
	}
	if err != nil {
		h.respondServiceFailure(w, err, "Could not retrieve the catalog item")
		return
	}

	itemKey := cache.Key{Path: catalogPath, Ref: id}
	if v, ok := h.cache.Get(itemKey); ok {
		if item, ok := v.(*domain.Catalog); ok {
			patched := domain.ApplyLikeToggle(*item, liked)
			h.cache.Set(itemKey, &patched)
		}
	}

	listKey := cache.Key{Path: catalogPath, Ref: h.browser.Query().Encode()}
	if v, ok := h.cache.Get(listKey); ok {
		if res, ok := v.(*domain.APIResponse[domain.Catalog]); ok {
			patched := domain.APIResponse[domain.Catalog]{
				Value: make([]domain.Catalog, len(res.Value)),
				Count: res.Count,
			}
			for i, item := range res.Value {
				if item.ID == id {
					item = domain.ApplyLikeToggle(item, liked)
				}
				patched.Value[i] = item
			}
			h.cache.Set(listKey, &patched)
		}
	}

	respondWithJSON(w, http.StatusOK, struct {
		Liked bool `json:"liked"`
	}{Liked: liked})
}

// --- Basket Handlers ---

type basketResponse struct {
	domain.Basket
	ItemCount int `json:"itemCount"`
}

func (h *HTTPHandler) GetBasket(w http.ResponseWriter, r *http.Request) {
	if !h.basketsConfigured(w) {
		return
	}

	id, ok := h.session.BasketID()
	if !ok {
		respondWithJSON(w, http.StatusNotFound, ErrorResponse{Error: "No basket found."})
		return
	}

	key := cache.Key{Path: basketsPath, Ref: id}
	if v, ok := h.cache.Get(key); ok {
		if b, ok := v.(*domain.Basket); ok {
			respondWithJSON(w, http.StatusOK, basketResponse{Basket: *b, ItemCount: b.ItemCount()})
			return
		}
	}

	token := h.cache.Begin(key)
	b, err := h.baskets.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, remote.ErrNotFound) {
			// The basket was destroyed server-side; forget it.
			h.session.ClearBasketID()
			h.cache.Remove(key)
		}
		h.respondServiceFailure(w, err, "No basket found.")
		return
	}
	h.cache.Commit(key, token, b)

	respondWithJSON(w, http.StatusOK, basketResponse{Basket: *b, ItemCount: b.ItemCount()})
}

// AddBasketItemInput is the add-to-basket request.
type AddBasketItemInput struct {
	CatalogID string `json:"catalogId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gte=1"`
}

// AddBasketItem reconciles the requested addition against the current basket
// snapshot and persists the resulting write: a create when no basket exists,
// otherwise an update merging into or appending to the item list.
func (h *HTTPHandler) AddBasketItem(w http.ResponseWriter, r *http.Request) {
	if !h.basketsConfigured(w) {
		return
	}

	var input AddBasketItemInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	defer r.Body.Close()

	if err := h.validate.Struct(input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	existing, err := h.currentBasket(r.Context())
	if err != nil {
		h.respondServiceFailure(w, err, "No basket found.")
		return
	}

	op := basket.ReconcileAdd(existing, input.CatalogID, input.Quantity)
	updated, err := h.applyBasketOp(r.Context(), op)
	if err != nil {
		h.respondServiceFailure(w, err, "No basket found.")
		return
	}

	h.storeBasket(updated)
	respondWithJSON(w, http.StatusOK, basketResponse{Basket: *updated, ItemCount: updated.ItemCount()})
}

// UpdateBasketItemInput sets the quantity of an existing basket line.
type UpdateBasketItemInput struct {
	Quantity int `json:"quantity" validate:"required,gte=1"`
}

func (h *HTTPHandler) UpdateBasketItem(w http.ResponseWriter, r *http.Request) {
	if !h.basketsConfigured(w) {
		return
	}

	itemID := chi.URLParam(r, "itemId")

	var input UpdateBasketItemInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	defer r.Body.Close()

	if err := h.validate.Struct(input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	existing, err := h.currentBasket(r.Context())
	if err != nil {
		h.respondServiceFailure(w, err, "No basket found.")
		return
	}
	if existing == nil {
		respondWithJSON(w, http.StatusNotFound, ErrorResponse{Error: "No basket found."})
		return
	}

	op := basket.ReconcileSetQuantity(*existing, itemID, input.Quantity)
	updated, err := h.applyBasketOp(r.Context(), op)
	if err != nil {
		h.respondServiceFailure(w, err, "No basket found.")
		return
	}

	h.storeBasket(updated)
	respondWithJSON(w, http.StatusOK, basketResponse{Basket: *updated, ItemCount: updated.ItemCount()})
}

func (h *HTTPHandler) RemoveBasketItem(w http.ResponseWriter, r *http.Request) {
	if !h.basketsConfigured(w) {
		return
	}

	itemID := chi.URLParam(r, "itemId")

	existing, err := h.currentBasket(r.Context())
	if err != nil {
		h.respondServiceFailure(w, err, "No basket found.")
		return
	}
	if existing == nil {
		respondWithJSON(w, http.StatusNotFound, ErrorResponse{Error: "No basket found."})
		return
	}

	op := basket.ReconcileRemove(*existing, itemID)
	updated, err := h.applyBasketOp(r.Context(), op)
	if err != nil {
		h.respondServiceFailure(w, err, "No basket found.")
		return
	}

	h.storeBasket(updated)
	respondWithJSON(w, http.StatusOK, basketResponse{Basket: *updated, ItemCount: updated.ItemCount()})
}

// RemoveBasket deletes the whole basket on explicit request.
func (h *HTTPHandler) RemoveBasket(w http.ResponseWriter, r *http.Request) {
	if !h.basketsConfigured(w) {
		return
	}

	id, ok := h.session.BasketID()
	if !ok {
		respondWithJSON(w, http.StatusNotFound, ErrorResponse{Error: "No basket found."})
		return
	}

	op := basket.ReconcileClear(domain.Basket{ID: id})
	if _, err := h.applyBasketOp(r.Context(), op); err != nil && !errors.Is(err, remote.ErrNotFound) {
		h.respondServiceFailure(w, err, "No basket found.")
		return
	}

	h.cache.Remove(cache.Key{Path: basketsPath, Ref: id})
	h.session.ClearBasketID()
	respondWithJSON(w, http.StatusNoContent, nil)
}

// CheckoutInput carries the delivery details for checkout. Bounds match the
// storefront's checkout form.
type CheckoutInput struct {
	Name        string `json:"name" validate:"required,min=1,max=256"`
	Email       string `json:"email" validate:"required,email"`
	PhoneNumber string `json:"phoneNumber" validate:"required,min=8"`
	Address     string `json:"address" validate:"required,min=3,max=512"`
}

// Checkout submits the active basket for ordering. On success the basket is
// destroyed server-side, so the local cache entry and the active basket id
// are dropped.
func (h *HTTPHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	if !h.basketsConfigured(w) {
		return
	}

	id, ok := h.session.BasketID()
	if !ok {
		respondWithJSON(w, http.StatusNotFound, ErrorResponse{Error: "No basket found."})
		return
	}

	var input CheckoutInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	defer r.Body.Close()

	if err := h.validate.Struct(input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	params := remote.CheckoutParams{
		Name:        input.Name,
		Email:       input.Email,
		PhoneNumber: input.PhoneNumber,
		Address:     input.Address,
	}
	if err := h.baskets.Checkout(r.Context(), id, params); err != nil {
		h.respondServiceFailure(w, err, "No basket found.")
		return
	}

	h.cache.Remove(cache.Key{Path: basketsPath, Ref: id})
	h.session.ClearBasketID()

	respondWithJSON(w, http.StatusOK, struct {
		Message string `json:"message"`
	}{Message: "Your order is being processed!"})
}

// currentBasket returns the active basket snapshot, preferring the cache. A
// nil basket with nil error means no basket exists yet, which callers turn
// into a create operation.
func (h *HTTPHandler) currentBasket(ctx context.Context) (*domain.Basket, error) {
	id, ok := h.session.BasketID()
	if !ok {
		return nil, nil
	}

	key := cache.Key{Path: basketsPath, Ref: id}
	if v, ok := h.cache.Get(key); ok {
		if b, ok := v.(*domain.Basket); ok {
			return b, nil
		}
	}

	b, err := h.baskets.Get(ctx, id)
	if err != nil {
		if errors.Is(err, remote.ErrNotFound) {
			h.session.ClearBasketID()
			h.cache.Remove(key)
			return nil, nil
		}
		return nil, err
	}

	h.cache.Set(key, b)
	return b, nil
}

func (h *HTTPHandler) applyBasketOp(ctx context.Context, op basket.WriteOp) (*domain.Basket, error) {
	switch op.Kind {
	case basket.OpCreate:
		return h.baskets.Create(ctx, op.Basket)
	case basket.OpUpdate:
		return h.baskets.Update(ctx, op.Basket)
	case basket.OpDelete:
		return nil, h.baskets.Delete(ctx, op.Basket.ID)
	default:
		return nil, fmt.Errorf("unknown basket operation %q", op.Kind)
	}
}

// storeBasket records the server's authoritative basket state after a
// successful write, so no follow-up fetch is needed.
func (h *HTTPHandler) storeBasket(b *domain.Basket) {
	h.cache.Set(cache.Key{Path: basketsPath, Ref: b.ID}, b)
	h.session.SetBasketID(b.ID)
}

// --- Order Handlers ---

type orderRow struct {
	ID      string `json:"id"`
	Address string `json:"address"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Total   string `json:"total"`
}

func (h *HTTPHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	if !h.ordersConfigured(w) {
		return
	}

	orders, err := h.orders.List(r.Context())
	if err != nil {
		h.respondServiceFailure(w, err, "Could not retrieve any orders")
		return
	}

	user, _ := h.session.User()
	rows := make([]orderRow, 0, len(orders))
	for _, o := range orders {
		rows = append(rows, orderRow{
			ID:      o.ID,
			Address: o.Address,
			Email:   fallback(o.Email, user.Email),
			Name:    fallback(o.Name, user.FirstName+" "+user.LastName),
			Total:   money.FormatPrice(o.Total()),
		})
	}

	respondWithJSON(w, http.StatusOK, rows)
}

type orderItemView struct {
	ID          string `json:"id"`
	CatalogID   string `json:"catalogId"`
	CatalogName string `json:"catalogName,omitempty"`
	Price       string `json:"price"`
	Quantity    int    `json:"quantity"`
}

type orderDetailResponse struct {
	ID          string          `json:"id"`
	Address     string          `json:"address"`
	Email       string          `json:"email"`
	Name        string          `json:"name"`
	PhoneNumber string          `json:"phoneNumber"`
	Total       string          `json:"total"`
	Items       []orderItemView `json:"items"`
}

func (h *HTTPHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	if !h.ordersConfigured(w) {
		return
	}

	id := chi.URLParam(r, "orderId")
	order, err := h.orders.Get(r.Context(), id)
	if err != nil {
		h.respondServiceFailure(w, err, "Could not retrieve order")
		return
	}

	names := h.catalogNames(r.Context())

	user, _ := h.session.User()
	detail := orderDetailResponse{
		ID:          order.ID,
		Address:     order.Address,
		Email:       fallback(order.Email, user.Email),
		Name:        order.Name,
		PhoneNumber: order.PhoneNumber,
		Total:       money.FormatPrice(order.Total()),
		Items:       make([]orderItemView, 0, len(order.Items)),
	}
	for _, item := range order.Items {
		detail.Items = append(detail.Items, orderItemView{
			ID:          item.ID,
			CatalogID:   item.CatalogID,
			CatalogName: names[item.CatalogID],
			Price:       money.FormatPrice(item.Price),
			Quantity:    item.Quantity,
		})
	}

	respondWithJSON(w, http.StatusOK, detail)
}

// catalogNames resolves catalog ids to display names for order lines. A
// missing catalog service or a failed lookup yields an empty map: dangling
// catalog references are tolerated for display.
func (h *HTTPHandler) catalogNames(ctx context.Context) map[string]string {
	if h.catalog == nil {
		return nil
	}

	res, err := h.catalog.List(ctx, query.Query{})
	if err != nil {
		h.logger.Warn("could not resolve catalog names for order display", "error", err)
		return nil
	}

	names := make(map[string]string, len(res.Value))
	for _, item := range res.Value {
		names[item.ID] = item.Name
	}
	return names
}

func fallback(value, alt string) string {
	if value != "" {
		return value
	}
	return alt
}

// --- Route Registration ---

// RegisterRoutes sets up the storefront HTTP routes.
func (h *HTTPHandler) RegisterRoutes(r chi.Router) {
	r.Get("/api/v1/me", h.GetMe)
	r.Get("/api/v1/signin", h.SignIn)
	r.Post("/api/v1/signout", h.SignOut)

	r.Route("/api/v1/catalog", func(r chi.Router) {
		r.Get("/", h.GetCatalog)
		r.Post("/search", h.SetCatalogSearch)
		r.Post("/filters", h.SetCatalogFilters)
		r.Post("/page", h.SetCatalogPage)
		r.Route("/{catalogId}", func(r chi.Router) {
			r.Get("/", h.GetCatalogItem)
			r.Post("/like", h.LikeCatalogItem)
			r.Delete("/like", h.UnlikeCatalogItem)
		})
	})

	r.Route("/api/v1/basket", func(r chi.Router) {
		r.Get("/", h.GetBasket)
		r.Delete("/", h.RemoveBasket)
		r.Post("/items", h.AddBasketItem)
		r.Route("/items/{itemId}", func(r chi.Router) {
			r.Put("/", h.UpdateBasketItem)
			r.Delete("/", h.RemoveBasketItem)
		})
		r.Post("/checkout", h.Checkout)
	})

	r.Route("/api/v1/orders", func(r chi.Router) {
		r.Get("/", h.ListOrders)
		r.Get("/{orderId}", h.GetOrder)
	})
}
