package remote

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/Jamess-Lucass/ecommerce-shop-ui/internal/domain"
)

// BasketClient talks to the basket service.
type BasketClient struct {
	client
}

// NewBasketClient returns a client for the basket service at baseURL.
func NewBasketClient(baseURL string, httpClient *http.Client, logger *slog.Logger) *BasketClient {
	return &BasketClient{client: newClient(baseURL, httpClient, logger)}
}

// Get fetches the basket with the given id.
func (c *BasketClient) Get(ctx context.Context, id string) (*domain.Basket, error) {
	var b domain.Basket
	if err := c.doJSON(ctx, http.MethodGet, "/api/v1/baskets/"+id, nil, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

// Create persists a new basket and returns the server's representation,
// which includes the assigned basket and line ids and price snapshots.
func (c *BasketClient) Create(ctx context.Context, b domain.Basket) (*domain.Basket, error) {
	var created domain.Basket
	if err := c.doJSON(ctx, http.MethodPost, "/api/v1/baskets", b, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Update replaces the basket's state and returns the server's
// representation.
func (c *BasketClient) Update(ctx context.Context, b domain.Basket) (*domain.Basket, error) {
	var updated domain.Basket
	if err := c.doJSON(ctx, http.MethodPut, "/api/v1/baskets/"+b.ID, b, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes the basket entirely.
func (c *BasketClient) Delete(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/api/v1/baskets/"+id, nil, nil)
}

// Checkout converts the basket into an order using the supplied delivery
// details. The basket is destroyed server-side on success.
func (c *BasketClient) Checkout(ctx context.Context, id string, params CheckoutParams) error {
	return c.doJSON(ctx, http.MethodPost, "/api/v1/baskets/"+id+"/checkout", params, nil)
}
