package remote

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/Jamess-Lucass/ecommerce-shop-ui/internal/domain"
)

// OrderClient talks to the order service. Orders are read-only from the
// storefront's perspective.
type OrderClient struct {
	client
}

// NewOrderClient returns a client for the order service at baseURL.
func NewOrderClient(baseURL string, httpClient *http.Client, logger *slog.Logger) *OrderClient {
	return &OrderClient{client: newClient(baseURL, httpClient, logger)}
}

// List fetches the current user's orders.
func (c *OrderClient) List(ctx context.Context) ([]domain.Order, error) {
	var orders []domain.Order
	if err := c.doJSON(ctx, http.MethodGet, "/api/v1/orders", nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// Get fetches a single order by id.
func (c *OrderClient) Get(ctx context.Context, id string) (*domain.Order, error) {
	var order domain.Order
	if err := c.doJSON(ctx, http.MethodGet, "/api/v1/orders/"+id, nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}
