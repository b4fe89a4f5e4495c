package remote

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/Jamess-Lucass/ecommerce-shop-ui/internal/domain"
	"github.com/Jamess-Lucass/ecommerce-shop-ui/internal/query"
)

// CatalogClient talks to the catalog service.
type CatalogClient struct {
	client
}

// NewCatalogClient returns a client for the catalog service at baseURL.
func NewCatalogClient(baseURL string, httpClient *http.Client, logger *slog.Logger) *CatalogClient {
	return &CatalogClient{client: newClient(baseURL, httpClient, logger)}
}

// List fetches a page of catalog items. The query's canonical encoding is
// sent as-is, so the request query and the caller's cache key are always the
// same string.
func (c *CatalogClient) List(ctx context.Context, q query.Query) (*domain.APIResponse[domain.Catalog], error) {
	path := "/api/v1/catalog"
	if encoded := q.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var res domain.APIResponse[domain.Catalog]
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Get fetches a single catalog item by id.
func (c *CatalogClient) Get(ctx context.Context, id string) (*domain.Catalog, error) {
	var item domain.Catalog
	if err := c.doJSON(ctx, http.MethodGet, "/api/v1/catalog/"+id, nil, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// Like marks the catalog item as liked by the current user.
func (c *CatalogClient) Like(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodPost, "/api/v1/catalog/"+id+"/like", nil, nil)
}

// Unlike removes the current user's like from the catalog item.
func (c *CatalogClient) Unlike(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/api/v1/catalog/"+id+"/like", nil, nil)
}
