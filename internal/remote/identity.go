package remote

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/Jamess-Lucass/ecommerce-shop-ui/internal/domain"
)

// IdentityClient talks to the identity service.
type IdentityClient struct {
	client
}

// NewIdentityClient returns a client for the identity service at baseURL.
func NewIdentityClient(baseURL string, httpClient *http.Client, logger *slog.Logger) *IdentityClient {
	return &IdentityClient{client: newClient(baseURL, httpClient, logger)}
}

// Me returns the currently signed-in user. ErrUnauthorized is returned when
// no session is active.
func (c *IdentityClient) Me(ctx context.Context) (*domain.User, error) {
	var user domain.User
	if err := c.doJSON(ctx, http.MethodGet, "/api/v1/oauth/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// SignOut terminates the current session.
func (c *IdentityClient) SignOut(ctx context.Context) error {
	return c.doJSON(ctx, http.MethodPost, "/api/v1/oauth/signout", struct{}{}, nil)
}
