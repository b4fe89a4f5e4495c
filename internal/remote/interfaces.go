package remote

import (
	"context"

	"github.com/Jamess-Lucass/ecommerce-shop-ui/internal/domain"
	"github.com/Jamess-Lucass/ecommerce-shop-ui/internal/query"
)

// IdentityService defines the identity service operations the storefront
// uses.
type IdentityService interface {
	Me(ctx context.Context) (*domain.User, error)
	SignOut(ctx context.Context) error
}

// CatalogService defines the catalog service operations the storefront uses.
type CatalogService interface {
	List(ctx context.Context, q query.Query) (*domain.APIResponse[domain.Catalog], error)
	Get(ctx context.Context, id string) (*domain.Catalog, error)
	Like(ctx context.Context, id string) error
	Unlike(ctx context.Context, id string) error
}

// CheckoutParams holds the delivery details submitted at checkout.
type CheckoutParams struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Address     string `json:"address"`
}

// BasketService defines the basket service operations the storefront uses.
type BasketService interface {
	Get(ctx context.Context, id string) (*domain.Basket, error)
	Create(ctx context.Context, b domain.Basket) (*domain.Basket, error)
	Update(ctx context.Context, b domain.Basket) (*domain.Basket, error)
	Delete(ctx context.Context, id string) error
	Checkout(ctx context.Context, id string, params CheckoutParams) error
}

// OrderService defines the order service operations the storefront uses.
type OrderService interface {
	List(ctx context.Context) ([]domain.Order, error)
	Get(ctx context.Context, id string) (*domain.Order, error)
}
