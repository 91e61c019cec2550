package handlers

import (
	"context"

	"github.com/tonstore/storefront/internal/domain/model"
)

// CatalogFacade describes catalog reads required by handlers.
type CatalogFacade interface {
	Products(ctx context.Context, category, search, sort string) ([]model.Product, error)
	Product(ctx context.Context, productID string) (*model.Product, error)
	Categories(ctx context.Context) ([]model.Category, error)
	Featured(ctx context.Context, limit int) ([]model.Product, error)
}

// CartFacade encapsulates session cart operations exposed via HTTP.
type CartFacade interface {
	Cart(ctx context.Context, sessionID string) (*model.CartView, error)
	AddToCart(ctx context.Context, sessionID, productID string) (*model.Cart, error)
	RemoveFromCart(ctx context.Context, sessionID, productID string) (*model.Cart, error)
	ClearCart(ctx context.Context, sessionID string) error
}

// CheckoutFacade drives payment initiation and order status reads.
type CheckoutFacade interface {
	CheckoutProduct(ctx context.Context, productID string) (string, error)
	CheckoutCart(ctx context.Context, sessionID string) (string, error)
	OrderStatus(ctx context.Context, orderID int64) (*model.Order, []model.Product, error)
}

// WebhookFacade settles orders from provider callbacks.
type WebhookFacade interface {
	HandleWebhook(ctx context.Context, payload []byte, signature string) error
}

// StoreFacade aggregates the full set of operations used across handlers.
type StoreFacade interface {
	CatalogFacade
	CartFacade
	CheckoutFacade
	WebhookFacade
}
