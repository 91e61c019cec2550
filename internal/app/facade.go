package app

import (
	"context"

	"github.com/tonstore/storefront/internal/domain/model"
	"github.com/tonstore/storefront/internal/usecase"
)

type StoreFacade struct {
	catalog  *usecase.CatalogUseCase
	cart     *usecase.CartUseCase
	checkout *usecase.CheckoutUseCase
	webhooks *usecase.WebhookUseCase
}

func NewStoreFacade(catalog *usecase.CatalogUseCase, cart *usecase.CartUseCase, checkout *usecase.CheckoutUseCase, webhooks *usecase.WebhookUseCase) *StoreFacade {
	return &StoreFacade{catalog: catalog, cart: cart, checkout: checkout, webhooks: webhooks}
}

func (f *StoreFacade) Products(ctx context.Context, category, search, sort string) ([]model.Product, error) {
	return f.catalog.List(ctx, category, search, sort)
}

func (f *StoreFacade) Product(ctx context.Context, productID string) (*model.Product, error) {
	return f.catalog.Get(ctx, productID)
}

func (f *StoreFacade) Categories(ctx context.Context) ([]model.Category, error) {
	return f.catalog.Categories(ctx)
}

func (f *StoreFacade) Featured(ctx context.Context, limit int) ([]model.Product, error) {
	return f.catalog.Featured(ctx, limit)
}

func (f *StoreFacade) Cart(ctx context.Context, sessionID string) (*model.CartView, error) {
	return f.cart.View(ctx, sessionID)
}

func (f *StoreFacade) AddToCart(ctx context.Context, sessionID, productID string) (*model.Cart, error) {
	return f.cart.Add(ctx, sessionID, productID)
}

func (f *StoreFacade) RemoveFromCart(ctx context.Context, sessionID, productID string) (*model.Cart, error) {
	return f.cart.Remove(ctx, sessionID, productID)
}

func (f *StoreFacade) ClearCart(ctx context.Context, sessionID string) error {
	return f.cart.Clear(ctx, sessionID)
}

func (f *StoreFacade) CheckoutProduct(ctx context.Context, productID string) (string, error) {
	return f.checkout.CheckoutProduct(ctx, productID)
}

func (f *StoreFacade) CheckoutCart(ctx context.Context, sessionID string) (string, error) {
	return f.checkout.CheckoutCart(ctx, sessionID)
}

func (f *StoreFacade) OrderStatus(ctx context.Context, orderID int64) (*model.Order, []model.Product, error) {
	return f.checkout.OrderStatus(ctx, orderID)
}

func (f *StoreFacade) HandleWebhook(ctx context.Context, payload []byte, signature string) error {
	return f.webhooks.HandleEvent(ctx, payload, signature)
}
