package test

import (
	"context"

	"github.com/tonstore/storefront/internal/domain/model"
)

// CatalogFacadeStub provides controllable behaviour for catalog endpoints.
type CatalogFacadeStub struct {
	ProductsFn   func(context.Context, string, string, string) ([]model.Product, error)
	ProductFn    func(context.Context, string) (*model.Product, error)
	CategoriesFn func(context.Context) ([]model.Category, error)
	FeaturedFn   func(context.Context, int) ([]model.Product, error)
}

// Products delegates to provided function or returns a default listing.
func (s CatalogFacadeStub) Products(ctx context.Context, category, search, sort string) ([]model.Product, error) {
	if s.ProductsFn != nil {
		return s.ProductsFn(ctx, category, search, sort)
	}
	return []model.Product{{ProductID: "iphone-13", Model: "iPhone 13", Price: 50000}}, nil
}

// Product delegates to provided function or returns a default product.
func (s CatalogFacadeStub) Product(ctx context.Context, productID string) (*model.Product, error) {
	if s.ProductFn != nil {
		return s.ProductFn(ctx, productID)
	}
	return &model.Product{ProductID: productID, Model: "iPhone 13", Price: 50000}, nil
}

// Categories returns preconfigured categories.
func (s CatalogFacadeStub) Categories(ctx context.Context) ([]model.Category, error) {
	if s.CategoriesFn != nil {
		return s.CategoriesFn(ctx)
	}
	return []model.Category{{Name: "iphone", Count: 1}}, nil
}

// Featured returns preconfigured promoted products.
func (s CatalogFacadeStub) Featured(ctx context.Context, limit int) ([]model.Product, error) {
	if s.FeaturedFn != nil {
		return s.FeaturedFn(ctx, limit)
	}
	return []model.Product{{ProductID: "iphone-13", Model: "iPhone 13", Price: 50000, IsFeatured: true}}, nil
}

// CartFacadeStub simulates session cart operations.
type CartFacadeStub struct {
	CartFn   func(context.Context, string) (*model.CartView, error)
	AddFn    func(context.Context, string, string) (*model.Cart, error)
	RemoveFn func(context.Context, string, string) (*model.Cart, error)
	ClearFn  func(context.Context, string) error
}

// Cart returns the configured view or an empty one.
func (s CartFacadeStub) Cart(ctx context.Context, sessionID string) (*model.CartView, error) {
	if s.CartFn != nil {
		return s.CartFn(ctx, sessionID)
	}
	return &model.CartView{}, nil
}

// AddToCart executes the configured handler or echoes a one item cart.
func (s CartFacadeStub) AddToCart(ctx context.Context, sessionID, productID string) (*model.Cart, error) {
	if s.AddFn != nil {
		return s.AddFn(ctx, sessionID, productID)
	}
	cart := model.NewCart(sessionID)
	cart.Add(productID)
	return cart, nil
}

// RemoveFromCart executes the configured handler or returns an empty cart.
func (s CartFacadeStub) RemoveFromCart(ctx context.Context, sessionID, productID string) (*model.Cart, error) {
	if s.RemoveFn != nil {
		return s.RemoveFn(ctx, sessionID, productID)
	}
	return model.NewCart(sessionID), nil
}

// ClearCart executes the configured handler.
func (s CartFacadeStub) ClearCart(ctx context.Context, sessionID string) error {
	if s.ClearFn != nil {
		return s.ClearFn(ctx, sessionID)
	}
	return nil
}

// CheckoutFacadeStub simulates payment initiation.
type CheckoutFacadeStub struct {
	ProductFn func(context.Context, string) (string, error)
	CartFn    func(context.Context, string) (string, error)
	StatusFn  func(context.Context, int64) (*model.Order, []model.Product, error)
}

// CheckoutProduct delegates or returns a default hosted payment URL.
func (s CheckoutFacadeStub) CheckoutProduct(ctx context.Context, productID string) (string, error) {
	if s.ProductFn != nil {
		return s.ProductFn(ctx, productID)
	}
	return "https://pay.example/CHARGE1", nil
}

// CheckoutCart delegates or returns a default hosted payment URL.
func (s CheckoutFacadeStub) CheckoutCart(ctx context.Context, sessionID string) (string, error) {
	if s.CartFn != nil {
		return s.CartFn(ctx, sessionID)
	}
	return "https://pay.example/CHARGE1", nil
}

// OrderStatus delegates or returns a pending order.
func (s CheckoutFacadeStub) OrderStatus(ctx context.Context, orderID int64) (*model.Order, []model.Product, error) {
	if s.StatusFn != nil {
		return s.StatusFn(ctx, orderID)
	}
	return &model.Order{ID: orderID, Status: model.OrderStatusPending, Price: 50000, Currency: "RUB"}, nil, nil
}

// WebhookFacadeStub records webhook deliveries.
type WebhookFacadeStub struct {
	HandleFn func(context.Context, []byte, string) error
	Payloads [][]byte
}

// HandleWebhook delegates to the configured handler, recording the payload.
func (s *WebhookFacadeStub) HandleWebhook(ctx context.Context, payload []byte, signature string) error {
	s.Payloads = append(s.Payloads, payload)
	if s.HandleFn != nil {
		return s.HandleFn(ctx, payload, signature)
	}
	return nil
}

// StoreFacadeStub aggregates all facade stubs behind the full interface.
type StoreFacadeStub struct {
	CatalogFacadeStub
	CartFacadeStub
	CheckoutFacadeStub
	WebhookFacadeStub
}
