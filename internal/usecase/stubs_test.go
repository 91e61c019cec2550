package usecase

import (
	"context"
	"io"
	"log/slog"

	domainErrors "github.com/tonstore/storefront/internal/domain/errors"
	"github.com/tonstore/storefront/internal/domain/model"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

type stubProductRepository struct {
	products map[string]*model.Product

	listFn       func(context.Context, model.ProductFilter) ([]model.Product, error)
	getFn        func(context.Context, string) (*model.Product, error)
	categoriesFn func(context.Context) ([]model.Category, error)
	featuredFn   func(context.Context, int) ([]model.Product, error)
}

func (s *stubProductRepository) List(ctx context.Context, filter model.ProductFilter) ([]model.Product, error) {
	if s.listFn != nil {
		return s.listFn(ctx, filter)
	}
	panic("not implemented")
}

func (s *stubProductRepository) GetByID(ctx context.Context, productID string) (*model.Product, error) {
	if s.getFn != nil {
		return s.getFn(ctx, productID)
	}
	if p, ok := s.products[productID]; ok {
		return p, nil
	}
	return nil, domainErrors.ErrNotFound
}

func (s *stubProductRepository) Categories(ctx context.Context) ([]model.Category, error) {
	if s.categoriesFn != nil {
		return s.categoriesFn(ctx)
	}
	panic("not implemented")
}

func (s *stubProductRepository) Featured(ctx context.Context, limit int) ([]model.Product, error) {
	if s.featuredFn != nil {
		return s.featuredFn(ctx, limit)
	}
	panic("not implemented")
}

type stubOrderRepository struct {
	createFn   func(context.Context, []model.OrderItem, int64, string) (*model.Order, error)
	getFn      func(context.Context, int64) (*model.Order, error)
	attachFn   func(context.Context, int64, string) error
	finalizeFn func(context.Context, int64, model.OrderStatus) error
}

func (s *stubOrderRepository) Create(ctx context.Context, items []model.OrderItem, total int64, currency string) (*model.Order, error) {
	if s.createFn != nil {
		return s.createFn(ctx, items, total, currency)
	}
	panic("not implemented")
}

func (s *stubOrderRepository) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	if s.getFn != nil {
		return s.getFn(ctx, id)
	}
	panic("not implemented")
}

func (s *stubOrderRepository) AttachCharge(ctx context.Context, id int64, chargeCode string) error {
	if s.attachFn != nil {
		return s.attachFn(ctx, id, chargeCode)
	}
	panic("not implemented")
}

func (s *stubOrderRepository) Finalize(ctx context.Context, id int64, status model.OrderStatus) error {
	if s.finalizeFn != nil {
		return s.finalizeFn(ctx, id, status)
	}
	panic("not implemented")
}

// stubCartStore keeps carts in memory.
type stubCartStore struct {
	carts   map[string]*model.Cart
	saveErr error
	getErr  error
	cleared []string
}

func newStubCartStore() *stubCartStore {
	return &stubCartStore{carts: make(map[string]*model.Cart)}
}

func (s *stubCartStore) Get(ctx context.Context, sessionID string) (*model.Cart, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	cart, ok := s.carts[sessionID]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	return cart, nil
}

func (s *stubCartStore) Save(ctx context.Context, cart *model.Cart) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.carts[cart.SessionID] = cart
	return nil
}

func (s *stubCartStore) Clear(ctx context.Context, sessionID string) error {
	s.cleared = append(s.cleared, sessionID)
	delete(s.carts, sessionID)
	return nil
}

type stubPaymentProvider struct {
	createFn func(context.Context, model.ChargeRequest) (*model.Charge, error)
	requests []model.ChargeRequest
	disabled bool
}

func (s *stubPaymentProvider) Enabled() bool {
	return !s.disabled
}

func (s *stubPaymentProvider) CreateCharge(ctx context.Context, req model.ChargeRequest) (*model.Charge, error) {
	s.requests = append(s.requests, req)
	if s.createFn != nil {
		return s.createFn(ctx, req)
	}
	return &model.Charge{Code: "CHARGE1", HostedURL: "https://pay.example/CHARGE1"}, nil
}

func phone(productID, phoneModel string, price int64) *model.Product {
	return &model.Product{
		ProductID: productID,
		Model:     phoneModel,
		Price:     price,
		Currency:  "RUB",
		Category:  "iphone",
	}
}
