package test

import (
	"context"
	"sort"

	domainErrors "github.com/tonstore/storefront/internal/domain/errors"
	"github.com/tonstore/storefront/internal/domain/model"
)

// ProductRepositoryStub serves catalog reads from an in-memory map.
type ProductRepositoryStub struct {
	Products map[string]*model.Product
	Err      error
}

// NewProductRepositoryStub constructs stub repository with initialized maps.
func NewProductRepositoryStub(products ...*model.Product) *ProductRepositoryStub {
	s := &ProductRepositoryStub{Products: make(map[string]*model.Product)}
	for _, p := range products {
		s.Products[p.ProductID] = p
	}
	return s
}

// List returns all products sorted by identifier, ignoring the filter.
func (s *ProductRepositoryStub) List(ctx context.Context, _ model.ProductFilter) ([]model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	ids := make([]string, 0, len(s.Products))
	for id := range s.Products {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	out := make([]model.Product, 0, len(ids))
	for _, id := range ids {
		out = append(out, *s.Products[id])
	}
	return out, nil
}

// GetByID fetches a product or returns not found.
func (s *ProductRepositoryStub) GetByID(ctx context.Context, productID string) (*model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if p, ok := s.Products[productID]; ok {
		return p, nil
	}
	return nil, domainErrors.ErrNotFound
}

// Categories aggregates counts over the stored products.
func (s *ProductRepositoryStub) Categories(ctx context.Context) ([]model.Category, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	counts := make(map[string]int)
	for _, p := range s.Products {
		counts[p.Category]++
	}
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)
	out := make([]model.Category, 0, len(names))
	for _, name := range names {
		out = append(out, model.Category{Name: name, Count: counts[name]})
	}
	return out, nil
}

// Featured returns stored products flagged as featured.
func (s *ProductRepositoryStub) Featured(ctx context.Context, limit int) ([]model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	out := make([]model.Product, 0)
	for _, p := range s.Products {
		if p.IsFeatured {
			out = append(out, *p)
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// OrderRepositoryStub keeps orders in memory with the conditional status
// transitions the real storage enforces.
type OrderRepositoryStub struct {
	Orders map[int64]*model.Order
	NextID int64
	Err    error
}

// NewOrderRepositoryStub constructs stub repository with initialized state.
func NewOrderRepositoryStub() *OrderRepositoryStub {
	return &OrderRepositoryStub{Orders: make(map[int64]*model.Order), NextID: 1}
}

// Create inserts a new order in status new.
func (s *OrderRepositoryStub) Create(ctx context.Context, items []model.OrderItem, total int64, currency string) (*model.Order, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	order := &model.Order{
		ID:       s.NextID,
		Items:    items,
		Price:    total,
		Currency: currency,
		Status:   model.OrderStatusNew,
	}
	s.Orders[order.ID] = order
	s.NextID++
	return order, nil
}

// GetByID fetches an order or returns not found.
func (s *OrderRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if order, ok := s.Orders[id]; ok {
		return order, nil
	}
	return nil, domainErrors.ErrNotFound
}

// AttachCharge moves the order from new to pending, once.
func (s *OrderRepositoryStub) AttachCharge(ctx context.Context, id int64, chargeCode string) error {
	if s.Err != nil {
		return s.Err
	}
	order, ok := s.Orders[id]
	if !ok {
		return domainErrors.ErrNotFound
	}
	if order.Status != model.OrderStatusNew || order.ChargeCode != nil {
		return domainErrors.ErrInvalidTransition
	}
	order.Status = model.OrderStatusPending
	order.ChargeCode = &chargeCode
	return nil
}

// Finalize settles a pending order; redeliveries of the same terminal
// status are a no-op.
func (s *OrderRepositoryStub) Finalize(ctx context.Context, id int64, status model.OrderStatus) error {
	if s.Err != nil {
		return s.Err
	}
	order, ok := s.Orders[id]
	if !ok {
		return domainErrors.ErrNotFound
	}
	if order.Status == status {
		return nil
	}
	if !order.Status.CanTransitionTo(status) {
		return domainErrors.ErrInvalidTransition
	}
	order.Status = status
	return nil
}

// CartStoreStub keeps session carts in memory.
type CartStoreStub struct {
	Carts   map[string]*model.Cart
	SaveErr error
	GetErr  error
	Cleared []string
}

// NewCartStoreStub constructs stub store with initialized state.
func NewCartStoreStub() *CartStoreStub {
	return &CartStoreStub{Carts: make(map[string]*model.Cart)}
}

// Get loads the session cart or returns not found.
func (s *CartStoreStub) Get(ctx context.Context, sessionID string) (*model.Cart, error) {
	if s.GetErr != nil {
		return nil, s.GetErr
	}
	if cart, ok := s.Carts[sessionID]; ok {
		return cart, nil
	}
	return nil, domainErrors.ErrNotFound
}

// Save persists the cart in memory.
func (s *CartStoreStub) Save(ctx context.Context, cart *model.Cart) error {
	if s.SaveErr != nil {
		return s.SaveErr
	}
	s.Carts[cart.SessionID] = cart
	return nil
}

// Clear removes the session cart, recording the call.
func (s *CartStoreStub) Clear(ctx context.Context, sessionID string) error {
	s.Cleared = append(s.Cleared, sessionID)
	delete(s.Carts, sessionID)
	return nil
}

// PaymentProviderStub simulates the payment gateway.
type PaymentProviderStub struct {
	CreateFn func(context.Context, model.ChargeRequest) (*model.Charge, error)
	Requests []model.ChargeRequest
	Disabled bool
}

// Enabled reports the configured availability.
func (s *PaymentProviderStub) Enabled() bool {
	return !s.Disabled
}

// CreateCharge records the request and delegates or returns a fixed charge.
func (s *PaymentProviderStub) CreateCharge(ctx context.Context, req model.ChargeRequest) (*model.Charge, error) {
	s.Requests = append(s.Requests, req)
	if s.CreateFn != nil {
		return s.CreateFn(ctx, req)
	}
	return &model.Charge{Code: "CHARGE1", HostedURL: "https://pay.example/CHARGE1"}, nil
}
