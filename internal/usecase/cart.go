package usecase

import (
	"context"
	"errors"
	"sort"

	domainErrors "github.com/tonstore/storefront/internal/domain/errors"
	"github.com/tonstore/storefront/internal/domain/model"
	"github.com/tonstore/storefront/internal/domain/repository"
)

// CartUseCase manages the session cart lifecycle: created on first access,
// cleared on explicit clear or successful cart checkout.
type CartUseCase struct {
	carts    repository.CartStore
	products repository.ProductRepository
}

// NewCartUseCase constructs CartUseCase.
func NewCartUseCase(carts repository.CartStore, products repository.ProductRepository) *CartUseCase {
	return &CartUseCase{carts: carts, products: products}
}

// Get returns the session cart, a fresh empty one when none is stored yet.
// Empty carts are not persisted until the first mutation.
func (u *CartUseCase) Get(ctx context.Context, sessionID string) (*model.Cart, error) {
	cart, err := u.carts.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return model.NewCart(sessionID), nil
		}
		return nil, err
	}
	return cart, nil
}

// Add puts one more unit of the product into the cart. The product must
// exist in the catalog.
func (u *CartUseCase) Add(ctx context.Context, sessionID, productID string) (*model.Cart, error) {
	if _, err := u.products.GetByID(ctx, productID); err != nil {
		return nil, err
	}

	cart, err := u.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	cart.Add(productID)
	if err := u.carts.Save(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// Remove drops the product from the cart.
func (u *CartUseCase) Remove(ctx context.Context, sessionID, productID string) (*model.Cart, error) {
	cart, err := u.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	cart.Remove(productID)
	if err := u.carts.Save(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// Clear removes the session cart entirely.
func (u *CartUseCase) Clear(ctx context.Context, sessionID string) error {
	return u.carts.Clear(ctx, sessionID)
}

// View prices the cart against the catalog. Products that vanished from the
// catalog since they were added are silently dropped from the projection.
func (u *CartUseCase) View(ctx context.Context, sessionID string) (*model.CartView, error) {
	cart, err := u.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return u.price(ctx, cart)
}

func (u *CartUseCase) price(ctx context.Context, cart *model.Cart) (*model.CartView, error) {
	view := &model.CartView{}

	ids := make([]string, 0, len(cart.Items))
	for productID := range cart.Items {
		ids = append(ids, productID)
	}
	sort.Strings(ids)

	for _, productID := range ids {
		quantity := cart.Items[productID]
		if quantity <= 0 {
			continue
		}
		product, err := u.products.GetByID(ctx, productID)
		if err != nil {
			if errors.Is(err, domainErrors.ErrNotFound) {
				continue
			}
			return nil, err
		}
		line := model.CartLine{
			Product:  *product,
			Quantity: quantity,
			Total:    product.Price * int64(quantity),
		}
		view.Lines = append(view.Lines, line)
		view.Total += line.Total
	}
	return view, nil
}
