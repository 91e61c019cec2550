package usecase

import (
	"context"

	"github.com/tonstore/storefront/internal/domain/model"
	"github.com/tonstore/storefront/internal/domain/repository"
)

const (
	defaultFeaturedLimit = 6
	maxFeaturedLimit     = 24
)

// CatalogUseCase exposes read access to the product catalog.
type CatalogUseCase struct {
	products repository.ProductRepository
}

// NewCatalogUseCase constructs CatalogUseCase.
func NewCatalogUseCase(products repository.ProductRepository) *CatalogUseCase {
	return &CatalogUseCase{products: products}
}

// ParseSort maps a raw query value onto the supported orderings. Unknown
// values fall back to the catalog display order.
func ParseSort(raw string) model.ProductSort {
	switch model.ProductSort(raw) {
	case model.SortPriceAsc, model.SortPriceDesc, model.SortName:
		return model.ProductSort(raw)
	default:
		return model.SortDefault
	}
}

// List returns catalog entries narrowed by category, search and sort.
func (u *CatalogUseCase) List(ctx context.Context, category, search, sort string) ([]model.Product, error) {
	return u.products.List(ctx, model.ProductFilter{
		Category: category,
		Search:   search,
		Sort:     ParseSort(sort),
	})
}

// Get returns a single product with its variants.
func (u *CatalogUseCase) Get(ctx context.Context, productID string) (*model.Product, error) {
	return u.products.GetByID(ctx, productID)
}

// Categories returns category names with product counts.
func (u *CatalogUseCase) Categories(ctx context.Context) ([]model.Category, error) {
	return u.products.Categories(ctx)
}

// Featured returns promoted products, most expensive first.
func (u *CatalogUseCase) Featured(ctx context.Context, limit int) ([]model.Product, error) {
	if limit <= 0 {
		limit = defaultFeaturedLimit
	}
	if limit > maxFeaturedLimit {
		limit = maxFeaturedLimit
	}
	return u.products.Featured(ctx, limit)
}
