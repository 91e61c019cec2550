package repository

import (
	"context"

	"github.com/tonstore/storefront/internal/domain/model"
)

// ProductRepository describes read access to the catalog store.
type ProductRepository interface {
	List(ctx context.Context, filter model.ProductFilter) ([]model.Product, error)
	GetByID(ctx context.Context, productID string) (*model.Product, error)
	Categories(ctx context.Context) ([]model.Category, error)
	Featured(ctx context.Context, limit int) ([]model.Product, error)
}
