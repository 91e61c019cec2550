package usecase

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/tonstore/storefront/internal/domain/errors"
	"github.com/tonstore/storefront/internal/domain/model"
)

func TestParseSort(t *testing.T) {
	cases := []struct {
		raw  string
		want model.ProductSort
	}{
		{"price_asc", model.SortPriceAsc},
		{"price_desc", model.SortPriceDesc},
		{"name", model.SortName},
		{"default", model.SortDefault},
		{"", model.SortDefault},
		{"price_asc; DROP TABLE products", model.SortDefault},
	}
	for _, tc := range cases {
		if got := ParseSort(tc.raw); got != tc.want {
			t.Errorf("ParseSort(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}

func TestCatalogListPassesFilter(t *testing.T) {
	var captured model.ProductFilter
	repo := &stubProductRepository{
		listFn: func(_ context.Context, filter model.ProductFilter) ([]model.Product, error) {
			captured = filter
			return []model.Product{*phone("iphone-13", "iPhone 13", 50000)}, nil
		},
	}
	uc := NewCatalogUseCase(repo)

	products, err := uc.List(context.Background(), "iphone", "pro", "price_desc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(products) != 1 {
		t.Fatalf("expected 1 product, got %d", len(products))
	}
	want := model.ProductFilter{Category: "iphone", Search: "pro", Sort: model.SortPriceDesc}
	if captured != want {
		t.Errorf("filter = %+v, want %+v", captured, want)
	}
}

func TestCatalogGetNotFound(t *testing.T) {
	repo := &stubProductRepository{products: map[string]*model.Product{}}
	uc := NewCatalogUseCase(repo)

	if _, err := uc.Get(context.Background(), "nope"); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCatalogFeaturedLimitClamped(t *testing.T) {
	cases := []struct {
		name  string
		limit int
		want  int
	}{
		{"zero falls back to default", 0, defaultFeaturedLimit},
		{"negative falls back to default", -3, defaultFeaturedLimit},
		{"in range kept", 10, 10},
		{"excessive clamped", 1000, maxFeaturedLimit},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var got int
			repo := &stubProductRepository{
				featuredFn: func(_ context.Context, limit int) ([]model.Product, error) {
					got = limit
					return nil, nil
				},
			}
			uc := NewCatalogUseCase(repo)
			if _, err := uc.Featured(context.Background(), tc.limit); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Errorf("limit = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestCatalogCategories(t *testing.T) {
	repo := &stubProductRepository{
		categoriesFn: func(context.Context) ([]model.Category, error) {
			return []model.Category{{Name: "iphone", Count: 12}}, nil
		},
	}
	uc := NewCatalogUseCase(repo)

	categories, err := uc.Categories(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(categories) != 1 || categories[0].Name != "iphone" || categories[0].Count != 12 {
		t.Errorf("unexpected categories: %+v", categories)
	}
}
