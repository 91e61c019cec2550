package model

import "time"

// Product describes a refurbished phone listed in the catalog.
type Product struct {
	ID           int64
	ProductID    string
	Model        string
	Price        int64
	Currency     string
	OldPrice     string
	Category     string
	CurrentColor string
	Memory       string
	ImageURL     string
	ProductURL   string
	Colors       []string
	MemorySizes  []string
	IsFeatured   bool
	DisplayOrder int
	CreatedAt    time.Time
}

// Category groups catalog entries with the number of products inside.
type Category struct {
	Name  string
	Count int
}

// ProductSort enumerates supported catalog orderings.
type ProductSort string

const (
	SortPriceAsc  ProductSort = "price_asc"
	SortPriceDesc ProductSort = "price_desc"
	SortName      ProductSort = "name"
	SortDefault   ProductSort = "default"
)

// ProductFilter narrows catalog listings.
type ProductFilter struct {
	Category string
	Search   string
	Sort     ProductSort
}
