package dto

import "github.com/tonstore/storefront/internal/domain/model"

// ProductResponse represents a catalog entry.
type ProductResponse struct {
	ProductID    string   `json:"product_id"`
	Model        string   `json:"model"`
	Price        int64    `json:"price"`
	Currency     string   `json:"currency"`
	OldPrice     string   `json:"old_price,omitempty"`
	Category     string   `json:"category"`
	CurrentColor string   `json:"current_color,omitempty"`
	Memory       string   `json:"memory,omitempty"`
	ImageURL     string   `json:"image_url,omitempty"`
	ProductURL   string   `json:"product_url,omitempty"`
	Colors       []string `json:"colors,omitempty"`
	MemorySizes  []string `json:"memory_sizes,omitempty"`
	IsFeatured   bool     `json:"is_featured"`
}

// CategoryResponse represents a catalog category with its product count.
type CategoryResponse struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// ToProductResponse maps a catalog product onto its wire form.
func ToProductResponse(p model.Product) ProductResponse {
	return ProductResponse{
		ProductID:    p.ProductID,
		Model:        p.Model,
		Price:        p.Price,
		Currency:     p.Currency,
		OldPrice:     p.OldPrice,
		Category:     p.Category,
		CurrentColor: p.CurrentColor,
		Memory:       p.Memory,
		ImageURL:     p.ImageURL,
		ProductURL:   p.ProductURL,
		Colors:       p.Colors,
		MemorySizes:  p.MemorySizes,
		IsFeatured:   p.IsFeatured,
	}
}
