package dto

import "github.com/tonstore/storefront/internal/domain/model"

// CartLineResponse is a single cart entry priced against the catalog.
type CartLineResponse struct {
	Product  ProductResponse `json:"product"`
	Quantity int             `json:"quantity"`
	Total    int64           `json:"total"`
}

// CartResponse represents the priced session cart.
type CartResponse struct {
	Items      []CartLineResponse `json:"items"`
	TotalItems int                `json:"total_items"`
	Total      int64              `json:"total"`
}

// ToCartResponse maps a cart projection onto its wire form.
func ToCartResponse(view model.CartView) CartResponse {
	resp := CartResponse{Items: make([]CartLineResponse, 0, len(view.Lines)), Total: view.Total}
	for _, line := range view.Lines {
		resp.Items = append(resp.Items, CartLineResponse{
			Product:  ToProductResponse(line.Product),
			Quantity: line.Quantity,
			Total:    line.Total,
		})
		resp.TotalItems += line.Quantity
	}
	return resp
}
