package dto

import (
	"time"

	"github.com/tonstore/storefront/internal/domain/model"
)

// OrderItemResponse is a single order line.
type OrderItemResponse struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	UnitPrice int64  `json:"unit_price"`
}

// OrderStatusResponse represents the payment state of an order.
type OrderStatusResponse struct {
	OrderID   int64               `json:"order_id"`
	Status    string              `json:"status"`
	Price     int64               `json:"price"`
	Currency  string              `json:"currency"`
	Items     []OrderItemResponse `json:"items"`
	Products  []ProductResponse   `json:"products,omitempty"`
	CreatedAt time.Time           `json:"created_at"`
}

// ToOrderStatusResponse maps an order with its catalog data onto the wire form.
func ToOrderStatusResponse(order model.Order, products []model.Product) OrderStatusResponse {
	resp := OrderStatusResponse{
		OrderID:   order.ID,
		Status:    string(order.Status),
		Price:     order.Price,
		Currency:  order.Currency,
		Items:     make([]OrderItemResponse, 0, len(order.Items)),
		CreatedAt: order.CreatedAt,
	}
	for _, item := range order.Items {
		resp.Items = append(resp.Items, OrderItemResponse{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}
	for _, product := range products {
		resp.Products = append(resp.Products, ToProductResponse(product))
	}
	return resp
}
