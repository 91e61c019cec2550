package model

import "time"

// Cart is the session scoped shopping cart. It is an explicit value object
// carried through request context, never ambient session state.
type Cart struct {
	SessionID string         `json:"session_id"`
	Items     map[string]int `json:"items"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// NewCart creates an empty cart bound to the session.
func NewCart(sessionID string) *Cart {
	now := time.Now()
	return &Cart{
		SessionID: sessionID,
		Items:     make(map[string]int),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Add increments quantity for the product.
func (c *Cart) Add(productID string) {
	if c.Items == nil {
		c.Items = make(map[string]int)
	}
	c.Items[productID]++
	c.UpdatedAt = time.Now()
}

// Remove drops the product from the cart entirely.
func (c *Cart) Remove(productID string) {
	delete(c.Items, productID)
	c.UpdatedAt = time.Now()
}

// IsEmpty reports whether the cart holds no items.
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// TotalItems returns the summed quantity across all products.
func (c *Cart) TotalItems() int {
	total := 0
	for _, qty := range c.Items {
		total += qty
	}
	return total
}

// CartLine is a cart entry priced against the catalog.
type CartLine struct {
	Product  Product
	Quantity int
	Total    int64
}

// CartView is the priced projection of a cart. Products that vanished from
// the catalog are absent from Lines.
type CartView struct {
	Lines []CartLine
	Total int64
}
