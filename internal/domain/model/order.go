package model

import "time"

// OrderStatus describes payment lifecycle of a checkout attempt.
type OrderStatus string

const (
	OrderStatusNew     OrderStatus = "new"
	OrderStatusPending OrderStatus = "pending"
	OrderStatusPaid    OrderStatus = "paid"
	OrderStatusFailed  OrderStatus = "failed"
)

// IsTerminal reports whether no further transition is permitted.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusPaid || s == OrderStatusFailed
}

// CanTransitionTo reports whether moving to next is a legal forward step.
// Orders only ever move new -> pending -> {paid, failed}.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	switch s {
	case OrderStatusNew:
		return next == OrderStatusPending
	case OrderStatusPending:
		return next == OrderStatusPaid || next == OrderStatusFailed
	default:
		return false
	}
}

// Order describes one checkout attempt recorded in the ledger.
// Price is snapshotted at creation in the smallest currency unit
// and never recomputed.
type Order struct {
	ID         int64
	Items      []OrderItem
	Price      int64
	Currency   string
	Status     OrderStatus
	ChargeCode *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// OrderItem is a single product line within an order.
type OrderItem struct {
	ProductID string
	Quantity  int
	UnitPrice int64
}
