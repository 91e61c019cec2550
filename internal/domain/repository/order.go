package repository

import (
	"context"

	"github.com/tonstore/storefront/internal/domain/model"
)

// OrderRepository describes the append-only order ledger. Status changes are
// conditional on the current state so provider redeliveries can never regress
// a terminal order.
type OrderRepository interface {
	// Create inserts a new order with its line items and a fixed price
	// snapshot. The order starts in status new.
	Create(ctx context.Context, items []model.OrderItem, total int64, currency string) (*model.Order, error)
	// GetByID loads an order together with its line items.
	GetByID(ctx context.Context, id int64) (*model.Order, error)
	// AttachCharge stores the provider charge reference and moves the order
	// from new to pending. The charge code is set at most once; any other
	// starting state yields ErrInvalidTransition.
	AttachCharge(ctx context.Context, id int64, chargeCode string) error
	// Finalize moves a pending order into the terminal status. Re-applying
	// the same terminal status is a no-op; a conflicting terminal status
	// yields ErrInvalidTransition.
	Finalize(ctx context.Context, id int64, status model.OrderStatus) error
}
