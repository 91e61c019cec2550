package repository

import (
	"context"

	"github.com/tonstore/storefront/internal/domain/model"
)

// CartStore keeps session carts alive between requests.
type CartStore interface {
	// Get loads the cart for the session, or ErrNotFound when none exists.
	Get(ctx context.Context, sessionID string) (*model.Cart, error)
	// Save persists the cart, refreshing its time to live.
	Save(ctx context.Context, cart *model.Cart) error
	// Clear removes the session cart. Clearing an absent cart is a no-op.
	Clear(ctx context.Context, sessionID string) error
}
