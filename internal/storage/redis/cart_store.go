package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	domainErrors "github.com/tonstore/storefront/internal/domain/errors"
	"github.com/tonstore/storefront/internal/domain/model"
)

// CartStore keeps session carts in Redis with a sliding TTL.
type CartStore struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// New creates the cart store. The connection is verified lazily on first use.
func New(addr string, ttl time.Duration, logger *slog.Logger) *CartStore {
	client := redis.NewClient(&redis.Options{Addr: addr})
	return &CartStore{client: client, ttl: ttl, logger: logger}
}

// NewWithClient wraps an existing client, used by tests.
func NewWithClient(client *redis.Client, ttl time.Duration, logger *slog.Logger) *CartStore {
	return &CartStore{client: client, ttl: ttl, logger: logger}
}

// Get loads the cart for the session.
func (s *CartStore) Get(ctx context.Context, sessionID string) (*model.Cart, error) {
	data, err := s.client.Get(ctx, cartKey(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domainErrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get: %w", err)
	}

	var cart model.Cart
	if err := json.Unmarshal(data, &cart); err != nil {
		return nil, fmt.Errorf("unmarshal cart: %w", err)
	}
	return &cart, nil
}

// Save persists the cart and refreshes its TTL.
func (s *CartStore) Save(ctx context.Context, cart *model.Cart) error {
	data, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("marshal cart: %w", err)
	}
	if err := s.client.Set(ctx, cartKey(cart.SessionID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// Clear removes the session cart.
func (s *CartStore) Clear(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, cartKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}

// HealthCheck verifies Redis connectivity.
func (s *CartStore) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.client.Ping(ctx).Err()
}

// Close releases the underlying client.
func (s *CartStore) Close() error {
	return s.client.Close()
}

func cartKey(sessionID string) string {
	return "cart:" + sessionID
}
