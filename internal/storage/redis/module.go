package redis

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/tonstore/storefront/internal/config"
	"github.com/tonstore/storefront/internal/domain/repository"
)

// Module wires the Redis cart store.
var Module = fx.Options(
	fx.Provide(newCartStore),
	fx.Provide(func(s *CartStore) repository.CartStore { return s }),
	fx.Invoke(registerLifecycle),
)

type storeParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newCartStore(p storeParams) *CartStore {
	return New(p.Config.RedisAddress, p.Config.SessionTTL, p.Logger)
}

func registerLifecycle(lc fx.Lifecycle, store *CartStore) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return store.Close()
		},
	})
}
