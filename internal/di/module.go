package di

import (
	"go.uber.org/fx"

	"github.com/tonstore/storefront/internal/adapter/coinbase"
	"github.com/tonstore/storefront/internal/app"
	"github.com/tonstore/storefront/internal/config"
	"github.com/tonstore/storefront/internal/logger"
	"github.com/tonstore/storefront/internal/pkg/session"
	"github.com/tonstore/storefront/internal/server/http/handlers"
	"github.com/tonstore/storefront/internal/server/http/router"
	"github.com/tonstore/storefront/internal/storage/postgres"
	"github.com/tonstore/storefront/internal/storage/redis"
	"github.com/tonstore/storefront/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		session.Module,
		postgres.Module,
		redis.Module,
		coinbase.Module,
		usecase.Module,
		fx.Provide(
			func(client coinbase.Client) usecase.PaymentProvider { return client },
			func() usecase.EventParser { return coinbase.ParseEvent },
			func(facade *app.StoreFacade) handlers.StoreFacade { return facade },
		),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
