package usecase

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/tonstore/storefront/internal/config"
	"github.com/tonstore/storefront/internal/domain/repository"
)

// Module provides core business use cases to the fx container.
var Module = fx.Provide(
	NewCatalogUseCase,
	NewCartUseCase,
	newCheckoutUseCase,
	newWebhookUseCase,
)

type checkoutParams struct {
	fx.In

	Products repository.ProductRepository
	Orders   repository.OrderRepository
	Carts    *CartUseCase
	Payments PaymentProvider
	Config   *config.Config
	Logger   *slog.Logger
}

func newCheckoutUseCase(p checkoutParams) *CheckoutUseCase {
	return NewCheckoutUseCase(p.Products, p.Orders, p.Carts, p.Payments, p.Config.PublicBaseURL, p.Config.Currency, p.Logger)
}

type webhookParams struct {
	fx.In

	Orders repository.OrderRepository
	Parser EventParser
	Config *config.Config
	Logger *slog.Logger
}

func newWebhookUseCase(p webhookParams) *WebhookUseCase {
	return NewWebhookUseCase(p.Orders, p.Parser, p.Config.WebhookSecret, p.Logger)
}
