package coinbase

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/tonstore/storefront/internal/config"
)

// Module exposes the payment provider client to the fx graph.
var Module = fx.Provide(newClient)

type clientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newClient(p clientParams) (Client, error) {
	if !p.Config.PaymentsEnabled() {
		p.Logger.Warn("coinbase api key not set, crypto payments are disabled")
		return DisabledClient{}, nil
	}
	return NewHTTPClient(p.Config.CoinbaseAPIURL, p.Config.CoinbaseAPIKey, p.Config.ChargeTimeout, p.Logger)
}
