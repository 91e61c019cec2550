package usecase

import (
	"context"
	"errors"
	"log/slog"

	domainErrors "github.com/tonstore/storefront/internal/domain/errors"
	"github.com/tonstore/storefront/internal/domain/model"
	"github.com/tonstore/storefront/internal/domain/repository"
)

// EventParser verifies a raw webhook payload against the shared secret and
// decodes it into a typed event.
type EventParser func(payload []byte, signature, secret string) (*model.WebhookEvent, error)

// WebhookUseCase settles orders from asynchronous provider callbacks. This is
// the only path that moves an order into a terminal state.
type WebhookUseCase struct {
	orders repository.OrderRepository
	parse  EventParser
	secret string
	logger *slog.Logger
}

// NewWebhookUseCase constructs WebhookUseCase.
func NewWebhookUseCase(orders repository.OrderRepository, parse EventParser, secret string, logger *slog.Logger) *WebhookUseCase {
	return &WebhookUseCase{orders: orders, parse: parse, secret: secret, logger: logger}
}

// HandleEvent verifies and dispatches one provider callback. Events for
// unknown orders, redeliveries and unhandled event types are acknowledged
// without touching any state so the provider stops retrying them.
func (u *WebhookUseCase) HandleEvent(ctx context.Context, payload []byte, signature string) error {
	if u.secret == "" {
		return domainErrors.ErrWebhookNotConfigured
	}

	event, err := u.parse(payload, signature, u.secret)
	if err != nil {
		return err
	}

	switch event.Type {
	case model.EventChargeConfirmed:
		return u.settle(ctx, event, model.OrderStatusPaid)
	case model.EventChargeFailed:
		return u.settle(ctx, event, model.OrderStatusFailed)
	default:
		u.logger.Info("ignoring webhook event",
			slog.String("event", event.ID), slog.String("type", string(event.Type)))
		return nil
	}
}

func (u *WebhookUseCase) settle(ctx context.Context, event *model.WebhookEvent, status model.OrderStatus) error {
	orderID := event.Metadata.OrderID
	if orderID == 0 {
		u.logger.Warn("webhook event has no order reference", slog.String("event", event.ID))
		return nil
	}

	err := u.orders.Finalize(ctx, orderID, status)
	switch {
	case err == nil:
		u.logger.Info("order settled",
			slog.Int64("order", orderID), slog.String("status", string(status)))
		return nil
	case errors.Is(err, domainErrors.ErrNotFound):
		u.logger.Warn("webhook for unknown order",
			slog.Int64("order", orderID), slog.String("event", event.ID))
		return nil
	case errors.Is(err, domainErrors.ErrInvalidTransition):
		u.logger.Warn("webhook ignored, order already settled",
			slog.Int64("order", orderID), slog.String("status", string(status)))
		return nil
	default:
		return err
	}
}
