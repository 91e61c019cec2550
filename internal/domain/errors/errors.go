package errors

import "errors"

var (
	ErrNotFound             = errors.New("not found")
	ErrEmptyCart            = errors.New("cart is empty or has zero value")
	ErrPaymentsDisabled     = errors.New("crypto payments are disabled")
	ErrWebhookNotConfigured = errors.New("webhook secret is not configured")
	ErrInvalidSignature     = errors.New("invalid webhook signature")
	ErrInvalidPayload       = errors.New("invalid webhook payload")
	ErrInvalidTransition    = errors.New("invalid order status transition")
)
