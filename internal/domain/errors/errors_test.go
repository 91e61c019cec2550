package errors

import (
	stdErrors "errors"
	"testing"
)

func TestSentinelErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
	}{
		{"not found", ErrNotFound},
		{"empty cart", ErrEmptyCart},
		{"payments disabled", ErrPaymentsDisabled},
		{"webhook not configured", ErrWebhookNotConfigured},
		{"invalid signature", ErrInvalidSignature},
		{"invalid payload", ErrInvalidPayload},
		{"invalid transition", ErrInvalidTransition},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if !stdErrors.Is(tc.err, tc.err) {
				t.Fatalf("expected error to match itself: %v", tc.err)
			}
		})
	}
}
