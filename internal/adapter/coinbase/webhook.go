package coinbase

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	domainErrors "github.com/tonstore/storefront/internal/domain/errors"
	"github.com/tonstore/storefront/internal/domain/model"
)

// SignatureHeader carries the provider signature over the raw request body.
const SignatureHeader = "X-CC-Webhook-Signature"

// eventEnvelope mirrors the webhook payload shape.
type eventEnvelope struct {
	Event struct {
		ID   string `json:"id"`
		Type string `json:"type"`
		Data struct {
			Code     string               `json:"code"`
			Metadata model.ChargeMetadata `json:"metadata"`
		} `json:"data"`
	} `json:"event"`
}

// ParseEvent verifies the HMAC-SHA256 signature over the raw payload and only
// then decodes it. Nothing in the payload is trusted before the signature
// check passes. An empty secret refuses all traffic.
func ParseEvent(payload []byte, signature, secret string) (*model.WebhookEvent, error) {
	if secret == "" {
		return nil, domainErrors.ErrWebhookNotConfigured
	}

	provided, err := hex.DecodeString(signature)
	if err != nil {
		return nil, domainErrors.ErrInvalidSignature
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	if !hmac.Equal(mac.Sum(nil), provided) {
		return nil, domainErrors.ErrInvalidSignature
	}

	var envelope eventEnvelope
	if err := json.Unmarshal(payload, &envelope); err != nil {
		return nil, domainErrors.ErrInvalidPayload
	}
	if envelope.Event.Type == "" {
		return nil, domainErrors.ErrInvalidPayload
	}

	return &model.WebhookEvent{
		ID:       envelope.Event.ID,
		Type:     model.WebhookEventType(envelope.Event.Type),
		Code:     envelope.Event.Data.Code,
		Metadata: envelope.Event.Data.Metadata,
	}, nil
}

// SignPayload computes the hex signature the provider would attach to the
// payload. Used by tests and local tooling to emit valid webhook traffic.
func SignPayload(payload []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}
