package model

// ChargeMetadata travels to the payment provider and comes back verbatim
// in webhook events, correlating a charge with the local order.
type ChargeMetadata struct {
	OrderID   int64  `json:"order_id"`
	ProductID string `json:"product_id,omitempty"`
	CartItems string `json:"cart_items,omitempty"`
}

// ChargeRequest describes a charge-creation call to the payment provider.
type ChargeRequest struct {
	Name        string
	Description string
	Amount      int64
	Currency    string
	Metadata    ChargeMetadata
	RedirectURL string
	CancelURL   string
}

// Charge is the provider-side payment object created for an order.
type Charge struct {
	Code      string
	HostedURL string
}

// WebhookEventType discriminates provider callback events.
type WebhookEventType string

const (
	EventChargeConfirmed WebhookEventType = "charge:confirmed"
	EventChargeFailed    WebhookEventType = "charge:failed"
)

// WebhookEvent is a verified provider callback.
type WebhookEvent struct {
	ID       string
	Type     WebhookEventType
	Code     string
	Metadata ChargeMetadata
}
