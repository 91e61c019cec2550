package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tonstore/storefront/internal/adapter/coinbase"
	domainErrors "github.com/tonstore/storefront/internal/domain/errors"
)

// WebhookHandler receives asynchronous payment provider callbacks.
type WebhookHandler struct {
	facade WebhookFacade
}

// NewWebhookHandler constructs WebhookHandler.
func NewWebhookHandler(facade WebhookFacade) *WebhookHandler {
	return &WebhookHandler{facade: facade}
}

// Receive handles POST /webhooks/coinbase. The signature covers the raw
// request body byte for byte, so the body is passed through unparsed.
func (h *WebhookHandler) Receive(c *gin.Context) {
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	signature := c.GetHeader(coinbase.SignatureHeader)
	err = h.facade.HandleWebhook(c.Request.Context(), payload, signature)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrWebhookNotConfigured):
			c.Status(http.StatusInternalServerError)
		case errors.Is(err, domainErrors.ErrInvalidSignature),
			errors.Is(err, domainErrors.ErrInvalidPayload):
			c.Status(http.StatusBadRequest)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.Status(http.StatusOK)
}
