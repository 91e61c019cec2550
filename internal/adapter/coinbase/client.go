package coinbase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"time"

	domainErrors "github.com/tonstore/storefront/internal/domain/errors"
	"github.com/tonstore/storefront/internal/domain/model"
)

// apiVersion pins the Coinbase Commerce API revision.
const apiVersion = "2018-03-22"

// Client exposes the charge-creation call against the payment provider.
type Client interface {
	// Enabled reports whether the client can reach the provider at all.
	Enabled() bool
	CreateCharge(ctx context.Context, req model.ChargeRequest) (*model.Charge, error)
}

// HTTPClient implements Client via the Coinbase Commerce HTTP API.
type HTTPClient struct {
	baseURL    *url.URL
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

type localPrice struct {
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
}

// chargePayload mirrors the charge-creation request body.
type chargePayload struct {
	Name        string               `json:"name"`
	Description string               `json:"description"`
	LocalPrice  localPrice           `json:"local_price"`
	PricingType string               `json:"pricing_type"`
	Metadata    model.ChargeMetadata `json:"metadata"`
	RedirectURL string               `json:"redirect_url"`
	CancelURL   string               `json:"cancel_url"`
}

// chargeResponse mirrors the relevant part of the provider response.
type chargeResponse struct {
	Data struct {
		Code      string `json:"code"`
		HostedURL string `json:"hosted_url"`
	} `json:"data"`
}

// NewHTTPClient creates the charge client with a bounded request timeout.
func NewHTTPClient(baseURL, apiKey string, timeout time.Duration, logger *slog.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse coinbase url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("coinbase url must be absolute")
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &HTTPClient{
		baseURL: parsed,
		apiKey:  apiKey,
		logger:  logger,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

// Enabled reports that the client is configured for live charge creation.
func (c *HTTPClient) Enabled() bool {
	return true
}

// CreateCharge requests a hosted payment page for the order. Transport errors
// and provider 5xx responses get a single retry; provider rejections do not.
func (c *HTTPClient) CreateCharge(ctx context.Context, req model.ChargeRequest) (*model.Charge, error) {
	endpoint := *c.baseURL
	endpoint.Path = path.Join(endpoint.Path, "/charges")

	body, err := json.Marshal(chargePayload{
		Name:        req.Name,
		Description: req.Description,
		LocalPrice: localPrice{
			Amount:   strconv.FormatInt(req.Amount, 10),
			Currency: req.Currency,
		},
		PricingType: "fixed_price",
		Metadata:    req.Metadata,
		RedirectURL: req.RedirectURL,
		CancelURL:   req.CancelURL,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal charge: %w", err)
	}

	var lastErr error
	for attempt := 0; attempt < 2; attempt++ {
		charge, retryable, err := c.attempt(ctx, endpoint.String(), body)
		if err == nil {
			return charge, nil
		}
		lastErr = err
		if !retryable {
			break
		}
		if ctx.Err() != nil {
			break
		}
	}
	return nil, lastErr
}

func (c *HTTPClient) attempt(ctx context.Context, endpoint string, body []byte) (*model.Charge, bool, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, false, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("X-CC-Api-Key", c.apiKey)
	httpReq.Header.Set("X-CC-Version", apiVersion)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, true, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusCreated:
		var data chargeResponse
		if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
			return nil, false, fmt.Errorf("decode charge response: %w", err)
		}
		if data.Data.Code == "" || data.Data.HostedURL == "" {
			return nil, false, fmt.Errorf("charge response missing code or hosted url")
		}
		return &model.Charge{Code: data.Data.Code, HostedURL: data.Data.HostedURL}, false, nil
	case resp.StatusCode >= http.StatusInternalServerError:
		c.logger.Warn("coinbase server error", slog.Int("status", resp.StatusCode))
		return nil, true, fmt.Errorf("coinbase error: %s", resp.Status)
	default:
		respBody, _ := io.ReadAll(resp.Body)
		c.logger.Error("charge creation rejected", slog.Int("status", resp.StatusCode), slog.String("body", string(respBody)))
		return nil, false, fmt.Errorf("coinbase rejected charge: %s", resp.Status)
	}
}

// DisabledClient satisfies Client when no API key is configured. Every
// checkout fails with ErrPaymentsDisabled instead of reaching the network.
type DisabledClient struct{}

// Enabled always reports the gateway as unavailable.
func (DisabledClient) Enabled() bool {
	return false
}

// CreateCharge always reports payments as disabled.
func (DisabledClient) CreateCharge(context.Context, model.ChargeRequest) (*model.Charge, error) {
	return nil, domainErrors.ErrPaymentsDisabled
}
