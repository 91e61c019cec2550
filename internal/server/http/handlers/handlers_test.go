package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/tonstore/storefront/internal/domain/errors"
	"github.com/tonstore/storefront/internal/domain/model"
	"github.com/tonstore/storefront/internal/server/http/dto"
	"github.com/tonstore/storefront/internal/server/http/middleware"
	testhelpers "github.com/tonstore/storefront/internal/test"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func performRequest(t *testing.T, method, path, target string, handler gin.HandlerFunc, setup func(*gin.Context), body []byte, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	router := gin.New()
	router.Handle(method, path, func(c *gin.Context) {
		if setup != nil {
			setup(c)
		}
		handler(c)
	})

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func withSession(id string) func(*gin.Context) {
	return func(c *gin.Context) {
		c.Set(middleware.SessionIDContextKey, id)
	}
}

func TestCurrentSessionID(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	if got := CurrentSessionID(c); got != "" {
		t.Fatalf("expected empty session when not set, got %q", got)
	}

	c.Set(middleware.SessionIDContextKey, "session-1")
	if got := CurrentSessionID(c); got != "session-1" {
		t.Fatalf("expected session-1, got %q", got)
	}
}

func TestCatalogHandlerList(t *testing.T) {
	stub := testhelpers.CatalogFacadeStub{
		ProductsFn: func(_ context.Context, category, search, sort string) ([]model.Product, error) {
			if category != "iphone" || search != "pro" || sort != "price_asc" {
				t.Fatalf("unexpected query passed to facade: %q %q %q", category, search, sort)
			}
			return []model.Product{{ProductID: "iphone-13", Model: "iPhone 13", Price: 50000}}, nil
		},
	}
	resp := performRequest(t, http.MethodGet, "/products", "/products?category=iphone&search=pro&sort=price_asc",
		NewCatalogHandler(stub).List, nil, nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	var products []dto.ProductResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &products); err != nil {
		t.Fatalf("response is not json: %v", err)
	}
	if len(products) != 1 || products[0].ProductID != "iphone-13" {
		t.Fatalf("unexpected response: %+v", products)
	}
}

func TestCatalogHandlerGetNotFound(t *testing.T) {
	stub := testhelpers.CatalogFacadeStub{
		ProductFn: func(context.Context, string) (*model.Product, error) {
			return nil, domainErrors.ErrNotFound
		},
	}
	resp := performRequest(t, http.MethodGet, "/products/:product_id", "/products/ghost",
		NewCatalogHandler(stub).Get, nil, nil, nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", resp.Code)
	}
}

func TestCatalogHandlerCategories(t *testing.T) {
	resp := performRequest(t, http.MethodGet, "/categories", "/categories",
		NewCatalogHandler(testhelpers.CatalogFacadeStub{}).Categories, nil, nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	var categories []dto.CategoryResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &categories); err != nil {
		t.Fatalf("response is not json: %v", err)
	}
	if len(categories) != 1 || categories[0].Name != "iphone" {
		t.Fatalf("unexpected response: %+v", categories)
	}
}

func TestCatalogHandlerFeaturedLimitPassed(t *testing.T) {
	var gotLimit int
	stub := testhelpers.CatalogFacadeStub{
		FeaturedFn: func(_ context.Context, limit int) ([]model.Product, error) {
			gotLimit = limit
			return nil, nil
		},
	}
	resp := performRequest(t, http.MethodGet, "/products/featured", "/products/featured?limit=3",
		NewCatalogHandler(stub).Featured, nil, nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	if gotLimit != 3 {
		t.Fatalf("limit = %d, want 3", gotLimit)
	}
}

func TestCartHandlerGet(t *testing.T) {
	stub := testhelpers.CartFacadeStub{
		CartFn: func(_ context.Context, sessionID string) (*model.CartView, error) {
			if sessionID != "session-1" {
				t.Fatalf("unexpected session %q", sessionID)
			}
			return &model.CartView{
				Lines: []model.CartLine{{Product: model.Product{ProductID: "iphone-13", Price: 50000}, Quantity: 2, Total: 100000}},
				Total: 100000,
			}, nil
		},
	}
	resp := performRequest(t, http.MethodGet, "/cart", "/cart",
		NewCartHandler(stub).Get, withSession("session-1"), nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	var cart dto.CartResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &cart); err != nil {
		t.Fatalf("response is not json: %v", err)
	}
	if cart.Total != 100000 || cart.TotalItems != 2 {
		t.Fatalf("unexpected response: %+v", cart)
	}
}

func TestCartHandlerAddUnknownProduct(t *testing.T) {
	stub := testhelpers.CartFacadeStub{
		AddFn: func(context.Context, string, string) (*model.Cart, error) {
			return nil, domainErrors.ErrNotFound
		},
	}
	resp := performRequest(t, http.MethodPost, "/cart/items/:product_id", "/cart/items/ghost",
		NewCartHandler(stub).Add, withSession("session-1"), nil, nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", resp.Code)
	}
}

func TestCartHandlerAdd(t *testing.T) {
	resp := performRequest(t, http.MethodPost, "/cart/items/:product_id", "/cart/items/iphone-13",
		NewCartHandler(testhelpers.CartFacadeStub{}).Add, withSession("session-1"), nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	var body map[string]int
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not json: %v", err)
	}
	if body["total_items"] != 1 {
		t.Fatalf("unexpected response: %+v", body)
	}
}

func TestCartHandlerClear(t *testing.T) {
	var clearedSession string
	stub := testhelpers.CartFacadeStub{
		ClearFn: func(_ context.Context, sessionID string) error {
			clearedSession = sessionID
			return nil
		},
	}
	resp := performRequest(t, http.MethodDelete, "/cart", "/cart",
		NewCartHandler(stub).Clear, withSession("session-1"), nil, nil)
	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d", resp.Code)
	}
	if clearedSession != "session-1" {
		t.Fatalf("unexpected session cleared: %q", clearedSession)
	}
}

func TestCheckoutHandlerProductRedirectsToHostedPage(t *testing.T) {
	stub := testhelpers.CheckoutFacadeStub{
		ProductFn: func(_ context.Context, productID string) (string, error) {
			if productID != "iphone-13" {
				t.Fatalf("unexpected product %q", productID)
			}
			return "https://pay.example/CHARGE1", nil
		},
	}
	resp := performRequest(t, http.MethodGet, "/crypto_pay/:product_id", "/crypto_pay/iphone-13",
		NewCheckoutHandler(stub).Product, nil, nil, nil)
	if resp.Code != http.StatusFound {
		t.Fatalf("expected status 302, got %d", resp.Code)
	}
	if got := resp.Header().Get("Location"); got != "https://pay.example/CHARGE1" {
		t.Fatalf("unexpected redirect target %q", got)
	}
}

func TestCheckoutHandlerProductUnknown(t *testing.T) {
	stub := testhelpers.CheckoutFacadeStub{
		ProductFn: func(context.Context, string) (string, error) {
			return "", domainErrors.ErrNotFound
		},
	}
	resp := performRequest(t, http.MethodGet, "/crypto_pay/:product_id", "/crypto_pay/ghost",
		NewCheckoutHandler(stub).Product, nil, nil, nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", resp.Code)
	}
}

func TestCheckoutHandlerProductGatewayFailure(t *testing.T) {
	stub := testhelpers.CheckoutFacadeStub{
		ProductFn: func(context.Context, string) (string, error) {
			return "", errors.New("gateway unavailable")
		},
	}
	resp := performRequest(t, http.MethodGet, "/crypto_pay/:product_id", "/crypto_pay/iphone-13",
		NewCheckoutHandler(stub).Product, nil, nil, nil)
	if resp.Code != http.StatusFound {
		t.Fatalf("expected status 302, got %d", resp.Code)
	}
	if got := resp.Header().Get("Location"); got != "/product/iphone-13?error=payment_failed" {
		t.Fatalf("unexpected redirect target %q", got)
	}
}

func TestCheckoutHandlerCartEmpty(t *testing.T) {
	stub := testhelpers.CheckoutFacadeStub{
		CartFn: func(context.Context, string) (string, error) {
			return "", domainErrors.ErrEmptyCart
		},
	}
	resp := performRequest(t, http.MethodGet, "/crypto_pay_cart", "/crypto_pay_cart",
		NewCheckoutHandler(stub).Cart, withSession("session-1"), nil, nil)
	if resp.Code != http.StatusFound {
		t.Fatalf("expected status 302, got %d", resp.Code)
	}
	if got := resp.Header().Get("Location"); got != "/cart?error=cart_empty" {
		t.Fatalf("unexpected redirect target %q", got)
	}
}

func TestCheckoutHandlerCartPaymentsDisabled(t *testing.T) {
	stub := testhelpers.CheckoutFacadeStub{
		CartFn: func(context.Context, string) (string, error) {
			return "", domainErrors.ErrPaymentsDisabled
		},
	}
	resp := performRequest(t, http.MethodGet, "/crypto_pay_cart", "/crypto_pay_cart",
		NewCheckoutHandler(stub).Cart, withSession("session-1"), nil, nil)
	if resp.Code != http.StatusFound {
		t.Fatalf("expected status 302, got %d", resp.Code)
	}
	if got := resp.Header().Get("Location"); got != "/cart?error=payments_disabled" {
		t.Fatalf("unexpected redirect target %q", got)
	}
}

func TestCheckoutHandlerOrderStatus(t *testing.T) {
	stub := testhelpers.CheckoutFacadeStub{
		StatusFn: func(_ context.Context, orderID int64) (*model.Order, []model.Product, error) {
			if orderID != 7 {
				t.Fatalf("unexpected order id %d", orderID)
			}
			return &model.Order{
				ID: 7, Status: model.OrderStatusPaid, Price: 50000, Currency: "RUB",
				Items: []model.OrderItem{{ProductID: "iphone-13", Quantity: 1, UnitPrice: 50000}},
			}, []model.Product{{ProductID: "iphone-13", Model: "iPhone 13"}}, nil
		},
	}
	resp := performRequest(t, http.MethodGet, "/order_status/:order_id", "/order_status/7",
		NewCheckoutHandler(stub).OrderStatus, nil, nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	var status dto.OrderStatusResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &status); err != nil {
		t.Fatalf("response is not json: %v", err)
	}
	if status.OrderID != 7 || status.Status != "paid" || len(status.Items) != 1 {
		t.Fatalf("unexpected response: %+v", status)
	}
}

func TestCheckoutHandlerOrderStatusBadID(t *testing.T) {
	resp := performRequest(t, http.MethodGet, "/order_status/:order_id", "/order_status/abc",
		NewCheckoutHandler(testhelpers.CheckoutFacadeStub{}).OrderStatus, nil, nil, nil)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
}

func TestCheckoutHandlerOrderStatusUnknown(t *testing.T) {
	stub := testhelpers.CheckoutFacadeStub{
		StatusFn: func(context.Context, int64) (*model.Order, []model.Product, error) {
			return nil, nil, domainErrors.ErrNotFound
		},
	}
	resp := performRequest(t, http.MethodGet, "/order_status/:order_id", "/order_status/404",
		NewCheckoutHandler(stub).OrderStatus, nil, nil, nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", resp.Code)
	}
}

func TestWebhookHandlerPassesRawBody(t *testing.T) {
	payload := []byte(`{"event":{"id":"evt-1"}}`)
	stub := &testhelpers.WebhookFacadeStub{
		HandleFn: func(_ context.Context, body []byte, signature string) error {
			if !bytes.Equal(body, payload) {
				t.Fatalf("payload altered before verification: %q", body)
			}
			if signature != "deadbeef" {
				t.Fatalf("unexpected signature %q", signature)
			}
			return nil
		},
	}
	resp := performRequest(t, http.MethodPost, "/webhooks/coinbase", "/webhooks/coinbase",
		NewWebhookHandler(stub).Receive, nil, payload,
		map[string]string{"X-CC-Webhook-Signature": "deadbeef"})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
}

func TestWebhookHandlerStatusMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"not configured", domainErrors.ErrWebhookNotConfigured, http.StatusInternalServerError},
		{"bad signature", domainErrors.ErrInvalidSignature, http.StatusBadRequest},
		{"bad payload", domainErrors.ErrInvalidPayload, http.StatusBadRequest},
		{"storage failure", errors.New("db gone"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			stub := &testhelpers.WebhookFacadeStub{
				HandleFn: func(context.Context, []byte, string) error { return tc.err },
			}
			resp := performRequest(t, http.MethodPost, "/webhooks/coinbase", "/webhooks/coinbase",
				NewWebhookHandler(stub).Receive, nil, []byte("{}"), nil)
			if resp.Code != tc.want {
				t.Fatalf("expected status %d, got %d", tc.want, resp.Code)
			}
		})
	}
}
