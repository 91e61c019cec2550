package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	domainErrors "github.com/tonstore/storefront/internal/domain/errors"
	"github.com/tonstore/storefront/internal/domain/model"
	"github.com/tonstore/storefront/internal/domain/repository"
)

// storeName labels charges on the hosted payment page.
const storeName = "TonStore"

// PaymentProvider is the slice of the payment gateway the checkout needs.
type PaymentProvider interface {
	// Enabled reports whether the gateway is configured to accept charges.
	Enabled() bool
	CreateCharge(ctx context.Context, req model.ChargeRequest) (*model.Charge, error)
}

// CheckoutUseCase drives the order lifecycle from checkout initiation up to
// the pending state. Terminal states are reached only through webhooks.
// While the gateway is not configured checkout is refused before any order
// row is recorded.
type CheckoutUseCase struct {
	products repository.ProductRepository
	orders   repository.OrderRepository
	carts    *CartUseCase
	payments PaymentProvider
	baseURL  string
	currency string
	logger   *slog.Logger
}

// NewCheckoutUseCase constructs CheckoutUseCase.
func NewCheckoutUseCase(
	products repository.ProductRepository,
	orders repository.OrderRepository,
	carts *CartUseCase,
	payments PaymentProvider,
	baseURL, currency string,
	logger *slog.Logger,
) *CheckoutUseCase {
	return &CheckoutUseCase{
		products: products,
		orders:   orders,
		carts:    carts,
		payments: payments,
		baseURL:  baseURL,
		currency: currency,
		logger:   logger,
	}
}

// CheckoutProduct creates an order for a single product and returns the
// hosted payment URL to redirect the buyer to. On a gateway failure the
// order stays in new with no charge reference.
func (u *CheckoutUseCase) CheckoutProduct(ctx context.Context, productID string) (string, error) {
	if !u.payments.Enabled() {
		return "", domainErrors.ErrPaymentsDisabled
	}

	product, err := u.products.GetByID(ctx, productID)
	if err != nil {
		return "", err
	}
	if product.Price <= 0 {
		return "", domainErrors.ErrEmptyCart
	}

	items := []model.OrderItem{{ProductID: product.ProductID, Quantity: 1, UnitPrice: product.Price}}
	order, err := u.orders.Create(ctx, items, product.Price, u.currency)
	if err != nil {
		return "", fmt.Errorf("create order: %w", err)
	}

	return u.requestCharge(ctx, order, model.ChargeRequest{
		Name:        product.Model,
		Description: fmt.Sprintf("Order #%d", order.ID),
		Amount:      order.Price,
		Currency:    u.currency,
		Metadata:    model.ChargeMetadata{OrderID: order.ID, ProductID: product.ProductID},
		RedirectURL: u.orderStatusURL(order.ID),
		CancelURL:   fmt.Sprintf("%s/product/%s", u.baseURL, product.ProductID),
	})
}

// CheckoutCart creates one order covering the whole session cart. The cart
// is cleared only after the charge is accepted by the gateway.
func (u *CheckoutUseCase) CheckoutCart(ctx context.Context, sessionID string) (string, error) {
	if !u.payments.Enabled() {
		return "", domainErrors.ErrPaymentsDisabled
	}

	cart, err := u.carts.Get(ctx, sessionID)
	if err != nil {
		return "", err
	}

	view, err := u.carts.price(ctx, cart)
	if err != nil {
		return "", err
	}
	if view.Total <= 0 {
		return "", domainErrors.ErrEmptyCart
	}

	items := make([]model.OrderItem, 0, len(view.Lines))
	descriptions := make([]string, 0, len(view.Lines))
	for _, line := range view.Lines {
		items = append(items, model.OrderItem{
			ProductID: line.Product.ProductID,
			Quantity:  line.Quantity,
			UnitPrice: line.Product.Price,
		})
		descriptions = append(descriptions, fmt.Sprintf("%s (x%d)", line.Product.Model, line.Quantity))
	}

	order, err := u.orders.Create(ctx, items, view.Total, u.currency)
	if err != nil {
		return "", fmt.Errorf("create order: %w", err)
	}

	cartItems, err := json.Marshal(cart.Items)
	if err != nil {
		return "", fmt.Errorf("serialize cart: %w", err)
	}

	hostedURL, err := u.requestCharge(ctx, order, model.ChargeRequest{
		Name:        fmt.Sprintf("Your Order #%d from %s", order.ID, storeName),
		Description: strings.Join(descriptions, ", "),
		Amount:      order.Price,
		Currency:    u.currency,
		Metadata:    model.ChargeMetadata{OrderID: order.ID, CartItems: string(cartItems)},
		RedirectURL: u.orderStatusURL(order.ID),
		CancelURL:   u.baseURL + "/cart",
	})
	if err != nil {
		return "", err
	}

	if err := u.carts.Clear(ctx, sessionID); err != nil {
		u.logger.Error("clear cart after checkout failed",
			slog.String("session", sessionID), slog.String("error", err.Error()))
	}
	return hostedURL, nil
}

// OrderStatus returns the order together with catalog data for its items.
func (u *CheckoutUseCase) OrderStatus(ctx context.Context, orderID int64) (*model.Order, []model.Product, error) {
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, nil, err
	}

	products := make([]model.Product, 0, len(order.Items))
	for _, item := range order.Items {
		product, err := u.products.GetByID(ctx, item.ProductID)
		if err != nil {
			if errors.Is(err, domainErrors.ErrNotFound) {
				continue
			}
			return nil, nil, err
		}
		products = append(products, *product)
	}
	return order, products, nil
}

func (u *CheckoutUseCase) requestCharge(ctx context.Context, order *model.Order, req model.ChargeRequest) (string, error) {
	charge, err := u.payments.CreateCharge(ctx, req)
	if err != nil {
		u.logger.Error("charge creation failed",
			slog.Int64("order", order.ID), slog.String("error", err.Error()))
		return "", fmt.Errorf("create charge: %w", err)
	}

	if err := u.orders.AttachCharge(ctx, order.ID, charge.Code); err != nil {
		return "", fmt.Errorf("attach charge: %w", err)
	}

	u.logger.Info("charge created",
		slog.Int64("order", order.ID), slog.String("charge", charge.Code))
	return charge.HostedURL, nil
}

func (u *CheckoutUseCase) orderStatusURL(orderID int64) string {
	return fmt.Sprintf("%s/order_status/%d", u.baseURL, orderID)
}
