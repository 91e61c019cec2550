package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/tonstore/storefront/internal/domain/errors"
	"github.com/tonstore/storefront/internal/server/http/dto"
)

// CheckoutHandler manages payment initiation and order status endpoints.
// Checkout endpoints answer with redirects: to the hosted payment page on
// success, back to the storefront with an error marker otherwise.
type CheckoutHandler struct {
	facade CheckoutFacade
}

// NewCheckoutHandler constructs CheckoutHandler.
func NewCheckoutHandler(facade CheckoutFacade) *CheckoutHandler {
	return &CheckoutHandler{facade: facade}
}

// Product handles GET /crypto_pay/:product_id.
func (h *CheckoutHandler) Product(c *gin.Context) {
	productID := c.Param("product_id")
	hostedURL, err := h.facade.CheckoutProduct(c.Request.Context(), productID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.Redirect(http.StatusFound, "/product/"+productID+"?error="+checkoutErrorCode(err))
		return
	}
	c.Redirect(http.StatusFound, hostedURL)
}

// Cart handles GET /crypto_pay_cart.
func (h *CheckoutHandler) Cart(c *gin.Context) {
	hostedURL, err := h.facade.CheckoutCart(c.Request.Context(), CurrentSessionID(c))
	if err != nil {
		c.Redirect(http.StatusFound, "/cart?error="+checkoutErrorCode(err))
		return
	}
	c.Redirect(http.StatusFound, hostedURL)
}

// OrderStatus handles GET /order_status/:order_id.
func (h *CheckoutHandler) OrderStatus(c *gin.Context) {
	orderID, err := strconv.ParseInt(c.Param("order_id"), 10, 64)
	if err != nil || orderID <= 0 {
		c.Status(http.StatusBadRequest)
		return
	}

	order, products, err := h.facade.OrderStatus(c.Request.Context(), orderID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, dto.ToOrderStatusResponse(*order, products))
}

func checkoutErrorCode(err error) string {
	switch {
	case errors.Is(err, domainErrors.ErrEmptyCart):
		return "cart_empty"
	case errors.Is(err, domainErrors.ErrPaymentsDisabled):
		return "payments_disabled"
	default:
		return "payment_failed"
	}
}
