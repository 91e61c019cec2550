package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/tonstore/storefront/internal/domain/errors"
	"github.com/tonstore/storefront/internal/server/http/dto"
)

// CartHandler manages session cart endpoints.
type CartHandler struct {
	facade CartFacade
}

// NewCartHandler constructs CartHandler.
func NewCartHandler(facade CartFacade) *CartHandler {
	return &CartHandler{facade: facade}
}

// Get handles GET /api/cart.
func (h *CartHandler) Get(c *gin.Context) {
	view, err := h.facade.Cart(c.Request.Context(), CurrentSessionID(c))
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, dto.ToCartResponse(*view))
}

// Add handles POST /api/cart/items/:product_id.
func (h *CartHandler) Add(c *gin.Context) {
	cart, err := h.facade.AddToCart(c.Request.Context(), CurrentSessionID(c), c.Param("product_id"))
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, gin.H{"total_items": cart.TotalItems()})
}

// Remove handles DELETE /api/cart/items/:product_id.
func (h *CartHandler) Remove(c *gin.Context) {
	cart, err := h.facade.RemoveFromCart(c.Request.Context(), CurrentSessionID(c), c.Param("product_id"))
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, gin.H{"total_items": cart.TotalItems()})
}

// Clear handles DELETE /api/cart.
func (h *CartHandler) Clear(c *gin.Context) {
	if err := h.facade.ClearCart(c.Request.Context(), CurrentSessionID(c)); err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.Status(http.StatusNoContent)
}
