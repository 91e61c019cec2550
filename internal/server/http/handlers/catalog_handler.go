package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/tonstore/storefront/internal/domain/errors"
	"github.com/tonstore/storefront/internal/server/http/dto"
)

// CatalogHandler manages catalog browsing endpoints.
type CatalogHandler struct {
	facade CatalogFacade
}

// NewCatalogHandler constructs CatalogHandler.
func NewCatalogHandler(facade CatalogFacade) *CatalogHandler {
	return &CatalogHandler{facade: facade}
}

// List handles GET /api/products.
func (h *CatalogHandler) List(c *gin.Context) {
	products, err := h.facade.Products(c.Request.Context(),
		c.Query("category"), c.Query("search"), c.Query("sort"))
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	response := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		response = append(response, dto.ToProductResponse(p))
	}
	c.JSON(http.StatusOK, response)
}

// Get handles GET /api/products/:product_id.
func (h *CatalogHandler) Get(c *gin.Context) {
	product, err := h.facade.Product(c.Request.Context(), c.Param("product_id"))
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, dto.ToProductResponse(*product))
}

// Categories handles GET /api/categories.
func (h *CatalogHandler) Categories(c *gin.Context) {
	categories, err := h.facade.Categories(c.Request.Context())
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	response := make([]dto.CategoryResponse, 0, len(categories))
	for _, cat := range categories {
		response = append(response, dto.CategoryResponse{Name: cat.Name, Count: cat.Count})
	}
	c.JSON(http.StatusOK, response)
}

// Featured handles GET /api/products/featured.
func (h *CatalogHandler) Featured(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	products, err := h.facade.Featured(c.Request.Context(), limit)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	response := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		response = append(response, dto.ToProductResponse(p))
	}
	c.JSON(http.StatusOK, response)
}
