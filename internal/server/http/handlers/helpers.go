package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/tonstore/storefront/internal/server/http/middleware"
)

// CurrentSessionID extracts the visitor session identifier from context.
func CurrentSessionID(c *gin.Context) string {
	val, ok := c.Get(middleware.SessionIDContextKey)
	if !ok {
		return ""
	}
	id, _ := val.(string)
	return id
}
