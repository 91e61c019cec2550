package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tonstore/storefront/internal/pkg/session"
)

const (
	// SessionIDContextKey is a gin context key for the visitor session identifier.
	SessionIDContextKey = "sessionID"
	sessionCookieName   = "storefront_session"
)

// Session resolves the visitor session from the signed cookie, issuing a
// fresh one when the cookie is missing or fails verification. Every request
// passing through ends up with a session identifier in the gin context.
func Session(strategy session.Strategy, ttl time.Duration) gin.HandlerFunc {
	maxAge := int(ttl / time.Second)
	return func(c *gin.Context) {
		if cookie, err := c.Cookie(sessionCookieName); err == nil {
			if id, err := strategy.Parse(cookie); err == nil {
				c.Set(SessionIDContextKey, id)
				c.Next()
				return
			}
		}

		id, token := strategy.Issue()
		c.SetCookie(sessionCookieName, token, maxAge, "/", "", false, true)
		c.Set(SessionIDContextKey, id)
		c.Next()
	}
}
