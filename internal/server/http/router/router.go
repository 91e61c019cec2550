package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/tonstore/storefront/internal/config"
	"github.com/tonstore/storefront/internal/pkg/session"
	"github.com/tonstore/storefront/internal/server/http/handlers"
	"github.com/tonstore/storefront/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.StoreFacade, strategy session.Strategy, cfg *config.Config, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	catalogHandler := handlers.NewCatalogHandler(facade)
	cartHandler := handlers.NewCartHandler(facade)
	checkoutHandler := handlers.NewCheckoutHandler(facade)
	webhookHandler := handlers.NewWebhookHandler(facade)

	sessions := middleware.Session(strategy, cfg.SessionTTL)

	api := engine.Group("/api")
	api.GET("/products", catalogHandler.List)
	api.GET("/products/featured", catalogHandler.Featured)
	api.GET("/products/:product_id", catalogHandler.Get)
	api.GET("/categories", catalogHandler.Categories)

	cart := api.Group("/cart")
	cart.Use(sessions)
	cart.GET("", cartHandler.Get)
	cart.DELETE("", cartHandler.Clear)
	cart.POST("/items/:product_id", cartHandler.Add)
	cart.DELETE("/items/:product_id", cartHandler.Remove)

	engine.GET("/crypto_pay/:product_id", checkoutHandler.Product)
	engine.GET("/crypto_pay_cart", sessions, checkoutHandler.Cart)
	engine.GET("/order_status/:order_id", checkoutHandler.OrderStatus)

	engine.POST("/webhooks/coinbase", webhookHandler.Receive)

	return engine
}
