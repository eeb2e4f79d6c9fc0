package api

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/spicetable/pos/internal/api/handlers"
	"github.com/spicetable/pos/internal/api/middleware"
	"github.com/spicetable/pos/internal/api/terminals"
	"github.com/spicetable/pos/internal/config"
)

// NewRouter creates and configures the Gin router
func NewRouter(cfg *config.Config, reg *terminals.Registry, logger *zap.Logger) *gin.Engine {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Middleware
	router.Use(gin.Recovery())
	router.Use(loggingMiddleware(logger))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// API v1 routes
	v1 := router.Group("/v1")
	v1.Use(middleware.StationAuth(cfg, logger))
	{
		term := v1.Group("/terminals/:terminal")
		{
			term.GET("", handlers.HandleGetCart(reg, logger))
			term.GET("/catalog", handlers.HandleGetCatalog(reg, logger))
			term.PUT("/catalog/filter", handlers.HandleSetFilter(reg, logger))
			term.PUT("/catalog/page", handlers.HandleSetPage(reg, logger))

			term.POST("/cart/items", handlers.HandleAddItem(reg, logger))
			term.POST("/cart/manual", handlers.HandleAddManualItem(reg, logger))
			term.PATCH("/cart/items/:product", handlers.HandleChangeQuantity(reg, logger))
			term.DELETE("/cart/items/:product", handlers.HandleRemoveItem(reg, logger))

			term.PUT("/context", handlers.HandleSetContext(reg, logger))
			term.POST("/checkout", handlers.HandleCheckout(reg, logger))
			term.GET("/receipt", handlers.HandleGetReceipt(reg, logger))
			term.POST("/receipt/print", handlers.HandlePrint(reg, logger))
			term.POST("/dismiss", handlers.HandleDismiss(reg, logger))
		}
	}

	return router
}

// loggingMiddleware logs HTTP requests
func loggingMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		status := c.Writer.Status()
		logger.Info("HTTP request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
		)
	}
}
