package http

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopscout/backend/config"
	"github.com/shopscout/backend/internal/monitoring"
	"go.uber.org/zap"
)

// SetupRouter creates and configures the Gin router. metrics may be nil, in
// which case no metrics are recorded and /metrics is not exposed.
func SetupRouter(cfg *config.Config, handler *Handler, logger *zap.Logger, metrics *monitoring.Metrics) *gin.Engine {
	// Set Gin mode based on environment
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(RecoveryMiddleware(logger))
	router.Use(RequestIDMiddleware())
	router.Use(LoggerMiddleware(logger))
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))
	if metrics != nil {
		router.Use(MetricsMiddleware(metrics))
	}

	// Health check endpoint
	router.GET("/health", handler.HealthCheck)

	if metrics != nil {
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		products := v1.Group("/products")
		{
			products.POST("/search", handler.SearchProducts)
			products.GET("/compare", handler.ComparePrices)
		}

		shipping := v1.Group("/shipping")
		{
			shipping.POST("/estimate", handler.EstimateShipping)
		}

		promo := v1.Group("/promo")
		{
			promo.POST("/check", handler.CheckPromo)
		}

		returns := v1.Group("/returns")
		{
			returns.GET("/:website", handler.GetReturnPolicy)
		}
	}

	return router
}
