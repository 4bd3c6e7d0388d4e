package http

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/storeinsights/backend/config"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler) *gin.Engine {
	// Set Gin mode based on environment
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Only listed proxies may set the client IP through forwarding headers
	if err := router.SetTrustedProxies(cfg.Server.TrustedProxies); err != nil {
		log.Printf("[HTTP] invalid trusted proxies %v, trusting none: %v", cfg.Server.TrustedProxies, err)
		_ = router.SetTrustedProxies(nil)
	}

	// Global middleware
	router.Use(RecoveryMiddleware())
	router.Use(RequestIDMiddleware())
	router.Use(LoggerMiddleware())
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))

	router.GET("/", handler.Root)
	router.GET("/health", handler.HealthCheck)

	limited := RateLimitMiddleware(cfg.RateLimit.PerIP, cfg.RateLimit.Burst)

	// Legacy path used by the existing dashboard
	router.POST("/analyze-store", limited, handler.AnalyzeStore)

	// API v1 routes
	v1 := router.Group("/api/v1")
	v1.Use(limited)
	{
		v1.POST("/analyze-store", handler.AnalyzeStore)
	}

	return router
}
