package main

import (
	"fmt"
	"log"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/storeinsights/backend/config"
	httpDelivery "github.com/storeinsights/backend/internal/delivery/http"
	"github.com/storeinsights/backend/internal/infrastructure/storefront"
	"github.com/storeinsights/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting Store Insights Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)

	// Initialize infrastructure dependencies
	transport := storefront.NewTransport(cfg.Fetch.MaxIdleConns, cfg.Fetch.MaxIdleConnsPerHost)
	storefrontClient := storefront.NewClient(transport, cfg.Fetch.UserAgent, cfg.Fetch.MaxBodyBytes)

	// Enable debug mode in development environment
	if cfg.Server.Environment == "development" {
		storefrontClient.SetDebug(true)
		log.Printf("Storefront client debug mode enabled")
	}

	log.Printf("Fetch timeouts: root=%s feed=%s policy=%s",
		cfg.Fetch.RootTimeout,
		cfg.Fetch.FeedTimeout,
		cfg.Fetch.PolicyTimeout)

	// Initialize usecase layer
	insightsService := usecase.NewInsightsService(
		storefrontClient,
		usecase.InsightsServiceConfig{
			RootTimeout:   cfg.Fetch.RootTimeout,
			FeedTimeout:   cfg.Fetch.FeedTimeout,
			PolicyTimeout: cfg.Fetch.PolicyTimeout,
			PhoneRegion:   cfg.Contact.DefaultRegion,
		},
	)

	if cfg.RateLimit.PerIP > 0 {
		log.Printf("Rate limit: %d/min per IP (burst %d), trusted proxies: %v",
			cfg.RateLimit.PerIP, cfg.RateLimit.Burst, cfg.Server.TrustedProxies)
	} else {
		log.Printf("Rate limit: disabled")
	}

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(insightsService)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
