package main

import (
	"log"

	"github.com/omarsakr/SakrStore/analytics"
	"github.com/omarsakr/SakrStore/catalog"
	"github.com/omarsakr/SakrStore/config"
	"github.com/omarsakr/SakrStore/controllers"
	"github.com/omarsakr/SakrStore/routes"
	"github.com/omarsakr/SakrStore/utils"
)

func main() {
	// Initialize logger
	if err := utils.InitLogger(); err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}

	// Load environment variables
	cfg, err := config.LoadConfig()
	if err != nil {
		utils.LogError("Error loading config: %v", err)
		log.Fatal("Error loading config:", err)
	}

	// Wire the catalog, coupon source, and analytics dispatcher
	controllers.Init(&controllers.App{
		Catalog:        catalog.NewCache(cfg.CatalogURL, nil),
		Coupons:        catalog.NewCouponSource(cfg.CouponsURL, nil),
		Analytics:      analytics.NewDispatcher(cfg.AnalyticsEndpoint, nil),
		WhatsAppNumber: cfg.WhatsAppNumber,
	})

	// Set up router
	router := routes.SetupRouter(cfg)

	utils.LogInfo("%s starting on port %s", utils.AppName, cfg.Port)
	// Start server
	if err := router.Run(":" + cfg.Port); err != nil {
		utils.LogError("Error starting server: %v", err)
		log.Fatal("Error starting server:", err)
	}
}
