package main

import (
	"fmt"
	"log"
	"os"

	"github.com/shoproute/backend/config"
	"github.com/shoproute/backend/internal/app"
	httpDelivery "github.com/shoproute/backend/internal/delivery/http"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting ShopRoute Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)
	log.Printf("Cache Type: %s (route TTL %s)", cfg.Cache.Type, cfg.Cache.TTL)
	log.Printf("Shopping list: %s", cfg.Store.ListPath)
	log.Printf("Map view: %s", cfg.MapView.BaseURL)

	// Initialize infrastructure and usecase layers
	services, err := app.New(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize services: %v", err)
	}
	defer services.Close()

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(services.Shopping)

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
