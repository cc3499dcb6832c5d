// Package app wires configuration into the shopping service shared by the server and the CLI.
package app

import (
	"fmt"
	"log"

	"github.com/shoproute/backend/config"
	"github.com/shoproute/backend/internal/domain"
	"github.com/shoproute/backend/internal/infrastructure/cache"
	"github.com/shoproute/backend/internal/infrastructure/catalogapi"
	"github.com/shoproute/backend/internal/infrastructure/storage"
	"github.com/shoproute/backend/internal/usecase"
)

// Services holds the wired dependencies. Close releases background resources.
type Services struct {
	Shopping *usecase.ShoppingService
	Routes   *cache.RouteStore
}

// Close stops the route store janitor
func (s *Services) Close() {
	if s.Routes != nil {
		s.Routes.Close()
	}
}

// New builds the shopping service from configuration
func New(cfg *config.Config) (*Services, error) {
	catalog, err := NewCatalogProvider(cfg)
	if err != nil {
		return nil, err
	}

	routes := cache.NewRouteStore(cfg.Cache.CleanupInterval)
	shopping := usecase.NewShoppingService(
		catalog,
		storage.NewListFile(cfg.Store.ListPath),
		routes,
		usecase.ShoppingServiceConfig{
			RouteTTL:           cfg.Cache.TTL,
			MapBaseURL:         cfg.MapView.BaseURL,
			Stopwords:          cfg.Store.Stopwords,
			EnableDebugLogging: cfg.Server.Debug,
		},
	)

	return &Services{Shopping: shopping, Routes: routes}, nil
}

// NewCatalogProvider picks the catalog source named in the configuration
func NewCatalogProvider(cfg *config.Config) (domain.CatalogProvider, error) {
	switch cfg.Store.CatalogSource {
	case "file":
		log.Printf("[CATALOG] Reading catalog from %s", cfg.Store.CatalogPath)
		return storage.NewCatalogFile(cfg.Store.CatalogPath), nil
	case "http":
		client := catalogapi.NewClient(cfg.Store.CatalogAPIKey, cfg.Store.CatalogURL, cfg.RateLimit.Catalog)
		if cfg.Server.Environment == "development" || cfg.Server.Debug {
			client.SetDebug(true)
			log.Printf("[CATALOG] API client debug mode enabled")
		}
		if cfg.Store.CatalogAPIKey == "" {
			log.Printf("[CATALOG] WARNING: catalog API at %s has no API key configured", cfg.Store.CatalogURL)
		} else {
			log.Printf("[CATALOG] Catalog API configured: %s", cfg.Store.CatalogURL)
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unknown catalog source %q", cfg.Store.CatalogSource)
	}
}
