package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/shoproute/backend/internal/domain"
)

// ShoppingServiceConfig holds configuration for the shopping service
type ShoppingServiceConfig struct {
	RouteTTL           time.Duration
	MapBaseURL         string
	Stopwords          []string
	EnableDebugLogging bool
}

// ShoppingService keeps the shopper's list and plans routes through the store
type ShoppingService struct {
	catalog    domain.CatalogProvider
	lists      domain.ListRepository
	cache      domain.CacheRepository
	parser     *ListParser
	routeTTL   time.Duration
	mapBaseURL string
	debug      bool
}

// NewShoppingService creates a new shopping service with dependencies
func NewShoppingService(
	catalog domain.CatalogProvider,
	lists domain.ListRepository,
	cache domain.CacheRepository,
	config ShoppingServiceConfig,
) *ShoppingService {
	routeTTL := config.RouteTTL
	if routeTTL == 0 {
		routeTTL = 24 * time.Hour
	}

	return &ShoppingService{
		catalog:    catalog,
		lists:      lists,
		cache:      cache,
		parser:     NewListParser(config.Stopwords, config.EnableDebugLogging),
		routeTTL:   routeTTL,
		mapBaseURL: config.MapBaseURL,
		debug:      config.EnableDebugLogging,
	}
}

// SaveList parses free text into items, keeps those the store carries and saves them.
// Flow: parse -> load catalog -> resolve -> save valid items -> report ignored ones
func (s *ShoppingService) SaveList(ctx context.Context, text string) (*domain.SaveListResult, error) {
	items := s.parser.ParseItems(text)
	if len(items) == 0 {
		return nil, domain.ErrNoItemsProvided
	}

	catalog, err := s.loadCatalog(ctx)
	if err != nil {
		return nil, err
	}

	result := &domain.SaveListResult{Saved: []string{}, Ignored: []string{}}
	for _, r := range Resolve(items, catalog) {
		if r.IsMatched() {
			result.Saved = append(result.Saved, r.Item)
		} else {
			result.Ignored = append(result.Ignored, r.Item)
		}
	}

	if len(result.Saved) == 0 {
		return result, domain.ErrNoValidProducts
	}

	list := &domain.ShoppingList{Items: result.Saved, SavedAt: time.Now()}
	if err := s.lists.SaveList(ctx, list); err != nil {
		return nil, fmt.Errorf("failed to save shopping list: %w", err)
	}

	log.Printf("[LIST] Saved %d item(s), ignored %d", len(result.Saved), len(result.Ignored))
	return result, nil
}

// CurrentList returns the saved list
func (s *ShoppingService) CurrentList(ctx context.Context) (*domain.ShoppingList, error) {
	list, err := s.lists.LoadList(ctx)
	if err != nil {
		return nil, err
	}
	if list == nil || len(list.Items) == 0 {
		return nil, domain.ErrNoItemsProvided
	}
	return list, nil
}

// Locate resolves items against a freshly loaded catalog.
// With no items given, the saved list is used.
func (s *ShoppingService) Locate(ctx context.Context, items []string) ([]domain.ResolutionResult, error) {
	items, err := s.requestedItems(ctx, items)
	if err != nil {
		return nil, err
	}

	catalog, err := s.loadCatalog(ctx)
	if err != nil {
		return nil, err
	}

	return Resolve(items, catalog), nil
}

// PlanRoute locates the items and orders the stops into a walk.
// The route is kept in the cache so it can be fetched again by ID.
func (s *ShoppingService) PlanRoute(ctx context.Context, items []string) (*domain.Route, error) {
	results, err := s.Locate(ctx, items)
	if err != nil {
		return nil, err
	}

	stops, err := BuildRoute(results)
	if err != nil {
		return nil, err
	}

	route := &domain.Route{
		ID:        uuid.New(),
		Stops:     stops,
		Unmatched: UnmatchedItems(results),
		Distance:  RouteDistance(stops),
		CreatedAt: time.Now(),
	}
	route.MapURL = s.mapURL(route.ID)

	if err := s.cache.Set(ctx, routeCacheKey(route.ID.String()), route, s.routeTTL); err != nil {
		// The route is still usable even if it cannot be fetched later
		log.Printf("[ROUTE] Failed to store route %s: %v", route.ID, err)
	}

	log.Printf("[ROUTE] Planned route %s: %d stop(s), %d unmatched, distance %.2f",
		route.ID, len(route.Stops), len(route.Unmatched), route.Distance)
	return route, nil
}

// GetRoute returns a previously planned route
func (s *ShoppingService) GetRoute(ctx context.Context, id string) (*domain.Route, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("%w: route id %q", domain.ErrInvalidRequest, id)
	}

	value, err := s.cache.Get(ctx, routeCacheKey(id))
	if err != nil {
		if errors.Is(err, domain.ErrCacheMiss) {
			return nil, domain.ErrRouteNotFound
		}
		return nil, err
	}

	return routeFromCache(value)
}

// requestedItems drops blank entries and falls back to the saved list
func (s *ShoppingService) requestedItems(ctx context.Context, items []string) ([]string, error) {
	cleaned := make([]string, 0, len(items))
	for _, item := range items {
		if strings.TrimSpace(item) != "" {
			cleaned = append(cleaned, item)
		}
	}
	if len(cleaned) > 0 {
		return cleaned, nil
	}

	list, err := s.CurrentList(ctx)
	if err != nil {
		return nil, err
	}
	return list.Items, nil
}

// loadCatalog reads the catalog; a missing catalog is treated as an empty one
func (s *ShoppingService) loadCatalog(ctx context.Context) ([]domain.CatalogEntry, error) {
	catalog, err := s.catalog.LoadCatalog(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrCatalogNotFound) {
			log.Printf("[CATALOG] WARNING: %v - continuing with an empty catalog", err)
			return nil, nil
		}
		return nil, err
	}

	if s.debug {
		log.Printf("[CATALOG] Loaded %d entries", len(catalog))
	}
	return catalog, nil
}

func (s *ShoppingService) mapURL(id uuid.UUID) string {
	if s.mapBaseURL == "" {
		return ""
	}
	return s.mapBaseURL + "?" + url.Values{"route": {id.String()}}.Encode()
}

// routeCacheKey format: "route:{id}"
func routeCacheKey(id string) string {
	return "route:" + strings.ToLower(id)
}

// routeFromCache converts a cached value back into a Route.
// The memory cache stores JSON-decoded maps, so values are re-encoded when needed.
func routeFromCache(value interface{}) (*domain.Route, error) {
	if route, ok := value.(*domain.Route); ok {
		return route, nil
	}

	data, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("failed to encode cached route: %w", err)
	}

	var route domain.Route
	if err := json.Unmarshal(data, &route); err != nil {
		return nil, fmt.Errorf("failed to decode cached route: %w", err)
	}
	return &route, nil
}
