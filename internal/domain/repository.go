package domain

import (
	"context"
	"time"
)

// CacheRepository defines the interface for caching operations
type CacheRepository interface {
	Get(ctx context.Context, key string) (interface{}, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// CatalogProvider supplies the store catalog. Implementations load it fresh on every call.
type CatalogProvider interface {
	LoadCatalog(ctx context.Context) ([]CatalogEntry, error)
}

// ListRepository persists the shopper's current list
type ListRepository interface {
	LoadList(ctx context.Context) (*ShoppingList, error)
	SaveList(ctx context.Context, list *ShoppingList) error
}
