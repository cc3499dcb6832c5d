package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNoItemsProvided is returned when a shopping list has no usable items
	ErrNoItemsProvided = errors.New("no items provided")

	// ErrNoSavedList is returned when no shopping list has been saved yet
	ErrNoSavedList = errors.New("no saved shopping list")

	// ErrNoValidProducts is returned when none of the requested items exist in the catalog
	ErrNoValidProducts = errors.New("none of the requested products exist in the store catalog")

	// ErrUnmatchedItem marks a single item that matched no catalog entry
	ErrUnmatchedItem = errors.New("product not found in store catalog")

	// ErrNoLocatableProducts is returned when a route has no stops to visit
	ErrNoLocatableProducts = errors.New("no locatable products")

	// ErrCatalogNotFound is returned when the catalog source does not exist
	ErrCatalogNotFound = errors.New("store catalog not found")

	// ErrInvalidCatalog is returned when catalog records cannot be decoded or are malformed
	ErrInvalidCatalog = errors.New("invalid store catalog")

	// ErrCatalogAPIFailure is returned when the remote catalog request fails
	ErrCatalogAPIFailure = errors.New("catalog API request failed")

	// ErrRouteNotFound is returned when a planned route is unknown or has expired
	ErrRouteNotFound = errors.New("route not found")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")

	// ErrRateLimited is returned when rate limit is exceeded
	ErrRateLimited = errors.New("rate limit exceeded")
)

// UnmatchedItemError reports the item that could not be located.
type UnmatchedItemError struct {
	Item string
}

func (e *UnmatchedItemError) Error() string {
	return fmt.Sprintf("%s: %q", ErrUnmatchedItem, e.Item)
}

// Is lets errors.Is(err, ErrUnmatchedItem) match any UnmatchedItemError.
func (e *UnmatchedItemError) Is(target error) bool {
	return target == ErrUnmatchedItem
}
