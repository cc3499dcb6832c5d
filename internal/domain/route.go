package domain

import (
	"time"

	"github.com/google/uuid"
)

// Stop is a catalog entry promoted into a route.
// Order is its 1-based position in the walk.
type Stop struct {
	Order int `json:"order"`
	CatalogEntry
}

// Route is a planned walk through the store
type Route struct {
	ID        uuid.UUID `json:"id"`
	Stops     []Stop    `json:"stops"`
	Unmatched []string  `json:"unmatched"`
	Distance  float64   `json:"distance"` // open walk length, no return to start
	MapURL    string    `json:"mapUrl,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// ShoppingList is the saved list of requested items
type ShoppingList struct {
	Items   []string  `json:"items"`
	SavedAt time.Time `json:"savedAt,omitempty"`
}

// SaveListResult reports which parsed items were kept and which were dropped
type SaveListResult struct {
	Saved   []string `json:"saved"`
	Ignored []string `json:"ignored"`
}

// SaveListRequest represents a request to store a new shopping list
type SaveListRequest struct {
	Text string `json:"text" binding:"required"`
}

// ItemsRequest carries an optional explicit item list; empty means "use the saved list"
type ItemsRequest struct {
	Items []string `json:"items,omitempty"`
}
