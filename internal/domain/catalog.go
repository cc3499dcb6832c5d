package domain

//go:generate go tool stringer -type=ResolutionStatus -trimprefix=Resolution -output=resolution_string.go

import "strings"

// CatalogEntry is one product placed at a physical spot in the store.
// Entries are read-only once loaded.
type CatalogEntry struct {
	ProductName string  `json:"productName"`
	Aisle       string  `json:"aisle"`
	Section     string  `json:"section"`
	Shelf       string  `json:"shelf"`
	Bin         string  `json:"bin"`
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
}

// ResolutionStatus tells whether a requested item was found in the catalog
type ResolutionStatus int

const (
	ResolutionMatched ResolutionStatus = iota
	ResolutionUnmatched
)

// MarshalText encodes the status as "matched" or "unmatched"
func (s ResolutionStatus) MarshalText() ([]byte, error) {
	return []byte(strings.ToLower(s.String())), nil
}

// ResolutionResult is the outcome of locating a single requested item.
// Matched results carry every catalog entry whose name contains the item.
type ResolutionResult struct {
	Item    string           `json:"item"`
	Status  ResolutionStatus `json:"status"`
	Entries []CatalogEntry   `json:"entries,omitempty"`
}

// Matched builds a result for an item found at one or more locations
func Matched(item string, entries []CatalogEntry) ResolutionResult {
	return ResolutionResult{Item: item, Status: ResolutionMatched, Entries: entries}
}

// Unmatched builds a result for an item missing from the catalog
func Unmatched(item string) ResolutionResult {
	return ResolutionResult{Item: item, Status: ResolutionUnmatched}
}

// IsMatched reports whether the item was located
func (r ResolutionResult) IsMatched() bool {
	return r.Status == ResolutionMatched
}

// Err returns an *UnmatchedItemError for unmatched results and nil otherwise
func (r ResolutionResult) Err() error {
	if r.IsMatched() {
		return nil
	}
	return &UnmatchedItemError{Item: r.Item}
}
