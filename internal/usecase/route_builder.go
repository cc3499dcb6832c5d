package usecase

import (
	"math"

	"github.com/shoproute/backend/internal/domain"
)

// BuildRoute orders the located entries into a walk using greedy nearest neighbour.
//
// The walk starts at the first located entry. From the current stop it moves to
// the closest unvisited entry (Euclidean distance on X/Y); on a tie the entry that
// came first in resolution order wins. Every located entry is visited exactly once.
// There is no backtracking, no local search, and the way back to the start is not
// costed. The loop is O(n²), which is fine for a single store.
//
// Returns domain.ErrNoLocatableProducts when no result carries an entry.
func BuildRoute(resolved []domain.ResolutionResult) ([]domain.Stop, error) {
	var candidates []domain.CatalogEntry
	for _, r := range resolved {
		if r.IsMatched() {
			candidates = append(candidates, r.Entries...)
		}
	}
	if len(candidates) == 0 {
		return nil, domain.ErrNoLocatableProducts
	}

	// visited is indexed by candidate position, so entries sharing a name stay distinct
	visited := make([]bool, len(candidates))
	route := make([]domain.Stop, 0, len(candidates))

	current := 0
	visited[current] = true
	route = append(route, domain.Stop{Order: 1, CatalogEntry: candidates[current]})

	for len(route) < len(candidates) {
		next := -1
		bestDist := 0.0
		for i, c := range candidates {
			if visited[i] {
				continue
			}
			d := distance(candidates[current], c)
			// strict < keeps the earliest candidate on ties; a NaN distance only
			// stands until any real distance shows up
			if next == -1 || d < bestDist || (math.IsNaN(bestDist) && !math.IsNaN(d)) {
				next = i
				bestDist = d
			}
		}

		visited[next] = true
		current = next
		route = append(route, domain.Stop{Order: len(route) + 1, CatalogEntry: candidates[current]})
	}

	return route, nil
}

// RouteDistance returns the length of the walk from the first to the last stop
func RouteDistance(stops []domain.Stop) float64 {
	total := 0.0
	for i := 1; i < len(stops); i++ {
		total += distance(stops[i-1].CatalogEntry, stops[i].CatalogEntry)
	}
	return total
}

func distance(a, b domain.CatalogEntry) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}
