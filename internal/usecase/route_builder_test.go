package usecase

import (
	"math"
	"math/rand"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shoproute/backend/internal/domain"
)

func stopNames(stops []domain.Stop) []string {
	names := make([]string, len(stops))
	for i, s := range stops {
		names[i] = s.ProductName
	}
	return names
}

func TestBuildRoute_EndToEnd(t *testing.T) {
	catalog := sampleCatalog()

	t.Run("milk bread eggs", func(t *testing.T) {
		stops, err := BuildRoute(Resolve([]string{"milk", "bread", "eggs"}, catalog))

		require.NoError(t, err)
		assert.Equal(t, []string{"milk", "bread", "eggs"}, stopNames(stops))
		for i, s := range stops {
			assert.Equal(t, i+1, s.Order)
		}
	})

	t.Run("starts from the first located item", func(t *testing.T) {
		stops, err := BuildRoute(Resolve([]string{"eggs", "milk", "bread"}, catalog))

		require.NoError(t, err)
		assert.Equal(t, []string{"eggs", "bread", "milk"}, stopNames(stops))
	})

	t.Run("partial match still routes", func(t *testing.T) {
		results := Resolve([]string{"milk", "cheese"}, catalog)
		stops, err := BuildRoute(results)

		require.NoError(t, err)
		assert.Equal(t, []string{"milk"}, stopNames(stops))
		assert.Equal(t, []string{"cheese"}, UnmatchedItems(results))
	})

	t.Run("nothing locatable", func(t *testing.T) {
		stops, err := BuildRoute(Resolve([]string{"cheese"}, catalog))

		assert.Nil(t, stops)
		assert.ErrorIs(t, err, domain.ErrNoLocatableProducts)
	})

	t.Run("empty catalog", func(t *testing.T) {
		_, err := BuildRoute(Resolve([]string{"milk"}, nil))
		assert.ErrorIs(t, err, domain.ErrNoLocatableProducts)
	})

	t.Run("no results", func(t *testing.T) {
		_, err := BuildRoute(nil)
		assert.ErrorIs(t, err, domain.ErrNoLocatableProducts)
	})
}

func TestBuildRoute_TieBreaksByInputOrder(t *testing.T) {
	resolved := []domain.ResolutionResult{
		domain.Matched("start", []domain.CatalogEntry{entry("start", 0, 0)}),
		domain.Matched("east", []domain.CatalogEntry{entry("east", 1, 0)}),
		domain.Matched("west", []domain.CatalogEntry{entry("west", -1, 0)}),
	}

	stops, err := BuildRoute(resolved)

	require.NoError(t, err)
	assert.Equal(t, []string{"start", "east", "west"}, stopNames(stops))
}

func TestBuildRoute_SameNameEntriesAreDistinctStops(t *testing.T) {
	resolved := []domain.ResolutionResult{
		domain.Matched("milk", []domain.CatalogEntry{
			entry("milk", 0, 0),
			entry("milk", 5, 5),
		}),
		domain.Matched("milk", []domain.CatalogEntry{
			entry("milk", 0, 0),
			entry("milk", 5, 5),
		}),
	}

	stops, err := BuildRoute(resolved)

	require.NoError(t, err)
	require.Len(t, stops, 4)
	assert.Equal(t, []float64{0, 0, 5, 5}, []float64{stops[0].X, stops[1].X, stops[2].X, stops[3].X})
}

func TestBuildRoute_NaNDistanceKeepsPermutation(t *testing.T) {
	resolved := []domain.ResolutionResult{
		domain.Matched("a", []domain.CatalogEntry{entry("a", 0, 0)}),
		domain.Matched("b", []domain.CatalogEntry{entry("b", math.NaN(), 0)}),
		domain.Matched("c", []domain.CatalogEntry{entry("c", 3, 0)}),
	}

	stops, err := BuildRoute(resolved)

	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c", "b"}, stopNames(stops))
}

func randomResolved(rng *rand.Rand) []domain.ResolutionResult {
	results := make([]domain.ResolutionResult, 1+rng.Intn(6))
	for i := range results {
		if i > 0 && rng.Intn(4) == 0 {
			results[i] = domain.Unmatched("missing")
			continue
		}
		entries := make([]domain.CatalogEntry, 1+rng.Intn(4))
		for j := range entries {
			// small integer grid makes ties common
			entries[j] = entry("item", float64(rng.Intn(5)), float64(rng.Intn(5)))
			entries[j].Bin = string(rune('A' + i*4 + j))
		}
		results[i] = domain.Matched("item", entries)
	}
	return results
}

func flatten(results []domain.ResolutionResult) []domain.CatalogEntry {
	var out []domain.CatalogEntry
	for _, r := range results {
		out = append(out, r.Entries...)
	}
	return out
}

func TestBuildRoute_Properties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for round := 0; round < 300; round++ {
		resolved := randomResolved(rng)
		candidates := flatten(resolved)

		stops, err := BuildRoute(resolved)
		require.NoError(t, err)

		// permutation: Bin is unique per candidate in these fixtures
		require.Len(t, stops, len(candidates), spew.Sdump(resolved))
		seen := make(map[string]bool)
		for _, s := range stops {
			assert.False(t, seen[s.Bin], "stop %s visited twice", s.Bin)
			seen[s.Bin] = true
		}
		for _, c := range candidates {
			assert.True(t, seen[c.Bin], "candidate %s missing", c.Bin)
		}

		assert.Equal(t, candidates[0], stops[0].CatalogEntry, "route must start at the first candidate")

		// determinism
		again, err := BuildRoute(resolved)
		require.NoError(t, err)
		assert.Equal(t, stops, again)

		// nearest step: no unvisited candidate is strictly closer than the chosen one
		visited := map[string]bool{stops[0].Bin: true}
		for i := 0; i+1 < len(stops); i++ {
			chosen := distance(stops[i].CatalogEntry, stops[i+1].CatalogEntry)
			for _, c := range candidates {
				if visited[c.Bin] {
					continue
				}
				assert.GreaterOrEqual(t, distance(stops[i].CatalogEntry, c), chosen,
					"round %d step %d: %s is closer than %s", round, i, c.Bin, stops[i+1].Bin)
			}
			visited[stops[i+1].Bin] = true
		}
	}
}

func TestRouteDistance(t *testing.T) {
	stops := []domain.Stop{
		{Order: 1, CatalogEntry: entry("a", 0, 0)},
		{Order: 2, CatalogEntry: entry("b", 3, 4)},
		{Order: 3, CatalogEntry: entry("c", 3, 0)},
	}

	assert.InDelta(t, 9.0, RouteDistance(stops), 1e-9)
	assert.Equal(t, 0.0, RouteDistance(stops[:1]))
	assert.Equal(t, 0.0, RouteDistance(nil))
}
