package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/shoproute/backend/internal/domain"
)

var titleCaser = cases.Title(language.Und)

func writeSaveReport(w io.Writer, result *domain.SaveListResult) {
	if len(result.Saved) == 0 {
		fmt.Fprintf(w, "None of the products were found in the store: %s.\n", strings.Join(result.Ignored, ", "))
		return
	}

	fmt.Fprintf(w, "List saved with %d product(s): %s.", len(result.Saved), strings.Join(result.Saved, ", "))
	if len(result.Ignored) > 0 {
		fmt.Fprintf(w, " These products were not found and were ignored: %s.", strings.Join(result.Ignored, ", "))
	}
	fmt.Fprintln(w)
}

func writeLocationReport(w io.Writer, results []domain.ResolutionResult) {
	fmt.Fprint(w, "Product locations in the store:\n\n")
	for _, r := range results {
		if !r.IsMatched() {
			fmt.Fprintf(w, "x %s: not found in the store catalog.\n", titleCaser.String(r.Item))
			continue
		}
		for _, e := range r.Entries {
			fmt.Fprintf(w, "* %s\n", e.ProductName)
			fmt.Fprintf(w, "   - Aisle: %s\n", e.Aisle)
			fmt.Fprintf(w, "   - Section: %s\n", e.Section)
			fmt.Fprintf(w, "   - Shelf: %s\n", e.Shelf)
			fmt.Fprintf(w, "   - Bin: %s\n", e.Bin)
			fmt.Fprintf(w, "   - Coordinates: %s\n\n", coordinates(e))
		}
	}
}

func writeRouteReport(w io.Writer, route *domain.Route) {
	fmt.Fprint(w, "Route through the store:\n\n")
	for _, s := range route.Stops {
		fmt.Fprintf(w, "%d. %s\n", s.Order, s.ProductName)
		fmt.Fprintf(w, "   -> Aisle: %s | Section: %s\n", s.Aisle, s.Section)
		fmt.Fprintf(w, "   -> Coordinates: %s\n\n", coordinates(s.CatalogEntry))
	}

	if len(route.Unmatched) > 0 {
		fmt.Fprintf(w, "Not in the store: %s\n", strings.Join(route.Unmatched, ", "))
	}
	fmt.Fprintf(w, "Total walk: %.2f\n", route.Distance)
	fmt.Fprintln(w, "Tip: follow the order above for a short walk through the store.")
	if route.MapURL != "" {
		fmt.Fprintf(w, "Map: %s\n", route.MapURL)
	}
}

func coordinates(e domain.CatalogEntry) string {
	return "(" + strconv.FormatFloat(e.X, 'g', -1, 64) + ", " + strconv.FormatFloat(e.Y, 'g', -1, 64) + ")"
}
