package usecase

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"

	"github.com/shoproute/backend/internal/domain"
)

// foldText puts s in composed form and case-folds it, so "Pão" and "pão" compare equal.
// A fresh Caser is used per call since Casers are not safe for concurrent use.
func foldText(s string) string {
	return cases.Fold().String(norm.NFC.String(strings.TrimSpace(s)))
}

// Resolve maps every requested item to the catalog entries whose product name
// contains it, ignoring case. Results keep the order of items, and the entries
// of a match keep catalog order. An item can match several entries ("milk"
// matches both "whole milk" and "milk chocolate"); all of them are returned.
//
// Resolve never fails: items missing from the catalog come back as Unmatched.
func Resolve(items []string, catalog []domain.CatalogEntry) []domain.ResolutionResult {
	results := make([]domain.ResolutionResult, 0, len(items))
	if len(items) == 0 {
		return results
	}

	names := make([]string, len(catalog))
	for i, entry := range catalog {
		names[i] = foldText(entry.ProductName)
	}

	for _, item := range items {
		needle := foldText(item)

		var matches []domain.CatalogEntry
		for i, name := range names {
			if strings.Contains(name, needle) {
				matches = append(matches, catalog[i])
			}
		}

		if len(matches) == 0 {
			results = append(results, domain.Unmatched(item))
			continue
		}
		results = append(results, domain.Matched(item, matches))
	}

	return results
}

// Partition splits results into matched and unmatched, keeping order
func Partition(results []domain.ResolutionResult) (matched, unmatched []domain.ResolutionResult) {
	for _, r := range results {
		if r.IsMatched() {
			matched = append(matched, r)
		} else {
			unmatched = append(unmatched, r)
		}
	}
	return matched, unmatched
}

// UnmatchedItems lists the names of the items that were not located
func UnmatchedItems(results []domain.ResolutionResult) []string {
	items := []string{}
	for _, r := range results {
		if !r.IsMatched() {
			items = append(items, r.Item)
		}
	}
	return items
}
