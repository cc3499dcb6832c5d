package usecase

import (
	"log"
	"regexp"
	"strings"
)

// separatorPattern matches list separators typed between items ("milk, bread; eggs")
var separatorPattern = regexp.MustCompile(`[,;]+`)

// DefaultStopwords are filler words dropped from a typed shopping list
var DefaultStopwords = []string{
	"e", "de", "do", "da", "dos", "das", "com", "para",
	"o", "a", "os", "as", "um", "uma",
}

// ListParser turns free text into shopping list item tokens
type ListParser struct {
	stopwords          map[string]bool
	enableDebugLogging bool
}

// NewListParser creates a parser. A nil stopwords slice selects DefaultStopwords.
func NewListParser(stopwords []string, enableDebugLogging bool) *ListParser {
	if stopwords == nil {
		stopwords = DefaultStopwords
	}

	set := make(map[string]bool, len(stopwords))
	for _, w := range stopwords {
		set[foldText(w)] = true
	}

	return &ListParser{
		stopwords:          set,
		enableDebugLogging: enableDebugLogging,
	}
}

// ParseItems splits text on separators and whitespace, folds case and drops stopwords.
// Order and duplicates are preserved: "milk milk" yields two items.
func (p *ListParser) ParseItems(text string) []string {
	cleaned := separatorPattern.ReplaceAllString(text, " ")

	items := []string{}
	for _, word := range strings.Fields(cleaned) {
		token := foldText(strings.Trim(word, ".!?:\"'()"))
		if token == "" || p.stopwords[token] {
			continue
		}
		items = append(items, token)
	}

	if p.enableDebugLogging {
		log.Printf("[LIST] Parsed %q → %q", text, items)
	}

	return items
}
