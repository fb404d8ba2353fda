package search

import (
	"strings"

	"github.com/risehub-org/risehub/internal/domain"
)

// NormalizedQuery is a cleaned query: lower-cased trimmed text plus its
// whitespace-delimited terms. Duplicate terms are preserved because term
// frequency matters to the scorer.
type NormalizedQuery struct {
	Text  string
	Terms []string
}

// NormalizeQuery lower-cases and trims a raw query and splits it into terms.
// This is the single validation boundary of the engine: an empty or
// all-whitespace query fails with ErrInvalidQuery before any scoring work.
func NormalizeQuery(raw string) (NormalizedQuery, error) {
	text := strings.ToLower(strings.TrimSpace(raw))
	if text == "" {
		return NormalizedQuery{}, domain.ErrInvalidQuery
	}

	return NormalizedQuery{
		Text:  text,
		Terms: strings.Fields(text),
	}, nil
}
