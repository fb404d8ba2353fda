package search

import (
	"context"
	"time"

	"github.com/risehub-org/risehub/internal/domain"
)

// SuggestionKind identifies the mechanism that produced a suggestion.
type SuggestionKind string

const (
	SuggestionKindCompletion SuggestionKind = "completion"
	SuggestionKindRelated    SuggestionKind = "related"
	SuggestionKindCorrection SuggestionKind = "correction"
)

// ScoredResult is a content item with its relevance score and the
// human-readable reasons behind it. Reasons are observational only; they
// never influence the score or the sort order.
type ScoredResult struct {
	Item    *domain.ContentItem
	Score   float64
	Reasons []string
}

// Suggestion proposes an alternative or expanded query.
type Suggestion struct {
	Text       string
	Kind       SuggestionKind
	Confidence float64
}

// RelatedContent is a content item surfaced by co-view correlation.
type RelatedContent struct {
	Item        *domain.ContentItem
	CoViewCount int
}

// Input represents input for the Search operation.
type Input struct {
	Query  string
	Limit  int
	Offset int
	UserID string // optional; empty for anonymous searches
	Now    time.Time
}

// Output represents the full response of a Search call.
type Output struct {
	Results         []*ScoredResult
	Total           int
	HasMore         bool
	Suggestions     []*Suggestion
	RelatedSearches []string
	RelatedContent  []*RelatedContent
}

// QueryCount is an aggregated search-history row.
type QueryCount struct {
	Query string
	Count int
}

// ContentRepository provides read access to the content catalog plus the
// two monotonic counters the engine maintains.
type ContentRepository interface {
	GetByID(ctx context.Context, id string) (*domain.ContentItem, error)
	ListRecent(ctx context.Context, limit int) ([]*domain.ContentItem, error)
}

// HistoryRepository provides read access to the search-history log.
type HistoryRepository interface {
	CountByPrefix(ctx context.Context, prefix string, limit int) ([]QueryCount, error)
	ListRecent(ctx context.Context, limit int) ([]*domain.SearchHistoryEntry, error)
}

// InteractionRepository provides read access to the interaction-event log.
type InteractionRepository interface {
	ListViewsByContent(ctx context.Context, contentID string, limit int) ([]*domain.InteractionEvent, error)
	ListViewsByUserBetween(ctx context.Context, userID string, from, to time.Time) ([]*domain.InteractionEvent, error)
}
