package search

import (
	"context"
	"log"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/risehub-org/risehub/internal/domain"
	"github.com/risehub-org/risehub/internal/telemetry"
)

const (
	defaultLimit           = 20
	defaultCorpusScanLimit = 500
	defaultLookupTimeout   = 2 * time.Second
	defaultScoreWorkers    = 8
)

// Config controls search service behavior.
type Config struct {
	// CorpusScanLimit bounds the "recent N" content scan scored per query.
	CorpusScanLimit int
	// LookupTimeout bounds the suggestion and related-content sub-lookups;
	// on expiry those degrade to empty lists instead of failing the search.
	LookupTimeout time.Duration
	// ScoreWorkers bounds concurrent scoring goroutines.
	ScoreWorkers int
}

// DefaultConfig returns the default service configuration.
func DefaultConfig() Config {
	return Config{
		CorpusScanLimit: defaultCorpusScanLimit,
		LookupTimeout:   defaultLookupTimeout,
		ScoreWorkers:    defaultScoreWorkers,
	}
}

// Service ranks content against free-text queries and assembles the
// surrounding discovery signals. It is stateless between calls: the only
// mutable state lives in the storage collaborators.
type Service struct {
	content      ContentRepository
	history      HistoryRepository
	interactions InteractionRepository
	cfg          Config
}

// NewService creates a Service with default configuration.
func NewService(content ContentRepository, history HistoryRepository, interactions InteractionRepository) *Service {
	return NewServiceWithConfig(content, history, interactions, DefaultConfig())
}

// NewServiceWithConfig creates a Service with explicit configuration.
func NewServiceWithConfig(content ContentRepository, history HistoryRepository, interactions InteractionRepository, cfg Config) *Service {
	if cfg.CorpusScanLimit <= 0 {
		cfg.CorpusScanLimit = defaultCorpusScanLimit
	}
	if cfg.LookupTimeout <= 0 {
		cfg.LookupTimeout = defaultLookupTimeout
	}
	if cfg.ScoreWorkers <= 0 {
		cfg.ScoreWorkers = defaultScoreWorkers
	}
	return &Service{
		content:      content,
		history:      history,
		interactions: interactions,
		cfg:          cfg,
	}
}

// Search scores the content corpus against the query, ranks and pages the
// results, and gathers suggestions, related searches, and co-view related
// content. Only the ranked page is load-bearing: every auxiliary lookup
// degrades to an empty list on timeout or storage failure.
func (s *Service) Search(ctx context.Context, input Input) (*Output, error) {
	ctx, span := telemetry.StartSpan(ctx, "SearchService.Search", telemetry.SpanAttributes{
		UserID:    input.UserID,
		Query:     input.Query,
		Operation: "search",
	})
	defer span.End()

	q, err := NormalizeQuery(input.Query)
	if err != nil {
		return nil, err
	}

	now := input.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}

	limit := input.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	offset := input.Offset
	if offset < 0 {
		offset = 0
	}

	corpus, err := s.content.ListRecent(ctx, s.cfg.CorpusScanLimit)
	if err != nil {
		return nil, domain.NewDomainErrorWithCause(domain.ErrCodeStorageUnavailable, "content scan failed", err)
	}

	scored := s.scoreCorpus(ctx, q, corpus, now)
	page, total, hasMore := Rank(scored, offset, limit)

	output := &Output{
		Results:         page,
		Total:           total,
		HasMore:         hasMore,
		Suggestions:     []*Suggestion{},
		RelatedSearches: []string{},
		RelatedContent:  []*RelatedContent{},
	}

	// The auxiliary lookups are independent of each other and of the ranked
	// page; they run concurrently under a shared deadline and surface no
	// errors past this point.
	lookupCtx, cancel := context.WithTimeout(ctx, s.cfg.LookupTimeout)
	defer cancel()

	g, gctx := errgroup.WithContext(lookupCtx)

	g.Go(func() error {
		sctx, span := telemetry.StartSpan(gctx, "SearchService.suggestions", telemetry.SpanAttributes{Operation: "suggestions"})
		defer span.End()

		suggestions, err := s.buildSuggestions(sctx, q, input.Query, scored, corpus)
		if err != nil {
			log.Printf("search: suggestion lookup degraded: %v", err)
			return nil
		}
		output.Suggestions = suggestions
		return nil
	})

	g.Go(func() error {
		sctx, span := telemetry.StartSpan(gctx, "SearchService.relatedSearches", telemetry.SpanAttributes{Operation: "related_searches"})
		defer span.End()

		related, err := s.relatedSearches(sctx, q)
		if err != nil {
			log.Printf("search: related-searches lookup degraded: %v", err)
			return nil
		}
		output.RelatedSearches = related
		return nil
	})

	if len(page) > 0 {
		g.Go(func() error {
			sctx, span := telemetry.StartSpan(gctx, "SearchService.relatedContent", telemetry.SpanAttributes{Operation: "related_content"})
			defer span.End()

			related, err := s.relatedContent(sctx, scored)
			if err != nil {
				log.Printf("search: related-content lookup degraded: %v", err)
				return nil
			}
			output.RelatedContent = related
			return nil
		})
	}

	_ = g.Wait() // goroutines swallow their own errors

	if output.Suggestions == nil {
		output.Suggestions = []*Suggestion{}
	}
	if output.RelatedSearches == nil {
		output.RelatedSearches = []string{}
	}
	if output.RelatedContent == nil {
		output.RelatedContent = []*RelatedContent{}
	}

	return output, nil
}

// scoreCorpus scores every item concurrently. Scoring is a pure map over
// the corpus, so the only serialization point is the final collection; the
// index-addressed slice preserves corpus order for the stable sort.
func (s *Service) scoreCorpus(ctx context.Context, q NormalizedQuery, corpus []*domain.ContentItem, now time.Time) []*ScoredResult {
	slots := make([]*ScoredResult, len(corpus))

	g := new(errgroup.Group)
	g.SetLimit(s.cfg.ScoreWorkers)

	for i, item := range corpus {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			score, reasons := Score(q, item, now)
			if score > 0 {
				slots[i] = &ScoredResult{Item: item, Score: score, Reasons: reasons}
			}
			return nil
		})
	}
	_ = g.Wait()

	scored := make([]*ScoredResult, 0, len(corpus))
	for _, r := range slots {
		if r != nil {
			scored = append(scored, r)
		}
	}
	return scored
}
