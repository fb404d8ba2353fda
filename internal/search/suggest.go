package search

import (
	"context"
	"sort"
	"strings"

	"github.com/risehub-org/risehub/internal/domain"
)

const (
	maxSuggestions        = 5
	maxCompletions        = 5
	maxRelatedSuggestions = 3
	maxCorrections        = 3

	relatedConfidence    = 0.7
	correctionConfidence = 0.8

	// One past occurrence gives 0.1 confidence, saturating at ten.
	completionConfidenceScale = 10

	minVocabWordLen = 4 // vocabulary words must be longer than 3 characters

	relatedTitleSample    = 5
	relatedSearchesSample = 200

	// Distance-2 corrections only apply to terms longer than this.
	correctionDistance2MinLen = 6
)

// Short glue words excluded from related-term extraction.
var titleStopwords = map[string]struct{}{
	"the":  {},
	"and":  {},
	"for":  {},
	"with": {},
	"from": {},
}

// completionSuggestions proposes past queries that extend the current one.
// Prefix matching is case-sensitive against the raw stored query text;
// grouping and ordering by frequency happens in the history store.
func (s *Service) completionSuggestions(ctx context.Context, rawQuery string) ([]*Suggestion, error) {
	prefix := strings.TrimSpace(rawQuery)
	counts, err := s.history.CountByPrefix(ctx, prefix, maxCompletions)
	if err != nil {
		return nil, err
	}

	suggestions := make([]*Suggestion, 0, len(counts))
	for _, qc := range counts {
		if qc.Query == prefix {
			continue
		}
		confidence := float64(qc.Count) / completionConfidenceScale
		if confidence > 1 {
			confidence = 1
		}
		suggestions = append(suggestions, &Suggestion{
			Text:       qc.Query,
			Kind:       SuggestionKindCompletion,
			Confidence: confidence,
		})
	}
	return suggestions, nil
}

// relatedSuggestions expands the query with the most frequent meaningful
// terms from the top-ranked result titles. Only computed when results exist.
func relatedSuggestions(q NormalizedQuery, ranked []*ScoredResult) []*Suggestion {
	if len(ranked) == 0 {
		return nil
	}

	top := ranked
	if len(top) > relatedTitleSample {
		top = top[:relatedTitleSample]
	}

	queryTerms := make(map[string]struct{}, len(q.Terms))
	for _, term := range q.Terms {
		queryTerms[term] = struct{}{}
	}

	counts := make(map[string]int)
	var order []string // first-seen order keeps ties deterministic
	for _, r := range top {
		for _, word := range strings.Fields(strings.ToLower(r.Item.Title)) {
			if len(word) < minVocabWordLen {
				continue
			}
			if _, stop := titleStopwords[word]; stop {
				continue
			}
			if _, present := queryTerms[word]; present {
				continue
			}
			if counts[word] == 0 {
				order = append(order, word)
			}
			counts[word]++
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if len(order) > maxRelatedSuggestions {
		order = order[:maxRelatedSuggestions]
	}

	suggestions := make([]*Suggestion, 0, len(order))
	for _, term := range order {
		suggestions = append(suggestions, &Suggestion{
			Text:       q.Text + " " + term,
			Kind:       SuggestionKindRelated,
			Confidence: relatedConfidence,
		})
	}
	return suggestions
}

// correctionSuggestions proposes typo fixes from the corpus title
// vocabulary. Only computed when the ranked result set is empty: a query
// that already matches something needs no correcting.
func correctionSuggestions(q NormalizedQuery, corpus []*domain.ContentItem) []*Suggestion {
	vocab := titleVocabulary(corpus)

	seen := make(map[string]struct{})
	var suggestions []*Suggestion

	for _, term := range q.Terms {
		for _, word := range vocab {
			if word == term {
				continue
			}
			d := Distance(term, word)
			if d != 1 && !(d == 2 && len(term) >= correctionDistance2MinLen) {
				continue
			}

			proposal := strings.Replace(q.Text, term, word, 1)
			if proposal == q.Text {
				continue
			}
			if _, dup := seen[proposal]; dup {
				continue
			}
			seen[proposal] = struct{}{}

			suggestions = append(suggestions, &Suggestion{
				Text:       proposal,
				Kind:       SuggestionKindCorrection,
				Confidence: correctionConfidence,
			})
			if len(suggestions) >= maxCorrections {
				return suggestions
			}
		}
	}
	return suggestions
}

// titleVocabulary collects distinct lower-cased title words longer than
// three characters, in first-seen order for deterministic output.
func titleVocabulary(corpus []*domain.ContentItem) []string {
	seen := make(map[string]struct{})
	var vocab []string
	for _, item := range corpus {
		for _, word := range strings.Fields(strings.ToLower(item.Title)) {
			if len(word) < minVocabWordLen {
				continue
			}
			if _, ok := seen[word]; ok {
				continue
			}
			seen[word] = struct{}{}
			vocab = append(vocab, word)
		}
	}
	return vocab
}

// relatedSearches surfaces distinct past queries sharing at least one term
// with the current query, most frequent first.
func (s *Service) relatedSearches(ctx context.Context, q NormalizedQuery) ([]string, error) {
	entries, err := s.history.ListRecent(ctx, relatedSearchesSample)
	if err != nil {
		return nil, err
	}

	queryTerms := make(map[string]struct{}, len(q.Terms))
	for _, term := range q.Terms {
		queryTerms[term] = struct{}{}
	}

	counts := make(map[string]int)
	var order []string
	for _, entry := range entries {
		normalized := strings.ToLower(strings.TrimSpace(entry.Query))
		if normalized == "" || normalized == q.Text {
			continue
		}
		shared := false
		for _, term := range strings.Fields(normalized) {
			if _, ok := queryTerms[term]; ok {
				shared = true
				break
			}
		}
		if !shared {
			continue
		}
		if counts[normalized] == 0 {
			order = append(order, normalized)
		}
		counts[normalized]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if len(order) > maxSuggestions {
		order = order[:maxSuggestions]
	}
	return order, nil
}

// buildSuggestions combines the three generators and truncates to the final
// cap, in completion, related, correction order.
func (s *Service) buildSuggestions(ctx context.Context, q NormalizedQuery, rawQuery string, ranked []*ScoredResult, corpus []*domain.ContentItem) ([]*Suggestion, error) {
	completions, err := s.completionSuggestions(ctx, rawQuery)
	if err != nil {
		return nil, err
	}

	suggestions := completions
	if len(ranked) > 0 {
		suggestions = append(suggestions, relatedSuggestions(q, ranked)...)
	} else {
		suggestions = append(suggestions, correctionSuggestions(q, corpus)...)
	}

	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}
	return suggestions, nil
}
