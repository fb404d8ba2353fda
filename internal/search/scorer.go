package search

import (
	"fmt"
	"strings"
	"time"

	"github.com/risehub-org/risehub/internal/domain"
)

// Scoring weights for multi-signal relevance ranking. The fuzzy and
// correction thresholds are tuned values; keep them in sync with suggest.go.
const (
	titleSubstringPoints = 50
	titleExactWordPoints = 25
	bodyOccurrencePoints = 5
	bodyOccurrenceCap    = 20
	tagMatchPoints       = 30
	fuzzyMatchPoints     = 10
	popularityPoints     = 5
	recencyPoints        = 10
	typeKeywordPoints    = 20
	intentKeywordPoints  = 15

	popularityThreshold = 100
	recencyWindow       = 30 * 24 * time.Hour

	fuzzyMinTermLen   = 4 // terms shorter than this are never fuzzy-matched
	fuzzyMaxDistance  = 2
	fuzzyLengthWindow = 1
)

// Score computes the additive relevance score of one content item against a
// normalized query, together with the ordered list of match reasons. Each
// contribution is independent; a zero total means the item is irrelevant and
// must be dropped before ranking.
//
// Occurrence counting is a plain substring scan: query text is never
// compiled into a pattern, so pattern metacharacters are matched literally.
func Score(q NormalizedQuery, item *domain.ContentItem, now time.Time) (float64, []string) {
	titleLower := strings.ToLower(item.Title)
	bodyLower := strings.ToLower(item.Body)
	titleWords := strings.Fields(titleLower)

	var fuzzyWords []string // built lazily, only when a term qualifies

	score := 0.0
	var reasons []string

	for _, term := range q.Terms {
		if strings.Contains(titleLower, term) {
			score += titleSubstringPoints
			reasons = append(reasons, fmt.Sprintf("Title contains %q", term))
		}

		for _, word := range titleWords {
			if word == term {
				score += titleExactWordPoints
				reasons = append(reasons, fmt.Sprintf("Title exact match %q", term))
				break
			}
		}

		if n := strings.Count(bodyLower, term); n > 0 {
			points := n * bodyOccurrencePoints
			if points > bodyOccurrenceCap {
				points = bodyOccurrenceCap
			}
			score += float64(points)
			reasons = append(reasons, fmt.Sprintf("Content contains %q (%dx)", term, n))
		}

		for _, tag := range item.Tags {
			if strings.Contains(strings.ToLower(strings.TrimSpace(tag)), term) {
				score += tagMatchPoints
				reasons = append(reasons, fmt.Sprintf("Tag match %q", term))
				break
			}
		}

		if len(term) >= fuzzyMinTermLen {
			if fuzzyWords == nil {
				bodyWords := strings.Fields(bodyLower)
				fuzzyWords = make([]string, 0, len(titleWords)+len(bodyWords))
				fuzzyWords = append(fuzzyWords, titleWords...)
				fuzzyWords = append(fuzzyWords, bodyWords...)
			}
			if hasSimilarWord(term, fuzzyWords) {
				score += fuzzyMatchPoints
				reasons = append(reasons, fmt.Sprintf("Similar to %q", term))
			}
		}
	}

	if item.ViewCount > popularityThreshold {
		score += popularityPoints
		reasons = append(reasons, "Popular content")
	}

	if now.Sub(item.CreatedAt) < recencyWindow {
		score += recencyPoints
		reasons = append(reasons, "Recent content")
	}

	if strings.Contains(q.Text, "video") && item.Type == domain.ContentTypeVideo {
		score += typeKeywordPoints
		reasons = append(reasons, "Video type match")
	} else if strings.Contains(q.Text, "tool") && item.Type == domain.ContentTypeTool {
		score += typeKeywordPoints
		reasons = append(reasons, "Tool type match")
	}

	if strings.Contains(q.Text, "how to") && item.Type == domain.ContentTypeTool {
		score += intentKeywordPoints
		reasons = append(reasons, "How-to content")
	} else if strings.Contains(q.Text, "example") && item.Type == domain.ContentTypeBusinessCase {
		score += intentKeywordPoints
		reasons = append(reasons, "Example/case study")
	}

	return score, reasons
}

// hasSimilarWord reports whether any word within one character of the term's
// length sits at edit distance 1 or 2 from the term. The bonus applies at
// most once per term, so the first hit wins.
func hasSimilarWord(term string, words []string) bool {
	for _, word := range words {
		if word == term {
			continue
		}
		diff := len(word) - len(term)
		if diff < -fuzzyLengthWindow || diff > fuzzyLengthWindow {
			continue
		}
		if d := Distance(term, word); d >= 1 && d <= fuzzyMaxDistance {
			return true
		}
	}
	return false
}
