package search

import (
	"context"
	"sort"
	"time"
)

const (
	coViewWindow      = 30 * time.Minute
	maxAnchors        = 3
	maxRelatedContent = 5
	anchorViewsLimit  = 50
)

// relatedContent finds items frequently viewed near the top-ranked results.
// For each anchor (a top-3 result), it walks the anchor's view events and
// counts other items the same user viewed within ±30 minutes. This is a
// behavioral signal, fully independent of the text-relevance score.
func (s *Service) relatedContent(ctx context.Context, ranked []*ScoredResult) ([]*RelatedContent, error) {
	if len(ranked) == 0 {
		return nil, nil
	}

	anchors := ranked
	if len(anchors) > maxAnchors {
		anchors = anchors[:maxAnchors]
	}

	counts := make(map[string]int)
	var order []string // first-seen order keeps ties deterministic
	for _, anchor := range anchors {
		anchorID := anchor.Item.ID

		views, err := s.interactions.ListViewsByContent(ctx, anchorID, anchorViewsLimit)
		if err != nil {
			return nil, err
		}

		for _, view := range views {
			from := view.CreatedAt.Add(-coViewWindow)
			to := view.CreatedAt.Add(coViewWindow)

			nearby, err := s.interactions.ListViewsByUserBetween(ctx, view.UserID, from, to)
			if err != nil {
				return nil, err
			}

			for _, other := range nearby {
				if other.ContentID == anchorID {
					continue
				}
				if counts[other.ContentID] == 0 {
					order = append(order, other.ContentID)
				}
				counts[other.ContentID]++
			}
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if len(order) > maxRelatedContent {
		order = order[:maxRelatedContent]
	}

	related := make([]*RelatedContent, 0, len(order))
	for _, contentID := range order {
		item, err := s.content.GetByID(ctx, contentID)
		if err != nil {
			// The item may have been removed since the view was logged.
			continue
		}
		related = append(related, &RelatedContent{
			Item:        item,
			CoViewCount: counts[contentID],
		})
	}
	return related, nil
}
