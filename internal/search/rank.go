package search

import (
	"sort"

	"github.com/risehub-org/risehub/internal/pagination"
)

// Rank sorts scored results by score descending and slices the requested
// page. The sort is stable: items with equal scores keep their relative
// corpus order, which makes result order reproducible.
//
// Offset and limit are clamped to non-negative values; an offset past the
// end yields an empty page, not an error. Returns the page, the pre-slice
// total, and whether more results exist beyond the page.
func Rank(results []*ScoredResult, offset, limit int) ([]*ScoredResult, int, bool) {
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	page := pagination.Slice(results, offset, limit)
	return page.Items, page.Total, page.HasMore
}
