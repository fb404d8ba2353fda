package pagination

// Page represents one window of a larger result set
type Page[T any] struct {
	Items   []T  `json:"items"`
	Total   int  `json:"total"`
	HasMore bool `json:"has_more"`
}

// Clamp normalizes offset and limit to non-negative values
func Clamp(offset, limit int) (int, int) {
	if offset < 0 {
		offset = 0
	}
	if limit < 0 {
		limit = 0
	}
	return offset, limit
}

// Slice returns the [offset, offset+limit) window of items along with the
// pre-slice total. An offset past the end yields an empty page, not an
// error; HasMore reports whether items exist beyond the window.
func Slice[T any](items []T, offset, limit int) Page[T] {
	offset, limit = Clamp(offset, limit)

	total := len(items)
	page := Page[T]{
		Items:   []T{},
		Total:   total,
		HasMore: offset+limit < total,
	}

	if offset >= total {
		return page
	}

	end := offset + limit
	if end > total {
		end = total
	}
	page.Items = items[offset:end]
	return page
}
