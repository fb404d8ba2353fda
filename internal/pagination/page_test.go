package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClamp(t *testing.T) {
	offset, limit := Clamp(-5, -1)
	assert.Equal(t, 0, offset)
	assert.Equal(t, 0, limit)

	offset, limit = Clamp(3, 7)
	assert.Equal(t, 3, offset)
	assert.Equal(t, 7, limit)
}

func TestSlice(t *testing.T) {
	items := []string{"a", "b", "c", "d", "e"}

	page := Slice(items, 0, 2)
	assert.Equal(t, []string{"a", "b"}, page.Items)
	assert.Equal(t, 5, page.Total)
	assert.True(t, page.HasMore)

	page = Slice(items, 3, 2)
	assert.Equal(t, []string{"d", "e"}, page.Items)
	assert.False(t, page.HasMore)
}

func TestSlice_OffsetPastEnd(t *testing.T) {
	page := Slice([]string{"a"}, 5, 10)

	assert.Empty(t, page.Items)
	assert.Equal(t, 1, page.Total)
	assert.False(t, page.HasMore)
}

func TestSlice_NegativeInputsClamped(t *testing.T) {
	page := Slice([]string{"a", "b"}, -1, -1)

	assert.Empty(t, page.Items)
	assert.Equal(t, 2, page.Total)
	assert.True(t, page.HasMore)
}

func TestSlice_Empty(t *testing.T) {
	page := Slice([]int{}, 0, 10)

	assert.Empty(t, page.Items)
	assert.Zero(t, page.Total)
	assert.False(t, page.HasMore)
}
