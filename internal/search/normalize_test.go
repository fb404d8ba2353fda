package search

import (
	"testing"

	"github.com/risehub-org/risehub/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeQuery(t *testing.T) {
	q, err := NormalizeQuery("  How To Lead  ")
	require.NoError(t, err)

	assert.Equal(t, "how to lead", q.Text)
	assert.Equal(t, []string{"how", "to", "lead"}, q.Terms)
}

func TestNormalizeQuery_CollapsesInternalWhitespace(t *testing.T) {
	q, err := NormalizeQuery("goal\t setting \n workshop")
	require.NoError(t, err)

	assert.Equal(t, []string{"goal", "setting", "workshop"}, q.Terms)
}

func TestNormalizeQuery_PreservesDuplicateTerms(t *testing.T) {
	q, err := NormalizeQuery("very very good")
	require.NoError(t, err)

	assert.Equal(t, []string{"very", "very", "good"}, q.Terms)
}

func TestNormalizeQuery_Empty(t *testing.T) {
	_, err := NormalizeQuery("")
	assert.ErrorIs(t, err, domain.ErrInvalidQuery)

	_, err = NormalizeQuery("   \t\n  ")
	assert.ErrorIs(t, err, domain.ErrInvalidQuery)
}
