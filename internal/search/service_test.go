package search

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/risehub-org/risehub/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var serviceNow = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

func quietHistory() *MockHistoryRepository {
	history := new(MockHistoryRepository)
	history.On("CountByPrefix", mock.Anything, mock.Anything, mock.Anything).Return([]QueryCount{}, nil)
	history.On("ListRecent", mock.Anything, mock.Anything).Return([]*domain.SearchHistoryEntry{}, nil)
	return history
}

func quietInteractions() *MockInteractionRepository {
	interactions := new(MockInteractionRepository)
	interactions.On("ListViewsByContent", mock.Anything, mock.Anything, mock.Anything).
		Return([]*domain.InteractionEvent{}, nil)
	return interactions
}

func TestSearch_RanksMatchingContent(t *testing.T) {
	strong := &domain.ContentItem{
		ID:        "strong",
		Title:     "Leadership Fundamentals",
		Type:      domain.ContentTypeStory,
		Body:      "leadership principles and leadership habits",
		Tags:      []string{"leadership"},
		CreatedAt: serviceNow.Add(-7 * 24 * time.Hour),
		ViewCount: 200,
	}
	weak := &domain.ContentItem{
		ID:        "weak",
		Title:     "Notes",
		Type:      domain.ContentTypeOther,
		Body:      "a single leadership mention",
		CreatedAt: serviceNow.Add(-90 * 24 * time.Hour),
	}
	miss := &domain.ContentItem{
		ID:        "miss",
		Title:     "Gardening",
		Type:      domain.ContentTypeOther,
		Body:      "soil and compost",
		CreatedAt: serviceNow.Add(-90 * 24 * time.Hour),
	}

	content := new(MockContentRepository)
	content.On("ListRecent", mock.Anything, 500).
		Return([]*domain.ContentItem{weak, strong, miss}, nil)

	svc := NewService(content, quietHistory(), quietInteractions())

	output, err := svc.Search(context.Background(), Input{Query: "Leadership", Now: serviceNow})
	require.NoError(t, err)

	require.Len(t, output.Results, 2)
	assert.Equal(t, "strong", output.Results[0].Item.ID)
	assert.Equal(t, "weak", output.Results[1].Item.ID)
	assert.Equal(t, 2, output.Total)
	assert.False(t, output.HasMore)

	// 50 title + 25 exact word + 10 body (2x) + 30 tag + 5 popular + 10 recent
	assert.Equal(t, 130.0, output.Results[0].Score)
	assert.Equal(t, 5.0, output.Results[1].Score)
}

func TestSearch_PreservesCorpusOrderForEqualScores(t *testing.T) {
	corpus := make([]*domain.ContentItem, 0, 10)
	for _, id := range []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"} {
		corpus = append(corpus, &domain.ContentItem{
			ID:        id,
			Title:     "Mentoring",
			Type:      domain.ContentTypeOther,
			CreatedAt: serviceNow.Add(-90 * 24 * time.Hour),
		})
	}

	content := new(MockContentRepository)
	content.On("ListRecent", mock.Anything, 500).Return(corpus, nil)

	svc := NewService(content, quietHistory(), quietInteractions())

	output, err := svc.Search(context.Background(), Input{Query: "mentoring", Now: serviceNow})
	require.NoError(t, err)

	require.Len(t, output.Results, 10)
	for i, r := range output.Results {
		assert.Equal(t, corpus[i].ID, r.Item.ID)
	}
}

func TestSearch_Pagination(t *testing.T) {
	corpus := []*domain.ContentItem{
		{ID: "a", Title: "Mentoring", Type: domain.ContentTypeOther, CreatedAt: serviceNow.Add(-90 * 24 * time.Hour)},
		{ID: "b", Title: "Mentoring", Type: domain.ContentTypeOther, CreatedAt: serviceNow.Add(-90 * 24 * time.Hour)},
		{ID: "c", Title: "Mentoring", Type: domain.ContentTypeOther, CreatedAt: serviceNow.Add(-90 * 24 * time.Hour)},
	}

	content := new(MockContentRepository)
	content.On("ListRecent", mock.Anything, 500).Return(corpus, nil)

	svc := NewService(content, quietHistory(), quietInteractions())

	output, err := svc.Search(context.Background(), Input{Query: "mentoring", Limit: 2, Offset: 1, Now: serviceNow})
	require.NoError(t, err)

	require.Len(t, output.Results, 2)
	assert.Equal(t, "b", output.Results[0].Item.ID)
	assert.Equal(t, "c", output.Results[1].Item.ID)
	assert.Equal(t, 3, output.Total)
	assert.False(t, output.HasMore)
}

func TestSearch_InvalidQuery(t *testing.T) {
	svc := NewService(new(MockContentRepository), new(MockHistoryRepository), new(MockInteractionRepository))

	_, err := svc.Search(context.Background(), Input{Query: "   "})
	assert.ErrorIs(t, err, domain.ErrInvalidQuery)
}

func TestSearch_StorageFailure(t *testing.T) {
	content := new(MockContentRepository)
	content.On("ListRecent", mock.Anything, mock.Anything).Return(nil, errors.New("connection refused"))

	svc := NewService(content, new(MockHistoryRepository), new(MockInteractionRepository))

	_, err := svc.Search(context.Background(), Input{Query: "leadership"})
	require.Error(t, err)

	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.ErrCodeStorageUnavailable, domainErr.Code)
}

func TestSearch_DegradesWhenAuxiliaryLookupsFail(t *testing.T) {
	corpus := []*domain.ContentItem{
		{ID: "a", Title: "Leadership", Type: domain.ContentTypeOther, CreatedAt: serviceNow.Add(-90 * 24 * time.Hour)},
	}

	content := new(MockContentRepository)
	content.On("ListRecent", mock.Anything, 500).Return(corpus, nil)

	history := new(MockHistoryRepository)
	history.On("CountByPrefix", mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("history down"))
	history.On("ListRecent", mock.Anything, mock.Anything).Return(nil, errors.New("history down"))

	interactions := new(MockInteractionRepository)
	interactions.On("ListViewsByContent", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("events down"))

	svc := NewService(content, history, interactions)

	output, err := svc.Search(context.Background(), Input{Query: "leadership", Now: serviceNow})
	require.NoError(t, err)

	// The ranked page still comes back; everything auxiliary degrades to empty.
	require.Len(t, output.Results, 1)
	assert.Empty(t, output.Suggestions)
	assert.Empty(t, output.RelatedSearches)
	assert.Empty(t, output.RelatedContent)
}

func TestSearch_SkipsRelatedContentForEmptyPage(t *testing.T) {
	content := new(MockContentRepository)
	content.On("ListRecent", mock.Anything, 500).Return([]*domain.ContentItem{
		{ID: "a", Title: "Gardening", Type: domain.ContentTypeOther, CreatedAt: serviceNow.Add(-90 * 24 * time.Hour)},
	}, nil)

	interactions := new(MockInteractionRepository)

	svc := NewService(content, quietHistory(), interactions)

	output, err := svc.Search(context.Background(), Input{Query: "leadership", Now: serviceNow})
	require.NoError(t, err)

	assert.Empty(t, output.Results)
	assert.Empty(t, output.RelatedContent)
	interactions.AssertNotCalled(t, "ListViewsByContent", mock.Anything, mock.Anything, mock.Anything)
}

func TestSearch_CorrectionsForTypoQuery(t *testing.T) {
	content := new(MockContentRepository)
	content.On("ListRecent", mock.Anything, 500).Return([]*domain.ContentItem{
		{ID: "a", Title: "Leadership Fundamentals", Type: domain.ContentTypeOther, CreatedAt: serviceNow.Add(-90 * 24 * time.Hour)},
	}, nil)

	svc := NewService(content, quietHistory(), quietInteractions())

	// "leadship" matches nothing directly but sits distance 2 from
	// "leadership" in the title vocabulary.
	output, err := svc.Search(context.Background(), Input{Query: "leadship", Now: serviceNow})
	require.NoError(t, err)

	assert.Empty(t, output.Results)
	require.NotEmpty(t, output.Suggestions)
	assert.Equal(t, SuggestionKindCorrection, output.Suggestions[0].Kind)
	assert.Equal(t, "leadership", output.Suggestions[0].Text)
}

func TestSearch_NonNilOutputSlices(t *testing.T) {
	content := new(MockContentRepository)
	content.On("ListRecent", mock.Anything, 500).Return([]*domain.ContentItem{}, nil)

	svc := NewService(content, quietHistory(), quietInteractions())

	output, err := svc.Search(context.Background(), Input{Query: "anything", Now: serviceNow})
	require.NoError(t, err)

	assert.NotNil(t, output.Results)
	assert.NotNil(t, output.Suggestions)
	assert.NotNil(t, output.RelatedSearches)
	assert.NotNil(t, output.RelatedContent)
}
