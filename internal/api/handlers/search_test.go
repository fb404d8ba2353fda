package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/risehub-org/risehub/internal/api/middleware"
	"github.com/risehub-org/risehub/internal/domain"
	"github.com/risehub-org/risehub/internal/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockSearchService struct {
	mock.Mock
}

func (m *MockSearchService) Search(ctx context.Context, input search.Input) (*search.Output, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*search.Output), args.Error(1)
}

type MockSearchRecorder struct {
	mock.Mock
}

func (m *MockSearchRecorder) RecordSearch(userID, query string, contentIDs []string) {
	m.Called(userID, query, contentIDs)
}

func emptyOutput() *search.Output {
	return &search.Output{
		Results:         []*search.ScoredResult{},
		Suggestions:     []*search.Suggestion{},
		RelatedSearches: []string{},
		RelatedContent:  []*search.RelatedContent{},
	}
}

func searchRequest(t *testing.T, body interface{}, userID string) *http.Request {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/search", bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set("X-User-ID", userID)
	}
	return req
}

func serveSearch(handler *SearchHandler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	middleware.Identity(http.HandlerFunc(handler.Search)).ServeHTTP(w, req)
	return w
}

func TestSearchHandler_Success(t *testing.T) {
	item := &domain.ContentItem{
		ID:        "c1",
		Title:     "Leadership Fundamentals",
		Type:      domain.ContentTypeVideo,
		URL:       "https://example.com/c1",
		Tags:      []string{"leadership"},
		CreatedAt: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		ViewCount: 42,
	}

	svc := new(MockSearchService)
	svc.On("Search", mock.Anything, mock.MatchedBy(func(in search.Input) bool {
		return in.Query == "leadership" && in.Limit == 10 && in.Offset == 0 && in.UserID == "alice"
	})).Return(&search.Output{
		Results: []*search.ScoredResult{
			{Item: item, Score: 130, Reasons: []string{`Title contains "leadership"`}},
		},
		Total:           1,
		HasMore:         false,
		Suggestions:     []*search.Suggestion{{Text: "leadership styles", Kind: search.SuggestionKindCompletion, Confidence: 0.3}},
		RelatedSearches: []string{"leadership skills"},
		RelatedContent:  []*search.RelatedContent{{Item: item, CoViewCount: 3}},
	}, nil)

	recorder := new(MockSearchRecorder)
	recorder.On("RecordSearch", "alice", "leadership", []string{"c1"}).Return()

	handler := NewSearchHandler(svc, recorder)
	w := serveSearch(handler, searchRequest(t, SearchRequest{Query: "leadership", Limit: 10}, "alice"))

	assert.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		Data SearchResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))

	require.Len(t, envelope.Data.Results, 1)
	result := envelope.Data.Results[0]
	assert.Equal(t, "c1", result.ID)
	assert.Equal(t, "video", result.Type)
	assert.Equal(t, 130.0, result.Score)
	assert.Equal(t, []string{`Title contains "leadership"`}, result.MatchReasons)
	assert.Equal(t, "2026-03-01T00:00:00Z", result.CreatedAt)

	assert.Equal(t, 1, envelope.Data.Total)
	require.Len(t, envelope.Data.Suggestions, 1)
	assert.Equal(t, "completion", envelope.Data.Suggestions[0].Kind)
	assert.Equal(t, []string{"leadership skills"}, envelope.Data.RelatedSearches)
	require.Len(t, envelope.Data.RelatedContent, 1)
	assert.Equal(t, 3, envelope.Data.RelatedContent[0].CoViewCount)

	recorder.AssertExpectations(t)
}

func TestSearchHandler_AnonymousRecordsWithoutUser(t *testing.T) {
	svc := new(MockSearchService)
	svc.On("Search", mock.Anything, mock.Anything).Return(emptyOutput(), nil)

	recorder := new(MockSearchRecorder)
	recorder.On("RecordSearch", "", "leadership", []string{}).Return()

	handler := NewSearchHandler(svc, recorder)
	w := serveSearch(handler, searchRequest(t, SearchRequest{Query: "leadership"}, ""))

	assert.Equal(t, http.StatusOK, w.Code)
	recorder.AssertExpectations(t)
}

func TestSearchHandler_InvalidQuery(t *testing.T) {
	svc := new(MockSearchService)
	svc.On("Search", mock.Anything, mock.Anything).Return(nil, domain.ErrInvalidQuery)

	handler := NewSearchHandler(svc, new(MockSearchRecorder))
	w := serveSearch(handler, searchRequest(t, SearchRequest{Query: "  "}, ""))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSearchHandler_StorageUnavailable(t *testing.T) {
	svc := new(MockSearchService)
	svc.On("Search", mock.Anything, mock.Anything).
		Return(nil, domain.ErrStorageUnavailable)

	handler := NewSearchHandler(svc, new(MockSearchRecorder))
	w := serveSearch(handler, searchRequest(t, SearchRequest{Query: "leadership"}, ""))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestSearchHandler_MalformedBody(t *testing.T) {
	handler := NewSearchHandler(new(MockSearchService), new(MockSearchRecorder))

	req := httptest.NewRequest(http.MethodPost, "/search", bytes.NewReader([]byte("{not json")))
	w := serveSearch(handler, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
