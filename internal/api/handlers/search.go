package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/risehub-org/risehub/internal/api"
	"github.com/risehub-org/risehub/internal/api/middleware"
	"github.com/risehub-org/risehub/internal/search"
)

// SearchService is the discovery engine's single query-side operation.
type SearchService interface {
	Search(ctx context.Context, input search.Input) (*search.Output, error)
}

// SearchRecorder persists the side effects of a served search.
type SearchRecorder interface {
	RecordSearch(userID, query string, contentIDs []string)
}

type SearchHandler struct {
	svc      SearchService
	recorder SearchRecorder
}

func NewSearchHandler(svc SearchService, recorder SearchRecorder) *SearchHandler {
	return &SearchHandler{svc: svc, recorder: recorder}
}

type SearchRequest struct {
	Query  string `json:"query"`
	Limit  int    `json:"limit,omitempty"`
	Offset int    `json:"offset,omitempty"`
}

type ScoredResultResponse struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Type         string   `json:"type"`
	Source       string   `json:"source,omitempty"`
	URL          string   `json:"url,omitempty"`
	Tags         []string `json:"tags,omitempty"`
	CreatedAt    string   `json:"created_at,omitempty"`
	ViewCount    int64    `json:"view_count"`
	Score        float64  `json:"score"`
	MatchReasons []string `json:"match_reasons"`
}

type SuggestionResponse struct {
	Text       string  `json:"text"`
	Kind       string  `json:"kind"`
	Confidence float64 `json:"confidence"`
}

type RelatedContentResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Type        string `json:"type"`
	URL         string `json:"url,omitempty"`
	CoViewCount int    `json:"co_view_count"`
}

type SearchResponse struct {
	Results         []*ScoredResultResponse   `json:"results"`
	Total           int                       `json:"total"`
	HasMore         bool                      `json:"has_more"`
	Suggestions     []*SuggestionResponse     `json:"suggestions"`
	RelatedSearches []string                  `json:"related_searches"`
	RelatedContent  []*RelatedContentResponse `json:"related_content"`
}

func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	var req SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	userID := middleware.GetUserID(r.Context())

	input := search.Input{
		Query:  req.Query,
		Limit:  req.Limit,
		Offset: req.Offset,
		UserID: userID,
	}

	output, err := h.svc.Search(r.Context(), input)
	if err != nil {
		api.HandleError(w, err)
		return
	}

	results := make([]*ScoredResultResponse, len(output.Results))
	pageIDs := make([]string, len(output.Results))
	for i, result := range output.Results {
		createdAt := ""
		if !result.Item.CreatedAt.IsZero() {
			createdAt = result.Item.CreatedAt.UTC().Format(time.RFC3339Nano)
		}
		results[i] = &ScoredResultResponse{
			ID:           result.Item.ID,
			Title:        result.Item.Title,
			Type:         string(result.Item.Type),
			Source:       result.Item.Source,
			URL:          result.Item.URL,
			Tags:         result.Item.Tags,
			CreatedAt:    createdAt,
			ViewCount:    result.Item.ViewCount,
			Score:        result.Score,
			MatchReasons: result.Reasons,
		}
		pageIDs[i] = result.Item.ID
	}

	suggestions := make([]*SuggestionResponse, len(output.Suggestions))
	for i, s := range output.Suggestions {
		suggestions[i] = &SuggestionResponse{
			Text:       s.Text,
			Kind:       string(s.Kind),
			Confidence: s.Confidence,
		}
	}

	relatedContent := make([]*RelatedContentResponse, len(output.RelatedContent))
	for i, rc := range output.RelatedContent {
		relatedContent[i] = &RelatedContentResponse{
			ID:          rc.Item.ID,
			Title:       rc.Item.Title,
			Type:        string(rc.Item.Type),
			URL:         rc.Item.URL,
			CoViewCount: rc.CoViewCount,
		}
	}

	// History and counter writes happen off the request path.
	if h.recorder != nil {
		h.recorder.RecordSearch(userID, req.Query, pageIDs)
	}

	api.Success(w, http.StatusOK, SearchResponse{
		Results:         results,
		Total:           output.Total,
		HasMore:         output.HasMore,
		Suggestions:     suggestions,
		RelatedSearches: output.RelatedSearches,
		RelatedContent:  relatedContent,
	})
}
