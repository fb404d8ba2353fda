package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/risehub-org/risehub/internal/api"
	"github.com/risehub-org/risehub/internal/api/middleware"
	"github.com/risehub-org/risehub/internal/domain"
)

// InteractionRecorder enqueues interaction events for asynchronous
// persistence.
type InteractionRecorder interface {
	RecordInteraction(event *domain.InteractionEvent) error
}

type InteractionHandler struct {
	recorder InteractionRecorder
}

func NewInteractionHandler(recorder InteractionRecorder) *InteractionHandler {
	return &InteractionHandler{recorder: recorder}
}

type InteractionRequest struct {
	ContentID       string `json:"content_id"`
	Type            string `json:"type"`
	DurationSeconds int    `json:"duration_seconds,omitempty"`
}

type InteractionResponse struct {
	Status string `json:"status"`
}

// Record accepts an interaction event and acknowledges it once enqueued.
// The write itself is an append-only side channel: it never gates the
// response.
func (h *InteractionHandler) Record(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		api.Error(w, http.StatusBadRequest, "X-User-ID header is required")
		return
	}

	var req InteractionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	event := &domain.InteractionEvent{
		UserID:          userID,
		ContentID:       req.ContentID,
		Type:            domain.InteractionType(req.Type),
		DurationSeconds: req.DurationSeconds,
	}

	if err := h.recorder.RecordInteraction(event); err != nil {
		api.HandleError(w, err)
		return
	}

	api.Success(w, http.StatusAccepted, InteractionResponse{Status: "recorded"})
}
