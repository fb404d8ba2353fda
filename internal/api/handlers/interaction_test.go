package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/risehub-org/risehub/internal/api/middleware"
	"github.com/risehub-org/risehub/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockInteractionRecorder struct {
	mock.Mock
}

func (m *MockInteractionRecorder) RecordInteraction(event *domain.InteractionEvent) error {
	args := m.Called(event)
	return args.Error(0)
}

func interactionRequest(t *testing.T, body interface{}, userID string) *http.Request {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/interactions", bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set("X-User-ID", userID)
	}
	return req
}

func serveInteraction(handler *InteractionHandler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	middleware.Identity(http.HandlerFunc(handler.Record)).ServeHTTP(w, req)
	return w
}

func TestInteractionHandler_Record(t *testing.T) {
	recorder := new(MockInteractionRecorder)
	recorder.On("RecordInteraction", mock.MatchedBy(func(e *domain.InteractionEvent) bool {
		return e.UserID == "alice" &&
			e.ContentID == "c1" &&
			e.Type == domain.InteractionTypeView &&
			e.DurationSeconds == 120
	})).Return(nil)

	handler := NewInteractionHandler(recorder)
	w := serveInteraction(handler, interactionRequest(t, InteractionRequest{
		ContentID:       "c1",
		Type:            "view",
		DurationSeconds: 120,
	}, "alice"))

	assert.Equal(t, http.StatusAccepted, w.Code)

	var envelope struct {
		Data InteractionResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, "recorded", envelope.Data.Status)

	recorder.AssertExpectations(t)
}

func TestInteractionHandler_RequiresUserIdentity(t *testing.T) {
	recorder := new(MockInteractionRecorder)

	handler := NewInteractionHandler(recorder)
	w := serveInteraction(handler, interactionRequest(t, InteractionRequest{
		ContentID: "c1",
		Type:      "view",
	}, ""))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	recorder.AssertNotCalled(t, "RecordInteraction", mock.Anything)
}

func TestInteractionHandler_InvalidEvent(t *testing.T) {
	recorder := new(MockInteractionRecorder)
	recorder.On("RecordInteraction", mock.Anything).
		Return(domain.NewDomainError(domain.ErrCodeValidation, "invalid interaction event"))

	handler := NewInteractionHandler(recorder)
	w := serveInteraction(handler, interactionRequest(t, InteractionRequest{
		ContentID: "c1",
		Type:      "clicked",
	}, "alice"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestInteractionHandler_MalformedBody(t *testing.T) {
	handler := NewInteractionHandler(new(MockInteractionRecorder))

	req := httptest.NewRequest(http.MethodPost, "/interactions", bytes.NewReader([]byte("nope")))
	req.Header.Set("X-User-ID", "alice")
	w := serveInteraction(handler, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
