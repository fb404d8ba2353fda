package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdentity_SetsUserID(t *testing.T) {
	var got string
	handler := Identity(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = GetUserID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-User-ID", "  alice  ")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, "alice", got)
}

func TestIdentity_AnonymousAllowed(t *testing.T) {
	var got string
	called := false
	handler := Identity(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		got = GetUserID(r.Context())
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.True(t, called)
	assert.Empty(t, got)
}

func TestGetUserID_MissingValue(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Empty(t, GetUserID(req.Context()))
}
