package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestWithLogging_PassesThrough verifies that the logging middleware is
// transparent: status code and body reach the client unchanged.
func TestWithLogging_PassesThrough(t *testing.T) {
	h := newTestHandler()

	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		w.Write([]byte("short and stout"))
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req = injectNopLogger(req)
	rr := httptest.NewRecorder()

	h.withLogging(next).ServeHTTP(rr, req)

	require.Equal(t, http.StatusTeapot, rr.Code)
	assert.Equal(t, "short and stout", rr.Body.String())
}

// TestWithLogging_DefaultStatus verifies that a handler writing a body
// without an explicit WriteHeader is recorded as 200.
func TestWithLogging_DefaultStatus(t *testing.T) {
	h := newTestHandler()

	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("implicit ok"))
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req = injectNopLogger(req)
	rr := httptest.NewRecorder()

	h.withLogging(next).ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "implicit ok", rr.Body.String())
}
