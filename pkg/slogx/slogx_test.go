package slogx_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aussiebroadwan/nexusadmin/pkg/slogx"
	"github.com/stretchr/testify/require"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	dec := json.NewDecoder(buf)
	for dec.More() {
		var m map[string]any
		require.NoError(t, dec.Decode(&m))
		out = append(out, m)
	}
	return out
}

func TestNewAddsServiceAttributes(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	logger := slogx.New(slogx.Config{Service: "admin", Version: "test", Env: "prod", Level: "debug", Output: &buf})
	logger.Debug("hello")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	require.Equal(t, "admin", lines[0]["service"])
	require.Equal(t, "test", lines[0]["version"])
	require.Equal(t, "prod", lines[0]["env"])
}

func TestFromContextFallsBackToDefault(t *testing.T) {
	require.Equal(t, slog.Default(), slogx.FromContext(context.Background()))
}

func TestWithUserIDAndDetach(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, nil))

	ctx, cancel := context.WithCancel(slogx.WithContext(context.Background(), base))
	ctx = slogx.WithUserID(ctx, "user-1")
	detached := slogx.Detach(ctx)
	cancel()

	require.NoError(t, detached.Err())
	slogx.FromContext(detached).Info("later")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	require.Equal(t, "user-1", lines[0]["user_id"])
}

func TestHTTPMiddleware(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, nil))

	h := slogx.HTTPMiddleware(base)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		slogx.FromContext(r.Context()).Info("inside")
		w.WriteHeader(http.StatusTeapot)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set("X-Request-ID", "req-42")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusTeapot, rec.Code)
	require.Equal(t, "req-42", rec.Header().Get("X-Request-ID"))

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 2)
	require.Equal(t, "inside", lines[0]["msg"])
	require.Equal(t, "req-42", lines[0]["req_id"])
	require.Equal(t, "http_request", lines[1]["msg"])
	require.Equal(t, float64(http.StatusTeapot), lines[1]["status"])
	require.Equal(t, "/api/health", lines[1]["path"])
}
