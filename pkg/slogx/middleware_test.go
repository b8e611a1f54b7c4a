package slogx_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aussiebroadwan/cookify/pkg/idx"
	"github.com/aussiebroadwan/cookify/pkg/slogx"
	"github.com/stretchr/testify/require"
)

func TestHTTPMiddleware_RequestID(t *testing.T) {
	var buf bytes.Buffer
	logger := slogx.New(slogx.Config{Service: "test", Level: "debug", Output: &buf})

	var fromCtx bool
	h := slogx.HTTPMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fromCtx = slogx.FromContext(r.Context()) != logger
		slogx.FromContext(r.Context()).Info("handler_line")
		w.WriteHeader(http.StatusTeapot)
	}))

	t.Run("generated", func(t *testing.T) {
		buf.Reset()
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/livez", nil))

		require.Equal(t, http.StatusTeapot, rec.Code)
		require.True(t, idx.Valid(rec.Header().Get(slogx.RequestIDHeader)))
		require.True(t, fromCtx, "handler should see a request scoped logger")

		lines := decodeLines(t, &buf)
		require.Len(t, lines, 2)

		// Lines logged by the handler carry the request id too.
		require.Equal(t, "handler_line", lines[0]["msg"])
		require.Equal(t, rec.Header().Get(slogx.RequestIDHeader), lines[0]["req_id"])
		require.Equal(t, "/livez", lines[0]["path"])

		line := lines[1]
		require.Equal(t, "http_request", line["msg"])
		require.Equal(t, "WARN", line["level"])
		require.EqualValues(t, http.StatusTeapot, line["status"])
		require.Equal(t, rec.Header().Get(slogx.RequestIDHeader), line["req_id"])
	})

	t.Run("propagated", func(t *testing.T) {
		buf.Reset()
		req := httptest.NewRequest(http.MethodGet, "/livez", nil)
		req.Header.Set(slogx.RequestIDHeader, "abc-123")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		require.Equal(t, "abc-123", rec.Header().Get(slogx.RequestIDHeader))
		for _, line := range decodeLines(t, &buf) {
			require.Equal(t, "abc-123", line["req_id"])
		}
	})
}

func TestWithRequestID(t *testing.T) {
	var buf bytes.Buffer
	logger := slogx.New(slogx.Config{Service: "test", Level: "info", Output: &buf})

	ctx := slogx.WithRequestID(slogx.WithContext(context.Background(), logger), "req-1")
	slogx.FromContext(ctx).Info("hello")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	require.Equal(t, "req-1", lines[0]["req_id"])
}

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var out []map[string]any
	dec := json.NewDecoder(buf)
	for dec.More() {
		var line map[string]any
		require.NoError(t, dec.Decode(&line))
		out = append(out, line)
	}
	return out
}

func TestParseLevel(t *testing.T) {
	require.Equal(t, "DEBUG", slogx.ParseLevel("debug").String())
	require.Equal(t, "WARN", slogx.ParseLevel("Warning").String())
	require.Equal(t, "ERROR", slogx.ParseLevel("error").String())
	require.Equal(t, "INFO", slogx.ParseLevel("").String())
}
