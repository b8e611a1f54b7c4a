package ai_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aussiebroadwan/cookify/internal/cookify/ai"
	"github.com/stretchr/testify/require"
)

func TestNewGemini_NotConfigured(t *testing.T) {
	_, err := ai.NewGemini(context.Background(), ai.GeminiConfig{APIKey: "  "})
	require.ErrorIs(t, err, ai.ErrNotConfigured)
}

func TestNewGemini_DefaultModel(t *testing.T) {
	g, err := ai.NewGemini(context.Background(), ai.GeminiConfig{APIKey: "test-key"})
	require.NoError(t, err)
	require.Equal(t, ai.DefaultModel, g.Model())
}

func newGeminiServer(t *testing.T, body string) *ai.Gemini {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.True(t, strings.HasSuffix(r.URL.Path, "models/test-model:generateContent"), r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	g, err := ai.NewGemini(context.Background(), ai.GeminiConfig{APIKey: "test-key", Model: "test-model", BaseURL: srv.URL + "/"})
	require.NoError(t, err)
	return g
}

func TestGemini_Generate(t *testing.T) {
	g := newGeminiServer(t, `{"candidates":[{"content":{"role":"model","parts":[{"text":"[{\"title\":\"Omelette\"}]"}]}}]}`)

	text, err := g.Generate(context.Background(), "eggs")
	require.NoError(t, err)
	require.Equal(t, `[{"title":"Omelette"}]`, text)
}

func TestGemini_EmptyResponse(t *testing.T) {
	g := newGeminiServer(t, `{"candidates":[]}`)

	_, err := g.Generate(context.Background(), "eggs")
	require.ErrorIs(t, err, ai.ErrEmptyResponse)
}
