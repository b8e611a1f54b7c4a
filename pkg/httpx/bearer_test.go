package httpx_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aussiebroadwan/cookify/pkg/httpx"
	"github.com/stretchr/testify/require"
)

func TestBearerToken(t *testing.T) {
	tests := []struct {
		name   string
		header string
		token  string
		ok     bool
	}{
		{"standard", "Bearer abc.def.ghi", "abc.def.ghi", true},
		{"lower case scheme", "bearer abc", "abc", true},
		{"upper case scheme", "BEARER abc", "abc", true},
		{"extra spaces", "  Bearer    abc  ", "abc", true},
		{"empty", "", "", false},
		{"scheme only", "Bearer", "", false},
		{"scheme and spaces", "Bearer    ", "", false},
		{"basic auth", "Basic dXNlcjpwYXNz", "", false},
		{"token only", "abc.def.ghi", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, ok := httpx.BearerToken(tt.header)
			require.Equal(t, tt.ok, ok)
			require.Equal(t, tt.token, token)
		})
	}
}

func TestWriteBearerError(t *testing.T) {
	rec := httptest.NewRecorder()
	httpx.WriteBearerError(rec, "token expired")

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, `Bearer error="invalid_token", error_description="token expired"`, rec.Header().Get("WWW-Authenticate"))
	require.Equal(t, "no-store", rec.Header().Get("Cache-Control"))

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "invalid_token", body["error"])
	require.Equal(t, "token expired", body["error_description"])
}

func TestWriteBearerChallenge(t *testing.T) {
	rec := httptest.NewRecorder()
	httpx.WriteBearerChallenge(rec, "token missing")

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, "Bearer", rec.Header().Get("WWW-Authenticate"))

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "invalid_token", body["error"])
	require.Equal(t, "token missing", body["error_description"])
}
