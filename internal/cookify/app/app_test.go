package app

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) Config {
	t.Helper()
	return Config{
		Env:                 "dev",
		LogLevel:            "error",
		LogFormat:           "text",
		Port:                8080,
		ShutdownGracePeriod: time.Second,
		DatabaseDriver:      DriverSQLite,
		DatabaseFile:        filepath.Join(t.TempDir(), "cookify.db"),
		BcryptCost:          10,
	}
}

func TestNew_WiresRouter(t *testing.T) {
	application, err := New(context.Background(), testConfig(t))
	require.NoError(t, err)
	t.Cleanup(func() { _ = application.Shutdown() })

	srv := httptest.NewServer(application.Handler())
	t.Cleanup(srv.Close)

	resp, err := http.Get(srv.URL + "/readyz")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Status string `json:"status"`
		Checks struct {
			Database string `json:"database"`
			AI       string `json:"ai"`
		} `json:"checks"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, "ok", body.Checks.Database)
	require.Equal(t, "not configured", body.Checks.AI)
}

func TestNew_RejectsInvalidConfig(t *testing.T) {
	cfg := testConfig(t)
	cfg.Env = "prod"

	_, err := New(context.Background(), cfg)
	require.ErrorContains(t, err, "JWT_SECRET")
}
