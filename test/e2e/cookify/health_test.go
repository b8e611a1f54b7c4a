package cookify_test

import (
	"testing"

	"github.com/aussiebroadwan/cookify/pkg/cookifysdk"
	"github.com/stretchr/testify/require"
)

func TestLivezEndpoint(t *testing.T) {
	baseURL, cleanup := setupCookifyContainer(t)
	defer cleanup()

	client := cookifysdk.NewClient(baseURL)

	health, err := client.GetLiveness(t.Context())
	assertHealthy(t, health, err)
}

func TestReadyzEndpoint(t *testing.T) {
	baseURL, cleanup := setupCookifyContainer(t)
	defer cleanup()

	client := cookifysdk.NewClient(baseURL)

	health, err := client.GetReadiness(t.Context())
	assertHealthy(t, health, err)
	require.NotNil(t, health.Checks)
	require.Equal(t, "ok", health.Checks.Database)
	require.Equal(t, "not configured", health.Checks.AI)
}

func TestStatsEndpoint(t *testing.T) {
	baseURL, cleanup := setupCookifyContainer(t)
	defer cleanup()

	client := cookifysdk.NewClient(baseURL)

	stats, err := client.GetStats(t.Context())
	require.NoError(t, err)
	require.Zero(t, stats.Users)

	registerAndLogin(t, client, "stats@example.com")

	stats, err = client.GetStats(t.Context())
	require.NoError(t, err)
	require.EqualValues(t, 1, stats.Users)
}
