package http

import (
	"net/http"
	"time"

	"github.com/aussiebroadwan/cookify/internal/cookify/service"
	"github.com/aussiebroadwan/cookify/internal/cookify/store"
	"github.com/aussiebroadwan/cookify/pkg/cookifysdk"
	"github.com/aussiebroadwan/cookify/pkg/httpx"
)

// RootHandler godoc
//
//	@Summary	Service banner
//	@Tags		Health
//	@Produce	json
//	@Success	200	{object}	cookifysdk.RootResponse
//	@Router		/ [get].
func RootHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, cookifysdk.RootResponse{OK: true, App: "Cookify"})
	}
}

// LivezHandler godoc
//
//	@Summary		Health Check Endpoint
//	@Description	Liveness probe returning status, uptime and version. Always 200 while the process runs.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	cookifysdk.HealthResponse	"status, timestamp, uptime, version"
//	@Router			/livez [get].
//	@Router			/health [get].
func LivezHandler(startTime time.Time, version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, cookifysdk.HealthResponse{
			Status:    "ok",
			Timestamp: time.Now().UTC(),
			Uptime:    time.Since(startTime).Round(time.Second).String(),
			Version:   version,
		})
	}
}

// ReadyzHandler godoc
//
//	@Summary		Readiness Check Endpoint
//	@Description	Readiness probe. Fails with 503 when the database does not answer. A missing AI key is reported but does not fail the probe.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	cookifysdk.HealthResponse	"status, uptime, version, checks"
//	@Failure		503	{object}	cookifysdk.HealthResponse	"service not ready"
//	@Router			/readyz [get].
func ReadyzHandler(startTime time.Time, version string, st store.Store, aiConfigured bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := &cookifysdk.HealthChecks{
			Database: "ok",
			AI:       "ok",
		}
		overallStatus := "ok"
		statusCode := http.StatusOK

		if err := st.Ping(r.Context()); err != nil {
			checks.Database = "error: " + err.Error()
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		if !aiConfigured {
			checks.AI = "not configured"
		}

		httpx.WriteJSON(w, statusCode, cookifysdk.HealthResponse{
			Status:    overallStatus,
			Timestamp: time.Now().UTC(),
			Uptime:    time.Since(startTime).Round(time.Second).String(),
			Version:   version,
			Checks:    checks,
		})
	}
}

// StatsHandler godoc
//
//	@Summary	Usage counters
//	@Tags		Health
//	@Produce	json
//	@Success	200	{object}	cookifysdk.StatsResponse
//	@Failure	503	{object}	cookifysdk.ErrorResponse
//	@Router		/stats [get].
func StatsHandler(stats *service.StatsService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, err := stats.Stats(r.Context())
		if err != nil {
			writeError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, cookifysdk.StatsResponse{
			Users:        s.Users,
			SavedRecipes: s.SavedRecipes,
			PantryItems:  s.PantryItems,
		})
	}
}
