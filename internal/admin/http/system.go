package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/aussiebroadwan/nexusadmin/internal/admin/store"
	"github.com/aussiebroadwan/nexusadmin/pkg/adminsdk"
	"github.com/aussiebroadwan/nexusadmin/pkg/httpx"
)

// PingFunc reports whether an optional dependency is reachable.
type PingFunc func(ctx context.Context) error

var apiEndpoints = map[string]string{
	"auth":     "/api/auth",
	"users":    "/api/users",
	"projects": "/api/projects",
	"health":   "/api/health",
	"docs":     "/swagger/index.html",
}

// APIInfoHandler godoc
//
//	@Summary		API information
//	@Description	Welcome message with the list of top level endpoints.
//	@Tags			System
//	@Produce		json
//	@Success		200	{object}	adminsdk.APIInfo	"success, message, version, endpoints, timestamp"
//	@Router			/api [get].
func APIInfoHandler(version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, adminsdk.APIInfo{
			Success:   true,
			Message:   "Welcome to NexusAdmin API",
			Version:   version,
			Endpoints: apiEndpoints,
			Timestamp: time.Now().UTC(),
		})
	}
}

// APIHealthHandler godoc
//
//	@Summary	API heartbeat
//	@Tags		System
//	@Produce	json
//	@Success	200	{object}	adminsdk.APIInfo	"success, message, timestamp"
//	@Router		/api/health [get].
func APIHealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, adminsdk.APIInfo{
			Success:   true,
			Message:   "NexusAdmin API is running",
			Timestamp: time.Now().UTC(),
		})
	}
}

// LivezHandler godoc
//
//	@Summary		Liveness probe
//	@Description	Always returns 200 OK while the process is serving.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	adminsdk.HealthResponse	"status, uptime, version"
//	@Router			/livez [get].
func LivezHandler(startTime time.Time, version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, adminsdk.HealthResponse{
			Status:  "ok",
			Uptime:  time.Since(startTime).String(),
			Version: version,
		})
	}
}

// ReadyzHandler godoc
//
//	@Summary		Readiness probe
//	@Description	Checks the database and, when configured, the notification queue.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	adminsdk.HealthResponse	"status, uptime, version, checks"
//	@Failure		503	{object}	adminsdk.HealthResponse	"service not ready"
//	@Router			/readyz [get].
func ReadyzHandler(startTime time.Time, version string, st store.Store, queue PingFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := &adminsdk.HealthChecks{Database: "ok"}
		overallStatus := "ok"
		statusCode := http.StatusOK

		if err := st.Ping(r.Context()); err != nil {
			checks.Database = "error: " + err.Error()
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		if queue != nil {
			checks.Queue = "ok"
			if err := queue(r.Context()); err != nil {
				checks.Queue = "error: " + err.Error()
				overallStatus = "degraded"
				statusCode = http.StatusServiceUnavailable
			}
		}

		httpx.WriteJSON(w, statusCode, adminsdk.HealthResponse{
			Status:  overallStatus,
			Uptime:  time.Since(startTime).String(),
			Version: version,
			Checks:  checks,
		})
	}
}

// NotFoundHandler answers every request that matched no route.
func NotFoundHandler(w http.ResponseWriter, r *http.Request) {
	httpx.WriteError(w, r, httpx.NotFound(fmt.Sprintf("Cannot find %s %s on this server", r.Method, r.URL.Path)))
}
