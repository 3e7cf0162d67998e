package handler

import (
	"context"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"
)

// HealthChecker defines an interface for checking service health.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// HealthHandler manages health check endpoints.
type HealthHandler struct {
	db    HealthChecker
	cache HealthChecker
}

// NewHealthHandler creates a new HealthHandler.
// Pass nil for db or cache if they are not configured.
func NewHealthHandler(db, cache HealthChecker) *HealthHandler {
	return &HealthHandler{
		db:    db,
		cache: cache,
	}
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// Health reports overall service status. It always answers 200 so that
// load balancers can distinguish a degraded dependency from a dead process.
//
// GET /health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	checks, healthy := h.runChecks(r.Context())

	status := "UP"
	if !healthy {
		status = "DEGRADED"
	}
	writeJSON(w, http.StatusOK, HealthResponse{Status: status, Checks: checks})
}

// Healthz is a liveness probe endpoint.
// No dependency checks.
//
// GET /healthz
func (h *HealthHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}

// Readyz is a readiness probe endpoint.
// It returns 200 only if every configured dependency answers.
//
// GET /readyz
func (h *HealthHandler) Readyz(w http.ResponseWriter, r *http.Request) {
	checks, healthy := h.runChecks(r.Context())

	status := "ok"
	statusCode := http.StatusOK
	if !healthy {
		status = "unhealthy"
		statusCode = http.StatusServiceUnavailable
	}

	writeJSON(w, statusCode, HealthResponse{Status: status, Checks: checks})
}

// runChecks pings every dependency concurrently so one slow backend does
// not delay the other's report.
func (h *HealthHandler) runChecks(ctx context.Context) (map[string]string, bool) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	names := []string{"postgres", "redis"}
	checkers := []HealthChecker{h.db, h.cache}
	results := make([]string, len(checkers))
	failed := make([]bool, len(checkers))

	var g errgroup.Group
	for i, c := range checkers {
		if c == nil {
			results[i] = "not configured"
			continue
		}
		g.Go(func() error {
			if err := c.Ping(ctx); err != nil {
				results[i] = "error: " + err.Error()
				failed[i] = true
				return nil
			}
			results[i] = "ok"
			return nil
		})
	}
	_ = g.Wait()

	checks := make(map[string]string, len(names))
	healthy := true
	for i, name := range names {
		checks[name] = results[i]
		if failed[i] {
			healthy = false
		}
	}
	return checks, healthy
}
