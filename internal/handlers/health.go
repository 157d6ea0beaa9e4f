package handlers

import (
	"log/slog"
	"net/http"
	"runtime"
	"time"

	"github.com/Hari-prashath-123/art-finity/internal/config"
	"github.com/Hari-prashath-123/art-finity/internal/registrations"
	"github.com/Hari-prashath-123/art-finity/internal/scheduler"
	"github.com/Hari-prashath-123/art-finity/internal/version"
	"github.com/Hari-prashath-123/art-finity/pkg/apperror"
)

// HealthHandler handles health check requests
type HealthHandler struct {
	cfg       *config.Config
	poller    *registrations.Poller
	scheduler *scheduler.Scheduler
	log       *slog.Logger
	startAt   time.Time
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(cfg *config.Config, poller *registrations.Poller, s *scheduler.Scheduler, log *slog.Logger) *HealthHandler {
	return &HealthHandler{
		cfg:       cfg,
		poller:    poller,
		scheduler: s,
		log:       log,
		startAt:   time.Now(),
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string           `json:"status"`
	Timestamp string           `json:"timestamp"`
	Uptime    string           `json:"uptime"`
	Version   string           `json:"version"`
	Checks    map[string]Check `json:"checks"`
}

// Check represents an individual health check result
type Check struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// Health returns the overall service health. The registration widget never
// makes the service unhealthy; a failed fetch only degrades its check.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	checks := map[string]Check{
		"registrations": h.registrationsCheck(),
		"scheduler":     h.schedulerCheck(),
	}

	overall := "healthy"
	statusCode := http.StatusOK
	if checks["scheduler"].Status == "unhealthy" {
		overall = "unhealthy"
		statusCode = http.StatusServiceUnavailable
	}

	writeJSON(w, statusCode, HealthResponse{
		Status:    overall,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Uptime:    time.Since(h.startAt).String(),
		Version:   version.Version,
		Checks:    checks,
	})
}

func (h *HealthHandler) registrationsCheck() Check {
	if !h.cfg.Registration.IsConfigured() {
		return Check{Status: "disabled"}
	}

	snap := h.poller.Snapshot()
	switch snap.State {
	case registrations.StateError:
		return Check{Status: "degraded", Message: snap.Error}
	case registrations.StateLoading:
		return Check{Status: "healthy", Message: "loading"}
	default:
		return Check{Status: "healthy"}
	}
}

func (h *HealthHandler) schedulerCheck() Check {
	if h.cfg.Registration.RefreshInterval <= 0 || !h.cfg.Registration.IsConfigured() {
		return Check{Status: "disabled"}
	}
	if !h.scheduler.IsRunning() {
		return Check{Status: "unhealthy", Message: "scheduler not running"}
	}
	return Check{Status: "healthy"}
}

// Healthz returns a simple health check (for k8s liveness probe)
func (h *HealthHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

// Ready returns readiness status (for k8s readiness probe)
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	if h.schedulerCheck().Status == "unhealthy" {
		writeJSON(w, http.StatusServiceUnavailable, map[string]any{
			"status":  "not_ready",
			"message": "Scheduler is not running",
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status": "ready",
	})
}

// Debug returns runtime and task information outside production
func (h *HealthHandler) Debug(w http.ResponseWriter, r *http.Request) {
	if h.cfg.IsProduction() {
		apperror.WriteJSON(w, r, h.log, apperror.ErrNotFound)
		return
	}

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	writeJSON(w, http.StatusOK, map[string]any{
		"environment": h.cfg.Environment,
		"version":     version.Info(),
		"goroutines":  runtime.NumGoroutine(),
		"memory": map[string]any{
			"alloc_mb":       mem.Alloc / 1024 / 1024,
			"total_alloc_mb": mem.TotalAlloc / 1024 / 1024,
			"sys_mb":         mem.Sys / 1024 / 1024,
			"num_gc":         mem.NumGC,
		},
		"registrations": map[string]any{
			"enabled":  h.cfg.Registration.IsConfigured(),
			"mounted":  h.poller.Mounted(),
			"params":   h.poller.Params(),
			"snapshot": h.poller.Snapshot(),
		},
		"tasks": h.scheduler.Tasks(),
	})
}
