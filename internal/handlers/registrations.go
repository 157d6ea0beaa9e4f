package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/Hari-prashath-123/art-finity/internal/config"
	"github.com/Hari-prashath-123/art-finity/internal/registrations"
	"github.com/Hari-prashath-123/art-finity/pkg/apperror"
	"github.com/Hari-prashath-123/art-finity/pkg/logger"
)

// ErrWidgetDisabled answers registration requests while the widget is off.
var ErrWidgetDisabled = apperror.ErrNotFound.WithMessage("Registration widget is disabled")

// RegistrationsHandler exposes the poller snapshot
type RegistrationsHandler struct {
	cfg    *config.Config
	poller *registrations.Poller
	log    *slog.Logger
}

// NewRegistrationsHandler creates a new registrations handler
func NewRegistrationsHandler(cfg *config.Config, poller *registrations.Poller, log *slog.Logger) *RegistrationsHandler {
	return &RegistrationsHandler{
		cfg:    cfg,
		poller: poller,
		log:    log.With(logger.Scope("registrations.api")),
	}
}

// Snapshot returns {state, count, error, updated_at}. Failures of the
// underlying fetch are part of the snapshot, not of the response status.
func (h *RegistrationsHandler) Snapshot(w http.ResponseWriter, r *http.Request) {
	if !h.cfg.Registration.IsConfigured() {
		apperror.WriteJSON(w, r, h.log, ErrWidgetDisabled)
		return
	}
	writeJSON(w, http.StatusOK, h.poller.Snapshot())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
