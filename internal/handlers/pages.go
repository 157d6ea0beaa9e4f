package handlers

import (
	"bytes"
	"log/slog"
	"net/http"

	"github.com/Hari-prashath-123/art-finity/internal/animate"
	"github.com/Hari-prashath-123/art-finity/internal/components"
	"github.com/Hari-prashath-123/art-finity/internal/config"
	"github.com/Hari-prashath-123/art-finity/internal/metrics"
	"github.com/Hari-prashath-123/art-finity/internal/registrations"
	"github.com/Hari-prashath-123/art-finity/pkg/apperror"
	"github.com/Hari-prashath-123/art-finity/pkg/logger"
)

// PageHandler renders the landing page
type PageHandler struct {
	cfg    *config.Config
	poller *registrations.Poller
	log    *slog.Logger
}

// NewPageHandler creates a new page handler
func NewPageHandler(cfg *config.Config, poller *registrations.Poller, log *slog.Logger) *PageHandler {
	return &PageHandler{
		cfg:    cfg,
		poller: poller,
		log:    log.With(logger.Scope("pages")),
	}
}

// PageConfig returns the build settings for one request.
func (h *PageHandler) PageConfig() components.LandingPageConfig {
	pc := components.LandingPageConfig{
		PageConfig: components.PageConfig{
			Title:       h.cfg.Site.Title,
			Description: h.cfg.Site.Description,
			Animation: animate.WatcherConfig{
				Threshold: h.cfg.Animation.Threshold,
				FadeClass: h.cfg.Animation.FadeClass,
			},
		},
	}
	if h.cfg.Registration.IsConfigured() {
		snap := h.poller.Snapshot()
		pc.Registrations = &snap
	}
	return pc
}

// LandingPage builds a fresh registry per request, assigns directions and
// renders the page. The page is buffered so a render failure can still be
// answered with an error status.
func (h *PageHandler) LandingPage(w http.ResponseWriter, r *http.Request) {
	page, reg, assignments := components.BuildLandingPage(h.PageConfig())

	var buf bytes.Buffer
	if err := page.Render(&buf); err != nil {
		metrics.PageRenders.WithLabelValues("error").Inc()
		apperror.WriteJSON(w, r, h.log, apperror.ErrInternal.WithInternal(err))
		return
	}

	metrics.PageRenders.WithLabelValues("ok").Inc()
	metrics.AnimatedElements.Set(float64(reg.Len()))
	h.log.Debug("landing page rendered",
		slog.Int("elements", reg.Len()),
		slog.Int("sections", len(assignments)),
		slog.Int("bytes", buf.Len()),
	)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}
