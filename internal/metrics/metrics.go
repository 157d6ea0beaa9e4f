package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Page rendering
	PageRenders = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "artfinity_page_renders_total",
		Help: "Landing page renders by outcome",
	}, []string{"outcome"})

	AnimatedElements = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "artfinity_animated_elements",
		Help: "Animated elements registered by the last page build",
	})

	// Registration widget
	RegistrationFetches = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "artfinity_registration_fetches_total",
		Help: "Spreadsheet fetches by outcome (loaded, error, discarded)",
	}, []string{"outcome"})

	RegistrationFetchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "artfinity_registration_fetch_duration_seconds",
		Help:    "Spreadsheet fetch latency",
		Buckets: prometheus.DefBuckets,
	})

	RegistrationCount = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "artfinity_registrations",
		Help: "Last registration count read from the spreadsheet",
	})
)
