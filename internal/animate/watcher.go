package animate

import "sync"

// WatcherConfig configures a Watcher.
type WatcherConfig struct {
	// Threshold is the visible fraction at which an element counts as
	// intersecting. Kept low so animations start early while scrolling.
	Threshold float64

	// ReducedMotion replaces replays with a single FadeClass application.
	ReducedMotion bool

	FadeClass string
}

// DefaultWatcherConfig returns the settings used by the live page.
func DefaultWatcherConfig() WatcherConfig {
	return WatcherConfig{
		Threshold: 0.1,
		FadeClass: string(FadeIn),
	}
}

// Entry reports the visible fraction of an observed target.
type Entry struct {
	Target Target
	Ratio  float64
}

// Watcher replays animations on observed targets as they cross into view.
// It is safe for concurrent use.
type Watcher struct {
	cfg WatcherConfig

	mu        sync.Mutex
	observed  map[ElementID]Target
	faded     map[ElementID]bool
	connected bool
}

// NewWatcher creates a connected watcher. A zero Threshold or empty
// FadeClass falls back to the defaults.
func NewWatcher(cfg WatcherConfig) *Watcher {
	def := DefaultWatcherConfig()
	if cfg.Threshold <= 0 {
		cfg.Threshold = def.Threshold
	}
	if cfg.FadeClass == "" {
		cfg.FadeClass = def.FadeClass
	}
	return &Watcher{
		cfg:       cfg,
		observed:  make(map[ElementID]Target),
		faded:     make(map[ElementID]bool),
		connected: true,
	}
}

// Config returns the watcher's effective configuration.
func (w *Watcher) Config() WatcherConfig {
	return w.cfg
}

// Observe starts watching targets. Targets already observed are ignored.
// It returns how many targets were added.
func (w *Watcher) Observe(targets ...Target) int {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.connected {
		return 0
	}
	added := 0
	for _, t := range targets {
		if _, ok := w.observed[t.Key()]; ok {
			continue
		}
		w.observed[t.Key()] = t
		added++
	}
	return added
}

// Observing returns the number of observed targets.
func (w *Watcher) Observing() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.observed)
}

// Disconnect stops observing every target. Crossings delivered afterwards
// are ignored and further Observe calls are no-ops.
func (w *Watcher) Disconnect() {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.connected = false
	w.observed = make(map[ElementID]Target)
}

// Intersecting reports whether ratio reaches the watcher's threshold.
func (w *Watcher) Intersecting(ratio float64) bool {
	return ratio > 0 && ratio >= w.cfg.Threshold
}

// HandleCrossing processes visibility reports and returns the number of
// class changes it applied.
//
// For an intersecting entry on an observed target carrying an animation
// identifier: with reduced motion the fade class is added the first time
// only; otherwise the identifier's animation is restarted on every entry.
func (w *Watcher) HandleCrossing(entries ...Entry) int {
	w.mu.Lock()
	defer w.mu.Unlock()

	applied := 0
	for _, e := range entries {
		if e.Target == nil || !w.Intersecting(e.Ratio) {
			continue
		}
		key := e.Target.Key()
		if _, ok := w.observed[key]; !ok {
			continue
		}
		v, ok := e.Target.Animation()
		if !ok {
			continue
		}

		if w.cfg.ReducedMotion {
			if w.faded[key] {
				continue
			}
			w.faded[key] = true
			e.Target.Classes().Add(w.cfg.FadeClass)
			applied++
			continue
		}

		Restart(e.Target, v)
		applied++
	}
	return applied
}
