package animate

import "encoding/json"

// Manifest is the registry as shipped to the browser adapter.
type Manifest struct {
	Threshold float64         `json:"threshold"`
	FadeClass string          `json:"fadeClass"`
	Elements  []ManifestEntry `json:"elements"`
}

// ManifestEntry describes one animated element.
type ManifestEntry struct {
	ID      ElementID `json:"id"`
	Section string    `json:"section,omitempty"`
	Variant Variant   `json:"variant"`
}

// Manifest snapshots the registry with the watcher settings.
func (r *Registry) Manifest(cfg WatcherConfig) Manifest {
	m := Manifest{
		Threshold: cfg.Threshold,
		FadeClass: cfg.FadeClass,
		Elements:  make([]ManifestEntry, 0, len(r.order)),
	}
	for _, el := range r.Elements() {
		m.Elements = append(m.Elements, ManifestEntry{ID: el.ID, Section: el.Section, Variant: el.Variant})
	}
	return m
}

// JSON encodes the manifest. encoding/json escapes <, > and &, so the output
// is safe inside a script element.
func (m Manifest) JSON() ([]byte, error) {
	return json.Marshal(m)
}
