package animate

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownVariant = errors.New("unknown animation variant")
	ErrDuplicateID    = errors.New("duplicate animated element id")
)

// ElementID identifies an animated element within one page build.
type ElementID string

// Element is the animation configuration of one renderable element.
type Element struct {
	ID      ElementID
	Section string
	Variant Variant

	// Pinned elements keep the variant given at markup time. They must live
	// outside the ordered sections; see CheckPinned.
	Pinned bool
}

// HasAnimation reports whether the element carries an animation identifier.
func (e *Element) HasAnimation() bool {
	return e != nil && e.Variant != ""
}

// Option customises an element at registration.
type Option func(*Element)

// Pinned marks the element as keeping its markup variant.
func Pinned() Option {
	return func(e *Element) { e.Pinned = true }
}

// WithID overrides the generated element id.
func WithID(id string) Option {
	return func(e *Element) { e.ID = ElementID(id) }
}

// Registry maps element handles to their animation configuration, in
// registration order. A Registry belongs to a single page build and is not
// safe for concurrent mutation.
type Registry struct {
	order    []ElementID
	elements map[ElementID]*Element
	counters map[string]int
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		elements: make(map[ElementID]*Element),
		counters: make(map[string]int),
	}
}

// Register adds an element owned by section with its markup variant and
// returns the handle. Ids are generated as "<section>-<n>" unless WithID is
// given. Register panics on an unknown variant or a duplicate id: both are
// programming errors in the page markup.
func (r *Registry) Register(section string, v Variant, opts ...Option) *Element {
	el, err := r.TryRegister(section, v, opts...)
	if err != nil {
		panic(err)
	}
	return el
}

// TryRegister is Register returning errors instead of panicking.
func (r *Registry) TryRegister(section string, v Variant, opts ...Option) (*Element, error) {
	if !v.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVariant, v)
	}

	el := &Element{Section: section, Variant: v}
	for _, opt := range opts {
		opt(el)
	}
	if el.ID == "" {
		el.ID = r.nextID(section)
	}
	if _, exists := r.elements[el.ID]; exists {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateID, el.ID)
	}

	r.order = append(r.order, el.ID)
	r.elements[el.ID] = el
	return el, nil
}

func (r *Registry) nextID(section string) ElementID {
	prefix := section
	if prefix == "" {
		prefix = "page"
	}
	for {
		r.counters[prefix]++
		id := ElementID(fmt.Sprintf("%s-%d", prefix, r.counters[prefix]))
		if _, taken := r.elements[id]; !taken {
			return id
		}
	}
}

// Lookup returns the element registered under id.
func (r *Registry) Lookup(id ElementID) (*Element, bool) {
	el, ok := r.elements[id]
	return el, ok
}

// Len returns the number of registered elements.
func (r *Registry) Len() int {
	return len(r.order)
}

// Elements returns all elements in registration order.
func (r *Registry) Elements() []*Element {
	out := make([]*Element, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.elements[id])
	}
	return out
}

// Section returns the elements owned by section in registration order.
func (r *Registry) Section(section string) []*Element {
	var out []*Element
	for _, id := range r.order {
		if el := r.elements[id]; el.Section == section {
			out = append(out, el)
		}
	}
	return out
}

// HasSection reports whether any element belongs to section.
func (r *Registry) HasSection(section string) bool {
	for _, el := range r.elements {
		if el.Section == section {
			return true
		}
	}
	return false
}
