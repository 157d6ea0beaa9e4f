// Package animate models the page's scroll-triggered entrance animations.
//
// Animated elements are registered explicitly in a Registry while the page is
// built. AssignDirections stamps alternating slide directions per section,
// and a Watcher replays each element's animation whenever it crosses into the
// viewport. The registry is shipped to the browser as a Manifest so the
// client adapter never has to discover elements by querying the document.
package animate

import "fmt"

// Variant is the name of an entrance animation. It doubles as the CSS class
// that runs it.
type Variant string

const (
	FadeIn     Variant = "animate-fade-in"
	SlideLeft  Variant = "animate-slide-left"
	SlideRight Variant = "animate-slide-right"
	SlideUp    Variant = "animate-slide-up"
	Reveal     Variant = "animate-reveal"
)

var variants = []Variant{FadeIn, SlideLeft, SlideRight, SlideUp, Reveal}

// Variants returns every known variant.
func Variants() []Variant {
	out := make([]Variant, len(variants))
	copy(out, variants)
	return out
}

// Valid reports whether v is one of the known variants.
func (v Variant) Valid() bool {
	for _, known := range variants {
		if v == known {
			return true
		}
	}
	return false
}

// ParseVariant converts s into a Variant.
func ParseVariant(s string) (Variant, error) {
	v := Variant(s)
	if !v.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownVariant, s)
	}
	return v, nil
}

func (v Variant) String() string { return string(v) }

// Direction returns the slide variant for the section at index in the
// section order: even indexes slide in from the left, odd from the right.
func Direction(index int) Variant {
	if index%2 == 0 {
		return SlideLeft
	}
	return SlideRight
}
