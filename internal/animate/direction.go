package animate

import (
	"errors"
	"fmt"
)

// DefaultSectionOrder is the order in which sections alternate directions.
// Sections outside it (hero, themes, cta) keep their markup variants.
var DefaultSectionOrder = []string{"about", "events", "sponsors", "rules", "timeline", "closing"}

// ErrPinnedInOrder means a pinned element was registered in a section the
// assigner overwrites.
var ErrPinnedInOrder = errors.New("pinned element in ordered section")

// Assignment records the variant stamped onto one section.
type Assignment struct {
	Section  string
	Index    int
	Variant  Variant
	Elements int
}

// AssignDirections stamps every element of each section in order with
// Direction(index). Sections without registered elements are skipped.
// Running it again yields the same result.
func AssignDirections(r *Registry, order []string) []Assignment {
	var out []Assignment
	for i, section := range order {
		if !r.HasSection(section) {
			continue
		}

		v := Direction(i)
		elements := r.Section(section)
		for _, el := range elements {
			el.Variant = v
		}
		out = append(out, Assignment{Section: section, Index: i, Variant: v, Elements: len(elements)})
	}
	return out
}

// CheckPinned reports pinned elements that live in one of the ordered
// sections, where AssignDirections would overwrite them.
func CheckPinned(r *Registry, order []string) error {
	var errs []error
	for _, section := range order {
		for _, el := range r.Section(section) {
			if el.Pinned {
				errs = append(errs, fmt.Errorf("%w: %s in %s", ErrPinnedInOrder, el.ID, section))
			}
		}
	}
	return errors.Join(errs...)
}
