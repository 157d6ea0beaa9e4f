package animate

import "slices"

// ClassList is the mutable class set of a rendered element.
type ClassList interface {
	Contains(class string) bool
	Add(class string)
	Remove(class string)
}

// Target is an element the Watcher can animate.
type Target interface {
	Key() ElementID

	// Animation returns the element's current animation identifier, read at
	// crossing time. ok is false when the element carries none.
	Animation() (v Variant, ok bool)

	Classes() ClassList

	// Commit flushes pending class changes so that a class added afterwards
	// counts as a fresh change and restarts its animation.
	Commit()
}

// Restart replays v on t: the class is removed, the change committed, and the
// class added again. Adding a class that is already present would otherwise
// leave a finished animation untouched.
func Restart(t Target, v Variant) {
	cls := t.Classes()
	cls.Remove(string(v))
	t.Commit()
	cls.Add(string(v))
}

// Op is a class list mutation kind.
type Op string

const (
	OpAdd    Op = "add"
	OpRemove Op = "remove"
	OpCommit Op = "commit"
)

// Mutation is one recorded change to a ClassSet.
type Mutation struct {
	Op    Op
	Class string
}

// ClassSet is an in-memory ClassList that records every mutation, so replays
// can be observed as remove/commit/add churn.
type ClassSet struct {
	classes []string
	history []Mutation
}

// NewClassSet creates a set holding classes.
func NewClassSet(classes ...string) *ClassSet {
	s := &ClassSet{}
	for _, c := range classes {
		if !s.Contains(c) {
			s.classes = append(s.classes, c)
		}
	}
	return s
}

func (s *ClassSet) Contains(class string) bool {
	return slices.Contains(s.classes, class)
}

func (s *ClassSet) Add(class string) {
	s.history = append(s.history, Mutation{Op: OpAdd, Class: class})
	if !s.Contains(class) {
		s.classes = append(s.classes, class)
	}
}

func (s *ClassSet) Remove(class string) {
	s.history = append(s.history, Mutation{Op: OpRemove, Class: class})
	s.classes = slices.DeleteFunc(s.classes, func(c string) bool { return c == class })
}

// List returns the current classes in insertion order.
func (s *ClassSet) List() []string {
	return slices.Clone(s.classes)
}

// History returns every recorded mutation, oldest first.
func (s *ClassSet) History() []Mutation {
	return slices.Clone(s.history)
}

// Node is a Target backed by a registry Element. The animation identifier
// is read from the element on every crossing, so variants stamped after the
// node was created are honoured.
type Node struct {
	el      *Element
	classes *ClassSet
}

// NewNode wraps el with an empty class set.
func NewNode(el *Element, classes ...string) *Node {
	return &Node{el: el, classes: NewClassSet(classes...)}
}

// NodesFor wraps every element of r.
func NodesFor(r *Registry) []*Node {
	els := r.Elements()
	out := make([]*Node, 0, len(els))
	for _, el := range els {
		out = append(out, NewNode(el))
	}
	return out
}

func (n *Node) Key() ElementID { return n.el.ID }

func (n *Node) Animation() (Variant, bool) {
	if !n.el.HasAnimation() {
		return "", false
	}
	return n.el.Variant, true
}

func (n *Node) Classes() ClassList { return n.classes }

// ClassSet exposes the recorded class state.
func (n *Node) ClassSet() *ClassSet { return n.classes }

func (n *Node) Commit() {
	n.classes.history = append(n.classes.history, Mutation{Op: OpCommit})
}
