package parser

import "github.com/chloekek/librealgebra/internal/term"

// scope is one lexically nested frame of a lambda's parameter list, linked
// to its enclosing frame. Resolving a name walks outward from the
// innermost frame, accumulating the number of binders crossed so far.
type scope struct {
	parent    *scope
	variables map[string]term.DeBruijn
	size      uint32
}

// newScope returns the empty top-level scope: no bound names, no parent.
func newScope() *scope {
	return &scope{variables: make(map[string]term.DeBruijn)}
}

// push opens a new frame binding names, with s as the enclosing frame. The
// leftmost name gets the highest index in the frame and the rightmost gets
// index 0, so that within the body the most recently written parameter is
// nearest (index 0), matching how a lambda's last parameter binds tightest.
func (s *scope) push(names []string) *scope {
	n := len(names)
	child := &scope{parent: s, variables: make(map[string]term.DeBruijn, n), size: uint32(n)}
	for i, name := range names {
		child.variables[name] = term.DeBruijn(n - 1 - i)
	}
	return child
}

// get resolves name to a De Bruijn index relative to this scope, or reports
// that it is unbound. It is iterative, not recursive: each missed frame
// adds its own binder count to the running shift before moving to the
// parent.
func (s *scope) get(name string) (term.DeBruijn, bool) {
	shift := uint32(0)
	for cur := s; cur != nil; cur = cur.parent {
		if index, ok := cur.variables[name]; ok {
			return index.Shifted(shift), true
		}
		shift += cur.size
	}
	return 0, false
}
