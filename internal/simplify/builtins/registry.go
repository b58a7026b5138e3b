package builtins

import (
	"github.com/chloekek/librealgebra/internal/simplify"
	"github.com/chloekek/librealgebra/internal/term"
)

// Registry dispatches on symbol identity, exactly as the constants table
// interned them; it never compares names.
type Registry struct {
	handlers map[*term.Symbol]simplify.Handler
}

// NewRegistry builds a registry with the Cos, Sin, and Derivative handlers
// wired against constants.
func NewRegistry(constants *Constants) *Registry {
	r := &Registry{handlers: make(map[*term.Symbol]simplify.Handler, 3)}
	r.handlers[constants.Cos] = cosHandler(constants)
	r.handlers[constants.Sin] = sinHandler(constants)
	r.handlers[constants.Derivative] = derivativeHandler(constants)
	return r
}

// Lookup implements simplify.Builtins.
func (r *Registry) Lookup(s *term.Symbol) (simplify.Handler, bool) {
	h, ok := r.handlers[s]
	return h, ok
}
