// Package simplify implements bounded-recursion term rewriting: the core
// simplify/recurse loop, session-backed symbol lookup, and dispatch into
// the built-in registry.
package simplify

import (
	"github.com/chloekek/librealgebra/internal/diagnostics"
	"github.com/chloekek/librealgebra/internal/term"
)

// Session is the mutable mapping from symbol to term recording global
// definitions made with `:=` in surface syntax. The core treats it as an
// opaque lookup table; the operator itself lives outside the core.
type Session struct {
	Definitions map[*term.Symbol]term.Term
}

// NewSession returns an empty session.
func NewSession() *Session {
	return &Session{Definitions: make(map[*term.Symbol]term.Term)}
}

// Define records s := t. A definition of the form s := s marks s as a
// reserved symbol (see Symbol dispatch in simplify.go).
func (s *Session) Define(sym *term.Symbol, t term.Term) {
	s.Definitions[sym] = t
}

// Builtins looks up the handler registered for a symbol, if any.
type Builtins interface {
	Lookup(s *term.Symbol) (Handler, bool)
}

// Handler implements one built-in. It receives the context and the
// application's un-simplified arguments; handlers decide for themselves how
// (and whether) to recurse into each operand. Returning (nil, false) means
// "no rewrite possible" and the caller falls back to an identity rebuild.
type Handler func(ctx *Context, args []term.Term) (term.Term, bool)

// Context bundles, by reference, all the state a simplification threads
// through: the recursion budget, the interner, the built-in registry, the
// session, and a warning sink.
type Context struct {
	Symbols  *term.Interner
	Builtins Builtins
	Session  *Session
	Warner   diagnostics.Warner

	budget int
}

// NewContext creates a context with the given recursion budget. A nil
// warner defaults to diagnostics.NopWarner.
func NewContext(symbols *term.Interner, builtins Builtins, session *Session, recursionLimit int, warner diagnostics.Warner) *Context {
	if warner == nil {
		warner = diagnostics.NopWarner{}
	}
	return &Context{
		Symbols:  symbols,
		Builtins: builtins,
		Session:  session,
		Warner:   warner,
		budget:   recursionLimit,
	}
}
