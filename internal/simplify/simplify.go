package simplify

import "github.com/chloekek/librealgebra/internal/term"

// Simplify is the simplifier's single public operation: rewrite t as far as
// the context's built-in registry and session allow, bounded by its
// recursion budget.
func Simplify(ctx *Context, t term.Term) term.Term {
	if ctx.budget == 0 {
		ctx.Warner.RecursionLimitReached()
		return t
	}
	switch v := term.View(t).(type) {
	case term.ApplicationView:
		return simplifyApplication(ctx, t, v)
	case term.SymbolView:
		return simplifySymbol(ctx, v.Symbol)
	default:
		// Variable, Integer, Lambda, String: return unchanged.
		return t
	}
}

// Recurse decrements the budget for the duration of the call and restores
// it on every exit path, including a panic (the cancellation signal a host
// may raise through a future cooperative stop flag unwinds the same way).
// Built-in handlers call this, not Simplify directly, so that their own
// descent into operands is bounded by the same budget.
func Recurse(ctx *Context, t term.Term) term.Term {
	ctx.budget--
	defer func() { ctx.budget++ }()
	return Simplify(ctx, t)
}

func simplifyApplication(ctx *Context, original term.Term, view term.ApplicationView) term.Term {
	newFunction := Recurse(ctx, view.Function)

	if sym, ok := newFunction.(*term.Symbol); ok {
		if handler, found := ctx.Builtins.Lookup(sym); found {
			if result, rewrote := handler(ctx, view.Arguments); rewrote {
				return result
			}
		}
	}

	if term.PtrEq(newFunction, view.Function) {
		return original
	}
	rebuilt, err := term.NewApplication(newFunction, view.Arguments)
	if err != nil {
		ctx.Warner.MalformedInput("application", err.Error())
		return original
	}
	return rebuilt
}

func simplifySymbol(ctx *Context, sym *term.Symbol) term.Term {
	def, defined := ctx.Session.Definitions[sym]
	if !defined {
		return sym
	}
	if term.EqSymbol(def, sym) {
		// Reserved symbol: s := s. Returning unchanged without recursing
		// avoids infinite loops on constants like Pi and E.
		return sym
	}
	return Recurse(ctx, def)
}
