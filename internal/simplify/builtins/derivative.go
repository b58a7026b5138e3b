package builtins

import (
	"github.com/chloekek/librealgebra/internal/simplify"
	"github.com/chloekek/librealgebra/internal/term"
)

func derivativeHandler(c *Constants) simplify.Handler {
	return func(ctx *simplify.Context, args []term.Term) (term.Term, bool) {
		if len(args) != 1 {
			ctx.Warner.ArityMismatch("Derivative", 1, len(args))
			return nil, false
		}
		f := args[0]
		simplifiedF := simplify.Recurse(ctx, f)

		if derived, ok := functionDerivative(ctx, c, simplifiedF); ok {
			return derived, true
		}

		if term.PtrEq(simplifiedF, f) {
			return nil, false
		}
		rebuilt, err := term.NewApplication(c.Derivative, []term.Term{simplifiedF})
		if err != nil {
			ctx.Warner.MalformedInput("Derivative", err.Error())
			return nil, false
		}
		return rebuilt, true
	}
}

// functionDerivative computes d/dx of the function f names, independent of
// any particular argument it might later be applied to.
func functionDerivative(ctx *simplify.Context, c *Constants, f term.Term) (term.Term, bool) {
	if term.EqSymbol(f, c.Sin) {
		return c.Cos, true
	}
	if term.EqSymbol(f, c.Cos) {
		return c.CosDerivative, true
	}
	if lam, ok := term.View(f).(term.LambdaView); ok {
		if len(lam.Parameters) != 1 {
			// Multi-parameter lambdas are not handled.
			return nil, false
		}
		derivedBody, ok := termDerivative(ctx, c, lam.Body, 0)
		if !ok {
			return nil, false
		}
		return term.NewLambda(lam.Parameters, derivedBody), true
	}
	return nil, false
}

// termDerivative computes d/d(Variable p) of t, using the cache to answer
// "definitely constant in p" without a full traversal.
func termDerivative(ctx *simplify.Context, c *Constants, t term.Term, p term.DeBruijn) (term.Term, bool) {
	if present, known := t.Header().DeBruijnCache().Contains(p); known && !present {
		return c.Zero, true
	}
	if term.EqVariable(t, p) {
		return c.One, true
	}
	if app, ok := term.View(t).(term.ApplicationView); ok {
		if sym, ok := app.Function.(*term.Symbol); ok && sym == c.Add {
			return sumRuleDerivative(ctx, c, app.Arguments, p)
		}
	}
	return nil, false
}

// sumRuleDerivative differentiates Add(t1, ..., tn) by dropping operands
// known constant in p and differentiating the rest.
func sumRuleDerivative(ctx *simplify.Context, c *Constants, operands []term.Term, p term.DeBruijn) (term.Term, bool) {
	var derivatives []term.Term
	for _, ti := range operands {
		if present, known := ti.Header().DeBruijnCache().Contains(p); known && !present {
			continue
		}
		d, ok := termDerivative(ctx, c, ti, p)
		if !ok {
			return nil, false
		}
		derivatives = append(derivatives, d)
	}
	built := makeAdd(c, derivatives)
	return simplify.Recurse(ctx, built), true
}

// makeAdd folds a list of derivative terms into their sum, or the identity
// when there are zero or one of them.
func makeAdd(c *Constants, ts []term.Term) term.Term {
	switch len(ts) {
	case 0:
		return c.Zero
	case 1:
		return ts[0]
	default:
		app, err := term.NewApplication(c.Add, ts)
		if err != nil {
			panic(err)
		}
		return app
	}
}
