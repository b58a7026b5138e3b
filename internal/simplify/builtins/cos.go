package builtins

import (
	"github.com/chloekek/librealgebra/internal/simplify"
	"github.com/chloekek/librealgebra/internal/term"
)

func cosHandler(c *Constants) simplify.Handler {
	return func(ctx *simplify.Context, args []term.Term) (term.Term, bool) {
		if len(args) != 1 {
			ctx.Warner.ArityMismatch("Cos", 1, len(args))
			return nil, false
		}
		operand := args[0]
		simplified := simplify.Recurse(ctx, operand)

		switch {
		case term.EqInteger(simplified, 0):
			return c.One, true
		case term.EqSymbol(simplified, c.Pi):
			return c.NegOne, true
		}

		if term.PtrEq(simplified, operand) {
			return nil, false
		}
		rebuilt, err := term.NewApplication(c.Cos, []term.Term{simplified})
		if err != nil {
			ctx.Warner.MalformedInput("Cos", err.Error())
			return nil, false
		}
		return rebuilt, true
	}
}
