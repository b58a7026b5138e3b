package builtins

import (
	"github.com/chloekek/librealgebra/internal/simplify"
	"github.com/chloekek/librealgebra/internal/term"
)

func sinHandler(c *Constants) simplify.Handler {
	return func(ctx *simplify.Context, args []term.Term) (term.Term, bool) {
		if len(args) != 1 {
			ctx.Warner.ArityMismatch("Sin", 1, len(args))
			return nil, false
		}
		operand := args[0]
		simplified := simplify.Recurse(ctx, operand)

		if term.EqInteger(simplified, 0) || term.EqSymbol(simplified, c.Pi) {
			return c.Zero, true
		}

		if term.PtrEq(simplified, operand) {
			return nil, false
		}
		rebuilt, err := term.NewApplication(c.Sin, []term.Term{simplified})
		if err != nil {
			ctx.Warner.MalformedInput("Sin", err.Error())
			return nil, false
		}
		return rebuilt, true
	}
}
