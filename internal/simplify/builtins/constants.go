// Package builtins provides the Cos, Sin, and Derivative handlers and the
// constants table they share.
package builtins

import "github.com/chloekek/librealgebra/internal/term"

// Constants holds the canonical pre-interned symbols and pre-constructed
// terms the built-in handlers rely on, allocated once and shared. It folds
// together what the original design kept as two parallel tables (symbol
// names and constructed constant terms): in Go, one struct of named fields
// serves both roles without needing a code generator to keep them in sync.
type Constants struct {
	Derivative *term.Symbol
	Cos        *term.Symbol
	Sin        *term.Symbol
	Add        *term.Symbol
	Multiply   *term.Symbol
	Pi         *term.Symbol
	E          *term.Symbol

	Zero   term.Term
	One    term.Term
	NegOne term.Term

	// CosDerivative is the canonical lambda |x| Multiply(-1, Sin(x)),
	// returned whenever Derivative is applied to the Cos symbol itself.
	CosDerivative term.Term
}

// NewConstants interns the built-in symbols and builds the constant terms
// against symbols.
func NewConstants(symbols *term.Interner) *Constants {
	c := &Constants{
		Derivative: symbols.Get([]byte("Derivative")),
		Cos:        symbols.Get([]byte("Cos")),
		Sin:        symbols.Get([]byte("Sin")),
		Add:        symbols.Get([]byte("Add")),
		Multiply:   symbols.Get([]byte("Multiply")),
		Pi:         symbols.Get([]byte("Pi")),
		E:          symbols.Get([]byte("E")),
	}
	c.Zero = term.NewInteger(0)
	c.One = term.NewInteger(1)
	c.NegOne = term.NewInteger(-1)

	x := symbols.Get([]byte("x"))
	xVar := term.NewVariable(0)
	sinX, err := term.NewApplication(c.Sin, []term.Term{xVar})
	if err != nil {
		panic(err)
	}
	negOneSinX, err := term.NewApplication(c.Multiply, []term.Term{c.NegOne, sinX})
	if err != nil {
		panic(err)
	}
	c.CosDerivative = term.NewLambda([]term.Parameter{{Strictness: term.Strict, Name: x}}, negOneSinX)

	return c
}
