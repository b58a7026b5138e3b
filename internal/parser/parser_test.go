package parser

import (
	"testing"

	"github.com/chloekek/librealgebra/internal/term"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, source string) (term.Term, *term.Interner) {
	t.Helper()
	symbols := term.NewInterner()
	got, err := Parse(source, symbols)
	require.NoError(t, err)
	return got, symbols
}

func TestParseIdentifierIsSymbolWhenUnbound(t *testing.T) {
	got, symbols := parse(t, "Pi")
	assert.True(t, term.EqSymbol(got, symbols.Get([]byte("Pi"))))
}

func TestParseLambdaBindsParameterAsVariable(t *testing.T) {
	got, _ := parse(t, "|x| x")
	view := term.View(got).(term.LambdaView)
	require.Len(t, view.Parameters, 1)
	assert.True(t, term.EqVariable(view.Body, 0))
}

func TestParseLambdaNestedScopesShiftOuterIndex(t *testing.T) {
	got, _ := parse(t, "|x| |y| x")
	outer := term.View(got).(term.LambdaView)
	inner := term.View(outer.Body).(term.LambdaView)
	assert.True(t, term.EqVariable(inner.Body, 1))
}

func TestParseTwoParameterLambdaLeftmostGetsHighestIndex(t *testing.T) {
	gotX, _ := parse(t, "|x, y| x")
	viewX := term.View(gotX).(term.LambdaView)
	assert.True(t, term.EqVariable(viewX.Body, 1))

	gotY, _ := parse(t, "|x, y| y")
	viewY := term.View(gotY).(term.LambdaView)
	assert.True(t, term.EqVariable(viewY.Body, 0))
}

func TestParseLambdaStrictnessDefaultsToStrict(t *testing.T) {
	got, _ := parse(t, "|x, ~y| x")
	view := term.View(got).(term.LambdaView)
	require.Len(t, view.Parameters, 2)
	assert.Equal(t, term.Strict, view.Parameters[0].Strictness)
	assert.Equal(t, term.NonStrict, view.Parameters[1].Strictness)
}

func TestParseZeroParameterLambda(t *testing.T) {
	got, _ := parse(t, "|| 1")
	view := term.View(got).(term.LambdaView)
	assert.Empty(t, view.Parameters)
	assert.True(t, term.EqInteger(view.Body, 1))
}

func TestParseApplicationChainsLeftAssociatively(t *testing.T) {
	got, symbols := parse(t, "f(1)(2)")
	outer := term.View(got).(term.ApplicationView)
	require.Len(t, outer.Arguments, 1)
	assert.True(t, term.EqInteger(outer.Arguments[0], 2))

	inner := term.View(outer.Function).(term.ApplicationView)
	require.Len(t, inner.Arguments, 1)
	assert.True(t, term.EqInteger(inner.Arguments[0], 1))
	assert.True(t, term.EqSymbol(inner.Function, symbols.Get([]byte("f"))))
}

func TestParseTrailingCommaInArgList(t *testing.T) {
	got, _ := parse(t, "f(1, 2,)")
	view := term.View(got).(term.ApplicationView)
	assert.Len(t, view.Arguments, 2)
}

func TestParseTrailingCommaInParams(t *testing.T) {
	got, _ := parse(t, "|x, y,| x")
	view := term.View(got).(term.LambdaView)
	assert.Len(t, view.Parameters, 2)
}

func TestParseParenthesizedTerm(t *testing.T) {
	got, _ := parse(t, "(1)")
	assert.True(t, term.EqInteger(got, 1))
}

func TestParseStringLiteral(t *testing.T) {
	got, _ := parse(t, `"hello"`)
	view := term.View(got).(term.StringView)
	assert.Equal(t, []byte("hello"), view.Value)
}

func TestParseUnexpectedTrailingInputIsAnError(t *testing.T) {
	symbols := term.NewInterner()
	_, err := Parse("1 2", symbols)
	require.Error(t, err)
}

func TestParseUnclosedParenIsAnError(t *testing.T) {
	symbols := term.NewInterner()
	_, err := Parse("f(1", symbols)
	require.Error(t, err)
}

func TestParseMalformedConstructIsAnError(t *testing.T) {
	symbols := term.NewInterner()
	_, err := Parse("|x| ", symbols)
	require.Error(t, err)
}

func TestParseIdenticalIdentifiersInternToSameSymbol(t *testing.T) {
	symbols := term.NewInterner()
	a, err := Parse("Pi", symbols)
	require.NoError(t, err)
	b, err := Parse("Pi", symbols)
	require.NoError(t, err)
	assert.True(t, term.PtrEq(a, b))
}
