// SPDX-License-Identifier: Apache-2.0
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/chloekek/librealgebra/internal/diagnostics"
	liberrors "github.com/chloekek/librealgebra/internal/errors"
	"github.com/chloekek/librealgebra/internal/parser"
	"github.com/chloekek/librealgebra/internal/simplify"
	"github.com/chloekek/librealgebra/internal/simplify/builtins"
	"github.com/chloekek/librealgebra/internal/term"
	"github.com/fatih/color"
	"github.com/tliron/commonlog"
)

const recursionLimit = 64

func main() {
	commonlog.Configure(1, nil)

	source, err := io.ReadAll(bufio.NewReader(os.Stdin))
	if err != nil {
		color.Red("failed to read stdin: %s", err)
		os.Exit(1)
	}

	symbols := term.NewInterner()
	t, err := parser.Parse(string(source), symbols)
	if err != nil {
		reportParseError(string(source), err)
		os.Exit(1)
	}

	constants := builtins.NewConstants(symbols)
	registry := builtins.NewRegistry(constants)
	session := simplify.NewSession()
	session.Define(constants.Pi, constants.Pi)
	session.Define(constants.E, constants.E)

	warner := diagnostics.NewScopeWarner("librealgebra")
	ctx := simplify.NewContext(symbols, registry, session, recursionLimit, warner)

	simplified := simplify.Simplify(ctx, t)

	color.Green("✅ %s", term.DebugString(simplified))
}

// reportParseError prints a caret-style parse error message through
// internal/errors, the same structured reporter an embedder uses to turn
// the core's opaque ParseError into display output.
func reportParseError(src string, err error) {
	pe, ok := err.(*parser.ParseError)
	if !ok {
		color.Red("unexpected error: %s", err)
		return
	}

	reporter := liberrors.NewErrorReporter("stdin", src)
	fmt.Print(reporter.FormatError(liberrors.CompilerError{
		Level:    liberrors.Error,
		Message:  pe.Message,
		Position: pe.Position,
		Length:   1,
	}))
}
