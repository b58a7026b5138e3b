package term

import (
	"fmt"
	"strings"
)

// DebugString renders t as a structural, unambiguous string for
// diagnostics: one node name per kind, with byte strings ASCII-escaped.
// It is not meant to round-trip through the parser.
func DebugString(t Term) string {
	var sb strings.Builder
	writeDebug(&sb, t)
	return sb.String()
}

func writeDebug(sb *strings.Builder, t Term) {
	switch v := View(t).(type) {
	case ApplicationView:
		sb.WriteString("Application(")
		writeDebug(sb, v.Function)
		for _, a := range v.Arguments {
			sb.WriteString(", ")
			writeDebug(sb, a)
		}
		sb.WriteString(")")
	case IntegerView:
		fmt.Fprintf(sb, "Integer(%d)", v.Value)
	case LambdaView:
		sb.WriteString("Lambda([")
		for i, p := range v.Parameters {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(p.Strictness.String())
			sb.Write(p.Name.Name())
		}
		sb.WriteString("], ")
		writeDebug(sb, v.Body)
		sb.WriteString(")")
	case StringView:
		sb.WriteString(`String("`)
		writeEscaped(sb, v.Value)
		sb.WriteString(`")`)
	case SymbolView:
		sb.WriteString(`Symbol("`)
		writeEscaped(sb, v.Symbol.Name())
		sb.WriteString(`")`)
	case VariableView:
		fmt.Fprintf(sb, "Variable(%d)", v.Index)
	}
}

func writeEscaped(sb *strings.Builder, bs []byte) {
	for _, b := range bs {
		switch {
		case b == '"' || b == '\\':
			sb.WriteByte('\\')
			sb.WriteByte(b)
		case b < 0x20 || b >= 0x7f:
			fmt.Fprintf(sb, "\\x%02x", b)
		default:
			sb.WriteByte(b)
		}
	}
}
