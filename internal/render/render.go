package render

import (
	"strings"

	"github.com/specialistvlad/formulagraph/internal/cellref"
	"github.com/specialistvlad/formulagraph/internal/expr"
)

// Options controls how nodes are rendered.
type Options struct {
	// QualifySheets prefixes cell addresses with their sheet. It is set for
	// workbooks with more than one sheet.
	QualifySheets bool
	// CommentMarker starts comment lines in the report, e.g. `#` or `//`.
	CommentMarker string
}

// Expression renders a node as it appears inside a formula.
func Expression(n *expr.Node, opts Options) string {
	var sb strings.Builder
	writeExpression(&sb, n, opts)
	return sb.String()
}

func writeExpression(sb *strings.Builder, n *expr.Node, opts Options) {
	if n == nil {
		sb.WriteString(missingText)
		return
	}

	switch n.Kind {
	case expr.KindLiteral, expr.KindError, expr.KindMissing, expr.KindRefError:
		sb.WriteString(Literal(n.Value))
	case expr.KindCell:
		sb.WriteString(cellText(n.Addr, opts))
	case expr.KindRange, expr.KindNamed:
		sb.WriteString(n.Range.Area.String())
	case expr.KindPrefixed:
		sb.WriteString(prefixedText(n))
	case expr.KindUnary:
		if n.Op == expr.OpPercent {
			writeExpression(sb, n.Left(), opts)
			sb.WriteString(string(n.Op))
			return
		}
		sb.WriteString(string(n.Op))
		writeExpression(sb, n.Left(), opts)
	case expr.KindBinary, expr.KindIntersection, expr.KindUnion:
		writeExpression(sb, n.Left(), opts)
		sb.WriteString(string(n.Op))
		writeExpression(sb, n.Right(), opts)
	case expr.KindParen:
		sb.WriteByte('(')
		writeExpression(sb, n.Left(), opts)
		sb.WriteByte(')')
	case expr.KindFunction:
		sb.WriteString(n.Function)
		sb.WriteByte('(')
		for i, arg := range n.Args {
			if i > 0 {
				sb.WriteByte(',')
			}
			writeExpression(sb, arg, opts)
		}
		sb.WriteByte(')')
	case expr.KindArray:
		sb.WriteString(Grid(n.Grid))
	case expr.KindOpaque:
		sb.WriteString(strings.TrimPrefix(strings.TrimSpace(n.Raw), "="))
	case expr.KindFormula:
		writeExpression(sb, n.Left(), opts)
	default:
		sb.WriteString(expr.UnknownErrorText)
	}
}

// Definition renders the right-hand side of a report line: the captured
// value for references and the expression for everything else.
func Definition(n *expr.Node, opts Options) string {
	switch n.Kind {
	case expr.KindCell:
		return Literal(n.Value)
	case expr.KindRange, expr.KindNamed:
		return Values(n.Range)
	case expr.KindPrefixed:
		if n.Range != nil {
			return Values(n.Range)
		}
		return Literal(n.Value)
	default:
		return Expression(n, opts)
	}
}

// Address renders the left-hand side of a report line. Areas are never
// sheet-qualified; named areas carry their NamedRange qualifier and prefixed
// references keep the prefix they were written with.
func Address(n *expr.Node, opts Options) string {
	switch n.Kind {
	case expr.KindRange:
		return n.Range.Area.String()
	case expr.KindNamed:
		return n.Range.Area.Qualified()
	case expr.KindPrefixed:
		return prefixedText(n)
	default:
		return cellText(n.Addr, opts)
	}
}

// Line renders one report entry: an optional comment line followed by
// `Address = Definition`.
func Line(n *expr.Node, opts Options) []string {
	var lines []string
	if n.Comment != "" {
		marker := opts.CommentMarker
		if marker == "" {
			marker = "#"
		}
		for _, c := range strings.Split(n.Comment, "\n") {
			lines = append(lines, strings.TrimRight(marker+" "+c, " "))
		}
	}
	return append(lines, Address(n, opts)+" = "+Definition(n, opts))
}

// Lines renders every node in order.
func Lines(nodes []*expr.Node, opts Options) []string {
	out := make([]string, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, Line(n, opts)...)
	}
	return out
}

func cellText(addr cellref.Address, opts Options) string {
	if opts.QualifySheets {
		return addr.Qualified()
	}
	return addr.String()
}

func prefixedText(n *expr.Node) string {
	qualifier := cellref.QuoteSheet(n.Prefix.Qualifier())
	if n.Range != nil {
		return qualifier + "!" + n.Range.Area.String()
	}
	return qualifier + "!" + n.Addr.String()
}
