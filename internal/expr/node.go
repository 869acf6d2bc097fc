package expr

import (
	"github.com/specialistvlad/formulagraph/internal/cellref"
)

// Kind discriminates the variants of Node.
type Kind int

const (
	KindLiteral Kind = iota
	KindCell
	KindRange
	KindNamed
	KindPrefixed
	KindUnary
	KindBinary
	KindParen
	KindFunction
	KindArray
	KindIntersection
	KindUnion
	KindError
	KindMissing
	KindRefError
	KindOpaque
	KindFormula
)

var kindNames = [...]string{
	KindLiteral:      "literal",
	KindCell:         "cell",
	KindRange:        "range",
	KindNamed:        "named",
	KindPrefixed:     "prefixed",
	KindUnary:        "unary",
	KindBinary:       "binary",
	KindParen:        "paren",
	KindFunction:     "function",
	KindArray:        "array",
	KindIntersection: "intersection",
	KindUnion:        "union",
	KindError:        "error",
	KindMissing:      "missing",
	KindRefError:     "ref_error",
	KindOpaque:       "opaque",
	KindFormula:      "formula",
}

func (k Kind) String() string {
	if int(k) >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Operator is the source symbol of a unary, binary or reference operator.
type Operator string

const (
	OpAdd          Operator = "+"
	OpSubtract     Operator = "-"
	OpMultiply     Operator = "*"
	OpDivide       Operator = "/"
	OpPower        Operator = "^"
	OpConcat       Operator = "&"
	OpEqual        Operator = "="
	OpLess         Operator = "<"
	OpGreater      Operator = ">"
	OpLessEqual    Operator = "<="
	OpGreaterEqual Operator = ">="
	OpNotEqual     Operator = "<>"
	OpPercent      Operator = "%"
	OpIntersect    Operator = " "
	OpUnion        Operator = ","
)

// Range is the captured content of an area: its bounds and the values of
// every covered cell in row-major order.
type Range struct {
	Area   cellref.Area
	Values []Literal
}

// Shape classifies the range for rendering.
func (r *Range) Shape() cellref.Shape { return r.Area.Shape() }

// Prefix qualifies a reference with a sheet, and optionally an external book.
type Prefix struct {
	Book  string
	Sheet string
}

// Qualifier returns the sheet name used for the prefixed location, folding
// the book in as `[book]sheet` for external references.
func (p Prefix) Qualifier() string {
	if p.Book == "" {
		return p.Sheet
	}
	return "[" + p.Book + "]" + p.Sheet
}

// Node is one vertex of a formula expression tree. Kind selects which of the
// payload fields are meaningful:
//
//	KindLiteral, KindError          Value
//	KindCell                        Value (snapshot of the referenced cell)
//	KindRange, KindNamed            Range
//	KindPrefixed                    Prefix, Value or Range
//	KindUnary, KindBinary           Op, Args
//	KindIntersection, KindUnion     Op, Args (two references)
//	KindParen, KindFormula          Args (one child)
//	KindFunction                    Function, Args
//	KindArray                       Grid
//	KindOpaque                      Raw
//
// Addr is the referenced location for reference kinds and the formula cell
// for every other non-terminal kind. Nodes are not mutated once the builder
// has pushed them.
type Node struct {
	Kind    Kind
	Addr    cellref.Address
	Comment string

	Value    Literal
	Range    *Range
	Prefix   *Prefix
	Op       Operator
	Args     []*Node
	Function string
	Grid     [][]Literal
	Raw      string
}

// IsTerminal reports whether the node is a constant with no dependencies.
// Terminals are inlined by the renderer and never enter the dependency graph.
func (n *Node) IsTerminal() bool {
	switch n.Kind {
	case KindLiteral, KindError, KindMissing, KindRefError, KindArray:
		return true
	default:
		return false
	}
}

// IsReference reports whether the node denotes a location in the workbook.
func (n *Node) IsReference() bool {
	switch n.Kind {
	case KindCell, KindRange, KindNamed, KindPrefixed:
		return true
	default:
		return false
	}
}

// IsArea reports whether the node is identified by bounds or name rather
// than by a single cell.
func (n *Node) IsArea() bool {
	return n.Range != nil && (n.Kind == KindRange || n.Kind == KindNamed || n.Kind == KindPrefixed)
}

// Identity returns the graph key of the node, or nil for terminals.
func (n *Node) Identity() cellref.Identity {
	if n == nil || n.IsTerminal() {
		return nil
	}
	if n.IsArea() {
		return n.Range.Area.Identity()
	}
	return n.Addr.Identity()
}

// Left returns the first operand of a binary-like node.
func (n *Node) Left() *Node {
	if len(n.Args) > 0 {
		return n.Args[0]
	}
	return nil
}

// Right returns the second operand of a binary-like node.
func (n *Node) Right() *Node {
	if len(n.Args) > 1 {
		return n.Args[1]
	}
	return nil
}
