package expr

import "github.com/specialistvlad/formulagraph/internal/cellref"

// NewLiteral wraps a constant.
func NewLiteral(v Literal) *Node {
	return &Node{Kind: KindLiteral, Value: v}
}

// NewMissing returns the placeholder for an omitted function argument.
func NewMissing() *Node {
	return &Node{Kind: KindMissing, Value: MissingValue()}
}

// NewError returns a placeholder node standing for a token that could not be
// turned into a real operand.
func NewError(code ErrorCode) *Node {
	return &Node{Kind: KindError, Value: ErrorValue(code)}
}

// NewRefError returns the node for a reference the workbook itself marks as
// invalid.
func NewRefError() *Node {
	return &Node{Kind: KindRefError, Value: RefErrorValue()}
}

// NewCell returns a reference to a single cell with its captured value.
func NewCell(addr cellref.Address, v Literal) *Node {
	return &Node{Kind: KindCell, Addr: addr, Value: v}
}

// NewRange returns a reference to an area with its captured values.
func NewRange(area cellref.Area, values []Literal) *Node {
	return &Node{Kind: KindRange, Addr: area.First, Range: &Range{Area: area, Values: values}}
}

// NewNamed returns a reference to a named area with its captured values.
func NewNamed(area cellref.Area, values []Literal) *Node {
	return &Node{Kind: KindNamed, Addr: area.First, Range: &Range{Area: area, Values: values}}
}

// NewPrefixedCell returns a sheet-qualified (or external) single cell reference.
func NewPrefixedCell(p Prefix, addr cellref.Address, v Literal) *Node {
	return &Node{Kind: KindPrefixed, Prefix: &p, Addr: addr, Value: v}
}

// NewPrefixedRange returns a sheet-qualified (or external) area reference.
func NewPrefixedRange(p Prefix, area cellref.Area, values []Literal) *Node {
	return &Node{Kind: KindPrefixed, Prefix: &p, Addr: area.First, Range: &Range{Area: area, Values: values}}
}

// NewUnary returns a prefix (`-x`, `+x`) or postfix (`x%`) operator node.
func NewUnary(op Operator, operand *Node) *Node {
	return &Node{Kind: KindUnary, Op: op, Args: []*Node{operand}}
}

// NewBinary returns an infix operator node. Operands are kept in source order.
func NewBinary(op Operator, left, right *Node) *Node {
	return &Node{Kind: KindBinary, Op: op, Args: []*Node{left, right}}
}

// NewIntersection returns the space operator over two references.
func NewIntersection(left, right *Node) *Node {
	return &Node{Kind: KindIntersection, Op: OpIntersect, Args: []*Node{left, right}}
}

// NewUnion returns the comma operator over two references.
func NewUnion(left, right *Node) *Node {
	return &Node{Kind: KindUnion, Op: OpUnion, Args: []*Node{left, right}}
}

// NewParen records parentheses present in the source formula.
func NewParen(inner *Node) *Node {
	return &Node{Kind: KindParen, Args: []*Node{inner}}
}

// NewFunction returns a call node. Every slot of args must be non-nil;
// absent arguments are NewMissing nodes.
func NewFunction(name string, args []*Node) *Node {
	return &Node{Kind: KindFunction, Function: name, Args: args}
}

// NewArray returns an inline array constant.
func NewArray(grid [][]Literal) *Node {
	return &Node{Kind: KindArray, Grid: grid}
}

// NewOpaque wraps formula text that could not be turned into a tree.
func NewOpaque(raw string) *Node {
	return &Node{Kind: KindOpaque, Raw: raw}
}

// NewFormula wraps a bare operand that makes up a whole formula (`=A1`,
// `=5`) so the formula cell still owns a node.
func NewFormula(operand *Node) *Node {
	return &Node{Kind: KindFormula, Args: []*Node{operand}}
}
