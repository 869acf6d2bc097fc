// Package render turns expression trees back into text.
//
// A report line has the shape `Address = Definition`. For formula nodes the
// definition is the expression as written; for reference nodes it is the
// value captured when the tree was built, so every operand a formula needs
// appears in the report as a plain assignment ahead of the formula itself.
//
// Parentheses are only emitted where the source had them (a KindParen node).
// The renderer never adds its own precedence-based grouping.
package render
