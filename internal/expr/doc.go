// Package expr defines the expression tree built from a formula's postfix
// token stream: a single Node type tagged by Kind, and the Literal values
// captured from tokens and cells.
package expr
