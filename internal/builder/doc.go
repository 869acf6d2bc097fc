// Package builder turns the postfix token stream of one formula cell into an
// expression tree.
//
// # How It Works
//
// A Builder runs a stack machine over the tokens of a single formula:
//  1. **Terminals:** constants, references and array literals push a fresh
//     node. References capture the values of the cells they cover at build
//     time through a workbook.ValueAccessor.
//  2. **Operators:** binary operators pop the right operand, then the left,
//     and push the combined node. Unary operators, percent and parentheses
//     pop one operand.
//  3. **Calls:** function tokens resolve their arity through the functions
//     registry and pop that many operands. Absent operands become Missing
//     nodes so argument positions stay stable.
//  4. **Root:** the single node left on the stack is the formula. A bare
//     operand is wrapped in a Formula node so the formula cell always owns a
//     node of its own.
//
// Every composite node is addressed at the formula cell and handed to the
// Registrar once the formula is built, which is how the dependency graph is
// filled while trees are built.
//
// # State
//
// All per-formula state (the operand stack, the cell being built, the
// diagnostics collected so far) lives in a value created by Build. A Builder
// holds only its collaborators and can be reused across formulas.
//
// # Recovery
//
// Malformed input never aborts a formula outright. Unknown or deleted tokens
// push a #REF! placeholder, operators that find too few operands are
// skipped, and an empty result falls back to an Opaque node holding the raw
// formula text. Build only returns an error for an unsupported function and
// for a reference to a sheet the traversal has not reached yet; the caller
// decides how to recover from those.
package builder
