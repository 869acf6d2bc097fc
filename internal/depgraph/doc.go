// Package depgraph links the formulas of a workbook by their operand/consumer
// relationships and linearises them.
//
// Vertices are keyed by cellref.Identity, so every encounter of the same
// location (the same cell read by ten formulas, or the nested operator nodes
// of one formula, which all share the formula cell's address) collapses
// onto one vertex. An edge `u -> v` means v consumes u and must be emitted
// after it.
//
// # Ordering guarantee
//
// Sort uses Kahn's algorithm with a FIFO ready queue. The queue is seeded
// with the zero in-degree vertices in graph insertion order, and a vertex's
// successors are released in the order their edges were added. The output
// is therefore fully determined by the order in which nodes and edges were
// registered, which for a workbook pass is sheet order, then row-major cell
// order, then operand order within each formula.
//
// The graph is owned by a single parsing pass and is not safe for
// concurrent use.
package depgraph
