// Package engine runs the formula pipeline over a whole workbook: it builds
// one expression tree per formula cell, links them in a dependency graph,
// sorts the graph and renders the report lines.
//
// Formula cells are visited in sheet order, then row-major within a sheet.
// While a sheet is being visited only it and the sheets before it are
// readable. A formula that reads a later sheet is deferred and rebuilt
// against the complete workbook once the primary pass is over, so the
// recovery pass always happens in one place and in one order.
//
// A workbook with exactly one formula is emitted directly without building
// a graph.
package engine
