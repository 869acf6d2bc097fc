package depgraph

import (
	"fmt"

	"github.com/specialistvlad/formulagraph/internal/diag"
	"github.com/specialistvlad/formulagraph/internal/expr"
)

// vertex is the stored state of one identity.
type vertex struct {
	key  string
	node *expr.Node
	// succ lists consumer keys in edge insertion order; succSet guards
	// against duplicate edges.
	succ    []string
	succSet map[string]struct{}
	inDeg   int
}

// Graph is the dependency graph of one workbook pass.
type Graph struct {
	vertices map[string]*vertex
	order    []string
	edges    []edge
}

type edge struct {
	from, to string
}

// Edge is a resolved dependency: From must be emitted before To.
type Edge struct {
	From *expr.Node
	To   *expr.Node
}

// CycleError reports edges left over once no vertex is ready any more.
type CycleError struct {
	Residual int
	Edges    []Edge
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("%v: %d unresolved edges", diag.ErrCyclicDependency, e.Residual)
}

// Unwrap lets errors.Is match diag.ErrCyclicDependency.
func (e *CycleError) Unwrap() error { return diag.ErrCyclicDependency }
