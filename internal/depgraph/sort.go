package depgraph

import (
	"context"

	"github.com/specialistvlad/formulagraph/internal/ctxlog"
	"github.com/specialistvlad/formulagraph/internal/expr"
)

// Sort linearises the graph so that every edge's source precedes its
// destination. The graph itself is left untouched.
//
// If edges remain once the ready queue drains, the graph has a cycle: the
// partial order built so far is returned together with a *CycleError
// listing the residual edges. The partial order is never discarded.
func (g *Graph) Sort(ctx context.Context) ([]*expr.Node, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Sort: starting topological sort.", "nodes", len(g.order), "edges", len(g.edges))

	inDeg := make(map[string]int, len(g.vertices))
	queue := make([]string, 0, len(g.order))
	for _, key := range g.order {
		v := g.vertices[key]
		inDeg[key] = v.inDeg
		if v.inDeg == 0 {
			queue = append(queue, key)
		}
	}
	logger.Debug("Sort: seeded ready queue.", "roots", len(queue))

	result := make([]*expr.Node, 0, len(g.order))
	emitted := make(map[string]struct{}, len(g.order))
	removed := 0
	for len(queue) > 0 {
		key := queue[0]
		queue = queue[1:]

		v := g.vertices[key]
		result = append(result, v.node)
		emitted[key] = struct{}{}

		for _, next := range v.succ {
			removed++
			inDeg[next]--
			if inDeg[next] == 0 {
				queue = append(queue, next)
			}
		}
	}

	residual := len(g.edges) - removed
	if residual == 0 {
		logger.Debug("Sort: complete.", "ordered", len(result))
		return result, nil
	}

	cycleErr := &CycleError{Residual: residual}
	for _, e := range g.edges {
		if _, ok := emitted[e.from]; ok {
			continue
		}
		cycleErr.Edges = append(cycleErr.Edges, Edge{From: g.vertices[e.from].node, To: g.vertices[e.to].node})
	}
	logger.Warn("Sort: dependency graph has unresolved edges, returning partial order.",
		"unresolved_edges", residual, "ordered", len(result), "nodes", len(g.order))
	return result, cycleErr
}
