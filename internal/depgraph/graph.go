package depgraph

import (
	"github.com/specialistvlad/formulagraph/internal/cellref"
	"github.com/specialistvlad/formulagraph/internal/expr"
	"github.com/specialistvlad/formulagraph/internal/render"
)

// New creates and returns an initialized, empty Graph.
func New() *Graph {
	return &Graph{
		vertices: make(map[string]*vertex),
	}
}

// AddNode inserts n under its identity. Terminals are ignored. When the
// identity is already present the stored node is replaced if its rendered
// definition differs (last write wins). A formula node always displaces a
// reference snapshot of the same cell and is never displaced by one.
func (g *Graph) AddNode(n *expr.Node) {
	if n == nil || n.IsTerminal() {
		return
	}
	key := n.Identity().Key()

	v, ok := g.vertices[key]
	if !ok {
		g.vertices[key] = &vertex{key: key, node: n, succSet: make(map[string]struct{})}
		g.order = append(g.order, key)
		return
	}

	switch {
	case v.node == n:
	case n.IsReference() && !v.node.IsReference():
		// the formula defining a cell outranks any snapshot of its value
	case !n.IsReference() && v.node.IsReference():
		v.node = n
	case render.Definition(v.node, render.Options{}) != render.Definition(n, render.Options{}):
		v.node = n
	}
}

// AddEdge records that to consumes from. It is a no-op when either endpoint
// is a terminal or both resolve to the same identity. Endpoints that are not
// in the graph yet are inserted.
func (g *Graph) AddEdge(from, to *expr.Node) {
	if from == nil || to == nil || from.IsTerminal() || to.IsTerminal() {
		return
	}
	fromKey, toKey := from.Identity().Key(), to.Identity().Key()
	if fromKey == toKey {
		return
	}

	fromV := g.ensure(fromKey, from)
	toV := g.ensure(toKey, to)

	if _, exists := fromV.succSet[toKey]; exists {
		return
	}
	fromV.succSet[toKey] = struct{}{}
	fromV.succ = append(fromV.succ, toKey)
	toV.inDeg++
	g.edges = append(g.edges, edge{from: fromKey, to: toKey})
}

// Add registers every direct operand of n, then n itself, then one edge from
// each operand to n. It serves binary, unary, function, parenthesis and
// formula nodes alike.
func (g *Graph) Add(n *expr.Node) {
	if n == nil {
		return
	}
	for _, arg := range n.Args {
		g.AddNode(arg)
	}
	g.AddNode(n)
	for _, arg := range n.Args {
		g.AddEdge(arg, n)
	}
}

// AddBinary registers both operands of a binary node and the node itself.
func (g *Graph) AddBinary(n *expr.Node) { g.Add(n) }

// AddUnary registers the single operand of a prefix or postfix operator.
func (g *Graph) AddUnary(n *expr.Node) { g.Add(n) }

// AddFunction registers every argument of a call and the call itself.
func (g *Graph) AddFunction(n *expr.Node) { g.Add(n) }

// Register is the hook the tree builder calls for every composite node it
// produces.
func (g *Graph) Register(n *expr.Node) {
	if n == nil {
		return
	}
	switch n.Kind {
	case expr.KindBinary, expr.KindIntersection, expr.KindUnion:
		g.AddBinary(n)
	case expr.KindUnary, expr.KindParen, expr.KindFormula:
		g.AddUnary(n)
	case expr.KindFunction:
		g.AddFunction(n)
	default:
		g.Add(n)
	}
}

// LinkCoveredCells adds an edge from every formula cell to each captured
// area that covers it, so an area is ordered after the formulas that define
// its cells. It returns the number of edges added.
func (g *Graph) LinkCoveredCells() int {
	var areas, formulas []*vertex
	for _, key := range g.order {
		v := g.vertices[key]
		switch {
		case v.node.IsArea():
			areas = append(areas, v)
		case !v.node.IsReference():
			formulas = append(formulas, v)
		}
	}

	before := len(g.edges)
	for _, a := range areas {
		for _, f := range formulas {
			if a.node.Range.Area.Contains(f.node.Addr) {
				g.AddEdge(f.node, a.node)
			}
		}
	}
	return len(g.edges) - before
}

func (g *Graph) ensure(key string, n *expr.Node) *vertex {
	if v, ok := g.vertices[key]; ok {
		return v
	}
	g.AddNode(n)
	return g.vertices[key]
}

// Len returns the number of vertices.
func (g *Graph) Len() int { return len(g.order) }

// EdgeCount returns the number of distinct edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Node returns the node stored for an identity.
func (g *Graph) Node(id cellref.Identity) (*expr.Node, bool) {
	if id == nil {
		return nil, false
	}
	v, ok := g.vertices[id.Key()]
	if !ok {
		return nil, false
	}
	return v.node, true
}

// Nodes returns every stored node in insertion order.
func (g *Graph) Nodes() []*expr.Node {
	out := make([]*expr.Node, 0, len(g.order))
	for _, key := range g.order {
		out = append(out, g.vertices[key].node)
	}
	return out
}

// Edges returns every edge in insertion order.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, Edge{From: g.vertices[e.from].node, To: g.vertices[e.to].node})
	}
	return out
}

// Dependencies returns the nodes that id consumes, in edge insertion order.
func (g *Graph) Dependencies(id cellref.Identity) []*expr.Node {
	key := id.Key()
	var out []*expr.Node
	for _, e := range g.edges {
		if e.to == key {
			out = append(out, g.vertices[e.from].node)
		}
	}
	return out
}

// Dependents returns the nodes that consume id, in edge insertion order.
func (g *Graph) Dependents(id cellref.Identity) []*expr.Node {
	v, ok := g.vertices[id.Key()]
	if !ok {
		return nil
	}
	out := make([]*expr.Node, 0, len(v.succ))
	for _, key := range v.succ {
		out = append(out, g.vertices[key].node)
	}
	return out
}
