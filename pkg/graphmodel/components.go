package graphmodel

import (
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// Components returns the number of connected components formed by the
// live nodes and the edges between them. Isolated nodes count as one
// component each. Edges naming a dead node are ignored.
func Components(nodes *Nodes, edges *Edges) int {
	g := simple.NewUndirectedGraph()
	for _, n := range nodes.All() {
		g.AddNode(simple.Node(n.ID))
	}
	for _, e := range edges.All() {
		if !nodes.Live(e.V) || !nodes.Live(e.U) || e.V == e.U {
			continue
		}
		g.SetEdge(simple.Edge{F: simple.Node(e.V), T: simple.Node(e.U)})
	}
	return len(topo.ConnectedComponents(g))
}
