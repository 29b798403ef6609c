// Package graphmodel provides the node and edge registries of an
// interactive node-link graph: circular positioned nodes with stable IDs
// and interaction state, undirected edges keyed by unordered node pairs
// with cached endpoint geometry, and point hit testing.
package graphmodel

import "gonum.org/v1/gonum/spatial/r2"

// HitTest returns the first node, in slice order, whose disc contains pt.
// A point exactly one radius away from the center counts as a hit.
func HitTest(pt r2.Vec, nodes []*Node) (NodeID, bool) {
	for _, n := range nodes {
		if Contains(n, pt) {
			return n.ID, true
		}
	}
	return 0, false
}

// Contains reports whether pt lies inside or on the node's disc.
func Contains(n *Node, pt r2.Vec) bool {
	d := r2.Sub(pt, n.Pos)
	return r2.Norm2(d) <= n.Radius*n.Radius
}
