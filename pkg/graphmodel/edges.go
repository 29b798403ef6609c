package graphmodel

import (
	"errors"
	"slices"

	"gonum.org/v1/gonum/spatial/r2"
)

// ErrSelfLoop is returned when an edge is requested between a node and
// itself.
var ErrSelfLoop = errors.New("graphmodel: edge endpoints must differ")

// EdgeID identifies an edge while it exists.
type EdgeID int

// Pair is an unordered pair of node IDs. {v,u} and {u,v} denote the
// same edge; compare pairs through Key.
type Pair struct {
	V, U NodeID
}

// Key returns the normalized form of the pair (smaller ID first).
func (p Pair) Key() Pair {
	if p.U < p.V {
		return Pair{V: p.U, U: p.V}
	}
	return p
}

// Has reports whether id is one of the pair's endpoints.
func (p Pair) Has(id NodeID) bool {
	return p.V == id || p.U == id
}

// Polyline is derived edge geometry in world coordinates.
type Polyline []r2.Vec

// Segment builds the single-segment polyline between two points.
func Segment(a, b r2.Vec) Polyline {
	return Polyline{a, b}
}

// Edge is an undirected connection between two live nodes. PosV and
// PosU are snapshots of the endpoint positions, refreshed by the owner
// of the registry; they are never live references into node state.
type Edge struct {
	ID       EdgeID
	V, U     NodeID
	PosV     r2.Vec
	PosU     r2.Vec
	Geometry Polyline
}

// clone copies the edge with its own geometry backing array.
func (e Edge) clone() Edge {
	e.Geometry = slices.Clone(e.Geometry)
	return e
}

// Pair returns the edge's endpoints as a pair.
func (e Edge) Pair() Pair {
	return Pair{V: e.V, U: e.U}
}

// Edges is the edge registry. Edges are kept in creation order.
type Edges struct {
	edges  []Edge
	nextID EdgeID
}

// NewEdges creates an empty registry.
func NewEdges() *Edges {
	return &Edges{}
}

// Toggle destroys the edge between v and u if one exists, and creates it
// otherwise with the given endpoint snapshots. It returns the affected
// edge ID and whether the edge now exists. Applying Toggle twice to the
// same pair restores the previous edge set.
func (r *Edges) Toggle(v, u NodeID, posV, posU r2.Vec) (EdgeID, bool, error) {
	if v == u {
		return 0, false, ErrSelfLoop
	}
	key := Pair{V: v, U: u}.Key()
	for i, e := range r.edges {
		if e.Pair().Key() == key {
			r.edges = append(r.edges[:i], r.edges[i+1:]...)
			return e.ID, false, nil
		}
	}

	id := r.nextID
	r.nextID++
	r.edges = append(r.edges, Edge{
		ID:       id,
		V:        v,
		U:        u,
		PosV:     posV,
		PosU:     posU,
		Geometry: Segment(posV, posU),
	})
	return id, true, nil
}

// MoveEndpoint refreshes the cached endpoint of every edge incident on
// id and rebuilds only those edges' geometry. Edges not incident on id
// are left untouched. It returns the IDs of the updated edges.
func (r *Edges) MoveEndpoint(id NodeID, pos r2.Vec) []EdgeID {
	var touched []EdgeID
	for i := range r.edges {
		e := &r.edges[i]
		switch id {
		case e.V:
			e.PosV = pos
		case e.U:
			e.PosU = pos
		default:
			continue
		}
		e.Geometry = Segment(e.PosV, e.PosU)
		touched = append(touched, e.ID)
	}
	return touched
}

// RemoveIncident deletes every edge incident on id and returns the
// removed edge IDs.
func (r *Edges) RemoveIncident(id NodeID) []EdgeID {
	var removed []EdgeID
	filtered := r.edges[:0]
	for _, e := range r.edges {
		if e.Pair().Has(id) {
			removed = append(removed, e.ID)
			continue
		}
		filtered = append(filtered, e)
	}
	// Clear the tail so dropped geometry is not retained.
	for i := len(filtered); i < len(r.edges); i++ {
		r.edges[i] = Edge{}
	}
	r.edges = filtered
	return removed
}

// Find returns the edge between v and u in either order.
func (r *Edges) Find(v, u NodeID) (Edge, bool) {
	key := Pair{V: v, U: u}.Key()
	for _, e := range r.edges {
		if e.Pair().Key() == key {
			return e.clone(), true
		}
	}
	return Edge{}, false
}

// Incident returns the edges touching id, in creation order.
func (r *Edges) Incident(id NodeID) []Edge {
	var result []Edge
	for _, e := range r.edges {
		if e.Pair().Has(id) {
			result = append(result, e.clone())
		}
	}
	return result
}

// All returns a copy of all edges in creation order. Edges returned by
// All, Find and Incident share no memory with the registry.
func (r *Edges) All() []Edge {
	result := make([]Edge, len(r.edges))
	for i, e := range r.edges {
		result[i] = e.clone()
	}
	return result
}

// Len returns the number of edges.
func (r *Edges) Len() int {
	return len(r.edges)
}
