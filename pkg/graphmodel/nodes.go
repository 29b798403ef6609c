package graphmodel

import (
	"errors"

	"gonum.org/v1/gonum/spatial/r2"
)

// ErrUnknownNode is returned when an operation names a node ID that is
// not live.
var ErrUnknownNode = errors.New("graphmodel: unknown node")

// NodeID identifies a node for the lifetime of the document. IDs are
// never reused, so a removed ID stays dead.
type NodeID int

// Node is a circular, positioned graph vertex.
type Node struct {
	ID     NodeID
	Pos    r2.Vec
	Radius float64
	State  State
}

// Nodes is the node registry: an arena of live nodes with stable
// insertion-order iteration.
type Nodes struct {
	nodes    map[NodeID]*Node
	nextID   NodeID
	orderIDs []NodeID // insertion order for deterministic iteration
}

// NewNodes creates an empty registry.
func NewNodes() *Nodes {
	return &Nodes{
		nodes: make(map[NodeID]*Node),
	}
}

// ── Lifecycle ──

// Spawn inserts an idle node and returns its assigned ID.
func (r *Nodes) Spawn(pos r2.Vec, radius float64) NodeID {
	id := r.nextID
	r.nextID++
	r.nodes[id] = &Node{ID: id, Pos: pos, Radius: radius, State: StateIdle}
	r.orderIDs = append(r.orderIDs, id)
	return id
}

// Remove deletes the node. It reports false if the node was not live.
func (r *Nodes) Remove(id NodeID) bool {
	if _, ok := r.nodes[id]; !ok {
		return false
	}
	delete(r.nodes, id)

	for i, oid := range r.orderIDs {
		if oid == id {
			r.orderIDs = append(r.orderIDs[:i], r.orderIDs[i+1:]...)
			break
		}
	}
	return true
}

// ── Lookup ──

// Node returns the node with the given ID, or nil.
func (r *Nodes) Node(id NodeID) *Node {
	return r.nodes[id]
}

// Live reports whether id names an existing node.
func (r *Nodes) Live(id NodeID) bool {
	_, ok := r.nodes[id]
	return ok
}

// Len returns the number of live nodes.
func (r *Nodes) Len() int {
	return len(r.orderIDs)
}

// All returns all live nodes in insertion order.
func (r *Nodes) All() []*Node {
	result := make([]*Node, 0, len(r.orderIDs))
	for _, id := range r.orderIDs {
		if n, ok := r.nodes[id]; ok {
			result = append(result, n)
		}
	}
	return result
}

// Selected returns the IDs of selected nodes in insertion order.
func (r *Nodes) Selected() []NodeID {
	return r.filter(State.IsSelected)
}

// Moving returns the IDs of moving nodes in insertion order. Callers
// enforcing the single-mover invariant check the length.
func (r *Nodes) Moving() []NodeID {
	return r.filter(State.IsMoving)
}

func (r *Nodes) filter(pred func(State) bool) []NodeID {
	var result []NodeID
	for _, id := range r.orderIDs {
		if pred(r.nodes[id].State) {
			result = append(result, id)
		}
	}
	return result
}

// ── Mutation ──

// SetPos moves a node.
func (r *Nodes) SetPos(id NodeID, pos r2.Vec) error {
	n, ok := r.nodes[id]
	if !ok {
		return ErrUnknownNode
	}
	n.Pos = pos
	return nil
}

// SetState replaces a node's interaction state.
func (r *Nodes) SetState(id NodeID, s State) error {
	n, ok := r.nodes[id]
	if !ok {
		return ErrUnknownNode
	}
	n.State = s
	return nil
}

// ── Spatial queries ──

// HitTest returns the first node in insertion order containing pt.
func (r *Nodes) HitTest(pt r2.Vec) (NodeID, bool) {
	return HitTest(pt, r.All())
}
