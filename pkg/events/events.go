// Package events carries the synchronization events exchanged between
// the stages of a simulation tick: node moves and removals, edge toggle
// requests and color changes.
//
// Producers append to a Log during the early stages of a tick. Each
// consuming stage owns a Router and dispatches the whole Log through it
// in FIFO order. The Log is reset once the tick ends; events are never
// carried over.
package events

import (
	"fmt"

	"github.com/wesen/linkgraph/pkg/graphmodel"
	"gonum.org/v1/gonum/spatial/r2"
)

// Type discriminates event payloads.
type Type int

const (
	TypeNodeMoved Type = iota
	TypeNodeRemoved
	TypeEdgeToggleRequested
	TypeColorChanged
)

var typeNames = map[Type]string{
	TypeNodeMoved:           "NodeMoved",
	TypeNodeRemoved:         "NodeRemoved",
	TypeEdgeToggleRequested: "EdgeToggleRequested",
	TypeColorChanged:        "ColorChanged",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// Event is implemented by every payload type in this package.
type Event interface {
	Type() Type
}

// Source records which stage produced a NodeMoved.
type Source int

const (
	SourceDrag Source = iota
	SourcePhysics
	SourceClamp
)

func (s Source) String() string {
	switch s {
	case SourceDrag:
		return "drag"
	case SourcePhysics:
		return "physics"
	case SourceClamp:
		return "clamp"
	}
	return "unknown"
}

// NodeMoved reports a node's new position, whatever moved it.
type NodeMoved struct {
	Node   graphmodel.NodeID
	Pos    r2.Vec
	Source Source
}

// NodeRemoved reports that a node was deleted from the registry.
type NodeRemoved struct {
	Node graphmodel.NodeID
}

// EdgeToggleRequested asks for the edge {V,U} to be created or, if it
// already exists, destroyed. PosV and PosU snapshot both endpoints at
// the moment the request was made.
type EdgeToggleRequested struct {
	V, U       graphmodel.NodeID
	PosV, PosU r2.Vec
}

// Role is the display role a node is drawn with.
type Role int

const (
	RoleBase Role = iota
	RoleSelected
	RoleMoving
)

func (r Role) String() string {
	switch r {
	case RoleBase:
		return "base"
	case RoleSelected:
		return "selected"
	case RoleMoving:
		return "moving"
	}
	return "unknown"
}

// RoleFor maps an interaction state to its display role. Moving wins
// over selected.
func RoleFor(s graphmodel.State) Role {
	switch {
	case s.IsMoving():
		return RoleMoving
	case s.IsSelected():
		return RoleSelected
	default:
		return RoleBase
	}
}

// ColorChanged asks the color stage to draw a node with a new role.
type ColorChanged struct {
	Node graphmodel.NodeID
	Role Role
}

func (NodeMoved) Type() Type           { return TypeNodeMoved }
func (NodeRemoved) Type() Type         { return TypeNodeRemoved }
func (EdgeToggleRequested) Type() Type { return TypeEdgeToggleRequested }
func (ColorChanged) Type() Type        { return TypeColorChanged }
