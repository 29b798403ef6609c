package sim

import (
	"github.com/wesen/linkgraph/pkg/events"
	"github.com/wesen/linkgraph/pkg/graphmodel"
	"gonum.org/v1/gonum/spatial/r2"
)

// Body is the physics view of a node for one step.
type Body struct {
	ID     graphmodel.NodeID
	Pos    r2.Vec
	Radius float64

	// Kinematic bodies push others but are never moved by the solver.
	// The node being dragged is kinematic.
	Kinematic bool
}

// Motion is the solver's result for one body: its velocity over the
// step and its authoritative post-step position.
type Motion struct {
	ID  graphmodel.NodeID
	Vel r2.Vec
	Pos r2.Vec
}

// Physics advances the collision simulation by dt seconds. Bodies not
// present in a call are gone; solvers drop any state they keep for them.
type Physics interface {
	Step(dt float64, bodies []Body) []Motion
}

// stepPhysics runs the solver and turns every body reported with a
// non-zero velocity into a NodeMoved, so collision jostling reaches the
// edges through the same path as dragging.
func (s *Sim) stepPhysics(dt float64) {
	if s.physics == nil {
		return
	}
	nodes := s.nodes.All()
	bodies := make([]Body, len(nodes))
	for i, n := range nodes {
		bodies[i] = Body{
			ID:        n.ID,
			Pos:       n.Pos,
			Radius:    n.Radius,
			Kinematic: n.State.IsMoving(),
		}
	}

	for _, m := range s.physics.Step(dt, bodies) {
		if m.Vel == (r2.Vec{}) {
			continue
		}
		n := s.nodes.Node(m.ID)
		if n == nil || n.State.IsMoving() {
			continue
		}
		s.setPos(m.ID, m.Pos)
		s.emit(events.NodeMoved{Node: m.ID, Pos: m.Pos, Source: events.SourcePhysics})
		s.report.PhysicsMoves++
	}
}
