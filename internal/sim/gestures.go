package sim

import (
	"fmt"

	"github.com/wesen/linkgraph/pkg/events"
	"github.com/wesen/linkgraph/pkg/graphmodel"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/spatial/r2"
)

// GestureKind is a logical pointer action, independent of any input
// backend.
type GestureKind int

const (
	// PrimaryPress is the primary button going down.
	PrimaryPress GestureKind = iota
	// PrimaryDrag is pointer motion with the primary button held.
	PrimaryDrag
	// PrimaryRelease spawns a node, or ends a move in progress.
	PrimaryRelease
	// SecondaryRelease deletes the node under the pointer.
	SecondaryRelease
	// TertiaryRelease toggles selection of the node under the pointer.
	TertiaryRelease
)

var gestureNames = map[GestureKind]string{
	PrimaryPress:     "primary-press",
	PrimaryDrag:      "primary-drag",
	PrimaryRelease:   "primary-release",
	SecondaryRelease: "secondary-release",
	TertiaryRelease:  "tertiary-release",
}

func (k GestureKind) String() string {
	if name, ok := gestureNames[k]; ok {
		return name
	}
	return fmt.Sprintf("GestureKind(%d)", int(k))
}

// ParseGestureKind is the inverse of GestureKind.String.
func ParseGestureKind(s string) (GestureKind, error) {
	for k, name := range gestureNames {
		if name == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown gesture %q", s)
}

// Gesture is one pointer action at a viewport-relative world position.
type Gesture struct {
	Kind GestureKind
	Pos  r2.Vec
}

// applyInput is the input stage. Queued gestures run in arrival order;
// everything except drag and end-move is gated on the moving flag, and
// at most one node starts moving per tick.
func (s *Sim) applyInput() {
	begun := false
	for _, g := range s.pending {
		s.report.Gestures++
		switch g.Kind {
		case PrimaryPress:
			if !s.moving && !begun {
				begun = s.beginMove(g.Pos)
			}
		case PrimaryDrag:
			if s.moving {
				s.drag(g.Pos)
			} else if !begun {
				begun = s.beginMove(g.Pos)
			}
		case PrimaryRelease:
			if s.moving {
				s.endMove()
			} else {
				s.spawn(g.Pos)
			}
		case SecondaryRelease:
			if !s.moving {
				s.remove(g.Pos)
			}
		case TertiaryRelease:
			if !s.moving {
				s.toggleSelect(g.Pos)
			}
		}
	}
	s.pending = s.pending[:0]
}

func (s *Sim) spawn(pos r2.Vec) {
	if !s.vp.Contains(pos) {
		return
	}
	id := s.nodes.Spawn(pos, s.settings.Radius)
	s.emit(events.ColorChanged{Node: id, Role: events.RoleBase})
	s.logger.Debug("node spawned", nodeFields(id, pos)...)
}

func (s *Sim) remove(pos r2.Vec) {
	id, ok := s.nodes.HitTest(pos)
	if !ok {
		return
	}
	s.nodes.Remove(id)
	s.emit(events.NodeRemoved{Node: id})
	s.logger.Debug("node removed", zap.Int("node", int(id)))
}

func (s *Sim) beginMove(pos r2.Vec) bool {
	id, ok := s.nodes.HitTest(pos)
	if !ok {
		return false
	}
	if movers := s.nodes.Moving(); len(movers) != 0 {
		s.fatal("begin move", fmt.Errorf("%w: %d already moving with the flag clear", ErrMoverCount, len(movers)))
	}
	s.setState(id, s.nodes.Node(id).State.WithMoving(true))
	s.moving = true
	s.emit(events.ColorChanged{Node: id, Role: events.RoleMoving})
	s.logger.Debug("move started", zap.Int("node", int(id)))
	return true
}

func (s *Sim) drag(pos r2.Vec) {
	id := s.mover("drag")
	s.setPos(id, pos)
	s.emit(events.NodeMoved{Node: id, Pos: pos, Source: events.SourceDrag})
}

func (s *Sim) endMove() {
	id := s.mover("end move")
	n := s.nodes.Node(id)
	s.setState(id, n.State.WithMoving(false))
	s.moving = false
	s.emit(events.ColorChanged{Node: id, Role: events.RoleFor(n.State)})
	s.logger.Debug("move ended", nodeFields(id, n.Pos)...)
}

// mover returns the single moving node, aborting if there is not
// exactly one.
func (s *Sim) mover(op string) graphmodel.NodeID {
	movers := s.nodes.Moving()
	if len(movers) != 1 {
		s.fatal(op, fmt.Errorf("%w: want 1, have %d", ErrMoverCount, len(movers)))
	}
	return movers[0]
}

func (s *Sim) toggleSelect(pos r2.Vec) {
	id, ok := s.nodes.HitTest(pos)
	if !ok {
		return
	}
	n := s.nodes.Node(id)
	s.setState(id, n.State.WithSelected(!n.State.IsSelected()))
	s.emit(events.ColorChanged{Node: id, Role: events.RoleFor(n.State)})

	selected := s.nodes.Selected()
	if len(selected) != 2 {
		return
	}
	v, u := s.nodes.Node(selected[0]), s.nodes.Node(selected[1])
	for _, n := range []*graphmodel.Node{v, u} {
		s.setState(n.ID, n.State.WithSelected(false))
		s.emit(events.ColorChanged{Node: n.ID, Role: events.RoleFor(n.State)})
	}
	s.emit(events.EdgeToggleRequested{V: v.ID, U: u.ID, PosV: v.Pos, PosU: u.Pos})
}

// setPos and setState write through the node registry. A dead id
// here means a stage kept a stale reference.
func (s *Sim) setPos(id graphmodel.NodeID, pos r2.Vec) {
	if err := s.nodes.SetPos(id, pos); err != nil {
		s.fatal("set position", fmt.Errorf("node %d: %w", id, err))
	}
}

func (s *Sim) setState(id graphmodel.NodeID, st graphmodel.State) {
	if err := s.nodes.SetState(id, st); err != nil {
		s.fatal("set state", fmt.Errorf("node %d: %w", id, err))
	}
}

func nodeFields(id graphmodel.NodeID, pos r2.Vec) []zap.Field {
	return []zap.Field{
		zap.Int("node", int(id)),
		zap.Float64("x", pos.X),
		zap.Float64("y", pos.Y),
	}
}
