package sim

import (
	"github.com/wesen/linkgraph/pkg/events"
	"go.uber.org/zap"
)

// edgeSync is the edge synchronization stage. It is the only writer of
// the edge registry and reacts to three events:
//
//   - EdgeToggleRequested creates or destroys the edge for the pair.
//   - NodeMoved refreshes the cached endpoint of incident edges only.
//   - NodeRemoved cascades to every incident edge.
type edgeSync struct {
	s *Sim
}

func (e edgeSync) EventTypes() []events.Type {
	return []events.Type{
		events.TypeEdgeToggleRequested,
		events.TypeNodeMoved,
		events.TypeNodeRemoved,
	}
}

func (e edgeSync) HandleEvent(ev events.Event) {
	s := e.s
	switch ev := ev.(type) {
	case events.EdgeToggleRequested:
		// A removal earlier in this tick wins over a pending toggle.
		if !s.nodes.Live(ev.V) || !s.nodes.Live(ev.U) {
			s.logger.Debug("dropping toggle for dead node",
				zap.Int("v", int(ev.V)), zap.Int("u", int(ev.U)))
			return
		}
		id, created, err := s.edges.Toggle(ev.V, ev.U, ev.PosV, ev.PosU)
		if err != nil {
			s.fatal("edge toggle", err)
		}
		s.report.Toggled++
		s.logger.Debug("edge toggled",
			zap.Int("edge", int(id)), zap.Bool("created", created),
			zap.Int("v", int(ev.V)), zap.Int("u", int(ev.U)))

	case events.NodeMoved:
		touched := s.edges.MoveEndpoint(ev.Node, ev.Pos)
		s.report.EdgesUpdated += len(touched)

	case events.NodeRemoved:
		removed := s.edges.RemoveIncident(ev.Node)
		if len(removed) > 0 {
			s.logger.Debug("cascade delete",
				zap.Int("node", int(ev.Node)), zap.Int("edges", len(removed)))
		}
		s.report.EdgesRemoved += len(removed)
	}
}
