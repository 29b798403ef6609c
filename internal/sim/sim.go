// Package sim is the graph synchronization engine. A Sim owns the node
// and edge registries and advances them one tick at a time through a
// fixed sequence of stages that talk to each other only through the
// tick's event log.
package sim

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/wesen/linkgraph/pkg/events"
	"github.com/wesen/linkgraph/pkg/graphmodel"
	"go.uber.org/zap"
)

// Settings are the per-document engine parameters.
type Settings struct {
	Radius float64
}

// DefaultSettings matches the default configuration.
func DefaultSettings() Settings {
	return Settings{Radius: 12}
}

// Option configures a Sim.
type Option func(*Sim)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(s *Sim) { s.logger = l }
}

// WithPhysics installs a collision solver. Without one the physics
// stage is skipped.
func WithPhysics(p Physics) Option {
	return func(s *Sim) { s.physics = p }
}

// TickReport summarizes what one tick did.
type TickReport struct {
	Tick         uint64
	Gestures     int
	Events       int
	PhysicsMoves int
	Clamped      int
	Toggled      int
	EdgesUpdated int
	EdgesRemoved int
}

// Sim is a single in-memory graph document. It is not safe for
// concurrent use; callers drive it from one goroutine.
type Sim struct {
	id       uuid.UUID
	settings Settings
	logger   *zap.Logger
	physics  Physics

	nodes  *graphmodel.Nodes
	edges  *graphmodel.Edges
	colors *ColorTable
	vp     Viewport

	// moving is the move lock: set while exactly one node is Moving.
	moving bool

	log         *events.Log
	edgeRouter  *events.Router
	colorRouter *events.Router

	pending []Gesture
	tick    uint64
	report  TickReport
}

// New creates an empty document. The viewport must be set with Resize
// before the first Tick.
func New(settings Settings, opts ...Option) *Sim {
	s := &Sim{
		id:          uuid.New(),
		settings:    settings,
		logger:      zap.NewNop(),
		nodes:       graphmodel.NewNodes(),
		edges:       graphmodel.NewEdges(),
		colors:      newColorTable(),
		log:         events.NewLog(),
		edgeRouter:  events.NewRouter(),
		colorRouter: events.NewRouter(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With(zap.String("doc", s.id.String()))
	s.edgeRouter.Register(edgeSync{s: s})
	s.colorRouter.Register(colorSync{table: s.colors})
	return s
}

// Resize sets the viewport from its full width and height in world
// units. Nodes outside the new bounds are pulled in by the next clamp
// stage.
func (s *Sim) Resize(w, h float64) {
	s.vp = NewViewport(w, h)
	s.logger.Debug("viewport resized", zap.Float64("w", w), zap.Float64("h", h))
}

// SetRadius changes the radius used for nodes spawned from now on.
func (s *Sim) SetRadius(r float64) {
	s.settings.Radius = r
}

// SetPhysics replaces the physics collaborator. Nil disables the
// physics stage.
func (s *Sim) SetPhysics(p Physics) {
	s.physics = p
}

// Queue records a gesture for the input stage of the next tick.
func (s *Sim) Queue(g Gesture) {
	s.pending = append(s.pending, g)
}

// Pending returns the number of gestures waiting for the next tick.
func (s *Sim) Pending() int {
	return len(s.pending)
}

// Tick runs one simulation step of dt seconds. Stage order is fixed:
// input, physics, boundary clamp, edge synchronization, color
// synchronization. The event log is empty again when Tick returns.
func (s *Sim) Tick(dt float64) TickReport {
	if !s.vp.Valid() {
		s.fatal("tick", ErrNoViewport)
	}
	s.tick++
	s.report = TickReport{Tick: s.tick}

	s.applyInput()
	s.stepPhysics(dt)
	s.clampAll()

	s.report.Events = s.log.Len()
	s.edgeRouter.Dispatch(s.log)
	s.colorRouter.Dispatch(s.log)
	s.log.Reset()

	if s.report.Events > 0 {
		s.logger.Debug("tick",
			zap.Uint64("tick", s.tick),
			zap.Int("events", s.report.Events),
			zap.Int("edges_updated", s.report.EdgesUpdated),
			zap.Int("edges_removed", s.report.EdgesRemoved))
	}
	return s.report
}

func (s *Sim) clampAll() {
	for _, n := range s.nodes.All() {
		pos, changed := Clamp(n.Pos, n.Radius, s.vp)
		if !changed {
			continue
		}
		s.setPos(n.ID, pos)
		s.emit(events.NodeMoved{Node: n.ID, Pos: pos, Source: events.SourceClamp})
		s.report.Clamped++
	}
}

func (s *Sim) emit(ev events.Event) {
	if err := s.log.Emit(ev); err != nil {
		s.fatal(fmt.Sprintf("emit %s", ev.Type()), err)
	}
}

// fatal aborts on a broken engine invariant.
func (s *Sim) fatal(op string, err error) {
	s.logger.Error("invariant violated", zap.String("op", op), zap.Error(err))
	panic(&InvariantError{Op: op, Err: err})
}

// ID returns the document id.
func (s *Sim) ID() uuid.UUID { return s.id }

// Nodes returns the node registry. Callers must treat it as read-only.
func (s *Sim) Nodes() *graphmodel.Nodes { return s.nodes }

// Edges returns the edge registry. Callers must treat it as read-only.
func (s *Sim) Edges() *graphmodel.Edges { return s.edges }

// Colors returns the display role table.
func (s *Sim) Colors() *ColorTable { return s.colors }

func (s *Sim) Viewport() Viewport { return s.vp }

func (s *Sim) Settings() Settings { return s.settings }

// Moving reports whether a node is currently being moved.
func (s *Sim) Moving() bool { return s.moving }

// MovingNode returns the node being moved, if any.
func (s *Sim) MovingNode() (graphmodel.NodeID, bool) {
	if !s.moving {
		return 0, false
	}
	ids := s.nodes.Moving()
	if len(ids) != 1 {
		return 0, false
	}
	return ids[0], true
}

func (s *Sim) TickCount() uint64 { return s.tick }

// Components returns the number of connected components of the graph.
func (s *Sim) Components() int {
	return graphmodel.Components(s.nodes, s.edges)
}
