// Package linkui is the terminal front end: it turns mouse input into
// gestures for the simulation, ticks it at a fixed rate and draws the
// graph with Lip Gloss.
package linkui

import (
	"image"
	"time"

	"charm.land/bubbles/v2/help"
	tea "charm.land/bubbletea/v2"
	"github.com/wesen/linkgraph/internal/config"
	"github.com/wesen/linkgraph/internal/physics"
	"github.com/wesen/linkgraph/internal/sim"
	"github.com/wesen/linkgraph/pkg/cellbuf"
	"go.uber.org/zap"
)

// panelWidth is the inspector width in cells, separator included.
const panelWidth = 32

// minPanelTerm is the narrowest terminal that still shows the inspector.
const minPanelTerm = 2 * panelWidth

// Model is the main application state.
type Model struct {
	cfg    *config.Config
	sim    *sim.Sim
	solver *physics.Solver
	logger *zap.Logger

	keys   keyMap
	help   help.Model
	styles styles
	buf    *cellbuf.Buffer

	Width, Height int
	Mouse         image.Point

	// pressed is the button held since the last click, MouseNone when
	// no button is down. Some terminals report releases without a
	// button.
	pressed tea.MouseButton

	fullscreen bool
	showHelp   bool
	showPanel  bool
	grid       bool
	physicsOn  bool
	ticking    bool

	last   sim.TickReport
	status string
}

// New creates the model. The simulation starts ticking once the
// terminal size is known.
func New(cfg *config.Config, logger *zap.Logger) Model {
	if logger == nil {
		logger = zap.NewNop()
	}
	solver := physics.New(physics.FromConfig(cfg.Physics))
	opts := []sim.Option{sim.WithLogger(logger)}
	if cfg.Physics.Enabled {
		opts = append(opts, sim.WithPhysics(solver))
	}
	s := sim.New(sim.Settings{Radius: cfg.Node.Radius}, opts...)
	logger.Info("document opened", zap.Stringer("doc", s.ID()))

	return Model{
		cfg:        cfg,
		sim:        s,
		solver:     solver,
		logger:     logger,
		keys:       defaultKeyMap(),
		help:       help.New(),
		styles:     newStyles(cfg),
		buf:        cellbuf.New(0, 0, styleBG),
		fullscreen: true,
		showPanel:  true,
		grid:       cfg.Canvas.Grid,
		physicsOn:  cfg.Physics.Enabled,
	}
}

// Sim returns the simulation driven by the model.
func (m Model) Sim() *sim.Sim { return m.sim }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

type tickMsg time.Time

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.tickInterval(), func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) tickInterval() time.Duration {
	return time.Second / time.Duration(max(m.cfg.View.TickRate, 1))
}

// ConfigReloadedMsg delivers a configuration re-read after the config
// file changed.
type ConfigReloadedMsg struct {
	Config *config.Config
}

// ConfigErrorMsg reports a config file that failed to load or validate.
type ConfigErrorMsg struct {
	Err error
}
