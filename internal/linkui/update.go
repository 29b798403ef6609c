package linkui

import (
	"fmt"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/wesen/linkgraph/internal/config"
	"github.com/wesen/linkgraph/internal/physics"
	"go.uber.org/zap"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		return m.resize()

	case tickMsg:
		return m.step()

	case tea.KeyPressMsg:
		return m.handleKeys(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg), nil

	case ConfigReloadedMsg:
		return m.applyConfig(msg.Config)

	case ConfigErrorMsg:
		m.logger.Warn("config reload failed", zap.Error(msg.Err))
		m.status = "config error: " + msg.Err.Error()
	}

	return m, nil
}

// resize fits the simulation viewport to the canvas and starts the tick
// loop the first time the canvas has a usable size.
func (m Model) resize() (tea.Model, tea.Cmd) {
	proj := m.projection(m.layout().Get("canvas").Rect)
	if !proj.valid() {
		return m, nil
	}
	m.sim.Resize(proj.worldSize())
	if m.ticking {
		return m, nil
	}
	m.ticking = true
	return m, m.tick()
}

// step runs one simulation tick and schedules the next one.
func (m Model) step() (tea.Model, tea.Cmd) {
	m.last = m.sim.Tick(m.tickInterval().Seconds())
	if m.last.Events > 0 {
		m.logger.Debug("tick",
			zap.Uint64("tick", m.last.Tick),
			zap.Int("gestures", m.last.Gestures),
			zap.Int("events", m.last.Events),
		)
	}
	return m, m.tick()
}

func (m Model) handleKeys(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Fullscreen):
		m.fullscreen = !m.fullscreen

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp

	case key.Matches(msg, m.keys.Physics):
		m.physicsOn = !m.physicsOn
		m.installPhysics()
		m.status = fmt.Sprintf("physics %s", onOff(m.physicsOn))

	case key.Matches(msg, m.keys.Grid):
		m.grid = !m.grid

	case key.Matches(msg, m.keys.Panel):
		m.showPanel = !m.showPanel
		return m.resize()
	}
	return m, nil
}

func (m Model) installPhysics() {
	if m.physicsOn {
		m.sim.SetPhysics(m.solver)
	} else {
		m.sim.SetPhysics(nil)
	}
}

// applyConfig swaps in a reloaded configuration. The graph is kept; new
// node radii only apply to nodes spawned afterwards.
func (m Model) applyConfig(cfg *config.Config) (tea.Model, tea.Cmd) {
	m.cfg = cfg
	m.styles = newStyles(cfg)
	m.sim.SetRadius(cfg.Node.Radius)
	m.solver.SetConfig(physics.FromConfig(cfg.Physics))
	m.physicsOn = cfg.Physics.Enabled
	m.installPhysics()
	m.grid = cfg.Canvas.Grid
	m.status = "config reloaded"
	m.logger.Info("config reloaded", zap.String("file", cfg.File))
	return m.resize()
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
