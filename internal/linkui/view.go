package linkui

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/wesen/linkgraph/pkg/events"
	"github.com/wesen/linkgraph/pkg/tealayout"
)

// layout computes the screen regions: toolbar, footer, an optional
// inspector on the right and the canvas in between.
func (m Model) layout() tealayout.Layout {
	pw := 0
	if m.showPanel && m.Width >= minPanelTerm {
		pw = panelWidth
	}
	return tealayout.NewLayoutBuilder(m.Width, m.Height).
		TopFixed("toolbar", 1).
		BottomFixed("footer", 1).
		RightFixed("panel", pw).
		Remaining("canvas").
		Build()
}

// View implements tea.Model.
func (m Model) View() tea.View {
	if m.Width == 0 || m.Height == 0 {
		return tea.NewView("")
	}

	l := m.layout()
	canvas := l.Get("canvas")
	st := m.styles

	layers := []*lipgloss.Layer{
		tealayout.FillLayer(l.Get("toolbar"), st.toolbar, 0),
		tealayout.FillLayer(l.Get("footer"), st.footer, 0),
		tealayout.BarLayer(l.Get("toolbar"), m.toolbarText(), st.toolbar),
		tealayout.BarLayer(l.Get("footer"), m.footerText(), st.footer),
		m.buildCanvasLayer(canvas.Rect),
	}

	if panel := l.Get("panel"); !panel.Empty() {
		layers = append(layers,
			tealayout.FillLayer(panel, st.panel.Pad, 0),
			tealayout.VerticalSeparator(panel, st.sep),
			tealayout.PanelLayer(panel, st.panel, m.panelSections()...),
		)
	}

	if m.showHelp {
		h := m.help
		h.ShowAll = true
		layers = append(layers, tealayout.ModalLayer(h.View(m.keys), m.Width, m.Height, st.modal))
	}

	comp := lipgloss.NewCompositor(layers...)
	c := lipgloss.NewCanvas(m.Width, m.Height)
	c.Compose(comp)

	v := tea.NewView(c.Render())
	v.AltScreen = m.fullscreen
	v.MouseMode = tea.MouseModeAllMotion
	return v
}

func (m Model) toolbarText() string {
	mode := "idle"
	if id, ok := m.sim.MovingNode(); ok {
		mode = fmt.Sprintf("moving #%d", id)
	} else if sel := m.sim.Nodes().Selected(); len(sel) == 1 {
		mode = fmt.Sprintf("selected #%d, middle-click a second node", sel[0])
	}
	doc := m.sim.ID().String()[:8]
	return fmt.Sprintf(" linkgraph  │  %s  │  physics %s  │  doc %s", mode, onOff(m.physicsOn), doc)
}

func (m Model) footerText() string {
	s := fmt.Sprintf(" nodes %d  edges %d  components %d  tick %d  │  %s",
		m.sim.Nodes().Len(), m.sim.Edges().Len(), m.sim.Components(),
		m.sim.TickCount(), m.help.View(m.keys))
	if m.status != "" {
		s += "  │  " + m.status
	}
	return s
}

// panelSections lists the nodes and edges for the inspector.
func (m Model) panelSections() []tealayout.Section {
	text, val := m.styles.panel.Text, m.styles.value
	colors := m.sim.Colors()

	var nodes []string
	for _, n := range m.sim.Nodes().All() {
		line := text.Render(fmt.Sprintf("  #%-3d (%5.0f,%5.0f) ", n.ID, n.Pos.X, n.Pos.Y))
		if r := colors.Role(n.ID); r != events.RoleBase {
			line += val.Render(r.String())
		}
		nodes = append(nodes, line)
	}
	if len(nodes) == 0 {
		nodes = append(nodes, text.Render("  click to add a node"))
	}

	var edges []string
	for _, e := range m.sim.Edges().All() {
		edges = append(edges, text.Render(fmt.Sprintf("  #%d ─ #%d", e.V, e.U)))
	}
	if len(edges) == 0 {
		edges = append(edges, text.Render("  middle-click two nodes"))
	}

	vp := m.sim.Viewport()
	stats := []string{
		text.Render(fmt.Sprintf("  viewport %.0fx%.0f", 2*vp.HalfW, 2*vp.HalfH)),
		text.Render(fmt.Sprintf("  physics %s, energy %.1f", onOff(m.physicsOn), m.solver.Energy())),
		text.Render(fmt.Sprintf("  last tick %d events, %d clamped", m.last.Events, m.last.Clamped)),
	}

	return []tealayout.Section{
		{Title: "STATE", Lines: stats},
		{Title: fmt.Sprintf("EDGES (%d)", m.sim.Edges().Len()), Lines: edges},
		{Title: fmt.Sprintf("NODES (%d)", m.sim.Nodes().Len()), Lines: nodes},
	}
}
