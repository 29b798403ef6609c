package linkui

import (
	"image"
	"math"

	tea "charm.land/bubbletea/v2"
	"github.com/wesen/linkgraph/internal/sim"
	"gonum.org/v1/gonum/spatial/r2"
)

// projection maps between canvas cells and world units. The world
// origin sits at the canvas centre and world Y grows upwards.
type projection struct {
	cols, rows   int
	cellW, cellH float64
}

func (p projection) valid() bool {
	return p.cols > 0 && p.rows > 0 && p.cellW > 0 && p.cellH > 0
}

// worldSize is the viewport extent in world units.
func (p projection) worldSize() (w, h float64) {
	return float64(p.cols) * p.cellW, float64(p.rows) * p.cellH
}

// toWorld returns the world position of the centre of cell c.
func (p projection) toWorld(c image.Point) r2.Vec {
	return r2.Vec{
		X: (float64(c.X) + 0.5 - float64(p.cols)/2) * p.cellW,
		Y: (float64(p.rows)/2 - float64(c.Y) - 0.5) * p.cellH,
	}
}

// toCell returns the fractional cell coordinates of a world position.
func (p projection) toCell(v r2.Vec) (x, y float64) {
	return v.X/p.cellW + float64(p.cols)/2, float64(p.rows)/2 - v.Y/p.cellH
}

// cellOf returns the cell containing a world position.
func (p projection) cellOf(v r2.Vec) image.Point {
	x, y := p.toCell(v)
	return image.Pt(int(math.Floor(x)), int(math.Floor(y)))
}

// handleMouse turns mouse messages into gestures. Presses only count on
// the canvas; drags and releases of a button pressed there are always
// forwarded so that a move ends even when the pointer leaves the canvas.
func (m Model) handleMouse(msg tea.MouseMsg) Model {
	mouse := msg.Mouse()
	m.Mouse = image.Pt(mouse.X, mouse.Y)

	l := m.layout()
	canvas := l.Get("canvas")
	proj := m.projection(canvas.Rect)
	if !proj.valid() {
		return m
	}
	under, _ := l.At(m.Mouse)
	onCanvas := under.Name == canvas.Name
	pos := proj.toWorld(canvas.Local(m.Mouse))

	switch msg.(type) {
	case tea.MouseClickMsg:
		if !onCanvas {
			return m
		}
		m.pressed = mouse.Button
		if mouse.Button == tea.MouseLeft {
			m.sim.Queue(sim.Gesture{Kind: sim.PrimaryPress, Pos: pos})
		}

	case tea.MouseMotionMsg:
		if m.pressed == tea.MouseLeft || (mouse.Button == tea.MouseLeft && onCanvas) {
			m.sim.Queue(sim.Gesture{Kind: sim.PrimaryDrag, Pos: pos})
		}

	case tea.MouseReleaseMsg:
		button := mouse.Button
		if button == tea.MouseNone {
			button = m.pressed
		}
		held := m.pressed
		m.pressed = tea.MouseNone
		if kind, ok := releaseKind(button); ok && (onCanvas || held == button) {
			m.sim.Queue(sim.Gesture{Kind: kind, Pos: pos})
		}
	}
	return m
}

func releaseKind(b tea.MouseButton) (sim.GestureKind, bool) {
	switch b {
	case tea.MouseLeft:
		return sim.PrimaryRelease, true
	case tea.MouseRight:
		return sim.SecondaryRelease, true
	case tea.MouseMiddle:
		return sim.TertiaryRelease, true
	}
	return 0, false
}
