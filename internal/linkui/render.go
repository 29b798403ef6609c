package linkui

import (
	"image"
	"math"

	"charm.land/lipgloss/v2"
	"github.com/wesen/linkgraph/internal/config"
	"github.com/wesen/linkgraph/internal/sim"
	"github.com/wesen/linkgraph/pkg/cellbuf"
	"github.com/wesen/linkgraph/pkg/drawutil"
	"github.com/wesen/linkgraph/pkg/graphmodel"
	"gonum.org/v1/gonum/spatial/r2"
)

// discChar fills node discs.
const discChar = '█'

// projection returns the cell/world mapping for a canvas rectangle.
func (m Model) projection(canvas image.Rectangle) projection {
	return projection{
		cols:  canvas.Dx(),
		rows:  canvas.Dy(),
		cellW: m.cfg.View.CellWidth,
		cellH: m.cfg.View.CellHeight,
	}
}

// buildCanvasLayer draws the graph and the selection preview into the
// cell buffer and returns it as a single layer.
func (m Model) buildCanvasLayer(canvas image.Rectangle) *lipgloss.Layer {
	proj := m.projection(canvas)
	if !proj.valid() {
		return lipgloss.NewLayer("").X(canvas.Min.X).Y(canvas.Min.Y).Z(0).ID("canvas")
	}
	m.buf.Resize(proj.cols, proj.rows)
	paintGraph(m.buf, m.sim, proj, m.cfg.Edge.Width, m.grid)
	m.drawPreview(m.buf, proj, canvas)
	if m.sim.Nodes().Len() == 0 {
		drawHint(m.buf, emptyHint)
	}

	return lipgloss.NewLayer(m.buf.Render(m.styles.canvas)).
		X(canvas.Min.X).Y(canvas.Min.Y).Z(0).ID("canvas")
}

// Snapshot renders the canvas of s, without any chrome, at cols x rows
// cells.
func Snapshot(cfg *config.Config, s *sim.Sim, cols, rows int) string {
	proj := projection{cols: cols, rows: rows, cellW: cfg.View.CellWidth, cellH: cfg.View.CellHeight}
	if !proj.valid() {
		return ""
	}
	buf := cellbuf.New(cols, rows, styleBG)
	paintGraph(buf, s, proj, cfg.Edge.Width, cfg.Canvas.Grid)
	return buf.Render(newStyles(cfg).canvas)
}

// paintGraph draws the grid, edges and nodes of s. Depth ordering in the
// buffer keeps nodes above edges whatever the draw order.
func paintGraph(buf *cellbuf.Buffer, s *sim.Sim, proj projection, edgeWidth float64, grid bool) {
	if grid {
		drawutil.DrawGrid(buf, proj.cellOf(r2.Vec{}), gridSpacing(proj), styleGrid)
	}

	weight := drawutil.WeightFor(edgeWidth)
	for _, e := range s.Edges().All() {
		drawPolyline(buf, proj, edgeGeometry(e), weight)
	}

	colors := s.Colors()
	for _, n := range s.Nodes().All() {
		cx, cy := proj.toCell(n.Pos)
		drawutil.DrawDisc(buf, cx, cy, n.Radius/proj.cellW, n.Radius/proj.cellH,
			discChar, roleStyle(colors.Role(n.ID)))
	}
}

// edgeGeometry returns the polyline to draw for an edge, falling back to
// the cached endpoints.
func edgeGeometry(e graphmodel.Edge) graphmodel.Polyline {
	if len(e.Geometry) >= 2 {
		return e.Geometry
	}
	return graphmodel.Segment(e.PosV, e.PosU)
}

func drawPolyline(buf *cellbuf.Buffer, proj projection, pl graphmodel.Polyline, w drawutil.Weight) {
	for i := 1; i < len(pl); i++ {
		a, b := proj.cellOf(pl[i-1]), proj.cellOf(pl[i])
		drawutil.DrawLine(buf, a.X, a.Y, b.X, b.Y, styleEdge, w)
	}
}

// drawPreview draws a dashed line from the only selected node to the
// pointer, showing where the next selection would connect.
func (m Model) drawPreview(buf *cellbuf.Buffer, proj projection, canvas image.Rectangle) {
	if m.sim.Moving() || !m.Mouse.In(canvas) {
		return
	}
	sel := m.sim.Nodes().Selected()
	if len(sel) != 1 {
		return
	}
	n := m.sim.Nodes().Node(sel[0])
	if n == nil {
		return
	}
	from := proj.cellOf(n.Pos)
	to := m.Mouse.Sub(canvas.Min)
	drawutil.DrawDashedLine(buf, from.X, from.Y, to.X, to.Y, stylePreview)
}

const emptyHint = "left-click to add a node"

// drawHint centres text on the canvas, above everything else.
func drawHint(buf *cellbuf.Buffer, text string) {
	w := len([]rune(text))
	if w > buf.W || buf.H == 0 {
		return
	}
	buf.SetString((buf.W-w)/2, buf.H/2, text, styleHint)
}

// gridSpacing keeps grid dots roughly 48 world units apart.
func gridSpacing(p projection) image.Point {
	const step = 48.0
	return image.Pt(
		max(int(math.Round(step/p.cellW)), 2),
		max(int(math.Round(step/p.cellH)), 2),
	)
}
