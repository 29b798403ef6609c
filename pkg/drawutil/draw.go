package drawutil

import (
	"image"

	"github.com/wesen/linkgraph/pkg/cellbuf"
)

// pointChar returns the character for pts[i] from its local direction,
// looking at the next point or, at the end, the previous one.
func pointChar(pts []image.Point, i int, w Weight) rune {
	var dx, dy int
	if i < len(pts)-1 {
		dx = pts[i+1].X - pts[i].X
		dy = pts[i+1].Y - pts[i].Y
	} else if i > 0 {
		dx = pts[i].X - pts[i-1].X
		dy = pts[i].Y - pts[i-1].Y
	}
	return LineChar(dx, dy, w)
}

// DrawLine draws a line at edge depth. Coordinates are buffer cells.
func DrawLine(buf *cellbuf.Buffer, x0, y0, x1, y1 int, style cellbuf.StyleKey, w Weight) {
	pts := Bresenham(x0, y0, x1, y1)
	for i, p := range pts {
		buf.Plot(p.X, p.Y, pointChar(pts, i, w), style, cellbuf.DepthEdge)
	}
}

// DrawDashedLine draws a light line at edge depth, skipping every third
// point.
func DrawDashedLine(buf *cellbuf.Buffer, x0, y0, x1, y1 int, style cellbuf.StyleKey) {
	pts := Bresenham(x0, y0, x1, y1)
	for i, p := range pts {
		if i%3 != 2 {
			buf.Plot(p.X, p.Y, pointChar(pts, i, Light), style, cellbuf.DepthEdge)
		}
	}
}
