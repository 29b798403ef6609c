package drawutil

import (
	"math"

	"github.com/wesen/linkgraph/pkg/cellbuf"
)

// DrawDisc fills the ellipse centred at (cx, cy) with radii rx, ry, all
// in fractional cell units, at node depth. A cell is covered when its
// centre lies inside the ellipse; the cell holding the centre is always
// covered so small nodes stay visible. It returns the number of cells
// written.
func DrawDisc(buf *cellbuf.Buffer, cx, cy, rx, ry float64, ch rune, style cellbuf.StyleKey) int {
	n := 0
	if buf.Plot(int(math.Floor(cx)), int(math.Floor(cy)), ch, style, cellbuf.DepthNode) {
		n++
	}
	if rx <= 0 || ry <= 0 {
		return n
	}

	x0, x1 := int(math.Floor(cx-rx)), int(math.Ceil(cx+rx))
	y0, y1 := int(math.Floor(cy-ry)), int(math.Ceil(cy+ry))
	x0, y0 = max(x0, 0), max(y0, 0)
	x1, y1 = min(x1, buf.W-1), min(y1, buf.H-1)
	cx0, cy0 := int(math.Floor(cx)), int(math.Floor(cy))

	for y := y0; y <= y1; y++ {
		dy := (float64(y) + 0.5 - cy) / ry
		for x := x0; x <= x1; x++ {
			if x == cx0 && y == cy0 {
				continue
			}
			dx := (float64(x) + 0.5 - cx) / rx
			if dx*dx+dy*dy > 1 {
				continue
			}
			if buf.Plot(x, y, ch, style, cellbuf.DepthNode) {
				n++
			}
		}
	}
	return n
}
