package drawutil

import (
	"image"

	"github.com/wesen/linkgraph/pkg/cellbuf"
)

// DrawGrid places dots every spacing cells, aligned so that origin is a
// grid point. The origin itself is marked with a cross. Everything is
// drawn at grid depth.
func DrawGrid(buf *cellbuf.Buffer, origin, spacing image.Point, style cellbuf.StyleKey) {
	if spacing.X <= 0 || spacing.Y <= 0 {
		return
	}
	for r := mod(origin.Y, spacing.Y); r < buf.H; r += spacing.Y {
		for c := mod(origin.X, spacing.X); c < buf.W; c += spacing.X {
			buf.Plot(c, r, '·', style, cellbuf.DepthGrid)
		}
	}
	buf.Plot(origin.X, origin.Y, '┼', style, cellbuf.DepthGrid)
}

// mod returns a non-negative modulus (Go's % can return negative for negative operands).
func mod(a, m int) int {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}
