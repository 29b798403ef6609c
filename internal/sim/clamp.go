package sim

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Viewport is the visible area in world units, centered on the origin.
type Viewport struct {
	HalfW, HalfH float64
}

// NewViewport builds a viewport from its full width and height.
func NewViewport(w, h float64) Viewport {
	return Viewport{HalfW: w / 2, HalfH: h / 2}
}

// Valid reports whether the viewport has a usable, non-empty extent.
func (v Viewport) Valid() bool {
	return v.HalfW > 0 && v.HalfH > 0
}

// Contains reports whether p lies within the viewport, edges included.
func (v Viewport) Contains(p r2.Vec) bool {
	return math.Abs(p.X) <= v.HalfW && math.Abs(p.Y) <= v.HalfH
}

// Clamp pulls a disc of the given radius back inside the viewport. Each
// axis whose extent (pos ± radius) crosses a half extent is set to the
// nearest in-bounds coordinate. An axis narrower than the disc centers
// it. The second result reports whether anything changed; clamping an
// already clamped position is a no-op.
func Clamp(pos r2.Vec, radius float64, vp Viewport) (r2.Vec, bool) {
	x, cx := clampAxis(pos.X, radius, vp.HalfW)
	y, cy := clampAxis(pos.Y, radius, vp.HalfH)
	return r2.Vec{X: x, Y: y}, cx || cy
}

func clampAxis(c, radius, half float64) (float64, bool) {
	limit := half - radius
	if limit < 0 {
		return 0, c != 0
	}
	switch {
	case c > limit:
		return limit, true
	case c < -limit:
		return -limit, true
	}
	return c, false
}
