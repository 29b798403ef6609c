// Package drawutil draws graph primitives into a cellbuf.Buffer:
// Bresenham lines in light or heavy box-drawing characters, filled
// discs for nodes, and a background dot grid.
package drawutil

import "image"

// Bresenham returns the integer points on the line from (x0,y0) to (x1,y1)
// using Bresenham's line algorithm. The result always includes both endpoints.
// The loop is capped at dx+dy+2 iterations to prevent infinite loops.
func Bresenham(x0, y0, x1, y1 int) []image.Point {
	dx := abs(x1 - x0)
	dy := abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx - dy
	x, y := x0, y0

	pts := make([]image.Point, 0, dx+dy+1)
	for range dx + dy + 2 {
		pts = append(pts, image.Pt(x, y))
		if x == x1 && y == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
	return pts
}

// Weight selects the stroke used for a line.
type Weight int

const (
	Light Weight = iota
	Heavy
)

// WeightFor picks the stroke for an edge width in world units.
func WeightFor(width float64) Weight {
	if width >= 3 {
		return Heavy
	}
	return Light
}

var strokes = [...][4]rune{
	Light: {'─', '│', '╲', '╱'},
	Heavy: {'━', '┃', '╲', '╱'},
}

// LineChar returns the character for a segment with direction (dx, dy).
func LineChar(dx, dy int, w Weight) rune {
	s := strokes[Light]
	if w == Heavy {
		s = strokes[Heavy]
	}
	switch {
	case dx == 0 && dy == 0:
		return '·'
	case dx == 0:
		return s[1]
	case dy == 0:
		return s[0]
	case (dx > 0) == (dy > 0):
		return s[2]
	default:
		return s[3]
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
