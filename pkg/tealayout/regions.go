// Package tealayout computes the screen regions of a Bubbletea v2 app
// and builds the Lip Gloss layers that fill them.
package tealayout

import "image"

// Region is a named rectangular area of the terminal.
type Region struct {
	Name string
	Rect image.Rectangle
}

// Empty reports whether the region has no cells.
func (r Region) Empty() bool {
	return r.Rect.Empty()
}

// Contains reports whether the screen point p lies inside the region.
func (r Region) Contains(p image.Point) bool {
	return p.In(r.Rect)
}

// Local converts a screen point to region-relative coordinates. Points
// outside the region map outside [0,w)x[0,h).
func (r Region) Local(p image.Point) image.Point {
	return p.Sub(r.Rect.Min)
}

// Layout holds the computed regions for a given terminal size.
type Layout struct {
	TermW, TermH int
	Regions      map[string]Region

	order []string
}

// Get returns the region with the given name, or a zero Region.
func (l Layout) Get(name string) Region {
	return l.Regions[name]
}

// At returns the non-empty region containing the screen point p. Regions
// are searched in the order they were declared.
func (l Layout) At(p image.Point) (Region, bool) {
	for _, name := range l.order {
		if r := l.Regions[name]; r.Contains(p) {
			return r, true
		}
	}
	return Region{}, false
}

// LayoutBuilder accumulates fixed regions and computes the remainder.
type LayoutBuilder struct {
	termW, termH int
	top, bottom  int // rows consumed from top/bottom
	right        int // columns consumed from right
	regions      []Region
}

// NewLayoutBuilder creates a builder for the given terminal size.
func NewLayoutBuilder(termW, termH int) *LayoutBuilder {
	return &LayoutBuilder{termW: max(termW, 0), termH: max(termH, 0)}
}

// TopFixed reserves rows from the top.
func (b *LayoutBuilder) TopFixed(name string, height int) *LayoutBuilder {
	height = max(height, 0)
	y := b.top
	b.add(name, 0, y, b.termW, y+height)
	b.top += height
	return b
}

// BottomFixed reserves rows from the bottom.
func (b *LayoutBuilder) BottomFixed(name string, height int) *LayoutBuilder {
	height = max(height, 0)
	y := b.termH - b.bottom - height
	b.add(name, 0, y, b.termW, y+height)
	b.bottom += height
	return b
}

// RightFixed reserves columns from the right, spanning the rows between
// the top and bottom regions declared so far. A zero width declares an
// empty region.
func (b *LayoutBuilder) RightFixed(name string, width int) *LayoutBuilder {
	width = max(width, 0)
	x := b.termW - b.right - width
	b.add(name, x, b.top, x+width, b.termH-b.bottom)
	b.right += width
	return b
}

// Remaining assigns whatever rectangle is left after fixed allocations.
func (b *LayoutBuilder) Remaining(name string) *LayoutBuilder {
	b.add(name, 0, b.top, b.termW-b.right, b.termH-b.bottom)
	return b
}

// add records a region. Degenerate extents (min >= max on either axis)
// become empty; image.Rect would otherwise swap them into a valid but
// misplaced rectangle.
func (b *LayoutBuilder) add(name string, x0, y0, x1, y1 int) {
	var rect image.Rectangle
	if x0 < x1 && y0 < y1 {
		rect = image.Rect(x0, y0, x1, y1)
	}
	b.regions = append(b.regions, Region{Name: name, Rect: rect})
}

// Build computes and returns the final Layout. Regions squeezed out by
// earlier allocations, or pushed off screen, become empty.
func (b *LayoutBuilder) Build() Layout {
	screen := image.Rect(0, 0, b.termW, b.termH)
	l := Layout{
		TermW:   b.termW,
		TermH:   b.termH,
		Regions: make(map[string]Region, len(b.regions)),
		order:   make([]string, 0, len(b.regions)),
	}
	for _, r := range b.regions {
		r.Rect = r.Rect.Intersect(screen)
		if _, dup := l.Regions[r.Name]; !dup {
			l.order = append(l.order, r.Name)
		}
		l.Regions[r.Name] = r
	}
	return l
}
