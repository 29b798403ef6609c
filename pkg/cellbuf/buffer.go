// Package cellbuf is a 2D character buffer with per-cell styling and
// depth, rendered to a string with Lip Gloss.
//
// Each cell holds a rune, a StyleKey and a Depth. Plot only overwrites a
// cell when drawing at the same or a greater depth, so nodes stay on top
// of edges regardless of drawing order. The caller maps StyleKeys to
// lipgloss styles at render time.
//
// All runes are assumed to be single-width.
package cellbuf

// StyleKey identifies a visual style. The caller defines the mapping
// from StyleKey to lipgloss.Style at render time.
type StyleKey int

// Depth orders what is drawn into a cell. Higher depths win.
type Depth uint8

const (
	DepthBackground Depth = iota
	DepthGrid
	DepthEdge
	DepthNode
	DepthOverlay
)

// Cell is a single character in the buffer.
type Cell struct {
	Ch    rune
	Style StyleKey
	Depth Depth
}

// Buffer is a 2D grid of styled cells.
type Buffer struct {
	W, H  int
	Cells [][]Cell // [row][col]

	fill StyleKey
}

// New creates a Buffer of the given size, filled with background spaces
// in the given style.
func New(w, h int, fill StyleKey) *Buffer {
	b := &Buffer{fill: fill}
	b.Resize(w, h)
	return b
}

// Resize changes the buffer size and clears it. Row storage is reused
// when it is large enough.
func (b *Buffer) Resize(w, h int) {
	w, h = max(w, 0), max(h, 0)
	if cap(b.Cells) >= h {
		b.Cells = b.Cells[:h]
	} else {
		b.Cells = make([][]Cell, h)
	}
	for y := range b.Cells {
		if cap(b.Cells[y]) >= w {
			b.Cells[y] = b.Cells[y][:w]
		} else {
			b.Cells[y] = make([]Cell, w)
		}
	}
	b.W, b.H = w, h
	b.Clear()
}

// InBounds reports whether (x, y) is inside the buffer.
func (b *Buffer) InBounds(x, y int) bool {
	return x >= 0 && x < b.W && y >= 0 && y < b.H
}

// Plot writes a character at (x, y) unless the cell already holds
// something drawn at a greater depth. It reports whether the cell was
// written.
func (b *Buffer) Plot(x, y int, ch rune, style StyleKey, d Depth) bool {
	if !b.InBounds(x, y) || b.Cells[y][x].Depth > d {
		return false
	}
	b.Cells[y][x] = Cell{Ch: ch, Style: style, Depth: d}
	return true
}

// SetString writes a string starting at (x, y) at overlay depth.
// Characters outside the buffer are skipped.
func (b *Buffer) SetString(x, y int, s string, style StyleKey) {
	i := 0
	for _, ch := range s {
		b.Plot(x+i, y, ch, style, DepthOverlay)
		i++
	}
}

// Clear resets every cell to a background space in the fill style.
func (b *Buffer) Clear() {
	b.Fill(b.fill)
}

// Fill resets every cell to a background space with the given style.
func (b *Buffer) Fill(style StyleKey) {
	b.fill = style
	for y := range b.Cells {
		for x := range b.Cells[y] {
			b.Cells[y][x] = Cell{Ch: ' ', Style: style}
		}
	}
}
