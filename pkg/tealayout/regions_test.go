package tealayout

import (
	"image"
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
)

func appLayout(w, h, panel int) Layout {
	return NewLayoutBuilder(w, h).
		TopFixed("toolbar", 1).
		BottomFixed("footer", 1).
		RightFixed("panel", panel).
		Remaining("canvas").
		Build()
}

func TestLayoutBasic(t *testing.T) {
	l := appLayout(80, 24, 30)

	if l.TermW != 80 || l.TermH != 24 {
		t.Fatalf("term size: expected 80x24, got %dx%d", l.TermW, l.TermH)
	}
	tests := []struct {
		name string
		want image.Rectangle
	}{
		{"toolbar", image.Rect(0, 0, 80, 1)},
		{"footer", image.Rect(0, 23, 80, 24)},
		{"panel", image.Rect(50, 1, 80, 23)},
		{"canvas", image.Rect(0, 1, 50, 23)},
	}
	for _, tc := range tests {
		if got := l.Get(tc.name).Rect; got != tc.want {
			t.Errorf("%s: expected %v, got %v", tc.name, tc.want, got)
		}
	}
}

func TestLayoutHiddenPanel(t *testing.T) {
	l := appLayout(80, 24, 0)
	if !l.Get("panel").Empty() {
		t.Errorf("zero-width panel: expected empty, got %v", l.Get("panel").Rect)
	}
	if cv := l.Get("canvas").Rect; cv != image.Rect(0, 1, 80, 23) {
		t.Errorf("canvas: expected full width, got %v", cv)
	}
}

func TestLayoutRemainingOnly(t *testing.T) {
	l := NewLayoutBuilder(80, 24).Remaining("full").Build()
	if r := l.Get("full"); r.Rect != image.Rect(0, 0, 80, 24) {
		t.Errorf("full: expected (0,0)-(80,24), got %v", r.Rect)
	}
}

func TestLayoutDegenerate(t *testing.T) {
	tests := []struct {
		name string
		l    Layout
	}{
		{"zero terminal", NewLayoutBuilder(0, 0).TopFixed("toolbar", 3).Remaining("canvas").Build()},
		{"panel wider than terminal", NewLayoutBuilder(20, 10).RightFixed("panel", 30).Remaining("canvas").Build()},
		{"bars taller than terminal", NewLayoutBuilder(20, 2).TopFixed("t", 2).BottomFixed("b", 2).Remaining("canvas").Build()},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if cv := tc.l.Get("canvas"); !cv.Empty() || cv.Rect != (image.Rectangle{}) {
				t.Errorf("canvas: expected empty rect, got %v", cv.Rect)
			}
		})
	}
}

func TestLayoutClipsToScreen(t *testing.T) {
	l := NewLayoutBuilder(20, 10).RightFixed("panel", 30).Build()
	if r := l.Get("panel").Rect; r != image.Rect(0, 0, 20, 10) {
		t.Errorf("panel: expected clipped to screen, got %v", r)
	}
}

func TestLayoutNoOverlap(t *testing.T) {
	l := appLayout(80, 24, 30)
	regions := []Region{l.Get("toolbar"), l.Get("footer"), l.Get("panel"), l.Get("canvas")}
	for i := 0; i < len(regions); i++ {
		for j := i + 1; j < len(regions); j++ {
			ri, rj := regions[i], regions[j]
			if ri.Rect.Overlaps(rj.Rect) {
				t.Errorf("overlap: %s %v and %s %v", ri.Name, ri.Rect, rj.Name, rj.Rect)
			}
		}
	}
}

func TestLayoutAt(t *testing.T) {
	l := appLayout(80, 24, 30)
	tests := []struct {
		p    image.Point
		want string
	}{
		{image.Pt(0, 0), "toolbar"},
		{image.Pt(10, 5), "canvas"},
		{image.Pt(49, 22), "canvas"},
		{image.Pt(50, 5), "panel"},
		{image.Pt(79, 23), "footer"},
		{image.Pt(80, 5), ""},
		{image.Pt(-1, 5), ""},
	}
	for _, tc := range tests {
		r, ok := l.At(tc.p)
		if ok != (tc.want != "") || r.Name != tc.want {
			t.Errorf("At(%v) = %q, %v; want %q", tc.p, r.Name, ok, tc.want)
		}
	}
}

func TestRegionLocal(t *testing.T) {
	r := Region{Name: "canvas", Rect: image.Rect(10, 2, 50, 22)}
	if got := r.Local(image.Pt(10, 2)); got != image.Pt(0, 0) {
		t.Errorf("Local(min) = %v", got)
	}
	if got := r.Local(image.Pt(5, 30)); got != image.Pt(-5, 28) {
		t.Errorf("Local(outside) = %v", got)
	}
	if r.Contains(image.Pt(50, 2)) {
		t.Error("Contains includes the max edge")
	}
}

func TestGetNonExistent(t *testing.T) {
	l := NewLayoutBuilder(80, 24).Build()
	if r := l.Get("missing"); r.Name != "" {
		t.Errorf("non-existent: expected empty, got %v", r)
	}
	if _, ok := l.At(image.Pt(1, 1)); ok {
		t.Error("At found a region in an empty layout")
	}
}

func TestModalLayer(t *testing.T) {
	style := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		Width(20).
		Padding(1, 2)

	layer := ModalLayer("test content", 80, 24, style)
	if layer.GetID() != "modal" {
		t.Errorf("modal ID: expected 'modal', got %q", layer.GetID())
	}
	if layer.GetZ() != 100 {
		t.Errorf("modal Z: expected 100, got %d", layer.GetZ())
	}
	x, y := layer.GetX(), layer.GetY()
	if x < 20 || x > 40 {
		t.Errorf("modal X not centered: %d", x)
	}
	if y < 5 || y > 15 {
		t.Errorf("modal Y not centered: %d", y)
	}
}

func TestFillLayer(t *testing.T) {
	r := Region{Name: "canvas", Rect: image.Rect(10, 5, 30, 15)}
	style := lipgloss.NewStyle().Background(lipgloss.Color("#1A1A1A"))
	layer := FillLayer(r, style, 0)

	if layer.GetID() != "canvas-bg" {
		t.Errorf("fill ID: expected 'canvas-bg', got %q", layer.GetID())
	}
	if layer.GetX() != 10 || layer.GetY() != 5 {
		t.Errorf("fill pos: expected (10,5), got (%d,%d)", layer.GetX(), layer.GetY())
	}
	if h := lipgloss.Height(layer.GetContent()); h != 10 {
		t.Errorf("fill height = %d, want 10", h)
	}
}

func TestFillLayerEmpty(t *testing.T) {
	layer := FillLayer(Region{Name: "empty"}, lipgloss.NewStyle(), 0)
	if layer.GetContent() != "" {
		t.Error("empty fill should have no content")
	}
}

func TestBarLayer(t *testing.T) {
	r := Region{Name: "footer", Rect: image.Rect(0, 23, 80, 24)}
	layer := BarLayer(r, "nodes 3", lipgloss.NewStyle())
	if layer.GetY() != 23 || layer.GetID() != "footer" {
		t.Errorf("bar at y=%d id=%q", layer.GetY(), layer.GetID())
	}
	if w := lipgloss.Width(layer.GetContent()); w != 80 {
		t.Errorf("bar width = %d, want 80", w)
	}
}

func TestVerticalSeparator(t *testing.T) {
	r := Region{Name: "panel", Rect: image.Rect(50, 1, 80, 23)}
	layer := VerticalSeparator(r, lipgloss.NewStyle())
	if layer.GetX() != 50 || layer.GetID() != "panel-sep" {
		t.Errorf("separator at x=%d id=%q", layer.GetX(), layer.GetID())
	}
	if n := strings.Count(layer.GetContent(), "│"); n != 22 {
		t.Errorf("separator has %d rows, want 22", n)
	}
}

func TestPanelLayer(t *testing.T) {
	r := Region{Name: "panel", Rect: image.Rect(50, 1, 80, 11)}
	st := PanelStyles{}
	layer := PanelLayer(r, st,
		Section{Title: "SELECTION", Lines: []string{"  #1 (10, 20)"}},
		Section{Title: "PHYSICS", Lines: []string{"  on"}},
	)

	if layer.GetX() != 51 || layer.GetY() != 1 {
		t.Errorf("panel at (%d,%d), want (51,1)", layer.GetX(), layer.GetY())
	}
	lines := strings.Split(layer.GetContent(), "\n")
	if len(lines) != 10 {
		t.Fatalf("panel has %d lines, want 10", len(lines))
	}
	for i, l := range lines {
		if w := lipgloss.Width(l); w != 29 {
			t.Errorf("line %d width = %d, want 29", i, w)
		}
	}
	if !strings.HasPrefix(lines[0], "SELECTION") || !strings.HasPrefix(lines[4], "PHYSICS") {
		t.Errorf("section titles misplaced:\n%s", layer.GetContent())
	}
}

func TestPanelLayerTruncates(t *testing.T) {
	r := Region{Name: "panel", Rect: image.Rect(0, 0, 11, 3)}
	layer := PanelLayer(r, PanelStyles{},
		Section{Title: "A VERY LONG TITLE", Lines: []string{"one", "two", "three"}},
	)
	lines := strings.Split(layer.GetContent(), "\n")
	if len(lines) != 3 {
		t.Fatalf("panel has %d lines, want 3", len(lines))
	}
	if w := lipgloss.Width(lines[0]); w != 10 {
		t.Errorf("title width = %d, want 10", w)
	}
}
