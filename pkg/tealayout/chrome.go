package tealayout

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// BarLayer renders a single-row bar (toolbar, status line) filling the
// width of r.
func BarLayer(r Region, content string, style lipgloss.Style) *lipgloss.Layer {
	rendered := style.Width(r.Rect.Dx()).MaxHeight(max(r.Rect.Dy(), 0)).Render(content)
	return lipgloss.NewLayer(rendered).X(r.Rect.Min.X).Y(r.Rect.Min.Y).Z(1).ID(r.Name)
}

// VerticalSeparator creates a Layer with a vertical line of │ characters
// along the left edge of r.
func VerticalSeparator(r Region, style lipgloss.Style) *lipgloss.Layer {
	lines := make([]string, r.Rect.Dy())
	for i := range lines {
		lines[i] = "│"
	}
	rendered := style.Render(strings.Join(lines, "\n"))
	return lipgloss.NewLayer(rendered).X(r.Rect.Min.X).Y(r.Rect.Min.Y).Z(1).ID(r.Name + "-sep")
}

// ModalLayer creates a centered high-Z overlay Layer.
// The content is rendered inside boxStyle, then centered on the terminal.
func ModalLayer(content string, termW, termH int, boxStyle lipgloss.Style) *lipgloss.Layer {
	rendered := boxStyle.Render(content)
	cx := max((termW-lipgloss.Width(rendered))/2, 0)
	cy := max((termH-lipgloss.Height(rendered))/2, 0)
	return lipgloss.NewLayer(rendered).X(cx).Y(cy).Z(100).ID("modal")
}

// FillLayer creates a Layer filled with the given style at a region's position.
func FillLayer(r Region, style lipgloss.Style, z int) *lipgloss.Layer {
	id := r.Name + "-bg"
	w, h := r.Rect.Dx(), r.Rect.Dy()
	if w <= 0 || h <= 0 {
		return lipgloss.NewLayer("").X(r.Rect.Min.X).Y(r.Rect.Min.Y).Z(z).ID(id)
	}
	line := strings.Repeat(" ", w)
	lines := make([]string, h)
	for i := range lines {
		lines[i] = line
	}
	rendered := style.Render(strings.Join(lines, "\n"))
	return lipgloss.NewLayer(rendered).X(r.Rect.Min.X).Y(r.Rect.Min.Y).Z(z).ID(id)
}

// PanelStyles are the styles a side panel is drawn with. They should
// share one background so padded lines blend in.
type PanelStyles struct {
	Title lipgloss.Style
	Rule  lipgloss.Style
	Text  lipgloss.Style
	Pad   lipgloss.Style
}

// Section is a titled block of pre-styled lines inside a panel.
type Section struct {
	Title string
	Lines []string
}

// PanelLayer stacks sections top to bottom inside r, one column in from
// its left edge. Lines are padded to the panel width and the panel is
// cut to the region height.
func PanelLayer(r Region, st PanelStyles, sections ...Section) *lipgloss.Layer {
	w, h := r.Rect.Dx()-1, r.Rect.Dy()
	if w <= 0 || h <= 0 {
		return lipgloss.NewLayer("").X(r.Rect.Min.X).Y(r.Rect.Min.Y).Z(1).ID(r.Name)
	}

	var lines []string
	for i, sec := range sections {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, st.Title.Render(sec.Title))
		lines = append(lines, st.Rule.Render(strings.Repeat("─", max(w-1, 0))))
		lines = append(lines, sec.Lines...)
	}
	for len(lines) < h {
		lines = append(lines, "")
	}
	lines = lines[:h]
	for i, l := range lines {
		lines[i] = padLine(l, w, st.Pad)
	}

	content := strings.Join(lines, "\n")
	return lipgloss.NewLayer(content).X(r.Rect.Min.X + 1).Y(r.Rect.Min.Y).Z(1).ID(r.Name)
}

// padLine right-pads an already styled line to width with pad, or
// truncates it when it is wider.
func padLine(s string, width int, pad lipgloss.Style) string {
	vis := lipgloss.Width(s)
	if vis > width {
		return lipgloss.NewStyle().MaxWidth(width).Render(s)
	}
	if vis < width {
		s += pad.Render(strings.Repeat(" ", width-vis))
	}
	return s
}
