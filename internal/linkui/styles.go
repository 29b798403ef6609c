package linkui

import (
	"image/color"

	"charm.land/lipgloss/v2"
	"github.com/wesen/linkgraph/internal/config"
	"github.com/wesen/linkgraph/pkg/cellbuf"
	"github.com/wesen/linkgraph/pkg/events"
	"github.com/wesen/linkgraph/pkg/tealayout"
)

// c is shorthand for lipgloss.Color.
func c(hex string) color.Color { return lipgloss.Color(hex) }

// cellbuf style keys for the canvas layer.
const (
	styleBG cellbuf.StyleKey = iota
	styleGrid
	styleEdge
	stylePreview
	styleNodeBase
	styleNodeSelected
	styleNodeMoving
	styleHint
)

// Chrome colors. The graph palette comes from the configuration.
var (
	chromeBG     = c("#101010")
	chromeText   = c("#BBBBBB")
	chromeAccent = c("#00FFFF")
	chromeDim    = c("#555555")
)

type styles struct {
	canvas  cellbuf.Styles
	toolbar lipgloss.Style
	footer  lipgloss.Style
	sep     lipgloss.Style
	modal   lipgloss.Style
	panel   tealayout.PanelStyles
	value   lipgloss.Style
}

func newStyles(cfg *config.Config) styles {
	bg := c(cfg.Canvas.Background)
	on := func(fg string) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(c(fg)).Background(bg)
	}
	return styles{
		canvas: cellbuf.Styles{
			styleBG:           on(cfg.Canvas.GridColor),
			styleGrid:         on(cfg.Canvas.GridColor),
			styleEdge:         on(cfg.Edge.Color),
			stylePreview:      on(cfg.Node.SelectedColor).Faint(true),
			styleNodeBase:     on(cfg.Node.Color),
			styleNodeSelected: on(cfg.Node.SelectedColor),
			styleNodeMoving:   on(cfg.Node.MovingColor),
			styleHint:         lipgloss.NewStyle().Foreground(chromeDim).Background(bg).Italic(true),
		},
		toolbar: lipgloss.NewStyle().Background(chromeBG).Foreground(chromeAccent).Bold(true),
		footer:  lipgloss.NewStyle().Background(chromeBG).Foreground(chromeText),
		sep:     lipgloss.NewStyle().Background(chromeBG).Foreground(chromeDim),
		modal: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(chromeAccent).
			Background(chromeBG).
			Padding(1, 2),
		panel: tealayout.PanelStyles{
			Title: lipgloss.NewStyle().Foreground(chromeAccent).Background(chromeBG).Bold(true),
			Rule:  lipgloss.NewStyle().Foreground(chromeDim).Background(chromeBG),
			Text:  lipgloss.NewStyle().Foreground(chromeText).Background(chromeBG),
			Pad:   lipgloss.NewStyle().Background(chromeBG),
		},
		value: lipgloss.NewStyle().Foreground(chromeAccent).Background(chromeBG),
	}
}

// roleStyle maps a node's display role to its canvas style.
func roleStyle(r events.Role) cellbuf.StyleKey {
	switch r {
	case events.RoleSelected:
		return styleNodeSelected
	case events.RoleMoving:
		return styleNodeMoving
	default:
		return styleNodeBase
	}
}
