package cellbuf

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// Styles maps style keys to lipgloss styles.
type Styles map[StyleKey]lipgloss.Style

// Render converts the buffer into a styled string.
//
// Consecutive cells sharing a StyleKey are merged into one run and
// rendered with a single Style.Render call. Keys missing from styles
// render as plain text. Rows are joined with "\n"; an empty buffer
// renders as "".
func (b *Buffer) Render(styles Styles) string {
	if b.W == 0 || b.H == 0 {
		return ""
	}
	var out strings.Builder
	run := make([]rune, 0, b.W)
	for y, row := range b.Cells {
		if y > 0 {
			out.WriteByte('\n')
		}
		run = run[:0]
		style := row[0].Style
		for _, cell := range row {
			if cell.Style != style {
				writeRun(&out, styles, style, run)
				run = run[:0]
				style = cell.Style
			}
			run = append(run, cell.Ch)
		}
		writeRun(&out, styles, style, run)
	}
	return out.String()
}

func writeRun(out *strings.Builder, styles Styles, key StyleKey, run []rune) {
	if s, ok := styles[key]; ok {
		out.WriteString(s.Render(string(run)))
		return
	}
	out.WriteString(string(run))
}
