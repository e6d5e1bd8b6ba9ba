package tui

import (
	"fmt"
	"strings"

	"fuzzyfind/internal/display"
)

// renders the picker
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("fuzzyfind"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	visible := m.visibleRows()
	for i := m.offset; i < len(m.matches) && i < m.offset+visible; i++ {
		match := m.matches[i]
		if i == m.cursor {
			b.WriteString(selectedStyle.Render("> " + match.Path))
		} else {
			b.WriteString("  ")
			b.WriteString(display.Highlight(match.Path, match.Results, matchedStyle))
		}
		b.WriteString("\n")
	}

	if len(m.matches) == 0 {
		b.WriteString(statusStyle.Render("  no matches"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(statusStyle.Render(fmt.Sprintf("%d/%d", len(m.matches), len(m.candidates))))
	b.WriteString("  ")
	b.WriteString(helpStyle.Render("enter select, esc quit"))
	b.WriteString("\n")

	return b.String()
}
