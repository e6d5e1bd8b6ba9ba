package display

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"fuzzyfind/internal/fuzzy"
)

// Highlight renders path with style applied to every matched rune.
// Positions are byte offsets of rune starts, so the whole rune at each
// offset is styled.
func Highlight(path string, results []fuzzy.MatchResult, style lipgloss.Style) string {
	offsets := make(map[int]bool)
	for _, r := range results {
		for _, pos := range r.Positions {
			offsets[pos] = true
		}
	}
	if len(offsets) == 0 {
		return path
	}

	var b strings.Builder
	for i, c := range path {
		if offsets[i] {
			b.WriteString(style.Render(string(c)))
		} else {
			b.WriteRune(c)
		}
	}
	return b.String()
}
