package display

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"fuzzyfind/internal/fuzzy"
)

var testStyle = lipgloss.NewStyle().Bold(true)

func TestHighlightWithoutPositions(t *testing.T) {
	// no positions collected means nothing to style
	assert.Equal(t, "main.go", Highlight("main.go", nil, testStyle))
	assert.Equal(t, "main.go", Highlight("main.go", []fuzzy.MatchResult{{Score: 20}}, testStyle))
}

func TestHighlightKeepsEveryCharacter(t *testing.T) {
	results := []fuzzy.MatchResult{
		{Score: 20, Positions: []int{0, 1, 2, 3}},
		{Score: 3, Positions: []int{5, 6}},
	}

	out := Highlight("main.go", results, testStyle)
	// styling must never drop or reorder path characters
	stripped := stripANSI(out)
	assert.Equal(t, "main.go", stripped)
}

func stripANSI(s string) string {
	var b []rune
	inEscape := false
	for _, c := range s {
		switch {
		case inEscape:
			if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
				inEscape = false
			}
		case c == '\x1b':
			inEscape = true
		default:
			b = append(b, c)
		}
	}
	return string(b)
}
