package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fuzzyfind/internal/fuzzy"
)

func testCandidates() []string {
	return []string{
		"main.go",
		"docs/readme.md",
		"internal/fuzzy/matcher.go",
	}
}

func typeString(t *testing.T, m Model, s string) Model {
	t.Helper()
	for _, c := range s {
		updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{c}})
		var ok bool
		m, ok = updated.(Model)
		require.True(t, ok)
	}
	return m
}

func TestModelShowsAllCandidatesForEmptyQuery(t *testing.T) {
	m := NewModel(testCandidates(), fuzzy.MatchOptions{MatchPosition: true})
	assert.Len(t, m.matches, 3)
}

func TestModelFiltersOnInput(t *testing.T) {
	m := NewModel(testCandidates(), fuzzy.MatchOptions{MatchPosition: true})

	m = typeString(t, m, "go")
	assert.Len(t, m.matches, 2)
	for _, match := range m.matches {
		assert.NotEmpty(t, match.Results)
	}

	m = typeString(t, m, "zzz")
	assert.Empty(t, m.matches)
}

func TestModelCursorAndSelection(t *testing.T) {
	m := NewModel(testCandidates(), fuzzy.MatchOptions{MatchPosition: true})

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = updated.(Model)
	assert.Equal(t, 1, m.cursor)

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)
	assert.Equal(t, "docs/readme.md", m.Selection())
}

func TestModelQuitWithoutSelection(t *testing.T) {
	m := NewModel(testCandidates(), fuzzy.MatchOptions{MatchPosition: true})

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = updated.(Model)
	assert.Empty(t, m.Selection())
}

func TestModelCursorResetsOnRefilter(t *testing.T) {
	m := NewModel(testCandidates(), fuzzy.MatchOptions{MatchPosition: true})

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = updated.(Model)
	require.Equal(t, 1, m.cursor)

	m = typeString(t, m, "go")
	assert.Equal(t, 0, m.cursor)
}

func TestModelViewListsMatches(t *testing.T) {
	m := NewModel(testCandidates(), fuzzy.MatchOptions{MatchPosition: true})

	view := m.View()
	assert.Contains(t, view, "main.go")
	assert.Contains(t, view, "3/3")
}
