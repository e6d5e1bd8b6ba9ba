package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"fuzzyfind/internal/fuzzy"
	"fuzzyfind/internal/scan"
)

// Model is the interactive picker: a query input over a fixed candidate
// list, refiltered on every keystroke.
type Model struct {
	input      textinput.Model
	keys       keyMap
	opts       fuzzy.MatchOptions
	candidates []string
	matches    []scan.Match
	cursor     int
	offset     int // top of the visible window
	width      int
	height     int
	selected   string
}

func NewModel(candidates []string, opts fuzzy.MatchOptions) Model {
	input := textinput.New()
	input.Placeholder = "type to filter"
	input.Prompt = "> "
	input.Focus()

	m := Model{
		input:      input,
		keys:       defaultKeyMap(),
		opts:       opts,
		candidates: candidates,
		height:     24,
	}
	m.refilter()
	return m
}

// Selection is the path chosen with enter, or empty if the picker was
// dismissed.
func (m Model) Selection() string {
	return m.selected
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.scrollToCursor()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Select):
			if m.cursor < len(m.matches) {
				m.selected = m.matches[m.cursor].Path
			}
			return m, tea.Quit

		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			m.scrollToCursor()
			return m, nil

		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.matches)-1 {
				m.cursor++
			}
			m.scrollToCursor()
			return m, nil
		}
	}

	var cmd tea.Cmd
	before := m.input.Value()
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.refilter()
	}
	return m, cmd
}

// refilter rebuilds the pattern from the current query and rescans the
// candidate list. Pattern construction is cheap, so a rebuild per
// keystroke is fine.
func (m *Model) refilter() {
	query := m.input.Value()

	var matches []scan.Match
	if strings.TrimSpace(query) == "" {
		matches = make([]scan.Match, 0, len(m.candidates))
		for _, path := range m.candidates {
			matches = append(matches, scan.Match{Path: path})
		}
	} else {
		pattern := fuzzy.NewPattern(query, m.opts)
		for _, path := range m.candidates {
			if results, ok := pattern.Matches([]byte(path)); ok {
				matches = append(matches, scan.Match{Path: path, Results: results})
			}
		}
	}

	m.matches = matches
	m.cursor = 0
	m.offset = 0
}

func (m Model) visibleRows() int {
	rows := m.height - 6
	if rows < 1 {
		rows = 1
	}
	return rows
}

func (m *Model) scrollToCursor() {
	visible := m.visibleRows()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+visible {
		m.offset = m.cursor - visible + 1
	}
}
