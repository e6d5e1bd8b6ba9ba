package tui

import "github.com/charmbracelet/bubbles/key"

// plain letters stay free for the query input, so only arrows and
// control chords are bound
type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:     key.NewBinding(key.WithKeys("up", "ctrl+p"), key.WithHelp("up", "move up")),
		Down:   key.NewBinding(key.WithKeys("down", "ctrl+n"), key.WithHelp("down", "move down")),
		Select: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		Quit:   key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "quit")),
	}
}
