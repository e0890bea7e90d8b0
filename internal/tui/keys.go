package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Accept  key.Binding
	Reject  key.Binding
	Undo    key.Binding
	Left    key.Binding
	Right   key.Binding
	Up      key.Binding
	Down    key.Binding
	Release key.Binding
	Reload  key.Binding
	Shuffle key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Accept:  key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "like")),
		Reject:  key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "nope")),
		Undo:    key.NewBinding(key.WithKeys("u", "backspace"), key.WithHelp("u", "undo")),
		Left:    key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "drag left")),
		Right:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "drag right")),
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "drag up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "drag down")),
		Release: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "release")),
		Reload:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload deck")),
		Shuffle: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "shuffle")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Reject, k.Accept, k.Undo, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Reject, k.Accept, k.Undo},
		{k.Left, k.Right, k.Up, k.Down, k.Release},
		{k.Reload, k.Shuffle, k.Help, k.Quit},
	}
}
