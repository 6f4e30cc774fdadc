package ui

import "github.com/charmbracelet/bubbles/key"

// GState represents the state for "gg" navigation.
type GState int

const (
	GStateIdle GState = iota
	GStateFirstG
)

// KeyMap defines all keybindings for nav mode.
type KeyMap struct {
	Up            key.Binding
	Down          key.Binding
	Top           key.Binding
	Bottom        key.Binding
	HalfPageDown  key.Binding
	HalfPageUp    key.Binding
	NextColumn    key.Binding
	PrevColumn    key.Binding
	ToggleButton  key.Binding
	SortToggle    key.Binding
	Filter        key.Binding
	CaseToggle    key.Binding
	ClearFilter   key.Binding
	SelectAll     key.Binding
	SelectRow     key.Binding
	Quit          key.Binding
	Help          key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "down"),
		),
		Top: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("gg", "top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G"),
			key.WithHelp("G", "bottom"),
		),
		HalfPageDown: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("ctrl+d", "½ page down"),
		),
		HalfPageUp: key.NewBinding(
			key.WithKeys("ctrl+u"),
			key.WithHelp("ctrl+u", "½ page up"),
		),
		NextColumn: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next col"),
		),
		PrevColumn: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev col"),
		),
		ToggleButton: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "sort button"),
		),
		SortToggle: key.NewBinding(
			key.WithKeys("S"),
			key.WithHelp("S", "flip sort"),
		),
		Filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "filter col"),
		),
		CaseToggle: key.NewBinding(
			key.WithKeys("I"),
			key.WithHelp("I", "case sensitivity"),
		),
		ClearFilter: key.NewBinding(
			key.WithKeys("N"),
			key.WithHelp("N", "clear filter"),
		),
		SelectAll: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "select all"),
		),
		SelectRow: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "select row"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}
