package model

// Bubble Tea message types

// ErrorMsg represents an error message.
type ErrorMsg struct {
	Err error
}

// ItemsLoadedMsg is sent when inventory rows are loaded.
type ItemsLoadedMsg struct {
	Items []Item
	Prefs TablePrefs
}

// PrefsSavedMsg is sent after preferences are persisted.
type PrefsSavedMsg struct{}

// Mode represents the current interaction mode.
type Mode int

const (
	ModeNav Mode = iota
	ModeFilter
)
