package colhead

// Notification messages emitted by a header. They are returned as tea.Cmds
// from the gesture methods and bubble to the owning table through the normal
// Update chain. None of them are produced by programmatic property setters.

// CheckedMsg is sent when the effective checkbox changes.
type CheckedMsg struct {
	Column *Model
	// Checked is false when the source checkbox reported no committed
	// value.
	Checked bool
}

// FilterInputMsg is sent when the filter field's text changes.
type FilterInputMsg struct {
	Column *Model
	Field  FilterField
	Text   string
	// CaseSensitive mirrors the column's flag at the moment of emission.
	CaseSensitive bool
}

// FilterKeyMsg is sent for every key pressed while the filter field is
// focused, whether or not the text changed.
type FilterKeyMsg struct {
	Column *Model
	Field  FilterField
	// Key is the raw key identifier as reported by the terminal.
	Key string
}

// SortMsg is sent when the sort toggle changes direction. By the time the
// owner sees it, SortedDescending already reports the new direction.
type SortMsg struct {
	Column     *Model
	Descending bool
}
