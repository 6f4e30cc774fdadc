package colhead

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Checkbox is the capability surface a header needs from a checkbox widget:
// a boolean checked state (possibly indeterminate), a toggle gesture, and a
// single change listener. Any compliant widget can be slotted in.
type Checkbox interface {
	// Checked reports the current value. determinate is false when the
	// widget has no committed value yet (tri-state checkboxes).
	Checked() (value, determinate bool)
	// Toggle flips the value and fires the bound change listener.
	Toggle()
	// Bind registers the change listener. Passing nil detaches it.
	// At most one listener is held at a time.
	Bind(fn func())
	View() string
}

// FilterField is the capability surface for a filter input widget.
type FilterField interface {
	Value() string
	SetValue(string)
	Focus()
	Blur()
	Focused() bool
	Update(msg tea.Msg) tea.Cmd
	View() string
}

// SortToggle is the capability surface for a sort-direction toggle.
// SetPressed is silent; only Toggle fires the change listener, so
// programmatic assignment never masquerades as user interaction.
type SortToggle interface {
	Pressed() bool
	SetPressed(bool)
	Toggle()
	Bind(fn func())
	View() string
}

// CheckButton is the default Checkbox implementation.
type CheckButton struct {
	state    *bool
	onChange func()
}

// NewCheckButton creates an unchecked checkbox.
func NewCheckButton() *CheckButton {
	v := false
	return &CheckButton{state: &v}
}

// NewIndeterminateCheckButton creates a checkbox with no committed value.
func NewIndeterminateCheckButton() *CheckButton {
	return &CheckButton{}
}

func (c *CheckButton) Checked() (bool, bool) {
	if c.state == nil {
		return false, false
	}
	return *c.state, true
}

// SetChecked assigns the value without firing the change listener.
func (c *CheckButton) SetChecked(v bool) {
	c.state = &v
}

// SetIndeterminate clears the committed value without firing the change
// listener.
func (c *CheckButton) SetIndeterminate() {
	c.state = nil
}

// Toggle flips the value. An indeterminate checkbox commits to checked,
// matching how a user click resolves tri-state.
func (c *CheckButton) Toggle() {
	var next bool
	if c.state == nil {
		next = true
	} else {
		next = !*c.state
	}
	c.state = &next
	if c.onChange != nil {
		c.onChange()
	}
}

func (c *CheckButton) Bind(fn func()) {
	c.onChange = fn
}

func (c *CheckButton) View() string {
	v, ok := c.Checked()
	switch {
	case !ok:
		return "[-]"
	case v:
		return "[x]"
	default:
		return "[ ]"
	}
}

// TextFilter is the default FilterField, backed by a bubbles text input.
type TextFilter struct {
	input textinput.Model
}

// NewTextFilter creates a filter field with the given placeholder label.
func NewTextFilter(label string) *TextFilter {
	in := textinput.New()
	in.Placeholder = label
	in.Prompt = "/"
	in.CharLimit = 64
	in.Width = 12
	return &TextFilter{input: in}
}

func (f *TextFilter) Value() string     { return f.input.Value() }
func (f *TextFilter) SetValue(v string) { f.input.SetValue(v) }
func (f *TextFilter) Focus()            { f.input.Focus() }
func (f *TextFilter) Blur()             { f.input.Blur() }
func (f *TextFilter) Focused() bool     { return f.input.Focused() }

// SetLabel updates the placeholder shown while the field is empty.
func (f *TextFilter) SetLabel(label string) {
	f.input.Placeholder = label
}

func (f *TextFilter) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return cmd
}

func (f *TextFilter) View() string { return f.input.View() }

// IconToggle is the default SortToggle: one icon per direction, pressed
// meaning descending.
type IconToggle struct {
	pressed  bool
	AscIcon  string
	DescIcon string
	onChange func()
}

// NewIconToggle creates a toggle with the default direction arrows.
func NewIconToggle() *IconToggle {
	return &IconToggle{AscIcon: "↑", DescIcon: "↓"}
}

func (t *IconToggle) Pressed() bool { return t.pressed }

// SetPressed assigns the state without firing the change listener.
func (t *IconToggle) SetPressed(v bool) { t.pressed = v }

// Toggle flips the state and fires the change listener.
func (t *IconToggle) Toggle() {
	t.pressed = !t.pressed
	if t.onChange != nil {
		t.onChange()
	}
}

func (t *IconToggle) Bind(fn func()) {
	t.onChange = fn
}

func (t *IconToggle) View() string {
	if t.pressed {
		return t.DescIcon
	}
	return t.AscIcon
}
