// Package colhead implements an interactive table-column header: an optional
// checkbox, an optional filter input, and an optional sort toggle composed in
// a single header cell. The owning table configures capabilities, receives
// notifications, and sets sort state back onto the header, closing the loop.
package colhead

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Type is the structural role of a column.
type Type int

const (
	TypeDefault Type = iota
	TypeNumeric
	TypeCheckbox
)

type segKind int

const (
	segCheckbox segKind = iota
	segFilter
	segTitle
	segToggle
)

type segment struct {
	kind segKind
	text string
}

var (
	titleStyle       = lipgloss.NewStyle().Bold(true)
	activeTitleStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	toggleStyle      = lipgloss.NewStyle().Bold(true)
)

// Model is a single column header. Capability flags are set by the owner;
// runtime state moves in response to gestures and to the owner writing
// sort state back after it re-sorts.
type Model struct {
	// Key identifies the column to its owner. Title is the default
	// content slot. Width is layout advice for the owning table.
	Key   string
	Title string
	Width int

	colType             Type
	sortable            bool
	filterable          bool
	filterCaseSensitive bool
	filterLabel         string

	sorted           bool
	sortedDescending bool
	withSortButton   bool

	checkbox        Checkbox
	defaultCheckbox *CheckButton
	filter          FilterField
	toggle          SortToggle

	checkboxChanged bool
	toggleChanged   bool
}

// New creates a header with default child widgets wired.
func New(key, title string) *Model {
	m := &Model{
		Key:             key,
		Title:           title,
		defaultCheckbox: NewCheckButton(),
		toggle:          NewIconToggle(),
	}
	m.filter = NewTextFilter("")
	m.checkbox = m.defaultCheckbox
	m.checkbox.Bind(m.noteCheckboxChange)
	m.toggle.Bind(m.noteToggleChange)
	return m
}

func (m *Model) noteCheckboxChange() { m.checkboxChanged = true }
func (m *Model) noteToggleChange()   { m.toggleChanged = true }

func emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

// Configuration surface.

func (m *Model) SetType(t Type)                { m.colType = t }
func (m *Model) SetSortable(v bool)            { m.sortable = v }
func (m *Model) SetFilterable(v bool)          { m.filterable = v }
func (m *Model) SetFilterCaseSensitive(v bool) { m.filterCaseSensitive = v }

// SetFilterLabel sets the display label of the filter field. Purely
// cosmetic.
func (m *Model) SetFilterLabel(label string) {
	m.filterLabel = label
	if tf, ok := m.filter.(*TextFilter); ok {
		tf.SetLabel(label)
	}
}

func (m *Model) Type() Type                { return m.colType }
func (m *Model) Sortable() bool            { return m.sortable }
func (m *Model) Filterable() bool          { return m.filterable }
func (m *Model) FilterCaseSensitive() bool { return m.filterCaseSensitive }
func (m *Model) FilterLabel() string       { return m.filterLabel }

// Runtime state. Setters are owner-driven and never emit notifications.

// SetSorted records whether the owner currently sorts by this column and
// recomputes sort-button visibility, even when the value is unchanged. This
// keeps the toggle visible on the active sort column and hides it when sort
// moves elsewhere, without the owner managing visibility itself.
func (m *Model) SetSorted(v bool) {
	m.sorted = v
	m.withSortButton = m.sortable && m.sorted
}

// SetSortedDescending assigns the direction and mirrors it into the toggle
// without firing its change listener.
func (m *Model) SetSortedDescending(v bool) {
	m.sortedDescending = v
	m.toggle.SetPressed(v)
}

// SetSortState is the batch form: both properties land, then visibility is
// recomputed once.
func (m *Model) SetSortState(sorted, descending bool) {
	m.sortedDescending = descending
	m.toggle.SetPressed(descending)
	m.sorted = sorted
	m.withSortButton = m.sortable && m.sorted
}

func (m *Model) Sorted() bool           { return m.sorted }
func (m *Model) SortedDescending() bool { return m.sortedDescending }
func (m *Model) WithSortButton() bool   { return m.withSortButton }

// Slots.

// SetCheckboxes supplies the checkbox slot. The previously effective
// checkbox is unbound first, so swapping content never leaves a stale
// listener behind. When more than one checkbox is supplied only the first
// is wired; with none, the built-in default takes over.
func (m *Model) SetCheckboxes(cbs ...Checkbox) {
	if m.checkbox != nil {
		m.checkbox.Bind(nil)
	}
	if len(cbs) > 0 && cbs[0] != nil {
		m.checkbox = cbs[0]
	} else {
		m.checkbox = m.defaultCheckbox
	}
	m.checkbox.Bind(m.noteCheckboxChange)
}

// EffectiveCheckbox returns the checkbox currently wired for changes.
func (m *Model) EffectiveCheckbox() Checkbox { return m.checkbox }

// SetFilterField supplies the filter-field slot; nil restores the default.
func (m *Model) SetFilterField(f FilterField) {
	if f == nil {
		f = NewTextFilter(m.filterLabel)
	}
	m.filter = f
}

// Filter returns the effective filter field.
func (m *Model) Filter() FilterField { return m.filter }

// SetSortToggle supplies the sort-toggle slot; nil restores the default.
func (m *Model) SetSortToggle(t SortToggle) {
	m.toggle.Bind(nil)
	if t == nil {
		t = NewIconToggle()
	}
	m.toggle = t
	m.toggle.SetPressed(m.sortedDescending)
	m.toggle.Bind(m.noteToggleChange)
}

// SetSortIcons overrides the ascending/descending icons of the default
// toggle. No-op when a custom toggle is slotted.
func (m *Model) SetSortIcons(asc, desc string) {
	if it, ok := m.toggle.(*IconToggle); ok {
		it.AscIcon = asc
		it.DescIcon = desc
	}
}

// Gestures.

// ClickHeader handles a click on the header body: it reveals or hides the
// sort toggle. Clicks on the toggle itself must go through ClickSortToggle
// instead and never reach this path.
func (m *Model) ClickHeader() {
	m.withSortButton = !m.withSortButton
}

// ClickSortToggle handles a click on the sort toggle: the toggle flips, the
// new direction lands on the header, and only then is the notification
// emitted, so payload and property agree when the owner observes it.
func (m *Model) ClickSortToggle() tea.Cmd {
	if !m.sortable {
		return nil
	}
	m.toggle.Toggle()
	if !m.toggleChanged {
		return nil
	}
	m.toggleChanged = false
	m.sortedDescending = m.toggle.Pressed()
	return emit(SortMsg{Column: m, Descending: m.sortedDescending})
}

// Click dispatches a click at local cell offset x. Only the sort toggle
// swallows the click; everything else also counts as a header-body click,
// so checking the checkbox or focusing the filter flips the sort button
// just like clicking empty cell space does.
func (m *Model) Click(x int) tea.Cmd {
	kind := segTitle
	cum := 0
	for _, seg := range m.segments(false) {
		w := lipgloss.Width(seg.text)
		if x < cum+w {
			kind = seg.kind
			break
		}
		cum += w + 1
	}
	switch kind {
	case segToggle:
		return m.ClickSortToggle()
	case segCheckbox:
		cmd := m.ToggleCheckbox()
		m.ClickHeader()
		return cmd
	case segFilter:
		m.FocusFilter()
		m.ClickHeader()
		return nil
	default:
		m.ClickHeader()
		return nil
	}
}

// ToggleCheckbox handles the check gesture on the effective checkbox.
func (m *Model) ToggleCheckbox() tea.Cmd {
	if !m.Affordances().Checkbox || m.checkbox == nil {
		return nil
	}
	m.checkbox.Toggle()
	if !m.checkboxChanged {
		return nil
	}
	m.checkboxChanged = false
	checked, determinate := m.checkbox.Checked()
	if !determinate {
		checked = false
	}
	return emit(CheckedMsg{Column: m, Checked: checked})
}

// FocusFilter gives the filter field keyboard focus.
func (m *Model) FocusFilter() {
	if m.Affordances().Filter && m.filter != nil {
		m.filter.Focus()
	}
}

// BlurFilter removes focus from the filter field.
func (m *Model) BlurFilter() {
	if m.filter != nil {
		m.filter.Blur()
	}
}

// FilterFocused reports whether the filter field currently has focus.
func (m *Model) FilterFocused() bool {
	return m.filter != nil && m.filter.Focused()
}

// Update routes messages to the focused filter field. Every key pressed
// while the filter has focus produces a FilterKeyMsg; keys that change the
// text additionally produce a FilterInputMsg, in that order.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.filter != nil {
			return m.filter.Update(msg)
		}
		return nil
	}
	if !m.Affordances().Filter || m.filter == nil || !m.filter.Focused() {
		return nil
	}
	cmds := []tea.Cmd{
		emit(FilterKeyMsg{Column: m, Field: m.filter, Key: key.String()}),
	}
	before := m.filter.Value()
	if cmd := m.filter.Update(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if after := m.filter.Value(); after != before {
		cmds = append(cmds, emit(FilterInputMsg{
			Column:        m,
			Field:         m.filter,
			Text:          after,
			CaseSensitive: m.filterCaseSensitive,
		}))
	}
	return tea.Sequence(cmds...)
}

// segments lists the rendered parts in their fixed order: checkbox, filter,
// title, sort toggle. Omitted affordances contribute nothing.
func (m *Model) segments(active bool) []segment {
	aff := m.Affordances()
	var segs []segment
	if aff.Checkbox && m.checkbox != nil {
		segs = append(segs, segment{segCheckbox, m.checkbox.View()})
	}
	if aff.Filter && m.filter != nil {
		segs = append(segs, segment{segFilter, m.filter.View()})
	}
	ts := titleStyle
	if active {
		ts = activeTitleStyle
	}
	segs = append(segs, segment{segTitle, ts.Render(m.Title)})
	if aff.SortToggleShown {
		segs = append(segs, segment{segToggle, toggleStyle.Render(m.toggle.View())})
	}
	return segs
}

// View renders the header cell contents.
func (m *Model) View(active bool) string {
	segs := m.segments(active)
	out := ""
	for i, seg := range segs {
		if i > 0 {
			out += " "
		}
		out += seg.text
	}
	return out
}
