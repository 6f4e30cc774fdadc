package colhead

import (
	"reflect"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// collect executes a command and flattens batch/sequence containers into
// the plain messages they would deliver.
func collect(t *testing.T, cmd tea.Cmd) []tea.Msg {
	t.Helper()
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if msg == nil {
		return nil
	}
	v := reflect.ValueOf(msg)
	if v.Kind() == reflect.Slice && v.Type().Elem() == reflect.TypeOf((tea.Cmd)(nil)) {
		var out []tea.Msg
		for i := 0; i < v.Len(); i++ {
			inner, _ := v.Index(i).Interface().(tea.Cmd)
			out = append(out, collect(t, inner)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func typeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestSortButtonFollowsSorted(t *testing.T) {
	for _, sortable := range []bool{false, true} {
		for _, sorted := range []bool{false, true} {
			m := New("name", "name")
			m.SetSortable(sortable)
			m.SetSorted(sorted)
			assert.Equal(t, sortable && sorted, m.WithSortButton(),
				"sortable=%v sorted=%v", sortable, sorted)
		}
	}
}

func TestSetSortedRecomputesEvenWhenUnchanged(t *testing.T) {
	m := New("name", "name")
	m.SetSortable(true)
	m.SetSorted(true)
	require.True(t, m.WithSortButton())

	// A header click hides the button; re-setting sorted to the same
	// value still forces the recompute.
	m.ClickHeader()
	require.False(t, m.WithSortButton())
	m.SetSorted(true)
	assert.True(t, m.WithSortButton())
}

func TestHeaderClickTogglesSortButton(t *testing.T) {
	m := New("name", "name")
	m.SetSortable(true)

	m.ClickHeader()
	assert.True(t, m.WithSortButton())
	m.ClickHeader()
	assert.False(t, m.WithSortButton())
}

func TestSortToggleClickDoesNotFlipSortButton(t *testing.T) {
	m := New("name", "name")
	m.SetSortable(true)
	m.SetSorted(true)
	require.True(t, m.WithSortButton())

	msgs := collect(t, m.ClickSortToggle())
	require.Len(t, msgs, 1)
	assert.True(t, m.WithSortButton(), "toggle click must not reach the header-click path")
}

func TestSortToggleEmitsAfterStateUpdate(t *testing.T) {
	m := New("name", "name")
	m.SetSortable(true)
	require.False(t, m.SortedDescending())

	msgs := collect(t, m.ClickSortToggle())
	require.Len(t, msgs, 1)
	sortMsg, ok := msgs[0].(SortMsg)
	require.True(t, ok)
	assert.True(t, sortMsg.Descending)
	assert.Same(t, m, sortMsg.Column)
	// The payload and the property agree at delivery time.
	assert.True(t, m.SortedDescending())
}

func TestSortToggleRequiresSortable(t *testing.T) {
	m := New("name", "name")
	assert.Nil(t, m.ClickSortToggle())
	assert.False(t, m.SortedDescending())
}

func TestProgrammaticSortStateEmitsNothing(t *testing.T) {
	m := New("name", "name")
	m.SetSortable(true)
	m.SetSortedDescending(true)
	m.SetSortState(true, true)

	// The only way to observe an emission is a real toggle gesture; it
	// flips away from the programmatic value, proving no change was
	// queued by the setters.
	msgs := collect(t, m.ClickSortToggle())
	require.Len(t, msgs, 1)
	assert.False(t, msgs[0].(SortMsg).Descending)
}

func TestFilterInputMirrorsCaseSensitivityAtEmission(t *testing.T) {
	m := New("name", "name")
	m.SetFilterable(true)
	m.SetFilterCaseSensitive(true)
	m.FocusFilter()

	var first FilterInputMsg
	for _, r := range "abc" {
		for _, msg := range collect(t, m.Update(typeKey(r))) {
			if in, ok := msg.(FilterInputMsg); ok {
				first = in
			}
		}
	}
	require.Equal(t, "abc", first.Text)
	assert.True(t, first.CaseSensitive)

	m.SetFilterCaseSensitive(false)
	var second FilterInputMsg
	for _, msg := range collect(t, m.Update(typeKey('d'))) {
		if in, ok := msg.(FilterInputMsg); ok {
			second = in
		}
	}
	require.Equal(t, "abcd", second.Text)
	assert.False(t, second.CaseSensitive)
	// The already-delivered payload is unaffected.
	assert.True(t, first.CaseSensitive)
	assert.Equal(t, "abc", first.Text)
}

func TestFilterKeyCarriesRawKey(t *testing.T) {
	m := New("name", "name")
	m.SetFilterable(true)
	m.FocusFilter()

	msgs := collect(t, m.Update(tea.KeyMsg{Type: tea.KeyEsc}))
	require.NotEmpty(t, msgs)
	keyMsg, ok := msgs[0].(FilterKeyMsg)
	require.True(t, ok)
	assert.Equal(t, "esc", keyMsg.Key)
	assert.Same(t, m, keyMsg.Column)
}

func TestFilterKeyPrecedesFilterInput(t *testing.T) {
	m := New("name", "name")
	m.SetFilterable(true)
	m.FocusFilter()

	msgs := collect(t, m.Update(typeKey('a')))
	require.GreaterOrEqual(t, len(msgs), 2)
	_, ok := msgs[0].(FilterKeyMsg)
	assert.True(t, ok, "keydown first")
	last, ok := msgs[len(msgs)-1].(FilterInputMsg)
	require.True(t, ok, "input last")
	assert.Equal(t, "a", last.Text)
}

func TestFilterIgnoredWithoutFocus(t *testing.T) {
	m := New("name", "name")
	m.SetFilterable(true)
	assert.Nil(t, m.Update(typeKey('a')))
}

// stuckCheckbox reports a change without ever committing a value,
// imitating a widget whose checked state is missing at change time.
type stuckCheckbox struct {
	onChange func()
	toggles  int
}

func (c *stuckCheckbox) Checked() (bool, bool) { return false, false }
func (c *stuckCheckbox) Toggle() {
	c.toggles++
	if c.onChange != nil {
		c.onChange()
	}
}
func (c *stuckCheckbox) Bind(fn func()) { c.onChange = fn }
func (c *stuckCheckbox) View() string   { return "[?]" }

func TestIndeterminateCheckboxNormalizesToFalse(t *testing.T) {
	m := New("sel", "")
	m.SetType(TypeCheckbox)
	m.SetCheckboxes(&stuckCheckbox{})

	msgs := collect(t, m.ToggleCheckbox())
	require.Len(t, msgs, 1)
	checked, ok := msgs[0].(CheckedMsg)
	require.True(t, ok)
	assert.False(t, checked.Checked)
}

func TestCheckboxEmitsChecked(t *testing.T) {
	m := New("sel", "")
	m.SetType(TypeCheckbox)

	msgs := collect(t, m.ToggleCheckbox())
	require.Len(t, msgs, 1)
	assert.True(t, msgs[0].(CheckedMsg).Checked)

	msgs = collect(t, m.ToggleCheckbox())
	require.Len(t, msgs, 1)
	assert.False(t, msgs[0].(CheckedMsg).Checked)
}

func TestCheckboxGestureRequiresCheckboxType(t *testing.T) {
	m := New("name", "name")
	assert.Nil(t, m.ToggleCheckbox())
}

func TestSwappedCheckboxDetachesOldListener(t *testing.T) {
	m := New("sel", "")
	m.SetType(TypeCheckbox)

	old := NewCheckButton()
	m.SetCheckboxes(old)
	require.Len(t, collect(t, m.ToggleCheckbox()), 1)

	replacement := NewCheckButton()
	m.SetCheckboxes(replacement)

	// A change on the detached widget must not leak into the next
	// notification.
	old.Toggle()
	msgs := collect(t, m.ToggleCheckbox())
	require.Len(t, msgs, 1)
	assert.True(t, msgs[0].(CheckedMsg).Checked)
	v, ok := replacement.Checked()
	require.True(t, ok)
	assert.True(t, v)
}

func TestFirstCheckboxWins(t *testing.T) {
	m := New("sel", "")
	m.SetType(TypeCheckbox)

	first := NewCheckButton()
	second := NewCheckButton()
	m.SetCheckboxes(first, second)

	msgs := collect(t, m.ToggleCheckbox())
	require.Len(t, msgs, 1)
	v, ok := first.Checked()
	require.True(t, ok)
	assert.True(t, v, "first supplied checkbox is the wired one")
	v, _ = second.Checked()
	assert.False(t, v)
}

func TestClickDispatchesToggleZone(t *testing.T) {
	m := New("name", "name")
	m.SetSortable(true)
	m.SetSorted(true)
	require.True(t, m.WithSortButton())

	// The toggle is the last segment; click its first cell.
	view := m.View(false)
	msgs := collect(t, m.Click(widthOf(view)-1))
	require.Len(t, msgs, 1)
	_, ok := msgs[0].(SortMsg)
	assert.True(t, ok)
	assert.True(t, m.WithSortButton(), "suppressed from the header path")
}

func TestClickHeaderZoneTogglesButton(t *testing.T) {
	m := New("name", "name")
	m.SetSortable(true)

	assert.Nil(t, m.Click(0))
	assert.True(t, m.WithSortButton())
}

func widthOf(s string) int {
	w := 0
	esc := false
	for _, r := range s {
		if esc {
			if r == 'm' {
				esc = false
			}
			continue
		}
		if r == '\x1b' {
			esc = true
			continue
		}
		w++
	}
	return w
}
