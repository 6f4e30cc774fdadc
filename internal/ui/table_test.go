package ui

import (
	"strings"
	"testing"

	"tabulo/internal/colhead"
	"tabulo/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stripANSI removes all ANSI CSI sequences from s.
func stripANSI(s string) string {
	var sb strings.Builder
	inEsc := false
	for _, r := range s {
		if inEsc {
			if r == 'm' {
				inEsc = false
			}
			continue
		}
		if r == '\x1b' {
			inEsc = true
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

func testItems() []model.Item {
	return []model.Item{
		{ID: 1, Name: "Beans", Category: "Coffee", Qty: 42, Price: 14.50, UpdatedOn: "2026-01-10"},
		{ID: 2, Name: "apples", Category: "Fruit", Qty: 7, Price: 0.80, UpdatedOn: "2026-02-01"},
		{ID: 3, Name: "Candles", Category: "Misc", Qty: 100, Price: 3.00, UpdatedOn: "2025-12-24"},
	}
}

func TestApplySortOrdersRows(t *testing.T) {
	m := NewTableModel(testItems())

	m.ApplySort("name", false)
	require.Len(t, m.rows, 3)
	assert.Equal(t, "apples", m.rows[0].Name, "string sort is case folded")
	assert.Equal(t, "Candles", m.rows[2].Name)

	m.ApplySort("qty", true)
	assert.Equal(t, int64(100), m.rows[0].Qty, "numeric columns compare as numbers")
	assert.Equal(t, int64(7), m.rows[2].Qty)
}

func TestApplySortClosesTheLoop(t *testing.T) {
	m := NewTableModel(testItems())
	for _, c := range m.Columns() {
		if c.Key == "price" || c.Key == "name" {
			require.True(t, c.Sortable())
		}
	}

	m.ApplySort("price", false)
	sortedCount := 0
	for _, c := range m.Columns() {
		if c.Sorted() {
			sortedCount++
			assert.Equal(t, "price", c.Key)
			assert.True(t, c.WithSortButton())
		} else {
			assert.False(t, c.WithSortButton(), "col %s", c.Key)
		}
	}
	assert.Equal(t, 1, sortedCount)

	// Sort moves elsewhere; the previous column loses its button.
	m.ApplySort("name", false)
	for _, c := range m.Columns() {
		assert.Equal(t, c.Key == "name", c.Sorted(), "col %s", c.Key)
		assert.Equal(t, c.Key == "name", c.WithSortButton(), "col %s", c.Key)
	}
}

func TestApplyFilterHonorsCaseSensitivity(t *testing.T) {
	m := NewTableModel(testItems())

	m.ApplyFilter("name", "C", true)
	require.Len(t, m.rows, 1, "case sensitive: only Candles")

	m.ApplyFilter("name", "c", true)
	require.Len(t, m.rows, 0)

	m.ApplyFilter("name", "c", false)
	require.Len(t, m.rows, 1)

	require.True(t, m.ClearFilter())
	assert.Len(t, m.rows, 3)
	assert.False(t, m.ClearFilter())
}

func TestSelectAllTracksVisibleRows(t *testing.T) {
	m := NewTableModel(testItems())
	m.ApplyFilter("category", "coffee", false)
	require.Len(t, m.rows, 1)

	m.SetAllSelected(true)
	assert.Equal(t, 1, m.SelectedCount())

	m.ClearFilter()
	m.SetAllSelected(true)
	assert.Equal(t, 3, m.SelectedCount())
	m.SetAllSelected(false)
	assert.Equal(t, 0, m.SelectedCount())
}

func TestMixedSelectionMakesHeaderIndeterminate(t *testing.T) {
	m := NewTableModel(testItems())
	m.ToggleCursorRow()
	cb, ok := m.Columns()[0].EffectiveCheckbox().(*colhead.CheckButton)
	require.True(t, ok)
	_, determinate := cb.Checked()
	assert.False(t, determinate)

	m.SetAllSelected(true)
	v, determinate := cb.Checked()
	assert.True(t, determinate)
	assert.True(t, v)
}

func TestViewRendersHeadersAndRows(t *testing.T) {
	m := NewTableModel(testItems())
	out := stripANSI(m.View(100, 20))

	assert.Contains(t, out, "name")
	assert.Contains(t, out, "category")
	assert.Contains(t, out, "Beans")
	assert.Contains(t, out, "$14.50")
	assert.Contains(t, out, "3 items")
}

func TestColumnAtMapsHeaderClicks(t *testing.T) {
	m := NewTableModel(testItems())
	m.View(100, 20) // establish layout widths

	idx, _, ok := m.ColumnAt(0)
	require.True(t, ok)
	assert.Equal(t, 0, idx, "leftmost click hits the checkbox column")

	total := 0
	for _, w := range m.headerWidths {
		total += w
	}
	_, _, ok = m.ColumnAt(total + 5)
	assert.False(t, ok, "clicks past the last column miss")

	// A click just inside the second cell hits the name column.
	idx, localX, ok := m.ColumnAt(m.headerWidths[0] + 1)
	require.True(t, ok)
	assert.Equal(t, 1, idx)
	assert.Equal(t, 0, localX)
}

func TestPrefsRoundTripThroughTable(t *testing.T) {
	m := NewTableModel(testItems())
	m.ApplySort("qty", true)
	m.ApplyFilter("category", "fruit", false)

	p := m.Prefs()
	fresh := NewTableModel(testItems())
	fresh.ApplyPrefs(p)

	assert.Equal(t, int64(7), fresh.rows[0].Qty)
	require.Len(t, fresh.rows, 1)
	for _, c := range fresh.Columns() {
		assert.Equal(t, c.Key == "qty", c.WithSortButton(), "col %s", c.Key)
	}
	assert.True(t, fresh.Columns()[3].SortedDescending())
}
