package ui

import (
	"fmt"
	"sort"
	"strings"

	"tabulo/internal/colhead"
	"tabulo/internal/model"
	"tabulo/internal/util"

	"github.com/charmbracelet/lipgloss"
)

// TableModel is the owning table: it holds the rows, consumes the header
// notifications, performs the actual sorting/filtering/selection, and writes
// sort state back onto the headers.
type TableModel struct {
	allRows []model.Item
	rows    []model.Item
	cursor  int
	offset  int

	viewportHeight int
	headerWidths   []int

	columns []*colhead.Model
	active  int

	sortKey  string
	sortDesc bool

	filterKey           string
	filterText          string
	filterCaseSensitive bool

	selected map[int64]bool
}

// NewTableModel creates the inventory table with its header columns.
func NewTableModel(rows []model.Item) *TableModel {
	sel := colhead.New("sel", "")
	sel.SetType(colhead.TypeCheckbox)
	sel.Width = 3

	name := colhead.New("name", "name")
	name.SetSortable(true)
	name.SetFilterable(true)
	name.SetFilterLabel("name")
	name.Width = 22

	category := colhead.New("category", "category")
	category.SetSortable(true)
	category.SetFilterable(true)
	category.SetFilterLabel("category")
	category.Width = 16

	qty := colhead.New("qty", "qty")
	qty.SetType(colhead.TypeNumeric)
	qty.SetSortable(true)
	qty.Width = 7

	price := colhead.New("price", "price")
	price.SetType(colhead.TypeNumeric)
	price.SetSortable(true)
	price.Width = 9

	updated := colhead.New("updated", "updated")
	updated.SetSortable(true)
	updated.Width = 12

	return &TableModel{
		allRows:  append([]model.Item(nil), rows...),
		rows:     append([]model.Item(nil), rows...),
		columns:  []*colhead.Model{sel, name, category, qty, price, updated},
		active:   1,
		selected: make(map[int64]bool),
	}
}

// Columns exposes the header models.
func (m *TableModel) Columns() []*colhead.Model { return m.columns }

// ActiveColumn returns the header the keyboard gestures address.
func (m *TableModel) ActiveColumn() *colhead.Model { return m.columns[m.active] }

func (m *TableModel) NextColumn() {
	m.active = (m.active + 1) % len(m.columns)
}

func (m *TableModel) PrevColumn() {
	m.active--
	if m.active < 0 {
		m.active = len(m.columns) - 1
	}
}

// ApplyPrefs restores persisted sort/filter state. This is owner-driven
// property setting, so no notifications fire.
func (m *TableModel) ApplyPrefs(p model.TablePrefs) {
	m.sortKey = p.SortKey
	m.sortDesc = p.SortDesc
	m.filterKey = p.FilterKey
	m.filterText = p.FilterText
	m.filterCaseSensitive = p.CaseSensitive
	for _, c := range m.columns {
		c.SetSortState(c.Key == p.SortKey, p.SortDesc)
		if c.Key == p.FilterKey {
			c.SetFilterCaseSensitive(p.CaseSensitive)
			c.Filter().SetValue(p.FilterText)
		}
	}
	m.rebuild()
}

// Prefs snapshots the current sort/filter state for persistence.
func (m *TableModel) Prefs() model.TablePrefs {
	return model.TablePrefs{
		SortKey:       m.sortKey,
		SortDesc:      m.sortDesc,
		FilterKey:     m.filterKey,
		FilterText:    m.filterText,
		CaseSensitive: m.filterCaseSensitive,
	}
}

// ApplySort reacts to a sort notification: re-sort, then write sorted back
// onto every header so sort-button visibility recomputes across the table.
func (m *TableModel) ApplySort(key string, desc bool) {
	m.sortKey = key
	m.sortDesc = desc
	m.rebuild()
	for _, c := range m.columns {
		c.SetSorted(c.Key == key)
	}
}

// ApplyFilter reacts to a filter-input notification.
func (m *TableModel) ApplyFilter(key, text string, caseSensitive bool) {
	m.filterKey = key
	m.filterText = text
	m.filterCaseSensitive = caseSensitive
	m.rebuild()
}

// ClearFilter drops the filter and empties the filtered column's field.
func (m *TableModel) ClearFilter() bool {
	if m.filterKey == "" {
		return false
	}
	for _, c := range m.columns {
		if c.Key == m.filterKey {
			c.Filter().SetValue("")
			c.BlurFilter()
		}
	}
	m.filterKey = ""
	m.filterText = ""
	m.rebuild()
	return true
}

// SetAllSelected selects or deselects every currently visible row.
func (m *TableModel) SetAllSelected(v bool) {
	for _, r := range m.rows {
		if v {
			m.selected[r.ID] = true
		} else {
			delete(m.selected, r.ID)
		}
	}
	m.syncHeaderCheckbox()
}

// ToggleCursorRow flips selection of the row under the cursor.
func (m *TableModel) ToggleCursorRow() {
	if len(m.rows) == 0 {
		return
	}
	id := m.rows[m.cursor].ID
	if m.selected[id] {
		delete(m.selected, id)
	} else {
		m.selected[id] = true
	}
	m.syncHeaderCheckbox()
}

// syncHeaderCheckbox mirrors row selection into the checkbox column's
// default checkbox: all, none, or indeterminate for a mixed set. These are
// programmatic writes and emit nothing.
func (m *TableModel) syncHeaderCheckbox() {
	cb, ok := m.columns[0].EffectiveCheckbox().(*colhead.CheckButton)
	if !ok {
		return
	}
	n := 0
	for _, r := range m.rows {
		if m.selected[r.ID] {
			n++
		}
	}
	switch {
	case n == 0:
		cb.SetChecked(false)
	case n == len(m.rows):
		cb.SetChecked(true)
	default:
		cb.SetIndeterminate()
	}
}

// SelectedCount reports how many rows are selected, visible or not.
func (m *TableModel) SelectedCount() int { return len(m.selected) }

func (m *TableModel) rebuild() {
	rows := append([]model.Item(nil), m.allRows...)

	if m.filterKey != "" && m.filterText != "" {
		filtered := make([]model.Item, 0, len(rows))
		for _, r := range rows {
			if m.matchesFilter(r) {
				filtered = append(filtered, r)
			}
		}
		rows = filtered
	}

	if m.sortKey != "" {
		sort.SliceStable(rows, func(i, j int) bool {
			c := m.compare(rows[i], rows[j])
			if c == 0 {
				return rows[i].ID > rows[j].ID
			}
			if m.sortDesc {
				return c > 0
			}
			return c < 0
		})
	}

	m.rows = rows
	m.clampCursor()
	m.syncHeaderCheckbox()
}

func (m *TableModel) matchesFilter(it model.Item) bool {
	val := m.getValue(it, m.filterKey)
	text := m.filterText
	if !m.filterCaseSensitive {
		val = strings.ToLower(val)
		text = strings.ToLower(text)
	}
	return strings.Contains(val, text)
}

func (m *TableModel) compare(a, b model.Item) int {
	switch m.sortKey {
	case "qty":
		switch {
		case a.Qty < b.Qty:
			return -1
		case a.Qty > b.Qty:
			return 1
		}
		return 0
	case "price":
		switch {
		case a.Price < b.Price:
			return -1
		case a.Price > b.Price:
			return 1
		}
		return 0
	default:
		left := strings.ToLower(m.getValue(a, m.sortKey))
		right := strings.ToLower(m.getValue(b, m.sortKey))
		return strings.Compare(left, right)
	}
}

func (m *TableModel) getValue(it model.Item, key string) string {
	switch key {
	case "name":
		return it.Name
	case "category":
		return it.Category
	case "qty":
		return fmt.Sprintf("%06d", it.Qty)
	case "price":
		return fmt.Sprintf("%09.2f", it.Price)
	case "updated":
		return it.UpdatedOn
	default:
		return ""
	}
}

func (m *TableModel) clampCursor() {
	if len(m.rows) == 0 {
		m.cursor = 0
		m.offset = 0
		return
	}
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.offset > m.cursor {
		m.offset = m.cursor
	}
}

// ColumnAt maps an x offset on the header line to a column index and a
// local offset inside that column's content, using the widths of the most
// recent render.
func (m *TableModel) ColumnAt(x int) (idx, localX int, ok bool) {
	cum := 0
	for i, w := range m.headerWidths {
		if x < cum+w {
			// Cell content starts after one column of padding.
			local := x - cum - 1
			if local < 0 {
				local = 0
			}
			return i, local, true
		}
		cum += w
	}
	return 0, 0, false
}

func (m *TableModel) layout(width int) []int {
	widths := make([]int, 0, len(m.columns))
	totalFixed := 0
	for i, col := range m.columns {
		content := col.View(i == m.active)
		cellWidth := max(col.Width+2, lipgloss.Width(content)+2)
		totalFixed += cellWidth
		widths = append(widths, cellWidth)
	}
	extra := width - totalFixed - 2
	if extra > 0 {
		widths[len(widths)-1] += extra
	}
	return widths
}

// TableMeta summarizes column, sort, and filter state for the status bar.
func (m *TableModel) TableMeta() string {
	parts := []string{fmt.Sprintf("col %s", strings.ToUpper(m.columns[m.active].Key))}
	if m.sortKey != "" {
		order := "asc"
		if m.sortDesc {
			order = "desc"
		}
		parts = append(parts, fmt.Sprintf("sort %s %s", strings.ToUpper(m.sortKey), order))
	}
	if m.filterKey != "" {
		mode := "ci"
		if m.filterCaseSensitive {
			mode = "cs"
		}
		parts = append(parts, fmt.Sprintf("filter %s~%q (%s)", strings.ToUpper(m.filterKey), m.filterText, mode))
	}
	return strings.Join(parts, "  ·  ")
}

// View renders the table.
func (m *TableModel) View(width, height int) string {
	widths := m.layout(width)
	m.headerWidths = widths

	headers := make([]string, 0, len(m.columns))
	for i, col := range m.columns {
		headers = append(headers, col.View(i == m.active))
	}

	header := renderTableRow(headers, widths, TableHeaderStyle)
	divider := renderTableDivider(widths)

	if len(m.rows) == 0 {
		empty := EmptyStateStyle.Width(width).Render("No rows match. Press N to clear the filter.")
		return lipgloss.JoinVertical(lipgloss.Left, header, divider, empty)
	}

	visibleHeight := height - 3
	if visibleHeight < 1 {
		visibleHeight = 1
	}
	m.viewportHeight = visibleHeight

	var rows []string
	for i := m.offset; i < len(m.rows) && i < m.offset+visibleHeight; i++ {
		row := m.rows[i]
		style := NormalRowStyle
		if i == m.cursor {
			style = SelectedRowStyle
		}

		mark := "[ ]"
		if m.selected[row.ID] {
			mark = "[x]"
		}
		cells := []string{
			mark,
			util.TruncateString(row.Name, m.columns[1].Width),
			util.TruncateString(row.Category, m.columns[2].Width),
			util.FormatQty(row.Qty),
			util.FormatPrice(row.Price),
			util.FormatDateHuman(row.UpdatedOn),
		}
		rows = append(rows, renderTableRow(cells, widths, style))
	}

	filterInfo := ""
	if m.filterKey != "" {
		filterInfo = fmt.Sprintf("  ·  filtered: %d/%d", len(m.rows), len(m.allRows))
	}
	selInfo := ""
	if len(m.selected) > 0 {
		selInfo = fmt.Sprintf("  ·  %d selected", len(m.selected))
	}
	status := StatusBarStyle.Render(fmt.Sprintf(
		"%d items  ·  row %d/%d%s%s  ·  %s",
		len(m.rows), m.cursor+1, len(m.rows), filterInfo, selInfo, m.TableMeta(),
	))

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		divider,
		strings.Join(rows, "\n"),
	)
	statusHeight := lipgloss.Height(status)
	contentHeight := lipgloss.Height(content)
	spacerHeight := max(0, height-contentHeight-statusHeight)
	spacer := lipgloss.NewStyle().Height(spacerHeight).Render("")

	return lipgloss.JoinVertical(
		lipgloss.Left,
		content,
		spacer,
		status,
	)
}

// MoveDown moves the cursor down.
func (m *TableModel) MoveDown() {
	if m.cursor < len(m.rows)-1 {
		m.cursor++
		vh := m.viewportHeight
		if vh == 0 {
			vh = 10
		}
		if m.cursor >= m.offset+vh {
			m.offset++
		}
	}
}

// MoveUp moves the cursor up.
func (m *TableModel) MoveUp() {
	if m.cursor > 0 {
		m.cursor--
		if m.cursor < m.offset {
			m.offset--
		}
	}
}

// JumpToTop jumps to the first row.
func (m *TableModel) JumpToTop() {
	m.cursor = 0
	m.offset = 0
}

// JumpToBottom jumps to the last row.
func (m *TableModel) JumpToBottom() {
	if len(m.rows) > 0 {
		m.cursor = len(m.rows) - 1
		vh := m.viewportHeight
		if vh == 0 {
			vh = 10
		}
		if m.cursor >= vh {
			m.offset = m.cursor - vh + 1
		}
	}
}

// HalfPageDown moves down half a page.
func (m *TableModel) HalfPageDown(pageSize int) {
	m.cursor += pageSize / 2
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	vh := m.viewportHeight
	if vh == 0 {
		vh = 10
	}
	if m.cursor >= m.offset+vh {
		m.offset = m.cursor - vh + 1
	}
}

// HalfPageUp moves up half a page.
func (m *TableModel) HalfPageUp(pageSize int) {
	m.cursor -= pageSize / 2
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
}

func renderTableRow(cells []string, widths []int, style lipgloss.Style) string {
	var parts []string
	for i, cell := range cells {
		if i >= len(widths) {
			continue
		}
		parts = append(parts, style.Width(widths[i]).Render(cell))
	}
	return lipgloss.JoinHorizontal(lipgloss.Left, parts...)
}

func renderTableDivider(widths []int) string {
	total := 0
	for _, w := range widths {
		total += w
	}
	return HelpDescStyle.Render(strings.Repeat("─", total))
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
