package ui

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"tabulo/internal/colhead"
	"tabulo/internal/db"
	"tabulo/internal/model"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const prefsTable = "items"

// Model is the root Bubble Tea model.
type Model struct {
	db     *sql.DB
	mode   model.Mode
	gState GState

	width  int
	height int

	error       string
	info        string
	showingHelp bool

	table *TableModel

	keys KeyMap
}

// New creates a new root model.
func New(database *sql.DB) Model {
	return Model{
		db:   database,
		mode: model.ModeNav,
		keys: DefaultKeyMap(),
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return loadItemsCmd(m.db)
}

func loadItemsCmd(database *sql.DB) tea.Cmd {
	return func() tea.Msg {
		items, err := db.ListItems(database)
		if err != nil {
			return model.ErrorMsg{Err: err}
		}
		prefs, err := db.LoadPrefs(database, prefsTable)
		if err != nil {
			return model.ErrorMsg{Err: err}
		}
		return model.ItemsLoadedMsg{Items: items, Prefs: prefs}
	}
}

func savePrefsCmd(database *sql.DB, prefs model.TablePrefs) tea.Cmd {
	return func() tea.Msg {
		if err := db.SavePrefs(database, prefsTable, prefs); err != nil {
			return model.ErrorMsg{Err: err}
		}
		return model.PrefsSavedMsg{}
	}
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		if m.mode == model.ModeFilter {
			if m.table == nil {
				return m, nil
			}
			return m, m.table.ActiveColumn().Update(msg)
		}

		if msg.String() == "?" {
			m.showingHelp = !m.showingHelp
			return m, nil
		}
		if m.showingHelp {
			if msg.String() == "esc" {
				m.showingHelp = false
			}
			return m, nil
		}

		return m.handleNavMode(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case colhead.SortMsg:
		if m.table == nil {
			return m, nil
		}
		order := "ascending"
		if msg.Descending {
			order = "descending"
		}
		m.table.ApplySort(msg.Column.Key, msg.Descending)
		m.info = fmt.Sprintf("Sorted %s %s", strings.ToUpper(msg.Column.Key), order)
		return m, savePrefsCmd(m.db, m.table.Prefs())

	case colhead.FilterInputMsg:
		if m.table == nil {
			return m, nil
		}
		m.table.ApplyFilter(msg.Column.Key, msg.Text, msg.CaseSensitive)
		return m, savePrefsCmd(m.db, m.table.Prefs())

	case colhead.FilterKeyMsg:
		switch msg.Key {
		case "esc":
			msg.Column.BlurFilter()
			m.mode = model.ModeNav
			if m.table != nil && m.table.ClearFilter() {
				return m, savePrefsCmd(m.db, m.table.Prefs())
			}
		case "enter":
			msg.Column.BlurFilter()
			m.mode = model.ModeNav
		}
		return m, nil

	case colhead.CheckedMsg:
		if m.table == nil {
			return m, nil
		}
		m.table.SetAllSelected(msg.Checked)
		if msg.Checked {
			m.info = fmt.Sprintf("%d rows selected", m.table.SelectedCount())
		} else {
			m.info = "Selection cleared"
		}
		return m, nil

	case model.ItemsLoadedMsg:
		m.table = NewTableModel(msg.Items)
		m.table.ApplyPrefs(msg.Prefs)
		m.error = ""
		return m, nil

	case model.PrefsSavedMsg:
		return m, nil

	case model.ErrorMsg:
		m.error = msg.Err.Error()
		return m, nil
	}

	// Cursor ticks and the like go to the active column's filter field.
	if m.table != nil {
		return m, m.table.ActiveColumn().Update(msg)
	}
	return m, nil
}

// handleNavMode handles navigation mode input.
func (m Model) handleNavMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.table == nil {
		if msg.String() == "q" {
			return m, tea.Quit
		}
		return m, nil
	}

	t := m.table
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "tab":
		t.NextColumn()
		return m, nil
	case "shift+tab":
		t.PrevColumn()
		return m, nil
	case "s":
		col := t.ActiveColumn()
		col.ClickHeader()
		if col.WithSortButton() {
			m.info = "Sort button shown"
		} else {
			m.info = "Sort button hidden"
		}
		return m, nil
	case "S":
		col := t.ActiveColumn()
		cmd := col.ClickSortToggle()
		if cmd == nil {
			m.info = "Column is not sortable"
		}
		return m, cmd
	case "/":
		col := t.ActiveColumn()
		if !col.Affordances().Filter {
			m.info = "Column is not filterable"
			return m, nil
		}
		col.FocusFilter()
		m.mode = model.ModeFilter
		m.info = "Filtering (enter/esc to finish)"
		return m, nil
	case "I":
		col := t.ActiveColumn()
		if !col.Filterable() {
			m.info = "Column is not filterable"
			return m, nil
		}
		col.SetFilterCaseSensitive(!col.FilterCaseSensitive())
		if col.FilterCaseSensitive() {
			m.info = "Filter is now case sensitive"
		} else {
			m.info = "Filter is now case insensitive"
		}
		return m, nil
	case "N":
		if t.ClearFilter() {
			m.info = "Filter cleared"
			return m, savePrefsCmd(m.db, t.Prefs())
		}
		return m, nil
	case " ":
		col := t.ActiveColumn()
		if col.Type() != colhead.TypeCheckbox {
			return m, nil
		}
		return m, col.ToggleCheckbox()
	case "x":
		t.ToggleCursorRow()
		return m, nil
	}

	// Handle "gg" state machine
	if msg.String() == "g" {
		if m.gState == GStateIdle {
			m.gState = GStateFirstG
			return m, nil
		}
		m.gState = GStateIdle
		t.JumpToTop()
		return m, nil
	}
	if m.gState == GStateFirstG {
		m.gState = GStateIdle
	}

	switch msg.String() {
	case "j", "down":
		t.MoveDown()
	case "k", "up":
		t.MoveUp()
	case "G":
		t.JumpToBottom()
	case "ctrl+d":
		t.HalfPageDown(m.height / 2)
	case "ctrl+u":
		t.HalfPageUp(m.height / 2)
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.table == nil || msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if msg.Y != m.headerLineY() {
		return m, nil
	}
	idx, localX, ok := m.table.ColumnAt(msg.X)
	if !ok {
		return m, nil
	}
	m.table.active = idx
	col := m.table.ActiveColumn()
	cmd := col.Click(localX)
	if col.FilterFocused() {
		m.mode = model.ModeFilter
		m.info = "Filtering (enter/esc to finish)"
	}
	return m, cmd
}

// headerLineY is the terminal row holding the column headers, accounting
// for the title bar and any banners above the table.
func (m Model) headerLineY() int {
	y := 2 // title bar with bottom border
	if m.error != "" {
		y++
	}
	if m.info != "" {
		y++
	}
	return y
}

// View renders the UI.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if m.showingHelp {
		return RenderFullHelp(m.width, m.height)
	}

	header := renderHeader(m.width)
	footer := RenderHelp(m.mode, m.width)

	contentHeight := m.height - 4
	if m.error != "" {
		contentHeight--
	}
	if m.info != "" {
		contentHeight--
	}

	var content string
	if m.table != nil {
		content = m.table.View(m.width, contentHeight)
	} else {
		content = EmptyStateStyle.Render("Loading inventory...")
	}
	content = lipgloss.NewStyle().Width(m.width).Height(contentHeight).Render(content)

	parts := []string{header}
	if m.error != "" {
		parts = append(parts, ErrorStyle.Width(m.width).Render("Error: "+m.error))
	}
	if m.info != "" {
		parts = append(parts, SuccessStyle.Width(m.width).Render(m.info))
	}
	parts = append(parts, content, footer)
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func renderHeader(width int) string {
	title := HeaderStyle.Render("tabulo")
	left := "  " + title

	dateStr := time.Now().Format("Mon 02 Jan")
	right := HelpDescStyle.Render(dateStr) + "  "

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}

	return TitleStyle.Width(width).Render(left + strings.Repeat(" ", padding) + right)
}
