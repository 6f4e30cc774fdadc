package ui

import (
	"strings"

	"tabulo/internal/model"

	"github.com/charmbracelet/lipgloss"
)

// RenderHelp renders the context-sensitive help footer.
func RenderHelp(mode model.Mode, width int) string {
	if mode == model.ModeFilter {
		keys := []string{
			helpKey("type", "filter text"),
			helpKey("enter", "apply"),
			helpKey("esc", "done"),
		}
		return renderHelpLine(keys, width)
	}

	keys := []string{
		helpKey("j/k", "navigate"),
		helpKey("tab", "next col"),
		helpKey("s", "sort button"),
		helpKey("S", "flip sort"),
		helpKey("/", "filter"),
		helpKey("space", "select all"),
		helpKey("x", "select row"),
		helpKey("?", "help"),
		helpKey("q", "quit"),
	}
	return renderHelpLine(keys, width)
}

// RenderFullHelp renders the full-screen help overlay.
func RenderFullHelp(width, height int) string {
	sections := []struct {
		title string
		keys  [][2]string
	}{
		{"Rows", [][2]string{
			{"j/k", "move cursor"},
			{"gg/G", "top/bottom"},
			{"ctrl+d/ctrl+u", "half page"},
			{"x", "select row under cursor"},
		}},
		{"Columns", [][2]string{
			{"tab/shift+tab", "change active column"},
			{"s", "show/hide the sort button"},
			{"S", "flip sort direction (sorts the table)"},
			{"space", "toggle the checkbox column (select all)"},
		}},
		{"Filtering", [][2]string{
			{"/", "focus the active column's filter"},
			{"I", "toggle case sensitivity"},
			{"N", "clear the filter"},
			{"enter/esc", "leave the filter field"},
		}},
		{"Mouse", [][2]string{
			{"click header", "show/hide the sort button"},
			{"click arrow", "flip sort direction"},
			{"click checkbox", "select all"},
		}},
	}

	var b strings.Builder
	b.WriteString(HeaderStyle.Render("tabulo — keys"))
	b.WriteString("\n\n")
	for _, s := range sections {
		b.WriteString(HelpKeyStyle.Render(s.title))
		b.WriteString("\n")
		for _, k := range s.keys {
			b.WriteString("  ")
			b.WriteString(HelpKeyStyle.Render(padRight(k[0], 16)))
			b.WriteString(HelpDescStyle.Render(k[1]))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	b.WriteString(HelpDescStyle.Render("press ? or esc to close"))

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Padding(1, 3).
		Render(b.String())
}

func helpKey(k, desc string) string {
	return HelpKeyStyle.Render(k) + " " + HelpDescStyle.Render(desc)
}

func renderHelpLine(keys []string, width int) string {
	return FooterStyle.Width(width).Render(strings.Join(keys, "  "))
}

func padRight(s string, n int) string {
	if len(s) >= n {
		return s + " "
	}
	return s + strings.Repeat(" ", n-len(s))
}
