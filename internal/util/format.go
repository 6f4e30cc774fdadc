package util

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FormatDateHuman formats a date with humanized relative display.
// "Today", "Yesterday", "3d ago", "Jan 15", "Jan 15 '24"
func FormatDateHuman(date string) string {
	date = strings.TrimSpace(date)
	if date == "" {
		return "Unknown"
	}
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dateDay := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())

	diff := today.Sub(dateDay)
	days := int(diff.Hours() / 24)

	switch {
	case days == 0:
		return "Today"
	case days == 1:
		return "Yesterday"
	case days > 1 && days < 7:
		return fmt.Sprintf("%dd ago", days)
	case t.Year() == now.Year():
		return t.Format("Jan 02")
	default:
		return t.Format("Jan 02 '06")
	}
}

// FormatPrice formats a unit price as "$12.50".
func FormatPrice(v float64) string {
	return "$" + strconv.FormatFloat(v, 'f', 2, 64)
}

// FormatQty formats a stock quantity, using "—" for zero.
func FormatQty(n int64) string {
	if n == 0 {
		return "—"
	}
	return strconv.FormatInt(n, 10)
}

// TodayISO returns today's date in ISO 8601 format (YYYY-MM-DD).
func TodayISO() string {
	return time.Now().Format("2006-01-02")
}

// TruncateString truncates a string to maxLen and adds "..." if needed.
func TruncateString(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen < 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}
