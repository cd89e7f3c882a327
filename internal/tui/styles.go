package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// CursorMarker is the prefix shown on the selected contact row.
const CursorMarker = "▸ "

// MinLeftWidth is the minimum character width for the contact list pane.
const MinLeftWidth = 24

// BirthdayBadge returns a styled day count like "today", "in 3d", or "in 2w".
// The badge warms up as the birthday approaches: red for today, yellow inside
// a week, gray beyond.
func BirthdayBadge(days int) string {
	var label string
	switch {
	case days == 0:
		label = "today"
	case days < 14:
		label = fmt.Sprintf("in %dd", days)
	default:
		label = fmt.Sprintf("in %dw", days/7)
	}

	var color lipgloss.AdaptiveColor
	switch {
	case days == 0:
		color = lipgloss.AdaptiveColor{Light: "1", Dark: "9"} // red
	case days <= 7:
		color = lipgloss.AdaptiveColor{Light: "3", Dark: "11"} // yellow
	default:
		color = lipgloss.AdaptiveColor{Light: "240", Dark: "245"} // gray
	}

	return lipgloss.NewStyle().Foreground(color).Render(label)
}

// FocusedBorder returns a lipgloss style with an accent-colored rounded border.
func FocusedBorder() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.AdaptiveColor{Light: "4", Dark: "12"})
}

// UnfocusedBorder returns a lipgloss style with a dim rounded border.
func UnfocusedBorder() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.AdaptiveColor{Light: "240", Dark: "240"})
}

// ErrorStyle returns the style for validation error lines.
func ErrorStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "1", Dark: "9"})
}

// PaneWidths calculates the list and detail pane widths from a total width.
// The list pane gets 1/3 (minimum MinLeftWidth), the detail pane the rest.
func PaneWidths(totalWidth int) (left, right int) {
	if totalWidth <= 0 {
		return 0, 0
	}
	left = totalWidth / 3
	if left < MinLeftWidth {
		left = MinLeftWidth
	}
	right = totalWidth - left
	if right < 0 {
		right = 0
	}
	return left, right
}
