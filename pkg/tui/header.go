package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const headerHeight = 1

// renderHeader draws the one-line title bar: title on the left, info
// right-aligned
func renderHeader(width int, title, info string) string {
	left := HeaderTitleStyle.Render(title)
	right := info

	gap := width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		// too narrow for both, keep the title
		return lipgloss.NewStyle().PaddingLeft(1).MaxWidth(width).Render(left)
	}

	return lipgloss.NewStyle().
		PaddingLeft(1).
		PaddingRight(1).
		Render(left + strings.Repeat(" ", gap) + right)
}
