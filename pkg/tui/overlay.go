package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// placeOverlay draws fg over bg with its top-left cell at (x, y). Styled
// text on either side of the overlay is kept intact.
func placeOverlay(x, y int, fg, bg string) string {
	bgLines := strings.Split(bg, "\n")
	for i, line := range strings.Split(fg, "\n") {
		row := y + i
		if row < 0 || row >= len(bgLines) {
			continue
		}
		base := bgLines[row]
		left := ansi.Truncate(base, x, "")
		if pad := x - ansi.StringWidth(left); pad > 0 {
			left += strings.Repeat(" ", pad)
		}
		right := ansi.TruncateLeft(base, x+ansi.StringWidth(line), "")
		bgLines[row] = left + line + right
	}
	return strings.Join(bgLines, "\n")
}

// clampOverlay keeps a box of w x h cells anchored at (x, y) inside a
// width x height frame
func clampOverlay(x, y, w, h, width, height int) (int, int) {
	if x+w > width {
		x = width - w
	}
	if y+h > height {
		y = height - h
	}
	return max(x, 0), max(y, 0)
}
