package render

import (
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
)

const textWidthCacheSize = 1024

// Ellipsis is appended to truncated text
const Ellipsis = "…"

var textWidths *lru.Cache[string, int]

func init() {
	cache, err := lru.New[string, int](textWidthCacheSize)
	if err != nil {
		panic(err)
	}
	textWidths = cache
}

// TextWidth returns the number of terminal cells s occupies. Results are
// memoized because previews are measured on every layout pass.
func TextWidth(s string) int {
	if w, ok := textWidths.Get(s); ok {
		return w
	}
	w := ansi.PrintableRuneWidth(s)
	textWidths.Add(s, w)
	return w
}

// Truncate shortens s to at most width cells, ending with an ellipsis when
// anything was cut
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if TextWidth(s) <= width {
		return s
	}
	return truncate.StringWithTail(s, uint(width), Ellipsis)
}

// FirstLine returns s up to the first newline
func FirstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

// WrapLines wraps s to width and cuts each line so nothing exceeds width
func WrapLines(s string, width int) []string {
	if width <= 0 {
		return nil
	}
	wrapped := wordwrap.String(s, width)
	lines := strings.Split(wrapped, "\n")
	for i, line := range lines {
		line = strings.TrimRight(line, " ")
		if TextWidth(line) > width {
			line = truncate.String(line, uint(width))
		}
		lines[i] = line
	}
	return lines
}
