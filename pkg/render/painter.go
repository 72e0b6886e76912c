package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Theme maps node classes to styles. When a node (or an ancestor) has
// several styled classes the one registered last wins, so state classes
// (focused, dragging) are registered after structural ones.
type Theme struct {
	order  []string
	styles map[string]lipgloss.Style
}

// NewTheme creates an empty theme
func NewTheme() *Theme {
	return &Theme{styles: make(map[string]lipgloss.Style)}
}

// Set registers or replaces the style for class
func (t *Theme) Set(class string, style lipgloss.Style) *Theme {
	if _, ok := t.styles[class]; !ok {
		t.order = append(t.order, class)
	}
	t.styles[class] = style
	return t
}

// resolve picks the winning class for n among its own classes and those
// inherited from ancestors
func (t *Theme) resolve(n *Node) string {
	best, bestRank := "", -1
	for cur := n; cur != nil; cur = cur.parent {
		for _, c := range cur.classes {
			if rank := t.rank(c); rank > bestRank {
				best, bestRank = c, rank
			}
		}
	}
	return best
}

func (t *Theme) rank(class string) int {
	for i, c := range t.order {
		if c == class {
			return i
		}
	}
	return -1
}

func (t *Theme) style(class string) (lipgloss.Style, bool) {
	s, ok := t.styles[class]
	return s, ok
}

type cell struct {
	r     rune
	class string
	cont  bool // right half of a wide rune
}

// Painter rasterizes a render tree into a terminal frame
type Painter struct {
	theme *Theme
}

// NewPainter creates a painter using theme; nil means no styling
func NewPainter(theme *Theme) *Painter {
	if theme == nil {
		theme = NewTheme()
	}
	return &Painter{theme: theme}
}

// Paint draws root into a width x height frame
func (p *Painter) Paint(root *Node, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	grid := make([][]cell, height)
	for y := range grid {
		grid[y] = make([]cell, width)
		for x := range grid[y] {
			grid[y][x] = cell{r: ' '}
		}
	}

	p.paintNode(grid, root)

	var b strings.Builder
	for y, row := range grid {
		p.renderRow(&b, row)
		if y < len(grid)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// Lines returns the unstyled frame, one string per row. Tests use it to
// assert on layout without escape sequences.
func (p *Painter) Lines(root *Node, width, height int) []string {
	frame := NewPainter(NewTheme()).Paint(root, width, height)
	return strings.Split(frame, "\n")
}

func (p *Painter) paintNode(grid [][]cell, n *Node) {
	if n.hidden {
		return
	}
	class := p.theme.resolve(n)
	x, y := n.AbsolutePosition()

	switch n.Kind {
	case KindRect:
		if _, ok := n.Attr(AttrBorder); ok {
			p.frame(grid, x, y, n.width, n.height, class)
		} else {
			p.fill(grid, x, y, n.width, n.height, class)
		}
	case KindText, KindIcon, KindHandle:
		p.write(grid, x, y, Truncate(n.text, n.width), n.width, class)
	case KindTextArea:
		p.fill(grid, x, y, n.width, n.height, class)
		for i, line := range WrapLines(n.text, n.width) {
			if i >= n.height {
				break
			}
			p.write(grid, x, y+i, line, n.width, class)
		}
	}

	for _, c := range n.children {
		p.paintNode(grid, c)
	}
}

func (p *Painter) fill(grid [][]cell, x, y, w, h int, class string) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			p.set(grid, col, row, ' ', class)
		}
	}
}

func (p *Painter) frame(grid [][]cell, x, y, w, h int, class string) {
	if w < 2 || h < 2 {
		return
	}
	border := lipgloss.RoundedBorder()
	corner := func(s string) rune { return []rune(s)[0] }
	for col := x + 1; col < x+w-1; col++ {
		p.set(grid, col, y, corner(border.Top), class)
		p.set(grid, col, y+h-1, corner(border.Bottom), class)
	}
	for row := y + 1; row < y+h-1; row++ {
		p.set(grid, x, row, corner(border.Left), class)
		p.set(grid, x+w-1, row, corner(border.Right), class)
	}
	p.set(grid, x, y, corner(border.TopLeft), class)
	p.set(grid, x+w-1, y, corner(border.TopRight), class)
	p.set(grid, x, y+h-1, corner(border.BottomLeft), class)
	p.set(grid, x+w-1, y+h-1, corner(border.BottomRight), class)
}

func (p *Painter) write(grid [][]cell, x, y int, s string, maxWidth int, class string) {
	col := x
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if col+w > x+maxWidth {
			break
		}
		p.set(grid, col, y, r, class)
		if w == 2 {
			if y >= 0 && y < len(grid) && col+1 >= 0 && col+1 < len(grid[y]) {
				grid[y][col+1] = cell{cont: true, class: class}
			}
		}
		col += w
	}
}

func (p *Painter) set(grid [][]cell, x, y int, r rune, class string) {
	if y < 0 || y >= len(grid) || x < 0 || x >= len(grid[y]) {
		return
	}
	// never leave half of a wide rune behind
	if grid[y][x].cont && x > 0 {
		grid[y][x-1] = cell{r: ' ', class: grid[y][x-1].class}
	}
	if x+1 < len(grid[y]) && grid[y][x+1].cont {
		grid[y][x+1] = cell{r: ' ', class: grid[y][x+1].class}
	}
	grid[y][x] = cell{r: r, class: class}
}

func (p *Painter) renderRow(b *strings.Builder, row []cell) {
	var run strings.Builder
	runClass := ""
	flush := func() {
		if run.Len() == 0 {
			return
		}
		if style, ok := p.theme.style(runClass); ok {
			b.WriteString(style.Render(run.String()))
		} else {
			b.WriteString(run.String())
		}
		run.Reset()
	}
	for _, c := range row {
		if c.cont {
			continue
		}
		if c.class != runClass {
			flush()
			runClass = c.class
		}
		run.WriteRune(c.r)
	}
	flush()
}
