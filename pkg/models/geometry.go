package models

// Coordinate is a position in workspace cells
type Coordinate struct {
	X int `yaml:"x" json:"x"`
	Y int `yaml:"y" json:"y"`
}

// Add returns the coordinate offset by other
func (c Coordinate) Add(other Coordinate) Coordinate {
	return Coordinate{X: c.X + other.X, Y: c.Y + other.Y}
}

// Sub returns the offset from other to c
func (c Coordinate) Sub(other Coordinate) Coordinate {
	return Coordinate{X: c.X - other.X, Y: c.Y - other.Y}
}

func (c Coordinate) Equal(other Coordinate) bool {
	return c.X == other.X && c.Y == other.Y
}

// Size is a width (columns) and height (rows) pair
type Size struct {
	Width  int `yaml:"width" json:"width"`
	Height int `yaml:"height" json:"height"`
}

func (s Size) Equal(other Size) bool {
	return s.Width == other.Width && s.Height == other.Height
}

// Max returns the component-wise maximum of s and other
func (s Size) Max(other Size) Size {
	out := s
	if other.Width > out.Width {
		out.Width = other.Width
	}
	if other.Height > out.Height {
		out.Height = other.Height
	}
	return out
}

// Rect is an axis-aligned rectangle. Bottom and Right are exclusive.
type Rect struct {
	Top    int
	Left   int
	Bottom int
	Right  int
}

// NewRect builds a rectangle from a location and a size
func NewRect(at Coordinate, size Size) Rect {
	return Rect{
		Top:    at.Y,
		Left:   at.X,
		Bottom: at.Y + size.Height,
		Right:  at.X + size.Width,
	}
}

func (r Rect) Width() int  { return r.Right - r.Left }
func (r Rect) Height() int { return r.Bottom - r.Top }

// Contains reports whether the cell at c lies inside the rectangle
func (r Rect) Contains(c Coordinate) bool {
	return c.X >= r.Left && c.X < r.Right && c.Y >= r.Top && c.Y < r.Bottom
}

// Intersects reports whether the two rectangles share at least one cell
func (r Rect) Intersects(other Rect) bool {
	return r.Left < other.Right && other.Left < r.Right &&
		r.Top < other.Bottom && other.Top < r.Bottom
}

// GridOptions describes the workspace snapping grid
type GridOptions struct {
	Spacing int  `yaml:"spacing"`
	Snap    bool `yaml:"snap"`
}

// ShouldSnap reports whether moves should be aligned to the grid
func (g GridOptions) ShouldSnap() bool {
	return g.Snap && g.Spacing > 0
}

// AlignXY rounds a coordinate to the nearest grid intersection
func (g GridOptions) AlignXY(c Coordinate) Coordinate {
	if g.Spacing <= 0 {
		return c
	}
	return Coordinate{X: roundTo(c.X, g.Spacing), Y: roundTo(c.Y, g.Spacing)}
}

func roundTo(v, step int) int {
	half := step / 2
	if v >= 0 {
		return ((v + half) / step) * step
	}
	return -(((-v) + half) / step) * step
}
