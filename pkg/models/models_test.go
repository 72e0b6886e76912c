package models

import "testing"

func TestAlignXY(t *testing.T) {
	tests := []struct {
		name string
		grid GridOptions
		in   Coordinate
		want Coordinate
	}{
		{"no grid", GridOptions{Spacing: 0}, Coordinate{X: 7, Y: 3}, Coordinate{X: 7, Y: 3}},
		{"round down", GridOptions{Spacing: 4}, Coordinate{X: 5, Y: 1}, Coordinate{X: 4, Y: 0}},
		{"round half up", GridOptions{Spacing: 4}, Coordinate{X: 6, Y: 2}, Coordinate{X: 8, Y: 4}},
		{"negative", GridOptions{Spacing: 4}, Coordinate{X: -5, Y: -6}, Coordinate{X: -4, Y: -8}},
		{"on grid", GridOptions{Spacing: 5}, Coordinate{X: 10, Y: 15}, Coordinate{X: 10, Y: 15}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.grid.AlignXY(tt.in); got != tt.want {
				t.Errorf("AlignXY(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestShouldSnap(t *testing.T) {
	tests := []struct {
		grid GridOptions
		want bool
	}{
		{GridOptions{Spacing: 4, Snap: true}, true},
		{GridOptions{Spacing: 4, Snap: false}, false},
		{GridOptions{Spacing: 0, Snap: true}, false},
	}
	for _, tt := range tests {
		if got := tt.grid.ShouldSnap(); got != tt.want {
			t.Errorf("%+v.ShouldSnap() = %v, want %v", tt.grid, got, tt.want)
		}
	}
}

func TestRect(t *testing.T) {
	r := NewRect(Coordinate{X: 2, Y: 1}, Size{Width: 4, Height: 3})

	if r.Width() != 4 || r.Height() != 3 {
		t.Fatalf("size = %dx%d, want 4x3", r.Width(), r.Height())
	}

	contains := []struct {
		at   Coordinate
		want bool
	}{
		{Coordinate{X: 2, Y: 1}, true},
		{Coordinate{X: 5, Y: 3}, true},
		{Coordinate{X: 6, Y: 3}, false},
		{Coordinate{X: 5, Y: 4}, false},
		{Coordinate{X: 1, Y: 1}, false},
	}
	for _, tt := range contains {
		if got := r.Contains(tt.at); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.at, got, tt.want)
		}
	}

	if !r.Intersects(NewRect(Coordinate{X: 5, Y: 3}, Size{Width: 2, Height: 2})) {
		t.Error("expected overlapping corner to intersect")
	}
	if r.Intersects(NewRect(Coordinate{X: 6, Y: 1}, Size{Width: 2, Height: 2})) {
		t.Error("expected touching edge not to intersect")
	}
}

func TestSizeMax(t *testing.T) {
	got := Size{Width: 10, Height: 2}.Max(Size{Width: 4, Height: 6})
	if want := (Size{Width: 10, Height: 6}); got != want {
		t.Errorf("Max = %v, want %v", got, want)
	}
}

func TestCommentStatePermissions(t *testing.T) {
	s := CommentState{}
	if !s.IsEditable() || !s.IsMovable() || !s.IsDeletable() {
		t.Error("nil flags should grant every permission")
	}

	s.Movable = FalseFlag(false)
	if s.IsMovable() {
		t.Error("explicit false flag should withhold the permission")
	}
	if FalseFlag(true) != nil {
		t.Error("granted permission should not be written")
	}
}

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	if got := s.DefaultCommentSize(); got != (Size{Width: 30, Height: 8}) {
		t.Errorf("DefaultCommentSize() = %v, want 30x8", got)
	}
	if !s.UI.ShowDeleteArea {
		t.Error("delete area should be shown by default")
	}
}
