package tui

import (
	"testing"
)

func TestPlaceOverlay(t *testing.T) {
	tests := []struct {
		name string
		x, y int
		fg   string
		bg   string
		want string
	}{
		{
			name: "inside",
			x:    1,
			y:    1,
			fg:   "XY",
			bg:   "aaaaa\nbbbbb\nccccc",
			want: "aaaaa\nbXYbb\nccccc",
		},
		{
			name: "past the end of a short line",
			x:    4,
			y:    0,
			fg:   "Z",
			bg:   "ab",
			want: "ab  Z",
		},
		{
			name: "rows below the frame are dropped",
			x:    0,
			y:    1,
			fg:   "11\n22",
			bg:   "aa\nbb",
			want: "aa\n11",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := placeOverlay(tt.x, tt.y, tt.fg, tt.bg); got != tt.want {
				t.Errorf("placeOverlay() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestClampOverlay(t *testing.T) {
	tests := []struct {
		x, y, w, h   int
		wantX, wantY int
	}{
		{2, 3, 10, 4, 2, 3},
		{75, 3, 10, 4, 70, 3},
		{2, 22, 10, 4, 2, 20},
		{-1, -1, 10, 4, 0, 0},
		{0, 0, 100, 40, 0, 0},
	}

	for _, tt := range tests {
		x, y := clampOverlay(tt.x, tt.y, tt.w, tt.h, 80, 24)
		if x != tt.wantX || y != tt.wantY {
			t.Errorf("clampOverlay(%d, %d, %d, %d) = (%d, %d), want (%d, %d)",
				tt.x, tt.y, tt.w, tt.h, x, y, tt.wantX, tt.wantY)
		}
	}
}
