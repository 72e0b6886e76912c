package cli

import (
	"testing"

	"github.com/pluqqy/pluqqy-board/pkg/models"
)

func TestParseCoordinate(t *testing.T) {
	tests := []struct {
		in      string
		want    models.Coordinate
		wantErr bool
	}{
		{"3,4", models.Coordinate{X: 3, Y: 4}, false},
		{" 10 , -2 ", models.Coordinate{X: 10, Y: -2}, false},
		{"0,0", models.Coordinate{}, false},
		{"3", models.Coordinate{}, true},
		{"a,b", models.Coordinate{}, true},
		{"", models.Coordinate{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseCoordinate(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseCoordinate(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseCoordinate(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseSize(t *testing.T) {
	tests := []struct {
		in      string
		want    models.Size
		wantErr bool
	}{
		{"30x8", models.Size{Width: 30, Height: 8}, false},
		{"20X5", models.Size{Width: 20, Height: 5}, false},
		{"0x5", models.Size{}, true},
		{"5x-1", models.Size{}, true},
		{"30,8", models.Size{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSize(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseSize(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseSize(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}
