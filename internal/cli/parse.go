package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pluqqy/pluqqy-board/pkg/models"
)

// ParseCoordinate parses "x,y"
func ParseCoordinate(s string) (models.Coordinate, error) {
	x, y, err := parsePair(s, ",")
	if err != nil {
		return models.Coordinate{}, fmt.Errorf("invalid position %q (want x,y): %w", s, err)
	}
	return models.Coordinate{X: x, Y: y}, nil
}

// ParseSize parses "WxH". Both sides must be positive.
func ParseSize(s string) (models.Size, error) {
	w, h, err := parsePair(strings.ToLower(s), "x")
	if err != nil {
		return models.Size{}, fmt.Errorf("invalid size %q (want WxH): %w", s, err)
	}
	if w <= 0 || h <= 0 {
		return models.Size{}, fmt.Errorf("invalid size %q: width and height must be positive", s)
	}
	return models.Size{Width: w, Height: h}, nil
}

func parsePair(s, sep string) (int, int, error) {
	left, right, ok := strings.Cut(strings.TrimSpace(s), sep)
	if !ok {
		return 0, 0, fmt.Errorf("missing %q", sep)
	}
	a, err := strconv.Atoi(strings.TrimSpace(left))
	if err != nil {
		return 0, 0, err
	}
	b, err := strconv.Atoi(strings.TrimSpace(right))
	if err != nil {
		return 0, 0, err
	}
	return a, b, nil
}
