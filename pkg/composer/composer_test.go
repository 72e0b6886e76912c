package composer

import (
	"strings"
	"testing"

	"github.com/pluqqy/pluqqy-board/pkg/models"
)

func TestComposeBoard(t *testing.T) {
	comments := []models.CommentState{
		{ID: "c3", Text: "bottom", X: 0, Y: 10},
		{ID: "c2", Text: "top right", X: 20, Y: 0},
		{ID: "c1", Text: "  top left\n", X: 1, Y: 0},
		{ID: "c4", Text: "folded", X: 5, Y: 5, Collapsed: true},
		{ID: "c5", Text: "   ", X: 0, Y: 1},
	}

	output, err := ComposeBoard(comments, DefaultOptions())
	if err != nil {
		t.Fatalf("ComposeBoard failed: %v", err)
	}

	want := "# Board\n\n" +
		"<!-- comment c1 at 1,0 -->\ntop left\n\n---\n\n" +
		"<!-- comment c2 at 20,0 -->\ntop right\n\n---\n\n" +
		"<!-- comment c4 at 5,5 -->\nfolded\n\n---\n\n" +
		"<!-- comment c3 at 0,10 -->\nbottom\n"
	if output != want {
		t.Errorf("ComposeBoard output mismatch\ngot:\n%s\nwant:\n%s", output, want)
	}
}

func TestComposeBoardOptions(t *testing.T) {
	comments := []models.CommentState{
		{ID: "a", Text: "open", Y: 0},
		{ID: "b", Text: "folded", Y: 1, Collapsed: true},
	}

	output, err := ComposeBoard(comments, Options{})
	if err != nil {
		t.Fatalf("ComposeBoard failed: %v", err)
	}
	if output != "open\n" {
		t.Errorf("expected only the expanded comment without title or markers, got %q", output)
	}
	if strings.Contains(output, "<!--") {
		t.Error("markers should be omitted")
	}
}

func TestComposeBoardEmpty(t *testing.T) {
	tests := []struct {
		name     string
		comments []models.CommentState
	}{
		{"no comments", nil},
		{"only blank text", []models.CommentState{{ID: "a", Text: "\n"}}},
		{"only collapsed", []models.CommentState{{ID: "a", Text: "x", Collapsed: true}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ComposeBoard(tt.comments, Options{}); err == nil {
				t.Error("expected error for an empty export")
			}
		})
	}
}
