package composer

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pluqqy/pluqqy-board/pkg/models"
)

// Options controls how a board is composed into markdown
type Options struct {
	// Title is the top level heading; empty omits it
	Title string
	// IncludeCollapsed adds collapsed comments; otherwise they are skipped
	IncludeCollapsed bool
	// Markers adds an html comment with the comment id before each entry
	Markers bool
}

// DefaultOptions returns the options used by the export command
func DefaultOptions() Options {
	return Options{
		Title:            "Board",
		IncludeCollapsed: true,
		Markers:          true,
	}
}

// ComposeBoard renders the comments as one markdown document in reading
// order, top to bottom then left to right
func ComposeBoard(comments []models.CommentState, opts Options) (string, error) {
	sorted := make([]models.CommentState, 0, len(comments))
	for _, c := range comments {
		if c.Collapsed && !opts.IncludeCollapsed {
			continue
		}
		if strings.TrimSpace(c.Text) == "" {
			continue
		}
		sorted = append(sorted, c)
	}
	if len(sorted) == 0 {
		return "", fmt.Errorf("board has no comments to export")
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Y != sorted[j].Y {
			return sorted[i].Y < sorted[j].Y
		}
		return sorted[i].X < sorted[j].X
	})

	var output strings.Builder
	if opts.Title != "" {
		output.WriteString(fmt.Sprintf("# %s\n\n", opts.Title))
	}

	for i, c := range sorted {
		if opts.Markers {
			output.WriteString(fmt.Sprintf("<!-- comment %s at %d,%d -->\n", c.ID, c.X, c.Y))
		}
		output.WriteString(strings.TrimSpace(c.Text))
		output.WriteString("\n")

		if i < len(sorted)-1 {
			output.WriteString("\n---\n\n")
		}
	}

	return output.String(), nil
}
