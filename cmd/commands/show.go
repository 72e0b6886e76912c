package commands

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/pluqqy/pluqqy-board/internal/cli"
	"github.com/pluqqy/pluqqy-board/pkg/comment"
	"github.com/pluqqy/pluqqy-board/pkg/models"
)

var (
	showRaw   bool
	showWidth int
)

// NewShowCommand creates the show command
func NewShowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Display a comment",
		Long: `Display a comment's details and text.

The text is rendered as Markdown unless --raw or --no-color is given.
The id may be any unique prefix.

Examples:
  # Show a comment
  pluqqy-board show 3f2a

  # Plain text only
  pluqqy-board show 3f2a --raw

  # Output as JSON
  pluqqy-board show 3f2a -o json`,
		Args: cobra.ExactArgs(1),
		RunE: runShow,
	}

	cmd.Flags().BoolVar(&showRaw, "raw", false, "Print the text without Markdown rendering")
	cmd.Flags().IntVar(&showWidth, "width", 80, "Wrap width for rendered text")

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	_, ws, err := loadBoard()
	if err != nil {
		return err
	}
	c, err := resolveComment(ws, args[0])
	if err != nil {
		return err
	}
	state := comment.SaveState(c)

	outputFormat, _ := cmd.Flags().GetString("output")
	switch outputFormat {
	case "json", "yaml":
		return cli.OutputResults(cmd.OutOrStdout(), outputFormat, state)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "ID:        %s\n", state.ID)
	fmt.Fprintf(out, "Position:  %d,%d\n", state.X, state.Y)
	fmt.Fprintf(out, "Size:      %dx%d\n", state.Width, state.Height)
	fmt.Fprintf(out, "Collapsed: %t\n", state.Collapsed)
	fmt.Fprintf(out, "Flags:     %s\n\n", stateFlags(state))

	text, err := renderText(state, showRaw || cli.NoColor(), showWidth)
	if err != nil {
		return err
	}
	fmt.Fprint(out, text)
	return nil
}

func renderText(state models.CommentState, raw bool, width int) (string, error) {
	if raw || state.Text == "" {
		return state.Text + "\n", nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("failed to create markdown renderer: %w", err)
	}
	rendered, err := renderer.Render(state.Text)
	if err != nil {
		return "", fmt.Errorf("failed to render comment text: %w", err)
	}
	return rendered, nil
}
