package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pluqqy/pluqqy-board/internal/cli"
)

var (
	editText  string
	editSize  string
	editForce bool
)

// NewEditCommand creates the edit command
func NewEditCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a comment's text or size",
		Long: `Edit a comment.

Without --text the comment's text opens in $EDITOR.

Examples:
  # Edit in your editor
  pluqqy-board edit 3f2a

  # Replace the text
  pluqqy-board edit 3f2a --text "Done"

  # Resize
  pluqqy-board edit 3f2a --size 40x12`,
		Args: cobra.ExactArgs(1),
		RunE: runEdit,
	}

	cmd.Flags().StringVar(&editText, "text", "", "New text")
	cmd.Flags().StringVar(&editSize, "size", "", "New size as WxH")
	cmd.Flags().BoolVarP(&editForce, "force", "f", false, "Edit comments marked not editable")

	return cmd
}

func runEdit(cmd *cobra.Command, args []string) error {
	ctx, ws, err := loadBoard()
	if err != nil {
		return err
	}
	c, err := resolveComment(ws, args[0])
	if err != nil {
		return err
	}
	if !c.IsEditable() && !editForce {
		return fmt.Errorf("comment %s is not editable (use --force)", shortID(c.ID()))
	}

	textSet := cmd.Flags().Changed("text")
	if editSize != "" {
		size, err := cli.ParseSize(editSize)
		if err != nil {
			return err
		}
		c.SetSize(size)
	}

	switch {
	case textSet:
		c.SetText(editText)
	case editSize == "":
		text, err := cli.NewEditorLauncher().EditText("pluqqy-comment-*.md", c.GetText())
		if err != nil {
			return err
		}
		c.SetText(text)
	}

	if err := ctx.SaveWorkspace(); err != nil {
		return fmt.Errorf("failed to save board: %w", err)
	}

	cli.PrintSuccess("Updated comment %s", shortID(c.ID()))
	return nil
}
