package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pluqqy/pluqqy-board/internal/cli"
	"github.com/pluqqy/pluqqy-board/pkg/clipboard"
	"github.com/pluqqy/pluqqy-board/pkg/comment"
	"github.com/pluqqy/pluqqy-board/pkg/models"
)

var pasteAt string

// NewCopyCommand creates the copy command
func NewCopyCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "copy <id>",
		Aliases: []string{"cp"},
		Short:   "Copy a comment to the clipboard",
		Long: `Copy a comment to the system clipboard as JSON copy data.
The interactive board and the paste command read it back.

Comments that cannot be moved or deleted cannot be copied.

Examples:
  pluqqy-board copy 3f2a`,
		Args: cobra.ExactArgs(1),
		RunE: runCopy,
	}
}

func runCopy(cmd *cobra.Command, args []string) error {
	_, ws, err := loadBoard()
	if err != nil {
		return err
	}
	c, err := resolveComment(ws, args[0])
	if err != nil {
		return err
	}

	data := c.ToCopyData()
	if data == nil {
		return fmt.Errorf("copy %s: %w", shortID(c.ID()), comment.ErrNotCopyable)
	}
	if err := clipboard.WriteCopyData(clipboardProvider(), data); err != nil {
		return err
	}

	cli.PrintSuccess("Copied comment %s to clipboard", shortID(c.ID()))
	return nil
}

// NewPasteCommand creates the paste command
func NewPasteCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "paste",
		Short: "Paste a comment from the clipboard",
		Long: `Create a comment from the clipboard.

Copy data from the board or the copy command is restored with a new id.
Any other text becomes the text of a new comment.

Examples:
  # Paste where it was copied from
  pluqqy-board paste

  # Paste at a position
  pluqqy-board paste --at 4,12`,
		Args: cobra.NoArgs,
		RunE: runPaste,
	}

	cmd.Flags().StringVar(&pasteAt, "at", "", "Position as x,y")

	return cmd
}

func runPaste(cmd *cobra.Command, args []string) error {
	ctx, ws, err := loadBoard()
	if err != nil {
		return err
	}

	data, err := clipboard.ReadCopyData(clipboardProvider())
	if err != nil {
		if errors.Is(err, clipboard.ErrEmpty) {
			return fmt.Errorf("nothing to paste: %w", err)
		}
		return err
	}

	var at *models.Coordinate
	if data.State.Width == 0 && data.State.Height == 0 {
		// plain text carries no geometry
		size := ws.DefaultSize()
		data.State.Width, data.State.Height = size.Width, size.Height
		pos := nextLocation(ws)
		at = &pos
	}
	if pasteAt != "" {
		pos, err := cli.ParseCoordinate(pasteAt)
		if err != nil {
			return err
		}
		at = &pos
	}

	c, err := comment.Paste(ws, data, at)
	if err != nil {
		return err
	}
	if err := ctx.SaveWorkspace(); err != nil {
		return fmt.Errorf("failed to save board: %w", err)
	}

	loc := c.GetRelativeToSurfaceXY()
	cli.PrintSuccess("Pasted comment %s at %d,%d", shortID(c.ID()), loc.X, loc.Y)
	return nil
}
