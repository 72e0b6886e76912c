package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pluqqy/pluqqy-board/internal/cli"
	"github.com/pluqqy/pluqqy-board/pkg/models"
)

var (
	addAt        string
	addSize      string
	addCollapsed bool
	addLocked    bool
)

// NewAddCommand creates the add command
func NewAddCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <text>",
		Short: "Add a comment to the board",
		Long: `Add a comment to the board.

Without --at the comment is placed below and to the right of the
newest comment. Grid snapping from the settings applies.

Examples:
  # Add a comment
  pluqqy-board add "Remember to update the docs"

  # Place and size it
  pluqqy-board add "Release checklist" --at 10,4 --size 40x10

  # Add it collapsed
  pluqqy-board add "Long notes" --collapsed

  # A comment nobody can move, edit or delete from the board
  pluqqy-board add "Pinned" --locked`,
		Args: cobra.MinimumNArgs(1),
		RunE: runAdd,
	}

	cmd.Flags().StringVar(&addAt, "at", "", "Position as x,y")
	cmd.Flags().StringVar(&addSize, "size", "", "Size as WxH")
	cmd.Flags().BoolVar(&addCollapsed, "collapsed", false, "Add the comment collapsed")
	cmd.Flags().BoolVar(&addLocked, "locked", false, "Make the comment not editable, movable or deletable")

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	ctx, ws, err := loadBoard()
	if err != nil {
		return err
	}

	at := nextLocation(ws)
	if addAt != "" {
		if at, err = cli.ParseCoordinate(addAt); err != nil {
			return err
		}
	}
	var size models.Size
	if addSize != "" {
		if size, err = cli.ParseSize(addSize); err != nil {
			return err
		}
	}

	c := ws.NewComment(strings.Join(args, " "), at)
	if addSize != "" {
		c.SetSize(size)
	}
	if addCollapsed {
		c.SetCollapsed(true)
	}
	if addLocked {
		c.SetEditable(false)
		c.SetMovable(false)
		c.SetDeletable(false)
	}

	if err := ctx.SaveWorkspace(); err != nil {
		return fmt.Errorf("failed to save board: %w", err)
	}

	loc := c.GetRelativeToSurfaceXY()
	cli.PrintSuccess("Added comment %s at %d,%d", shortID(c.ID()), loc.X, loc.Y)
	return nil
}
