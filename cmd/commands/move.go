package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pluqqy/pluqqy-board/internal/cli"
)

var (
	moveBy    bool
	moveForce bool
)

// NewMoveCommand creates the mv command
func NewMoveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "mv <id> <x,y>",
		Aliases: []string{"move"},
		Short:   "Move a comment",
		Long: `Move a comment to a position, or by an offset with --by.
Grid snapping from the settings applies.

Examples:
  # Move to 20,4
  pluqqy-board mv 3f2a 20,4

  # Nudge two cells left
  pluqqy-board mv 3f2a --by -- -2,0`,
		Args: cobra.ExactArgs(2),
		RunE: runMove,
	}

	cmd.Flags().BoolVar(&moveBy, "by", false, "Treat the position as an offset")
	cmd.Flags().BoolVarP(&moveForce, "force", "f", false, "Move comments marked not movable")

	return cmd
}

func runMove(cmd *cobra.Command, args []string) error {
	ctx, ws, err := loadBoard()
	if err != nil {
		return err
	}
	c, err := resolveComment(ws, args[0])
	if err != nil {
		return err
	}
	if !c.IsMovable() && !moveForce {
		return fmt.Errorf("comment %s is not movable (use --force)", shortID(c.ID()))
	}

	pos, err := cli.ParseCoordinate(args[1])
	if err != nil {
		return err
	}
	if moveBy {
		c.MoveBy(pos.X, pos.Y, "cli")
	} else {
		c.MoveTo(pos, "cli")
	}
	c.SnapToGrid()

	if err := ctx.SaveWorkspace(); err != nil {
		return fmt.Errorf("failed to save board: %w", err)
	}

	loc := c.GetRelativeToSurfaceXY()
	cli.PrintSuccess("Moved comment %s to %d,%d", shortID(c.ID()), loc.X, loc.Y)
	return nil
}
