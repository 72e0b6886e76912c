package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pluqqy/pluqqy-board/internal/cli"
)

// NewCollapseCommand creates the collapse command
func NewCollapseCommand() *cobra.Command {
	return newFoldCommand("collapse", "collapsed", "Collapse a comment to its top bar", true)
}

// NewExpandCommand creates the expand command
func NewExpandCommand() *cobra.Command {
	return newFoldCommand("expand", "expanded", "Expand a collapsed comment", false)
}

func newFoldCommand(use, past, short string, collapsed bool) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, ws, err := loadBoard()
			if err != nil {
				return err
			}
			c, err := resolveComment(ws, args[0])
			if err != nil {
				return err
			}
			if !c.IsEditable() {
				return fmt.Errorf("comment %s is not editable", shortID(c.ID()))
			}
			if c.IsCollapsed() == collapsed {
				cli.PrintInfo("Comment %s is already %s", shortID(c.ID()), past)
				return nil
			}

			c.SetCollapsed(collapsed)
			if err := ctx.SaveWorkspace(); err != nil {
				return fmt.Errorf("failed to save board: %w", err)
			}
			cli.PrintSuccess("Comment %s %s", shortID(c.ID()), past)
			return nil
		},
	}
}
