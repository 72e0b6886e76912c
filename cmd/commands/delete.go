package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pluqqy/pluqqy-board/internal/cli"
	"github.com/pluqqy/pluqqy-board/pkg/comment"
)

var deleteForce bool

// NewDeleteCommand creates the rm command
func NewDeleteCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "rm <id>...",
		Aliases: []string{"delete"},
		Short:   "Delete comments from the board",
		Long: `Delete one or more comments.

Comments that are marked not deletable are skipped unless --force is
given. The previous board is kept in .pluqqy/archive/board.prev.yaml.

Examples:
  # Delete a comment (with confirmation)
  pluqqy-board rm 3f2a

  # Delete several without asking
  pluqqy-board rm 3f2a 9bc0 --yes

  # Delete a protected comment
  pluqqy-board rm 3f2a --force`,
		Args: cobra.MinimumNArgs(1),
		RunE: runDelete,
	}

	cmd.Flags().BoolVarP(&deleteForce, "force", "f", false, "Delete comments marked not deletable")

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	ctx, ws, err := loadBoard()
	if err != nil {
		return err
	}

	var targets []*comment.RenderedWorkspaceComment
	for _, ref := range args {
		c, err := resolveComment(ws, ref)
		if err != nil {
			return err
		}
		if !c.IsDeletable() && !deleteForce {
			cli.PrintWarning("Comment %s is not deletable, skipping (use --force)", shortID(c.ID()))
			continue
		}
		targets = append(targets, c)
	}
	if len(targets) == 0 {
		return nil
	}

	prompt := fmt.Sprintf("Delete %d comment(s)?", len(targets))
	if len(targets) == 1 {
		prompt = fmt.Sprintf("Delete comment %s (%s)?", shortID(targets[0].ID()), cli.FirstLine(targets[0].GetText(), 30))
	}
	confirmed, err := cli.Confirm(prompt, false)
	if err != nil {
		return fmt.Errorf("failed to read confirmation: %w", err)
	}
	if !confirmed {
		cli.PrintInfo("Deletion cancelled")
		return nil
	}

	for _, c := range targets {
		c.Dispose()
	}
	if err := ctx.SaveWorkspace(); err != nil {
		return fmt.Errorf("failed to save board: %w", err)
	}

	cli.PrintSuccess("Deleted %d comment(s)", len(targets))
	return nil
}
