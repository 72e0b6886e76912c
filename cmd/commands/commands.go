package commands

import (
	"github.com/spf13/cobra"
)

// AddCommands registers the board subcommands on root
func AddCommands(root *cobra.Command) {
	root.AddCommand(
		NewAddCommand(),
		NewListCommand(),
		NewShowCommand(),
		NewFindCommand(),
		NewEditCommand(),
		NewMoveCommand(),
		NewCollapseCommand(),
		NewExpandCommand(),
		NewDeleteCommand(),
		NewCopyCommand(),
		NewPasteCommand(),
		NewExportCommand(),
	)
}
