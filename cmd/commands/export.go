package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pluqqy/pluqqy-board/internal/cli"
	"github.com/pluqqy/pluqqy-board/pkg/composer"
	"github.com/pluqqy/pluqqy-board/pkg/files"
)

var (
	exportFile          string
	exportStdout        bool
	exportSkipCollapsed bool
	exportNoMarkers     bool
	exportTitle         string
)

// NewExportCommand creates the export command
func NewExportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the board as a markdown document",
		Long: `Compose every comment into one markdown document, in reading order
(top to bottom, then left to right).

Examples:
  # Write BOARD.md
  pluqqy-board export

  # Print instead of writing a file
  pluqqy-board export --stdout

  # Only expanded comments, no id markers
  pluqqy-board export --skip-collapsed --no-markers --file notes.md`,
		Args: cobra.NoArgs,
		RunE: runExport,
	}

	cmd.Flags().StringVar(&exportFile, "file", files.DefaultExportFile, "Output file")
	cmd.Flags().BoolVar(&exportStdout, "stdout", false, "Print to stdout instead of writing a file")
	cmd.Flags().BoolVar(&exportSkipCollapsed, "skip-collapsed", false, "Leave out collapsed comments")
	cmd.Flags().BoolVar(&exportNoMarkers, "no-markers", false, "Leave out the comment id markers")
	cmd.Flags().StringVar(&exportTitle, "title", "Board", "Document heading (empty for none)")

	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	_, ws, err := loadBoard()
	if err != nil {
		return err
	}

	opts := composer.Options{
		Title:            exportTitle,
		IncludeCollapsed: !exportSkipCollapsed,
		Markers:          !exportNoMarkers,
	}
	content, err := composer.ComposeBoard(ws.Save(), opts)
	if err != nil {
		return err
	}

	if exportStdout {
		fmt.Fprint(cmd.OutOrStdout(), content)
		return nil
	}

	if err := files.WriteExport(exportFile, content); err != nil {
		return err
	}
	cli.PrintSuccess("Exported board to %s", exportFile)
	return nil
}
