package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pluqqy/pluqqy-board/internal/cli"
	"github.com/pluqqy/pluqqy-board/pkg/models"
)

// ListResult represents the output structure for the list command
type ListResult struct {
	Count    int                   `json:"count" yaml:"count"`
	Comments []models.CommentState `json:"comments" yaml:"comments"`
}

var listFullIDs bool

// NewListCommand creates the list command
func NewListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List the comments on the board",
		Long: `List every comment on the board in creation order.

Examples:
  # Table of comments
  pluqqy-board list

  # Full ids
  pluqqy-board list --ids

  # Machine readable
  pluqqy-board list -o json`,
		Args: cobra.NoArgs,
		RunE: runList,
	}

	cmd.Flags().BoolVar(&listFullIDs, "ids", false, "Show full comment ids")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	_, ws, err := loadBoard()
	if err != nil {
		return err
	}

	states := ws.Save()
	outputFormat, _ := cmd.Flags().GetString("output")

	switch outputFormat {
	case "json", "yaml":
		return cli.OutputResults(cmd.OutOrStdout(), outputFormat, ListResult{Count: len(states), Comments: states})
	default:
		return outputListText(cmd, states)
	}
}

func outputListText(cmd *cobra.Command, states []models.CommentState) error {
	if len(states) == 0 {
		cli.PrintInfo("The board is empty. Add a comment with 'pluqqy-board add <text>'")
		return nil
	}

	table := cli.NewTableFormatter(cmd.OutOrStdout())
	table.Header("ID", "POSITION", "SIZE", "FLAGS", "TEXT")
	for _, s := range states {
		id := s.ID
		if !listFullIDs {
			id = shortID(id)
		}
		table.Row(
			id,
			fmt.Sprintf("%d,%d", s.X, s.Y),
			fmt.Sprintf("%dx%d", s.Width, s.Height),
			stateFlags(s),
			cli.FirstLine(s.Text, 40),
		)
	}
	return table.Flush()
}

// stateFlags summarizes a comment's state in a few letters: c collapsed,
// and E/M/D for a withheld edit/move/delete permission
func stateFlags(s models.CommentState) string {
	var b strings.Builder
	if s.Collapsed {
		b.WriteString("c")
	}
	if !s.IsEditable() {
		b.WriteString("E")
	}
	if !s.IsMovable() {
		b.WriteString("M")
	}
	if !s.IsDeletable() {
		b.WriteString("D")
	}
	if b.Len() == 0 {
		return "-"
	}
	return b.String()
}
