package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pluqqy/pluqqy-board/internal/cli"
	"github.com/pluqqy/pluqqy-board/pkg/search"
)

// FindResult represents the output structure for the find command
type FindResult struct {
	Query   string          `json:"query" yaml:"query"`
	Count   int             `json:"count" yaml:"count"`
	Results []search.Result `json:"results" yaml:"results"`
}

// NewFindCommand creates the find command
func NewFindCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "find <query>...",
		Short: "Search comments on the board",
		Long: `Search comment text, ids and states.

Query syntax:
  word              text contains word (case insensitive)
  "two words"       text contains the phrase
  text:word         same as a bare word
  id:3f             id starts with 3f
  is:collapsed      also expanded, editable, movable, deletable, locked
  NOT cond, -cond   negate a condition
  a OR b, a AND b   combine conditions (adjacent conditions are ANDed)

Examples:
  pluqqy-board find release
  pluqqy-board find 'is:collapsed OR "next week"'
  pluqqy-board find -o json -- -draft`,
		Args: cobra.MinimumNArgs(1),
		RunE: runFind,
	}
}

func runFind(cmd *cobra.Command, args []string) error {
	_, ws, err := loadBoard()
	if err != nil {
		return err
	}

	query := strings.Join(args, " ")
	engine := search.NewEngine()
	engine.BuildIndex(ws.Save())
	results, err := engine.Search(query)
	if err != nil {
		return err
	}

	outputFormat, _ := cmd.Flags().GetString("output")
	switch outputFormat {
	case "json", "yaml":
		return cli.OutputResults(cmd.OutOrStdout(), outputFormat, FindResult{Query: query, Count: len(results), Results: results})
	}

	if len(results) == 0 {
		cli.PrintInfo("No comments match %q", query)
		return nil
	}

	table := cli.NewTableFormatter(cmd.OutOrStdout())
	table.Header("ID", "POSITION", "FLAGS", "MATCH")
	for _, r := range results {
		match := cli.FirstLine(r.Comment.Text, 50)
		if len(r.Excerpts) > 0 {
			match = cli.TruncateString(r.Excerpts[0], 50)
		}
		table.Row(
			shortID(r.Comment.ID),
			fmt.Sprintf("%d,%d", r.Comment.X, r.Comment.Y),
			stateFlags(r.Comment),
			match,
		)
	}
	return table.Flush()
}
