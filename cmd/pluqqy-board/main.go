package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pluqqy/pluqqy-board/cmd/commands"
	"github.com/pluqqy/pluqqy-board/internal/cli"
	"github.com/pluqqy/pluqqy-board/pkg/clipboard"
	"github.com/pluqqy/pluqqy-board/pkg/files"
	"github.com/pluqqy/pluqqy-board/pkg/models"
	"github.com/pluqqy/pluqqy-board/pkg/tui"
	"github.com/pluqqy/pluqqy-board/pkg/workspace"
)

// Version is set during build with -ldflags
var version = "dev"

var (
	flagQuiet    bool
	flagNoColor  bool
	flagYes      bool
	flagVerbose  bool
	flagOutput   string
	flagReadOnly bool

	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "pluqqy-board",
	Short: "Terminal comment board",
	Long: `pluqqy-board is a board of free-floating comments in your terminal.
Comments can be moved, resized, collapsed, copied and deleted with the
mouse or the keyboard. The board is stored as YAML in .pluqqy/board.yaml.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cli.SetGlobalFlags(flagQuiet, flagNoColor, flagYes, flagVerbose)

		// init and version run before there is a project to log into
		if cmd.Name() == "init" || cmd.Name() == "version" {
			return nil
		}
		if files.CheckInitialized() != nil {
			return nil
		}

		settings := cli.LoadSettingsWithDefault(nil)
		l, err := cli.NewLogger(settings.Logging)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger = l
		commands.SetLogger(logger)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
	RunE: runBoard,
}

func runBoard(cmd *cobra.Command, args []string) error {
	if err := files.CheckInitialized(); err != nil {
		if errors.Is(err, files.ErrNotInitialized) {
			return fmt.Errorf("no .pluqqy directory found in the current directory, run 'pluqqy-board init' first")
		}
		return err
	}

	settings := cli.LoadSettingsWithDefault(logger)
	if flagReadOnly {
		settings.Workspace.ReadOnly = true
	}

	board, err := files.ReadBoard()
	if err != nil {
		return err
	}
	ws := workspace.New(workspace.OptionsFromSettings(settings, logger))
	if err := ws.Load(board.Comments); err != nil {
		return fmt.Errorf("failed to load board: %w", err)
	}

	app := tui.NewApp(tui.Options{
		Workspace: ws,
		Settings:  settings,
		Clipboard: clipboard.Default(),
		Logger:    logger,
	})

	logger.Info("Starting board", zap.Int("comments", ws.Len()), zap.Bool("read_only", ws.IsReadOnly()))
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to start the terminal user interface: %w", err)
	}
	return nil
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new board project",
	Long:  `Creates the .pluqqy folder structure and default settings in the current directory`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to determine current directory: %w", err)
		}

		cli.PrintInfo("Initializing board project in %s", cwd)
		if err := files.InitProjectStructure(); err != nil {
			return fmt.Errorf("failed to initialize project structure: %w", err)
		}

		cli.PrintSuccess("Created .pluqqy folder structure")
		cli.PrintSuccess("Wrote default settings to %s/%s", files.PluqqyDir, files.SettingsFile)
		cli.PrintInfo("Run 'pluqqy-board' to open the board")
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "pluqqy-board version %s (board format %d)\n", version, models.BoardVersion)
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&flagQuiet, "quiet", "q", false, "Only print errors")
	flags.BoolVar(&flagNoColor, "no-color", false, "Disable symbols and Markdown styling")
	flags.BoolVarP(&flagYes, "yes", "y", false, "Answer yes to confirmations")
	flags.BoolVarP(&flagVerbose, "verbose", "v", false, "Log at debug level")
	flags.StringVarP(&flagOutput, "output", "o", "text", "Output format: text, json or yaml")
	rootCmd.Flags().BoolVar(&flagReadOnly, "read-only", false, "Open the board read-only")

	rootCmd.AddCommand(initCmd, versionCmd)
	commands.AddCommands(rootCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		cli.PrintError("%v", err)
		os.Exit(1)
	}
}
