package cli

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"go.uber.org/zap"

	"github.com/pluqqy/pluqqy-board/pkg/files"
	"github.com/pluqqy/pluqqy-board/pkg/models"
	"github.com/pluqqy/pluqqy-board/pkg/workspace"
)

// CommandContext loads the project pieces a subcommand needs: settings,
// logger and the board as a headless workspace
type CommandContext struct {
	Settings  *models.Settings
	Logger    *zap.Logger
	Workspace *workspace.Workspace
}

// NewCommandContext validates the project and loads its settings
func NewCommandContext(logger *zap.Logger) (*CommandContext, error) {
	if err := files.CheckInitialized(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CommandContext{
		Settings: LoadSettingsWithDefault(logger),
		Logger:   logger,
	}, nil
}

// LoadSettingsWithDefault loads settings, falling back to the defaults when
// the file cannot be read
func LoadSettingsWithDefault(logger *zap.Logger) *models.Settings {
	settings, err := files.ReadSettings()
	if err != nil {
		if logger != nil {
			logger.Warn("Using default settings", zap.Error(err))
		}
		PrintWarning("Could not read settings, using defaults: %v", err)
		return models.DefaultSettings()
	}
	return settings
}

// LoadWorkspace reads the board into a workspace. CLI edits ignore the
// read-only setting; it only guards the interactive board.
func (c *CommandContext) LoadWorkspace() (*workspace.Workspace, error) {
	board, err := files.ReadBoard()
	if err != nil {
		return nil, err
	}

	opts := workspace.OptionsFromSettings(c.Settings, c.Logger)
	opts.ReadOnly = false
	ws := workspace.New(opts)
	if err := ws.Load(board.Comments); err != nil {
		return nil, fmt.Errorf("failed to load board: %w", err)
	}
	c.Workspace = ws
	return ws, nil
}

// SaveWorkspace writes the loaded workspace back to the board file
func (c *CommandContext) SaveWorkspace() error {
	if c.Workspace == nil {
		return fmt.Errorf("no board loaded")
	}
	return files.WriteBoard(c.Workspace.Save())
}

// EditorLauncher handles all editor-related operations
type EditorLauncher struct {
	DefaultEditor string
}

// NewEditorLauncher uses $EDITOR, falling back to vi
func NewEditorLauncher() *EditorLauncher {
	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = "vi"
	}
	return &EditorLauncher{DefaultEditor: editor}
}

// OpenFile opens a file in the configured editor
func (e *EditorLauncher) OpenFile(path string) error {
	parts := strings.Fields(e.DefaultEditor)
	if len(parts) == 0 {
		return fmt.Errorf("no editor configured")
	}

	editorCmd := exec.Command(parts[0], append(parts[1:], path)...)
	editorCmd.Stdin = os.Stdin
	editorCmd.Stdout = os.Stdout
	editorCmd.Stderr = os.Stderr

	if err := editorCmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

// EditText writes content to a temp file, opens it in the editor and
// returns what the user saved
func (e *EditorLauncher) EditText(pattern, content string) (string, error) {
	tmpFile, err := os.CreateTemp("", pattern)
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	name := tmpFile.Name()
	defer os.Remove(name)

	if _, err := tmpFile.WriteString(content); err != nil {
		tmpFile.Close()
		return "", fmt.Errorf("failed to write to temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return "", fmt.Errorf("failed to write to temp file: %w", err)
	}

	if err := e.OpenFile(name); err != nil {
		return "", err
	}

	edited, err := os.ReadFile(name)
	if err != nil {
		return "", fmt.Errorf("failed to read edited text: %w", err)
	}
	return strings.TrimRight(string(edited), "\n"), nil
}
