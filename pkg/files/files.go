package files

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/pluqqy/pluqqy-board/pkg/models"
)

const (
	PluqqyDir    = ".pluqqy"
	BoardFile    = "board.yaml"
	SettingsFile = "settings.yaml"
	LogsDir      = "logs"
	ArchiveDir   = "archive"

	// DefaultExportFile is written next to .pluqqy by the export command
	DefaultExportFile = "BOARD.md"
)

// ErrNotInitialized is returned when the project directory does not exist
var ErrNotInitialized = errors.New("no .pluqqy directory found, run 'pluqqy-board init' first")

func InitProjectStructure() error {
	dirs := []string{
		PluqqyDir,
		filepath.Join(PluqqyDir, LogsDir),
		filepath.Join(PluqqyDir, ArchiveDir),
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	settingsPath := filepath.Join(PluqqyDir, SettingsFile)
	if _, err := os.Stat(settingsPath); os.IsNotExist(err) {
		if err := WriteSettings(models.DefaultSettings()); err != nil {
			return err
		}
	}

	return nil
}

// CheckInitialized returns ErrNotInitialized if there is no project directory
func CheckInitialized() error {
	info, err := os.Stat(PluqqyDir)
	if err != nil {
		if os.IsNotExist(err) {
			return ErrNotInitialized
		}
		return fmt.Errorf("failed to stat %s: %w", PluqqyDir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory: %w", PluqqyDir, ErrNotInitialized)
	}
	return nil
}

// ReadSettings loads settings.yaml on top of the defaults. A missing file
// yields the defaults.
func ReadSettings() (*models.Settings, error) {
	settings := models.DefaultSettings()
	path := filepath.Join(PluqqyDir, SettingsFile)

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return settings, nil
		}
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}

	if err := yaml.Unmarshal(content, settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings YAML: %w", err)
	}

	return settings, nil
}

func WriteSettings(settings *models.Settings) error {
	content, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings to YAML: %w", err)
	}

	if err := writeAtomic(filepath.Join(PluqqyDir, SettingsFile), content); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}

	return nil
}

// ReadBoard loads the saved comments. A missing board is an empty one.
func ReadBoard() (*models.Board, error) {
	path := filepath.Join(PluqqyDir, BoardFile)

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &models.Board{Version: models.BoardVersion}, nil
		}
		return nil, fmt.Errorf("failed to read board: %w", err)
	}

	var board models.Board
	if err := yaml.Unmarshal(content, &board); err != nil {
		return nil, fmt.Errorf("failed to parse board YAML: %w", err)
	}
	if board.Version > models.BoardVersion {
		return nil, fmt.Errorf("board version %d is newer than supported version %d", board.Version, models.BoardVersion)
	}
	if board.Version == 0 {
		board.Version = models.BoardVersion
	}

	return &board, nil
}

// WriteBoard saves comments, keeping the previous board in the archive
func WriteBoard(comments []models.CommentState) error {
	path := filepath.Join(PluqqyDir, BoardFile)
	if err := archiveBoard(path); err != nil {
		return err
	}

	board := models.Board{
		Version:  models.BoardVersion,
		Saved:    time.Now().UTC().Truncate(time.Second),
		Comments: comments,
	}
	if board.Comments == nil {
		board.Comments = []models.CommentState{}
	}

	content, err := yaml.Marshal(&board)
	if err != nil {
		return fmt.Errorf("failed to marshal board to YAML: %w", err)
	}

	if err := writeAtomic(path, content); err != nil {
		return fmt.Errorf("failed to write board: %w", err)
	}

	return nil
}

// archiveBoard copies the current board to archive/board.prev.yaml
func archiveBoard(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read board for archiving: %w", err)
	}

	archivePath := filepath.Join(PluqqyDir, ArchiveDir, "board.prev.yaml")
	if err := os.MkdirAll(filepath.Dir(archivePath), 0755); err != nil {
		return fmt.Errorf("failed to create archive directory: %w", err)
	}
	if err := os.WriteFile(archivePath, content, 0644); err != nil {
		return fmt.Errorf("failed to archive board: %w", err)
	}
	return nil
}

// WriteExport writes composed board markdown to path, or to
// DefaultExportFile when path is empty
func WriteExport(path, content string) error {
	if path == "" {
		path = DefaultExportFile
	}
	if err := writeAtomic(path, []byte(content)); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// LogPath resolves a log file setting relative to the project directory
func LogPath(file string) string {
	if file == "" || filepath.IsAbs(file) {
		return file
	}
	return filepath.Join(PluqqyDir, file)
}

// writeAtomic writes through a temp file in the same directory so readers
// never see a partial file
func writeAtomic(path string, content []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		os.Remove(tmpName)
		return err
	}
	return os.Rename(tmpName, path)
}
