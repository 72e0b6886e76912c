package files

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/pluqqy/pluqqy-board/pkg/models"
)

func chdirTemp(t *testing.T) {
	t.Helper()
	tempDir := t.TempDir()
	oldWd, _ := os.Getwd()
	t.Cleanup(func() { os.Chdir(oldWd) })
	if err := os.Chdir(tempDir); err != nil {
		t.Fatalf("chdir failed: %v", err)
	}
}

func TestInitProjectStructure(t *testing.T) {
	chdirTemp(t)

	if err := CheckInitialized(); !errors.Is(err, ErrNotInitialized) {
		t.Fatalf("CheckInitialized() before init = %v, want ErrNotInitialized", err)
	}

	if err := InitProjectStructure(); err != nil {
		t.Fatalf("InitProjectStructure failed: %v", err)
	}

	expected := []string{
		PluqqyDir,
		filepath.Join(PluqqyDir, LogsDir),
		filepath.Join(PluqqyDir, ArchiveDir),
		filepath.Join(PluqqyDir, SettingsFile),
	}
	for _, path := range expected {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			t.Errorf("Expected %s to exist", path)
		}
	}

	if err := CheckInitialized(); err != nil {
		t.Errorf("CheckInitialized() after init = %v", err)
	}
}

func TestReadSettings(t *testing.T) {
	chdirTemp(t)

	settings, err := ReadSettings()
	if err != nil {
		t.Fatalf("ReadSettings without a file failed: %v", err)
	}
	if diff := cmp.Diff(models.DefaultSettings(), settings); diff != "" {
		t.Errorf("missing file should give defaults (-want +got):\n%s", diff)
	}

	if err := os.MkdirAll(PluqqyDir, 0755); err != nil {
		t.Fatal(err)
	}
	partial := "workspace:\n  read_only: true\n  grid:\n    spacing: 2\n    snap: true\n"
	if err := os.WriteFile(filepath.Join(PluqqyDir, SettingsFile), []byte(partial), 0644); err != nil {
		t.Fatal(err)
	}

	settings, err = ReadSettings()
	if err != nil {
		t.Fatalf("ReadSettings failed: %v", err)
	}
	if !settings.Workspace.ReadOnly || settings.Workspace.Grid.Spacing != 2 || !settings.Workspace.Grid.Snap {
		t.Errorf("workspace settings not applied: %+v", settings.Workspace)
	}
	if settings.Comment.DefaultWidth != 30 {
		t.Errorf("unset keys should keep defaults, got width %d", settings.Comment.DefaultWidth)
	}

	if err := os.WriteFile(filepath.Join(PluqqyDir, SettingsFile), []byte("workspace: [oops"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := ReadSettings(); err == nil {
		t.Error("ReadSettings with invalid YAML should fail")
	}
}

func TestWriteSettingsRoundTrip(t *testing.T) {
	chdirTemp(t)

	settings := models.DefaultSettings()
	settings.Workspace.DragRadius = 3
	settings.Logging.Level = "debug"

	if err := WriteSettings(settings); err != nil {
		t.Fatalf("WriteSettings failed: %v", err)
	}
	got, err := ReadSettings()
	if err != nil {
		t.Fatalf("ReadSettings failed: %v", err)
	}
	if diff := cmp.Diff(settings, got); diff != "" {
		t.Errorf("settings round trip (-want +got):\n%s", diff)
	}
}

func TestReadWriteBoard(t *testing.T) {
	chdirTemp(t)
	if err := InitProjectStructure(); err != nil {
		t.Fatalf("InitProjectStructure failed: %v", err)
	}

	board, err := ReadBoard()
	if err != nil {
		t.Fatalf("ReadBoard on a fresh project failed: %v", err)
	}
	if len(board.Comments) != 0 || board.Version != models.BoardVersion {
		t.Errorf("fresh board = %+v", board)
	}

	comments := []models.CommentState{
		{ID: "a", Text: "first\nline two", Width: 30, Height: 8, X: 1, Y: 2},
		{ID: "b", Text: "second", Width: 20, Height: 5, Collapsed: true, Deletable: models.FalseFlag(false)},
	}
	if err := WriteBoard(comments); err != nil {
		t.Fatalf("WriteBoard failed: %v", err)
	}

	board, err = ReadBoard()
	if err != nil {
		t.Fatalf("ReadBoard failed: %v", err)
	}
	if diff := cmp.Diff(comments, board.Comments); diff != "" {
		t.Errorf("board round trip (-want +got):\n%s", diff)
	}
	if board.Saved.IsZero() {
		t.Error("Saved timestamp not written")
	}

	if err := WriteBoard(comments[:1]); err != nil {
		t.Fatalf("second WriteBoard failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(PluqqyDir, ArchiveDir, "board.prev.yaml")); err != nil {
		t.Errorf("previous board was not archived: %v", err)
	}
}

func TestReadBoardRejectsNewerVersion(t *testing.T) {
	chdirTemp(t)
	if err := os.MkdirAll(PluqqyDir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(PluqqyDir, BoardFile), []byte("version: 99\ncomments: []\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := ReadBoard(); err == nil {
		t.Error("ReadBoard should reject a newer board version")
	}
}

func TestLogPath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"logs/board.log", filepath.Join(PluqqyDir, "logs/board.log")},
		{"/var/log/board.log", "/var/log/board.log"},
	}
	for _, tt := range tests {
		if got := LogPath(tt.in); got != tt.want {
			t.Errorf("LogPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestWriteExport(t *testing.T) {
	chdirTemp(t)

	if err := WriteExport("", "# Board\n"); err != nil {
		t.Fatalf("WriteExport failed: %v", err)
	}
	data, err := os.ReadFile(DefaultExportFile)
	if err != nil {
		t.Fatalf("default export file missing: %v", err)
	}
	if string(data) != "# Board\n" {
		t.Errorf("export content = %q", data)
	}

	path := filepath.Join("out", "notes.md")
	if err := WriteExport(path, "x\n"); err != nil {
		t.Fatalf("WriteExport to nested path failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("nested export missing: %v", err)
	}
}
