package clipboard

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/pluqqy/pluqqy-board/pkg/models"
)

// ErrEmpty is returned when the clipboard holds nothing to paste
var ErrEmpty = errors.New("clipboard is empty")

// Clipboard reads and writes plain text
type Clipboard interface {
	WriteAll(text string) error
	ReadAll() (string, error)
}

// System is the operating system clipboard
type System struct{}

func (System) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

func (System) ReadAll() (string, error) {
	return clipboard.ReadAll()
}

// Available reports whether a system clipboard can be used
func (System) Available() bool {
	return !clipboard.Unsupported
}

// Memory keeps the clipboard in process, for tests and for terminals
// without a system clipboard
type Memory struct {
	text string
}

func (m *Memory) WriteAll(text string) error {
	m.text = text
	return nil
}

func (m *Memory) ReadAll() (string, error) {
	return m.text, nil
}

// Default returns the system clipboard if one is available and an
// in-memory one otherwise
func Default() Clipboard {
	if (System{}).Available() {
		return System{}
	}
	return &Memory{}
}

// WriteCopyData puts comment copy data on cb as JSON
func WriteCopyData(cb Clipboard, data *models.CommentCopyData) error {
	if data == nil {
		return fmt.Errorf("nothing to copy")
	}
	payload, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode copy data: %w", err)
	}
	if err := cb.WriteAll(string(payload)); err != nil {
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}
	return nil
}

// ReadCopyData reads comment copy data from cb. Text that is not copy data
// becomes a plain comment holding that text.
func ReadCopyData(cb Clipboard) (*models.CommentCopyData, error) {
	text, err := cb.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read clipboard: %w", err)
	}
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmpty
	}

	var data models.CommentCopyData
	if err := json.Unmarshal([]byte(text), &data); err == nil && data.Paster != "" {
		return &data, nil
	}

	return &models.CommentCopyData{
		Paster: models.CommentPasterType,
		State:  models.CommentState{Text: text},
	}, nil
}
