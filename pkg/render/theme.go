package render

import (
	"github.com/charmbracelet/lipgloss"
)

// Color constants
const (
	ColorActive   = "170" // Purple/magenta for active elements
	ColorInactive = "240" // Gray for inactive elements
	ColorSelected = "236" // Dark gray for background selection
	ColorNormal   = "245" // Light gray for normal text
	ColorDim      = "241" // Dimmer gray
	ColorWarning  = "214" // Orange/yellow for warnings
	ColorDanger   = "196" // Red for dangerous actions
	ColorWhite    = "255"
	ColorDark     = "235"
	ColorPaper    = "229" // Pale yellow comment body
	ColorInk      = "236"
)

// Classes used by comment views and the workspace
const (
	ClassComment        = "comment"
	ClassTopBar         = "comment-topbar"
	ClassTextArea       = "comment-textarea"
	ClassIcon           = "comment-icon"
	ClassPreview        = "comment-preview"
	ClassResizeHandle   = "comment-resize"
	ClassHighlight      = "comment-highlight"
	ClassReadOnly       = "readonly"
	ClassFocused        = "focused"
	ClassSelected       = "selected"
	ClassDragging       = "dragging"
	ClassDraggingDelete = "dragging-delete"
	ClassDeleteArea     = "delete-area"
	ClassDeleteAreaHot  = "delete-area-hot"
)

// DefaultTheme returns the board's standard colors
func DefaultTheme() *Theme {
	t := NewTheme()
	t.Set(ClassComment, lipgloss.NewStyle().
		Background(lipgloss.Color(ColorPaper)).
		Foreground(lipgloss.Color(ColorInk)))
	t.Set(ClassTextArea, lipgloss.NewStyle().
		Background(lipgloss.Color(ColorPaper)).
		Foreground(lipgloss.Color(ColorInk)))
	t.Set(ClassTopBar, lipgloss.NewStyle().
		Background(lipgloss.Color(ColorWarning)).
		Foreground(lipgloss.Color(ColorDark)).
		Bold(true))
	t.Set(ClassPreview, lipgloss.NewStyle().
		Background(lipgloss.Color(ColorWarning)).
		Foreground(lipgloss.Color(ColorDark)).
		Italic(true))
	t.Set(ClassIcon, lipgloss.NewStyle().
		Background(lipgloss.Color(ColorWarning)).
		Foreground(lipgloss.Color(ColorDark)).
		Bold(true))
	t.Set(ClassResizeHandle, lipgloss.NewStyle().
		Background(lipgloss.Color(ColorPaper)).
		Foreground(lipgloss.Color(ColorDim)))
	t.Set(ClassHighlight, lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorActive)).
		Bold(true))
	t.Set(ClassReadOnly, lipgloss.NewStyle().
		Background(lipgloss.Color(ColorSelected)).
		Foreground(lipgloss.Color(ColorNormal)))
	t.Set(ClassFocused, lipgloss.NewStyle().
		Background(lipgloss.Color(ColorWhite)).
		Foreground(lipgloss.Color(ColorInk)))
	t.Set(ClassDragging, lipgloss.NewStyle().
		Background(lipgloss.Color(ColorInactive)).
		Foreground(lipgloss.Color(ColorWhite)))
	t.Set(ClassDraggingDelete, lipgloss.NewStyle().
		Background(lipgloss.Color(ColorDanger)).
		Foreground(lipgloss.Color(ColorWhite)))
	t.Set(ClassDeleteArea, lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDim)))
	t.Set(ClassDeleteAreaHot, lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDanger)).
		Bold(true))
	return t
}
