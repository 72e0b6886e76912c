package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ConfirmationType defines the visual style of the confirmation
type ConfirmationType int

const (
	ConfirmTypeInline ConfirmationType = iota // One line in the status bar
	ConfirmTypeDialog                         // Bordered box drawn over the board
)

// ConfirmationConfig holds the configuration for a confirmation prompt
type ConfirmationConfig struct {
	Title       string
	Message     string
	Warning     string // shown in orange under the message
	Destructive bool   // Yes is red, No is green
	Type        ConfirmationType
	YesLabel    string
	NoLabel     string
	Width       int // dialog only
}

// ConfirmationModel asks a yes/no question and runs a callback for the answer
type ConfirmationModel struct {
	active    bool
	config    ConfirmationConfig
	onConfirm func() tea.Cmd
	onCancel  func() tea.Cmd
}

func NewConfirmation() *ConfirmationModel {
	return &ConfirmationModel{}
}

// Show activates the confirmation with the given configuration
func (m *ConfirmationModel) Show(config ConfirmationConfig, onConfirm, onCancel func() tea.Cmd) {
	m.active = true
	m.config = config
	m.onConfirm = onConfirm
	m.onCancel = onCancel

	if m.config.YesLabel == "" {
		m.config.YesLabel = "Yes"
	}
	if m.config.NoLabel == "" {
		m.config.NoLabel = "No"
	}
}

// ShowInline asks message in the status bar
func (m *ConfirmationModel) ShowInline(message string, destructive bool, onConfirm, onCancel func() tea.Cmd) {
	m.Show(ConfirmationConfig{
		Message:     message,
		Destructive: destructive,
		Type:        ConfirmTypeInline,
	}, onConfirm, onCancel)
}

// ShowDialog asks in a bordered box
func (m *ConfirmationModel) ShowDialog(title, message, warning string, destructive bool, onConfirm, onCancel func() tea.Cmd) {
	m.Show(ConfirmationConfig{
		Title:       title,
		Message:     message,
		Warning:     warning,
		Destructive: destructive,
		Type:        ConfirmTypeDialog,
	}, onConfirm, onCancel)
}

func (m *ConfirmationModel) Hide() {
	m.active = false
}

func (m *ConfirmationModel) Active() bool {
	return m.active
}

// IsDialog reports whether the active prompt draws as a dialog
func (m *ConfirmationModel) IsDialog() bool {
	return m.active && m.config.Type == ConfirmTypeDialog
}

// Update answers the prompt on y/n/esc. Other keys are swallowed.
func (m *ConfirmationModel) Update(msg tea.KeyMsg) tea.Cmd {
	if !m.active {
		return nil
	}

	switch msg.String() {
	case "y", "Y":
		m.active = false
		if m.onConfirm != nil {
			return m.onConfirm()
		}
	case "n", "N", "esc":
		m.active = false
		if m.onCancel != nil {
			return m.onCancel()
		}
	}
	return nil
}

// View renders the prompt in its configured style
func (m *ConfirmationModel) View() string {
	if !m.active {
		return ""
	}
	if m.config.Type == ConfirmTypeDialog {
		return m.renderDialog()
	}
	return m.renderInline()
}

func (m *ConfirmationModel) renderInline() string {
	return fmt.Sprintf("%s %s", m.config.Message, formatConfirmOptions(m.config.Destructive))
}

func (m *ConfirmationModel) renderDialog() string {
	width := m.config.Width
	if width == 0 {
		width = 44
	}
	inner := width - 4

	center := lipgloss.NewStyle().Width(inner).Align(lipgloss.Center)
	var b strings.Builder

	if m.config.Title != "" {
		b.WriteString(center.Render(lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorWarning)).
			Render(m.config.Title)))
		b.WriteString("\n\n")
	}
	if m.config.Message != "" {
		b.WriteString(center.Render(m.config.Message))
		b.WriteString("\n")
	}
	if m.config.Warning != "" {
		b.WriteString(center.Render(lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorWarning)).
			Render(m.config.Warning)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	labels := fmt.Sprintf("(%s / %s)", strings.ToLower(m.config.YesLabel), strings.ToLower(m.config.NoLabel))
	b.WriteString(center.Render(formatConfirmOptions(m.config.Destructive) + "  " + labels))

	return ConfirmBorderStyle.Width(width).Render(b.String())
}

// formatConfirmOptions colors [Y]/[N] by which answer is the safe one
func formatConfirmOptions(destructive bool) string {
	if destructive {
		return ConfirmDangerStyle.Render("[Y]") + "/" + ConfirmSafeStyle.Render("[N]")
	}
	return ConfirmSafeStyle.Render("[Y]") + "/" + ConfirmDangerStyle.Render("[N]")
}
