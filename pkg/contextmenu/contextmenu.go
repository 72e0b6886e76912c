package contextmenu

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pluqqy/pluqqy-board/pkg/models"
)

// Option is one entry of a context menu
type Option struct {
	Text     string
	Enabled  bool
	Callback func()
}

// Model is a small popup menu anchored at a workspace position
type Model struct {
	active  bool
	options []Option
	cursor  int
	at      models.Coordinate
}

// New creates a hidden menu
func New() *Model {
	return &Model{}
}

// Show opens the menu with options at the given anchor. The cursor starts on
// the first enabled entry.
func (m *Model) Show(options []Option, at models.Coordinate) {
	m.options = options
	m.at = at
	m.active = len(options) > 0
	m.cursor = 0
	for i, opt := range options {
		if opt.Enabled {
			m.cursor = i
			break
		}
	}
}

// Hide closes the menu
func (m *Model) Hide() {
	m.active = false
	m.options = nil
}

func (m *Model) Active() bool {
	return m.active
}

// Anchor returns where the menu was opened
func (m *Model) Anchor() models.Coordinate {
	return m.at
}

func (m *Model) Options() []Option {
	return m.options
}

func (m *Model) Cursor() int {
	return m.cursor
}

// Update handles navigation keys. Enter runs the highlighted option if it is
// enabled and closes the menu.
func (m *Model) Update(msg tea.KeyMsg) {
	if !m.active {
		return
	}

	switch msg.String() {
	case "up", "k":
		m.move(-1)
	case "down", "j":
		m.move(1)
	case "esc", "q":
		m.Hide()
	case "enter":
		if m.cursor < len(m.options) {
			opt := m.options[m.cursor]
			if !opt.Enabled {
				return
			}
			m.Hide()
			if opt.Callback != nil {
				opt.Callback()
			}
		}
	}
}

func (m *Model) move(delta int) {
	n := len(m.options)
	if n == 0 {
		return
	}
	m.cursor = (m.cursor + delta + n) % n
}

// View renders the menu as a bordered list
func (m *Model) View() string {
	if !m.active {
		return ""
	}

	normal := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	disabled := lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Italic(true)
	selected := lipgloss.NewStyle().
		Foreground(lipgloss.Color("170")).
		Background(lipgloss.Color("236")).
		Bold(true)

	var b strings.Builder
	for i, opt := range m.options {
		line := " " + opt.Text + " "
		switch {
		case i == m.cursor:
			line = selected.Render("▸" + line)
		case !opt.Enabled:
			line = disabled.Render(" " + line)
		default:
			line = normal.Render(" " + line)
		}
		b.WriteString(line)
		if i < len(m.options)-1 {
			b.WriteString("\n")
		}
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("170")).
		Render(b.String())
}
