package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestConfirmationModel(t *testing.T) {
	tests := []struct {
		name          string
		key           string
		wantConfirmed bool
		wantCancelled bool
		wantActive    bool
	}{
		{"yes confirms", "y", true, false, false},
		{"upper Y confirms", "Y", true, false, false},
		{"no cancels", "n", false, true, false},
		{"esc cancels", "esc", false, true, false},
		{"other keys are ignored", "x", false, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var confirmed, cancelled bool
			m := NewConfirmation()
			m.ShowInline("Delete?", true,
				func() tea.Cmd { confirmed = true; return nil },
				func() tea.Cmd { cancelled = true; return nil })

			m.Update(keyMsg(tt.key))

			if confirmed != tt.wantConfirmed {
				t.Errorf("confirmed = %v, want %v", confirmed, tt.wantConfirmed)
			}
			if cancelled != tt.wantCancelled {
				t.Errorf("cancelled = %v, want %v", cancelled, tt.wantCancelled)
			}
			if m.Active() != tt.wantActive {
				t.Errorf("Active() = %v, want %v", m.Active(), tt.wantActive)
			}
		})
	}
}

func TestConfirmationView(t *testing.T) {
	m := NewConfirmation()
	if m.View() != "" {
		t.Error("inactive confirmation should render nothing")
	}

	m.ShowInline("Delete this comment?", true, nil, nil)
	if m.IsDialog() {
		t.Error("inline confirmation reported as dialog")
	}
	view := m.View()
	for _, want := range []string{"Delete this comment?", "[Y]", "[N]"} {
		if !strings.Contains(view, want) {
			t.Errorf("inline view missing %q: %q", want, view)
		}
	}

	m.ShowDialog("Unsaved Changes", "Quit anyway?", "Changes will be lost.", true, nil, nil)
	if !m.IsDialog() {
		t.Error("dialog confirmation not reported as dialog")
	}
	view = m.View()
	for _, want := range []string{"Unsaved Changes", "Quit anyway?", "Changes will be lost.", "(yes / no)"} {
		if !strings.Contains(view, want) {
			t.Errorf("dialog view missing %q", want)
		}
	}
}
