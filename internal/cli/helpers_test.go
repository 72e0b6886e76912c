package cli

import (
	"bytes"
	"strings"
	"testing"
)

func withStreams(t *testing.T, input string) (*bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	oldOut, oldErr, oldIn := Stdout, Stderr, Stdin
	var out, errOut bytes.Buffer
	Stdout, Stderr, Stdin = &out, &errOut, strings.NewReader(input)
	t.Cleanup(func() {
		Stdout, Stderr, Stdin = oldOut, oldErr, oldIn
		SetGlobalFlags(false, false, false, false)
	})
	return &out, &errOut
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		defaultYes bool
		skip       bool
		want       bool
	}{
		{"yes", "y\n", false, false, true},
		{"full yes", "YES\n", false, false, true},
		{"no", "n\n", true, false, false},
		{"empty takes default yes", "\n", true, false, true},
		{"empty takes default no", "\n", false, false, false},
		{"--yes skips the prompt", "", false, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withStreams(t, tt.input)
			SetGlobalFlags(false, false, tt.skip, false)

			got, err := Confirm("Delete?", tt.defaultYes)
			if err != nil {
				t.Fatalf("Confirm returned error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Confirm() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPrintHelpers(t *testing.T) {
	out, errOut := withStreams(t, "")

	PrintSuccess("saved %d", 2)
	PrintWarning("careful")
	if !strings.Contains(out.String(), "✓ saved 2") {
		t.Errorf("unexpected stdout %q", out.String())
	}
	if !strings.Contains(errOut.String(), "⚠ careful") {
		t.Errorf("unexpected stderr %q", errOut.String())
	}

	out.Reset()
	SetGlobalFlags(false, true, false, false)
	PrintInfo("plain")
	if !strings.Contains(out.String(), "INFO: plain") {
		t.Errorf("no-color output = %q", out.String())
	}

	out.Reset()
	SetGlobalFlags(true, false, false, false)
	PrintSuccess("hidden")
	PrintError("still shown")
	if out.Len() != 0 {
		t.Errorf("quiet mode printed %q", out.String())
	}
	if !strings.Contains(errOut.String(), "✗ still shown") {
		t.Errorf("errors must print in quiet mode, got %q", errOut.String())
	}
}
