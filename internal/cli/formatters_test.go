package cli

import (
	"bytes"
	"strings"
	"testing"
)

func TestOutputResults(t *testing.T) {
	data := struct {
		ID   string `json:"id" yaml:"id"`
		Text string `json:"text" yaml:"text"`
	}{ID: "abc", Text: "hello"}

	tests := []struct {
		format  string
		want    []string
		wantErr bool
	}{
		{"json", []string{`"id": "abc"`, `"text": "hello"`}, false},
		{"yaml", []string{"id: abc", "text: hello"}, false},
		{"xml", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			var buf bytes.Buffer
			err := OutputResults(&buf, tt.format, data)
			if (err != nil) != tt.wantErr {
				t.Fatalf("OutputResults error = %v, wantErr %v", err, tt.wantErr)
			}
			for _, want := range tt.want {
				if !strings.Contains(buf.String(), want) {
					t.Errorf("output missing %q:\n%s", want, buf.String())
				}
			}
		})
	}
}

func TestTableFormatter(t *testing.T) {
	var buf bytes.Buffer
	table := NewTableFormatter(&buf)
	table.Header("ID", "TEXT")
	table.Row("abc12345", "hello")
	if err := table.Flush(); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d:\n%s", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[1], "--") {
		t.Errorf("expected underline row, got %q", lines[1])
	}
	if !strings.Contains(lines[2], "hello") {
		t.Errorf("expected row with text, got %q", lines[2])
	}
}

func TestFirstLine(t *testing.T) {
	tests := []struct {
		in       string
		maxWidth int
		want     string
	}{
		{"single", 20, "single"},
		{"first\nsecond", 20, "first…"},
		{"a long first line", 8, "a long …"},
		{"", 10, ""},
	}

	for _, tt := range tests {
		if got := FirstLine(tt.in, tt.maxWidth); got != tt.want {
			t.Errorf("FirstLine(%q, %d) = %q, want %q", tt.in, tt.maxWidth, got, tt.want)
		}
	}
}
