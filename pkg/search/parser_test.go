package search

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTokenize(t *testing.T) {
	parser := NewParser()

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", nil},
		{"words", "todo  later", []string{"todo", "later"}},
		{"quoted phrase", `"fix the bug" is:collapsed`, []string{`"fix the bug"`, "is:collapsed"}},
		{"quoted field value", `text:"two words"`, []string{`text:"two words"`}},
		{"tabs", "a\tb", []string{"a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parser.tokenize(tt.input)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("tokenize(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestParse(t *testing.T) {
	parser := NewParser()

	tests := []struct {
		name       string
		input      string
		conditions []Condition
		logic      []Operator
	}{
		{
			name:  "empty query",
			input: "",
		},
		{
			name:       "bare word",
			input:      "todo",
			conditions: []Condition{{Field: FieldText, Operator: OperatorContains, Value: "todo"}},
		},
		{
			name:  "implicit and",
			input: `todo is:collapsed`,
			conditions: []Condition{
				{Field: FieldText, Operator: OperatorContains, Value: "todo"},
				{Field: FieldState, Operator: OperatorEquals, Value: "collapsed"},
			},
			logic: []Operator{OperatorAND},
		},
		{
			name:  "or with not",
			input: `id:3f OR NOT is:Locked`,
			conditions: []Condition{
				{Field: FieldID, Operator: OperatorPrefix, Value: "3f"},
				{Field: FieldState, Operator: OperatorEquals, Value: "locked", Negate: true},
			},
			logic: []Operator{OperatorOR},
		},
		{
			name:  "dash negation and quotes",
			input: `-draft text:"next week"`,
			conditions: []Condition{
				{Field: FieldText, Operator: OperatorContains, Value: "draft", Negate: true},
				{Field: FieldText, Operator: OperatorContains, Value: "next week"},
			},
			logic: []Operator{OperatorAND},
		},
		{
			name:  "lower case operators",
			input: "a or b and c",
			conditions: []Condition{
				{Field: FieldText, Operator: OperatorContains, Value: "a"},
				{Field: FieldText, Operator: OperatorContains, Value: "b"},
				{Field: FieldText, Operator: OperatorContains, Value: "c"},
			},
			logic: []Operator{OperatorOR, OperatorAND},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, err := parser.Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.input, err)
			}
			if diff := cmp.Diff(tt.conditions, query.Conditions); diff != "" {
				t.Errorf("conditions mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.logic, query.Logic); diff != "" {
				t.Errorf("logic mismatch (-want +got):\n%s", diff)
			}
			if query.Raw != tt.input {
				t.Errorf("Raw = %q, want %q", query.Raw, tt.input)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	parser := NewParser()

	tests := []string{
		"AND todo",
		"todo OR",
		"todo AND OR later",
		"NOT",
		"is:sideways",
		"when:today",
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			if _, err := parser.Parse(input); err == nil {
				t.Errorf("Parse(%q) expected an error", input)
			}
		})
	}
}
