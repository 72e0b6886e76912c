package search

import (
	"fmt"
	"regexp"
	"strings"
)

// FieldType represents the part of a comment being searched
type FieldType string

const (
	FieldText  FieldType = "text"
	FieldID    FieldType = "id"
	FieldState FieldType = "is"
)

// Operator represents a search operator
type Operator string

const (
	OperatorEquals   Operator = "="
	OperatorContains Operator = "contains"
	OperatorPrefix   Operator = "prefix"
	OperatorAND      Operator = "AND"
	OperatorOR       Operator = "OR"
)

// States accepted by is:
var validStates = map[string]bool{
	"collapsed": true,
	"expanded":  true,
	"editable":  true,
	"movable":   true,
	"deletable": true,
	"locked":    true,
}

// Condition represents a single search condition
type Condition struct {
	Field    FieldType
	Operator Operator
	Value    string
	Negate   bool
}

// Query represents a parsed search query
type Query struct {
	Conditions []Condition
	Logic      []Operator // between consecutive conditions
	Raw        string
}

// Parser handles parsing of search queries
type Parser struct {
	fieldPattern  *regexp.Regexp
	quotedPattern *regexp.Regexp
}

// NewParser creates a new search query parser
func NewParser() *Parser {
	return &Parser{
		fieldPattern:  regexp.MustCompile(`^(\w+):(.+)$`),
		quotedPattern: regexp.MustCompile(`^"([^"]*)"$`),
	}
}

// Parse parses a query such as `todo is:collapsed OR NOT id:3f` into a Query
func (p *Parser) Parse(input string) (*Query, error) {
	query := &Query{Raw: input}

	if err := p.parseTokens(p.tokenize(input), query); err != nil {
		return nil, err
	}
	return query, nil
}

// tokenize splits the input on spaces outside quotes
func (p *Parser) tokenize(input string) []string {
	var tokens []string
	var current strings.Builder
	inQuotes := false

	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}

	for _, r := range input {
		switch {
		case r == '"':
			inQuotes = !inQuotes
			current.WriteRune(r)
		case (r == ' ' || r == '\t') && !inQuotes:
			flush()
		default:
			current.WriteRune(r)
		}
	}
	flush()

	return tokens
}

func (p *Parser) parseTokens(tokens []string, query *Query) error {
	// explicit marks whether the previous token was AND/OR
	explicit := false

	for i := 0; i < len(tokens); i++ {
		token := tokens[i]

		switch strings.ToUpper(token) {
		case "AND", "OR":
			if len(query.Conditions) == 0 {
				return fmt.Errorf("unexpected operator %s at beginning of query", token)
			}
			if explicit {
				return fmt.Errorf("unexpected operator %s after another operator", token)
			}
			query.Logic = append(query.Logic, Operator(strings.ToUpper(token)))
			explicit = true
			continue
		}

		negate := false
		if strings.ToUpper(token) == "NOT" {
			i++
			if i >= len(tokens) {
				return fmt.Errorf("NOT operator requires a condition")
			}
			negate = true
			token = tokens[i]
		} else if strings.HasPrefix(token, "-") && len(token) > 1 {
			negate = true
			token = token[1:]
		}

		cond, err := p.parseCondition(token)
		if err != nil {
			return err
		}
		cond.Negate = negate

		// adjacent conditions are ANDed
		if len(query.Conditions) > 0 && !explicit {
			query.Logic = append(query.Logic, OperatorAND)
		}
		query.Conditions = append(query.Conditions, cond)
		explicit = false
	}

	if explicit {
		return fmt.Errorf("query ends with an operator")
	}
	return nil
}

// parseCondition parses a single field:value or bare word
func (p *Parser) parseCondition(token string) (Condition, error) {
	matches := p.fieldPattern.FindStringSubmatch(token)
	if len(matches) != 3 {
		return Condition{Field: FieldText, Operator: OperatorContains, Value: p.unquote(token)}, nil
	}

	value := p.unquote(matches[2])
	switch FieldType(strings.ToLower(matches[1])) {
	case FieldText:
		return Condition{Field: FieldText, Operator: OperatorContains, Value: value}, nil
	case FieldID:
		return Condition{Field: FieldID, Operator: OperatorPrefix, Value: value}, nil
	case FieldState:
		state := strings.ToLower(value)
		if !validStates[state] {
			return Condition{}, fmt.Errorf("unknown state %q (expected collapsed, expanded, editable, movable, deletable or locked)", value)
		}
		return Condition{Field: FieldState, Operator: OperatorEquals, Value: state}, nil
	default:
		return Condition{}, fmt.Errorf("unknown field: %s", matches[1])
	}
}

// unquote removes quotes from a string if present
func (p *Parser) unquote(s string) string {
	if matches := p.quotedPattern.FindStringSubmatch(s); len(matches) == 2 {
		return matches[1]
	}
	return s
}
