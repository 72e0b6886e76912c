package search

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/pluqqy/pluqqy-board/pkg/models"
)

// Result is a matching comment with its relevance score
type Result struct {
	Comment  models.CommentState `json:"comment" yaml:"comment"`
	Score    float64             `json:"score" yaml:"score"`
	Excerpts []string            `json:"excerpts,omitempty" yaml:"excerpts,omitempty"`
}

// Index holds the comments being searched
type Index struct {
	mu       sync.RWMutex
	comments []models.CommentState

	// word -> comment indices
	contentTokens map[string][]int
}

// Engine searches the comments of a board
type Engine struct {
	index  *Index
	parser *Parser
}

// NewEngine creates a new search engine
func NewEngine() *Engine {
	return &Engine{
		index:  &Index{contentTokens: make(map[string][]int)},
		parser: NewParser(),
	}
}

// BuildIndex replaces the indexed comments
func (e *Engine) BuildIndex(comments []models.CommentState) {
	e.index.mu.Lock()
	defer e.index.mu.Unlock()

	e.index.comments = append([]models.CommentState(nil), comments...)
	e.index.contentTokens = make(map[string][]int)
	for i, c := range e.index.comments {
		for _, token := range deduplicateTokens(tokenizeContent(c.Text)) {
			e.index.contentTokens[token] = append(e.index.contentTokens[token], i)
		}
	}
}

// Search returns the comments matching queryStr, best first. An empty query
// matches every comment.
func (e *Engine) Search(queryStr string) ([]Result, error) {
	query, err := e.parser.Parse(queryStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse query: %w", err)
	}

	e.index.mu.RLock()
	defer e.index.mu.RUnlock()

	var finalMatches []int
	if len(query.Conditions) == 0 {
		for i := range e.index.comments {
			finalMatches = append(finalMatches, i)
		}
	} else {
		conditionMatches := make([][]int, 0, len(query.Conditions))
		for _, condition := range query.Conditions {
			conditionMatches = append(conditionMatches, e.evaluateCondition(condition))
		}
		finalMatches = e.combineMatches(conditionMatches, query.Logic)
	}
	sort.Ints(finalMatches)

	results := make([]Result, 0, len(finalMatches))
	for _, idx := range finalMatches {
		c := e.index.comments[idx]
		results = append(results, Result{
			Comment:  c,
			Score:    e.calculateScore(idx, query),
			Excerpts: e.generateExcerpts(c, query),
		})
	}

	// ties keep board order
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	return results, nil
}

func (e *Engine) evaluateCondition(condition Condition) []int {
	var matches []int

	switch condition.Field {
	case FieldText:
		term := strings.ToLower(condition.Value)
		for i, c := range e.index.comments {
			if strings.Contains(strings.ToLower(c.Text), term) {
				matches = append(matches, i)
			}
		}

	case FieldID:
		prefix := strings.ToLower(condition.Value)
		for i, c := range e.index.comments {
			if strings.HasPrefix(strings.ToLower(c.ID), prefix) {
				matches = append(matches, i)
			}
		}

	case FieldState:
		for i, c := range e.index.comments {
			if hasState(c, condition.Value) {
				matches = append(matches, i)
			}
		}
	}

	if condition.Negate {
		matches = e.invertMatches(matches)
	}
	return matches
}

func hasState(c models.CommentState, state string) bool {
	switch state {
	case "collapsed":
		return c.Collapsed
	case "expanded":
		return !c.Collapsed
	case "editable":
		return c.IsEditable()
	case "movable":
		return c.IsMovable()
	case "deletable":
		return c.IsDeletable()
	case "locked":
		return !c.IsEditable() && !c.IsMovable() && !c.IsDeletable()
	}
	return false
}

// combineMatches folds the match sets left to right with the query's operators
func (e *Engine) combineMatches(conditionMatches [][]int, operators []Operator) []int {
	if len(conditionMatches) == 0 {
		return nil
	}

	result := conditionMatches[0]
	for i := 1; i < len(conditionMatches); i++ {
		if i-1 >= len(operators) {
			break
		}
		switch operators[i-1] {
		case OperatorAND:
			result = intersectSlices(result, conditionMatches[i])
		case OperatorOR:
			result = unionSlices(result, conditionMatches[i])
		}
	}
	return result
}

// invertMatches returns all indices not in the given matches
func (e *Engine) invertMatches(matches []int) []int {
	matchSet := make(map[int]bool, len(matches))
	for _, m := range matches {
		matchSet[m] = true
	}

	var inverted []int
	for i := range e.index.comments {
		if !matchSet[i] {
			inverted = append(inverted, i)
		}
	}
	return inverted
}

func (e *Engine) calculateScore(idx int, query *Query) float64 {
	c := e.index.comments[idx]
	score := 1.0
	lower := strings.ToLower(c.Text)

	for _, condition := range query.Conditions {
		if condition.Negate {
			continue
		}
		switch condition.Field {
		case FieldText:
			term := strings.ToLower(condition.Value)
			if term == "" {
				continue
			}
			// whole word matches rank above substrings
			if containsIndex(e.index.contentTokens[term], idx) {
				score += 1.0
			}
			score += 0.5 * float64(strings.Count(lower, term))
			if strings.HasPrefix(lower, term) {
				score += 0.5
			}
		case FieldID:
			if strings.EqualFold(c.ID, condition.Value) {
				score += 2.0
			}
		}
	}
	return score
}

func (e *Engine) generateExcerpts(c models.CommentState, query *Query) []string {
	var excerpts []string
	for _, condition := range query.Conditions {
		if condition.Field != FieldText || condition.Negate || condition.Value == "" {
			continue
		}
		excerpts = append(excerpts, extractExcerpts(c.Text, condition.Value, 3, 30)...)
	}
	return excerpts
}

func containsIndex(indices []int, idx int) bool {
	for _, i := range indices {
		if i == idx {
			return true
		}
	}
	return false
}

// tokenizeContent splits text into lower case words of three or more letters
func tokenizeContent(content string) []string {
	var tokens []string
	content = strings.ReplaceAll(content, "-", " ")
	for _, word := range strings.Fields(content) {
		word = strings.Trim(word, ".,!?;:\"'()[]*_`#")
		if len(word) > 2 {
			tokens = append(tokens, strings.ToLower(word))
		}
	}
	return tokens
}

func deduplicateTokens(tokens []string) []string {
	seen := make(map[string]bool, len(tokens))
	var result []string
	for _, t := range tokens {
		if !seen[t] {
			seen[t] = true
			result = append(result, t)
		}
	}
	return result
}

func intersectSlices(a, b []int) []int {
	set := make(map[int]bool, len(a))
	for _, v := range a {
		set[v] = true
	}

	var result []int
	for _, v := range b {
		if set[v] {
			result = append(result, v)
		}
	}
	return result
}

func unionSlices(a, b []int) []int {
	set := make(map[int]bool, len(a)+len(b))
	for _, v := range a {
		set[v] = true
	}
	for _, v := range b {
		set[v] = true
	}

	result := make([]int, 0, len(set))
	for v := range set {
		result = append(result, v)
	}
	sort.Ints(result)
	return result
}

// extractExcerpts returns up to maxExcerpts snippets of content around
// searchTerm, each with contextChars of surrounding text
func extractExcerpts(content, searchTerm string, maxExcerpts, contextChars int) []string {
	var excerpts []string
	lowerContent := strings.ToLower(content)
	lowerTerm := strings.ToLower(searchTerm)
	if len(lowerContent) != len(content) || lowerTerm == "" {
		// case folding changed byte offsets; fall back to an exact search
		lowerContent, lowerTerm = content, searchTerm
	}

	index := 0
	for i := 0; i < maxExcerpts; i++ {
		pos := strings.Index(lowerContent[index:], lowerTerm)
		if pos == -1 || lowerTerm == "" {
			break
		}

		pos += index
		start := max(pos-contextChars, 0)
		end := min(pos+len(lowerTerm)+contextChars, len(content))
		start, end = runeStart(content, start), runeEnd(content, end)

		excerpt := strings.ReplaceAll(content[start:end], "\n", " ")
		if start > 0 {
			excerpt = "..." + excerpt
		}
		if end < len(content) {
			excerpt += "..."
		}

		excerpts = append(excerpts, excerpt)
		index = pos + len(lowerTerm)
	}
	return excerpts
}

// runeStart moves i back to the start of a UTF-8 sequence
func runeStart(s string, i int) int {
	for i > 0 && i < len(s) && s[i]&0xC0 == 0x80 {
		i--
	}
	return i
}

// runeEnd moves i forward past a partial UTF-8 sequence
func runeEnd(s string, i int) int {
	for i < len(s) && s[i]&0xC0 == 0x80 {
		i++
	}
	return i
}
