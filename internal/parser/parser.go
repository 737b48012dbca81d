// Package parser extracts a lesson reference and word pairs from a free-form
// request such as "Add to Greetings: hello - hi, bye - cya".
// Pure functions: no I/O, no shared mutable state.
package parser

import (
	"regexp"
	"strings"

	"github.com/samber/lo"

	"github.com/heartmarshall/flashcards/internal/domain"
)

var (
	segmentSeparator = regexp.MustCompile(`[,;]`)
	pairSeparator    = regexp.MustCompile(`\s*[-–—]\s*`)
)

// Request is a successfully parsed request.
type Request struct {
	Lesson string
	Pairs  []domain.WordPair
}

// Parser tries its rules in order until one matches.
type Parser struct {
	rules []Rule
}

// New creates a Parser. Without rules it uses DefaultRules.
func New(rules ...Rule) *Parser {
	if len(rules) == 0 {
		rules = DefaultRules()
	}
	return &Parser{rules: rules}
}

var defaultParser = New()

// Parse parses text with the default rules.
func Parse(text string) (Request, error) {
	return defaultParser.Parse(text)
}

// Parse returns the lesson reference and the pairs in input order.
// It fails with *ParseError on the first problem; no partial result is returned.
func (p *Parser) Parse(text string) (Request, error) {
	lesson, payload, ok := p.match(text)
	if !ok {
		return Request{}, &ParseError{Kind: UnrecognizedStructure, Input: text}
	}

	candidates := SplitPayload(payload)
	pairs := make([]domain.WordPair, 0, len(candidates))
	for _, c := range candidates {
		pair, err := ParsePair(c)
		if err != nil {
			return Request{}, err
		}
		pairs = append(pairs, pair)
	}

	return Request{Lesson: lesson, Pairs: pairs}, nil
}

func (p *Parser) match(text string) (lesson, payload string, ok bool) {
	for _, r := range p.rules {
		rawLesson, rawPayload, matched := r.Match(text)
		if !matched {
			continue
		}
		lesson = cleanLessonName(rawLesson)
		if lesson == "" {
			continue
		}
		return lesson, strings.TrimSpace(rawPayload), true
	}
	return "", "", false
}

// SplitPayload splits a payload on commas and semicolons, dropping blank segments.
func SplitPayload(payload string) []string {
	return lo.FilterMap(segmentSeparator.Split(payload, -1), func(s string, _ int) (string, bool) {
		s = strings.TrimSpace(s)
		return s, s != ""
	})
}

// ParsePair splits "term - translation" on a hyphen, en dash or em dash.
func ParsePair(candidate string) (domain.WordPair, error) {
	parts := pairSeparator.Split(candidate, -1)
	if len(parts) != 2 {
		return domain.WordPair{}, &ParseError{Kind: MalformedPair, Input: candidate}
	}
	pair, ok := domain.NewWordPair(parts[0], parts[1])
	if !ok {
		return domain.WordPair{}, &ParseError{Kind: MalformedPair, Input: candidate}
	}
	return pair, nil
}
