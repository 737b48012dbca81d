// Package csvimport reads term/translation pairs from Quizlet-style exports.
// Pure function: reader in, domain structs out. No database dependencies.
//
// The first non-blank line is a header. Every following line is split on tabs
// when it contains one, otherwise on commas, so files mixing both still load.
package csvimport

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/samber/lo"

	"github.com/heartmarshall/flashcards/internal/domain"
)

// ErrNoRows is returned when a file has no usable rows after the header.
var ErrNoRows = errors.New("no words found")

// ParseFile opens path and parses it with Parse.
func ParseFile(path string) ([]domain.WordPair, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	pairs, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return pairs, nil
}

// Parse returns pairs in file order. Rows with fewer than two fields or an
// empty term or translation are skipped.
func Parse(r io.Reader) ([]domain.WordPair, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	lines = lo.Filter(lines, func(line string, _ int) bool {
		return strings.TrimSpace(line) != ""
	})
	if len(lines) < 2 {
		return nil, ErrNoRows
	}

	pairs := lo.FilterMap(lines[1:], func(line string, _ int) (domain.WordPair, bool) {
		return parseLine(line)
	})
	if len(pairs) == 0 {
		return nil, ErrNoRows
	}
	return pairs, nil
}

func parseLine(line string) (domain.WordPair, bool) {
	delim := ","
	if strings.Contains(line, "\t") {
		delim = "\t"
	}

	fields := strings.Split(line, delim)
	if len(fields) < 2 {
		return domain.WordPair{}, false
	}
	return domain.NewWordPair(unquote(fields[0]), unquote(fields[1]))
}

func unquote(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, `"`)
	return strings.TrimSuffix(s, `"`)
}
