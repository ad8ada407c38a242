// Package annotlog parses the manual review log that classifies dataset
// lines as keep (+), remove (-) or uncertain (?).
package annotlog

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// Sets holds the three disjoint line-number sets parsed from a review log.
// A line number appears in at most one set; when the log assigns the same
// line more than once, the last directive wins.
type Sets struct {
	Keep      map[int]bool
	Remove    map[int]bool
	Uncertain map[int]bool

	// Malformed counts recognized directives whose line reference could
	// not be parsed as an integer. These are skipped, never fatal.
	Malformed int
}

// NewSets returns empty line-number sets.
func NewSets() *Sets {
	return &Sets{
		Keep:      make(map[int]bool),
		Remove:    make(map[int]bool),
		Uncertain: make(map[int]bool),
	}
}

func (s *Sets) assign(target map[int]bool, line int) {
	delete(s.Keep, line)
	delete(s.Remove, line)
	delete(s.Uncertain, line)
	target[line] = true
}

// ParseFile parses a review log from disk.
func ParseFile(path string, logger *zap.Logger) (*Sets, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open annotation log: %w", err)
	}
	defer f.Close()

	return Parse(f, logger)
}

// Parse reads a review log, one directive per line. A line is recognized
// only if it starts with +, - or ? and contains the token "Line" followed
// by a colon-delimited integer; anything else is ignored. A recognized
// directive with an unparsable number is skipped with a warning.
func Parse(r io.Reader, logger *zap.Logger) (*Sets, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	sets := NewSets()
	scanner := bufio.NewScanner(r)
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var target map[int]bool
		switch line[0] {
		case '+':
			target = sets.Keep
		case '-':
			target = sets.Remove
		case '?':
			target = sets.Uncertain
		default:
			continue
		}

		ref, ok := lineReference(line)
		if !ok {
			continue
		}

		n, err := strconv.Atoi(ref)
		if err != nil {
			sets.Malformed++
			logger.Warn("malformed line reference in annotation log",
				zap.Int("log_line", lineNo),
				zap.String("reference", ref))
			continue
		}
		sets.assign(target, n)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read annotation log: %w", err)
	}

	return sets, nil
}

// lineReference extracts the text between "Line" and the next colon.
// Returns false when the directive carries no "Line" token at all.
func lineReference(line string) (string, bool) {
	_, rest, found := strings.Cut(line, "Line")
	if !found {
		return "", false
	}
	ref, _, _ := strings.Cut(rest, ":")
	return strings.TrimSpace(ref), true
}
