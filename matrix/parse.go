// SPDX-License-Identifier: MIT
// Package matrix: reading the rendered matrix form back.

package matrix

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/patmatch/pattern"
)

// ParseRow reads one rendered row `( p1  p2 -> action )`.
func ParseRow(line string, sig *pattern.Signature) (Row, error) {
	s := strings.TrimSpace(line)
	if len(s) < 2 || s[0] != '(' || s[len(s)-1] != ')' {
		return Row{}, fmt.Errorf("ParseRow: %w: %q", ErrMalformedRow, line)
	}
	inner := s[1 : len(s)-1]

	// the arrow never occurs inside a pattern, so the last one splits the row
	arrow := strings.LastIndex(inner, "->")
	if arrow < 0 {
		return Row{}, fmt.Errorf("ParseRow: %w: missing '->' in %q", ErrMalformedRow, line)
	}
	action, err := strconv.Atoi(strings.TrimSpace(inner[arrow+2:]))
	if err != nil {
		return Row{}, fmt.Errorf("ParseRow: %w: bad action in %q", ErrMalformedRow, line)
	}
	ps, err := pattern.ParseSeq(inner[:arrow], sig)
	if err != nil {
		return Row{}, fmt.Errorf("ParseRow: %w", err)
	}

	return Row{patterns: ps, action: action}, nil
}

// Parse reads a matrix rendered by Matrix.String: one row per non-blank
// line. Constructor names are resolved through sig. The result is
// validated as by New, so Parse(m.String()) renders back to m.String().
func Parse(text string, sig *pattern.Signature) (*Matrix, error) {
	var rows []Row
	sc := bufio.NewScanner(strings.NewReader(text))
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		r, err := ParseRow(line, sig)
		if err != nil {
			return nil, fmt.Errorf("Parse: line %d: %w", lineNo, err)
		}
		rows = append(rows, r)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("Parse: %w", err)
	}

	m, err := New(rows...)
	if err != nil {
		return nil, fmt.Errorf("Parse: %w", err)
	}

	return m, nil
}
