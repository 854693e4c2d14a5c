// Package asm implements the two-pass core: source line normalization,
// first-pass label resolution, and second-pass encoding into a flat
// machine-code byte buffer.
package asm

import "strings"

// Kind classifies a normalized source line.
type Kind int

const (
	KindEmpty Kind = iota
	KindComment
	KindLabel
	KindInstruction
)

// Line is one source line plus its 1-based line number, after
// normalization (leading/trailing space and tab trimmed).
type Line struct {
	Number int
	Text   string
}

// Normalize trims leading and trailing ASCII space and horizontal tab from
// raw, preserving the 1-based line number and everything else about the
// line (case, internal whitespace, emptiness).
func Normalize(number int, raw string) Line {
	return Line{Number: number, Text: trimSpaceTab(raw)}
}

func trimSpaceTab(s string) string {
	return strings.Trim(s, " \t")
}

// Kind classifies the line per spec.md §3: empty, comment (first non-space
// char ';'), label definition (ends with ':'), or instruction.
func (l Line) Kind() Kind {
	if l.Text == "" {
		return KindEmpty
	}
	if l.Text[0] == ';' {
		return KindComment
	}
	if strings.HasSuffix(l.Text, ":") {
		return KindLabel
	}
	return KindInstruction
}

// Label returns the label name for a KindLabel line (the text before the
// trailing colon). Only valid when Kind() == KindLabel.
func (l Line) Label() string {
	return l.Text[:len(l.Text)-1]
}

// NormalizeAll normalizes a full ordered slice of raw source lines,
// assigning 1-based line numbers in order.
func NormalizeAll(raw []string) []Line {
	lines := make([]Line, len(raw))
	for i, r := range raw {
		lines[i] = Normalize(i+1, r)
	}
	return lines
}
