package asm

import "testing"

import "github.com/stretchr/testify/assert"

func TestLineKind(t *testing.T) {
	cases := []struct {
		raw  string
		kind Kind
	}{
		{"", KindEmpty},
		{"   \t  ", KindEmpty},
		{"; a comment", KindComment},
		{"  ; indented comment", KindComment},
		{"loop:", KindLabel},
		{"  loop:  ", KindLabel},
		{"LDI R16, 0x0A", KindInstruction},
	}
	for _, c := range cases {
		line := Normalize(1, c.raw)
		assert.Equal(t, c.kind, line.Kind(), "raw=%q", c.raw)
	}
}

func TestLineLabel(t *testing.T) {
	line := Normalize(1, "  loop:  ")
	assert.Equal(t, "loop", line.Label())
}

func TestNormalizeAllAssignsLineNumbers(t *testing.T) {
	lines := NormalizeAll([]string{"NOP", "", "RET"})
	assert.Equal(t, 1, lines[0].Number)
	assert.Equal(t, 2, lines[1].Number)
	assert.Equal(t, 3, lines[2].Number)
}
