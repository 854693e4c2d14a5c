package asm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssembleSimpleProgram(t *testing.T) {
	source := strings.Join([]string{
		"; trivial program",
		"LDI R16, 0x0A",
		"RET",
	}, "\n")

	result, err := Assemble(strings.NewReader(source), FlashSize)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x0A, 0xE0, 0x08, 0x95}, result.Code)
}

func TestAssembleResolvesBackwardBranch(t *testing.T) {
	source := strings.Join([]string{
		"loop:",
		"DEC R16",
		"BRNE loop",
	}, "\n")

	result, err := Assemble(strings.NewReader(source), FlashSize)
	require.NoError(t, err)
	// DEC R16: 0x940A | (16<<4) = 0x950A -> bytes 0A 95.
	// BRNE at pc=2: offset=(0-2-2)/2=-2 -> 0x7E two's complement.
	assert.Equal(t, []byte{0x0A, 0x95, 0xF1, 0xF7}, result.Code)
}

func TestAssemblePropagatesEncodeErrorWithLineNumber(t *testing.T) {
	source := strings.Join([]string{
		"NOP",
		"LDI R16, 0x100",
	}, "\n")

	_, err := Assemble(strings.NewReader(source), FlashSize)
	require.Error(t, err)
	asmErr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, KindImmediateOutOfRange, asmErr.Kind)
	assert.Equal(t, 2, asmErr.Line)
}

func TestAssembleUnknownLabelReference(t *testing.T) {
	source := "RJMP nowhere"
	_, err := Assemble(strings.NewReader(source), FlashSize)
	require.Error(t, err)
	asmErr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, KindUnknownLabel, asmErr.Kind)
}
