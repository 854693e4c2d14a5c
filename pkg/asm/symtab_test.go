package asm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFirstPassResolvesBackwardLabel(t *testing.T) {
	lines := NormalizeAll([]string{
		"start:",
		"NOP",
		"RJMP start",
	})
	table, err := FirstPass(lines, FlashSize)
	require.NoError(t, err)

	pc, ok := table.Resolve("start")
	require.True(t, ok)
	assert.Equal(t, 0, pc)
}

func TestFirstPassDuplicateLabel(t *testing.T) {
	lines := NormalizeAll([]string{
		"loop:",
		"NOP",
		"loop:",
	})
	_, err := FirstPass(lines, FlashSize)
	require.Error(t, err)
	asmErr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, KindDuplicateLabel, asmErr.Kind)
	assert.Equal(t, 3, asmErr.Line)
}

func TestFirstPassUnknownMnemonic(t *testing.T) {
	lines := NormalizeAll([]string{"FROB R1, R2"})
	_, err := FirstPass(lines, FlashSize)
	require.Error(t, err)
	asmErr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, KindUnknownMnemonic, asmErr.Kind)
}

func TestFirstPassProgramTooLarge(t *testing.T) {
	lines := NormalizeAll([]string{"NOP", "NOP"})
	_, err := FirstPass(lines, 2)
	require.Error(t, err)
	asmErr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, KindProgramTooLarge, asmErr.Kind)
}

func TestFirstPassAdvancesPcByInstructionLength(t *testing.T) {
	lines := NormalizeAll([]string{
		"JMP target",
		"target:",
	})
	table, err := FirstPass(lines, FlashSize)
	require.NoError(t, err)
	pc, ok := table.Resolve("target")
	require.True(t, ok)
	assert.Equal(t, 4, pc) // JMP is 4 bytes
}
