package asm

import (
	"fmt"

	"github.com/kalski/avrasm/pkg/inst"
)

// FlashSize is the ATmega328's program memory size in bytes; the first
// pass's PC must never exceed it. Overridable via pkg/config.
const FlashSize = 0x8000

// SymbolTable maps label name to its PC byte address, as established by
// the first pass. It implements inst.Resolver so the second pass's
// encoders can resolve branch/jump/call targets directly.
type SymbolTable struct {
	pcByLabel map[string]int
}

func newSymbolTable() *SymbolTable {
	return &SymbolTable{pcByLabel: make(map[string]int)}
}

// Resolve implements inst.Resolver.
func (t *SymbolTable) Resolve(label string) (int, bool) {
	pc, ok := t.pcByLabel[label]
	return pc, ok
}

func (t *SymbolTable) define(label string, pc int) error {
	if _, exists := t.pcByLabel[label]; exists {
		return fmt.Errorf("label %q already defined", label)
	}
	t.pcByLabel[label] = pc
	return nil
}

// FirstPass walks the normalized line stream once, building the symbol
// table and validating that every instruction line's mnemonic is known.
// No operand validation happens here — only the mnemonic is needed to
// size the instruction (spec.md §4.2).
func FirstPass(lines []Line, flashSize int) (*SymbolTable, error) {
	table := newSymbolTable()
	pc := 0

	for _, line := range lines {
		switch line.Kind() {
		case KindEmpty, KindComment:
			continue
		case KindLabel:
			if err := table.define(line.Label(), pc); err != nil {
				return nil, newError(KindDuplicateLabel, line.Number, err.Error())
			}
		case KindInstruction:
			mnemonic, _ := inst.SplitMnemonic(line.Text)
			desc, ok := inst.Lookup(mnemonic)
			if !ok {
				return nil, newError(KindUnknownMnemonic, line.Number, fmt.Sprintf("unknown instruction %q", mnemonic))
			}
			pc += desc.Length
			if pc > flashSize {
				return nil, newError(KindProgramTooLarge, line.Number, fmt.Sprintf("program counter 0x%X exceeds flash size 0x%X", pc, flashSize))
			}
		}
	}

	return table, nil
}
