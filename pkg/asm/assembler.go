package asm

import (
	"io"

	"github.com/kalski/avrasm/pkg/inst"
)

// Result is the outcome of a full two-pass assembly: the packed machine
// code ready for an output emitter, plus the symbol table built during
// the first pass (useful for a disassembler or a verify subcommand that
// wants to print labels back out).
type Result struct {
	Code    []byte
	Symbols *SymbolTable
}

// Assemble runs the full pipeline against r: read, normalize, first pass
// (label resolution), second pass (encode). flashSize bounds the program
// counter; pass asm.FlashSize for the real chip.
func Assemble(r io.Reader, flashSize int) (*Result, error) {
	raw, err := ReadLines(r)
	if err != nil {
		return nil, newError(KindIoOpenFailed, 0, err.Error())
	}

	lines := NormalizeAll(raw)

	symbols, err := FirstPass(lines, flashSize)
	if err != nil {
		return nil, err
	}

	code, err := secondPass(lines, symbols)
	if err != nil {
		return nil, err
	}

	return &Result{Code: code, Symbols: symbols}, nil
}

// secondPass walks the line stream again, this time emitting the encoded
// bytes for every instruction line. Label lines contribute nothing to the
// output; their addresses were already captured in the first pass.
func secondPass(lines []Line, symbols *SymbolTable) ([]byte, error) {
	var code []byte
	pc := 0

	for _, line := range lines {
		if line.Kind() != KindInstruction {
			continue
		}

		mnemonic, operandText := inst.SplitMnemonic(line.Text)
		desc, ok := inst.Lookup(mnemonic)
		if !ok {
			// Already validated during the first pass; unreachable in
			// practice, but fail closed rather than panic on a nil
			// descriptor.
			return nil, newError(KindUnknownMnemonic, line.Number, "unknown instruction \""+mnemonic+"\"")
		}

		encoded, err := desc.Encode(inst.SplitOperands(operandText), pc, symbols)
		if err != nil {
			return nil, wrapEncodeError(err, line.Number)
		}

		code = append(code, encoded...)
		pc += desc.Length
	}

	return code, nil
}
