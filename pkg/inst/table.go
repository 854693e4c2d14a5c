// Package inst holds the static AVR (ATmega328) instruction table: one
// descriptor per supported mnemonic, carrying its encoded length and an
// encoder callable that packs operands into the instruction's opcode
// word(s). Both passes of the assembler consult the same table so that
// instruction sizing (first pass) and bit-packing (second pass) can never
// drift apart.
package inst

import "fmt"

// EncodeFunc packs an instruction's operands into its opcode word(s),
// already flattened to little-endian bytes. pc is the byte address at
// which this instruction will be emitted (needed for PC-relative
// branches); r resolves label operands established by the first pass.
type EncodeFunc func(operands []string, pc int, r Resolver) ([]byte, error)

// Descriptor is the static metadata the table stores per mnemonic.
type Descriptor struct {
	Mnemonic string
	Length   int // encoded length in bytes: 2 or 4
	Encode   EncodeFunc
}

// Table maps mnemonic (upper-case) to its descriptor. Immutable after
// package init; both passes only ever read it.
var Table = map[string]*Descriptor{
	"NOP":   {Mnemonic: "NOP", Length: 2, Encode: encodeNone(0x0000)},
	"RET":   {Mnemonic: "RET", Length: 2, Encode: encodeNone(0x9508)},
	"LDI":   {Mnemonic: "LDI", Length: 2, Encode: encodeLDI},
	"ADD":   {Mnemonic: "ADD", Length: 2, Encode: encodeRegRegTruncated(0x0C00)},
	"SUB":   {Mnemonic: "SUB", Length: 2, Encode: encodeRegRegTruncated(0x1800)},
	"CP":    {Mnemonic: "CP", Length: 2, Encode: encodeRegRegTruncated(0x1400)},
	"CLR":   {Mnemonic: "CLR", Length: 2, Encode: encodeCLR},
	"DEC":   {Mnemonic: "DEC", Length: 2, Encode: encodeDEC},
	"IN":    {Mnemonic: "IN", Length: 2, Encode: encodeIN},
	"OUT":   {Mnemonic: "OUT", Length: 2, Encode: encodeOUT},
	"LD":    {Mnemonic: "LD", Length: 2, Encode: encodeLDX},
	"ST":    {Mnemonic: "ST", Length: 2, Encode: encodeSTX},
	"RJMP":  {Mnemonic: "RJMP", Length: 2, Encode: encodeRelBranch12(0xC000)},
	"RCALL": {Mnemonic: "RCALL", Length: 2, Encode: encodeRelBranch12(0xD000)},
	"BRNE":  {Mnemonic: "BRNE", Length: 2, Encode: encodeRelBranch7(0x01)},
	"BRGE":  {Mnemonic: "BRGE", Length: 2, Encode: encodeRelBranch7(0x04)},
	"BRLT":  {Mnemonic: "BRLT", Length: 2, Encode: encodeRelBranch7(0x04)},
	"JMP":   {Mnemonic: "JMP", Length: 4, Encode: encodeAbsolute(0x940C)},
	"CALL":  {Mnemonic: "CALL", Length: 4, Encode: encodeAbsolute(0x940E)},
}

// Lookup returns the descriptor for mnemonic (case-insensitive), or false
// if it is not in the instruction table.
func Lookup(mnemonic string) (*Descriptor, bool) {
	d, ok := Table[toUpper(mnemonic)]
	return d, ok
}

// SplitMnemonic splits a normalized instruction line into its upper-cased
// mnemonic and the raw text of its operands (unsplit, not yet trimmed of
// individual commas).
func SplitMnemonic(line string) (mnemonic, operandText string) {
	i := 0
	for i < len(line) && line[i] != ' ' && line[i] != '\t' {
		i++
	}
	mnemonic = toUpper(line[:i])
	if i >= len(line) {
		return mnemonic, ""
	}
	return mnemonic, line[i+1:]
}

func toUpper(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'a' && c <= 'z' {
			b[i] = c - ('a' - 'A')
		}
	}
	return string(b)
}

func wantOperands(mnemonic string, got, want int) error {
	if got != want {
		return fmt.Errorf("%s requires %d operand(s), got %d", mnemonic, want, got)
	}
	return nil
}
