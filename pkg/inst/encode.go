package inst

import "fmt"

func operandAt(ops []string, i int) string {
	if i < 0 || i >= len(ops) {
		return ""
	}
	return ops[i]
}

func word(w uint16) []byte {
	return []byte{byte(w & 0xFF), byte(w >> 8)}
}

// encodeNone handles zero-operand instructions (NOP, RET): the opcode word
// is fixed regardless of anything on the line.
func encodeNone(base uint16) EncodeFunc {
	return func(operands []string, pc int, r Resolver) ([]byte, error) {
		return word(base), nil
	}
}

// encodeLDI packs LDI Rd,K: Rd in 16..31, K in 0..255.
//
//	0xE000 | ((K & 0xF0) << 4) | ((Rd-16) << 4) | (K & 0x0F)
func encodeLDI(operands []string, pc int, r Resolver) ([]byte, error) {
	rd, err := parseRegister(operandAt(operands, 0), 16, 31)
	if err != nil {
		return nil, err
	}
	k, err := parseImmediate(operandAt(operands, 1), 0, 255)
	if err != nil {
		return nil, err
	}
	op := 0xE000 | uint16((k&0xF0)<<4) | uint16((rd-16)<<4) | uint16(k&0x0F)
	return word(op), nil
}

// encodeRegRegTruncated handles ADD/SUB/CP Rd,Rr: Rd takes the full 5-bit
// field, Rr is truncated to a 4-bit slot — register numbers >= 16 in the
// Rr position are rejected rather than silently truncated (spec.md §9).
func encodeRegRegTruncated(base uint16) EncodeFunc {
	return func(operands []string, pc int, r Resolver) ([]byte, error) {
		rd, err := parseRegister(operandAt(operands, 0), 0, 31)
		if err != nil {
			return nil, err
		}
		rr, err := parseRegister(operandAt(operands, 1), 0, 15)
		if err != nil {
			return nil, fmt.Errorf("%w (Rr must be 0..15 for this instruction)", err)
		}
		op := base | uint16((rd&0x1F)<<4) | uint16(rr&0x0F)
		return word(op), nil
	}
}

// encodeCLR packs CLR Rd as EOR Rd,Rd: 0x2400 | ((Rd&0x1F)<<4) | (Rd&0x0F).
func encodeCLR(operands []string, pc int, r Resolver) ([]byte, error) {
	rd, err := parseRegister(operandAt(operands, 0), 0, 31)
	if err != nil {
		return nil, err
	}
	op := 0x2400 | uint16((rd&0x1F)<<4) | uint16(rd&0x0F)
	return word(op), nil
}

// encodeDEC packs DEC Rd: 0x940A | ((Rd&0x1F)<<4).
func encodeDEC(operands []string, pc int, r Resolver) ([]byte, error) {
	rd, err := parseRegister(operandAt(operands, 0), 0, 31)
	if err != nil {
		return nil, err
	}
	op := 0x940A | uint16((rd&0x1F)<<4)
	return word(op), nil
}

// encodeIN packs IN Rd,A: A in 0..63, Rd in 0..31, full 5-bit Rd field.
//
//	0xB000 | ((A & 0x30) << 5) | ((Rd & 0x1F) << 4) | (A & 0x0F)
func encodeIN(operands []string, pc int, r Resolver) ([]byte, error) {
	rd, err := parseRegister(operandAt(operands, 0), 0, 31)
	if err != nil {
		return nil, err
	}
	a, err := parseImmediate(operandAt(operands, 1), 0, 63)
	if err != nil {
		return nil, err
	}
	op := 0xB000 | uint16((a&0x30)<<5) | uint16((rd&0x1F)<<4) | uint16(a&0x0F)
	return word(op), nil
}

// encodeOUT packs OUT A,Rr: A in 0..63, Rr in 0..31, full 5-bit Rr field.
//
//	0xB800 | ((A & 0x30) << 5) | ((Rr & 0x1F) << 4) | (A & 0x0F)
func encodeOUT(operands []string, pc int, r Resolver) ([]byte, error) {
	a, err := parseImmediate(operandAt(operands, 0), 0, 63)
	if err != nil {
		return nil, err
	}
	rr, err := parseRegister(operandAt(operands, 1), 0, 31)
	if err != nil {
		return nil, err
	}
	op := 0xB800 | uint16((a&0x30)<<5) | uint16((rr&0x1F)<<4) | uint16(a&0x0F)
	return word(op), nil
}

// encodeLDX packs LD Rd,X. The register is validated but the source
// preserves the base-only variant: the opcode word never varies with Rd.
func encodeLDX(operands []string, pc int, r Resolver) ([]byte, error) {
	if _, err := parseRegister(operandAt(operands, 0), 0, 31); err != nil {
		return nil, err
	}
	if toUpper(operandAt(operands, 1)) != "X" {
		return nil, fmt.Errorf("%w: LD expects X as its second operand, got %q", ErrInvalidRegister, operandAt(operands, 1))
	}
	return word(0x900C), nil
}

// encodeSTX packs ST X,Rr. Same base-only caveat as encodeLDX.
func encodeSTX(operands []string, pc int, r Resolver) ([]byte, error) {
	if toUpper(operandAt(operands, 0)) != "X" {
		return nil, fmt.Errorf("%w: ST expects X as its first operand, got %q", ErrInvalidRegister, operandAt(operands, 0))
	}
	if _, err := parseRegister(operandAt(operands, 1), 0, 31); err != nil {
		return nil, err
	}
	return word(0x920C), nil
}

// encodeRelBranch12 handles RJMP/RCALL: a 12-bit signed word offset.
func encodeRelBranch12(base uint16) EncodeFunc {
	return func(operands []string, pc int, r Resolver) ([]byte, error) {
		target, err := resolveLabel(operandAt(operands, 0), r)
		if err != nil {
			return nil, err
		}
		offset := (target - pc - 2) / 2
		if offset < -2048 || offset > 2047 {
			return nil, fmt.Errorf("%w: %d not in -2048..2047", ErrBranchOffsetOutOfRange, offset)
		}
		op := base | uint16(offset&0x0FFF)
		return word(op), nil
	}
}

// encodeRelBranch7 handles BRNE/BRGE/BRLT: a 7-bit signed word offset
// packed into bits [9:3], with a fixed 3-bit condition code in bits [2:0].
// BRLT shares BRGE's low bits (0b100) per spec.md §9 — a known,
// intentionally preserved divergence from real AVR silicon.
func encodeRelBranch7(lowBits uint16) EncodeFunc {
	return func(operands []string, pc int, r Resolver) ([]byte, error) {
		target, err := resolveLabel(operandAt(operands, 0), r)
		if err != nil {
			return nil, err
		}
		offset := (target - pc - 2) / 2
		if offset < -64 || offset > 63 {
			return nil, fmt.Errorf("%w: %d not in -64..63", ErrBranchOffsetOutOfRange, offset)
		}
		op := 0xF400 | uint16(offset&0x7F)<<3 | lowBits
		return word(op), nil
	}
}

// encodeAbsolute handles JMP/CALL: a fixed first opcode word followed by
// the target's word address, low 16 bits only (spec.md §9 open question:
// the 22-bit absolute address is not fully packed into the first word,
// matching the original source's observable output format).
func encodeAbsolute(firstWord uint16) EncodeFunc {
	return func(operands []string, pc int, r Resolver) ([]byte, error) {
		target, err := resolveLabel(operandAt(operands, 0), r)
		if err != nil {
			return nil, err
		}
		wordAddr := uint16((target / 2) & 0xFFFF)
		out := word(firstWord)
		out = append(out, word(wordAddr)...)
		return out, nil
	}
}
