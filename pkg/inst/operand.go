package inst

import (
	"fmt"
	"strconv"
	"strings"
)

// Resolver looks up a label's byte address, as established by the first
// pass. pkg/asm's symbol table implements this.
type Resolver interface {
	Resolve(label string) (pc int, ok bool)
}

// splitOperands splits the text following a mnemonic into its
// comma-separated operands, trimming surrounding whitespace from each.
// A line like "LDI R16, 0x0A" or "LDI R16,0x0A" both yield ["R16", "0x0A"].
func splitOperands(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	parts := strings.Split(text, ",")
	out := make([]string, len(parts))
	for i, p := range parts {
		out[i] = strings.TrimSpace(p)
	}
	return out
}

// SplitOperands is the exported form of splitOperands, for callers outside
// the package (pkg/asm's second pass) that already have a descriptor's
// operand text and need to build the slice Encode expects.
func SplitOperands(text string) []string {
	return splitOperands(text)
}

// parseRegister parses a register operand of the form R<n> or r<n> with n
// in [lo, hi]. Any other shape, or a number outside the range, fails with
// ErrInvalidRegister.
func parseRegister(tok string, lo, hi int) (int, error) {
	tok = strings.TrimSpace(tok)
	if len(tok) < 2 || (tok[0] != 'R' && tok[0] != 'r') {
		return 0, fmt.Errorf("%w: %q is not a register", ErrInvalidRegister, tok)
	}
	n, err := strconv.Atoi(tok[1:])
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a register", ErrInvalidRegister, tok)
	}
	if n < lo || n > hi {
		return 0, fmt.Errorf("%w: %q out of range %d..%d", ErrInvalidRegister, tok, lo, hi)
	}
	return n, nil
}

// parseImmediate parses a decimal, 0x-hex, or leading-zero-octal integer
// operand and checks it falls within [lo, hi].
func parseImmediate(tok string, lo, hi int) (int, error) {
	tok = strings.TrimSpace(tok)
	v, err := strconv.ParseInt(tok, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a valid integer", ErrImmediateOutOfRange, tok)
	}
	if v < int64(lo) || v > int64(hi) {
		return 0, fmt.Errorf("%w: %q out of range %d..%d", ErrImmediateOutOfRange, tok, lo, hi)
	}
	return int(v), nil
}

// resolveLabel looks up a label operand via the resolver, failing with
// ErrUnknownLabel if it was never defined by the first pass.
func resolveLabel(tok string, r Resolver) (int, error) {
	tok = strings.TrimSpace(tok)
	pc, ok := r.Resolve(tok)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownLabel, tok)
	}
	return pc, nil
}
