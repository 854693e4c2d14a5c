package inst

import "errors"

// Sentinel errors returned by operand parsing and encoding. Higher-level
// callers (pkg/asm) classify these with errors.Is and attach source line
// context; this package stays free of any notion of "line number".
var (
	ErrInvalidRegister        = errors.New("invalid register operand")
	ErrImmediateOutOfRange    = errors.New("immediate value out of range")
	ErrBranchOffsetOutOfRange = errors.New("branch offset out of range")
	ErrUnknownLabel           = errors.New("unknown label")
)
