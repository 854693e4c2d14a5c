package asm

import (
	"errors"
	"fmt"

	"github.com/kalski/avrasm/pkg/inst"
)

// ErrorKind enumerates the fatal error categories from spec.md §7. Every
// error the core surfaces is one of these.
type ErrorKind int

const (
	KindIoOpenFailed ErrorKind = iota
	KindIoWriteFailed
	KindUnknownMnemonic
	KindDuplicateLabel
	KindUnknownLabel
	KindInvalidRegister
	KindImmediateOutOfRange
	KindBranchOffsetOutOfRange
	KindProgramTooLarge
)

func (k ErrorKind) String() string {
	switch k {
	case KindIoOpenFailed:
		return "IoOpenFailed"
	case KindIoWriteFailed:
		return "IoWriteFailed"
	case KindUnknownMnemonic:
		return "UnknownMnemonic"
	case KindDuplicateLabel:
		return "DuplicateLabel"
	case KindUnknownLabel:
		return "UnknownLabel"
	case KindInvalidRegister:
		return "InvalidRegister"
	case KindImmediateOutOfRange:
		return "ImmediateOutOfRange"
	case KindBranchOffsetOutOfRange:
		return "BranchOffsetOutOfRange"
	case KindProgramTooLarge:
		return "ProgramTooLarge"
	default:
		return "Unknown"
	}
}

// Error is the core's error type: a Kind, the offending source line
// number (0 when not applicable, e.g. IoOpenFailed), a human-readable
// message, and the underlying error if any. Grounded on
// lookbusy1344-arm_emulator/encoder/errors.go's EncodingError.
type Error struct {
	Kind    ErrorKind
	Line    int
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s: %s", e.Line, e.Kind, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(kind ErrorKind, line int, message string) *Error {
	return &Error{Kind: kind, Line: line, Message: message}
}

// wrapEncodeError classifies an error returned from pkg/inst's encoders
// into the core's ErrorKind, attaching the source line number.
func wrapEncodeError(err error, line int) error {
	switch {
	case errors.Is(err, inst.ErrInvalidRegister):
		return &Error{Kind: KindInvalidRegister, Line: line, Message: err.Error(), Err: err}
	case errors.Is(err, inst.ErrImmediateOutOfRange):
		return &Error{Kind: KindImmediateOutOfRange, Line: line, Message: err.Error(), Err: err}
	case errors.Is(err, inst.ErrBranchOffsetOutOfRange):
		return &Error{Kind: KindBranchOffsetOutOfRange, Line: line, Message: err.Error(), Err: err}
	case errors.Is(err, inst.ErrUnknownLabel):
		return &Error{Kind: KindUnknownLabel, Line: line, Message: err.Error(), Err: err}
	default:
		return &Error{Kind: KindUnknownMnemonic, Line: line, Message: err.Error(), Err: err}
	}
}
