package token

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedTraceLine = errors.New("malformed trace line")
	ErrNoMarker           = errors.New("missing opcode marker")
)

// MalformedLineError reports an opcode line which does not have the shape its
// mnemonic requires.
type MalformedLineError struct {
	Line int
	Raw  string
	// Mnemonic is the opcode named on the line, empty when there is none.
	Mnemonic string
	Reason   string
	// Err is a more specific cause, if any.
	Err error
}

func (e *MalformedLineError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrMalformedTraceLine}
	}
	return []error{ErrMalformedTraceLine, e.Err}
}

func (e *MalformedLineError) Error() string {
	return fmt.Sprintf("%s: line %d %q: %s", ErrMalformedTraceLine.Error(), e.Line, e.Raw, e.Reason)
}

// Op is the kind of opcode the line was meant to be.
func (e *MalformedLineError) Op() Kind {
	return LookupKind(e.Mnemonic)
}

func malformed(line int, raw, mnemonic, format string, args ...any) error {
	return &MalformedLineError{
		Line:     line,
		Raw:      raw,
		Mnemonic: mnemonic,
		Reason:   fmt.Sprintf(format, args...),
	}
}
