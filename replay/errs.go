package replay

import (
	"errors"
	"fmt"

	"github.com/signadot/stackreplay/machine"
	"github.com/signadot/stackreplay/token"
)

var (
	ErrOperandCountMismatch = errors.New("operand count mismatch")
	ErrSetWithoutOperand    = errors.New("set without operand")
	ErrTestWithoutOperand   = errors.New("test without operand")
	ErrUnknownOperator      = errors.New("unknown operator")

	// re-exported so callers can match every stop kind from one package
	ErrMalformedTraceLine = token.ErrMalformedTraceLine
	ErrUninitializedSlot  = machine.ErrUninitializedSlot
	ErrEmptyStack         = machine.ErrEmptyStack
)

// StopError records why and where a replay stopped early.
type StopError struct {
	Line int
	Raw  string
	Err  error
}

func (e *StopError) Unwrap() error {
	return e.Err
}

func (e *StopError) Error() string {
	if e.Line == 0 {
		return e.Err.Error()
	}
	var mErr *token.MalformedLineError
	if errors.As(e.Err, &mErr) {
		return fmt.Sprintf("line %d %q: %v: %s", e.Line, e.Raw, token.ErrMalformedTraceLine, mErr.Reason)
	}
	return fmt.Sprintf("line %d %q: %v", e.Line, e.Raw, e.Err)
}

// Kind names the sentinel error the replay stopped on, "" when it is none
// of them.
func Kind(err error) string {
	for _, k := range []error{
		ErrMalformedTraceLine,
		ErrUninitializedSlot,
		ErrEmptyStack,
		ErrOperandCountMismatch,
		ErrSetWithoutOperand,
		ErrTestWithoutOperand,
		ErrUnknownOperator,
	} {
		if errors.Is(err, k) {
			return k.Error()
		}
	}
	return ""
}
