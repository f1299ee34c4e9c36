package replay

import "github.com/signadot/stackreplay/token"

// PushCase says how a PUSH obtains the value it pushes.
type PushCase int

const (
	// PushHeld pushes the single buffered operand as is.
	PushHeld PushCase = iota + 1
	// PushOperation pushes the annotated operation applied to the buffer.
	PushOperation
	// PushLiteral pushes the value written on the PUSH line.
	PushLiteral
)

func (c PushCase) String() string {
	switch c {
	case PushHeld:
		return "held"
	case PushOperation:
		return "operation"
	case PushLiteral:
		return "literal"
	default:
		return "<invalid push case>"
	}
}

// DecidePush selects the PUSH case from the number of buffered operands and
// the annotation on the line following the PUSH, if any.  Every input maps
// to exactly one case; whether an operation's operand count agrees with the
// buffer is checked when it is applied.
func DecidePush(buffered int, next *token.Annotation) PushCase {
	switch {
	case next != nil:
		return PushOperation
	case buffered == 1:
		return PushHeld
	default:
		return PushLiteral
	}
}
