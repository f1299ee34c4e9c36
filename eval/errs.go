package eval

import "errors"

var (
	ErrArity      = errors.New("unsupported operand count")
	ErrNoOperator = errors.New("no such operator")
	ErrBadLiteral = errors.New("bad literal")
	ErrAssignment = errors.New("bad assignment")
)
