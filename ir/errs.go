package ir

import "errors"

var (
	ErrUnknownType = errors.New("unrecognized type")
	ErrNoOperands  = errors.New("operation without operands")
)
