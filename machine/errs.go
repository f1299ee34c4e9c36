package machine

import (
	"errors"
	"fmt"
)

var (
	ErrUninitializedSlot = errors.New("uninitialized slot")
	ErrEmptyStack        = errors.New("empty stack")
	ErrBadSeed           = errors.New("bad seed")
)

func slotErr(index, size int) error {
	if index < 0 || index >= size {
		return fmt.Errorf("%w: index %d out of bounds (size %d)", ErrUninitializedSlot, index, size)
	}
	return fmt.Errorf("%w: index %d is empty", ErrUninitializedSlot, index)
}
