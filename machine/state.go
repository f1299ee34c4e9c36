// Package machine holds the execution state of a symbolic replay: the
// stack, the buffer of pending operands, the logged constraints and the
// pending constraint flag.
package machine

import (
	"fmt"
	"slices"

	"github.com/signadot/stackreplay/ir"
)

type State struct {
	stack  []*ir.Expr
	buffer []*ir.Expr

	constraints []*ir.Expr

	// Pending is set by a TEST whose result is still the only buffer entry
	// and has not yet been resolved.
	Pending bool

	// Tests counts the TEST opcodes applied, Consumed those whose result
	// was taken by a later PUSH instead of being logged as a constraint.
	Tests    int
	Consumed int

	prefix string
	vars   int
}

type Option func(*State)

// WithPrefix names the seeded variables prefix0, prefix1, ...
func WithPrefix(prefix string) Option {
	return func(s *State) {
		s.prefix = prefix
	}
}

// New returns a state whose stack has size empty slots, except for slots
// which are seeded in order with fresh symbolic variables.
func New(size int, slots []int, opts ...Option) (*State, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: stack size %d", ErrBadSeed, size)
	}
	s := &State{
		stack:  make([]*ir.Expr, size),
		prefix: ir.DefaultPrefix,
	}
	for _, opt := range opts {
		opt(s)
	}
	for _, slot := range slots {
		if slot < 0 || slot >= size {
			return nil, fmt.Errorf("%w: slot %d out of bounds (size %d)", ErrBadSeed, slot, size)
		}
		if s.stack[slot] != nil {
			return nil, fmt.Errorf("%w: slot %d seeded twice", ErrBadSeed, slot)
		}
		s.stack[slot] = s.NewVar()
	}
	return s, nil
}

// NewVar returns the next fresh symbolic variable.
func (s *State) NewVar() *ir.Expr {
	v := ir.NamedVar(s.prefix, s.vars)
	s.vars++
	return v
}

func (s *State) Len() int {
	return len(s.stack)
}

func (s *State) Read(i int) (*ir.Expr, error) {
	if i < 0 || i >= len(s.stack) || s.stack[i] == nil {
		return nil, slotErr(i, len(s.stack))
	}
	return s.stack[i], nil
}

func (s *State) Write(i int, v *ir.Expr) error {
	if i < 0 || i >= len(s.stack) {
		return slotErr(i, len(s.stack))
	}
	s.stack[i] = v
	return nil
}

func (s *State) PushTop(v *ir.Expr) {
	s.stack = append(s.stack, v)
}

// PopTop removes the top slot.  The slot is removed even when it is empty,
// in which case ErrUninitializedSlot is returned.
func (s *State) PopTop() (*ir.Expr, error) {
	n := len(s.stack)
	if n == 0 {
		return nil, ErrEmptyStack
	}
	v := s.stack[n-1]
	s.stack = s.stack[:n-1]
	if v == nil {
		return nil, slotErr(n-1, n)
	}
	return v, nil
}

// SwapTop exchanges the two topmost slots, empty or not.
func (s *State) SwapTop() error {
	n := len(s.stack)
	if n < 2 {
		return fmt.Errorf("%w: swap needs 2 slots, have %d", ErrEmptyStack, n)
	}
	s.stack[n-1], s.stack[n-2] = s.stack[n-2], s.stack[n-1]
	return nil
}

type Slot struct {
	Index int      `json:"index"`
	Expr  *ir.Expr `json:"expr"`
}

// Slots lists the non empty stack slots, bottom first.
func (s *State) Slots() []Slot {
	var res []Slot
	for i, v := range s.stack {
		if v == nil {
			continue
		}
		res = append(res, Slot{Index: i, Expr: v})
	}
	return res
}

// Buffer returns a copy of the pending operands.
func (s *State) Buffer() []*ir.Expr {
	return slices.Clone(s.buffer)
}

func (s *State) BufferLen() int {
	return len(s.buffer)
}

func (s *State) Hold(v *ir.Expr) {
	s.buffer = append(s.buffer, v)
}

// TakeLast removes and returns the most recently held operand.
func (s *State) TakeLast() (*ir.Expr, bool) {
	n := len(s.buffer)
	if n == 0 {
		return nil, false
	}
	v := s.buffer[n-1]
	s.buffer = s.buffer[:n-1]
	return v, true
}

// Flush empties the buffer and returns what it held.
func (s *State) Flush() []*ir.Expr {
	res := s.buffer
	s.buffer = nil
	return res
}

func (s *State) Constrain(c *ir.Expr) {
	s.constraints = append(s.constraints, c)
}

func (s *State) Constraints() []*ir.Expr {
	return slices.Clone(s.constraints)
}
