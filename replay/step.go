package replay

import (
	"fmt"
	"slices"

	"github.com/signadot/stackreplay/debug"
	"github.com/signadot/stackreplay/ir"
	"github.com/signadot/stackreplay/machine"
	"github.com/signadot/stackreplay/token"
)

// Step applies rec to st.  next is the annotation on the line following
// rec, nil when there is none; only PUSH looks at it.
func Step(st *machine.State, rec *token.Record, next *token.Annotation) error {
	if rec.Op == token.Push {
		return push(st, rec, next)
	}
	resolvePending(st)
	switch rec.Op {
	case token.Swap:
		return st.SwapTop()
	case token.Get:
		v, err := st.Read(rec.Index)
		if err != nil {
			return err
		}
		st.Hold(v)
		return nil
	case token.Set:
		v, ok := st.TakeLast()
		if !ok {
			return fmt.Errorf("%w: index %d", ErrSetWithoutOperand, rec.Index)
		}
		return st.Write(rec.Index, v)
	case token.Pop:
		v, err := st.PopTop()
		if err != nil {
			return err
		}
		st.Hold(v)
		return nil
	case token.Test:
		return test(st, rec)
	default:
		return fmt.Errorf("%w %q", ErrUnknownOperator, rec.Mnemonic)
	}
}

// resolvePending logs the result of the last TEST as a constraint: no PUSH
// consumed it before this opcode.
func resolvePending(st *machine.State) {
	if !st.Pending {
		return
	}
	st.Pending = false
	held := st.Flush()
	if len(held) == 0 {
		return
	}
	if debug.Dispatch() {
		debug.Logf("constraint %s\n", held[0])
	}
	st.Constrain(held[0])
}

func push(st *machine.State, rec *token.Record, next *token.Annotation) error {
	pc := DecidePush(st.BufferLen(), next)
	if debug.Push() {
		debug.Logf("push case %s (buffer %d, annotation %v)\n", pc, st.BufferLen(), next)
	}
	switch pc {
	case PushHeld:
		held := st.Flush()
		st.PushTop(held[0])
		consume(st)
	case PushOperation:
		if next.Operands != st.BufferLen() || next.Operands == 0 {
			return fmt.Errorf("%w: %s declares %d operands, %d buffered",
				ErrOperandCountMismatch, next.Operator, next.Operands, st.BufferLen())
		}
		held := st.Flush()
		st.PushTop(ir.Build(held, next.Operator, nil))
		consume(st)
	case PushLiteral:
		st.PushTop(ir.Lit(rec.Value))
	}
	return nil
}

func consume(st *machine.State) {
	if !st.Pending {
		return
	}
	st.Pending = false
	st.Consumed++
}

// test replaces the buffered operands by their comparison.  The trace lists
// the operands of ordered comparisons in reverse of their source order.
func test(st *machine.State, rec *token.Record) error {
	held := st.Flush()
	if len(held) == 0 {
		return fmt.Errorf("%w: %s", ErrTestWithoutOperand, rec.Operator)
	}
	slices.Reverse(held)
	st.Hold(ir.Build(held, rec.Operator, rec.Constant))
	st.Pending = true
	st.Tests++
	return nil
}
