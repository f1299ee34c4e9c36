// Package replay symbolically replays a stack machine trace.
//
// [Run] feeds every record of a [token.Reader] to [Step] until the trace is
// exhausted or a record cannot be applied.  Either way the returned [Result]
// holds the constraints and stack contents gathered so far; an early stop
// is described by [Result.Stop].
package replay

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/signadot/stackreplay/debug"
	"github.com/signadot/stackreplay/ir"
	"github.com/signadot/stackreplay/machine"
	"github.com/signadot/stackreplay/token"
)

type Result struct {
	Constraints []*ir.Expr     `json:"constraints"`
	Stack       []machine.Slot `json:"stack"`

	// Pending is the result of a final TEST that nothing resolved.
	Pending *ir.Expr `json:"pending,omitempty"`

	Records  int `json:"records"`
	Tests    int `json:"tests"`
	Consumed int `json:"consumed"`

	Stop *StopError `json:"-"`
}

// Err returns Stop as an error, nil when the trace was replayed entirely.
func (r *Result) Err() error {
	if r.Stop == nil {
		return nil
	}
	return r.Stop
}

type runOpts struct {
	log *slog.Logger
}

type RunOption func(*runOpts)

func WithLogger(log *slog.Logger) RunOption {
	return func(o *runOpts) {
		o.log = log
	}
}

// Run replays the records of r on st.
func Run(ctx context.Context, r *token.Reader, st *machine.State, opts ...RunOption) *Result {
	o := &runOpts{log: slog.Default()}
	for _, opt := range opts {
		opt(o)
	}
	res := &Result{}
	res.Stop = run(ctx, r, st, res, o.log)
	if res.Stop != nil {
		o.log.Warn("replay stopped", "line", res.Stop.Line, "kind", Kind(res.Stop.Err), "err", res.Stop.Err)
	} else {
		// the end of the trace resolves a last TEST like any non-PUSH opcode
		resolvePending(st)
		o.log.Debug("replay done", "records", res.Records, "tests", st.Tests)
	}
	res.Constraints = st.Constraints()
	res.Stack = st.Slots()
	res.Tests = st.Tests
	res.Consumed = st.Consumed
	if st.Pending {
		if buf := st.Buffer(); len(buf) == 1 {
			res.Pending = buf[0]
		}
	}
	return res
}

func run(ctx context.Context, r *token.Reader, st *machine.State, res *Result, log *slog.Logger) *StopError {
	for {
		if err := ctx.Err(); err != nil {
			return &StopError{Err: err}
		}
		rec, err := r.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			stop := &StopError{Err: err}
			var mErr *token.MalformedLineError
			if errors.As(err, &mErr) {
				stop.Line, stop.Raw = mErr.Line, mErr.Raw
				// a non-PUSH opcode resolves the last TEST before its operands are read
				if mErr.Op() != token.Push {
					resolvePending(st)
				}
			}
			return stop
		}
		if debug.Read() {
			debug.Logf("> processing %s\n", rec.Raw)
		}
		var next *token.Annotation
		if rec.Op == token.Push {
			next = r.PeekAnnotation()
		}
		if err := Step(st, rec, next); err != nil {
			return &StopError{Line: rec.Line, Raw: rec.Raw, Err: err}
		}
		res.Records++
		log.Debug("applied", "line", rec.Line, "op", rec.Op, "buffer", st.BufferLen(), "pending", st.Pending)
		if debug.Dispatch() {
			debug.Logf("  stack: %v\n  buffer: %v\n", st.Slots(), st.Buffer())
		}
	}
}
