package encode

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/signadot/stackreplay/format"
	"github.com/signadot/stackreplay/ir"
	"github.com/signadot/stackreplay/replay"

	"github.com/goccy/go-yaml"
)

const (
	ConstraintsHeader = "--- LOGGED CONSTRAINTS --"
	StackHeader       = "--- STACKED EXPRESSIONS --"
	PendingHeader     = "--- PENDING TEST --"
	StopHeader        = "--- STOPPED --"
	CountsHeader      = "--- TESTS --"
)

type EncState struct {
	format format.Format
	stop   bool
	counts bool

	Color func(ir.Type, ColorAttr, string) string
}

func Encode(res *replay.Result, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{stop: true}
	for _, opt := range opts {
		opt(es)
	}
	switch es.format {
	case format.TextFormat:
		return encodeText(res, w, es)
	case format.YAMLFormat:
		d, err := yaml.Marshal(toDoc(res, es))
		if err != nil {
			return err
		}
		return writeBytes(w, d)
	case format.JSONFormat:
		d, err := json.MarshalIndent(toDoc(res, es), "", "  ")
		if err != nil {
			return err
		}
		return writeBytes(w, append(d, '\n'))
	default:
		return fmt.Errorf("%w: %d", format.ErrBadFormat, es.format)
	}
}

// String renders res as uncolored text.
func String(res *replay.Result, opts ...EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	opts = append(opts, EncodeFormat(format.TextFormat))
	if err := Encode(res, buf, opts...); err != nil {
		panic(err)
	}
	return buf.String()
}

func encodeText(res *replay.Result, w io.Writer, es *EncState) error {
	buf := &strings.Builder{}
	header := func(h string) {
		buf.WriteString(es.color(ir.NodeType, HeaderColor, h))
		buf.WriteByte('\n')
	}
	expr := func(e *ir.Expr) {
		buf.WriteString(es.color(e.Type, ValueColor, e.String()))
		buf.WriteByte('\n')
	}
	header(ConstraintsHeader)
	for _, c := range res.Constraints {
		expr(c)
	}
	header(StackHeader)
	for _, s := range res.Stack {
		expr(s.Expr)
	}
	if res.Pending != nil {
		header(PendingHeader)
		expr(res.Pending)
	}
	if es.counts {
		header(CountsHeader)
		fmt.Fprintf(buf, "executed %d, logged %d, consumed %d\n",
			res.Tests, len(res.Constraints), res.Consumed)
	}
	if es.stop && res.Stop != nil {
		header(StopHeader)
		buf.WriteString(es.color(ir.NodeType, StopColor, res.Stop.Error()))
		buf.WriteByte('\n')
	}
	return writeBytes(w, []byte(buf.String()))
}

func (es *EncState) color(t ir.Type, a ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(t, a, s)
}

type doc struct {
	Constraints []string  `json:"constraints"`
	Stack       []slotDoc `json:"stack"`
	Pending     string    `json:"pending,omitempty"`
	Records     int       `json:"records"`
	Tests       int       `json:"tests"`
	Consumed    int       `json:"consumed"`
	Stop        *stopDoc  `json:"stop,omitempty"`
}

type slotDoc struct {
	Index int    `json:"index"`
	Expr  string `json:"expr"`
}

type stopDoc struct {
	Line  int    `json:"line,omitempty"`
	Raw   string `json:"raw,omitempty"`
	Kind  string `json:"kind,omitempty"`
	Error string `json:"error"`
}

func toDoc(res *replay.Result, es *EncState) *doc {
	d := &doc{
		Constraints: make([]string, 0, len(res.Constraints)),
		Stack:       make([]slotDoc, 0, len(res.Stack)),
		Records:     res.Records,
		Tests:       res.Tests,
		Consumed:    res.Consumed,
	}
	for _, c := range res.Constraints {
		d.Constraints = append(d.Constraints, c.String())
	}
	for _, s := range res.Stack {
		d.Stack = append(d.Stack, slotDoc{Index: s.Index, Expr: s.Expr.String()})
	}
	if res.Pending != nil {
		d.Pending = res.Pending.String()
	}
	if es.stop && res.Stop != nil {
		d.Stop = &stopDoc{
			Line:  res.Stop.Line,
			Raw:   res.Stop.Raw,
			Kind:  replay.Kind(res.Stop.Err),
			Error: res.Stop.Err.Error(),
		}
	}
	return d
}

func writeBytes(w io.Writer, d []byte) error {
	_, err := w.Write(d)
	return err
}
