package token

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type parseLineTest struct {
	in  string
	out *Record
}

func strp(s string) *string { return &s }

func TestParseLineOK(t *testing.T) {
	pts := []parseLineTest{
		{
			in:  "S: PUSH 42",
			out: &Record{Op: Push, Mnemonic: "PUSH", Value: "42"},
		},
		{
			in:  "S: POP (12)",
			out: &Record{Op: Pop, Mnemonic: "POP", Value: "12"},
		},
		{
			in:  "S: POP",
			out: &Record{Op: Pop, Mnemonic: "POP"},
		},
		{
			in:  "S: GET index:7",
			out: &Record{Op: Get, Mnemonic: "GET", Index: 7},
		},
		{
			in:  "S: SET index:13 value:99",
			out: &Record{Op: Set, Mnemonic: "SET", Index: 13, Value: "99"},
		},
		{
			in:  "S: SWAP",
			out: &Record{Op: Swap, Mnemonic: "SWAP"},
		},
		{
			in:  "S: TEST (<,cte=10)",
			out: &Record{Op: Test, Mnemonic: "TEST", Operator: "<", Constant: strp("10")},
		},
		{
			in:  "S: TEST (==,#op=2)",
			out: &Record{Op: Test, Mnemonic: "TEST", Operator: "==", Operands: 2},
		},
		{
			in:  "S: TEST (!)",
			out: &Record{Op: Test, Mnemonic: "TEST", Operator: "!"},
		},
		{
			in:  "S: FROB 3",
			out: &Record{Op: Unknown, Mnemonic: "FROB", Value: "3"},
		},
	}
	for i, pt := range pts {
		rec, err := ParseLine(i+1, pt.in+"\r\n")
		if err != nil {
			t.Errorf("%q: %v", pt.in, err)
			continue
		}
		pt.out.Line = i + 1
		pt.out.Raw = pt.in
		if diff := cmp.Diff(pt.out, rec); diff != "" {
			t.Errorf("%q: mismatch (-want +got):\n%s", pt.in, diff)
		}
	}
}

func TestParseLineMalformed(t *testing.T) {
	ins := []string{
		"S:",
		"S: PUSH",
		"S: GET",
		"S: GET index:x",
		"S: SET value:3",
		"S: TEST <",
		"S: TEST ()",
		"S: TEST (<,cte=)",
		"S: TEST (<,#op=two)",
		"S: TEST (<,what=1)",
		"  | operation: (+,#op=2)",
	}
	for _, in := range ins {
		_, err := ParseLine(3, in)
		if err == nil {
			t.Errorf("%q: expected error", in)
			continue
		}
		if !errors.Is(err, ErrMalformedTraceLine) {
			t.Errorf("%q: got %v, want %v", in, err, ErrMalformedTraceLine)
		}
		var mErr *MalformedLineError
		if !errors.As(err, &mErr) {
			t.Errorf("%q: expected *MalformedLineError, got %T", in, err)
			continue
		}
		if mErr.Line != 3 || mErr.Raw != in {
			t.Errorf("%q: got line %d raw %q", in, mErr.Line, mErr.Raw)
		}
	}
}

type annTest struct {
	in  string
	out *Annotation
}

func TestParseAnnotation(t *testing.T) {
	ats := []annTest{
		{in: "  | operation: (+,#op=2)", out: &Annotation{Operator: "+", Operands: 2}},
		{in: "  | operation: (<<,#op=2)\r", out: &Annotation{Operator: "<<", Operands: 2}},
		{in: "operation: ^ (3 operands)", out: &Annotation{Operator: "^", Operands: 3}},
		{in: "operation: - (1 operand)", out: &Annotation{Operator: "-", Operands: 1}},
		{in: "S: PUSH 3"},
		{in: "  | operation:"},
		{in: ""},
	}
	for _, at := range ats {
		a, ok := ParseAnnotation(at.in)
		if ok != (at.out != nil) {
			t.Errorf("%q: got ok=%t", at.in, ok)
			continue
		}
		if diff := cmp.Diff(at.out, a); diff != "" {
			t.Errorf("%q: mismatch (-want +got):\n%s", at.in, diff)
		}
	}
}

func TestMalformedLineDetails(t *testing.T) {
	_, err := ParseLine(1, "  | operation: (+,#op=2)")
	if !errors.Is(err, ErrNoMarker) || !errors.Is(err, ErrMalformedTraceLine) {
		t.Errorf("got %v, want both %v and %v", err, ErrNoMarker, ErrMalformedTraceLine)
	}
	type opTest struct {
		in string
		op Kind
	}
	ots := []opTest{
		{in: "S: GET index:zz", op: Get},
		{in: "S: PUSH", op: Push},
		{in: "S: TEST ()", op: Test},
		{in: "S:", op: Unknown},
	}
	for _, ot := range ots {
		_, err := ParseLine(4, ot.in)
		var mErr *MalformedLineError
		if !errors.As(err, &mErr) {
			t.Errorf("%q: got %v", ot.in, err)
			continue
		}
		if mErr.Op() != ot.op {
			t.Errorf("%q: got op %s want %s", ot.in, mErr.Op(), ot.op)
		}
		if errors.Is(err, ErrNoMarker) {
			t.Errorf("%q: unexpected %v", ot.in, ErrNoMarker)
		}
	}
}
