package eval

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/stackreplay/ir"
)

func strp(s string) *string { return &s }

func lt(x *ir.Expr, c string) *ir.Expr {
	return ir.Build([]*ir.Expr{x}, "<", strp(c))
}

func TestSource(t *testing.T) {
	type sourceTest struct {
		in   *ir.Expr
		want string
	}
	c0, c1 := ir.Var(0), ir.Var(1)
	sts := []sourceTest{
		{in: lt(c0, "10"), want: "(c0 < 10)"},
		{in: ir.Build([]*ir.Expr{c0, c1}, "+", nil), want: "((c0 + c1) != 0)"},
		{in: ir.Build([]*ir.Expr{c0}, "-", nil), want: "((-c0) != 0)"},
		{in: ir.Build([]*ir.Expr{c0}, "==", strp("-1")), want: "(c0 == (-1))"},
		{in: ir.Build([]*ir.Expr{c0}, "==", strp("'A'")), want: "(c0 == 65)"},
		{in: ir.Build([]*ir.Expr{lt(c0, "10")}, "!", nil), want: "(((c0 < 10) ? 1 : 0) == 0)"},
		{in: ir.Build([]*ir.Expr{c0, c1, ir.Lit("3")}, "^", nil), want: "(bitxor(bitxor(c0, c1), 3) != 0)"},
		{in: ir.Build([]*ir.Expr{c0, c1}, "/", nil), want: "(int(c0 / c1) != 0)"},
	}
	for _, st := range sts {
		got, err := Source(st.in)
		if err != nil {
			t.Errorf("%s: %v", st.in, err)
			continue
		}
		if got != st.want {
			t.Errorf("%s: got %q want %q", st.in, got, st.want)
		}
	}
}

func TestSourceErrors(t *testing.T) {
	c0 := ir.Var(0)
	if _, err := Source(ir.Build([]*ir.Expr{c0}, "??", nil)); !errors.Is(err, ErrNoOperator) {
		t.Errorf("got %v want %v", err, ErrNoOperator)
	}
	if _, err := Source(ir.Build([]*ir.Expr{c0}, "*", nil)); !errors.Is(err, ErrArity) {
		t.Errorf("got %v want %v", err, ErrArity)
	}
	if _, err := Source(ir.Lit("zz")); !errors.Is(err, ErrBadLiteral) {
		t.Errorf("got %v want %v", err, ErrBadLiteral)
	}
}

func TestCheck(t *testing.T) {
	c0, c1, c2 := ir.Var(0), ir.Var(1), ir.Var(2)
	constraints := []*ir.Expr{
		lt(c0, "10"),
		ir.Build([]*ir.Expr{ir.Build([]*ir.Expr{c0, c1}, "^", nil)}, "==", strp("0")),
		ir.Build([]*ir.Expr{ir.Build([]*ir.Expr{c1, ir.Lit("2")}, "/", nil)}, "==", strp("3")),
		ir.Build([]*ir.Expr{ir.Build([]*ir.Expr{lt(c0, "10")}, "!", nil)}, "!=", strp("0")),
		ir.Build([]*ir.Expr{c2}, ">", strp("1")),
		ir.Build([]*ir.Expr{c0}, "??", nil),
	}
	env := Env{"c0": 7, "c1": 7}
	got := Check(constraints, env)
	var statuses []Status
	for _, v := range got {
		statuses = append(statuses, v.Status)
	}
	want := []Status{Satisfied, Satisfied, Satisfied, Violated, Unbound, Failed}
	if diff := cmp.Diff(want, statuses); diff != "" {
		t.Errorf("statuses (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"c2"}, got[4].Missing); diff != "" {
		t.Errorf("missing (-want +got):\n%s", diff)
	}
	if !errors.Is(got[5].Err, ErrNoOperator) {
		t.Errorf("got err %v", got[5].Err)
	}
	if Holds(got) {
		t.Errorf("expected failures")
	}
	if !Holds(Check(constraints[:3], env)) {
		t.Errorf("first constraints should hold")
	}
	if s := got[1].String(); s != "ok (c0^c1)==0" {
		t.Errorf("got verdict %q", s)
	}
}

func TestEnvSet(t *testing.T) {
	env := Env{}
	for _, a := range []string{"c0=65", "c1='B'", "c2=-2", "c3=0x43"} {
		if err := env.Set(a); err != nil {
			t.Fatalf("%s: %v", a, err)
		}
	}
	want := Env{"c0": 65, "c1": 66, "c2": -2, "c3": 67}
	if diff := cmp.Diff(want, env); diff != "" {
		t.Errorf("env (-want +got):\n%s", diff)
	}
	for _, a := range []string{"c0", "=1", "c0=ab", "c0=[1]"} {
		if err := env.Set(a); !errors.Is(err, ErrAssignment) {
			t.Errorf("%s: got %v want %v", a, err, ErrAssignment)
		}
	}
}

func TestBindString(t *testing.T) {
	env := Env{}
	env.BindString("c", 2, "AB")
	if diff := cmp.Diff(Env{"c2": 65, "c3": 66}, env); diff != "" {
		t.Errorf("env (-want +got):\n%s", diff)
	}
}

func TestRegister(t *testing.T) {
	if err := Register(op{name: "+", binary: "(%s + %s)"}); !errors.Is(err, ErrOperatorExists) {
		t.Errorf("got %v want %v", err, ErrOperatorExists)
	}
	if Lookup("<<") == nil {
		t.Errorf("missing builtin <<")
	}
	if len(Operators()) != len(builtins()) {
		t.Errorf("got %d operators want %d", len(Operators()), len(builtins()))
	}
}
