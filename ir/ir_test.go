package ir

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func strp(s string) *string { return &s }

type buildTest struct {
	operands []*Expr
	operator string
	constant *string
	infix    string
	str      string
}

func TestBuild(t *testing.T) {
	a, b, c := Var(0), Var(1), Var(2)
	bts := []buildTest{
		{
			operands: []*Expr{a},
			operator: "<",
			constant: strp("10"),
			infix:    "c0<10",
			str:      "(c0<10)",
		},
		{
			operands: []*Expr{a},
			operator: "!",
			infix:    "!c0",
			str:      "(!c0)",
		},
		{
			operands: []*Expr{a, b, c},
			operator: "+",
			infix:    "c0+c1+c2",
			str:      "(c0+c1+c2)",
		},
		{
			// the constant only applies to single operand operations
			operands: []*Expr{b, a},
			operator: ">",
			constant: strp("3"),
			infix:    "c1>c0",
			str:      "(c1>c0)",
		},
		{
			operands: []*Expr{Build([]*Expr{a, Lit("7")}, "^", nil), b},
			operator: "==",
			infix:    "(c0^7)==c1",
			str:      "((c0^7)==c1)",
		},
	}
	for _, bt := range bts {
		e := Build(bt.operands, bt.operator, bt.constant)
		if got := e.Infix(); got != bt.infix {
			t.Errorf("infix: got %q want %q", got, bt.infix)
		}
		if got := e.String(); got != bt.str {
			t.Errorf("string: got %q want %q", got, bt.str)
		}
	}
}

func TestBuildIdempotent(t *testing.T) {
	ops := []*Expr{Var(0), Var(1), Var(2)}
	x := Build(ops, "+", nil)
	y := Build(ops, "+", nil)
	if !Equal(x, y) {
		t.Errorf("%s != %s", x, y)
	}
	first, second := x.String(), x.String()
	if first != second || first != y.String() {
		t.Errorf("rendering is not stable")
	}
	// the operand slice is copied
	ops[0] = Lit("9")
	if x.Infix() != "c0+c1+c2" {
		t.Errorf("got %s after mutating operands", x.Infix())
	}
}

func TestBuildCopiesConstant(t *testing.T) {
	c := "10"
	e := Build([]*Expr{Var(0)}, "<", &c)
	c = "11"
	if e.String() != "(c0<10)" {
		t.Errorf("got %s", e)
	}
}

func TestBuildEmptyPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic")
		}
	}()
	Build(nil, "+", nil)
}

func TestEqual(t *testing.T) {
	x := Build([]*Expr{Var(0)}, "<", strp("10"))
	eqs := [][2]*Expr{
		{Var(3), Var(3)},
		{Lit("4"), Lit("4")},
		{x, Build([]*Expr{Var(0)}, "<", strp("10"))},
	}
	for _, eq := range eqs {
		if !Equal(eq[0], eq[1]) {
			t.Errorf("%s != %s", eq[0], eq[1])
		}
	}
	neqs := [][2]*Expr{
		{Var(3), Var(4)},
		{Var(3), NamedVar("x", 3)},
		{Lit("4"), Var(4)},
		{x, Build([]*Expr{Var(0)}, "<", strp("11"))},
		{x, Build([]*Expr{Var(0)}, "<", nil)},
		{x, Build([]*Expr{Var(0)}, ">", strp("10"))},
		{x, nil},
	}
	for _, neq := range neqs {
		if Equal(neq[0], neq[1]) {
			t.Errorf("%s == %s", neq[0], neq[1])
		}
	}
}

func TestVars(t *testing.T) {
	e := Build([]*Expr{
		Build([]*Expr{Var(4), Var(1)}, "+", nil),
		Var(4),
		Lit("3"),
	}, "^", nil)
	var ids []int
	for _, v := range e.Vars() {
		ids = append(ids, v.ID)
	}
	if diff := cmp.Diff([]int{1, 4}, ids); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestTypeUnmarshalUnknown(t *testing.T) {
	var typ Type
	if err := typ.UnmarshalText([]byte("Object")); err == nil {
		t.Errorf("expected error")
	}
}
