package eval

import (
	"fmt"

	"github.com/signadot/stackreplay/ir"

	"github.com/expr-lang/expr"
)

type Status int

const (
	Satisfied Status = iota
	Violated
	Unbound
	Failed
)

var statusNames = map[Status]string{
	Satisfied: "ok",
	Violated:  "FAIL",
	Unbound:   "unbound",
	Failed:    "error",
}

func (s Status) String() string {
	return statusNames[s]
}

func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

type Verdict struct {
	Constraint *ir.Expr
	Status     Status

	// Missing names the unbound variables when Status is Unbound.
	Missing []string
	// Err is set when Status is Failed.
	Err error
}

func (v *Verdict) String() string {
	switch v.Status {
	case Unbound:
		return fmt.Sprintf("%s %s %v", v.Status, v.Constraint.Infix(), v.Missing)
	case Failed:
		return fmt.Sprintf("%s %s: %v", v.Status, v.Constraint.Infix(), v.Err)
	default:
		return fmt.Sprintf("%s %s", v.Status, v.Constraint.Infix())
	}
}

// Check evaluates each constraint with the variables bound in env.
func Check(constraints []*ir.Expr, env Env) []Verdict {
	vars := env.exprEnv()
	res := make([]Verdict, 0, len(constraints))
	for _, c := range constraints {
		res = append(res, check(c, env, vars))
	}
	return res
}

// Holds reports whether every verdict is Satisfied.
func Holds(vs []Verdict) bool {
	for i := range vs {
		if vs[i].Status != Satisfied {
			return false
		}
	}
	return true
}

func check(c *ir.Expr, env Env, vars map[string]any) Verdict {
	v := Verdict{Constraint: c}
	for _, x := range c.Vars() {
		if _, ok := env[x.Name]; !ok {
			v.Missing = append(v.Missing, x.Name)
		}
	}
	if len(v.Missing) != 0 {
		v.Status = Unbound
		return v
	}
	src, err := Source(c)
	if err != nil {
		v.Status, v.Err = Failed, err
		return v
	}
	prg, err := expr.Compile(src, expr.Env(vars), expr.AsBool())
	if err != nil {
		v.Status, v.Err = Failed, fmt.Errorf("compiling %s: %w", src, err)
		return v
	}
	out, err := expr.Run(prg, vars)
	if err != nil {
		v.Status, v.Err = Failed, fmt.Errorf("running %s: %w", src, err)
		return v
	}
	if out.(bool) {
		v.Status = Satisfied
	} else {
		v.Status = Violated
	}
	return v
}
