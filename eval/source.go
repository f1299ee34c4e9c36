// Package eval evaluates logged constraints against a concrete input.
//
// Each constraint is translated to an expr-lang program over integer
// variables named after the symbolic variables of the replay.  Trace
// operators follow C semantics: comparisons and logical operators give 0 or
// 1 when used as an operand, and a constraint holds when its value is
// non-zero.
package eval

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/signadot/stackreplay/ir"
)

// Source returns the expr-lang source of e as a boolean expression.
func Source(e *ir.Expr) (string, error) {
	src, isBool, err := source(e)
	if err != nil {
		return "", err
	}
	if !isBool {
		src = "(" + src + " != 0)"
	}
	return src, nil
}

func source(e *ir.Expr) (string, bool, error) {
	switch e.Type {
	case ir.VarType:
		return e.Name, false, nil
	case ir.LitType:
		v, err := Literal(e.Text)
		if err != nil {
			return "", false, err
		}
		if v < 0 {
			return "(" + strconv.FormatInt(v, 10) + ")", false, nil
		}
		return strconv.FormatInt(v, 10), false, nil
	}
	op := Lookup(e.Operator)
	if op == nil {
		return "", false, fmt.Errorf("%w %q", ErrNoOperator, e.Operator)
	}
	args := make([]string, 0, len(e.Operands)+1)
	for _, x := range e.Operands {
		arg, isBool, err := source(x)
		if err != nil {
			return "", false, err
		}
		if isBool {
			arg = intOf(arg)
		}
		args = append(args, arg)
	}
	if e.Constant != nil {
		arg, _, err := source(ir.Lit(*e.Constant))
		if err != nil {
			return "", false, err
		}
		args = append(args, arg)
	}
	src, err := op.Source(args...)
	if err != nil {
		return "", false, err
	}
	return src, op.Bool(), nil
}

// Literal parses an integer as written in a trace: decimal, 0x hex, 0 octal
// or 0b binary, optionally signed, or a quoted character such as 'A'.
func Literal(text string) (int64, error) {
	if n := len(text); n >= 3 && text[0] == '\'' && text[n-1] == '\'' {
		r, size := utf8.DecodeRuneInString(text[1 : n-1])
		if r == utf8.RuneError || size != n-2 {
			return 0, fmt.Errorf("%w %s", ErrBadLiteral, text)
		}
		return int64(r), nil
	}
	v, err := strconv.ParseInt(text, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("%w %s", ErrBadLiteral, text)
	}
	return v, nil
}
