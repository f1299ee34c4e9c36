package eval

import (
	"fmt"
)

// Operator translates one trace operator to expr-lang source.
type Operator interface {
	String() string
	// Source combines operand sources, each an integer valued expression.
	Source(args ...string) (string, error)
	// Bool reports whether Source is boolean rather than integer valued.
	Bool() bool
}

type name string

func (s name) String() string {
	return string(s)
}

// op formats its operands with fmt verbs: unary takes one %s, binary two.
// More than two operands are folded left with binary.
type op struct {
	name
	unary  string
	binary string
	bool   bool
}

func (o op) Bool() bool { return o.bool }

func (o op) Source(args ...string) (string, error) {
	switch {
	case len(args) == 1 && o.unary != "":
		return fmt.Sprintf(o.unary, args[0]), nil
	case len(args) >= 2 && o.binary != "":
		res := fmt.Sprintf(o.binary, args[0], args[1])
		for _, a := range args[2:] {
			if o.bool {
				res = intOf(res)
			}
			res = fmt.Sprintf(o.binary, res, a)
		}
		return res, nil
	default:
		return "", fmt.Errorf("%w: %s with %d operands", ErrArity, o.name, len(args))
	}
}

func intOf(boolSrc string) string {
	return "(" + boolSrc + " ? 1 : 0)"
}

func builtins() []Operator {
	return []Operator{
		op{name: "+", unary: "(+%s)", binary: "(%s + %s)"},
		op{name: "-", unary: "(-%s)", binary: "(%s - %s)"},
		op{name: "*", binary: "(%s * %s)"},
		op{name: "/", binary: "int(%s / %s)"},
		op{name: "%", binary: "(%s %% %s)"},
		op{name: "&", binary: "bitand(%s, %s)"},
		op{name: "|", binary: "bitor(%s, %s)"},
		op{name: "^", unary: "bitnot(%s)", binary: "bitxor(%s, %s)"},
		op{name: "~", unary: "bitnot(%s)"},
		op{name: "<<", binary: "bitshl(%s, %s)"},
		op{name: ">>", binary: "bitshr(%s, %s)"},
		op{name: "==", binary: "(%s == %s)", bool: true},
		op{name: "!=", binary: "(%s != %s)", bool: true},
		op{name: "<", binary: "(%s < %s)", bool: true},
		op{name: ">", binary: "(%s > %s)", bool: true},
		op{name: "<=", binary: "(%s <= %s)", bool: true},
		op{name: ">=", binary: "(%s >= %s)", bool: true},
		op{name: "!", unary: "(%s == 0)", bool: true},
		op{name: "&&", binary: "((%s != 0) && (%s != 0))", bool: true},
		op{name: "||", binary: "((%s != 0) || (%s != 0))", bool: true},
	}
}
