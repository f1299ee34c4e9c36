package ir

import "strings"

// String renders e in infix form.  Operations are parenthesized, leaves are
// not: "(c0<10)", "((c1+c2)^7)".
func (e *Expr) String() string {
	if e == nil {
		return "<nil>"
	}
	if e.Type.IsLeaf() {
		return e.Infix()
	}
	return "(" + e.Infix() + ")"
}

// Infix is String without the outermost parentheses.
func (e *Expr) Infix() string {
	if e == nil {
		return "<nil>"
	}
	switch e.Type {
	case VarType:
		return e.Name
	case LitType:
		return e.Text
	}
	buf := &strings.Builder{}
	switch {
	case len(e.Operands) == 1 && e.Constant != nil:
		buf.WriteString(e.Operands[0].String())
		buf.WriteString(e.Operator)
		buf.WriteString(*e.Constant)
	case len(e.Operands) == 1:
		buf.WriteString(e.Operator)
		buf.WriteString(e.Operands[0].String())
	default:
		for i, op := range e.Operands {
			if i != 0 {
				buf.WriteString(e.Operator)
			}
			buf.WriteString(op.String())
		}
	}
	return buf.String()
}

func (e *Expr) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}
