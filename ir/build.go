package ir

// Build applies operator to operands.
//
//   - one operand and a constant gives the binary "operand operator constant"
//   - one operand alone gives the unary "operator operand"
//   - two or more operands are chained: "o0 operator o1 operator o2 ..."
//
// Build panics when operands is empty.
func Build(operands []*Expr, operator string, constant *string) *Expr {
	if len(operands) == 0 {
		panic(ErrNoOperands)
	}
	res := &Expr{
		Type:     NodeType,
		Operator: operator,
		Operands: append([]*Expr(nil), operands...),
	}
	if len(operands) == 1 && constant != nil {
		c := *constant
		res.Constant = &c
	}
	return res
}

