// Package ir holds the symbolic expressions built while replaying a trace.
//
// An [Expr] is a symbolic variable, a literal, or an operator applied to
// operands.  Expressions are never mutated once built, so they can be shared
// between stack slots, buffers and constraints.
package ir

import (
	"slices"
	"strconv"
)

// DefaultPrefix names symbolic variables: c0, c1, ...
const DefaultPrefix = "c"

type Expr struct {
	Type Type

	// VarType
	ID   int
	Name string

	// LitType
	Text string

	// NodeType
	Operator string
	Operands []*Expr
	Constant *string
}

// Var is the symbolic variable with the given id and the default prefix.
func Var(id int) *Expr {
	return NamedVar(DefaultPrefix, id)
}

func NamedVar(prefix string, id int) *Expr {
	return &Expr{
		Type: VarType,
		ID:   id,
		Name: prefix + strconv.Itoa(id),
	}
}

func Lit(text string) *Expr {
	return &Expr{Type: LitType, Text: text}
}

// Visit calls f on e and its operands depth first, skipping the operands of
// any expression for which f returns false.
func (e *Expr) Visit(f func(*Expr) bool) {
	if !f(e) {
		return
	}
	for _, op := range e.Operands {
		op.Visit(f)
	}
}

// Vars lists the variables referenced by e, ordered by id.
func (e *Expr) Vars() []*Expr {
	seen := map[int]bool{}
	var res []*Expr
	e.Visit(func(x *Expr) bool {
		if x.Type == VarType && !seen[x.ID] {
			seen[x.ID] = true
			res = append(res, x)
		}
		return true
	})
	slices.SortFunc(res, func(a, b *Expr) int {
		return a.ID - b.ID
	})
	return res
}

// Equal reports whether a and b are structurally identical.
func Equal(a, b *Expr) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil || a.Type != b.Type {
		return false
	}
	switch a.Type {
	case VarType:
		return a.ID == b.ID && a.Name == b.Name
	case LitType:
		return a.Text == b.Text
	}
	if a.Operator != b.Operator || len(a.Operands) != len(b.Operands) {
		return false
	}
	if (a.Constant == nil) != (b.Constant == nil) {
		return false
	}
	if a.Constant != nil && *a.Constant != *b.Constant {
		return false
	}
	for i := range a.Operands {
		if !Equal(a.Operands[i], b.Operands[i]) {
			return false
		}
	}
	return true
}
