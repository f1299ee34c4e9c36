package ir

import "fmt"

type Type int

const (
	VarType Type = iota
	LitType
	NodeType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		VarType:  "Var",
		LitType:  "Lit",
		NodeType: "Node",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"Var":  VarType,
		"Lit":  LitType,
		"Node": NodeType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("%w %q", ErrUnknownType, d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{
		VarType,
		LitType,
		NodeType,
	}
}

func (t Type) IsLeaf() bool {
	return t != NodeType
}
