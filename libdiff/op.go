package libdiff

import "fmt"

type Op int

const (
	Equal Op = iota
	Delete
	Insert
)

var opPrefix = map[Op]string{
	Equal:  " ",
	Delete: "-",
	Insert: "+",
}

var opNames = map[Op]string{
	Equal:  "equal",
	Delete: "delete",
	Insert: "insert",
}

func (o Op) String() string {
	return opNames[o]
}

func (o Op) MarshalText() ([]byte, error) {
	if _, ok := opNames[o]; !ok {
		return nil, fmt.Errorf("unknown diff op %d", o)
	}
	return []byte(o.String()), nil
}

// Prefix is the unified diff marker of o.
func (o Op) Prefix() string {
	return opPrefix[o]
}
