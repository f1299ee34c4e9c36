package token

import "fmt"

type Kind int

const (
	Unknown Kind = iota
	Push
	Pop
	Get
	Set
	Swap
	Test
)

var kindNames = map[Kind]string{
	Unknown: "UNKNOWN",
	Push:    "PUSH",
	Pop:     "POP",
	Get:     "GET",
	Set:     "SET",
	Swap:    "SWAP",
	Test:    "TEST",
}

func (k Kind) String() string {
	s, ok := kindNames[k]
	if ok {
		return s
	}
	return fmt.Sprintf("<kind %d>", int(k))
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func LookupKind(mnemonic string) Kind {
	for k, s := range kindNames {
		if k != Unknown && s == mnemonic {
			return k
		}
	}
	return Unknown
}

// Record is one parsed opcode line.
type Record struct {
	// Line is the 1-based physical line number in the trace.
	Line int
	Raw  string

	Op       Kind
	Mnemonic string

	// Index is the stack index of GET and SET.
	Index int

	// Value is the inline value of PUSH, and the informative value of POP
	// and SET.  Empty when absent.
	Value string

	// Operator and Constant describe a TEST.  Operands is the operand count
	// the trace recorded with "#op=<n>", 0 when absent.
	Operator string
	Constant *string
	Operands int
}

func (r *Record) String() string {
	return fmt.Sprintf("%d:%s", r.Line, r.Raw)
}
