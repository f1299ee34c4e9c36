package token

import (
	"regexp"
	"strconv"
)

// Annotation describes the line following a PUSH whose value was computed
// from popped operands.
type Annotation struct {
	Operator string
	Operands int
}

var (
	// "  | operation: (+,#op=2)"
	pluginAnnotation = regexp.MustCompile(`^\s*\|?\s*operation:\s*\(\s*([^,\s]+)\s*,\s*#op=(\d+)\s*\)\s*$`)
	// "operation: + (2 operands)"
	plainAnnotation = regexp.MustCompile(`^\s*\|?\s*operation:\s*(\S+)\s+\((\d+)\s+operands?\)\s*$`)
)

// ParseAnnotation recognizes an operation annotation line.
func ParseAnnotation(line string) (*Annotation, bool) {
	for _, re := range []*regexp.Regexp{pluginAnnotation, plainAnnotation} {
		m := re.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[2])
		if err != nil {
			return nil, false
		}
		return &Annotation{Operator: m[1], Operands: n}, true
	}
	return nil, false
}
