package token

import (
	"strconv"
	"strings"
)

// Marker starts every opcode line of a trace.
const Marker = "S:"

func IsOpcodeLine(raw string) bool {
	return strings.HasPrefix(raw, Marker)
}

// ParseLine parses the opcode line raw found at the 1-based line number line.
// Mnemonics it does not know parse as [Unknown] records; rejecting them is up
// to the caller.
func ParseLine(line int, raw string) (*Record, error) {
	raw = strings.TrimRight(raw, "\r\n")
	if !IsOpcodeLine(raw) {
		return nil, &MalformedLineError{Line: line, Raw: raw, Reason: ErrNoMarker.Error(), Err: ErrNoMarker}
	}
	body := strings.TrimSpace(raw[len(Marker):])
	mnemonic, rest, _ := strings.Cut(body, " ")
	if mnemonic == "" {
		return nil, malformed(line, raw, "", "missing mnemonic")
	}
	rest = strings.TrimSpace(rest)
	rec := &Record{
		Line:     line,
		Raw:      raw,
		Mnemonic: mnemonic,
		Op:       LookupKind(mnemonic),
	}
	switch rec.Op {
	case Push:
		v, _, _ := strings.Cut(rest, " ")
		if v == "" {
			return nil, malformed(line, raw, mnemonic, "PUSH without value")
		}
		rec.Value = v
	case Pop:
		rec.Value = strings.TrimSuffix(strings.TrimPrefix(rest, "("), ")")
	case Get:
		i, err := indexField(rest)
		if err != nil {
			return nil, malformed(line, raw, mnemonic, "%s", err)
		}
		rec.Index = i
	case Set:
		i, err := indexField(rest)
		if err != nil {
			return nil, malformed(line, raw, mnemonic, "%s", err)
		}
		rec.Index = i
		rec.Value, _ = field(rest, "value:")
	case Swap:
	case Test:
		if err := parseTest(rec, rest); err != nil {
			return nil, malformed(line, raw, mnemonic, "%s", err)
		}
	default:
		rec.Value, _, _ = strings.Cut(rest, " ")
	}
	return rec, nil
}

// field returns the whitespace delimited text following key in s.
func field(s, key string) (string, bool) {
	i := strings.Index(s, key)
	if i == -1 {
		return "", false
	}
	v := s[i+len(key):]
	if j := strings.IndexAny(v, " \t"); j != -1 {
		v = v[:j]
	}
	return v, true
}

func indexField(s string) (int, error) {
	v, ok := field(s, "index:")
	if !ok {
		return 0, errorString("missing index:<int>")
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, errorString("bad index " + strconv.Quote(v))
	}
	return i, nil
}

// parseTest reads "(<op>[,cte=<lit>|,#op=<n>])".
func parseTest(rec *Record, s string) error {
	open := strings.IndexByte(s, '(')
	end := strings.LastIndexByte(s, ')')
	if open == -1 || end < open {
		return errorString("TEST without (operator)")
	}
	parts := strings.Split(s[open+1:end], ",")
	rec.Operator = strings.TrimSpace(parts[0])
	if rec.Operator == "" {
		return errorString("TEST without operator")
	}
	for _, part := range parts[1:] {
		part = strings.TrimSpace(part)
		switch {
		case strings.HasPrefix(part, "cte="):
			c := part[len("cte="):]
			if c == "" {
				return errorString("empty cte=")
			}
			rec.Constant = &c
		case strings.HasPrefix(part, "#op="):
			n, err := strconv.Atoi(part[len("#op="):])
			if err != nil {
				return errorString("bad operand count " + strconv.Quote(part))
			}
			rec.Operands = n
		default:
			return errorString("unexpected TEST field " + strconv.Quote(part))
		}
	}
	return nil
}

type errorString string

func (e errorString) Error() string { return string(e) }
