package token

import (
	"bytes"
	"io"
	"strings"
)

// Reader yields the opcode records of a trace in order.  Lines are split
// up front but each is parsed only when reached.
type Reader struct {
	lines []string
	// i is the index of the next physical line to consider.
	i int
}

func NewReader(d []byte) *Reader {
	d = bytes.TrimSuffix(d, []byte{'\n'})
	var lines []string
	if len(d) != 0 {
		lines = strings.Split(string(d), "\n")
	}
	for i, ln := range lines {
		lines[i] = strings.TrimSuffix(ln, "\r")
	}
	return &Reader{lines: lines}
}

// ReadAll reads r entirely and returns a Reader over it.
func ReadAll(r io.Reader) (*Reader, error) {
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return NewReader(d), nil
}

// Next returns the next opcode record, or io.EOF once the trace is
// exhausted.  A malformed opcode line is consumed and reported as a
// *MalformedLineError.
func (r *Reader) Next() (*Record, error) {
	for r.i < len(r.lines) {
		ln := r.lines[r.i]
		r.i++
		if !IsOpcodeLine(ln) {
			continue
		}
		return ParseLine(r.i, ln)
	}
	return nil, io.EOF
}

// PeekLine returns the physical line following the record last returned by
// Next, whatever it contains.
func (r *Reader) PeekLine() (string, bool) {
	if r.i >= len(r.lines) {
		return "", false
	}
	return r.lines[r.i], true
}

// PeekAnnotation is PeekLine followed by ParseAnnotation.
func (r *Reader) PeekAnnotation() *Annotation {
	ln, ok := r.PeekLine()
	if !ok {
		return nil
	}
	a, ok := ParseAnnotation(ln)
	if !ok {
		return nil
	}
	return a
}

// Reset rewinds the reader to the start of the trace.
func (r *Reader) Reset() {
	r.i = 0
}

// Lines is the number of physical lines in the trace.
func (r *Reader) Lines() int {
	return len(r.lines)
}
