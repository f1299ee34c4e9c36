// Package libdiff compares replay reports line by line.
package libdiff

import (
	"strings"

	"github.com/signadot/stackreplay/encode"
	"github.com/signadot/stackreplay/replay"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Change is a run of lines that are equal in both texts, or only present
// in one of them.
type Change struct {
	Op    Op       `json:"op"`
	Lines []string `json:"lines"`
}

// DiffText returns the line changes turning from into to, nil when they
// are identical.
func DiffText(from, to string) []Change {
	if from == to {
		return nil
	}
	dmp := diffpatch.New()
	a, b, lines := dmp.DiffLinesToChars(from, to)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)
	res := make([]Change, 0, len(diffs))
	for i := range diffs {
		d := &diffs[i]
		c := Change{Lines: splitLines(d.Text)}
		switch d.Type {
		case diffpatch.DiffDelete:
			c.Op = Delete
		case diffpatch.DiffInsert:
			c.Op = Insert
		default:
			c.Op = Equal
		}
		res = append(res, c)
	}
	return res
}

// DiffReports diffs the text reports of two replays.
func DiffReports(from, to *replay.Result, opts ...encode.EncodeOption) []Change {
	return DiffText(encode.String(from, opts...), encode.String(to, opts...))
}

// Changed reports whether cs holds anything but equal lines.
func Changed(cs []Change) bool {
	for i := range cs {
		if cs[i].Op != Equal {
			return true
		}
	}
	return false
}

type FormatOption func(*formatOpts)

type formatOpts struct {
	color   bool
	context int
}

// FormatColor colors deleted lines red and inserted lines green.
func FormatColor(v bool) FormatOption {
	return func(o *formatOpts) { o.color = v }
}

// FormatContext keeps n equal lines around each change, all of them when n
// is negative.
func FormatContext(n int) FormatOption {
	return func(o *formatOpts) { o.context = n }
}

// Format renders cs with unified diff line markers.
func Format(cs []Change, opts ...FormatOption) string {
	o := &formatOpts{context: -1}
	for _, opt := range opts {
		opt(o)
	}
	paint := map[Op]func(...any) string{
		Equal:  func(a ...any) string { return a[0].(string) },
		Delete: painter(color.FgRed, o.color),
		Insert: painter(color.FgGreen, o.color),
	}
	buf := &strings.Builder{}
	for i := range cs {
		c := &cs[i]
		lines := c.Lines
		if c.Op == Equal && o.context >= 0 {
			lines = trimContext(lines, o.context, i > 0, i < len(cs)-1)
		}
		for _, line := range lines {
			buf.WriteString(paint[c.Op](c.Op.Prefix() + line))
			buf.WriteByte('\n')
		}
	}
	return buf.String()
}

func painter(attr color.Attribute, on bool) func(...any) string {
	if !on {
		return func(a ...any) string { return a[0].(string) }
	}
	c := color.New(attr)
	c.EnableColor()
	return c.SprintFunc()
}

// trimContext keeps the first n lines when a change precedes the run and
// the last n lines when one follows it.
func trimContext(lines []string, n int, before, after bool) []string {
	if len(lines) <= 2*n && before && after {
		return lines
	}
	var res []string
	if before {
		res = append(res, lines[:min(n, len(lines))]...)
	}
	if after {
		res = append(res, lines[max(len(lines)-n, len(res)):]...)
	}
	return res
}

func splitLines(text string) []string {
	text = strings.TrimSuffix(text, "\n")
	return strings.Split(text, "\n")
}
