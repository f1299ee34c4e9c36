package libdiff

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/stackreplay/ir"
	"github.com/signadot/stackreplay/machine"
	"github.com/signadot/stackreplay/replay"
)

func TestDiffText(t *testing.T) {
	from := "a\nb\nc\n"
	to := "a\nx\nc\nd\n"
	got := DiffText(from, to)
	want := []Change{
		{Op: Equal, Lines: []string{"a"}},
		{Op: Delete, Lines: []string{"b"}},
		{Op: Insert, Lines: []string{"x"}},
		{Op: Equal, Lines: []string{"c"}},
		{Op: Insert, Lines: []string{"d"}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("changes (-want +got):\n%s", diff)
	}
	if !Changed(got) {
		t.Errorf("expected changes")
	}
	if s := Format(got); s != " a\n-b\n+x\n c\n+d\n" {
		t.Errorf("got %q", s)
	}
}

func TestFormatContext(t *testing.T) {
	cs := []Change{
		{Op: Equal, Lines: []string{"1", "2", "3"}},
		{Op: Delete, Lines: []string{"4"}},
		{Op: Equal, Lines: []string{"5", "6", "7", "8"}},
		{Op: Insert, Lines: []string{"9"}},
		{Op: Equal, Lines: []string{"10", "11"}},
	}
	got := Format(cs, FormatContext(1))
	want := " 3\n-4\n 5\n 8\n+9\n 10\n"
	if got != want {
		t.Errorf("got %q want %q", got, want)
	}
	if got := Format(cs, FormatContext(0)); got != "-4\n+9\n" {
		t.Errorf("got %q", got)
	}
}

func TestFormatColor(t *testing.T) {
	got := Format([]Change{{Op: Delete, Lines: []string{"x"}}}, FormatColor(true))
	if !strings.Contains(got, "\x1b[") || !strings.Contains(got, "-x") {
		t.Errorf("got %q", got)
	}
}

func TestDiffReports(t *testing.T) {
	strp := func(s string) *string { return &s }
	res := func(c string) *replay.Result {
		return &replay.Result{
			Constraints: []*ir.Expr{ir.Build([]*ir.Expr{ir.Var(0)}, "<", strp(c))},
			Stack:       []machine.Slot{{Index: 0, Expr: ir.Var(0)}},
		}
	}
	if cs := DiffReports(res("10"), res("10")); len(cs) != 0 || Format(cs) != "" {
		t.Errorf("identical reports differ: %v", cs)
	}
	cs := DiffReports(res("10"), res("11"))
	var changed []string
	for _, c := range cs {
		if c.Op != Equal {
			changed = append(changed, c.Op.Prefix()+strings.Join(c.Lines, ","))
		}
	}
	if diff := cmp.Diff([]string{"-(c0<10)", "+(c0<11)"}, changed); diff != "" {
		t.Errorf("changes (-want +got):\n%s", diff)
	}
}
