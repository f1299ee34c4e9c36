package debug

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"sync"
)

type debug struct {
	Read     bool
	Dispatch bool
	Push     bool
	Layout   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Read = boolEnv("STACKREPLAY_DEBUG_READ")
	d.Dispatch = boolEnv("STACKREPLAY_DEBUG_DISPATCH")
	d.Push = boolEnv("STACKREPLAY_DEBUG_PUSH")
	d.Layout = boolEnv("STACKREPLAY_DEBUG_LAYOUT")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

// All turns every toggle on or off.
func All(on bool) {
	d.Read = on
	d.Dispatch = on
	d.Push = on
	d.Layout = on
}

func Read() bool {
	return d.Read
}
func Dispatch() bool {
	return d.Dispatch
}
func Push() bool {
	return d.Push
}
func Layout() bool {
	return d.Layout
}

var (
	mu  sync.Mutex
	out io.Writer = os.Stderr
)

// SetOutput redirects Logf, which writes to stderr by default.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	out = w
}

func Logf(msg string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	fmt.Fprintf(out, msg, args...)
}

type JSON struct{ V any }

func (j JSON) String() string {
	d, err := json.MarshalIndent(j.V, "   |", "  ")
	if err != nil {
		return fmt.Sprintf("%v", j.V)
	}
	return string(d)
}
