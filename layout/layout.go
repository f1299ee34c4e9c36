// Package layout describes where the input bytes of the analysed program
// sit on the stack when the trace starts.
package layout

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/signadot/stackreplay/debug"
	"github.com/signadot/stackreplay/ir"
	"github.com/signadot/stackreplay/machine"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/goccy/go-yaml"
)

// DefaultSize is the number of stack slots present before the trace starts.
const DefaultSize = 50

var ErrBadLayout = errors.New("bad layout")

type Layout struct {
	Size   int    `json:"size"`
	Prefix string `json:"prefix,omitempty"`
	// Slots lists the seeded stack indexes; the i-th one holds variable i.
	Slots []int `json:"slots"`
}

// Default is the layout of the crackme the trace format was designed for:
// its 19 input characters are written at these indexes in this order.
func Default() *Layout {
	return &Layout{
		Size:   DefaultSize,
		Prefix: ir.DefaultPrefix,
		Slots:  []int{7, 8, 13, 15, 16, 26, 27, 22, 21, 4, 18, 28, 23, 29, 9, 1, 25, 30, 17},
	}
}

// Load reads a YAML or JSON layout from path and applies the JSON patches
// found in patchPaths in order.
func Load(path string, patchPaths ...string) (*Layout, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read %q: %w", path, err)
	}
	patches := make([][]byte, 0, len(patchPaths))
	for _, pp := range patchPaths {
		p, err := os.ReadFile(pp)
		if err != nil {
			return nil, fmt.Errorf("could not read %q: %w", pp, err)
		}
		patches = append(patches, p)
	}
	l, err := Parse(d, patches...)
	if err != nil {
		return nil, fmt.Errorf("error loading %s: %w", path, err)
	}
	return l, nil
}

// Parse decodes a layout document.  Each patch is an RFC 6902 JSON patch,
// in JSON or YAML, applied to the document before it is decoded.
func Parse(d []byte, patches ...[]byte) (*Layout, error) {
	doc, err := yaml.YAMLToJSON(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadLayout, err)
	}
	for i, p := range patches {
		doc, err = applyPatch(doc, p)
		if err != nil {
			return nil, fmt.Errorf("%w: patch %d: %w", ErrBadLayout, i, err)
		}
	}
	l := &Layout{}
	if err := yaml.UnmarshalWithOptions(doc, l, yaml.DisallowUnknownField()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadLayout, err)
	}
	if l.Prefix == "" {
		l.Prefix = ir.DefaultPrefix
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	if debug.Layout() {
		debug.Logf("layout %s\n", debug.JSON{V: l})
	}
	return l, nil
}

func applyPatch(doc, p []byte) ([]byte, error) {
	jp, err := yaml.YAMLToJSON(p)
	if err != nil {
		return nil, err
	}
	ops, err := jsonpatch.DecodePatch(jp)
	if err != nil {
		return nil, err
	}
	return ops.Apply(doc)
}

func (l *Layout) Validate() error {
	if l.Size <= 0 {
		return fmt.Errorf("%w: size %d", ErrBadLayout, l.Size)
	}
	seen := make(map[int]bool, len(l.Slots))
	for i, s := range l.Slots {
		if s < 0 || s >= l.Size {
			return fmt.Errorf("%w: slot %d (variable %d) outside [0,%d)", ErrBadLayout, s, i, l.Size)
		}
		if seen[s] {
			return fmt.Errorf("%w: slot %d listed twice", ErrBadLayout, s)
		}
		seen[s] = true
	}
	return nil
}

// State returns a fresh execution state seeded according to l.
func (l *Layout) State() (*machine.State, error) {
	return machine.New(l.Size, l.Slots, machine.WithPrefix(l.Prefix))
}

func (l *Layout) Encode(w io.Writer) error {
	d, err := yaml.Marshal(l)
	if err != nil {
		return err
	}
	_, err = w.Write(d)
	return err
}
