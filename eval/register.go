package eval

import (
	"errors"
	"fmt"
	"sync"
)

var (
	mu sync.RWMutex
	d  = map[string]Operator{}
)

var ErrOperatorExists = errors.New("operator exists")

func Register(o Operator) error {
	mu.Lock()
	defer mu.Unlock()
	_, present := d[o.String()]
	if present {
		return fmt.Errorf("%s: %w", o, ErrOperatorExists)
	}
	d[o.String()] = o
	return nil
}

func init() {
	for _, o := range builtins() {
		Register(o)
	}
}

func Lookup(s string) Operator {
	mu.RLock()
	defer mu.RUnlock()
	return d[s]
}

func Operators() []Operator {
	mu.RLock()
	defer mu.RUnlock()
	res := make([]Operator, 0, len(d))
	for _, o := range d {
		res = append(res, o)
	}
	return res
}
