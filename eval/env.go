package eval

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"
)

// Env binds symbolic variable names to concrete values.
type Env map[string]int64

// Set parses a "name=value" assignment into env.  The value is a YAML
// scalar: an integer, or a one character string standing for its code.
func (env Env) Set(a string) error {
	key, val, ok := strings.Cut(a, "=")
	if !ok || key == "" {
		return fmt.Errorf("%w: argument %q expected name=val", ErrAssignment, a)
	}
	var v any
	if err := yaml.Unmarshal([]byte(val), &v); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrAssignment, a, err)
	}
	switch x := v.(type) {
	case int64:
		env[key] = x
	case uint64:
		env[key] = int64(x)
	case int:
		env[key] = int64(x)
	case string:
		n, err := Literal(x)
		if err == nil {
			env[key] = n
			return nil
		}
		r := []rune(x)
		if len(r) != 1 {
			return fmt.Errorf("%w: %s: want an integer or a single character", ErrAssignment, a)
		}
		env[key] = int64(r[0])
	default:
		return fmt.Errorf("%w: %s: want an integer or a single character", ErrAssignment, a)
	}
	return nil
}

// BindString binds the bytes of s to prefix<first>, prefix<first+1>, ...
func (env Env) BindString(prefix string, first int, s string) {
	for i := 0; i < len(s); i++ {
		env[prefix+strconv.Itoa(first+i)] = int64(s[i])
	}
}

func (env Env) exprEnv() map[string]any {
	res := make(map[string]any, len(env))
	for k, v := range env {
		res[k] = int(v)
	}
	return res
}
