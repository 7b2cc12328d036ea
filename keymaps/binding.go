package keymaps

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/goBrailleChord/braille"
)

// Binding assigns one dot to one key.
type Binding struct {
	Code uint16
	Dot  braille.Pattern
}

func (b Binding) String() string {
	return KeyName(b.Code) + "=" + b.Dot.String()
}

// ParseBinding parses "KEY=DOT" where KEY is a key name ("KEY_F", "f", ";")
// and DOT is 1..8 or "space".
func ParseBinding(s string) (Binding, error) {
	key, dotStr, ok := strings.Cut(s, "=")
	if !ok {
		return Binding{}, fmt.Errorf("binding %q: expected KEY=DOT", s)
	}
	code, ok := KeyCode(key)
	if !ok {
		return Binding{}, fmt.Errorf("binding %q: unknown key %q", s, key)
	}
	dotStr = strings.ToLower(strings.TrimSpace(dotStr))
	n := 0
	if dotStr != "space" {
		var err error
		n, err = strconv.Atoi(dotStr)
		if err != nil || n < 1 {
			return Binding{}, fmt.Errorf("binding %q: dot must be 1-8 or space: %w", s, ErrInvalidDot)
		}
	}
	dot, ok := braille.DotForNumber(n)
	if !ok {
		return Binding{}, fmt.Errorf("binding %q: dot must be 1-8 or space: %w", s, ErrInvalidDot)
	}
	return Binding{Code: code, Dot: dot}, nil
}

// ParseBindings parses each entry with ParseBinding.
func ParseBindings(specs []string) ([]Binding, error) {
	out := make([]Binding, 0, len(specs))
	for _, s := range specs {
		b, err := ParseBinding(s)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}
