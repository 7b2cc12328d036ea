package keymaps

import (
	"errors"
	"fmt"
	"sort"

	"github.com/goBrailleChord/braille"
)

var (
	ErrDuplicateDot = errors.New("dot already bound to another key")
	ErrInvalidDot   = errors.New("binding must be a single dot bit")
)

// Modifier is the modifier state carried by a key event.
type Modifier uint8

const (
	ModNone  Modifier = 0
	ModShift Modifier = 1 << (iota - 1)
	ModCtrl
	ModAlt
	ModMeta
)

func (m Modifier) String() string {
	if m == ModNone {
		return "none"
	}
	s := ""
	for _, n := range []struct {
		bit  Modifier
		name string
	}{{ModShift, "shift"}, {ModCtrl, "ctrl"}, {ModAlt, "alt"}, {ModMeta, "meta"}} {
		if m&n.bit != 0 {
			if s != "" {
				s += "+"
			}
			s += n.name
		}
	}
	return s
}

// Table maps physical key codes to the dot each one triggers. A Table is
// never mutated after construction; With returns a new one.
type Table struct {
	dots map[uint16]braille.Pattern
}

// NewTable validates bindings and returns an immutable Table. Every value must
// be a single dot bit and no dot may be bound twice.
func NewTable(bindings map[uint16]braille.Pattern) (*Table, error) {
	t := &Table{dots: make(map[uint16]braille.Pattern, len(bindings))}
	owner := make(map[braille.Pattern]uint16, len(bindings))
	for _, code := range sortedCodes(bindings) {
		dot := bindings[code]
		if !dot.IsSingleDot() || dot&^braille.FullMask != 0 {
			return nil, fmt.Errorf("%s=%#x: %w", KeyName(code), uint16(dot), ErrInvalidDot)
		}
		if prev, ok := owner[dot]; ok {
			return nil, fmt.Errorf("%s and %s both bind %s: %w", KeyName(prev), KeyName(code), dot, ErrDuplicateDot)
		}
		owner[dot] = code
		t.dots[code] = dot
	}
	return t, nil
}

// MustTable is NewTable for static layouts.
func MustTable(bindings map[uint16]braille.Pattern) *Table {
	t, err := NewTable(bindings)
	if err != nil {
		panic(err)
	}
	return t
}

// Lookup returns the dot bound to code.
func (t *Table) Lookup(code uint16) (braille.Pattern, bool) {
	dot, ok := t.dots[code]
	return dot, ok
}

// Len returns the number of bound keys.
func (t *Table) Len() int {
	return len(t.dots)
}

// Codes returns the bound key codes ordered by dot.
func (t *Table) Codes() []uint16 {
	codes := sortedCodes(t.dots)
	sort.SliceStable(codes, func(i, j int) bool { return t.dots[codes[i]] < t.dots[codes[j]] })
	return codes
}

// SixKey returns the subset of t binding dots 1-6.
func (t *Table) SixKey() *Table {
	out := &Table{dots: make(map[uint16]braille.Pattern, 6)}
	for code, dot := range t.dots {
		if dot&braille.SixDotMask != 0 {
			out.dots[code] = dot
		}
	}
	return out
}

// With returns a copy of t with overrides applied. An override takes the dot
// away from whichever key held it before.
func (t *Table) With(overrides ...Binding) (*Table, error) {
	merged := make(map[uint16]braille.Pattern, len(t.dots)+len(overrides))
	for code, dot := range t.dots {
		merged[code] = dot
	}
	for _, o := range overrides {
		for code, dot := range merged {
			if dot == o.Dot {
				delete(merged, code)
			}
		}
		merged[o.Code] = o.Dot
	}
	return NewTable(merged)
}

func sortedCodes(m map[uint16]braille.Pattern) []uint16 {
	codes := make([]uint16, 0, len(m))
	for code := range m {
		codes = append(codes, code)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })
	return codes
}
