package keymaps

import (
	"fmt"

	evdev "github.com/gvalkov/golang-evdev"

	"github.com/goBrailleChord/braille"
)

// StandardKey is an ordinary keystroke a chord stands for.
type StandardKey struct {
	Code      uint16
	Modifiers Modifier
	Text      string
}

func (k StandardKey) String() string {
	if k.Modifiers == ModNone {
		return KeyName(k.Code)
	}
	return k.Modifiers.String() + "+" + KeyName(k.Code)
}

// KeyTable maps dot patterns to standard keystrokes. Immutable once built.
type KeyTable struct {
	keys map[braille.Pattern]StandardKey
}

// NewKeyTable copies keys into a new table.
func NewKeyTable(keys map[braille.Pattern]StandardKey) KeyTable {
	t := KeyTable{keys: make(map[braille.Pattern]StandardKey, len(keys))}
	for p, k := range keys {
		t.keys[p] = k
	}
	return t
}

// Lookup returns the keystroke for p.
func (t KeyTable) Lookup(p braille.Pattern) (StandardKey, bool) {
	k, ok := t.keys[p]
	return k, ok
}

// Len returns the number of mapped patterns.
func (t KeyTable) Len() int {
	return len(t.keys)
}

// computerBraille lists the North American computer braille character for
// each six-dot pattern, starting at dots-1.
const computerBraille = "a1b'k2l`cif/msp\"e3h9o6r~djg>ntq,*5<-u8v.%{$+x!&;:4|0z7(_?w}#y)="

// DefaultKeyTable returns the computer braille assignments for all six-dot
// patterns, plus backspace (dot 7), enter (dot 8), space, and the four
// space-chorded arrow keys.
func DefaultKeyTable() KeyTable {
	keys := make(map[braille.Pattern]StandardKey, len(computerBraille)+7)
	for i, r := range computerBraille {
		k, ok := keyForChar(string(r))
		if !ok {
			panic(fmt.Sprintf("keymaps: no key produces %q", r))
		}
		keys[braille.Pattern(i+1)] = k
	}
	keys[braille.Dot7] = StandardKey{Code: evdev.KEY_BACKSPACE, Text: "\b"}
	keys[braille.Dot8] = StandardKey{Code: evdev.KEY_ENTER, Text: "\r"}
	keys[braille.DotSpace] = StandardKey{Code: evdev.KEY_SPACE, Text: " "}
	keys[braille.DotSpace|braille.Dot1] = StandardKey{Code: evdev.KEY_UP}
	keys[braille.DotSpace|braille.Dot2] = StandardKey{Code: evdev.KEY_LEFT}
	keys[braille.DotSpace|braille.Dot3] = StandardKey{Code: evdev.KEY_DOWN}
	keys[braille.DotSpace|braille.Dot5] = StandardKey{Code: evdev.KEY_RIGHT}
	return NewKeyTable(keys)
}

// keyForChar finds the physical key and shift state that types s.
func keyForChar(s string) (StandardKey, bool) {
	for code, kc := range keyChars {
		switch s {
		case kc.Normal:
			return StandardKey{Code: code, Text: s}, true
		case kc.Shifted:
			return StandardKey{Code: code, Modifiers: ModShift, Text: s}, true
		}
	}
	return StandardKey{}, false
}
