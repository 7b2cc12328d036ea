package keymaps

import (
	"testing"

	evdev "github.com/gvalkov/golang-evdev"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goBrailleChord/braille"
)

func TestDefaultKeyTable(t *testing.T) {
	table := DefaultKeyTable()
	assert.Equal(t, 63+7, table.Len())

	cases := []struct {
		dots braille.Pattern
		want StandardKey
	}{
		{0x01, StandardKey{Code: evdev.KEY_A, Text: "a"}},
		{0x02, StandardKey{Code: evdev.KEY_1, Text: "1"}},
		{0x09, StandardKey{Code: evdev.KEY_C, Text: "c"}},
		{0x10, StandardKey{Code: evdev.KEY_APOSTROPHE, Modifiers: ModShift, Text: "\""}},
		{0x21, StandardKey{Code: evdev.KEY_8, Modifiers: ModShift, Text: "*"}},
		{0x3f, StandardKey{Code: evdev.KEY_EQUAL, Text: "="}},
		{0x40, StandardKey{Code: evdev.KEY_BACKSPACE, Text: "\b"}},
		{0x80, StandardKey{Code: evdev.KEY_ENTER, Text: "\r"}},
		{0x100, StandardKey{Code: evdev.KEY_SPACE, Text: " "}},
		{0x101, StandardKey{Code: evdev.KEY_UP}},
		{0x102, StandardKey{Code: evdev.KEY_LEFT}},
		{0x104, StandardKey{Code: evdev.KEY_DOWN}},
		{0x110, StandardKey{Code: evdev.KEY_RIGHT}},
	}
	for _, tc := range cases {
		got, ok := table.Lookup(tc.dots)
		require.True(t, ok, tc.dots.String())
		assert.Equal(t, tc.want, got, tc.dots.String())
	}

	for _, missing := range []braille.Pattern{0, 0x41, 0xff, 0x103} {
		_, ok := table.Lookup(missing)
		assert.False(t, ok, missing.String())
	}
}

func TestDefaultKeyTableTextMatchesKey(t *testing.T) {
	table := DefaultKeyTable()
	for p := braille.Pattern(1); p <= braille.SixDotMask; p++ {
		key, ok := table.Lookup(p)
		require.True(t, ok)
		assert.Equal(t, key.Text, KeyText(key.Code, key.Modifiers == ModShift), p.String())
	}
}

func TestNewKeyTableCopies(t *testing.T) {
	src := map[braille.Pattern]StandardKey{braille.Dot1: {Code: evdev.KEY_A, Text: "a"}}
	table := NewKeyTable(src)
	delete(src, braille.Dot1)
	_, ok := table.Lookup(braille.Dot1)
	assert.True(t, ok)
}

func TestStandardKeyString(t *testing.T) {
	assert.Equal(t, "KEY_A", StandardKey{Code: evdev.KEY_A}.String())
	assert.Equal(t, "shift+KEY_APOSTROPHE", StandardKey{Code: evdev.KEY_APOSTROPHE, Modifiers: ModShift}.String())
}
