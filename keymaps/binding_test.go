package keymaps

import (
	"testing"

	evdev "github.com/gvalkov/golang-evdev"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goBrailleChord/braille"
)

func TestParseBinding(t *testing.T) {
	cases := []struct {
		in   string
		code uint16
		dot  braille.Pattern
	}{
		{"KEY_F=1", evdev.KEY_F, braille.Dot1},
		{"g=4", evdev.KEY_G, braille.Dot4},
		{";=8", evdev.KEY_SEMICOLON, braille.Dot8},
		{"space=space", evdev.KEY_SPACE, braille.DotSpace},
		{"key_v= 7", evdev.KEY_V, braille.Dot7},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			b, err := ParseBinding(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.code, b.Code)
			assert.Equal(t, tc.dot, b.Dot)
		})
	}
}

func TestParseBindingErrors(t *testing.T) {
	for _, in := range []string{"KEY_F", "KEY_NOPE=1", "f=9", "f=0", "f=x"} {
		_, err := ParseBinding(in)
		assert.Error(t, err, in)
	}
	_, err := ParseBinding("f=9")
	assert.ErrorIs(t, err, ErrInvalidDot)
}

func TestParseBindingsAppliedToLayout(t *testing.T) {
	overrides, err := ParseBindings([]string{"v=7", "n=8"})
	require.NoError(t, err)
	table, err := QwertyLayout().With(overrides...)
	require.NoError(t, err)

	dot, ok := table.Lookup(evdev.KEY_N)
	assert.True(t, ok)
	assert.Equal(t, braille.Dot8, dot)
	_, ok = table.Lookup(evdev.KEY_SEMICOLON)
	assert.False(t, ok)
	assert.Equal(t, 9, table.Len())
}

func TestKeyText(t *testing.T) {
	assert.Equal(t, "f", KeyText(evdev.KEY_F, false))
	assert.Equal(t, "F", KeyText(evdev.KEY_F, true))
	assert.Equal(t, ":", KeyText(evdev.KEY_SEMICOLON, true))
	assert.Equal(t, " ", KeyText(evdev.KEY_SPACE, false))
	assert.Equal(t, "", KeyText(evdev.KEY_UP, false))
	assert.Equal(t, "", KeyText(evdev.KEY_LEFTSHIFT, false))
}

func TestKeyNames(t *testing.T) {
	assert.Equal(t, "KEY_SEMICOLON", KeyName(evdev.KEY_SEMICOLON))
	assert.Equal(t, "KEY_999", KeyName(999))

	code, ok := KeyCode("key_semicolon")
	assert.True(t, ok)
	assert.Equal(t, uint16(evdev.KEY_SEMICOLON), code)
	_, ok = KeyCode("")
	assert.False(t, ok)
}

func TestModifierFor(t *testing.T) {
	mod, ok := ModifierFor(evdev.KEY_RIGHTSHIFT)
	assert.True(t, ok)
	assert.Equal(t, ModShift, mod)
	mod, ok = ModifierFor(evdev.KEY_LEFTCTRL)
	assert.True(t, ok)
	assert.Equal(t, ModCtrl, mod)
	_, ok = ModifierFor(evdev.KEY_F)
	assert.False(t, ok)
}
