package keymaps

import (
	evdev "github.com/gvalkov/golang-evdev"

	"github.com/goBrailleChord/braille"
)

// QwertyLayout returns the Perkins home-row layout:
//
//	A  S  D  F   Space   J  K  L  ;
//	7  3  2  1   space   4  5  6  8
func QwertyLayout() *Table {
	return MustTable(map[uint16]braille.Pattern{
		evdev.KEY_F:         braille.Dot1,
		evdev.KEY_D:         braille.Dot2,
		evdev.KEY_S:         braille.Dot3,
		evdev.KEY_J:         braille.Dot4,
		evdev.KEY_K:         braille.Dot5,
		evdev.KEY_L:         braille.Dot6,
		evdev.KEY_A:         braille.Dot7,
		evdev.KEY_SEMICOLON: braille.Dot8,
		evdev.KEY_SPACE:     braille.DotSpace,
	})
}

// RegisterQwertyLayout registers the home-row layout with the provider
func RegisterQwertyLayout(p *Provider) {
	p.Register(DefaultLayout, QwertyLayout())
}
