package keymaps

import (
	evdev "github.com/gvalkov/golang-evdev"

	"github.com/goBrailleChord/braille"
)

// UpperRowLayout moves the chord one row up, for keyboards whose home row is
// awkward to reach or whose F/J keys are already claimed:
//
//	Q  W  E  R   Space   U  I  O  P
//	7  3  2  1   space   4  5  6  8
func UpperRowLayout() *Table {
	return MustTable(map[uint16]braille.Pattern{
		evdev.KEY_R:     braille.Dot1,
		evdev.KEY_E:     braille.Dot2,
		evdev.KEY_W:     braille.Dot3,
		evdev.KEY_U:     braille.Dot4,
		evdev.KEY_I:     braille.Dot5,
		evdev.KEY_O:     braille.Dot6,
		evdev.KEY_Q:     braille.Dot7,
		evdev.KEY_P:     braille.Dot8,
		evdev.KEY_SPACE: braille.DotSpace,
	})
}

// RegisterUpperRowLayout registers the upper-row layout with the provider
func RegisterUpperRowLayout(p *Provider) {
	p.Register("upper-row", UpperRowLayout())
}
