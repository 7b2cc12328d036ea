package chord

import (
	"unicode"

	"github.com/goBrailleChord/braille"
	"github.com/goBrailleChord/keymaps"
)

// EventType distinguishes key transitions.
type EventType uint8

const (
	KeyPress EventType = iota + 1
	KeyRelease
)

func (t EventType) String() string {
	switch t {
	case KeyPress:
		return "press"
	case KeyRelease:
		return "release"
	default:
		return "unknown"
	}
}

// KeyEvent is a single key transition as delivered by the host.
type KeyEvent struct {
	Type      EventType
	Code      uint16
	Modifiers keymaps.Modifier
	Text      string

	// Set on events synthesized from a resolved chord. Consumers that do not
	// care about braille can ignore both fields.
	Dots      braille.Pattern
	Synthetic bool
}

// Result tells the host what to do with the event it just handed over.
type Result int

const (
	// Mute means the event was consumed as chord input.
	Mute Result = iota
	// PassThru means the host must forward the event unchanged.
	PassThru
)

func (r Result) String() string {
	if r == Mute {
		return "mute"
	}
	return "pass-thru"
}

// eligible reports whether ev may take part in a chord at all: no modifier
// other than shift, and non-empty printable text.
func eligible(ev KeyEvent, excludeSpace bool) bool {
	if ev.Modifiers != keymaps.ModNone && ev.Modifiers != keymaps.ModShift {
		return false
	}
	if excludeSpace && ev.Code == keymaps.KeySpace {
		return false
	}
	if ev.Text == "" {
		return false
	}
	for _, r := range ev.Text {
		if !unicode.IsPrint(r) {
			return false
		}
	}
	return true
}
