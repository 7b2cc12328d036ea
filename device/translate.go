package device

import (
	evdev "github.com/gvalkov/golang-evdev"

	"github.com/goBrailleChord/chord"
	"github.com/goBrailleChord/keymaps"
)

// Key event values from linux/input.h.
const (
	keyReleased = 0
	keyPressed  = 1
	keyRepeated = 2
)

// synDropped marks a buffer overrun: events were lost, so held-key state can
// no longer be trusted.
const synDropped = 3

// Translator turns raw evdev key events into chord events. evdev carries no
// text or modifier state, so both are derived here from the key codes seen
// so far. Keep one Translator per device.
type Translator struct {
	held map[uint16]keymaps.Modifier
}

// NewTranslator returns a translator with no modifiers held.
func NewTranslator() *Translator {
	return &Translator{held: make(map[uint16]keymaps.Modifier)}
}

// Modifiers returns the modifiers currently held.
func (t *Translator) Modifiers() keymaps.Modifier {
	var m keymaps.Modifier
	for _, mod := range t.held {
		m |= mod
	}
	return m
}

// Translate converts ev. It returns false for anything that is not a key
// transition.
func (t *Translator) Translate(ev evdev.InputEvent) (chord.KeyEvent, bool) {
	if ev.Type != evdev.EV_KEY {
		return chord.KeyEvent{}, false
	}

	var typ chord.EventType
	switch ev.Value {
	case keyPressed, keyRepeated:
		typ = chord.KeyPress
	case keyReleased:
		typ = chord.KeyRelease
	default:
		return chord.KeyEvent{}, false
	}

	if mod, ok := keymaps.ModifierFor(ev.Code); ok {
		if typ == chord.KeyPress {
			t.held[ev.Code] = mod
		} else {
			delete(t.held, ev.Code)
		}
	}

	mods := t.Modifiers()
	return chord.KeyEvent{
		Type:      typ,
		Code:      ev.Code,
		Modifiers: mods,
		Text:      keymaps.KeyText(ev.Code, mods&keymaps.ModShift != 0),
	}, true
}

// Reset forgets held modifiers.
func (t *Translator) Reset() {
	clear(t.held)
}

// IsDropped reports whether ev signals lost events.
func IsDropped(ev evdev.InputEvent) bool {
	return ev.Type == evdev.EV_SYN && ev.Code == synDropped
}
