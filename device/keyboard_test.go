package device

import (
	"errors"
	"fmt"
	"testing"

	evdev "github.com/gvalkov/golang-evdev"
	"github.com/stretchr/testify/assert"

	"github.com/goBrailleChord/chord"
	"github.com/goBrailleChord/keymaps"
)

type fakeWriter struct {
	log    []string
	failOn int
	closed bool
}

func (f *fakeWriter) KeyDown(key int) error {
	f.log = append(f.log, fmt.Sprintf("down %s", keymaps.KeyName(uint16(key))))
	if key == f.failOn {
		return errors.New("write failed")
	}
	return nil
}

func (f *fakeWriter) KeyUp(key int) error {
	f.log = append(f.log, fmt.Sprintf("up %s", keymaps.KeyName(uint16(key))))
	if key == f.failOn {
		return errors.New("write failed")
	}
	return nil
}

func (f *fakeWriter) Close() error {
	f.closed = true
	return nil
}

func TestForward(t *testing.T) {
	w := &fakeWriter{}
	kb := &VirtualKeyboard{kb: w}

	assert.NoError(t, kb.Forward(evdev.KEY_G, keyPressed))
	assert.NoError(t, kb.Forward(evdev.KEY_G, keyRepeated))
	assert.NoError(t, kb.Forward(evdev.KEY_G, keyReleased))
	assert.NoError(t, kb.Forward(evdev.KEY_G, 9))

	assert.Equal(t, []string{"down KEY_G", "down KEY_G", "up KEY_G"}, w.log)
}

func TestDispatchWrapsShift(t *testing.T) {
	w := &fakeWriter{}
	kb := &VirtualKeyboard{kb: w}
	ev := chord.KeyEvent{Type: chord.KeyPress, Code: evdev.KEY_APOSTROPHE, Modifiers: keymaps.ModShift, Text: "\"", Synthetic: true}

	assert.NoError(t, kb.Dispatch(ev))
	ev.Type = chord.KeyRelease
	assert.NoError(t, kb.Dispatch(ev))

	assert.Equal(t, []string{
		"down KEY_LEFTSHIFT",
		"down KEY_APOSTROPHE",
		"up KEY_APOSTROPHE",
		"up KEY_LEFTSHIFT",
	}, w.log)
}

func TestDispatchPlainKey(t *testing.T) {
	w := &fakeWriter{}
	kb := &VirtualKeyboard{kb: w}

	assert.NoError(t, kb.Dispatch(chord.KeyEvent{Type: chord.KeyPress, Code: evdev.KEY_UP}))
	assert.NoError(t, kb.Dispatch(chord.KeyEvent{Type: chord.KeyRelease, Code: evdev.KEY_UP}))
	assert.Error(t, kb.Dispatch(chord.KeyEvent{Code: evdev.KEY_UP}))

	assert.Equal(t, []string{"down KEY_UP", "up KEY_UP"}, w.log)
}

func TestDispatchReleasesModifiersOnError(t *testing.T) {
	w := &fakeWriter{failOn: evdev.KEY_A}
	kb := &VirtualKeyboard{kb: w}

	err := kb.Dispatch(chord.KeyEvent{Type: chord.KeyRelease, Code: evdev.KEY_A, Modifiers: keymaps.ModShift | keymaps.ModCtrl})
	assert.Error(t, err)
	assert.Equal(t, []string{"up KEY_A", "up KEY_LEFTSHIFT", "up KEY_LEFTCTRL"}, w.log)
}

func TestClose(t *testing.T) {
	w := &fakeWriter{}
	kb := &VirtualKeyboard{kb: w}
	assert.NoError(t, kb.Close())
	assert.True(t, w.closed)
}
