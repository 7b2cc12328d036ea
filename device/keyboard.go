package device

import (
	"fmt"
	"sync"

	"github.com/bendahl/uinput"
	evdev "github.com/gvalkov/golang-evdev"
	"golang.org/x/sys/unix"

	"github.com/goBrailleChord/chord"
	"github.com/goBrailleChord/keymaps"
)

// keyWriter is the part of uinput.Keyboard we drive.
type keyWriter interface {
	KeyDown(key int) error
	KeyUp(key int) error
	Close() error
}

// modifierCodes are pressed around a synthetic key, outermost first.
var modifierCodes = []struct {
	mod  keymaps.Modifier
	code uint16
}{
	{keymaps.ModCtrl, evdev.KEY_LEFTCTRL},
	{keymaps.ModAlt, evdev.KEY_LEFTALT},
	{keymaps.ModMeta, evdev.KEY_LEFTMETA},
	{keymaps.ModShift, evdev.KEY_LEFTSHIFT},
}

// VirtualKeyboard is a uinput keyboard that both replays passed-through
// events and types synthetic keystrokes. Writes are serialized so a press
// and its modifiers never interleave with another device's events.
type VirtualKeyboard struct {
	mu sync.Mutex
	kb keyWriter
}

// NewVirtualKeyboard creates a uinput keyboard named name.
func NewVirtualKeyboard(path, name string) (*VirtualKeyboard, error) {
	if err := unix.Access(path, unix.W_OK); err != nil {
		return nil, fmt.Errorf("%s is not writable (load the uinput module or check permissions): %w", path, err)
	}
	kb, err := uinput.CreateKeyboard(path, []byte(name))
	if err != nil {
		return nil, fmt.Errorf("failed to create virtual keyboard: %w", err)
	}
	return &VirtualKeyboard{kb: kb}, nil
}

// Forward replays a raw key transition. Repeats are sent as presses.
func (v *VirtualKeyboard) Forward(code uint16, value int32) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	switch value {
	case keyPressed, keyRepeated:
		return v.kb.KeyDown(int(code))
	case keyReleased:
		return v.kb.KeyUp(int(code))
	}
	return nil
}

// Dispatch types a synthetic key event, holding its modifiers around the
// key on press and letting go of them after the key on release.
func (v *VirtualKeyboard) Dispatch(ev chord.KeyEvent) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	switch ev.Type {
	case chord.KeyPress:
		for _, m := range modifierCodes {
			if ev.Modifiers&m.mod != 0 {
				if err := v.kb.KeyDown(int(m.code)); err != nil {
					return err
				}
			}
		}
		return v.kb.KeyDown(int(ev.Code))
	case chord.KeyRelease:
		err := v.kb.KeyUp(int(ev.Code))
		for i := len(modifierCodes) - 1; i >= 0; i-- {
			m := modifierCodes[i]
			if ev.Modifiers&m.mod != 0 {
				if uerr := v.kb.KeyUp(int(m.code)); uerr != nil && err == nil {
					err = uerr
				}
			}
		}
		return err
	}
	return fmt.Errorf("unknown event type %v", ev.Type)
}

// Close destroys the virtual keyboard.
func (v *VirtualKeyboard) Close() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.kb.Close()
}
