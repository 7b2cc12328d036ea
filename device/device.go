// Package device connects the chord machinery to Linux input: evdev devices
// supply raw key events and a uinput virtual keyboard replays keystrokes.
package device

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	evdev "github.com/gvalkov/golang-evdev"
)

// ErrNoDevices is returned by Find when nothing usable was found.
var ErrNoDevices = errors.New("no suitable input devices found")

// InputDevice is an opened evdev keyboard.
type InputDevice struct {
	device *evdev.InputDevice
	name   string
	path   string
}

// Name returns the kernel device name.
func (d *InputDevice) Name() string { return d.name }

// Path returns the device node.
func (d *InputDevice) Path() string { return d.path }

// Find opens the keyboards under /dev/input. When wanted is non-empty only
// devices whose name or path appears in it are kept; otherwise every device
// that can type letters and space is. Devices named skip are never kept, so
// our own virtual keyboard is not read back.
func Find(skip string, wanted ...string) ([]*InputDevice, error) {
	devFiles, err := filepath.Glob("/dev/input/event*")
	if err != nil {
		return nil, fmt.Errorf("failed to list input devices: %w", err)
	}

	var devices []*InputDevice
	for _, path := range devFiles {
		dev, err := evdev.Open(path)
		if err != nil {
			continue
		}
		if !matches(dev, path, skip, wanted) {
			dev.File.Close()
			continue
		}
		devices = append(devices, &InputDevice{device: dev, name: dev.Name, path: path})
	}

	if len(devices) == 0 {
		return nil, ErrNoDevices
	}
	return devices, nil
}

func matches(dev *evdev.InputDevice, path, skip string, wanted []string) bool {
	if skip != "" && dev.Name == skip {
		return false
	}
	if len(wanted) == 0 {
		return isKeyboard(dev.CapabilitiesFlat[evdev.EV_KEY])
	}
	for _, w := range wanted {
		if dev.Name == w || path == w {
			return true
		}
	}
	return false
}

// isKeyboard reports whether the advertised key codes cover letters and the
// space bar. Power buttons and mice advertise EV_KEY too.
func isKeyboard(codes []int) bool {
	required := map[int]bool{evdev.KEY_A: false, evdev.KEY_Z: false, evdev.KEY_SPACE: false}
	for _, c := range codes {
		if _, ok := required[c]; ok {
			required[c] = true
		}
	}
	for _, seen := range required {
		if !seen {
			return false
		}
	}
	return true
}

// Grab takes exclusive access so the desktop only sees what we forward.
func (d *InputDevice) Grab() error {
	if err := d.device.Grab(); err != nil {
		return fmt.Errorf("grab %s: %w", d.path, err)
	}
	return nil
}

// Close releases the grab and closes the device node. Closing unblocks a
// pending Read.
func (d *InputDevice) Close() error {
	_ = d.device.Release()
	return d.device.File.Close()
}

// Event is a raw event tagged with the device it came from.
type Event struct {
	Device *InputDevice
	evdev.InputEvent
}

// Read streams events into out until ctx ends or the device fails. The
// returned error is nil when the stop was caused by ctx.
func (d *InputDevice) Read(ctx context.Context, out chan<- Event) error {
	for {
		ev, err := d.device.ReadOne()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("read %s: %w", d.name, err)
		}
		select {
		case out <- Event{Device: d, InputEvent: *ev}:
		case <-ctx.Done():
			return nil
		}
	}
}
