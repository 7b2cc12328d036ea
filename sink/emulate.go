package sink

import (
	"io"
	"log/slog"

	"github.com/goBrailleChord/braille"
	"github.com/goBrailleChord/chord"
	"github.com/goBrailleChord/keymaps"
)

// Dispatcher delivers synthetic key events to whatever currently receives
// input.
type Dispatcher interface {
	Dispatch(ev chord.KeyEvent) error
}

// DispatcherFunc adapts a function to Dispatcher.
type DispatcherFunc func(ev chord.KeyEvent) error

func (f DispatcherFunc) Dispatch(ev chord.KeyEvent) error { return f(ev) }

// Emulator replays each recognised chord as a press and release of the
// standard key the table assigns to it. Unrecognised chords are dropped.
type Emulator struct {
	keys   keymaps.KeyTable
	target Dispatcher
	logger *slog.Logger
}

var _ chord.Sink = (*Emulator)(nil)

// NewEmulator returns a sink dispatching to target. A nil logger discards.
func NewEmulator(keys keymaps.KeyTable, target Dispatcher, logger *slog.Logger) *Emulator {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Emulator{keys: keys, target: target, logger: logger}
}

func (e *Emulator) Commit(p braille.Pattern) {
	key, ok := e.keys.Lookup(p)
	if !ok {
		e.logger.Debug("no key for chord", "dots", p)
		return
	}
	ev := chord.KeyEvent{
		Type:      chord.KeyPress,
		Code:      key.Code,
		Modifiers: key.Modifiers,
		Text:      key.Text,
		Dots:      p,
		Synthetic: true,
	}
	if err := e.target.Dispatch(ev); err != nil {
		e.logger.Warn("dispatch key press failed", "key", key, "dots", p, "error", err)
	}
	// The release goes out even after a failed press so nothing stays held.
	ev.Type = chord.KeyRelease
	if err := e.target.Dispatch(ev); err != nil {
		e.logger.Warn("dispatch key release failed", "key", key, "dots", p, "error", err)
	}
}
