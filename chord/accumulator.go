// Package chord turns a stream of key transitions into braille dot patterns.
//
// An Accumulator tracks two masks while a chord is being typed. The
// accumulated mask only grows: it is the OR of every dot pressed since the
// chord began. The live mask follows the keys that are still physically down.
// When the live mask drops back to zero the chord resolves, the accumulated
// mask is handed to the Sink exactly once, and both masks start over. Keys can
// therefore be pressed and released in any order without losing dots.
package chord

import (
	"io"
	"log/slog"

	"github.com/goBrailleChord/braille"
	"github.com/goBrailleChord/keymaps"
)

// Sink receives resolved dot patterns.
type Sink interface {
	Commit(p braille.Pattern)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(p braille.Pattern)

func (f SinkFunc) Commit(p braille.Pattern) { f(p) }

// State is the accumulator's position in the chord lifecycle.
type State int

const (
	Idle State = iota
	Accumulating
)

func (s State) String() string {
	if s == Accumulating {
		return "accumulating"
	}
	return "idle"
}

// Accumulator is the chord state machine for one input stream. It is not
// safe for concurrent use; feed it from a single goroutine.
type Accumulator struct {
	mode     Mode
	bindings *keymaps.Table
	sink     Sink
	logger   *slog.Logger

	accumulated braille.Pattern
	live        braille.Pattern
}

// Option configures an Accumulator.
type Option func(*Accumulator)

// WithLogger sets the logger used for chord tracing.
func WithLogger(l *slog.Logger) Option {
	return func(a *Accumulator) {
		if l != nil {
			a.logger = l
		}
	}
}

// New returns an idle accumulator.
func New(mode Mode, bindings *keymaps.Table, sink Sink, opts ...Option) *Accumulator {
	a := &Accumulator{
		mode:     mode,
		bindings: bindings,
		sink:     sink,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Mode returns the configured mode.
func (a *Accumulator) Mode() Mode { return a.mode }

// State reports whether a chord is in progress.
func (a *Accumulator) State() State {
	if a.live != 0 {
		return Accumulating
	}
	return Idle
}

// Accumulated returns every dot touched in the current chord.
func (a *Accumulator) Accumulated() braille.Pattern { return a.accumulated }

// Live returns the dots whose keys are still held.
func (a *Accumulator) Live() braille.Pattern { return a.live }

// Handle routes ev to KeyDown or KeyUp.
func (a *Accumulator) Handle(ev KeyEvent) Result {
	switch ev.Type {
	case KeyPress:
		return a.KeyDown(ev)
	case KeyRelease:
		return a.KeyUp(ev)
	default:
		return PassThru
	}
}

// KeyDown adds the key's dot to the chord. Events that are not chord input
// are left for the host to forward.
func (a *Accumulator) KeyDown(ev KeyEvent) Result {
	dot, ok := a.chordDot(ev)
	if !ok {
		return PassThru
	}
	a.accumulated |= dot
	a.live |= dot
	return Mute
}

// KeyUp removes the key's dot from the live mask and resolves the chord once
// no chord key is held.
func (a *Accumulator) KeyUp(ev KeyEvent) Result {
	dot, ok := a.chordDot(ev)
	if !ok {
		return PassThru
	}
	a.live &^= dot
	if a.live == 0 {
		a.resolve()
	}
	return Mute
}

// Reset abandons any chord in progress without committing it. Hosts call this
// when key releases can no longer be trusted to arrive, such as on focus loss
// or dropped input events.
func (a *Accumulator) Reset() {
	if a.accumulated != 0 || a.live != 0 {
		a.logger.Debug("chord abandoned", "accumulated", a.accumulated, "live", a.live)
	}
	a.accumulated = 0
	a.live = 0
}

func (a *Accumulator) chordDot(ev KeyEvent) (braille.Pattern, bool) {
	if ev.Synthetic || !eligible(ev, a.mode.ExcludeSpace) {
		return 0, false
	}
	dot, ok := a.bindings.Lookup(ev.Code)
	if !ok || dot&a.mode.Mask == 0 {
		return 0, false
	}
	return dot, true
}

func (a *Accumulator) resolve() {
	if a.accumulated == 0 {
		return
	}
	p := a.accumulated & a.mode.Mask
	a.accumulated = 0
	a.logger.Debug("chord resolved", "mode", a.mode.Name, "dots", p)
	if a.sink != nil {
		a.sink.Commit(p)
	}
}
