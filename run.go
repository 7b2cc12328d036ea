package main

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/goBrailleChord/chord"
	"github.com/goBrailleChord/device"
	"github.com/goBrailleChord/internal/log"
	"github.com/goBrailleChord/keymaps"
)

// forwarder replays raw key transitions the chord machinery passed on.
type forwarder interface {
	Forward(code uint16, value int32) error
}

// host feeds device events through one accumulator per device. All chord
// state is touched from the single goroutine running loop.
type host struct {
	logger   *slog.Logger
	mode     chord.Mode
	bindings *keymaps.Table
	sink     chord.Sink
	out      forwarder
	// virtual is the name of the uinput keyboard out writes to.
	virtual string
}

// stream is the per-device chord state. held records keys whose press was
// forwarded; their repeats and release go straight out so the virtual
// keyboard never keeps a key down.
type stream struct {
	name       string
	translator *device.Translator
	acc        *chord.Accumulator
	held       map[uint16]bool
}

func (h *host) newStream(name string) *stream {
	return &stream{
		name:       name,
		translator: device.NewTranslator(),
		acc:        chord.New(h.mode, h.bindings, h.sink, chord.WithLogger(h.logger.With("device", name))),
		held:       make(map[uint16]bool),
	}
}

// runDevices grabs the wanted keyboards and processes their events until ctx
// is cancelled or a device fails.
func (h *host) runDevices(ctx context.Context, wanted []string) error {
	devices, err := device.Find(h.virtual, wanted...)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	streams := make(map[*device.InputDevice]*stream, len(devices))
	for _, d := range devices {
		if err := d.Grab(); err != nil {
			h.logger.Warn("Skipping device", "device", d.Name(), "error", err)
			_ = d.Close()
			continue
		}
		h.logger.Info("Monitoring device", "device", d.Name(), "path", d.Path())
		streams[d] = h.newStream(d.Name())
	}
	if len(streams) == 0 {
		return errors.New("could not grab any input device")
	}

	events := make(chan device.Event, 64)
	errs := make(chan error, len(streams))
	var wg sync.WaitGroup
	for d := range streams {
		wg.Add(1)
		go func(d *device.InputDevice) {
			defer wg.Done()
			if err := d.Read(ctx, events); err != nil {
				errs <- err
			}
		}(d)
	}
	defer func() {
		cancel()
		// Closing the nodes unblocks the readers and releases the grab.
		for d, s := range streams {
			_ = d.Close()
			s.acc.Reset()
		}
		wg.Wait()
	}()

	return h.loop(ctx, events, errs, func(ev device.Event) *stream { return streams[ev.Device] })
}

func (h *host) loop(ctx context.Context, events <-chan device.Event, errs <-chan error, lookup func(device.Event) *stream) error {
	for {
		select {
		case <-ctx.Done():
			h.logger.Info("Shutting down")
			return nil
		case err := <-errs:
			return err
		case ev := <-events:
			if s := lookup(ev); s != nil {
				h.handle(ctx, s, ev)
			}
		}
	}
}

// handle runs one raw event through the stream's translator and accumulator
// and forwards whatever the accumulator did not consume.
func (h *host) handle(ctx context.Context, s *stream, ev device.Event) {
	if device.IsDropped(ev.InputEvent) {
		h.logger.Warn("Input events dropped, abandoning chord", "device", s.name)
		s.acc.Reset()
		s.translator.Reset()
		return
	}
	kev, ok := s.translator.Translate(ev.InputEvent)
	if !ok {
		return
	}
	if s.held[kev.Code] {
		if kev.Type == chord.KeyRelease {
			delete(s.held, kev.Code)
		}
		h.forward(ev)
		return
	}
	if kev.Type == chord.KeyPress && s.acc.State() == chord.Accumulating && interrupts(kev.Code) {
		h.logger.Debug("Shortcut modifier pressed, abandoning chord", "device", s.name, "key", keymaps.KeyName(kev.Code))
		s.acc.Reset()
	}
	res := s.acc.Handle(kev)
	h.logger.Log(ctx, log.LevelTrace, "key",
		"device", s.name,
		"type", kev.Type,
		"key", keymaps.KeyName(kev.Code),
		"mods", kev.Modifiers,
		"result", res,
		"state", s.acc.State())
	if res != chord.PassThru {
		return
	}
	if kev.Type == chord.KeyPress {
		s.held[kev.Code] = true
	}
	h.forward(ev)
}

// interrupts reports whether pressing code turns the keys still down into a
// shortcut. Shift only changes the text, so a chord survives it.
func interrupts(code uint16) bool {
	mod, ok := keymaps.ModifierFor(code)
	return ok && mod != keymaps.ModShift
}

func (h *host) forward(ev device.Event) {
	if err := h.out.Forward(ev.Code, ev.Value); err != nil {
		h.logger.Warn("Failed to forward key", "key", keymaps.KeyName(ev.Code), "error", err)
	}
}
