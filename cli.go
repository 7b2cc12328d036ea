package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/goBrailleChord/braille"
	"github.com/goBrailleChord/chord"
	"github.com/goBrailleChord/device"
	"github.com/goBrailleChord/keymaps"
	"github.com/goBrailleChord/sink"
	"github.com/goBrailleChord/textbuf"
)

// virtualKeyboardName names the uinput device keystrokes are written to.
const virtualKeyboardName = "braillekeys"

// CLI is the root command line.
type CLI struct {
	ConfigFile string    `name:"config" help:"Config file (json, yaml or toml)" type:"path" env:"BRAILLEKEYS_CONFIG"`
	Log        LogConfig `embed:"" prefix:"log."`

	Type    TypeCommand    `cmd:"" help:"Turn chords into ordinary keystrokes on a virtual keyboard"`
	Edit    EditCommand    `cmd:"" help:"Write braille cells into a buffer echoed to the terminal"`
	Layouts LayoutsCommand `cmd:"" help:"List the built-in key layouts"`
	Cfg     ConfigCommand  `cmd:"" name:"config" help:"Configuration helpers"`
}

// LogConfig controls logging.
type LogConfig struct {
	Level string `help:"Log level" enum:"trace,debug,info,warn,error" default:"info" env:"BRAILLEKEYS_LOG_LEVEL"`
	File  string `help:"Also log to this file" env:"BRAILLEKEYS_LOG_FILE"`
}

// InputOptions selects the keyboards and the chord keys.
type InputOptions struct {
	Layout string   `help:"Key layout (see 'layouts')" default:"qwerty" env:"BRAILLEKEYS_LAYOUT"`
	Bind   []string `help:"Override one binding as KEY=DOT, dot 1-8 or space" placeholder:"KEY=DOT"`
	Device []string `help:"Input device name or path to grab; default is every keyboard"`
	Uinput string   `help:"uinput device node" default:"/dev/uinput" env:"BRAILLEKEYS_UINPUT"`
}

// bindings resolves the layout and applies overrides.
func (o InputOptions) bindings(p *keymaps.Provider) (*keymaps.Table, error) {
	table, ok := p.Get(o.Layout)
	if !ok {
		return nil, fmt.Errorf("unknown layout %q", o.Layout)
	}
	overrides, err := keymaps.ParseBindings(o.Bind)
	if err != nil {
		return nil, err
	}
	if len(overrides) == 0 {
		return table, nil
	}
	return table.With(overrides...)
}

// TypeCommand emulates keystrokes from chords.
type TypeCommand struct {
	InputOptions `embed:""`
}

func (c *TypeCommand) Run(logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	table, err := c.bindings(keymaps.DefaultProvider())
	if err != nil {
		return err
	}
	kb, err := device.NewVirtualKeyboard(c.Uinput, virtualKeyboardName)
	if err != nil {
		return err
	}
	defer kb.Close()

	h := &host{
		logger:   logger,
		mode:     chord.Emulation,
		bindings: table,
		sink:     sink.NewEmulator(keymaps.DefaultKeyTable(), kb, logger),
		out:      kb,
		virtual:  virtualKeyboardName,
	}
	logger.Info("Chord typing active, press Ctrl+C to exit", "layout", c.Layout)
	return h.runDevices(ctx, c.Device)
}

// EditCommand types braille cells into a local buffer.
type EditCommand struct {
	InputOptions `embed:""`
	SixKey       bool `help:"Use six-key input (dots 1-6, space bar left alone)" env:"BRAILLEKEYS_SIX_KEY"`
}

func (c *EditCommand) Run(logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	table, err := c.bindings(keymaps.DefaultProvider())
	if err != nil {
		return err
	}
	mode := chord.EightKey
	if c.SixKey {
		mode = chord.SixKey
		table = table.SixKey()
	}
	kb, err := device.NewVirtualKeyboard(c.Uinput, virtualKeyboardName)
	if err != nil {
		return err
	}
	defer kb.Close()

	buf := newEchoBuffer(textbuf.New(), os.Stdout)
	h := &host{
		logger:   logger,
		mode:     mode,
		bindings: table,
		sink:     sink.NewDirect(buf, braille.NewCharTable()),
		out:      kb,
		virtual:  virtualKeyboardName,
	}
	logger.Info("Braille editing active, press Ctrl+C to exit", "mode", mode, "layout", c.Layout)
	err = h.runDevices(ctx, c.Device)
	buf.Finish()
	return err
}

// LayoutsCommand prints the layouts.
type LayoutsCommand struct{}

func (c *LayoutsCommand) Run() error {
	return printLayouts(os.Stdout, keymaps.DefaultProvider())
}

func printLayouts(w io.Writer, p *keymaps.Provider) error {
	for _, name := range p.Names() {
		table, _ := p.Get(name)
		if _, err := fmt.Fprintf(w, "%s\n", name); err != nil {
			return err
		}
		for _, code := range table.Codes() {
			dot, _ := table.Lookup(code)
			if _, err := fmt.Fprintf(w, "  %-16s %s\n", keymaps.KeyName(code), dot); err != nil {
				return err
			}
		}
	}
	return nil
}
