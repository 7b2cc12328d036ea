package chord

import (
	"fmt"
	"strings"

	"github.com/goBrailleChord/braille"
)

// Mode configures the accumulator for one input width.
type Mode struct {
	Name string
	// Mask is applied to the accumulated dots before they reach the sink.
	Mask braille.Pattern
	// ExcludeSpace keeps the space bar out of chords entirely.
	ExcludeSpace bool
}

var (
	SixKey    = Mode{Name: "six-key", Mask: braille.SixDotMask, ExcludeSpace: true}
	EightKey  = Mode{Name: "eight-key", Mask: braille.EightDotMask}
	Emulation = Mode{Name: "emulation", Mask: braille.FullMask}
)

// Modes lists the built-in modes.
func Modes() []Mode {
	return []Mode{SixKey, EightKey, Emulation}
}

// ModeByName resolves a built-in mode.
func ModeByName(name string) (Mode, error) {
	for _, m := range Modes() {
		if strings.EqualFold(m.Name, strings.TrimSpace(name)) {
			return m, nil
		}
	}
	return Mode{}, fmt.Errorf("unknown mode %q", name)
}

func (m Mode) String() string {
	return m.Name
}
