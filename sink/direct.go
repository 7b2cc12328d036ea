// Package sink turns resolved dot patterns into observable output, either by
// editing a text buffer directly or by replaying ordinary keystrokes.
package sink

import (
	"github.com/goBrailleChord/braille"
	"github.com/goBrailleChord/chord"
)

// Buffer is a caret-addressed text target.
type Buffer interface {
	InsertChar(r rune)
	DeletePrevious()
	InsertNewline()
}

// Direct writes braille cells into a Buffer. Dot 7 alone deletes the previous
// character and dot 8 alone inserts a newline; every other pattern inserts
// its Unicode braille cell.
type Direct struct {
	buf   Buffer
	chars braille.CharTable
}

var _ chord.Sink = (*Direct)(nil)

// NewDirect returns a sink writing into buf.
func NewDirect(buf Buffer, chars braille.CharTable) *Direct {
	return &Direct{buf: buf, chars: chars}
}

func (d *Direct) Commit(p braille.Pattern) {
	switch p & braille.EightDotMask {
	case braille.Dot7:
		d.buf.DeletePrevious()
	case braille.Dot8:
		d.buf.InsertNewline()
	default:
		d.buf.InsertChar(d.chars.Lookup(p))
	}
}
