package sink

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/goBrailleChord/braille"
)

type fakeBuffer struct {
	ops []string
}

func (f *fakeBuffer) InsertChar(r rune) { f.ops = append(f.ops, "insert "+string(r)) }
func (f *fakeBuffer) DeletePrevious()   { f.ops = append(f.ops, "delete") }
func (f *fakeBuffer) InsertNewline()    { f.ops = append(f.ops, "newline") }

func TestDirectInsertsCells(t *testing.T) {
	buf := &fakeBuffer{}
	d := NewDirect(buf, braille.NewCharTable())

	d.Commit(braille.Dot1)
	d.Commit(braille.Dot1 | braille.Dot4)
	d.Commit(0)
	d.Commit(braille.Dot7 | braille.Dot8)

	assert.Equal(t, []string{"insert ⠁", "insert ⠉", "insert ⠀", "insert ⣀"}, buf.ops)
}

func TestDirectControlDots(t *testing.T) {
	buf := &fakeBuffer{}
	d := NewDirect(buf, braille.NewCharTable())

	d.Commit(braille.Dot7)
	d.Commit(braille.Dot8)
	// Dot 7 with any other dot is an ordinary cell.
	d.Commit(braille.Dot7 | braille.Dot1)

	assert.Equal(t, []string{"delete", "newline", "insert ⡁"}, buf.ops)
}
