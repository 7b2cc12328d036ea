package textbuf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInsertAndDelete(t *testing.T) {
	b := New()
	b.InsertChar('⠁')
	b.InsertChar('⠃')
	assert.Equal(t, "⠁⠃", b.String())
	assert.Equal(t, 2, b.Caret())

	b.DeletePrevious()
	assert.Equal(t, "⠁", b.String())
	assert.Equal(t, 1, b.Caret())

	b.DeletePrevious()
	b.DeletePrevious()
	assert.Equal(t, "", b.String())
	assert.Equal(t, 0, b.Caret())
}

func TestInsertAtCaret(t *testing.T) {
	b := New()
	b.InsertChar('a')
	b.InsertChar('c')
	b.MoveLeft()
	b.InsertChar('b')
	assert.Equal(t, "abc", b.String())
	assert.Equal(t, 2, b.Caret())

	b.MoveLeft()
	b.DeletePrevious()
	assert.Equal(t, "bc", b.String())
	assert.Equal(t, 0, b.Caret())

	b.MoveLeft()
	assert.Equal(t, 0, b.Caret())
	b.MoveRight()
	b.MoveRight()
	b.MoveRight()
	assert.Equal(t, 2, b.Caret())
}

func TestLines(t *testing.T) {
	b := New()
	for _, r := range "ab" {
		b.InsertChar(r)
	}
	b.InsertNewline()
	b.InsertChar('c')
	assert.Equal(t, "ab\nc", b.String())
	assert.Equal(t, "c", b.Line())
	assert.Equal(t, 2, b.Lines())
	assert.Equal(t, 4, b.Len())

	b.MoveLeft()
	b.MoveLeft()
	assert.Equal(t, "ab", b.Line())

	// Deleting the newline joins the lines.
	b.MoveRight()
	b.DeletePrevious()
	assert.Equal(t, "abc", b.String())
	assert.Equal(t, "abc", b.Line())
}
