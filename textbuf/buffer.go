// Package textbuf is an in-memory text buffer with a single caret.
package textbuf

import "strings"

// Buffer holds runes and a caret position between them.
type Buffer struct {
	text  []rune
	caret int
}

// New returns an empty buffer.
func New() *Buffer {
	return &Buffer{}
}

// InsertChar inserts r at the caret and moves past it.
func (b *Buffer) InsertChar(r rune) {
	b.text = append(b.text, 0)
	copy(b.text[b.caret+1:], b.text[b.caret:])
	b.text[b.caret] = r
	b.caret++
}

// InsertNewline inserts a line break at the caret.
func (b *Buffer) InsertNewline() {
	b.InsertChar('\n')
}

// DeletePrevious removes the rune before the caret. At the start of the
// buffer it does nothing.
func (b *Buffer) DeletePrevious() {
	if b.caret == 0 {
		return
	}
	b.text = append(b.text[:b.caret-1], b.text[b.caret:]...)
	b.caret--
}

// MoveLeft moves the caret back one rune.
func (b *Buffer) MoveLeft() {
	if b.caret > 0 {
		b.caret--
	}
}

// MoveRight moves the caret forward one rune.
func (b *Buffer) MoveRight() {
	if b.caret < len(b.text) {
		b.caret++
	}
}

// Caret returns the caret offset in runes.
func (b *Buffer) Caret() int { return b.caret }

// Len returns the length in runes.
func (b *Buffer) Len() int { return len(b.text) }

func (b *Buffer) String() string { return string(b.text) }

// Line returns the text of the line holding the caret.
func (b *Buffer) Line() string {
	start := b.caret
	for start > 0 && b.text[start-1] != '\n' {
		start--
	}
	end := b.caret
	for end < len(b.text) && b.text[end] != '\n' {
		end++
	}
	return string(b.text[start:end])
}

// Lines returns the number of lines in the buffer.
func (b *Buffer) Lines() int {
	return strings.Count(string(b.text), "\n") + 1
}
