package main

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/goBrailleChord/textbuf"
)

// echoBuffer edits a textbuf.Buffer and mirrors the caret line to w. On a
// terminal the line is redrawn in place; otherwise each finished line is
// written once.
type echoBuffer struct {
	buf *textbuf.Buffer
	w   io.Writer
	tty bool
}

func newEchoBuffer(buf *textbuf.Buffer, w io.Writer) *echoBuffer {
	tty := false
	if f, ok := w.(*os.File); ok {
		tty = term.IsTerminal(int(f.Fd()))
	}
	return &echoBuffer{buf: buf, w: w, tty: tty}
}

func (e *echoBuffer) InsertChar(r rune) {
	e.buf.InsertChar(r)
	e.redraw()
}

func (e *echoBuffer) DeletePrevious() {
	e.buf.DeletePrevious()
	e.redraw()
}

func (e *echoBuffer) InsertNewline() {
	finished := e.buf.Line()
	e.buf.InsertNewline()
	if e.tty {
		fmt.Fprint(e.w, "\r\n")
		e.redraw()
		return
	}
	fmt.Fprintln(e.w, finished)
}

func (e *echoBuffer) redraw() {
	if e.tty {
		fmt.Fprintf(e.w, "\r\x1b[K%s", e.buf.Line())
	}
}

// Finish flushes the unfinished last line.
func (e *echoBuffer) Finish() {
	if e.tty {
		fmt.Fprint(e.w, "\r\n")
		return
	}
	if line := e.buf.Line(); line != "" {
		fmt.Fprintln(e.w, line)
	}
}
