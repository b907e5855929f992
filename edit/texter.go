// Package edit provides the mutable rune buffer and the batched edit
// log that the box transforms operate on. Offsets are rune counts and
// ranges are half-open [q0, q1).
package edit

import (
	"io"
	"strings"
)

// Texter abstracts the buffering side of a document, allowing the box
// operations to run against an in-memory buffer in tests and against a
// host editor's buffer in commands.
type Texter interface {
	Constrain(q0, q1 int) (p0, p1 int)
	Delete(q0, q1 int)
	Insert(q0 int, r []rune)
	Nc() int
	ReadB(q int, r []rune) (n int, err error)
	ReadC(q int) rune
	View(q0, q1 int) []rune // a "read only" slice; valid until the next edit
}

// TextBuffer implements Texter around a rune slice.
type TextBuffer struct {
	buf []rune
}

// NewTextBuffer is a constructor for edit.TextBuffer.
func NewTextBuffer(s string) *TextBuffer {
	return &TextBuffer{buf: []rune(s)}
}

func (t *TextBuffer) Constrain(q0, q1 int) (p0, p1 int) {
	p0 = min(q0, len(t.buf))
	p1 = min(q1, len(t.buf))
	return p0, p1
}

func (t *TextBuffer) View(q0, q1 int) []rune {
	if q1 > len(t.buf) {
		q1 = len(t.buf)
	}
	return t.buf[q0:q1]
}

func (t *TextBuffer) Delete(q0, q1 int) {
	if q0 > len(t.buf) || q1 > len(t.buf) {
		panic("internal error: TextBuffer.Delete: out-of-range delete")
	}
	copy(t.buf[q0:], t.buf[q1:])
	t.buf = t.buf[:len(t.buf)-(q1-q0)] // Reslice to length
}

func (t *TextBuffer) Insert(q0 int, r []rune) {
	if q0 > len(t.buf) {
		panic("internal error: TextBuffer.Insert: out-of-range insertion")
	}
	t.buf = append(t.buf[:q0], append(append([]rune{}, r...), t.buf[q0:]...)...)
}

func (t *TextBuffer) ReadB(q int, r []rune) (n int, err error) {
	n = copy(r, t.buf[q:])
	if n < len(r) {
		err = io.EOF
	}
	return n, err
}

func (t *TextBuffer) ReadC(q int) rune { return t.buf[q] }

func (t *TextBuffer) Nc() int { return len(t.buf) }

// Reader returns a reader for the text at [q0, q1).
func (t *TextBuffer) Reader(q0, q1 int) io.Reader {
	return strings.NewReader(string(t.buf[q0:q1]))
}

// String returns the buffer contents. See fmt.Stringer interface.
func (t *TextBuffer) String() string { return string(t.buf) }
