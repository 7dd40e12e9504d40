package unistr

import (
	"fmt"
	"io"
)

// Cursor iterates over the code points of an encoded buffer in both
// directions. The zero value is not usable; create cursors with [NewCursor].
type Cursor[U CodeUnit] struct {
	codec Codec[U]
	buf   []U
	pos   int // Code unit offset of the next code point.
}

// NewCursor creates a cursor positioned at the start of s.
func NewCursor[U CodeUnit](c Codec[U], s []U) *Cursor[U] {
	return &Cursor[U]{codec: c, buf: s}
}

// Pos returns the current code unit offset.
func (cur *Cursor[U]) Pos() int {
	return cur.pos
}

// Seek moves the cursor to a code unit offset. Positions outside the buffer
// are an error; positions inside a multi-unit sequence are accepted and will
// decode as malformed units.
func (cur *Cursor[U]) Seek(pos int) error {
	if pos < 0 || pos > len(cur.buf) {
		return fmt.Errorf("unistr: cursor position %d outside [0,%d]", pos, len(cur.buf))
	}
	cur.pos = pos
	return nil
}

// Next decodes the code point at the cursor and advances past it. At the end
// of the buffer it returns io.EOF. For an ill-formed unit it advances by one
// unit and returns utf8.RuneError together with a *MalformedError.
func (cur *Cursor[U]) Next() (rune, error) {
	if cur.pos >= len(cur.buf) {
		return 0, io.EOF
	}
	r, n, ok := cur.codec.DecodeNext(cur.buf[cur.pos:])
	start := cur.pos
	cur.pos += n
	if !ok {
		return r, &MalformedError{Offset: start}
	}
	return r, nil
}

// Prev decodes the code point before the cursor and moves the cursor back to
// its first unit. At the start of the buffer it returns io.EOF.
func (cur *Cursor[U]) Prev() (rune, error) {
	if cur.pos <= 0 {
		return 0, io.EOF
	}
	r, n, ok := cur.codec.DecodePrev(cur.buf[:cur.pos])
	cur.pos -= n
	if !ok {
		return r, &MalformedError{Offset: cur.pos}
	}
	return r, nil
}

// Peek decodes the code point at the cursor without moving it.
func (cur *Cursor[U]) Peek() (rune, error) {
	if cur.pos >= len(cur.buf) {
		return 0, io.EOF
	}
	r, _, ok := cur.codec.DecodeNext(cur.buf[cur.pos:])
	if !ok {
		return r, &MalformedError{Offset: cur.pos}
	}
	return r, nil
}
