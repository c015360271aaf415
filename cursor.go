// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package jval

import (
	"go4.org/mem"
)

// A Cursor is a read-once view over a fully-materialized input buffer.
// Consumers advance the cursor irreversibly as they recognize input, peeking
// before each consume; there is no backtracking and no pushback.
//
// A Cursor is not safe for concurrent use.
type Cursor struct {
	in   mem.RO
	pos  int // offset of the next unconsumed byte, 0-based
	line int // current line, 1-based
	col  int // byte offset of the column in the current line, 0-based
}

// NewCursor constructs a cursor that consumes data. The cursor does not
// copy data, and the caller must not modify it while the cursor is in use.
func NewCursor(data []byte) *Cursor { return &Cursor{in: mem.B(data), line: 1} }

// NewCursorString constructs a cursor that consumes s.
func NewCursorString(s string) *Cursor { return &Cursor{in: mem.S(s), line: 1} }

// More reports whether any unconsumed input remains.
func (c *Cursor) More() bool { return c.pos < c.in.Len() }

// Pos returns the offset of the next unconsumed byte, 0-based.
func (c *Cursor) Pos() int { return c.pos }

// Location returns the line and column of the cursor position.
func (c *Cursor) Location() LineCol { return LineCol{Line: c.line, Column: c.col} }

// Peek returns the byte at the cursor position without consuming it.
// At end of input Peek reports ok == false.
func (c *Cursor) Peek() (_ byte, ok bool) {
	if !c.More() {
		return 0, false
	}
	return c.in.At(c.pos), true
}

// Next consumes and returns the byte at the cursor position.
// At end of input Next reports ok == false.
func (c *Cursor) Next() (_ byte, ok bool) {
	ch, ok := c.Peek()
	if ok {
		c.advance(1)
	}
	return ch, ok
}

// Skip consumes n bytes, or all remaining input if fewer than n remain.
func (c *Cursor) Skip(n int) { c.advance(min(n, c.in.Len()-c.pos)) }

// HasPrefix reports whether the unconsumed input begins with prefix.
// Input shorter than prefix does not match.
func (c *Cursor) HasPrefix(prefix mem.RO) bool { return mem.HasPrefix(c.rest(), prefix) }

// SkipSpace consumes the run of whitespace at the cursor position, if any.
func (c *Cursor) SkipSpace() {
	for c.More() && isSpace(c.in.At(c.pos)) {
		c.advance(1)
	}
}

// TakeUntil consumes input through the first occurrence of delim and
// returns a view of the bytes before it, reporting ok == true. If delim
// does not occur, TakeUntil consumes all remaining input, returns a view of
// it, and reports ok == false.
func (c *Cursor) TakeUntil(delim byte) (_ mem.RO, ok bool) {
	rest := c.rest()
	i := mem.IndexByte(rest, delim)
	if i < 0 {
		c.advance(rest.Len())
		return rest, false
	}
	c.advance(i + 1)
	return rest.SliceTo(i), true
}

// rest returns a view of the unconsumed input.
func (c *Cursor) rest() mem.RO { return c.in.SliceFrom(c.pos) }

// advance consumes n bytes, updating the line and column. The caller must
// ensure n does not exceed the remaining input.
func (c *Cursor) advance(n int) {
	for i := range n {
		if c.in.At(c.pos+i) == '\n' {
			c.line++
			c.col = 0
		} else {
			c.col++
		}
	}
	c.pos += n
}

// isSpace reports whether b is a whitespace byte, using the C locale
// definition rather than the narrower JSON set.
func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	default:
		return false
	}
}
