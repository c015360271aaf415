// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package walk implements read-only traversal over a tree of JSON values.
//
// A Cursor records a path from an origin value down into its structure.
// Traversal uses only the non-mutating lookups of the tree package, so
// walking never reshapes the tree, unlike indexing through tree.Value
// directly.
package walk

import (
	"fmt"

	"github.com/creachadair/jval/tree"
)

// Path traverses a sequential path into the structure of v, where path
// elements are as documented for the Cursor.Down method. It is a convenience
// wrapper for creating a cursor, applying the path, and retrieving its
// value.
func Path(v *tree.Value, path ...any) (*tree.Value, error) {
	c := New(v).Down(path...)
	if err := c.Err(); err != nil {
		return nil, err
	}
	return c.Value(), nil
}

// A Cursor is a pointer that navigates into the structure of a tree.Value
// without modifying it.
type Cursor struct {
	org *tree.Value
	stk []*tree.Value
	err error
}

// New constructs a new Cursor to traverse the structure of origin.
func New(origin *tree.Value) *Cursor { return &Cursor{org: origin} }

// Origin returns the origin value of c.
func (c *Cursor) Origin() *tree.Value { return c.org }

// AtOrigin reports whether c is at its origin.
func (c *Cursor) AtOrigin() bool { return len(c.stk) == 0 }

// Value reports the current value under the cursor.
func (c *Cursor) Value() *tree.Value {
	if c.AtOrigin() {
		return c.org
	}
	return c.stk[len(c.stk)-1]
}

// Path reports the complete sequence of values from the origin to the
// current location in c.
func (c *Cursor) Path() []*tree.Value {
	return append([]*tree.Value{c.org}, c.stk...)
}

// Err reports the error from the most recent traversal operation, if any.
func (c *Cursor) Err() error { return c.err }

// Up moves the cursor one position upward in the structure, if possible.
// It returns c to permit chaining.
func (c *Cursor) Up() *Cursor {
	if n := len(c.stk); n > 0 {
		c.stk = c.stk[:n-1]
	}
	return c
}

// Reset resets the cursor to its origin and clears its error.
func (c *Cursor) Reset() { c.stk = c.stk[:0]; c.err = nil }

// Down traverses a sequential path into the structure of c starting from the
// current value, where path elements are strings (denoting object keys),
// integers (denoting offsets into arrays or into an object's sorted keys),
// or functions (see below). If the path cannot be completely consumed,
// traversal stops at the last value reached and an error is recorded. Use
// Err to recover the error. Down returns c to permit chaining.
//
// If a path element is a string, the current value must be an object, and
// the string resolves the member with that key.
//
// If a path element is an integer, the current value must be an array or an
// object; the integer resolves an index into the array elements or into the
// object's keys in sorted order. Negative indices count backward from the
// end (-1 is last, -2 second last). An error is reported if the index is out
// of bounds.
//
// If a path element is a function, the function is executed on the current
// value and its result becomes the next value in the sequence. The function
// must have the signature
//
//	func(*tree.Value) (*tree.Value, error)
//
// If the function reports an error, traversal stops and the error is
// recorded.
func (c *Cursor) Down(path ...any) *Cursor {
	c.err = nil // reset error
	cur := c.Value()
	for _, elt := range path {
		if cur == nil {
			return c.setErrorf("cannot traverse nil with %v", elt)
		}
		switch t := elt.(type) {
		case string:
			if !cur.Is(tree.Object) {
				return c.setErrorf("cannot traverse %v with %q", cur.Kind(), t)
			}
			m := cur.Find(t)
			if m == nil {
				return c.setErrorf("key %q not found", t)
			}
			cur = c.push(m)

		case int:
			switch {
			case cur.Is(tree.Array):
				i, ok := fixArrayBound(cur.Len(), t)
				if !ok {
					return c.setErrorf("array index %d out of bounds (n=%d)", i, cur.Len())
				}
				cur = c.push(cur.Element(i))
			case cur.Is(tree.Object):
				keys := cur.Keys()
				i, ok := fixArrayBound(len(keys), t)
				if !ok {
					return c.setErrorf("object index %d out of bounds (n=%d)", i, len(keys))
				}
				cur = c.push(cur.Find(keys[i]))
			default:
				return c.setErrorf("cannot traverse %v with %v", cur.Kind(), elt)
			}

		case func(*tree.Value) (*tree.Value, error):
			next, err := t(cur)
			if err != nil {
				c.err = err
				return c
			}
			cur = c.push(next)

		default:
			return c.setErrorf("invalid path element %T", elt)
		}
	}
	return c
}

func (c *Cursor) push(v *tree.Value) *tree.Value { c.stk = append(c.stk, v); return v }

func (c *Cursor) setErrorf(msg string, args ...any) *Cursor {
	c.err = fmt.Errorf(msg, args...)
	return c
}

func fixArrayBound(n, i int) (int, bool) {
	if i < 0 {
		i += n
	}
	return i, i >= 0 && i < n
}
