// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package tree

import "io"

// A Document owns a single root value and wires it to reader and writer
// based parse and print entry points. The zero Document holds a null root
// and is ready for use.
//
// A document root is conventionally object shaped, so the document exposes
// only string-key indexing; use Root to reach the full Value surface.
type Document struct {
	root Value
}

// Root returns the root value of d. The root's lifetime is the document's:
// the pointer remains valid across Parse calls.
func (d *Document) Root() *Value { return &d.root }

// Field returns the member of the root with the given key, coercing the
// root to an object and inserting a null member if the key is absent, as
// Value.Field does.
func (d *Document) Field(key string) *Value { return d.root.Field(key) }

// Find returns the member of the root with the given key, or nil if the
// root is not an object or has no such member. It never modifies d.
func (d *Document) Find(key string) *Value { return d.root.Find(key) }

// Parse reads all of r and parses a single JSON value from it, replacing the
// root. The root is replaced only if parsing succeeds; after an error the
// document is unchanged.
func (d *Document) Parse(r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	return d.ParseBytes(data)
}

// ParseBytes parses a single JSON value from data, replacing the root.
// The root is replaced only if parsing succeeds.
func (d *Document) ParseBytes(data []byte) error {
	v, err := Parse(data)
	if err != nil {
		return err
	}
	d.root = *v
	return nil
}

// Format pretty-prints the root to w, as Format does.
func (d *Document) Format(w io.Writer) error { return Format(w, &d.root) }

// String returns the pretty-printed text of the root, including the
// trailing newline.
func (d *Document) String() string { return FormatToString(&d.root) }
