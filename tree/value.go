// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package tree implements a mutable JSON value tree, with a recursive-descent
// parser that builds trees from JSON text and a pretty-printing formatter
// that renders them back out.
//
// # Values
//
// A Value is a tree node holding a payload of exactly one of seven kinds:
// null, string, int, float, bool, array, or object. The zero Value is null.
// Assigning a payload of a different kind discards the previous payload
// entirely; there is no double-width float kind, and every float-like value
// is stored in single precision.
//
// The indexing accessors At and Field are mutating: they coerce the value to
// the container kind they address, discarding any other payload, and create
// missing children. The lookups Element and Find are their read-only
// counterparts and report a missing child as nil without reshaping the tree.
//
// Object members have no insertion order. Keys iterate in sorted order, and
// the formatter emits members sorted by key, so output is deterministic
// regardless of how a tree was built.
//
// # Parsing
//
// Parse, ParseString, and ParseCursor build a Value from JSON text held
// fully in memory. The accepted grammar is a relaxed subset of JSON: string
// contents are read raw with no escape processing, numbers permit neither a
// leading "+" nor an exponent "+" sign, and there is no trailing-comma or
// comment tolerance (for the latter, see the jwcc package). Parse failures
// carry a *jval.SyntaxError naming the violated rule and its location.
//
// # Formatting
//
// Format and FormatToString pretty-print a value: objects multiline with one
// tab per nesting level, arrays inline, members in sorted key order, and a
// single trailing newline. JSON renders the same tree compactly on one line.
// Printing shares no state between calls, so formatting distinct trees from
// concurrent goroutines is safe.
package tree

import (
	"fmt"
	"iter"
	"maps"
	"slices"
)

// A Kind identifies the kind of payload a Value holds.
type Kind byte

// Constants defining the valid Kind values. The five scalar kinds precede
// Array; IsScalar depends on this order.
const (
	Null   Kind = iota // the null value; kind of the zero Value
	String             // a string, stored raw with no escape processing
	Int                // an integer
	Float              // a single-precision floating-point number
	Bool               // a Boolean constant
	Array              // an ordered sequence of values
	Object             // a mapping from string keys to values

	numKinds // number of defined kinds; not a valid Kind
)

var kindStr = [numKinds]string{
	Null:   "null",
	String: "string",
	Int:    "int",
	Float:  "float",
	Bool:   "bool",
	Array:  "array",
	Object: "object",
}

func (k Kind) String() string {
	if k >= numKinds {
		return fmt.Sprintf("kind(%d)", byte(k))
	}
	return kindStr[k]
}

// IsScalar reports whether k is one of the five scalar kinds.
func (k Kind) IsScalar() bool { return k < Array }

// A Value is a mutable JSON value. It holds a payload of exactly one kind at
// a time; mutators that change the kind discard the previous payload. The
// zero Value is null and ready for use.
//
// A Value is not safe for concurrent mutation. Concurrent readers of
// distinct trees are safe; readers and writers of the same tree must be
// synchronized by the caller.
type Value struct {
	kind Kind

	s    string            // String
	z    int               // Int
	f    float32           // Float
	b    bool              // Bool
	elts []*Value          // Array
	mems map[string]*Value // Object
}

// FromString constructs a string value holding s.
func FromString(s string) *Value { return &Value{kind: String, s: s} }

// FromInt constructs an integer value holding z.
func FromInt(z int) *Value { return &Value{kind: Int, z: z} }

// FromFloat constructs a float value holding f, stored in single precision.
func FromFloat(f float64) *Value { return &Value{kind: Float, f: float32(f)} }

// FromBool constructs a Boolean value holding b.
func FromBool(b bool) *Value { return &Value{kind: Bool, b: b} }

// FromSlice constructs an array value whose elements are vs. The value takes
// ownership of vs; the caller must not reuse it.
func FromSlice(vs []*Value) *Value { return &Value{kind: Array, elts: vs} }

// FromMap constructs an object value whose members are m. The value takes
// ownership of m; the caller must not reuse it.
func FromMap(m map[string]*Value) *Value { return &Value{kind: Object, mems: m} }

// ArrayOf constructs an array value from the given items, converting each
// via ToValue. It panics if an item has a type ToValue does not accept.
func ArrayOf[T any](vs ...T) *Value {
	elts := make([]*Value, len(vs))
	for i, v := range vs {
		elts[i] = ToValue(v)
	}
	return &Value{kind: Array, elts: elts}
}

// ToValue converts a string, int, float, bool, nil, or *Value into a Value.
// A *Value is returned unchanged. ToValue panics if v does not have one of
// those types.
func ToValue(v any) *Value {
	switch t := v.(type) {
	case nil:
		return new(Value)
	case *Value:
		return t
	case string:
		return FromString(t)
	case int:
		return FromInt(t)
	case float32:
		return FromFloat(float64(t))
	case float64:
		return FromFloat(t)
	case bool:
		return FromBool(t)
	default:
		panic(fmt.Sprintf("cannot convert %T to a value", v))
	}
}

// Kind reports the kind of payload v currently holds.
func (v *Value) Kind() Kind { return v.kind }

// Is reports whether v currently holds a payload of kind k.
// It has no side effects on v.
func (v *Value) Is(k Kind) bool { return v.kind == k }

// A KindError reports a request for a payload of a kind other than the one
// its value holds.
type KindError struct {
	Want, Got Kind
}

func (e *KindError) Error() string {
	return fmt.Sprintf("value is %v, not %v", e.Got, e.Want)
}

// AsString returns the string payload of v. It reports a *KindError if v is
// not a string.
func (v *Value) AsString() (string, error) {
	if v.kind != String {
		return "", &KindError{Want: String, Got: v.kind}
	}
	return v.s, nil
}

// AsInt returns the integer payload of v. It reports a *KindError if v is
// not an integer.
func (v *Value) AsInt() (int, error) {
	if v.kind != Int {
		return 0, &KindError{Want: Int, Got: v.kind}
	}
	return v.z, nil
}

// AsFloat returns the float payload of v. It reports a *KindError if v is
// not a float.
func (v *Value) AsFloat() (float32, error) {
	if v.kind != Float {
		return 0, &KindError{Want: Float, Got: v.kind}
	}
	return v.f, nil
}

// AsBool returns the Boolean payload of v. It reports a *KindError if v is
// not a Boolean.
func (v *Value) AsBool() (bool, error) {
	if v.kind != Bool {
		return false, &KindError{Want: Bool, Got: v.kind}
	}
	return v.b, nil
}

// AsArray returns the elements of v. It reports a *KindError if v is not an
// array. The returned slice is the live payload, not a copy.
func (v *Value) AsArray() ([]*Value, error) {
	if v.kind != Array {
		return nil, &KindError{Want: Array, Got: v.kind}
	}
	return v.elts, nil
}

// AsObject returns the members of v. It reports a *KindError if v is not an
// object. The returned map is the live payload, not a copy.
func (v *Value) AsObject() (map[string]*Value, error) {
	if v.kind != Object {
		return nil, &KindError{Want: Object, Got: v.kind}
	}
	return v.mems, nil
}

// MustString is as AsString, but panics on a kind mismatch.
// It is intended for callers that have already checked the kind.
func (v *Value) MustString() string { return must(v.AsString()) }

// MustInt is as AsInt, but panics on a kind mismatch.
func (v *Value) MustInt() int { return must(v.AsInt()) }

// MustFloat is as AsFloat, but panics on a kind mismatch.
func (v *Value) MustFloat() float32 { return must(v.AsFloat()) }

// MustBool is as AsBool, but panics on a kind mismatch.
func (v *Value) MustBool() bool { return must(v.AsBool()) }

// MustArray is as AsArray, but panics on a kind mismatch.
func (v *Value) MustArray() []*Value { return must(v.AsArray()) }

// MustObject is as AsObject, but panics on a kind mismatch.
func (v *Value) MustObject() map[string]*Value { return must(v.AsObject()) }

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// reset discards the payload of v and switches its kind to k.
func (v *Value) reset(k Kind) { *v = Value{kind: k} }

// SetString replaces the payload of v with the string s.
func (v *Value) SetString(s string) { v.reset(String); v.s = s }

// SetInt replaces the payload of v with the integer z.
func (v *Value) SetInt(z int) { v.reset(Int); v.z = z }

// SetFloat replaces the payload of v with f, stored in single precision.
func (v *Value) SetFloat(f float64) { v.reset(Float); v.f = float32(f) }

// SetBool replaces the payload of v with the Boolean b.
func (v *Value) SetBool(b bool) { v.reset(Bool); v.b = b }

// SetNull replaces the payload of v with null.
func (v *Value) SetNull() { v.reset(Null) }

// SetArray replaces the payload of v with an array of the given elements.
func (v *Value) SetArray(vs ...*Value) { v.reset(Array); v.elts = vs }

// Set replaces the payload of v with the value ToValue constructs from x,
// and panics if x has a type ToValue does not accept. If x is a *Value its
// payload is shared, not copied; use Clone for a deep copy.
func (v *Value) Set(x any) { *v = *ToValue(x) }

// At returns the element of v at index i ≥ 0, coercing v to an array if it
// is not one already and growing it with null elements through index i.
// Coercion discards any non-array payload. At panics if i < 0.
func (v *Value) At(i int) *Value {
	if i < 0 {
		panic(fmt.Sprintf("index %d out of range", i))
	}
	if v.kind != Array {
		v.reset(Array)
	}
	for len(v.elts) <= i {
		v.elts = append(v.elts, new(Value))
	}
	return v.elts[i]
}

// Field returns the member of v with the given key, coercing v to an object
// if it is not one already and inserting a null member if the key is absent.
// Coercion discards any non-object payload.
func (v *Value) Field(key string) *Value {
	if v.kind != Object {
		v.reset(Object)
	}
	if v.mems == nil {
		v.mems = make(map[string]*Value)
	}
	m, ok := v.mems[key]
	if !ok {
		m = new(Value)
		v.mems[key] = m
	}
	return m
}

// Element returns the element of v at index i, or nil if v is not an array
// or i is out of range. It never modifies v.
func (v *Value) Element(i int) *Value {
	if v.kind != Array || i < 0 || i >= len(v.elts) {
		return nil
	}
	return v.elts[i]
}

// Find returns the member of v with the given key, or nil if v is not an
// object or has no such member. It never modifies v.
func (v *Value) Find(key string) *Value {
	if v.kind != Object {
		return nil
	}
	return v.mems[key]
}

// Len reports the number of elements or members of v, or 0 for scalars.
func (v *Value) Len() int {
	switch v.kind {
	case Array:
		return len(v.elts)
	case Object:
		return len(v.mems)
	default:
		return 0
	}
}

// Keys returns the member keys of v in sorted order, or nil if v is not an
// object or has no members.
func (v *Value) Keys() []string {
	if v.kind != Object || len(v.mems) == 0 {
		return nil
	}
	return slices.Sorted(maps.Keys(v.mems))
}

// Members ranges over the members of v in sorted key order.
// It yields nothing if v is not an object.
func (v *Value) Members() iter.Seq2[string, *Value] {
	return func(yield func(string, *Value) bool) {
		for _, key := range v.Keys() {
			if !yield(key, v.mems[key]) {
				return
			}
		}
	}
}

// Append appends the given elements to v, coercing v to an array if it is
// not one already. Coercion discards any non-array payload.
func (v *Value) Append(vs ...*Value) {
	if v.kind != Array {
		v.reset(Array)
	}
	v.elts = append(v.elts, vs...)
}

// String renders scalars as their literal text, and containers as a short
// descriptor of their kind and size.
func (v *Value) String() string {
	switch v.kind {
	case String:
		return v.s
	case Array:
		return fmt.Sprintf("Array(len=%d)", len(v.elts))
	case Object:
		return fmt.Sprintf("Object(len=%d)", len(v.mems))
	default:
		return v.scalarJSON()
	}
}
