// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package tree

import (
	"cmp"
	"strings"
)

// Compare returns an integer comparing two values. The result is 0 if a and
// b are structurally equal, -1 if a orders before b, and +1 if a orders
// after b. A nil value orders before everything but another nil.
//
// Values of different kinds order by kind: null < bool < int < float <
// string < array < object. Values of the same kind order by payload: arrays
// elementwise then by length, objects by sorted keys then by the
// corresponding member values then by size. The order is total, so values
// can be sorted deterministically; note that an int never equals a float,
// whatever their numeric values.
func Compare(a, b *Value) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	if ra, rb := rank(a.kind), rank(b.kind); ra != rb {
		return cmp.Compare(ra, rb)
	}
	switch a.kind {
	case Null:
		return 0
	case Bool:
		if a.b == b.b {
			return 0
		}
		if !a.b {
			return -1
		}
		return 1
	case Int:
		return cmp.Compare(a.z, b.z)
	case Float:
		return cmp.Compare(a.f, b.f)
	case String:
		return strings.Compare(a.s, b.s)
	case Array:
		return compareArrays(a, b)
	default:
		return compareObjects(a, b)
	}
}

// rank returns the sorting rank of a kind.
// Order: Null < Bool < Int < Float < String < Array < Object.
func rank(k Kind) int {
	switch k {
	case Null:
		return 0
	case Bool:
		return 1
	case Int:
		return 2
	case Float:
		return 3
	case String:
		return 4
	case Array:
		return 5
	default:
		return 6
	}
}

func compareArrays(a, b *Value) int {
	for i := range min(len(a.elts), len(b.elts)) {
		if c := Compare(a.elts[i], b.elts[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a.elts), len(b.elts))
}

func compareObjects(a, b *Value) int {
	ka, kb := a.Keys(), b.Keys()
	for i := range min(len(ka), len(kb)) {
		if c := strings.Compare(ka[i], kb[i]); c != 0 {
			return c
		}
		if c := Compare(a.mems[ka[i]], b.mems[kb[i]]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(ka), len(kb))
}

// Equal reports whether a and b are structurally equal: the same kind, the
// same payload, and equal children.
func Equal(a, b *Value) bool { return Compare(a, b) == 0 }

// Clone returns a deep copy of v sharing no structure with it.
// Clone of nil is nil.
func (v *Value) Clone() *Value {
	if v == nil {
		return nil
	}
	out := &Value{kind: v.kind, s: v.s, z: v.z, f: v.f, b: v.b}
	if v.elts != nil {
		out.elts = make([]*Value, len(v.elts))
		for i, e := range v.elts {
			out.elts[i] = e.Clone()
		}
	}
	if v.mems != nil {
		out.mems = make(map[string]*Value, len(v.mems))
		for key, m := range v.mems {
			out.mems[key] = m.Clone()
		}
	}
	return out
}
