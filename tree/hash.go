// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package tree

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Hash returns a 64-bit structural hash of v: values that are Equal hash to
// the same sum, and the sum is stable across processes, so it can be
// persisted or compared between runs. It panics if v is nil.
func (v *Value) Hash() uint64 {
	if v == nil {
		panic("tree: Hash of a nil value")
	}
	d := xxhash.New()

	var buf [8]byte
	buf[0] = byte(v.kind)
	d.Write(buf[:1])

	switch v.kind {
	case Null:
		// kind alone

	case String:
		d.WriteString(v.s)

	case Int:
		binary.LittleEndian.PutUint64(buf[:], uint64(v.z))
		d.Write(buf[:])

	case Float:
		binary.LittleEndian.PutUint32(buf[:4], math.Float32bits(v.f))
		d.Write(buf[:4])

	case Bool:
		if v.b {
			buf[0] = 1
		} else {
			buf[0] = 0
		}
		d.Write(buf[:1])

	case Array:
		// Combine child sums in element order.
		for _, e := range v.elts {
			binary.LittleEndian.PutUint64(buf[:], e.Hash())
			d.Write(buf[:])
		}

	case Object:
		// Combine member sums in sorted key order, so the hash does not
		// depend on how the object was built.
		for _, key := range v.Keys() {
			d.WriteString(key)
			binary.LittleEndian.PutUint64(buf[:], v.mems[key].Hash())
			d.Write(buf[:])
		}
	}
	return d.Sum64()
}
