// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package tree

import (
	"bufio"
	"bytes"
	"io"
	"strconv"
	"strings"
)

// Format renders a pretty-printed representation of v to w, followed by a
// single newline. Objects print multiline with members indented one tab per
// nesting level in sorted key order; arrays print inline at any depth.
// The indentation depth is local to each call, so concurrent formatting of
// distinct values is safe.
func Format(w io.Writer, v *Value) error {
	bw := bufio.NewWriter(w)
	formatValue(bw, v, 0)
	bw.WriteByte('\n')
	return bw.Flush()
}

// FormatToString formats v as Format does and returns the text.
// In case of error in formatting, it returns an empty string.
func FormatToString(v *Value) string {
	var buf bytes.Buffer
	if Format(&buf, v) != nil {
		return ""
	}
	return buf.String()
}

// formatValue writes a representation of v to w at the given indentation
// depth. A nested object begins on a fresh line at its own indentation, with
// its closing brace at the same indentation; an object at depth zero starts
// in place. Arrays add no newlines of their own.
func formatValue(w *bufio.Writer, v *Value, depth int) {
	switch v.kind {
	case Object:
		if depth > 0 {
			w.WriteByte('\n')
			writeTabs(w, depth)
		}
		w.WriteString("{\n")
		keys := v.Keys()
		for i, key := range keys {
			writeTabs(w, depth+1)
			w.WriteByte('"')
			w.WriteString(key)
			w.WriteString(`": `)
			formatValue(w, v.mems[key], depth+1)
			if i+1 < len(keys) {
				w.WriteByte(',')
			}
			w.WriteByte('\n')
		}
		writeTabs(w, depth)
		w.WriteByte('}')

	case Array:
		w.WriteByte('[')
		for i, e := range v.elts {
			if i > 0 {
				w.WriteString(", ")
			}
			formatValue(w, e, depth)
		}
		w.WriteByte(']')

	default:
		w.WriteString(v.scalarJSON())
	}
}

func writeTabs(w *bufio.Writer, n int) {
	for range n {
		w.WriteByte('\t')
	}
}

// JSON renders v as compact JSON on a single line, object members in sorted
// key order. String payloads are emitted raw between quotes.
func (v *Value) JSON() string {
	switch v.kind {
	case Object:
		if len(v.mems) == 0 {
			return "{}"
		}
		var sb strings.Builder
		sb.WriteByte('{')
		for i, key := range v.Keys() {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteByte('"')
			sb.WriteString(key)
			sb.WriteString(`":`)
			sb.WriteString(v.mems[key].JSON())
		}
		sb.WriteByte('}')
		return sb.String()

	case Array:
		if len(v.elts) == 0 {
			return "[]"
		}
		var sb strings.Builder
		sb.WriteByte('[')
		sb.WriteString(v.elts[0].JSON())
		for _, e := range v.elts[1:] {
			sb.WriteByte(',')
			sb.WriteString(e.JSON())
		}
		sb.WriteByte(']')
		return sb.String()

	default:
		return v.scalarJSON()
	}
}

// scalarJSON renders the scalar payload of v as JSON text. Strings are not
// escaped; floats use the shortest single-precision decimal form.
func (v *Value) scalarJSON() string {
	switch v.kind {
	case Null:
		return "null"
	case String:
		return `"` + v.s + `"`
	case Int:
		return strconv.Itoa(v.z)
	case Float:
		return strconv.FormatFloat(float64(v.f), 'g', -1, 32)
	case Bool:
		if v.b {
			return "true"
		}
		return "false"
	}
	panic("invalid scalar kind " + v.kind.String())
}
