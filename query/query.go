// Package query implements structural queries over JSON value trees.
//
// A query describes a substructure of a value tree, such as an object
// member, an array element, or a path through the tree. Evaluating a query
// against a concrete value traverses the structure described by the query
// and returns the resulting value.
//
// The simplest query is for a "path", a sequence of object keys and/or array
// indices that describes a path from the root of a value. For example, given
// the value parsed from:
//
//	[{"a": 1, "b": 2}, {"c": {"d": true}, "e": false}]
//
// the query
//
//	query.Path(1, "c", "d")
//
// yields the value true.
//
// Queries never modify their input. Constructive queries such as Object,
// Array, and Glob build new containers, but the values inside them are
// shared with the input tree, not copies.
package query

import (
	"errors"
	"fmt"

	"github.com/creachadair/jval/tree"
)

// Eval evaluates the given query beginning from root, returning the resulting
// value or an error. A nil root evaluates as null.
func Eval(root *tree.Value, q Query) (*tree.Value, error) {
	if root == nil {
		root = new(tree.Value)
	}
	return q.eval(root)
}

// A Query describes a traversal of a value tree.
type Query interface {
	eval(*tree.Value) (*tree.Value, error)
}

// Path traverses a sequence of nested object keys or array indices from the
// root.  If no keys are specified, the root is returned. Each key must be a
// string, an int, or a Query.
func Path(keys ...any) Query {
	if len(keys) == 1 {
		return pathElem(keys[0])
	}
	pq := make(Seq, 0, len(keys))
	for _, key := range keys {
		q := pathElem(key)
		if sq, ok := q.(Seq); ok {
			pq = append(pq, sq...)
		} else {
			pq = append(pq, q)
		}
	}
	return pq
}

func pathElem(key any) Query {
	switch t := key.(type) {
	case string:
		return objKey(t)
	case int:
		return nthQuery(t)
	case Query:
		return t
	default:
		panic(fmt.Sprintf("invalid path element %T", key))
	}
}

type objKey string

func (o objKey) eval(v *tree.Value) (*tree.Value, error) {
	if !v.Is(tree.Object) {
		return nil, fmt.Errorf("got %v, want object", v.Kind())
	}
	m := v.Find(string(o))
	if m == nil {
		return nil, fmt.Errorf("key %q not found", string(o))
	}
	return m, nil
}

type nthQuery int

func (nq nthQuery) eval(v *tree.Value) (*tree.Value, error) {
	if !v.Is(tree.Array) {
		return nil, fmt.Errorf("got %v, want array", v.Kind())
	}
	idx := int(nq)
	if idx < 0 {
		idx += v.Len()
	}
	if idx < 0 || idx >= v.Len() {
		return nil, fmt.Errorf("index %d out of range (0..%d)", int(nq), v.Len())
	}
	return v.Element(idx), nil
}

// Selection constructs an array of the elements of its input array, for which
// the specified function returns true.
type Selection func(*tree.Value) bool

func (q Selection) eval(v *tree.Value) (*tree.Value, error) {
	if !v.Is(tree.Array) {
		return nil, fmt.Errorf("got %v, want array", v.Kind())
	}
	var out []*tree.Value
	for _, elt := range v.MustArray() {
		if q(elt) {
			out = append(out, elt)
		}
	}
	return tree.FromSlice(out), nil
}

// Mapping constructs an array in which each value is replaced by the result
// of calling the specified function on the corresponding input value.
type Mapping func(*tree.Value) *tree.Value

func (q Mapping) eval(v *tree.Value) (*tree.Value, error) {
	if !v.Is(tree.Array) {
		return nil, fmt.Errorf("got %v, want array", v.Kind())
	}
	in := v.MustArray()
	out := make([]*tree.Value, len(in))
	for i, elt := range in {
		out[i] = q(elt)
	}
	return tree.FromSlice(out), nil
}

// Slice selects a slice of an array from offsets lo to hi.  The range
// includes lo but excludes hi. Negative offsets select from the end of the
// array. If hi == 0, the length of the array is used.
func Slice(lo, hi int) Query { return sliceQuery{lo, hi} }

type sliceQuery struct{ lo, hi int }

func (q sliceQuery) eval(v *tree.Value) (*tree.Value, error) {
	if !v.Is(tree.Array) {
		return nil, fmt.Errorf("got %v, want array", v.Kind())
	}
	elts := v.MustArray()
	lox := q.lo
	if lox < 0 {
		lox += len(elts)
	}
	hix := q.hi
	if hix <= 0 {
		hix += len(elts)
	}
	if lox < 0 || lox >= len(elts) {
		return nil, fmt.Errorf("index %d out of range (0..%d)", q.lo, len(elts))
	} else if hix < 0 || hix > len(elts) {
		return nil, fmt.Errorf("index %d out of range (0..%d)", q.hi, len(elts))
	} else if lox > hix {
		return nil, fmt.Errorf("index start %d > end %d", q.lo, q.hi)
	}
	return tree.FromSlice(elts[lox:hix]), nil
}

// Pick constructs an array by picking the designated offsets from an array.
// Negative offsets select from the end of the input array.
func Pick(offsets ...int) Query { return pickQuery(offsets) }

type pickQuery []int

func (q pickQuery) eval(v *tree.Value) (*tree.Value, error) {
	if !v.Is(tree.Array) {
		return nil, fmt.Errorf("got %v, want array", v.Kind())
	}
	var out []*tree.Value
	for _, off := range q {
		if off < 0 {
			off += v.Len()
		}
		if off < 0 || off >= v.Len() {
			return nil, fmt.Errorf("index %d out of range (0..%d)", off, v.Len())
		}
		out = append(out, v.Element(off))
	}
	return tree.FromSlice(out), nil
}

// Len returns an integer representing the length of the root.
//
// For an object, the length is the number of members.
// For an array, the length is the number of elements.
// For a string, the length is the length of the string in bytes.
// For null, the length is zero.
func Len() Query { return lenQuery{} }

type lenQuery struct{}

func (lenQuery) eval(v *tree.Value) (*tree.Value, error) {
	switch v.Kind() {
	case tree.Null:
		return tree.FromInt(0), nil
	case tree.String:
		return tree.FromInt(len(v.MustString())), nil
	case tree.Array, tree.Object:
		return tree.FromInt(v.Len()), nil
	}
	return nil, fmt.Errorf("cannot take length of %v", v.Kind())
}

// Keys returns an array of the member keys of an object in sorted order.
// The keys of null are empty. Any other input reports an error.
func Keys() Query { return keysQuery{} }

type keysQuery struct{}

func (keysQuery) eval(v *tree.Value) (*tree.Value, error) {
	switch v.Kind() {
	case tree.Null:
		return tree.FromSlice(nil), nil
	case tree.Object:
		return tree.ArrayOf(v.Keys()...), nil
	}
	return nil, fmt.Errorf("got %v, want object", v.Kind())
}

// Seq is a sequential composition of queries. An empty sequence selects the
// root; otherwise, each query is applied to the result selected by the
// previous query in the sequence.
type Seq []Query

func (q Seq) eval(v *tree.Value) (*tree.Value, error) {
	cur := v
	for _, sq := range q {
		next, err := sq.eval(cur)
		if err != nil {
			return nil, err
		}
		cur = next
	}
	return cur, nil
}

// Alt is a query that selects among a sequence of alternatives.  The result
// of the first alternative that does not report an error is returned. If
// there are no alternatives, the query fails on all inputs.
type Alt []Query

func (q Alt) eval(v *tree.Value) (*tree.Value, error) {
	for _, alt := range q {
		if w, err := alt.eval(v); err == nil {
			return w, nil
		}
	}
	return nil, errors.New("no matching alternatives")
}

// Recur applies a query to each recursive descendant of its input and
// returns an array of the resulting values. The arguments have the same
// constraints as Path.
func Recur(keys ...any) Query { return recQuery{Path(keys...)} }

type recQuery struct{ Query }

func (q recQuery) eval(v *tree.Value) (*tree.Value, error) {
	var out []*tree.Value

	stk := []*tree.Value{v}
	for len(stk) != 0 {
		next := stk[len(stk)-1]
		stk = stk[:len(stk)-1]

		if r, err := q.Query.eval(next); err == nil {
			out = append(out, r)
		}

		// N.B. Push in reverse order, so we visit object members in sorted
		// key order and array elements first to last.
		switch next.Kind() {
		case tree.Object:
			keys := next.Keys()
			for i := len(keys) - 1; i >= 0; i-- {
				stk = append(stk, next.Find(keys[i]))
			}
		case tree.Array:
			elts := next.MustArray()
			for i := len(elts) - 1; i >= 0; i-- {
				stk = append(stk, elts[i])
			}
		}
	}

	if len(out) == 0 {
		return nil, errors.New("no matches")
	}
	return tree.FromSlice(out), nil
}

// Each applies a query to each element of an array and returns an array of
// the resulting values. It fails if the input is not an array.  The
// arguments have the same constraints as Path.
func Each(keys ...any) Query { return eachQuery{Path(keys...)} }

type eachQuery struct{ Query }

func (q eachQuery) eval(v *tree.Value) (*tree.Value, error) {
	if !v.Is(tree.Array) {
		return nil, fmt.Errorf("got %v, want array", v.Kind())
	}
	var out []*tree.Value
	for i, elt := range v.MustArray() {
		w, err := q.Query.eval(elt)
		if err != nil {
			return nil, fmt.Errorf("index %d: %w", i, err)
		}
		out = append(out, w)
	}
	return tree.FromSlice(out), nil
}

// Object constructs an object with the given keys mapped to the results of
// matching the query values against its input.
type Object map[string]Query

func (o Object) eval(v *tree.Value) (*tree.Value, error) {
	out := make(map[string]*tree.Value, len(o))
	for key, q := range o {
		val, err := q.eval(v)
		if err != nil {
			return nil, fmt.Errorf("match %q: %w", key, err)
		}
		out[key] = val
	}
	return tree.FromMap(out), nil
}

// Array constructs an array with the values produced by matching the given
// queries against its input.
type Array []Query

func (a Array) eval(v *tree.Value) (*tree.Value, error) {
	out := make([]*tree.Value, len(a))
	for i, q := range a {
		val, err := q.eval(v)
		if err != nil {
			return nil, fmt.Errorf("index %d: %w", i, err)
		}
		out[i] = val
	}
	return tree.FromSlice(out), nil
}

// A String query ignores its input and returns the given string.
func String(s string) Query { return Value(s) }

// A Float query ignores its input and returns the given number.
func Float(f float64) Query { return Value(f) }

// An Int query ignores its input and returns the given integer.
func Int(z int) Query { return Value(z) }

// A Bool query ignores its input and returns the given bool.
func Bool(b bool) Query { return Value(b) }

// A Null query ignores its input and returns a null value.
func Null() Query { return Value(nil) }

// A Value query ignores its input and returns the value tree.ToValue
// constructs from x. It panics if x has a type tree.ToValue does not accept.
func Value(x any) Query { return constQuery{tree.ToValue(x)} }

type constQuery struct{ v *tree.Value }

func (c constQuery) eval(*tree.Value) (*tree.Value, error) { return c.v, nil }

// A Glob query returns an array of all the children of its input: the member
// values of an object in sorted key order, or the elements of an array.
func Glob() Query { return globQuery{} }

type globQuery struct{}

func (globQuery) eval(v *tree.Value) (*tree.Value, error) {
	switch v.Kind() {
	case tree.Object:
		keys := v.Keys()
		out := make([]*tree.Value, len(keys))
		for i, key := range keys {
			out[i] = v.Find(key)
		}
		return tree.FromSlice(out), nil
	case tree.Array:
		return v, nil
	default:
		return nil, errors.New("no matching values")
	}
}
