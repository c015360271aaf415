// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package tree_test

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/creachadair/jval/tree"
	"github.com/google/go-cmp/cmp"
)

func mustParse(t *testing.T, s string) *tree.Value {
	t.Helper()
	v, err := tree.ParseString(s)
	if err != nil {
		t.Fatalf("ParseString(%#q): unexpected error: %v", s, err)
	}
	return v
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name, input string
		want        string
	}{
		{"Int", `42`, "42\n"},
		{"String", `"hi"`, "\"hi\"\n"},
		{"Null", `null`, "null\n"},

		// The object/array formatting asymmetry: objects get one line per
		// member, arrays print inline.
		{"EmptyObject", `{}`, "{\n}\n"},
		{"EmptyArray", `[]`, "[]\n"},
		{"Array", `[1, "two", true]`, "[1, \"two\", true]\n"},

		{"Object", `{"b": 1, "a": "two"}`,
			"{\n" +
				"\t\"a\": \"two\",\n" +
				"\t\"b\": 1\n" +
				"}\n"},

		// A nested object begins on a fresh line at its own indentation.
		{"NestedObject", `{"tags": ["a", "b"], "meta": {"ratio": 0.5, "ok": true}, "blob": null}`,
			"{\n" +
				"\t\"blob\": null,\n" +
				"\t\"meta\": \n" +
				"\t{\n" +
				"\t\t\"ok\": true,\n" +
				"\t\t\"ratio\": 0.5\n" +
				"\t},\n" +
				"\t\"tags\": [\"a\", \"b\"]\n" +
				"}\n"},

		{"DeepObject", `{"a": {"b": {"c": 1}}}`,
			"{\n" +
				"\t\"a\": \n" +
				"\t{\n" +
				"\t\t\"b\": \n" +
				"\t\t{\n" +
				"\t\t\t\"c\": 1\n" +
				"\t\t}\n" +
				"\t}\n" +
				"}\n"},

		// Arrays do not add newlines of their own, so an object element
		// opens its brace in place.
		{"ObjectInArray", `[1, {"a": 2}, 3]`,
			"[1, {\n" +
				"\t\"a\": 2\n" +
				"}, 3]\n"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			v := mustParse(t, test.input)

			var sb strings.Builder
			if err := tree.Format(&sb, v); err != nil {
				t.Fatalf("Format: unexpected error: %v", err)
			}
			if diff := cmp.Diff(test.want, sb.String()); diff != "" {
				t.Errorf("Format: (-want, +got)\n%s", diff)
			}
			if got := tree.FormatToString(v); got != sb.String() {
				t.Errorf("FormatToString: got %#q, want %#q", got, sb.String())
			}
		})
	}
}

type errWriter struct{ err error }

func (w errWriter) Write([]byte) (int, error) { return 0, w.err }

func TestFormatWriteError(t *testing.T) {
	bogus := errors.New("bogus")
	if err := tree.Format(errWriter{bogus}, tree.FromInt(1)); !errors.Is(err, bogus) {
		t.Errorf("Format: got error %v, want %v", err, bogus)
	}
}

func TestKeyOrder(t *testing.T) {
	v := mustParse(t, `{"b": 1, "a": 2}`)
	if got, want := v.JSON(), `{"a":2,"b":1}`; got != want {
		t.Errorf("JSON: got %#q, want %#q", got, want)
	}
	want := "{\n\t\"a\": 2,\n\t\"b\": 1\n}\n"
	if got := tree.FormatToString(v); got != want {
		t.Errorf("Format: got %#q, want %#q", got, want)
	}
}

func TestJSON(t *testing.T) {
	tests := []struct {
		input *tree.Value
		want  string
	}{
		{new(tree.Value), `null`},
		{tree.FromString("free your mind"), `"free your mind"`},
		{tree.FromFloat(-0.25), `-0.25`},
		{tree.ArrayOf[any](true, 199), `[true,199]`},
		{tree.FromMap(map[string]*tree.Value{
			"values": tree.ArrayOf(5, 10),
			"page": tree.FromMap(map[string]*tree.Value{
				"token": tree.FromString("xyz-pdq-zvm"),
				"count": tree.FromInt(100),
			}),
		}), `{"page":{"count":100,"token":"xyz-pdq-zvm"},"values":[5,10]}`},
	}
	for _, test := range tests {
		if got := test.input.JSON(); got != test.want {
			t.Errorf("JSON: got %#q, want %#q", got, test.want)
		}
	}
}

// Printing shares no state across calls: repeated and concurrent formatting
// of distinct trees must produce identical bytes.
func TestFormatConcurrent(t *testing.T) {
	build := func(i int) *tree.Value {
		var v tree.Value
		v.Field("id").Set(i)
		v.Field("name").Set(fmt.Sprintf("worker-%d", i))
		list := v.Field("list")
		for j := range 5 {
			list.At(j).Set(i * j)
		}
		v.Field("nest").Field("deep").Set(true)
		return &v
	}

	var wg sync.WaitGroup
	for i := range 8 {
		want := tree.FormatToString(build(i))
		wg.Add(1)
		go func() {
			defer wg.Done()
			v := build(i)
			for range 50 {
				if got := tree.FormatToString(v); got != want {
					t.Errorf("Format %d: got %#q, want %#q", i, got, want)
					return
				}
			}
		}()
	}
	wg.Wait()
}

// Any programmatically built tree of representable kinds must survive a
// serialize/parse round trip, except that a float whose printed form is
// integral comes back as an int.
func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		val  *tree.Value
	}{
		{"Null", new(tree.Value)},
		{"String", tree.FromString("ad astra per aspera")},
		{"Int", tree.FromInt(-1905)},
		{"Float", tree.FromFloat(4.25)},
		{"Bool", tree.FromBool(false)},
		{"Array", tree.ArrayOf[any](1, "two", 0.5, false, nil)},
		{"Object", tree.FromMap(map[string]*tree.Value{
			"name":  tree.FromString("widget"),
			"count": tree.FromInt(3),
			"ratio": tree.FromFloat(0.5),
			"ok":    tree.FromBool(true),
			"blob":  new(tree.Value),
			"tags":  tree.ArrayOf[any]("a", "b", 7),
		})},
		{"Nested", tree.FromMap(map[string]*tree.Value{
			"rows": tree.FromSlice([]*tree.Value{
				tree.FromMap(map[string]*tree.Value{"x": tree.FromInt(1)}),
				tree.FromMap(map[string]*tree.Value{"x": tree.FromInt(2)}),
			}),
		})},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			text := tree.FormatToString(test.val)
			got, err := tree.ParseString(text)
			if err != nil {
				t.Fatalf("ParseString(%#q): unexpected error: %v", text, err)
			}
			if !tree.Equal(got, test.val) {
				t.Errorf("Round trip of %#q:\n got %#q\nwant %#q", text, got.JSON(), test.val.JSON())
			}
		})
	}

	t.Run("IntegralFloat", func(t *testing.T) {
		v := tree.FromFloat(42)
		text := tree.FormatToString(v)
		if text != "42\n" {
			t.Errorf("Format: got %#q, want 42", text)
		}

		// The printed form has no fraction, so the value comes back as an
		// int and no longer compares equal.
		got, err := tree.ParseString(text)
		if err != nil {
			t.Fatalf("ParseString: unexpected error: %v", err)
		}
		if got.Kind() != tree.Int || got.MustInt() != 42 {
			t.Errorf("Reparsed: got %v %v, want int 42", got.Kind(), got)
		}
		if tree.Equal(got, v) {
			t.Error("Equal: got true, want false (kind changed)")
		}
	})
}
