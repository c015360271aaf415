// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package tree_test

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/creachadair/jval/tree"
)

// benchInput synthesizes a document of plain ASCII scalars, so that both
// parsers under comparison accept exactly the same bytes.
func benchInput(b *testing.B) []byte {
	b.Helper()
	var sb strings.Builder
	sb.WriteByte('[')
	for i := range 500 {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, `{"id": %d, "name": "item-%04d", "ratio": %d.%02d, "ok": %v, "tags": ["x", "y", "%d"], "note": null}`,
			i, i, i%7, i%100, i%2 == 0, i)
	}
	sb.WriteByte(']')
	return []byte(sb.String())
}

func BenchmarkParse(b *testing.B) {
	input := benchInput(b)
	b.Logf("Benchmark input: %d bytes", len(input))

	b.Run("Unmarshal", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			var v any
			if err := json.Unmarshal(input, &v); err != nil {
				b.Fatalf("Unexpected error: %v", err)
			}
		}
	})

	b.Run("Tree", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			if _, err := tree.Parse(input); err != nil {
				b.Fatalf("Unexpected error: %v", err)
			}
		}
	})
}

func BenchmarkFormat(b *testing.B) {
	input := benchInput(b)
	b.Logf("Benchmark input: %d bytes", len(input))

	var std any
	if err := json.Unmarshal(input, &std); err != nil {
		b.Fatalf("Decoding input: %v", err)
	}
	v, err := tree.Parse(input)
	if err != nil {
		b.Fatalf("Parsing input: %v", err)
	}

	b.Run("MarshalIndent", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			if _, err := json.MarshalIndent(std, "", "\t"); err != nil {
				b.Fatalf("Unexpected error: %v", err)
			}
		}
	})

	b.Run("Format", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			if err := tree.Format(io.Discard, v); err != nil {
				b.Fatalf("Unexpected error: %v", err)
			}
		}
	})
}
