// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package jval provides the shared machinery for a small family of JSON
// value libraries: a byte-level cursor over fully-materialized input, source
// location bookkeeping, and the closed taxonomy of structural faults
// reported during parsing.
//
// The value model, parser, and printer live in the tree subpackage. This
// package has no opinion about what the input bytes mean beyond whitespace.
//
// # Cursors
//
// A Cursor is a read-once view of an input buffer. Construct a cursor from a
// byte slice or a string and consume it with Next, Skip, and TakeUntil. The
// cursor never backs up: callers peek before they consume.
//
//	c := jval.NewCursorString(`[1, 2, 3]`)
//	for {
//	   ch, ok := c.Next()
//	   if !ok {
//	      break
//	   }
//	   log.Printf("Next byte: %c", ch)
//	}
//
// The cursor tracks the current line and column so that errors can point at
// the offending input:
//
//	log.Printf("stopped at %v", c.Location())
//
// # Faults
//
// A parse error has concrete type *jval.SyntaxError and carries a Fault
// naming the structural rule that was violated, along with the location
// where the violation was detected. Fault implements the error interface
// and a SyntaxError unwraps to its fault, so specific faults can be matched
// with the errors package:
//
//	v, err := tree.Parse(data)
//	if errors.Is(err, jval.MissingBrace) {
//	   log.Fatal("unclosed object")
//	}
package jval
