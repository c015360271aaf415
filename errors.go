// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package jval

import "fmt"

// A Fault identifies a structural violation detected during parsing. The
// set of faults is closed: a parser reports exactly one of the values
// defined here, wrapped in a *SyntaxError.
//
// Fault implements the error interface, and a SyntaxError unwraps to its
// fault, so callers can match specific faults with errors.Is.
type Fault byte

// Constants defining the valid Fault values.
const (
	NoFault        Fault = iota // the zero value; never reported as an error
	InvalidString               // malformed string contents (reserved, not currently reported)
	InvalidNumber               // required digits after "." or exponent are missing
	MissingColon                // object member without ":" after its key
	MissingComma                // container members not separated by ","
	MissingQuote                // unterminated string, or an object key without quotes
	MissingBracket              // input ended inside an array
	MissingBrace                // input ended inside an object
	Undefined                   // no value was found where one is required

	numFaults // number of defined faults; not a valid Fault
)

var faultStr = [numFaults]string{
	NoFault:        "no fault",
	InvalidString:  "invalid string",
	InvalidNumber:  "invalid number",
	MissingColon:   "missing colon",
	MissingComma:   "missing comma",
	MissingQuote:   "missing quote",
	MissingBracket: "missing close bracket",
	MissingBrace:   "missing close brace",
	Undefined:      "undefined value",
}

func (f Fault) String() string {
	if f >= numFaults {
		return fmt.Sprintf("fault(%d)", byte(f))
	}
	return faultStr[f]
}

// Error satisfies the error interface.
func (f Fault) Error() string { return f.String() }

// A SyntaxError reports a structural fault and the location in the input
// where it was detected.
type SyntaxError struct {
	Location LineCol
	Fault    Fault
}

// Error satisfies the error interface.
func (s *SyntaxError) Error() string {
	return fmt.Sprintf("at %s: %s", s.Location, s.Fault)
}

// Unwrap returns the fault reported by s.
func (s *SyntaxError) Unwrap() error { return s.Fault }
