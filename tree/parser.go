// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package tree

import (
	"errors"
	"math"

	"github.com/creachadair/jval"
	"go4.org/mem"
)

// Parse parses a single JSON value from the beginning of data. Input after
// the first complete value is neither consumed nor diagnosed; use
// ParseCursor to inspect the remainder. In case of error the concrete type
// of the error is *jval.SyntaxError.
func Parse(data []byte) (*Value, error) { return ParseCursor(jval.NewCursor(data)) }

// ParseString parses a single JSON value from the beginning of s.
func ParseString(s string) (*Value, error) { return ParseCursor(jval.NewCursorString(s)) }

// ParseCursor parses a single JSON value at the position of c. On success
// the cursor is left positioned after the value. If no value starts at the
// position, including when no input remains, ParseCursor reports
// jval.Undefined.
func ParseCursor(c *jval.Cursor) (*Value, error) {
	v, err := parseValue(c)
	if err == errNoMatch {
		return nil, syntaxErr(c, jval.Undefined)
	}
	return v, err
}

// errNoMatch is reported inside the parser by a production that does not
// recognize the input at the cursor position. A production reporting it must
// consume nothing, so that the dispatcher can try the next production.
var errNoMatch = errors.New("no production matched")

func syntaxErr(c *jval.Cursor, f jval.Fault) error {
	return &jval.SyntaxError{Location: c.Location(), Fault: f}
}

// productions, in fixed dispatch order. Each consumes the whitespace-free
// prefix it positively matches and nothing else. The slice is populated in
// init to break the initialization cycle with parseValue.
var productions []func(*jval.Cursor) (*Value, error)

func init() {
	productions = []func(*jval.Cursor) (*Value, error){
		parseString, parseBool, parseNull, parseNumber, parseObject, parseArray,
	}
}

// parseValue skips leading whitespace and hands the input to the first
// production that recognizes it.
func parseValue(c *jval.Cursor) (*Value, error) {
	c.SkipSpace()
	for _, parse := range productions {
		v, err := parse(c)
		if err != errNoMatch {
			return v, err
		}
	}
	return nil, errNoMatch
}

// parseString consumes an opening quote and the raw bytes through the next
// quote. A backslash is not special: string contents are not unescaped. An
// unterminated string consumes the rest of the input and reports
// jval.MissingQuote.
func parseString(c *jval.Cursor) (*Value, error) {
	if ch, ok := c.Peek(); !ok || ch != '"' {
		return nil, errNoMatch
	}
	c.Skip(1)
	text, ok := c.TakeUntil('"')
	if !ok {
		return nil, syntaxErr(c, jval.MissingQuote)
	}
	return FromString(text.StringCopy()), nil
}

var (
	litTrue  = mem.S("true")
	litFalse = mem.S("false")
	litNull  = mem.S("null")
)

// parseBool matches the literal prefixes "true" and "false". The comparison
// is bounded by the remaining input, so a short buffer near the end of input
// simply does not match.
func parseBool(c *jval.Cursor) (*Value, error) {
	if c.HasPrefix(litTrue) {
		c.Skip(litTrue.Len())
		return FromBool(true), nil
	}
	if c.HasPrefix(litFalse) {
		c.Skip(litFalse.Len())
		return FromBool(false), nil
	}
	return nil, errNoMatch
}

// parseNull matches the literal prefix "null".
func parseNull(c *jval.Cursor) (*Value, error) {
	if !c.HasPrefix(litNull) {
		return nil, errNoMatch
	}
	c.Skip(litNull.Len())
	return new(Value), nil
}

// parseNumber consumes an optional "-", a run of integer digits, an optional
// fraction ("." with at least one digit), and an optional exponent ("e" or
// "E", an optional "-", and at least one digit). A "." or exponent marker
// without digits reports jval.InvalidNumber.
//
// The kind of the result is chosen by value, not spelling, except that a
// fraction always forces Float: "42" and "4e1" are Int, "42.0" and "5e-1"
// are Float. The integer digit run may be empty, so a bare "-" parses as the
// integer zero.
func parseNumber(c *jval.Cursor) (*Value, error) {
	ch, ok := c.Peek()
	if !ok || (ch != '-' && !isDigit(ch)) {
		return nil, errNoMatch
	}
	neg := ch == '-'
	if neg {
		c.Skip(1)
	}
	n := float64(scanUint(c))

	var frac bool
	if ch, ok := c.Peek(); ok && ch == '.' {
		c.Skip(1)
		if ch, ok := c.Peek(); !ok || !isDigit(ch) {
			return nil, syntaxErr(c, jval.InvalidNumber)
		}
		n += scanFrac(c)
		frac = true
	}
	if ch, ok := c.Peek(); ok && (ch == 'e' || ch == 'E') {
		c.Skip(1)
		var expNeg bool
		if ch, ok := c.Peek(); ok && ch == '-' {
			expNeg = true
			c.Skip(1)
		}
		if ch, ok := c.Peek(); !ok || !isDigit(ch) {
			return nil, syntaxErr(c, jval.InvalidNumber)
		}
		exp := scanUint(c)
		if expNeg {
			exp = -exp
		}
		n *= math.Pow(10, float64(exp))
	}
	if neg {
		n = -n
	}

	// The integral check is bounded at 2^53 so the conversion to int stays
	// within the exact range of a float64.
	if !frac && n == math.Round(n) && math.Abs(n) <= 1<<53 {
		return FromInt(int(n)), nil
	}
	return FromFloat(n), nil
}

// parseObject consumes "{", zero or more comma-separated `"key": value`
// members, and "}". Duplicate keys keep the last value. A fault inside a
// member discards the members accumulated so far.
func parseObject(c *jval.Cursor) (*Value, error) {
	if ch, ok := c.Peek(); !ok || ch != '{' {
		return nil, errNoMatch
	}
	c.Skip(1)
	obj := &Value{kind: Object, mems: make(map[string]*Value)}

	c.SkipSpace()
	if ch, ok := c.Peek(); ok && ch == '}' {
		c.Skip(1)
		return obj, nil
	}
	for {
		ch, ok := c.Peek()
		if !ok {
			return nil, syntaxErr(c, jval.MissingBrace)
		}
		if ch != '"' {
			return nil, syntaxErr(c, jval.MissingQuote)
		}
		c.Skip(1)
		key, ok := c.TakeUntil('"')
		if !ok {
			return nil, syntaxErr(c, jval.MissingQuote)
		}
		c.SkipSpace()
		if ch, ok := c.Peek(); !ok || ch != ':' {
			return nil, syntaxErr(c, jval.MissingColon)
		}
		c.Skip(1)

		m, err := parseValue(c)
		if err == errNoMatch {
			return nil, syntaxErr(c, jval.Undefined)
		} else if err != nil {
			return nil, err
		}
		obj.mems[key.StringCopy()] = m

		c.SkipSpace()
		ch, ok = c.Peek()
		if !ok {
			return nil, syntaxErr(c, jval.MissingBrace)
		}
		if ch == '}' {
			c.Skip(1)
			return obj, nil
		}
		if ch != ',' {
			return nil, syntaxErr(c, jval.MissingComma)
		}
		c.Skip(1)
		c.SkipSpace()
	}
}

// parseArray consumes "[", zero or more comma-separated elements, and "]".
// An immediately empty array is recognized before any element is attempted.
// A fault inside an element discards the elements accumulated so far.
func parseArray(c *jval.Cursor) (*Value, error) {
	if ch, ok := c.Peek(); !ok || ch != '[' {
		return nil, errNoMatch
	}
	c.Skip(1)
	arr := &Value{kind: Array}

	c.SkipSpace()
	if ch, ok := c.Peek(); ok && ch == ']' {
		c.Skip(1)
		return arr, nil
	}
	for {
		e, err := parseValue(c)
		if err == errNoMatch {
			return nil, syntaxErr(c, jval.Undefined)
		} else if err != nil {
			return nil, err
		}
		arr.elts = append(arr.elts, e)

		c.SkipSpace()
		ch, ok := c.Peek()
		if !ok {
			return nil, syntaxErr(c, jval.MissingBracket)
		}
		if ch == ']' {
			c.Skip(1)
			return arr, nil
		}
		if ch != ',' {
			return nil, syntaxErr(c, jval.MissingComma)
		}
		c.Skip(1)
	}
}

// scanUint consumes the digit run at the cursor position and returns its
// value. An empty run yields zero.
func scanUint(c *jval.Cursor) int {
	var n int
	for {
		ch, ok := c.Peek()
		if !ok || !isDigit(ch) {
			return n
		}
		c.Skip(1)
		n = n*10 + int(ch-'0')
	}
}

// scanFrac consumes the digit run at the cursor position and returns its
// value as a fraction, each digit weighted by successive powers of one
// tenth.
func scanFrac(c *jval.Cursor) float64 {
	n, w := 0.0, 0.1
	for {
		ch, ok := c.Peek()
		if !ok || !isDigit(ch) {
			return n
		}
		c.Skip(1)
		n += float64(ch-'0') * w
		w *= 0.1
	}
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
