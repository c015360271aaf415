package jwcc_test

import (
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/creachadair/jval"
	"github.com/creachadair/jval/jwcc"
)

const testInput = `// Example configuration.
{
  "name": "jwcc", // the name
  /* A block comment,
     spanning lines. */
  "count": 3,
  "tags": [
    "a",
    "b",
  ],
}`

func TestParse(t *testing.T) {
	v, err := jwcc.Parse(strings.NewReader(testInput))
	if err != nil {
		t.Fatalf("Parse: unexpected error: %v", err)
	}
	const want = `{"count":3,"name":"jwcc","tags":["a","b"]}`
	if got := v.JSON(); got != want {
		t.Errorf("Parse: got %#q, want %#q", got, want)
	}
}

func TestParseErrors(t *testing.T) {
	t.Run("Syntax", func(t *testing.T) {
		v, err := jwcc.ParseBytes([]byte(`{"bad": }`))
		if err == nil {
			t.Fatalf("ParseBytes: got %v, want error", v)
		}
		t.Logf("Got expected error: %v", err)
	})
	t.Run("Fault", func(t *testing.T) {
		// Standard JSON admits a "+" exponent sign, but the tree parser does
		// not, so this fault surfaces only after standardization.
		v, err := jwcc.ParseBytes([]byte(`{"n": 1e+5}`))
		if err == nil {
			t.Fatalf("ParseBytes: got %v, want error", v)
		}
		if !errors.Is(err, jval.InvalidNumber) {
			t.Errorf("ParseBytes: got error %v, want %v", err, jval.InvalidNumber)
		}
	})
	t.Run("Reader", func(t *testing.T) {
		bad := errors.New("bogus")
		if _, err := jwcc.Parse(iotest.ErrReader(bad)); !errors.Is(err, bad) {
			t.Errorf("Parse: got error %v, want %v", err, bad)
		}
	})
}
