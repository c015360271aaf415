// Package jwcc parses JSON With Commas and Comments (JWCC) as defined by
// https://nigeltao.github.io/blog/2021/json-with-commas-comments.html into
// plain value trees.
//
// Input is standardized to plain JSON before parsing: comments and trailing
// commas are replaced with whitespace, so positions reported for parse errors
// refer to the equivalent location in the original input. The comments
// themselves are not preserved in the tree. String contents follow the rules
// of the tree package and are read raw, with no escape processing.
package jwcc

import (
	"io"

	"github.com/creachadair/jval/tree"
	"github.com/tailscale/hujson"
)

// Parse parses a single JWCC value from r.
func Parse(r io.Reader) (*tree.Value, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return ParseBytes(data)
}

// ParseBytes parses a single JWCC value from data.
func ParseBytes(data []byte) (*tree.Value, error) {
	std, err := hujson.Standardize(data)
	if err != nil {
		return nil, err
	}
	return tree.Parse(std)
}
