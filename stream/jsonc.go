package stream

import (
	"bytes"
	"io"

	"github.com/tidwall/jsonc"
)

// StripComments reads all of r and returns a reader over the same text
// with comments and trailing commas removed. Byte offsets are preserved:
// removed text is replaced by spaces, so error offsets reported by the
// lexer still point into the original input.
func StripComments(r io.Reader) (io.Reader, error) {
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return bytes.NewReader(jsonc.ToJSONInPlace(d)), nil
}
