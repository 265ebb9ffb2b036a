// Package charset decodes markup to UTF-8 using golang.org/x/net/html/charset.
package charset

import (
	"bytes"
	"io"
	"unicode/utf8"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// NewReader returns a reader that yields r decoded to UTF-8.
//
// A byte order mark decides the encoding. Otherwise input that is valid
// UTF-8 as a whole is passed through unchanged, and only invalid input is
// decoded with the encoding named by a <meta> declaration or sniffed from
// the first 1024 bytes. Empty input yields an empty reader.
func NewReader(r io.Reader) (io.Reader, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	e, _, certain := charset.DetermineEncoding(content, "")
	if e == encoding.Nop || (!certain && utf8.Valid(content)) {
		return bytes.NewReader(content), nil
	}
	return transform.NewReader(bytes.NewReader(content), e.NewDecoder()), nil
}
