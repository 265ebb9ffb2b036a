package soup

import "io"

// Parser builds a Document from raw markup.
type Parser interface {
	// Parse reads r fully and returns the parsed document.
	// HTML parsers are permissive: malformed markup still yields a
	// Document, and errors come only from reading r.
	Parse(r io.Reader) (Document, error)
}
