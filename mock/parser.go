package mock

import (
	"io"

	"github.com/fwojciec/soup"
)

var _ soup.Parser = (*Parser)(nil)

// Parser is a mock implementation of soup.Parser.
type Parser struct {
	ParseFn func(r io.Reader) (soup.Document, error)
}

func (p *Parser) Parse(r io.Reader) (soup.Document, error) {
	return p.ParseFn(r)
}
