package mock

import "github.com/fwojciec/soup"

var _ soup.Converter = (*Converter)(nil)

// Converter is a mock implementation of soup.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
