// Package htmltomarkdown renders the outer HTML of a selected element as
// Markdown for `soup select --format markdown`.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/soup"
)

var _ soup.Converter = (*Converter)(nil)

// Converter renders element markup as CommonMark plus tables.
type Converter struct {
	md *converter.Converter
}

func NewConverter() *Converter {
	return &Converter{
		md: converter.NewConverter(converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		)),
	}
}

// Convert returns the Markdown for one element's outer HTML.
// Markup that is empty or only whitespace is EINVALID.
func (c *Converter) Convert(markup string) (string, error) {
	if strings.TrimSpace(markup) == "" {
		return "", soup.Errorf(soup.EINVALID, "no markup to convert")
	}
	return c.md.ConvertString(markup)
}
