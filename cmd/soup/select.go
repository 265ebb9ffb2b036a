package main

import (
	"bytes"
	"fmt"
	"net/url"
	"strings"

	"github.com/fwojciec/soup"
	"github.com/fwojciec/soup/fs"
)

// attrFilter keeps elements whose attribute name equals value.
type attrFilter struct {
	name  string
	value string
}

// Run executes the select command.
func (c *SelectCmd) Run(deps *Dependencies) error {
	filters, err := parseAttrFilters(c.Attr)
	if err != nil {
		return err
	}

	raw, err := c.load(deps)
	if err != nil {
		return err
	}

	parser, ok := deps.Parsers[c.Backend]
	if !ok {
		return soup.Errorf(soup.EINVALID, "unknown backend %q", c.Backend)
	}

	doc, err := parser.Parse(bytes.NewReader(raw))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", soup.ErrorMessage(err))
		return err
	}

	elems, err := doc.Select(c.Selector)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", soup.ErrorMessage(err))
		return err
	}

	for _, f := range filters {
		elems = soup.FilterAttr(elems, f.name, f.value)
	}

	if c.Format == FormatText {
		for _, text := range soup.Texts(elems) {
			fmt.Fprintln(deps.Stdout, text)
		}
		return nil
	}

	for _, el := range elems {
		out, err := c.render(deps, el)
		if err != nil {
			return err
		}
		fmt.Fprintln(deps.Stdout, out)
	}

	return nil
}

// load returns the raw markup of the source: fetched when it is an HTTP(S)
// URL, read from disk otherwise.
func (c *SelectCmd) load(deps *Dependencies) ([]byte, error) {
	if !isWebURL(c.Source) {
		raw, err := fs.ReadFile(c.Source)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", soup.ErrorMessage(err))
			return nil, err
		}
		return raw, nil
	}

	raw, ok := deps.Getter.Get(deps.Ctx, c.Source).Bytes()
	if !ok {
		return nil, fmt.Errorf("no HTML content fetched from %s", c.Source)
	}
	return raw, nil
}

// render returns the markup of el, converted to Markdown for the markdown
// format.
func (c *SelectCmd) render(deps *Dependencies, el soup.Element) (string, error) {
	html, err := el.HTML()
	if err != nil {
		return "", err
	}
	if c.Format != FormatMarkdown {
		return html, nil
	}
	return deps.Converter.Convert(html)
}

// parseAttrFilters parses NAME=VALUE pairs. The value may be empty.
func parseAttrFilters(specs []string) ([]attrFilter, error) {
	filters := make([]attrFilter, 0, len(specs))
	for _, s := range specs {
		name, value, ok := strings.Cut(s, "=")
		if !ok || name == "" {
			return nil, soup.Errorf(soup.EINVALID, "invalid attribute filter %q, expected NAME=VALUE", s)
		}
		filters = append(filters, attrFilter{name: name, value: value})
	}
	return filters, nil
}

// isWebURL reports whether source is an absolute http or https URL.
func isWebURL(source string) bool {
	u, err := url.Parse(source)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
