// Package htmlquery implements soup.Parser with htmlquery and XPath.
package htmlquery

import (
	"io"

	"github.com/antchfx/htmlquery"
	"github.com/fwojciec/soup"
	"github.com/fwojciec/soup/charset"
	"golang.org/x/net/html"
)

// Ensure types implement the soup interfaces at compile time.
var (
	_ soup.Parser   = (*Parser)(nil)
	_ soup.Document = (*Document)(nil)
	_ soup.Element  = (*Element)(nil)
)

// Parser parses HTML permissively and answers XPath queries.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse reads r and builds a Document.
func (p *Parser) Parse(r io.Reader) (soup.Document, error) {
	r, err := charset.NewReader(r)
	if err != nil {
		return nil, err
	}

	root, err := htmlquery.Parse(r)
	if err != nil {
		return nil, err
	}

	return &Document{root: root}, nil
}

// Document is a parsed HTML tree queried with XPath.
type Document struct {
	root *html.Node
}

// Select evaluates an XPath expression and returns the matched elements in
// document order. A bare tag name is treated as //name.
// Non-element results such as text or attribute nodes are skipped.
func (d *Document) Select(selector string) ([]soup.Element, error) {
	nodes, err := htmlquery.QueryAll(d.root, soup.DescendantPath(selector))
	if err != nil {
		return nil, soup.Errorf(soup.EINVALID, "invalid XPath %q: %v", selector, err)
	}

	elems := make([]soup.Element, 0, len(nodes))
	for _, n := range nodes {
		if n.Type != html.ElementNode {
			continue
		}
		elems = append(elems, &Element{node: n})
	}

	return elems, nil
}

// Element is a single matched node.
type Element struct {
	node *html.Node
}

// Tag returns the element name.
func (e *Element) Tag() string {
	return e.node.Data
}

// Attr returns the named attribute value and whether it exists.
func (e *Element) Attr(name string) (string, bool) {
	if !htmlquery.ExistsAttr(e.node, name) {
		return "", false
	}
	return htmlquery.SelectAttr(e.node, name), true
}

// Text returns the combined text of all descendants.
func (e *Element) Text() string {
	return htmlquery.InnerText(e.node)
}

// HTML returns the outer HTML of the element.
func (e *Element) HTML() (string, error) {
	return htmlquery.OutputHTML(e.node, true), nil
}
