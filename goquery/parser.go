// Package goquery implements soup.Parser with goquery and CSS selectors.
package goquery

import (
	"io"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/fwojciec/soup"
	"github.com/fwojciec/soup/charset"
)

// Ensure types implement the soup interfaces at compile time.
var (
	_ soup.Parser   = (*Parser)(nil)
	_ soup.Document = (*Document)(nil)
	_ soup.Element  = (*Element)(nil)
)

// Parser parses HTML permissively with the HTML5 parsing algorithm.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse reads r and builds a Document. Malformed markup is repaired the way
// browsers do; only read errors are returned.
func (p *Parser) Parse(r io.Reader) (soup.Document, error) {
	r, err := charset.NewReader(r)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}

	return &Document{doc: doc}, nil
}

// Document is a parsed HTML tree queried with CSS selectors.
type Document struct {
	doc *goquery.Document
}

// Select returns the elements matching the CSS selector in document order.
func (d *Document) Select(selector string) ([]soup.Element, error) {
	m, err := cascadia.Compile(selector)
	if err != nil {
		return nil, soup.Errorf(soup.EINVALID, "invalid selector %q: %v", selector, err)
	}

	sel := d.doc.FindMatcher(m)
	elems := make([]soup.Element, 0, sel.Length())
	sel.Each(func(_ int, s *goquery.Selection) {
		elems = append(elems, &Element{sel: s})
	})

	return elems, nil
}

// Element is a single matched node.
type Element struct {
	sel *goquery.Selection
}

// Tag returns the lowercased element name.
func (e *Element) Tag() string {
	return goquery.NodeName(e.sel)
}

// Attr returns the named attribute value and whether it exists.
func (e *Element) Attr(name string) (string, bool) {
	return e.sel.Attr(name)
}

// Text returns the combined text of all descendants.
func (e *Element) Text() string {
	return e.sel.Text()
}

// HTML returns the outer HTML of the element.
func (e *Element) HTML() (string, error) {
	return goquery.OuterHtml(e.sel)
}
