// Package etree implements soup.Parser for XML documents using etree.
package etree

import (
	"encoding/xml"
	"io"
	"slices"
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/soup"
	"golang.org/x/net/html/charset"
)

// Ensure types implement the soup interfaces at compile time.
var (
	_ soup.Parser   = (*Parser)(nil)
	_ soup.Document = (*Document)(nil)
	_ soup.Element  = (*Element)(nil)
)

// Parser parses XML and XHTML. It runs etree in permissive mode with HTML
// entities and auto-closed void elements, but unlike the HTML parsers it
// still rejects input that cannot be tokenized.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse reads r and builds a Document. Returns EINVALID for unparseable XML.
func (p *Parser) Parse(r io.Reader) (soup.Document, error) {
	doc := etree.NewDocument()
	doc.ReadSettings.Permissive = true
	doc.ReadSettings.AutoClose = xml.HTMLAutoClose
	doc.ReadSettings.Entity = xml.HTMLEntity
	doc.ReadSettings.CharsetReader = charset.NewReaderLabel

	if _, err := doc.ReadFrom(r); err != nil {
		return nil, soup.Errorf(soup.EINVALID, "parsing XML: %v", err)
	}

	return &Document{doc: doc}, nil
}

// Document is a parsed XML tree queried with etree paths.
type Document struct {
	doc *etree.Document
}

// Select evaluates an etree path and returns the matched elements in
// document order. A bare tag name is treated as //name.
func (d *Document) Select(selector string) ([]soup.Element, error) {
	path, err := etree.CompilePath(soup.DescendantPath(selector))
	if err != nil {
		return nil, soup.Errorf(soup.EINVALID, "invalid path %q: %v", selector, err)
	}

	found := d.doc.FindElementsPath(path)
	sortDocumentOrder(d.doc, found)

	elems := make([]soup.Element, 0, len(found))
	for _, el := range found {
		elems = append(elems, &Element{el: el})
	}

	return elems, nil
}

// Element is a single matched element.
type Element struct {
	el *etree.Element
}

// Tag returns the local element name.
func (e *Element) Tag() string {
	return e.el.Tag
}

// Attr returns the named attribute value and whether it exists.
func (e *Element) Attr(name string) (string, bool) {
	a := e.el.SelectAttr(name)
	if a == nil {
		return "", false
	}
	return a.Value, true
}

// Text returns the combined character data of all descendants.
// etree's own Element.Text only returns the leading character data.
func (e *Element) Text() string {
	var b strings.Builder
	writeText(&b, e.el)
	return b.String()
}

// HTML returns the serialized element.
func (e *Element) HTML() (string, error) {
	doc := etree.NewDocument()
	doc.SetRoot(e.el.Copy())
	return doc.WriteToString()
}

func writeText(b *strings.Builder, el *etree.Element) {
	for _, tok := range el.Child {
		switch t := tok.(type) {
		case *etree.CharData:
			b.WriteString(t.Data)
		case *etree.Element:
			writeText(b, t)
		}
	}
}

// sortDocumentOrder sorts elems by their position in doc. etree evaluates
// descendant steps breadth-first.
func sortDocumentOrder(doc *etree.Document, elems []*etree.Element) {
	if len(elems) < 2 {
		return
	}

	pos := make(map[*etree.Element]int)
	var walk func(el *etree.Element)
	walk = func(el *etree.Element) {
		pos[el] = len(pos)
		for _, c := range el.ChildElements() {
			walk(c)
		}
	}
	walk(&doc.Element)

	slices.SortStableFunc(elems, func(a, b *etree.Element) int {
		return pos[a] - pos[b]
	})
}
