package mock

import "github.com/fwojciec/soup"

var (
	_ soup.Document = (*Document)(nil)
	_ soup.Element  = (*Element)(nil)
)

// Document is a mock implementation of soup.Document.
type Document struct {
	SelectFn func(selector string) ([]soup.Element, error)
}

func (d *Document) Select(selector string) ([]soup.Element, error) {
	return d.SelectFn(selector)
}

// Element is a static implementation of soup.Element.
// Unlike the other mocks it holds data rather than functions, which keeps
// filter and formatting tests short.
type Element struct {
	TagName    string
	Attributes map[string]string
	Content    string
	Markup     string
}

func (e *Element) Tag() string {
	return e.TagName
}

func (e *Element) Attr(name string) (string, bool) {
	v, ok := e.Attributes[name]
	return v, ok
}

func (e *Element) Text() string {
	return e.Content
}

func (e *Element) HTML() (string, error) {
	return e.Markup, nil
}
