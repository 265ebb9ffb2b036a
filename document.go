package soup

// Document is a parsed markup tree. A Document is read-only once built.
type Document interface {
	// Select returns every element matching selector in document order.
	// A bare tag name (e.g. "p") matches all descendant elements with that
	// name. Returns EINVALID if the selector cannot be compiled.
	Select(selector string) ([]Element, error)
}

// Element is a single tag node of a Document.
type Element interface {
	// Tag returns the element name.
	Tag() string

	// Attr returns the value of the named attribute and whether it is
	// present.
	Attr(name string) (string, bool)

	// Text returns the concatenation of all descendant text nodes in
	// document order, with whitespace exactly as in the source.
	Text() string

	// HTML returns the outer markup of the element.
	HTML() (string, error)
}
