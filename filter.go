package soup

// FilterAttr returns the elements whose name attribute equals value.
// Elements without the attribute are skipped. Order is preserved.
func FilterAttr(elems []Element, name, value string) []Element {
	var out []Element
	for _, el := range elems {
		if v, ok := el.Attr(name); ok && v == value {
			out = append(out, el)
		}
	}
	return out
}

// Texts returns the text content of each element in order.
func Texts(elems []Element) []string {
	if len(elems) == 0 {
		return nil
	}

	texts := make([]string, 0, len(elems))
	for _, el := range elems {
		texts = append(texts, el.Text())
	}
	return texts
}
