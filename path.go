package soup

// DescendantPath expands a bare tag name such as "p" into the path
// expression "//p", which matches every descendant with that name.
// Any other expression is returned unchanged.
func DescendantPath(expr string) string {
	if isName(expr) {
		return "//" + expr
	}
	return expr
}

// isName reports whether s is a plain XML name without path syntax.
func isName(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '_':
		case i > 0 && (r >= '0' && r <= '9' || r == '-' || r == '.' || r == ':'):
		default:
			return false
		}
	}
	return true
}
