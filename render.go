package guidefmt

const copyrightSign = "©"

// Rendered returns the text a viewer sees for the token: the display text
// of a link, the bare character of an escape, nothing for an attribute,
// and the source text itself for words and spaces.
func (t Token) Rendered() string {
	switch t.Kind {
	case tokenLink:
		return t.label
	case tokenAttribute:
		return ""
	case tokenEscape:
		if t.Markup[1:] == "(" {
			return copyrightSign
		}
		return t.Markup[1:]
	default:
		return t.Markup
	}
}

// Target returns the target node name of a link token, or "".
func (t Token) Target() string {
	return t.target
}
