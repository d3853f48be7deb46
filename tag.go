package ogimage

// Attr is a single attribute as it appears on a start tag.
type Attr struct {
	Name  string
	Value string
}

// StartTag is a start tag observed while scanning a document.
// Scanners lower-case tag and attribute names and decode entities in values.
// Attributes keep their document order; repeated names are not collapsed.
type StartTag struct {
	Name  string
	Attrs []Attr
}

// Attr returns the value of the named attribute.
// When the name is repeated, the last occurrence wins.
func (t StartTag) Attr(name string) (string, bool) {
	for i := len(t.Attrs) - 1; i >= 0; i-- {
		if t.Attrs[i].Name == name {
			return t.Attrs[i].Value, true
		}
	}
	return "", false
}

// StartTagFunc is called once per start tag, in document order.
type StartTagFunc func(StartTag)

// Scanner produces start tags from raw markup.
// Implementations are permissive: malformed fragments are skipped, never reported.
type Scanner interface {
	// Scan calls fn for every start tag in doc, including self-closing ones.
	// Text, comments, end tags and raw text inside script or style are skipped.
	Scan(doc string, fn StartTagFunc)
}
