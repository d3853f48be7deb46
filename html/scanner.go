// Package html provides a streaming implementation of ogimage.Scanner
// built on the golang.org/x/net/html tokenizer.
package html

import (
	"strings"

	"github.com/fwojciec/ogimage"
	"golang.org/x/net/html"
)

// Ensure Scanner implements ogimage.Scanner at compile time.
var _ ogimage.Scanner = (*Scanner)(nil)

// Scanner reports start tags as the tokenizer produces them, without
// building a tree. Malformed markup is tokenized the way browsers would;
// nothing is reported as an error.
type Scanner struct{}

// NewScanner creates a new Scanner.
func NewScanner() *Scanner {
	return &Scanner{}
}

// Scan calls fn for every start tag and self-closing tag in doc.
// The tokenizer lower-cases names and unescapes attribute values.
// Content of noscript is tokenized as markup, as it is with scripting disabled.
func (s *Scanner) Scan(doc string, fn ogimage.StartTagFunc) {
	z := html.NewTokenizer(strings.NewReader(doc))
	for {
		switch z.Next() {
		case html.ErrorToken:
			// io.EOF is the only error a strings.Reader can produce.
			return

		case html.StartTagToken, html.SelfClosingTagToken:
			tag := startTag(z)
			if tag.Name == "noscript" {
				z.NextIsNotRawText()
			}
			fn(tag)
		}
	}
}

// startTag copies the current tag out of the tokenizer's buffer.
func startTag(z *html.Tokenizer) ogimage.StartTag {
	name, moreAttr := z.TagName()
	tag := ogimage.StartTag{Name: string(name)}
	for moreAttr {
		var key, val []byte
		key, val, moreAttr = z.TagAttr()
		tag.Attrs = append(tag.Attrs, ogimage.Attr{Name: string(key), Value: string(val)})
	}
	return tag
}
