// Package goquery provides a DOM-based implementation of ogimage.Scanner.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/ogimage"
	"golang.org/x/net/html"
)

// Ensure Scanner implements ogimage.Scanner at compile time.
var _ ogimage.Scanner = (*Scanner)(nil)

// Scanner parses the whole document into a DOM and reports each element in
// document order. The HTML5 tree builder may synthesize html, head and body
// elements that do not appear in the source; they are reported like any other.
// Scripting is disabled, so elements inside noscript are parsed and reported.
type Scanner struct{}

// NewScanner creates a new Scanner.
func NewScanner() *Scanner {
	return &Scanner{}
}

// Scan calls fn for every element in doc.
func (s *Scanner) Scan(doc string, fn ogimage.StartTagFunc) {
	root, err := html.ParseWithOptions(strings.NewReader(doc), html.ParseOptionEnableScripting(false))
	if err != nil {
		return
	}
	d := goquery.NewDocumentFromNode(root)

	d.Find("*").Each(func(_ int, sel *goquery.Selection) {
		n := sel.Get(0)
		tag := ogimage.StartTag{Name: goquery.NodeName(sel)}
		for _, a := range n.Attr {
			tag.Attrs = append(tag.Attrs, ogimage.Attr{Name: a.Key, Value: a.Val})
		}
		fn(tag)
	})
}
