package ogimage

import "strings"

// ImageProperty is the Open Graph property naming a page's representative image.
const ImageProperty = "og:image"

// Result is the outcome of an og:image search.
type Result struct {
	// URL is the content of the last matching meta tag.
	URL string

	// Found reports whether any matching meta tag carried a content attribute.
	Found bool
}

// ImageContent returns the content attribute of tag if tag is a
// <meta property="og:image"> element. The property value is matched exactly,
// so "OG:Image" does not match. A matching tag without content reports false.
func ImageContent(tag StartTag) (string, bool) {
	if !strings.EqualFold(tag.Name, "meta") {
		return "", false
	}
	if property, ok := tag.Attr("property"); !ok || property != ImageProperty {
		return "", false
	}
	return tag.Attr("content")
}

// FindImage scans doc and returns the content of the last og:image meta tag.
func FindImage(s Scanner, doc string) Result {
	var result Result
	s.Scan(doc, func(tag StartTag) {
		if content, ok := ImageContent(tag); ok {
			result = Result{URL: content, Found: true}
		}
	})
	return result
}
