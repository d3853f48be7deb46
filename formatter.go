package ogimage

// NotFound is printed when a document has no usable og:image.
const NotFound = "Not found"

// FormatResult formats r for display.
// The URL is returned verbatim; an absent or empty URL yields NotFound.
func FormatResult(r Result) string {
	if !r.Found || r.URL == "" {
		return NotFound
	}
	return r.URL
}
