package ogimage

import "context"

// DocumentReader loads the raw text of a saved page.
type DocumentReader interface {
	// ReadDocument returns the full decoded content of the document at path.
	// Returns ENOTFOUND if the document does not exist and EINVALID if it
	// is not valid UTF-8.
	ReadDocument(ctx context.Context, path string) (string, error)
}
