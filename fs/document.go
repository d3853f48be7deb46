// Package fs provides a filesystem implementation of ogimage.DocumentReader.
package fs

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/fwojciec/ogimage"
	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// Ensure DocumentReader implements ogimage.DocumentReader at compile time.
var _ ogimage.DocumentReader = (*DocumentReader)(nil)

// DocumentReader reads saved pages from disk. Content must be UTF-8;
// a leading byte order mark is kept as part of the text.
type DocumentReader struct{}

// NewDocumentReader creates a new DocumentReader.
func NewDocumentReader() *DocumentReader {
	return &DocumentReader{}
}

func (r *DocumentReader) ReadDocument(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	f, err := os.Open(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return "", ogimage.Errorf(ogimage.ENOTFOUND, "document %q not found", path)
	case errors.Is(err, os.ErrPermission):
		return "", ogimage.Errorf(ogimage.EUNAUTHORIZED, "document %q is not readable", path)
	case err != nil:
		return "", ogimage.Errorf(ogimage.EINTERNAL, "open document %q: %v", path, err)
	}
	defer f.Close()

	b, err := io.ReadAll(transform.NewReader(f, encoding.UTF8Validator))
	if errors.Is(err, encoding.ErrInvalidUTF8) {
		return "", ogimage.Errorf(ogimage.EINVALID, "document %q is not valid UTF-8", path)
	} else if err != nil {
		return "", ogimage.Errorf(ogimage.EINTERNAL, "read document %q: %v", path, err)
	}
	return string(b), nil
}
