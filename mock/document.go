package mock

import (
	"context"

	"github.com/fwojciec/ogimage"
)

var _ ogimage.DocumentReader = (*DocumentReader)(nil)

// DocumentReader is a mock implementation of ogimage.DocumentReader.
type DocumentReader struct {
	ReadDocumentFn func(ctx context.Context, path string) (string, error)
}

func (r *DocumentReader) ReadDocument(ctx context.Context, path string) (string, error) {
	return r.ReadDocumentFn(ctx, path)
}
