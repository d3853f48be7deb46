// Package slog provides logging decorators for ogimage services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/ogimage"
)

// Ensure LoggingDocumentReader implements ogimage.DocumentReader.
var _ ogimage.DocumentReader = (*LoggingDocumentReader)(nil)

// LoggingDocumentReader wraps a DocumentReader with logging.
type LoggingDocumentReader struct {
	next   ogimage.DocumentReader
	logger *slog.Logger
}

// NewLoggingDocumentReader creates a new LoggingDocumentReader.
func NewLoggingDocumentReader(next ogimage.DocumentReader, logger *slog.Logger) *LoggingDocumentReader {
	return &LoggingDocumentReader{next: next, logger: logger}
}

// ReadDocument delegates to the wrapped reader and logs the operation.
func (r *LoggingDocumentReader) ReadDocument(ctx context.Context, path string) (doc string, err error) {
	defer func(begin time.Time) {
		r.logger.Info("read document",
			"path", path,
			"bytes", len(doc),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.ReadDocument(ctx, path)
}
