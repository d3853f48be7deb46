package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/ogimage"
)

// Ensure LoggingScanner implements ogimage.Scanner.
var _ ogimage.Scanner = (*LoggingScanner)(nil)

// LoggingScanner wraps a Scanner and logs how much markup it scanned.
type LoggingScanner struct {
	next   ogimage.Scanner
	logger *slog.Logger
}

// NewLoggingScanner creates a new LoggingScanner.
func NewLoggingScanner(next ogimage.Scanner, logger *slog.Logger) *LoggingScanner {
	return &LoggingScanner{next: next, logger: logger}
}

// Scan delegates to the wrapped scanner, counting the tags it reports.
func (s *LoggingScanner) Scan(doc string, fn ogimage.StartTagFunc) {
	begin := time.Now()
	tags := 0
	s.next.Scan(doc, func(tag ogimage.StartTag) {
		tags++
		fn(tag)
	})
	s.logger.Info("scan",
		"bytes", len(doc),
		"tags", tags,
		"duration", time.Since(begin),
	)
}
