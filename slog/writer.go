package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docpull"
)

// Ensure LoggingPageWriter implements docpull.PageWriter.
var _ docpull.PageWriter = (*LoggingPageWriter)(nil)

// LoggingPageWriter wraps a PageWriter with logging.
type LoggingPageWriter struct {
	next   docpull.PageWriter
	logger *slog.Logger
}

// NewLoggingPageWriter creates a new LoggingPageWriter.
func NewLoggingPageWriter(next docpull.PageWriter, logger *slog.Logger) *LoggingPageWriter {
	return &LoggingPageWriter{next: next, logger: logger}
}

// WritePage delegates to the wrapped writer and logs the written path.
func (w *LoggingPageWriter) WritePage(ctx context.Context, page *docpull.Page) (path string, err error) {
	defer func(begin time.Time) {
		if err != nil {
			w.logger.Error("write page", "url", page.URL, "path", page.Path, "err", err)
			return
		}
		w.logger.Debug("write page",
			"url", page.URL,
			"path", path,
			"bytes", len(page.Content),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return w.next.WritePage(ctx, page)
}
