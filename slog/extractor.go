package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/docpull"
)

// Ensure LoggingExtractor implements docpull.Extractor.
var _ docpull.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with debug logging of the selected
// strategy and detected framework.
type LoggingExtractor struct {
	next   docpull.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next docpull.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the result.
func (e *LoggingExtractor) Extract(html string) (result *docpull.ExtractResult, err error) {
	defer func(begin time.Time) {
		if err != nil {
			e.logger.Debug("extract", "duration", time.Since(begin), "err", err)
			return
		}
		framework := string(result.Framework)
		if result.Framework == docpull.FrameworkUnknown {
			framework = "(unknown)"
		}
		e.logger.Debug("extract",
			"title", result.Title,
			"strategy", result.Strategy,
			"framework", framework,
			"duration", time.Since(begin),
		)
	}(time.Now())
	return e.next.Extract(html)
}
