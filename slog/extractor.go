package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/webclip"
)

// Ensure LoggingExtractor implements webclip.Extractor.
var _ webclip.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with debug logging.
type LoggingExtractor struct {
	next   webclip.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next webclip.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the outcome.
func (e *LoggingExtractor) Extract(doc *webclip.Document) (article *webclip.Article, err error) {
	defer func(begin time.Time) {
		var url, title string
		if doc != nil {
			url = doc.URL
		}
		if article != nil {
			title = article.Title
		}
		e.logger.Debug("extract",
			"url", url,
			"title", title,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(doc)
}
