package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/webclip"
)

// Ensure LoggingMetadataFetcher implements webclip.MetadataFetcher.
var _ webclip.MetadataFetcher = (*LoggingMetadataFetcher)(nil)

// LoggingMetadataFetcher wraps a MetadataFetcher with logging.
type LoggingMetadataFetcher struct {
	next   webclip.MetadataFetcher
	logger *slog.Logger
}

// NewLoggingMetadataFetcher creates a new LoggingMetadataFetcher.
func NewLoggingMetadataFetcher(next webclip.MetadataFetcher, logger *slog.Logger) *LoggingMetadataFetcher {
	return &LoggingMetadataFetcher{next: next, logger: logger}
}

// FetchMetadata delegates to the wrapped fetcher and logs which fields
// were found.
func (f *LoggingMetadataFetcher) FetchMetadata(ctx context.Context, url string) (meta *webclip.Metadata, err error) {
	defer func(begin time.Time) {
		var found []string
		if meta != nil {
			if meta.Description != "" {
				found = append(found, "description")
			}
			if meta.Author != "" {
				found = append(found, "author")
			}
			if meta.Keywords != "" {
				found = append(found, "keywords")
			}
		}
		f.logger.Debug("fetch metadata",
			"url", url,
			"found", found,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.FetchMetadata(ctx, url)
}
