package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/webclip"
)

// Ensure LoggingSink implements webclip.Sink.
var _ webclip.Sink = (*LoggingSink)(nil)

// LoggingSink wraps a Sink with logging.
type LoggingSink struct {
	next   webclip.Sink
	logger *slog.Logger
}

// NewLoggingSink creates a new LoggingSink.
func NewLoggingSink(next webclip.Sink, logger *slog.Logger) *LoggingSink {
	return &LoggingSink{next: next, logger: logger}
}

// Deliver delegates to the wrapped sink and logs the outcome.
func (s *LoggingSink) Deliver(ctx context.Context, result *webclip.Result) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("deliver",
			"sink", s.next.Name(),
			"title", result.Title,
			"bytes", len(result.Markdown),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Deliver(ctx, result)
}

// Name returns the wrapped sink's name.
func (s *LoggingSink) Name() string {
	return s.next.Name()
}
