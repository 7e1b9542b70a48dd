package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/webclip"
	"golang.org/x/net/html"
)

// Ensure LoggingConverter implements webclip.Converter.
var _ webclip.Converter = (*LoggingConverter)(nil)

// LoggingConverter wraps a Converter with debug logging.
type LoggingConverter struct {
	next   webclip.Converter
	logger *slog.Logger
}

// NewLoggingConverter creates a new LoggingConverter.
func NewLoggingConverter(next webclip.Converter, logger *slog.Logger) *LoggingConverter {
	return &LoggingConverter{next: next, logger: logger}
}

// Convert delegates to the wrapped converter and logs the output size.
func (c *LoggingConverter) Convert(n *html.Node) (md string, err error) {
	defer func(begin time.Time) {
		c.logger.Debug("convert",
			"bytes", len(md),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.Convert(n)
}
