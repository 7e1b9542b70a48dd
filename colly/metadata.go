// Package colly fetches page metadata out of band with gocolly.
package colly

import (
	"context"
	"time"

	"github.com/fwojciec/webclip"
	"github.com/fwojciec/webclip/goquery"
	"github.com/gocolly/colly"
)

// Default settings for MetadataFetcher.
const (
	DefaultTimeout     = 10 * time.Second
	DefaultMaxBodySize = 5 * 1024 * 1024
	DefaultUserAgent   = "webclip/1.0 (+https://github.com/fwojciec/webclip)"
)

// Ensure MetadataFetcher implements webclip.MetadataFetcher at compile time.
var _ webclip.MetadataFetcher = (*MetadataFetcher)(nil)

// MetadataFetcher requests a page and reads its description, author and
// keywords from the <meta> elements of the response.
type MetadataFetcher struct {
	timeout   time.Duration
	userAgent string
}

// Option configures a MetadataFetcher.
type Option func(*MetadataFetcher)

// WithTimeout sets the request timeout.
func WithTimeout(d time.Duration) Option {
	return func(f *MetadataFetcher) {
		f.timeout = d
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(f *MetadataFetcher) {
		f.userAgent = ua
	}
}

// NewMetadataFetcher creates a new MetadataFetcher.
func NewMetadataFetcher(opts ...Option) *MetadataFetcher {
	f := &MetadataFetcher{
		timeout:   DefaultTimeout,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// FetchMetadata requests url and returns the metadata of the response.
// Every failure, including non-2xx responses, is reported as EMETADATA.
func (f *MetadataFetcher) FetchMetadata(ctx context.Context, url string) (*webclip.Metadata, error) {
	if err := ctx.Err(); err != nil {
		return nil, webclip.Errorf(webclip.EMETADATA, "fetch metadata for %s: %v", url, err)
	}

	c := colly.NewCollector(
		colly.UserAgent(f.userAgent),
		colly.MaxBodySize(DefaultMaxBodySize),
		colly.AllowURLRevisit(),
	)
	c.SetRequestTimeout(f.requestTimeout(ctx))

	meta := &webclip.Metadata{}
	c.OnHTML("html", func(e *colly.HTMLElement) {
		meta = goquery.ParseMetadata(e.DOM)
	})

	if err := c.Visit(url); err != nil {
		return nil, webclip.Errorf(webclip.EMETADATA, "fetch metadata for %s: %v", url, err)
	}
	return meta, nil
}

// requestTimeout returns the configured timeout, shortened to the context
// deadline when that comes first.
func (f *MetadataFetcher) requestTimeout(ctx context.Context) time.Duration {
	timeout := f.timeout
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining < timeout {
			timeout = remaining
		}
	}
	return timeout
}
