package mock

import (
	"context"

	"github.com/fwojciec/webclip"
)

var _ webclip.MetadataFetcher = (*MetadataFetcher)(nil)

// MetadataFetcher is a mock implementation of webclip.MetadataFetcher.
type MetadataFetcher struct {
	FetchMetadataFn func(ctx context.Context, url string) (*webclip.Metadata, error)
}

func (f *MetadataFetcher) FetchMetadata(ctx context.Context, url string) (*webclip.Metadata, error) {
	return f.FetchMetadataFn(ctx, url)
}
