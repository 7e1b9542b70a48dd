// Package gocache caches page metadata in memory with patrickmn/go-cache.
package gocache

import (
	"context"
	"time"

	"github.com/fwojciec/webclip"
	"github.com/patrickmn/go-cache"
)

// Default cache timings.
const (
	DefaultExpiration      = 24 * time.Hour
	DefaultCleanupInterval = time.Hour
)

// Ensure MetadataCache implements webclip.MetadataFetcher at compile time.
var _ webclip.MetadataFetcher = (*MetadataCache)(nil)

// MetadataCache wraps a MetadataFetcher and remembers successful lookups
// per URL. Failures are not cached. Safe for concurrent use.
type MetadataCache struct {
	next  webclip.MetadataFetcher
	cache *cache.Cache
}

// NewMetadataCache creates a MetadataCache whose entries live for expiration.
func NewMetadataCache(next webclip.MetadataFetcher, expiration time.Duration) *MetadataCache {
	return &MetadataCache{
		next:  next,
		cache: cache.New(expiration, DefaultCleanupInterval),
	}
}

// FetchMetadata returns the cached metadata for url, or fetches and caches it.
func (c *MetadataCache) FetchMetadata(ctx context.Context, url string) (*webclip.Metadata, error) {
	if v, ok := c.cache.Get(url); ok {
		if meta, ok := v.(webclip.Metadata); ok {
			return &meta, nil
		}
	}

	meta, err := c.next.FetchMetadata(ctx, url)
	if err != nil {
		return nil, err
	}
	if meta != nil {
		c.cache.SetDefault(url, *meta)
	}
	return meta, nil
}

// Len returns the number of cached entries, expired ones included until
// the next cleanup.
func (c *MetadataCache) Len() int {
	return c.cache.ItemCount()
}
