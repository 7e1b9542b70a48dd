package webclip

import "context"

// Metadata is best-effort page information fetched independently of the
// extractor. Every field may be empty.
type Metadata struct {
	Description string `json:"description"`
	Author      string `json:"author"`

	// Keywords is the raw comma-separated keywords value.
	Keywords string `json:"keywords"`
}

// MetadataFetcher retrieves Metadata for a page URL out of band.
type MetadataFetcher interface {
	// FetchMetadata returns the metadata for url. Failures are reported
	// with EMETADATA; callers are expected to degrade to an empty record.
	FetchMetadata(ctx context.Context, url string) (*Metadata, error)
}
