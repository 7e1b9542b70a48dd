// Package trafilatura extracts article content with go-trafilatura.
package trafilatura

import (
	"net/url"
	"strings"

	"github.com/fwojciec/webclip"
	"github.com/go-shiori/dom"
	"github.com/markusmobius/go-trafilatura"
)

// Ensure Extractor implements webclip.Extractor at compile time.
var _ webclip.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from a document.
// It tends to keep less boilerplate than readability on pages with
// comment sections, at the cost of dropping some inline images.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes the document and returns the main content.
func (e *Extractor) Extract(doc *webclip.Document) (*webclip.Article, error) {
	if err := doc.Validate(); err != nil {
		return nil, err
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}
	if u, err := url.Parse(doc.URL); err == nil && u.IsAbs() {
		opts.OriginalURL = u
	}

	result, err := trafilatura.ExtractDocument(doc.Root, opts)
	if err != nil {
		return nil, webclip.Errorf(webclip.EEXTRACTION, "could not parse the article: %v", err)
	}
	if result.ContentNode == nil || strings.TrimSpace(dom.TextContent(result.ContentNode)) == "" {
		return nil, webclip.Errorf(webclip.EEXTRACTION, "could not parse the article: no readable content")
	}

	return &webclip.Article{
		Title:   strings.TrimSpace(result.Metadata.Title),
		Content: result.ContentNode,
		Excerpt: result.Metadata.Description,
		Byline:  result.Metadata.Author,
	}, nil
}
