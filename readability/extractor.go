// Package readability extracts article content with go-readability.
package readability

import (
	"net/url"
	"strings"

	"github.com/fwojciec/webclip"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements webclip.Extractor at compile time.
var _ webclip.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from a document.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract scores the document's block elements and returns the
// highest-scoring container as the article content.
func (e *Extractor) Extract(doc *webclip.Document) (*webclip.Article, error) {
	if err := doc.Validate(); err != nil {
		return nil, err
	}

	// A malformed URL only disables relative link resolution.
	pageURL, _ := url.Parse(doc.URL)
	if pageURL != nil && !pageURL.IsAbs() {
		pageURL = nil
	}

	article, err := readability.FromDocument(doc.Root, pageURL)
	if err != nil {
		return nil, webclip.Errorf(webclip.EEXTRACTION, "could not parse the article: %v", err)
	}
	if article.Node == nil || strings.TrimSpace(article.TextContent) == "" {
		return nil, webclip.Errorf(webclip.EEXTRACTION, "could not parse the article: no readable content")
	}

	return &webclip.Article{
		Title:   strings.TrimSpace(article.Title),
		Content: article.Node,
		Excerpt: article.Excerpt,
		Byline:  article.Byline,
	}, nil
}
