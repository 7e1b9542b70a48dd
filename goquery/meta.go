package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/webclip"
)

// Ensure MetaScraper implements webclip.MetaScraper at compile time.
var _ webclip.MetaScraper = (*MetaScraper)(nil)

// MetaScraper reads front matter inputs from a document's head.
type MetaScraper struct{}

// NewMetaScraper creates a new MetaScraper.
func NewMetaScraper() *MetaScraper {
	return &MetaScraper{}
}

// ScrapeMeta returns the document title, article:tag values and
// article:published_time of doc. It does not modify doc.
func (s *MetaScraper) ScrapeMeta(doc *webclip.Document) webclip.DocumentMeta {
	var meta webclip.DocumentMeta
	if doc == nil || doc.Root == nil {
		return meta
	}

	sel := goquery.NewDocumentFromNode(doc.Root).Selection

	meta.Title = strings.TrimSpace(sel.Find("head title").First().Text())
	if meta.Title == "" {
		meta.Title = strings.TrimSpace(sel.Find("title").First().Text())
	}

	sel.Find(`meta[property="article:tag"]`).Each(func(_ int, m *goquery.Selection) {
		if content := strings.TrimSpace(m.AttrOr("content", "")); content != "" {
			meta.ArticleTags = append(meta.ArticleTags, content)
		}
	})

	published, ok := sel.Find(`meta[property="article:published_time"]`).First().Attr("content")
	if ok && strings.TrimSpace(published) != "" {
		meta.Published = &published
	}

	return meta
}

// ParseMetadata reads page metadata from the <meta> elements below sel.
// Named meta elements win over their Open Graph and Twitter equivalents.
func ParseMetadata(sel *goquery.Selection) *webclip.Metadata {
	return &webclip.Metadata{
		Description: firstContent(sel,
			`meta[name="description"]`,
			`meta[property="og:description"]`,
			`meta[name="twitter:description"]`,
		),
		Author: firstContent(sel,
			`meta[name="author"]`,
			`meta[property="article:author"]`,
			`meta[name="twitter:creator"]`,
		),
		Keywords: firstContent(sel,
			`meta[name="keywords"]`,
			`meta[name="news_keywords"]`,
		),
	}
}

// firstContent returns the first non-blank content attribute matched by
// selectors, tried in order.
func firstContent(sel *goquery.Selection, selectors ...string) string {
	for _, selector := range selectors {
		var found string
		sel.Find(selector).EachWithBreak(func(_ int, m *goquery.Selection) bool {
			found = strings.TrimSpace(m.AttrOr("content", ""))
			return found == ""
		})
		if found != "" {
			return found
		}
	}
	return ""
}
