package goquery_test

import (
	"strings"
	"testing"

	gq "github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/webclip"
	"github.com/fwojciec/webclip/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure MetaScraper implements webclip.MetaScraper at compile time.
var _ webclip.MetaScraper = (*goquery.MetaScraper)(nil)

func TestMetaScraper_ScrapeMeta(t *testing.T) {
	t.Parallel()

	t.Run("reads title, article tags and published time", func(t *testing.T) {
		t.Parallel()

		doc, err := goquery.ParseDocument("https://example.com", `<!DOCTYPE html>
<html>
<head>
<title> Clipping the Web </title>
<meta property="article:tag" content="go">
<meta property="article:tag" content="markdown">
<meta property="article:published_time" content="2024-01-01T00:00:00Z">
</head>
<body><p>Body</p></body>
</html>`)
		require.NoError(t, err)

		meta := goquery.NewMetaScraper().ScrapeMeta(doc)

		assert.Equal(t, "Clipping the Web", meta.Title)
		assert.Equal(t, []string{"go", "markdown"}, meta.ArticleTags)
		require.NotNil(t, meta.Published)
		assert.Equal(t, "2024-01-01T00:00:00Z", *meta.Published)
	})

	t.Run("keeps published time verbatim", func(t *testing.T) {
		t.Parallel()

		doc, err := goquery.ParseDocument("https://example.com", `<html><head>
<meta property="article:published_time" content="Jan 1st, sometime">
</head><body></body></html>`)
		require.NoError(t, err)

		meta := goquery.NewMetaScraper().ScrapeMeta(doc)

		require.NotNil(t, meta.Published)
		assert.Equal(t, "Jan 1st, sometime", *meta.Published)
	})

	t.Run("leaves published nil when absent", func(t *testing.T) {
		t.Parallel()

		doc, err := goquery.ParseDocument("https://example.com", `<html><head><title>T</title></head><body></body></html>`)
		require.NoError(t, err)

		meta := goquery.NewMetaScraper().ScrapeMeta(doc)

		assert.Nil(t, meta.Published)
		assert.Empty(t, meta.ArticleTags)
	})

	t.Run("leaves published nil when empty", func(t *testing.T) {
		t.Parallel()

		doc, err := goquery.ParseDocument("https://example.com", `<html><head>
<meta property="article:published_time" content="">
</head><body></body></html>`)
		require.NoError(t, err)

		meta := goquery.NewMetaScraper().ScrapeMeta(doc)

		assert.Nil(t, meta.Published)
	})

	t.Run("skips blank article tags", func(t *testing.T) {
		t.Parallel()

		doc, err := goquery.ParseDocument("https://example.com", `<html><head>
<meta property="article:tag" content=" ">
<meta property="article:tag">
<meta property="article:tag" content="kept">
</head><body></body></html>`)
		require.NoError(t, err)

		meta := goquery.NewMetaScraper().ScrapeMeta(doc)

		assert.Equal(t, []string{"kept"}, meta.ArticleTags)
	})

	t.Run("tolerates nil document", func(t *testing.T) {
		t.Parallel()

		meta := goquery.NewMetaScraper().ScrapeMeta(nil)

		assert.Empty(t, meta.Title)
		assert.Nil(t, meta.Published)
	})
}

func TestParseMetadata(t *testing.T) {
	t.Parallel()

	parse := func(t *testing.T, s string) *gq.Selection {
		t.Helper()
		doc, err := gq.NewDocumentFromReader(strings.NewReader(s))
		require.NoError(t, err)
		return doc.Selection
	}

	t.Run("reads named meta elements", func(t *testing.T) {
		t.Parallel()

		sel := parse(t, `<html><head>
<meta name="description" content="A short summary">
<meta name="author" content="Jane Doe">
<meta name="keywords" content="go, web,  clipping">
</head></html>`)

		md := goquery.ParseMetadata(sel)

		assert.Equal(t, "A short summary", md.Description)
		assert.Equal(t, "Jane Doe", md.Author)
		assert.Equal(t, "go, web,  clipping", md.Keywords)
	})

	t.Run("falls back to Open Graph values", func(t *testing.T) {
		t.Parallel()

		sel := parse(t, `<html><head>
<meta property="og:description" content="OG summary">
<meta property="article:author" content="OG Author">
</head></html>`)

		md := goquery.ParseMetadata(sel)

		assert.Equal(t, "OG summary", md.Description)
		assert.Equal(t, "OG Author", md.Author)
	})

	t.Run("prefers named values over Open Graph", func(t *testing.T) {
		t.Parallel()

		sel := parse(t, `<html><head>
<meta property="og:description" content="OG summary">
<meta name="description" content="Named summary">
</head></html>`)

		md := goquery.ParseMetadata(sel)

		assert.Equal(t, "Named summary", md.Description)
	})

	t.Run("returns empty record when nothing is present", func(t *testing.T) {
		t.Parallel()

		md := goquery.ParseMetadata(parse(t, `<html><head></head><body></body></html>`))

		assert.Equal(t, &webclip.Metadata{}, md)
	})
}
