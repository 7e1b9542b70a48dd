package goquery_test

import (
	"testing"

	"github.com/fwojciec/webclip"
	"github.com/fwojciec/webclip/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDocument(t *testing.T) {
	t.Parallel()

	t.Run("parses HTML and keeps the page URL", func(t *testing.T) {
		t.Parallel()

		doc, err := goquery.ParseDocument("https://example.com/post", `<html><body><p>Hi</p></body></html>`)

		require.NoError(t, err)
		assert.Equal(t, "https://example.com/post", doc.URL)
		require.NotNil(t, doc.Root)
		require.NoError(t, doc.Validate())
	})

	t.Run("rejects empty input", func(t *testing.T) {
		t.Parallel()

		_, err := goquery.ParseDocument("https://example.com", "  \n ")

		require.Error(t, err)
		assert.Equal(t, webclip.EINVALID, webclip.ErrorCode(err))
	})
}

func TestParser(t *testing.T) {
	t.Parallel()

	p := goquery.NewParser()

	doc, err := p.ParseDocument("https://example.com", `<html><body><main><p>One</p></main><p>Two</p></body></html>`)
	require.NoError(t, err)

	frag, err := p.SelectFragment(doc, "main")
	require.NoError(t, err)
	assert.Equal(t, "div", frag.Data)

	frag, err = p.ParseFragment(`<p>Selected</p>`)
	require.NoError(t, err)
	assert.Equal(t, "div", frag.Data)
}
