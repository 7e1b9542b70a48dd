package webclip_test

import (
	"testing"

	"github.com/fwojciec/webclip"
	"github.com/stretchr/testify/assert"
)

func TestFormatMarkdown(t *testing.T) {
	t.Parallel()

	t.Run("wraps front matter in delimiters", func(t *testing.T) {
		t.Parallel()

		md := webclip.FormatMarkdown("title: A\n", "# A")

		assert.Equal(t, "---\ntitle: A\n---\n\n# A", md)
	})

	t.Run("terminates front matter without a newline", func(t *testing.T) {
		t.Parallel()

		md := webclip.FormatMarkdown("title: A", "body")

		assert.Equal(t, "---\ntitle: A\n---\n\nbody", md)
	})
}

func TestSplitMarkdown(t *testing.T) {
	t.Parallel()

	t.Run("inverts FormatMarkdown", func(t *testing.T) {
		t.Parallel()

		fm, body, ok := webclip.SplitMarkdown(webclip.FormatMarkdown("title: A\ntags: []\n", "text\n---\nmore"))

		assert.True(t, ok)
		assert.Equal(t, "title: A\ntags: []\n", fm)
		assert.Equal(t, "text\n---\nmore", body)
	})

	t.Run("handles empty front matter", func(t *testing.T) {
		t.Parallel()

		fm, body, ok := webclip.SplitMarkdown("---\n---\n\nbody")

		assert.True(t, ok)
		assert.Empty(t, fm)
		assert.Equal(t, "body", body)
	})

	t.Run("reports missing front matter", func(t *testing.T) {
		t.Parallel()

		for _, md := range []string{"# Just a body", "---\nunterminated"} {
			fm, body, ok := webclip.SplitMarkdown(md)
			assert.False(t, ok)
			assert.Empty(t, fm)
			assert.Equal(t, md, body)
		}
	})
}
