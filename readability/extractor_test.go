package readability_test

import (
	"bytes"
	"testing"

	"github.com/fwojciec/webclip"
	"github.com/fwojciec/webclip/goquery"
	"github.com/fwojciec/webclip/readability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func parse(t *testing.T, s string) *webclip.Document {
	t.Helper()
	doc, err := goquery.ParseDocument("https://example.com/article", s)
	require.NoError(t, err)
	return doc
}

func contentHTML(t *testing.T, a *webclip.Article) string {
	t.Helper()
	require.NotNil(t, a.Content)
	var buf bytes.Buffer
	require.NoError(t, html.Render(&buf, a.Content))
	return buf.String()
}

func TestExtractor_RejectsNilDocument(t *testing.T) {
	t.Parallel()

	ext := readability.NewExtractor()
	_, err := ext.Extract(nil)

	require.Error(t, err)
	assert.Equal(t, webclip.EINVALID, webclip.ErrorCode(err))
}

func TestExtractor_FailsOnEmptyDiv(t *testing.T) {
	t.Parallel()

	ext := readability.NewExtractor()
	_, err := ext.Extract(parse(t, `<html><head></head><body><div></div></body></html>`))

	require.Error(t, err)
	assert.Equal(t, webclip.EEXTRACTION, webclip.ErrorCode(err))
}

func TestExtractor_ReturnsByline(t *testing.T) {
	t.Parallel()

	html := `<!DOCTYPE html>
<html>
<head>
<title>Test</title>
<meta name="author" content="Ada Lovelace">
</head>
<body>
<article>
<p>This is the main article content. It is long enough to be considered readable content by the extractor.</p>
</article>
</body>
</html>`

	ext := readability.NewExtractor()
	result, err := ext.Extract(parse(t, html))

	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", result.Byline)
}

func TestExtractor_ExtractsTitle(t *testing.T) {
	t.Parallel()

	html := `<!DOCTYPE html>
<html>
<head><title>Page Title</title></head>
<body><article><p>Content</p></article></body>
</html>`

	ext := readability.NewExtractor()
	result, err := ext.Extract(parse(t, html))

	require.NoError(t, err)
	assert.Equal(t, "Page Title", result.Title)
}

// page wraps body in a minimal HTML document.
func page(body string) string {
	return "<!DOCTYPE html><html><head><title>Clip</title></head><body>" + body + "</body></html>"
}

func TestExtractor_DropsBoilerplate(t *testing.T) {
	t.Parallel()

	const article = `<article><p>The council voted on Tuesday to extend the tram line to the harbour, a plan first proposed twelve years ago.</p></article>`

	tests := []struct {
		name        string
		boilerplate string
		dropped     string
	}{
		{"navigation", `<nav><a href="/news">News Nav Link</a><a href="/sport">Sport Nav Link</a></nav>`, "Nav Link"},
		{"footer", `<footer><p>Footer copyright text 2024</p></footer>`, "Footer copyright"},
		{"sidebar", `<aside class="sidebar"><p>Most read this week</p></aside>`, "Most read"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result, err := readability.NewExtractor().Extract(parse(t, page(tt.boilerplate+article)))

			require.NoError(t, err)
			content := contentHTML(t, result)
			assert.Contains(t, content, "extend the tram line")
			assert.NotContains(t, content, tt.dropped)
		})
	}
}

func TestExtractor_KeepsStructure(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
		want []string
	}{
		{
			name: "headings",
			body: `<h1>Main Heading</h1><p>Some intro text here.</p><h2>Subheading Level Two</h2><p>More content under the subheading.</p>`,
			want: []string{"Main Heading", "Subheading Level Two", "<h2"},
		},
		{
			name: "paragraphs",
			body: `<p>First paragraph of content.</p><p>Second paragraph of content.</p>`,
			want: []string{"<p", "Second paragraph"},
		},
		{
			name: "lists",
			body: `<p>Ingredients:</p><ul><li>Flour</li><li>Water</li></ul>`,
			want: []string{"<ul", "<li", "Flour"},
		},
		{
			name: "tables",
			body: `<p>Results by district:</p><table><tr><th>District</th><th>Votes</th></tr><tr><td>North</td><td>1204</td></tr></table>`,
			want: []string{"<table", "1204"},
		},
		{
			name: "links",
			body: `<p>Read <a href="https://example.com/report">the full report</a> for details.</p>`,
			want: []string{`<a href="https://example.com/report"`},
		},
		{
			name: "inline code",
			body: `<p>Set <code>GOFLAGS</code> before building.</p>`,
			want: []string{"<code>GOFLAGS</code>"},
		},
		{
			name: "code blocks",
			body: `<p>Install it with:</p><pre><code>go install example.com/tool@latest</code></pre><p>That is all.</p>`,
			want: []string{"<pre", "go install example.com/tool@latest"},
		},
		{
			name: "highlighted code blocks",
			body: `<p>Run:</p><pre><code><span class="token">git</span> <span class="token">status</span></code></pre><p>It lists changes.</p>`,
			want: []string{"<pre", "git", "status"},
		},
		{
			name: "code blocks in wrappers",
			body: `<p>Install the CLI:</p><div class="code-wrapper"><figure><pre><code>brew install tool</code></pre></figure></div><p>Then run it.</p>`,
			want: []string{"<pre", "brew install tool"},
		},
		{
			name: "language hints",
			body: `<p>Example:</p><pre data-language="bash"><code class="language-bash">echo "hello"</code></pre><p>That prints hello.</p>`,
			want: []string{"bash"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result, err := readability.NewExtractor().Extract(parse(t, page("<article>"+tt.body+"</article>")))

			require.NoError(t, err)
			content := contentHTML(t, result)
			for _, want := range tt.want {
				assert.Contains(t, content, want)
			}
		})
	}
}
