package webclip

import "golang.org/x/net/html"

// Converter renders HTML to Markdown.
type Converter interface {
	// Convert renders the subtree rooted at n into a Markdown body.
	// The node should be clean content (e.g., from an Extractor or a
	// selection fragment).
	Convert(n *html.Node) (string, error)
}
