package webclip

import "golang.org/x/net/html"

// Article holds the main content isolated from a page.
type Article struct {
	// Title is the article title detected by the extractor. May be empty.
	Title string

	// Content is the root of the retained content subtree.
	// Boilerplate (nav, footer, sidebar, ads, scripts) has been removed.
	Content *html.Node

	// Excerpt is a short summary of the article, if one was found.
	Excerpt string

	// Byline is the author credit found in the page body, if any.
	Byline string
}

// Extractor isolates the main content of a page, removing boilerplate.
type Extractor interface {
	// Extract identifies the content root of doc. It may modify doc, so
	// callers pass a snapshot rather than a document they keep using.
	// Returns EEXTRACTION if the page has no identifiable content.
	Extract(doc *Document) (*Article, error)
}
