package webclip

import "golang.org/x/net/html"

// Document is a parsed HTML page at the moment of capture.
//
// A Document handed to the pipeline is treated as read-only. Conversions
// work on their own deep copy so extraction, which removes nodes, never
// touches the caller's tree.
type Document struct {
	// URL is the address the page was captured from. It becomes the
	// front matter source field.
	URL string

	// Root is the document node returned by the HTML parser.
	Root *html.Node
}

// Validate returns an error if the document cannot be converted.
func (d *Document) Validate() error {
	if d == nil || d.Root == nil {
		return Errorf(EINVALID, "document required")
	}
	return nil
}

// DocumentMeta holds the values scraped from a document's head that feed the
// front matter directly.
type DocumentMeta struct {
	// Title is the text of the <title> element.
	Title string

	// ArticleTags are the content values of meta[property="article:tag"],
	// in document order.
	ArticleTags []string

	// Published is the verbatim content of meta[property="article:published_time"].
	// Nil when the element is absent or empty.
	Published *string
}

// MetaScraper reads DocumentMeta from a parsed document.
type MetaScraper interface {
	ScrapeMeta(doc *Document) DocumentMeta
}

// Parser turns captured HTML into documents and selection fragments.
type Parser interface {
	// ParseDocument parses a full page captured from pageURL.
	ParseDocument(pageURL, rawHTML string) (*Document, error)

	// ParseFragment parses serialized selection contents into a detached
	// container node. Returns ENOSELECTION if there is no content.
	ParseFragment(rawHTML string) (*html.Node, error)

	// SelectFragment copies the elements of doc matched by a CSS selector
	// into a detached container node. doc is not modified.
	// Returns ENOSELECTION if nothing with content matches.
	SelectFragment(doc *Document, selector string) (*html.Node, error)
}
