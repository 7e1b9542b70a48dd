// Package goquery reads documents, metadata and selections with goquery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/webclip"
	"golang.org/x/net/html"
)

// ParseDocument parses raw HTML captured from pageURL.
func ParseDocument(pageURL, rawHTML string) (*webclip.Document, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, webclip.Errorf(webclip.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, webclip.Errorf(webclip.EINVALID, "failed to parse HTML: %v", err)
	}

	return &webclip.Document{
		URL:  pageURL,
		Root: doc.Nodes[0],
	}, nil
}

// Ensure Parser implements webclip.Parser at compile time.
var _ webclip.Parser = (*Parser)(nil)

// Parser implements webclip.Parser with the package-level functions.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// ParseDocument delegates to ParseDocument.
func (p *Parser) ParseDocument(pageURL, rawHTML string) (*webclip.Document, error) {
	return ParseDocument(pageURL, rawHTML)
}

// ParseFragment delegates to ParseFragment.
func (p *Parser) ParseFragment(rawHTML string) (*html.Node, error) {
	return ParseFragment(rawHTML)
}

// SelectFragment delegates to SelectFragment.
func (p *Parser) SelectFragment(doc *webclip.Document, selector string) (*html.Node, error) {
	return SelectFragment(doc, selector)
}
