package mock

import (
	"github.com/fwojciec/webclip"
	"golang.org/x/net/html"
)

var _ webclip.MetaScraper = (*MetaScraper)(nil)

// MetaScraper is a mock implementation of webclip.MetaScraper.
type MetaScraper struct {
	ScrapeMetaFn func(doc *webclip.Document) webclip.DocumentMeta
}

func (s *MetaScraper) ScrapeMeta(doc *webclip.Document) webclip.DocumentMeta {
	return s.ScrapeMetaFn(doc)
}

var _ webclip.Parser = (*Parser)(nil)

// Parser is a mock implementation of webclip.Parser.
type Parser struct {
	ParseDocumentFn  func(pageURL, rawHTML string) (*webclip.Document, error)
	ParseFragmentFn  func(rawHTML string) (*html.Node, error)
	SelectFragmentFn func(doc *webclip.Document, selector string) (*html.Node, error)
}

func (p *Parser) ParseDocument(pageURL, rawHTML string) (*webclip.Document, error) {
	return p.ParseDocumentFn(pageURL, rawHTML)
}

func (p *Parser) ParseFragment(rawHTML string) (*html.Node, error) {
	return p.ParseFragmentFn(rawHTML)
}

func (p *Parser) SelectFragment(doc *webclip.Document, selector string) (*html.Node, error) {
	return p.SelectFragmentFn(doc, selector)
}
