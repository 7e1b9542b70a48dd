package mock

import "github.com/fwojciec/webclip"

var _ webclip.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of webclip.Extractor.
type Extractor struct {
	ExtractFn func(doc *webclip.Document) (*webclip.Article, error)
}

func (e *Extractor) Extract(doc *webclip.Document) (*webclip.Article, error) {
	return e.ExtractFn(doc)
}
