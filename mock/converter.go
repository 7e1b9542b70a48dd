package mock

import (
	"github.com/fwojciec/webclip"
	"golang.org/x/net/html"
)

var _ webclip.Converter = (*Converter)(nil)

// Converter is a mock implementation of webclip.Converter.
type Converter struct {
	ConvertFn func(n *html.Node) (string, error)
}

func (c *Converter) Convert(n *html.Node) (string, error) {
	return c.ConvertFn(n)
}
