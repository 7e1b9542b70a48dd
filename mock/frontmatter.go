package mock

import "github.com/fwojciec/webclip"

var _ webclip.FrontMatterEncoder = (*FrontMatterEncoder)(nil)

// FrontMatterEncoder is a mock implementation of webclip.FrontMatterEncoder.
type FrontMatterEncoder struct {
	EncodeFrontMatterFn func(fm *webclip.FrontMatter) (string, error)
}

func (e *FrontMatterEncoder) EncodeFrontMatter(fm *webclip.FrontMatter) (string, error) {
	return e.EncodeFrontMatterFn(fm)
}
