package mock

import (
	"context"

	"github.com/fwojciec/webclip"
)

var _ webclip.Sink = (*Sink)(nil)

// Sink is a mock implementation of webclip.Sink.
type Sink struct {
	DeliverFn func(ctx context.Context, result *webclip.Result) error
	NameFn    func() string
}

func (s *Sink) Deliver(ctx context.Context, result *webclip.Result) error {
	return s.DeliverFn(ctx, result)
}

func (s *Sink) Name() string {
	return s.NameFn()
}
