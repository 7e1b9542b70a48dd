package mock

import (
	"context"

	"github.com/fwojciec/webclip"
)

var _ webclip.OptionsService = (*OptionsService)(nil)

// OptionsService is a mock implementation of webclip.OptionsService.
type OptionsService struct {
	GetFn      func(ctx context.Context, key string) (string, error)
	SetFn      func(ctx context.Context, key, value string) error
	UnsetFn    func(ctx context.Context, key string) error
	OptionsFn  func(ctx context.Context) (*webclip.Options, error)
	BaseTagsFn func(ctx context.Context) ([]string, error)
}

func (s *OptionsService) Get(ctx context.Context, key string) (string, error) {
	return s.GetFn(ctx, key)
}

func (s *OptionsService) Set(ctx context.Context, key, value string) error {
	return s.SetFn(ctx, key, value)
}

func (s *OptionsService) Unset(ctx context.Context, key string) error {
	return s.UnsetFn(ctx, key)
}

func (s *OptionsService) Options(ctx context.Context) (*webclip.Options, error) {
	return s.OptionsFn(ctx)
}

func (s *OptionsService) BaseTags(ctx context.Context) ([]string, error) {
	return s.BaseTagsFn(ctx)
}
