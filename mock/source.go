package mock

import (
	"context"

	"github.com/stefw/cardex"
)

var _ cardex.PageSource = (*PageSource)(nil)

// PageSource is a mock implementation of cardex.PageSource.
type PageSource struct {
	ListFn func(ctx context.Context) ([]string, error)
	ReadFn func(ctx context.Context, name string) (*cardex.Page, error)
}

func (s *PageSource) List(ctx context.Context) ([]string, error) {
	return s.ListFn(ctx)
}

func (s *PageSource) Read(ctx context.Context, name string) (*cardex.Page, error) {
	return s.ReadFn(ctx, name)
}
