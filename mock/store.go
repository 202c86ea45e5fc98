package mock

import (
	"context"

	"github.com/stefw/cardex"
)

var _ cardex.RecordStore = (*RecordStore)(nil)

// RecordStore is a mock implementation of cardex.RecordStore.
type RecordStore struct {
	IdentitiesFn    func(ctx context.Context) ([]string, error)
	AppendRecordsFn func(ctx context.Context, records []*cardex.Product) error
	CountFn         func(ctx context.Context) (int, error)
}

func (s *RecordStore) Identities(ctx context.Context) ([]string, error) {
	return s.IdentitiesFn(ctx)
}

func (s *RecordStore) AppendRecords(ctx context.Context, records []*cardex.Product) error {
	return s.AppendRecordsFn(ctx, records)
}

func (s *RecordStore) Count(ctx context.Context) (int, error) {
	return s.CountFn(ctx)
}
