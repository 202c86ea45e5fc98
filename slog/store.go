package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/stefw/cardex"
)

// Ensure LoggingStore implements cardex.RecordStore.
var _ cardex.RecordStore = (*LoggingStore)(nil)

// LoggingStore wraps a RecordStore with logging for identity loads and
// record appends.
type LoggingStore struct {
	next   cardex.RecordStore
	logger *slog.Logger
}

// NewLoggingStore creates a new LoggingStore.
func NewLoggingStore(next cardex.RecordStore, logger *slog.Logger) *LoggingStore {
	return &LoggingStore{next: next, logger: logger}
}

// Identities delegates to the wrapped store and logs the loaded count.
func (s *LoggingStore) Identities(ctx context.Context) ([]string, error) {
	begin := time.Now()
	identities, err := s.next.Identities(ctx)
	if err != nil {
		s.logger.Error("failed to load identities", "error", err)
		return nil, err
	}
	s.logger.Debug("loaded known identities",
		"count", len(identities),
		"duration", time.Since(begin),
	)
	return identities, nil
}

// AppendRecords delegates to the wrapped store and logs the appended count.
func (s *LoggingStore) AppendRecords(ctx context.Context, records []*cardex.Product) error {
	begin := time.Now()
	if err := s.next.AppendRecords(ctx, records); err != nil {
		s.logger.Error("failed to append records",
			"count", len(records),
			"error", err,
		)
		return err
	}
	s.logger.Debug("appended records",
		"count", len(records),
		"duration", time.Since(begin),
	)
	return nil
}

// Count delegates to the wrapped store.
func (s *LoggingStore) Count(ctx context.Context) (int, error) {
	return s.next.Count(ctx)
}
