package sqlite

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stefw/cardex"
)

// Compile-time interface verification.
var _ cardex.RecordStore = (*RecordService)(nil)

// RecordService implements cardex.RecordStore using SQLite. Records are
// append-only and keyed by identity; the UNIQUE constraint on identity
// backstops the in-memory dedup layer.
type RecordService struct {
	db *DB
}

// NewRecordService creates a new RecordService.
func NewRecordService(db *DB) *RecordService {
	return &RecordService{db: db}
}

// Identities returns every identity present in the store.
func (s *RecordService) Identities(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT identity FROM products`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var identities []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		identities = append(identities, id)
	}
	return identities, rows.Err()
}

// AppendRecords inserts records in order. Each record gets a generated
// row id and a scrape timestamp; stored rows are never updated.
func (s *RecordService) AppendRecords(ctx context.Context, records []*cardex.Product) error {
	now := time.Now().UTC().Format(time.RFC3339)

	for _, r := range records {
		if err := r.Validate(); err != nil {
			return err
		}

		_, err := s.db.ExecContext(ctx, `
			INSERT INTO products (id, identity, title, brand, price, rating,
				review_count, inventory_level, sold_by_platform, seller_name,
				external_id, scraped_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, uuid.New().String(), r.Identity, r.Title, r.Brand, r.Price, r.Rating,
			r.ReviewCount, r.Inventory, r.SoldByPlatform, r.Seller,
			r.ExternalID, now)
		if err != nil {
			return err
		}
	}
	return nil
}

// Count returns the total number of stored records.
func (s *RecordService) Count(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM products`).Scan(&n)
	return n, err
}
