// Package csv provides an append-only CSV-backed record store.
package csv

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/stefw/cardex"
)

// Compile-time interface verification.
var _ cardex.RecordStore = (*Store)(nil)

// Store persists product records as rows of a CSV file in the fixed
// cardex.Columns order. Records are append-only; a missing file is an
// empty store and is created with a header row on first append.
type Store struct {
	path string
}

// NewStore creates a Store backed by the file at path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Identities returns the identity column of every stored record.
func (s *Store) Identities(ctx context.Context) ([]string, error) {
	rows, err := s.readAll()
	if err != nil {
		return nil, err
	}

	var identities []string
	for i, row := range rows {
		if i == 0 || len(row) == 0 {
			// Header row.
			continue
		}
		identities = append(identities, row[0])
	}
	return identities, nil
}

// AppendRecords appends records as CSV rows, writing the header first
// if the file does not exist yet.
func (s *Store) AppendRecords(ctx context.Context, records []*cardex.Product) error {
	if len(records) == 0 {
		return nil
	}

	_, statErr := os.Stat(s.path)
	newFile := os.IsNotExist(statErr)

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if newFile {
		if err := w.Write(cardex.Columns); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
	}
	for _, r := range records {
		if err := r.Validate(); err != nil {
			return err
		}
		if err := w.Write(r.Row()); err != nil {
			return fmt.Errorf("failed to write record: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush store: %w", err)
	}
	return f.Close()
}

// Count returns the number of stored records (header excluded).
func (s *Store) Count(ctx context.Context) (int, error) {
	rows, err := s.readAll()
	if err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, nil
	}
	return len(rows) - 1, nil
}

func (s *Store) readAll() ([][]string, error) {
	f, err := os.Open(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	// Rows written by older runs may predate column additions.
	r.FieldsPerRecord = -1

	var rows [][]string
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read store: %w", err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}
