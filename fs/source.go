// Package fs provides a directory-backed page source over saved
// catalog-listing pages.
package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/stefw/cardex"
)

// DefaultGlob matches the saved listing pages in a directory.
const DefaultGlob = "*.html"

// Compile-time interface verification.
var _ cardex.PageSource = (*DirSource)(nil)

// DirSource supplies saved listing pages from a local directory.
// Pages are listed in sorted name order; a file that disappears or
// cannot be read between List and Read surfaces as a Read error so the
// run can skip it and continue.
type DirSource struct {
	dir   string
	glob  string
	limit int
}

// Option configures a DirSource.
type Option func(*DirSource)

// WithGlob sets the file name pattern to match. Defaults to DefaultGlob.
func WithGlob(pattern string) Option {
	return func(s *DirSource) {
		s.glob = pattern
	}
}

// WithLimit caps the number of pages listed. Zero means no limit.
func WithLimit(n int) Option {
	return func(s *DirSource) {
		s.limit = n
	}
}

// NewDirSource creates a DirSource over the given directory.
func NewDirSource(dir string, opts ...Option) *DirSource {
	s := &DirSource{
		dir:  dir,
		glob: DefaultGlob,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// List returns the matching file names in sorted order.
func (s *DirSource) List(ctx context.Context) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(s.dir, s.glob))
	if err != nil {
		return nil, cardex.Errorf(cardex.EINVALID, "invalid page glob %q: %v", s.glob, err)
	}

	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, filepath.Base(m))
	}
	sort.Strings(names)

	if s.limit > 0 && len(names) > s.limit {
		names = names[:s.limit]
	}
	return names, nil
}

// Read returns the page with the given name.
func (s *DirSource) Read(ctx context.Context, name string) (*cardex.Page, error) {
	b, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		return nil, fmt.Errorf("failed to read page %q: %w", name, err)
	}
	return &cardex.Page{Name: name, HTML: string(b)}, nil
}
