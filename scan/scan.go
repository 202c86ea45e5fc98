// Package scan orchestrates an extraction run: it walks listing pages
// from a source, runs the extraction engine on each, filters records
// already present in the store, and appends the novel ones.
package scan

import (
	"context"
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/stefw/cardex"
)

// Scanner coordinates one extraction run. Pages are processed strictly
// sequentially; a failing page is reported and skipped, never aborting
// the run.
type Scanner struct {
	Source    cardex.PageSource
	Extractor cardex.Extractor
	Store     cardex.RecordStore
}

// Result holds the outcome of a run.
type Result struct {
	Pages   int // pages processed
	Failed  int // pages skipped because they could not be read or parsed
	Skipped int // byte-identical duplicate pages skipped
	Found   int // records extracted before deduplication
	Novel   []*cardex.Product
}

// ProgressEvent reports progress during a run.
type ProgressEvent struct {
	Type  ProgressType
	Page  string
	Total int
	Found int // records extracted from the page
	New   int // of those, previously unseen
	Error error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressPage
	ProgressSkipped
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting run progress.
type ProgressFunc func(event ProgressEvent)

// Run executes the scan. The store's identities are loaded once at
// start; each accepted record grows the in-memory set so a product
// appearing on several pages is appended at most once. The progress
// callback, if provided, receives events as pages are processed.
func (s *Scanner) Run(ctx context.Context, progress ProgressFunc) (*Result, error) {
	identities, err := s.Store.Identities(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load known identities: %w", err)
	}
	known := newKnownIdentities(identities)

	names, err := s.Source.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pages: %w", err)
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: len(names)})
	}

	result := &Result{}
	pageHashes := make(map[uint64]struct{}, len(names))

	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		page, err := s.Source.Read(ctx, name)
		if err != nil {
			result.Failed++
			if progress != nil {
				progress(ProgressEvent{Type: ProgressFailed, Page: name, Error: err})
			}
			continue
		}

		// Saved listing directories often hold the same page twice
		// under different names; a content digest catches those
		// before the engine runs.
		digest := xxhash.Sum64String(page.HTML)
		if _, dup := pageHashes[digest]; dup {
			result.Skipped++
			if progress != nil {
				progress(ProgressEvent{Type: ProgressSkipped, Page: name})
			}
			continue
		}
		pageHashes[digest] = struct{}{}

		records, err := s.Extractor.Extract(page.HTML)
		if err != nil {
			result.Failed++
			if progress != nil {
				progress(ProgressEvent{Type: ProgressFailed, Page: name, Error: err})
			}
			continue
		}

		novel := cardex.Dedupe(known, records)
		result.Pages++
		result.Found += len(records)
		result.Novel = append(result.Novel, novel...)

		if progress != nil {
			progress(ProgressEvent{
				Type:  ProgressPage,
				Page:  name,
				Found: len(records),
				New:   len(novel),
			})
		}
	}

	if len(result.Novel) > 0 {
		if err := s.Store.AppendRecords(ctx, result.Novel); err != nil {
			return nil, fmt.Errorf("failed to append records: %w", err)
		}
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Total: len(names)})
	}

	return result, nil
}
