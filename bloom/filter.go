// Package bloom provides a probabilistic pre-check over persisted
// product identities.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// Filter wraps a Bloom filter used as a cheap negative membership check
// before consulting the exact identity set. A false answer is
// definitive (the identity is new); a true answer may be a false
// positive and must be confirmed against the exact set.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a filter sized for n expected identities with the
// given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{f: bloom.NewWithEstimates(n, fpRate)}
}

// Seeded creates a filter pre-populated with the given identities,
// sized for them (with headroom for identities accepted during the run)
// at the given false positive rate.
func Seeded(identities []string, fpRate float64) *Filter {
	n := uint(len(identities))*2 + 1024
	f := NewFilter(n, fpRate)
	for _, id := range identities {
		f.Add(id)
	}
	return f
}

// Add records an identity in the filter.
func (f *Filter) Add(identity string) {
	f.f.AddString(identity)
}

// MightContain reports whether the identity may have been added.
// False negatives cannot occur.
func (f *Filter) MightContain(identity string) bool {
	return f.f.TestString(identity)
}

// EstimatedCount returns the approximate number of recorded identities.
func (f *Filter) EstimatedCount() uint {
	return uint(f.f.ApproximatedSize())
}
