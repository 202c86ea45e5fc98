package scan

import (
	"github.com/stefw/cardex"
	"github.com/stefw/cardex/bloom"
)

// bloomFalsePositiveRate sizes the pre-check filter. Positives are
// confirmed against the exact set, so the rate only affects how often
// the exact lookup runs, never correctness.
const bloomFalsePositiveRate = 0.01

// Compile-time interface verification.
var _ cardex.KnownSet = (*knownIdentities)(nil)

// knownIdentities layers a Bloom filter over the exact identity set.
// The filter answers the common "definitely new" case without touching
// the exact set; a positive falls through to the exact lookup, so a
// false positive cannot drop a novel record.
type knownIdentities struct {
	filter *bloom.Filter
	exact  *cardex.IdentitySet
}

func newKnownIdentities(identities []string) *knownIdentities {
	return &knownIdentities{
		filter: bloom.Seeded(identities, bloomFalsePositiveRate),
		exact:  cardex.NewIdentitySet(identities...),
	}
}

func (k *knownIdentities) Contains(identity string) bool {
	if !k.filter.MightContain(identity) {
		return false
	}
	return k.exact.Contains(identity)
}

func (k *knownIdentities) Add(identity string) {
	k.filter.Add(identity)
	k.exact.Add(identity)
}
