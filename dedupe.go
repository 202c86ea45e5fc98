package cardex

// KnownSet is the membership state Dedupe threads through a run.
// Implementations need not be safe for concurrent use; a run owns its
// set exclusively.
type KnownSet interface {
	// Contains reports whether the identity is already known.
	Contains(identity string) bool

	// Add marks an identity as known.
	Add(identity string)
}

// Compile-time interface verification.
var _ KnownSet = (*IdentitySet)(nil)

// IdentitySet is the set of product identities already known to the
// store. It is owned exclusively by a single run and grown
// monotonically as new records are accepted; no concurrent access.
type IdentitySet struct {
	ids map[string]struct{}
}

// NewIdentitySet creates an IdentitySet seeded with the given identities.
func NewIdentitySet(identities ...string) *IdentitySet {
	s := &IdentitySet{ids: make(map[string]struct{}, len(identities))}
	for _, id := range identities {
		s.ids[id] = struct{}{}
	}
	return s
}

// Contains reports whether the identity is already known.
func (s *IdentitySet) Contains(identity string) bool {
	_, ok := s.ids[identity]
	return ok
}

// Add marks an identity as known.
func (s *IdentitySet) Add(identity string) {
	s.ids[identity] = struct{}{}
}

// Len returns the number of known identities.
func (s *IdentitySet) Len() int {
	return len(s.ids)
}

// Dedupe filters records against the identity set, returning only those
// whose identity was not yet known. Each accepted identity is added to
// the set before the next record is evaluated, so a product appearing
// on multiple documents in the same run yields at most one record.
func Dedupe(set KnownSet, records []*Product) []*Product {
	var novel []*Product
	for _, r := range records {
		if set.Contains(r.Identity) {
			continue
		}
		set.Add(r.Identity)
		novel = append(novel, r)
	}
	return novel
}
