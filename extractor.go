package cardex

// Extractor extracts product records from a single catalog-listing
// document. Records are returned in document order, one per distinct
// identity (first-seen wins within the document). Fragments lacking a
// resolvable identity, a non-empty title, or a price are skipped; they
// are legitimately not products (ads, placeholders), not errors.
type Extractor interface {
	Extract(html string) ([]*Product, error)
}
