// Package cardex extracts structured product records from saved
// catalog-listing pages of a single e-commerce site, deduplicates them
// against previously collected records, and appends novel records to a
// persistent tabular store.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, csv/).
package cardex
