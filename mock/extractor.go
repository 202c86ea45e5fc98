// Package mock provides mock implementations of cardex interfaces for testing.
package mock

import "github.com/stefw/cardex"

var _ cardex.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of cardex.Extractor.
type Extractor struct {
	ExtractFn func(html string) ([]*cardex.Product, error)
}

func (e *Extractor) Extract(html string) ([]*cardex.Product, error) {
	return e.ExtractFn(html)
}
