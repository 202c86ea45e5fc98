// Package slog provides logging decorators for cardex services.
package slog

import (
	"log/slog"
	"time"

	"github.com/stefw/cardex"
)

// Ensure LoggingExtractor implements cardex.Extractor.
var _ cardex.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with debug logging for each
// processed document.
type LoggingExtractor struct {
	next   cardex.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next cardex.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the outcome.
func (e *LoggingExtractor) Extract(html string) ([]*cardex.Product, error) {
	begin := time.Now()
	products, err := e.next.Extract(html)
	if err != nil {
		e.logger.Error("extraction failed",
			"bytes", len(html),
			"duration", time.Since(begin),
			"error", err,
		)
		return nil, err
	}
	e.logger.Debug("extracted products",
		"bytes", len(html),
		"products", len(products),
		"duration", time.Since(begin),
	)
	return products, nil
}
