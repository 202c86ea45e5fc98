// Package http provides an HTTP-backed page source for fetching listing
// pages directly from the site. Rate limiting and retry with backoff
// live here, outside the extraction core.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/stefw/cardex"
	"golang.org/x/time/rate"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// DefaultRate is the default request rate limit in requests per second.
const DefaultRate = 1.0

// DefaultRetryDelays returns the backoff delays for fetch retries: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// Compile-time interface verification.
var _ cardex.PageSource = (*Source)(nil)

// Source supplies listing pages fetched over HTTP. Page names are URLs.
// This source does not execute JavaScript and is suitable only for
// server-rendered listing pages.
type Source struct {
	urls        []string
	client      *http.Client
	limiter     *rate.Limiter
	timeout     time.Duration
	retryDelays []time.Duration
}

// Option configures a Source.
type Option func(*Source)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(s *Source) {
		s.timeout = d
	}
}

// WithRate sets the request rate limit in requests per second.
// Defaults to DefaultRate with a burst of 1 (no bursting allowed).
func WithRate(rps float64) Option {
	return func(s *Source) {
		s.limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
}

// WithRetryDelays sets the backoff delays between retry attempts.
// Useful for testing without waiting for real delays.
func WithRetryDelays(delays []time.Duration) Option {
	return func(s *Source) {
		s.retryDelays = delays
	}
}

// NewSource creates a Source over the given listing-page URLs.
func NewSource(urls []string, opts ...Option) *Source {
	s := &Source{
		urls:        urls,
		timeout:     DefaultFetchTimeout,
		limiter:     rate.NewLimiter(rate.Limit(DefaultRate), 1),
		retryDelays: DefaultRetryDelays(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.client = &http.Client{
		Timeout: s.timeout,
	}

	return s
}

// List returns the configured URLs in order.
func (s *Source) List(ctx context.Context) ([]string, error) {
	urls := make([]string, len(s.urls))
	copy(urls, s.urls)
	return urls, nil
}

// Read fetches the page at the given URL, waiting for the rate limiter
// and retrying with backoff on failure.
func (s *Source) Read(ctx context.Context, url string) (*cardex.Page, error) {
	maxAttempts := len(s.retryDelays) + 1

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		if err := s.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		html, err := s.fetch(ctx, url)
		if err == nil {
			return &cardex.Page{Name: url, HTML: html}, nil
		}
		lastErr = err

		if attempt >= maxAttempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(s.retryDelays[attempt]):
		}
	}

	return nil, fmt.Errorf("failed to fetch %s after %d attempts: %w", url, maxAttempts, lastErr)
}

func (s *Source) fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	return string(body), nil
}
