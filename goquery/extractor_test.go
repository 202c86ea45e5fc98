package goquery_test

import (
	"testing"

	"github.com/stefw/cardex"
	"github.com/stefw/cardex/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestExtractor() *goquery.Extractor {
	return goquery.NewExtractor(goquery.Config{BaseURL: "https://www.example.com"})
}

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts a full record from a complete card", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<body>
<div data-test="product-card">
	<a href="/p/hero-figure-x/-/A-87654321?ref=grid" data-test="product-title">Hero Figure X</a>
	<div data-test="@web/ProductCardBrand"><span data-test="store-brand">Acme Toys</span></div>
	<span data-test="current-price">$19.99</span>
	<div aria-label="4 out of 5 stars"></div>
	<span data-test="rating-count">128 ratings</span>
	<span>Sold by Target</span>
</div>
</body>
</html>`

		products, err := newTestExtractor().Extract(html)

		require.NoError(t, err)
		require.Len(t, products, 1)

		p := products[0]
		assert.Equal(t, "https://www.example.com/p/hero-figure-x/-/A-87654321", p.Identity)
		assert.Equal(t, "Hero Figure X", p.Title)
		assert.Equal(t, "Acme Toys", p.Brand)
		assert.Equal(t, "$19.99", p.Price)
		assert.Equal(t, "4.0/5", p.Rating)
		assert.Equal(t, 128, p.ReviewCount)
		assert.Equal(t, cardex.Unknown, p.Inventory)
		assert.True(t, p.SoldByPlatform)
		assert.Equal(t, "Target", p.Seller)
		assert.Equal(t, "87654321", p.ExternalID)
	})

	t.Run("matches both card templates in document order", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<div data-test="product-card">
	<a href="/p/first/-/A-1" data-test="product-title">First</a>
	<span data-test="current-price">$1.00</span>
</div>
<div data-test="@web/ProductCard">
	<a href="/p/second/-/A-2" data-test="product-title">Second</a>
	<span data-test="current-price">$2.00</span>
</div>
</body></html>`

		products, err := newTestExtractor().Extract(html)

		require.NoError(t, err)
		require.Len(t, products, 2)
		assert.Equal(t, "First", products[0].Title)
		assert.Equal(t, "Second", products[1].Title)
	})

	t.Run("drops card without a title anchor", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<div data-test="product-card">
	<a href="/p/item/-/A-1">not the title link</a>
	<span data-test="current-price">$1.00</span>
</div>
</body></html>`

		products, err := newTestExtractor().Extract(html)

		require.NoError(t, err)
		assert.Empty(t, products)
	})

	t.Run("drops card whose anchor path lacks the product marker", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<div data-test="product-card">
	<a href="/c/action-figures" data-test="product-title">Category</a>
	<span data-test="current-price">$1.00</span>
</div>
</body></html>`

		products, err := newTestExtractor().Extract(html)

		require.NoError(t, err)
		assert.Empty(t, products)
	})

	t.Run("drops card with empty title text", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<div data-test="product-card">
	<a href="/p/item/-/A-1" data-test="product-title">   </a>
	<span data-test="current-price">$1.00</span>
</div>
</body></html>`

		products, err := newTestExtractor().Extract(html)

		require.NoError(t, err)
		assert.Empty(t, products)
	})

	t.Run("drops card without a current-price marker", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<div data-test="product-card">
	<a href="/p/item/-/A-1" data-test="product-title">Item</a>
	<span class="price">$1.00</span>
</div>
</body></html>`

		products, err := newTestExtractor().Extract(html)

		require.NoError(t, err)
		assert.Empty(t, products)
	})

	t.Run("first-seen wins for duplicate identities", func(t *testing.T) {
		t.Parallel()

		// Same product rendered in grid and carousel, differing only in
		// query string.
		html := `<html><body>
<div data-test="product-card">
	<a href="/p/item/-/A-1?ref=grid" data-test="product-title">Grid Copy</a>
	<span data-test="current-price">$1.00</span>
</div>
<div data-test="@web/ProductCard">
	<a href="/p/item/-/A-1?ref=carousel" data-test="product-title">Carousel Copy</a>
	<span data-test="current-price">$1.00</span>
</div>
</body></html>`

		products, err := newTestExtractor().Extract(html)

		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, "Grid Copy", products[0].Title)
	})

	t.Run("non-product fragments yield no records, not errors", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<div data-test="product-card"><p>Sponsored placeholder</p></div>
<div class="ad-banner">Buy now!</div>
</body></html>`

		products, err := newTestExtractor().Extract(html)

		require.NoError(t, err)
		assert.Empty(t, products)
	})

	t.Run("empty document yields no records", func(t *testing.T) {
		t.Parallel()

		products, err := newTestExtractor().Extract("")

		require.NoError(t, err)
		assert.Empty(t, products)
	})
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := goquery.DefaultConfig()

	assert.Equal(t, "https://www.target.com", cfg.BaseURL)
	assert.Equal(t, []string{"product-card", "@web/ProductCard"}, cfg.CardTokens)
	assert.Equal(t, "/p/", cfg.ProductPathMarker)
	assert.Equal(t, "/A-", cfg.IDMarker)
	assert.Equal(t, "Target", cfg.Platform)
}
