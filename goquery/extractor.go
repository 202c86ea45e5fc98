// Package goquery provides the goquery-based product extraction engine:
// it locates product-card fragments in listing-page HTML and pulls typed
// fields out of them through ordered fallback strategies.
package goquery

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/stefw/cardex"
)

// Compile-time interface verification.
var _ cardex.Extractor = (*Extractor)(nil)

// Extractor implements cardex.Extractor over parsed HTML documents.
type Extractor struct {
	cfg          Config
	cardSelector string
	titleLinkSel string
	logoSelector string
	onlyAtRe     *regexp.Regexp
	soldByRe     *regexp.Regexp
}

// NewExtractor creates an Extractor for the given site configuration.
// Zero-value config fields fall back to DefaultConfig values.
func NewExtractor(cfg Config) *Extractor {
	def := DefaultConfig()
	if cfg.BaseURL == "" {
		cfg.BaseURL = def.BaseURL
	}
	if len(cfg.CardTokens) == 0 {
		cfg.CardTokens = def.CardTokens
	}
	if cfg.ProductPathMarker == "" {
		cfg.ProductPathMarker = def.ProductPathMarker
	}
	if cfg.TitleLinkRole == "" {
		cfg.TitleLinkRole = def.TitleLinkRole
	}
	if cfg.IDMarker == "" {
		cfg.IDMarker = def.IDMarker
	}
	if cfg.Platform == "" {
		cfg.Platform = def.Platform
	}

	selectors := make([]string, len(cfg.CardTokens))
	for i, token := range cfg.CardTokens {
		selectors[i] = fmt.Sprintf("div[data-test*=%q]", token)
	}

	platform := regexp.QuoteMeta(cfg.Platform)
	return &Extractor{
		cfg:          cfg,
		cardSelector: strings.Join(selectors, ", "),
		titleLinkSel: fmt.Sprintf("a[href*=%q][data-test=%q]", cfg.ProductPathMarker, cfg.TitleLinkRole),
		logoSelector: fmt.Sprintf("svg[aria-label=%q]", cfg.Platform+" logo"),
		onlyAtRe:     regexp.MustCompile(`(?i)only at ` + platform),
		soldByRe:     regexp.MustCompile(`(?i)sold by ` + platform),
	}
}

// Extract parses the document and returns one product per distinct card
// identity, in document order. Fragments that are not resolvable
// products (no title anchor, empty title, no current-price marker) are
// skipped silently; duplicate identities within the document keep the
// first occurrence.
func (e *Extractor) Extract(html string) ([]*cardex.Product, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, cardex.Errorf(cardex.EINVALID, "failed to parse HTML: %v", err)
	}

	seen := make(map[string]struct{})
	var products []*cardex.Product

	doc.Find(e.cardSelector).Each(func(_ int, card *goquery.Selection) {
		p := e.extractCard(card)
		if p == nil {
			return
		}
		if _, ok := seen[p.Identity]; ok {
			// Same card rendered twice (e.g. grid and carousel).
			return
		}
		seen[p.Identity] = struct{}{}
		products = append(products, p)
	})

	return products, nil
}

// extractCard assembles one product from a card fragment. Returns nil
// if any mandatory field (identity, title, price) is missing.
func (e *Extractor) extractCard(card *goquery.Selection) *cardex.Product {
	link := card.Find(e.titleLinkSel).First()
	if link.Length() == 0 {
		return nil
	}
	href, ok := link.Attr("href")
	if !ok {
		return nil
	}

	identity := cardex.NormalizeIdentity(e.cfg.BaseURL, href)
	if identity == "" {
		return nil
	}

	title := strings.TrimSpace(link.Text())
	if title == "" {
		return nil
	}

	price := card.Find(`[data-test="current-price"]`).First()
	if price.Length() == 0 {
		return nil
	}

	soldByPlatform := e.extractSoldByPlatform(card)
	seller := cardex.Unknown
	if soldByPlatform {
		seller = e.cfg.Platform
	}

	return &cardex.Product{
		Identity:       identity,
		Title:          title,
		Brand:          extractBrand(card),
		Price:          strings.TrimSpace(price.Text()),
		Rating:         extractRating(card),
		ReviewCount:    extractReviewCount(card),
		Inventory:      extractInventory(card),
		SoldByPlatform: soldByPlatform,
		Seller:         seller,
		ExternalID:     cardex.ExtractExternalID(identity, e.cfg.IDMarker),
	}
}

// extractSoldByPlatform reports whether the card is a first-party
// listing: "only at <platform>" text, the platform's logo, or
// "sold by <platform>" text.
func (e *Extractor) extractSoldByPlatform(card *goquery.Selection) bool {
	if _, ok := findTextNode(card, e.onlyAtRe); ok {
		return true
	}
	if card.Find(e.logoSelector).Length() > 0 {
		return true
	}
	_, ok := findTextNode(card, e.soldByRe)
	return ok
}
