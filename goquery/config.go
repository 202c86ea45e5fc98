package goquery

// Config holds the site-specific markers the extraction engine matches
// against. The defaults target the source site's production markup; all
// values are explicit so fixtures and alternate templates can override
// them in tests.
type Config struct {
	// BaseURL is the origin relative product links are resolved against.
	BaseURL string

	// CardTokens are the data-test attribute substrings that mark a
	// product-card fragment. The site renders cards with at least two
	// structurally different templates, hence multiple tokens.
	CardTokens []string

	// ProductPathMarker is the path substring identifying product links.
	ProductPathMarker string

	// TitleLinkRole is the data-test value marking the title anchor
	// within a card. This anchor carries the card's identity.
	TitleLinkRole string

	// IDMarker is the identity path marker the numeric external id
	// follows (e.g. "/A-12345678" in a product URL).
	IDMarker string

	// Platform is the marketplace's own brand name, used to detect
	// first-party listings ("only at X", "sold by X", the X logo).
	Platform string
}

// DefaultConfig returns the production configuration for the source site.
func DefaultConfig() Config {
	return Config{
		BaseURL:           "https://www.target.com",
		CardTokens:        []string{"product-card", "@web/ProductCard"},
		ProductPathMarker: "/p/",
		TitleLinkRole:     "product-title",
		IDMarker:          "/A-",
		Platform:          "Target",
	}
}
