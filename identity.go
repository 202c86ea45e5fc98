package cardex

import (
	"net/url"
	"regexp"
	"strings"
)

// NormalizeIdentity resolves a possibly-relative href against the base
// origin and returns the canonical identity: scheme+host+path with the
// query string and fragment stripped. Normalization is idempotent; two
// URLs differing only in query or fragment normalize to the same
// identity. Returns an empty string if the href cannot be resolved.
func NormalizeIdentity(baseURL, href string) string {
	if strings.TrimSpace(href) == "" {
		return ""
	}
	base, err := url.Parse(baseURL)
	if err != nil {
		return ""
	}
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	resolved := base.ResolveReference(ref)
	if resolved.Scheme == "" || resolved.Host == "" {
		return ""
	}
	return resolved.Scheme + "://" + resolved.Host + resolved.Path
}

var externalIDRe = regexp.MustCompile(`(\d+)`)

// ExtractExternalID returns the digits immediately following the marker
// in the identity path (e.g. "/A-" for the source site's numeric item
// id), or Unknown if the marker or digits are absent.
func ExtractExternalID(identity, marker string) string {
	idx := strings.Index(identity, marker)
	if idx == -1 {
		return Unknown
	}
	rest := identity[idx+len(marker):]
	loc := externalIDRe.FindStringIndex(rest)
	if loc == nil || loc[0] != 0 {
		return Unknown
	}
	return rest[loc[0]:loc[1]]
}
