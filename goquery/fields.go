package goquery

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/stefw/cardex"
)

// fieldStrategy attempts to resolve one field from a card fragment.
// Strategies are total and side-effect-free: absence of a signal is
// reported as ok=false, never as an error.
type fieldStrategy func(card *goquery.Selection) (value string, ok bool)

// firstOf runs strategies in priority order and returns the first
// successful result.
func firstOf(card *goquery.Selection, strategies []fieldStrategy) (string, bool) {
	for _, strategy := range strategies {
		if v, ok := strategy(card); ok {
			return v, true
		}
	}
	return "", false
}

var (
	digitsRe     = regexp.MustCompile(`\d+`)
	ratingRe     = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*out\s*of\s*5`)
	reviewWordRe = regexp.MustCompile(`review|rating`)
	inventoryRe  = regexp.MustCompile(`(?i)only \d+ left|\d+ left|only \d+ in stock|low stock`)
)

// ratingStrategies resolve a star rating, in priority order:
// accessibility label, star-icon count, visible text.
var ratingStrategies = []fieldStrategy{
	ratingFromAriaLabel,
	ratingFromStarIcons,
	ratingFromText,
}

func extractRating(card *goquery.Selection) string {
	if v, ok := firstOf(card, ratingStrategies); ok {
		return v
	}
	return cardex.Unknown
}

// ratingFromAriaLabel parses the leading number of an accessibility
// label of the form "<number> out of 5 stars".
func ratingFromAriaLabel(card *goquery.Selection) (string, bool) {
	label, ok := card.Find(`[aria-label*="out of 5 stars"]`).First().Attr("aria-label")
	if !ok {
		return "", false
	}
	return parseRating(label)
}

// ratingFromStarIcons counts full-star icons plus 0.5 per half-star
// icon inside the dedicated rating-stars container. A present container
// with zero icons is still a signal: it yields "0.0/5".
func ratingFromStarIcons(card *goquery.Selection) (string, bool) {
	stars := card.Find(`div[data-test="rating-stars"]`).First()
	if stars.Length() == 0 {
		return "", false
	}
	value := float64(stars.Find(`svg[data-test*="full-star"]`).Length())
	if stars.Find(`svg[data-test*="half-star"]`).Length() > 0 {
		value += 0.5
	}
	return formatRating(value), true
}

// ratingFromText searches the fragment's text nodes for a
// "<number> out of 5" pattern.
func ratingFromText(card *goquery.Selection) (string, bool) {
	text, ok := findTextNode(card, ratingRe)
	if !ok {
		return "", false
	}
	return parseRating(text)
}

func parseRating(s string) (string, bool) {
	m := ratingRe.FindStringSubmatch(s)
	if m == nil {
		return "", false
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return "", false
	}
	return formatRating(v), true
}

// formatRating renders a rating as "<value>/5" with at least one
// decimal place ("4.0/5", "4.5/5").
func formatRating(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s + "/5"
}

// reviewCountStrategies resolve the review count, in priority order:
// the dedicated rating-count element, then any text node mentioning
// reviews or ratings.
var reviewCountStrategies = []fieldStrategy{
	reviewsFromRatingCount,
	reviewsFromText,
}

func extractReviewCount(card *goquery.Selection) int {
	v, ok := firstOf(card, reviewCountStrategies)
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0
	}
	return n
}

// reviewsFromRatingCount reads digits from the dedicated rating-count
// element, thousands separators stripped. A present element without
// digits resolves to "0" rather than falling through; the element's
// existence is the signal.
func reviewsFromRatingCount(card *goquery.Selection) (string, bool) {
	elem := card.Find(`[data-test="rating-count"]`).First()
	if elem.Length() == 0 {
		return "", false
	}
	return digitsOrZero(elem.Text()), true
}

// reviewsFromText reads digits from the first text node matching a
// review/rating keyword.
func reviewsFromText(card *goquery.Selection) (string, bool) {
	text, ok := findTextNode(card, reviewWordRe)
	if !ok {
		return "", false
	}
	return digitsOrZero(text), true
}

func digitsOrZero(s string) string {
	if m := digitsRe.FindString(strings.ReplaceAll(s, ",", "")); m != "" {
		return m
	}
	return "0"
}

// extractInventory searches the fragment's text for low-stock phrasing
// ("only N left", "N left", "only N in stock", "low stock"). The
// captured count wins; a countless "low stock" phrase returns the
// literal "Low Stock" rather than the unknown sentinel because the
// phrase itself is a positive inventory signal.
func extractInventory(card *goquery.Selection) string {
	text, ok := findTextNode(card, inventoryRe)
	if !ok {
		return cardex.Unknown
	}
	if m := digitsRe.FindString(text); m != "" {
		return m
	}
	return "Low Stock"
}

// extractBrand returns the text of the first element whose data-test
// attribute mentions a brand.
func extractBrand(card *goquery.Selection) string {
	elem := card.Find(`[data-test*="brand"]`).First()
	if elem.Length() == 0 {
		return cardex.Unknown
	}
	brand := strings.TrimSpace(elem.Text())
	if brand == "" {
		return cardex.Unknown
	}
	return brand
}
