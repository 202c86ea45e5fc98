package goquery

import (
	"regexp"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// findTextNode returns the first text node under the selection whose
// content matches re, in document order. The pattern is tested per text
// node, not against the fragment's concatenated text, so matches never
// span element boundaries.
func findTextNode(sel *goquery.Selection, re *regexp.Regexp) (string, bool) {
	for _, n := range sel.Nodes {
		if s, ok := findTextInNode(n, re); ok {
			return s, true
		}
	}
	return "", false
}

func findTextInNode(n *html.Node, re *regexp.Regexp) (string, bool) {
	if n.Type == html.TextNode {
		if re.MatchString(n.Data) {
			return n.Data, true
		}
		return "", false
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if s, ok := findTextInNode(c, re); ok {
			return s, true
		}
	}
	return "", false
}
