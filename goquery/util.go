package goquery

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var whitespaceRuns = regexp.MustCompile(`\s+`)

// clean collapses runs of whitespace to single spaces and trims the result.
func clean(t string) string {
	return strings.TrimSpace(whitespaceRuns.ReplaceAllString(t, " "))
}

// resolveRef resolves href against base into an absolute URL.
// When base is nil or href cannot be parsed, href is returned unchanged so a
// broken link is preserved rather than dropped.
func resolveRef(base *url.URL, href string) string {
	if base == nil {
		return href
	}
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	return base.ResolveReference(ref).String()
}

// attrContainsFold returns the elements under root whose named attribute
// contains token, ASCII case-insensitive. It stands in for the CSS
// [attr*=token i] selector.
func attrContainsFold(root *goquery.Selection, attr, token string) *goquery.Selection {
	return root.Find("[" + attr + "]").FilterFunction(func(_ int, s *goquery.Selection) bool {
		v, _ := s.Attr(attr)
		return strings.Contains(strings.ToLower(v), token)
	})
}

// firstText returns the trimmed text of the first element under el matching
// selector, or "".
func firstText(el *goquery.Selection, selector string) string {
	return strings.TrimSpace(el.Find(selector).First().Text())
}
