package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/semanticgateway/pagelens"
)

// extractNavLinks collects navigation anchors with resolved absolute URLs,
// deduplicated by visible link text so repeated desktop/mobile menus don't
// double up.
func extractNavLinks(doc *goquery.Document, base *url.URL) []pagelens.NavLink {
	seen := make(map[string]bool)
	var links []pagelens.NavLink

	doc.Find(`nav a[href], [role="navigation"] a[href]`).Each(func(_ int, s *goquery.Selection) {
		text := clean(s.Text())
		href := resolveRef(base, s.AttrOr("href", ""))
		if len(text) <= 1 || href == "" || seen[text] {
			return
		}
		seen[text] = true
		links = append(links, pagelens.NavLink{Text: text, URL: href})
	})

	return links
}

// collectPDFLinks gathers anchors targeting PDF documents, including
// query-served ones, resolved to absolute URLs in first-seen order.
func collectPDFLinks(doc *goquery.Document, base *url.URL) []string {
	seen := make(map[string]bool)
	pdfs := []string{}

	doc.Find(`a[href$=".pdf"], a[href*=".pdf?"]`).Each(func(_ int, s *goquery.Selection) {
		href := strings.TrimSpace(s.AttrOr("href", ""))
		if href == "" {
			return
		}
		resolved := resolveRef(base, href)
		if resolved == "" || seen[resolved] {
			return
		}
		seen[resolved] = true
		pdfs = append(pdfs, resolved)
	})

	return pdfs
}
