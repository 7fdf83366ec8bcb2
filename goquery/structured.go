package goquery

import (
	"encoding/json"
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/semanticgateway/pagelens"
)

var (
	// NANP-style phone pattern: optional country code, flexible separators.
	phonePattern = regexp.MustCompile(`(?:\+1[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)

	// A run of 10+ digits with no separator is a tracking or order ID, not
	// a phone number.
	trackingIDPattern = regexp.MustCompile(`^\d{10,}$`)

	emailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)

	// Title separators: pipe, en dash, em dash, middle dot. A plain hyphen
	// is deliberately excluded; it appears inside too many brand names.
	titleSeparators = regexp.MustCompile(`\s*[|–—·]\s*`)
)

// extractStructured mines OpenGraph tags, JSON-LD entities, regex-based
// contact info, and a cleaned page title from the document.
func extractStructured(doc *goquery.Document, base *url.URL) *pagelens.StructuredData {
	og := extractOpenGraph(doc)
	entities := extractJSONLD(doc)
	contact := extractContactInfo(doc)

	rawTitle := og.Get("title")
	if rawTitle = strings.TrimSpace(rawTitle); rawTitle == "" {
		rawTitle = strings.TrimSpace(doc.Find("title").First().Text())
	}
	if rawTitle == "" {
		rawTitle = strings.TrimSpace(doc.Find("h1").First().Text())
	}

	description := strings.TrimSpace(og.Get("description"))
	if description == "" {
		description = strings.TrimSpace(doc.Find(`meta[name="description"]`).AttrOr("content", ""))
	}

	s := &pagelens.StructuredData{
		Title:       cleanTitle(rawTitle),
		Description: description,
		JSONLD:      entities,
		ContactInfo: contact,
	}
	if og.Len() > 0 {
		s.OGData = og
	}
	return s
}

// extractOpenGraph scans og:-prefixed meta tags. The prefix is stripped and
// the last occurrence of a duplicate property wins.
func extractOpenGraph(doc *goquery.Document) *pagelens.OGData {
	og := &pagelens.OGData{}
	doc.Find(`meta[property^="og:"]`).Each(func(_ int, s *goquery.Selection) {
		prop := strings.TrimPrefix(s.AttrOr("property", ""), "og:")
		content := s.AttrOr("content", "")
		if prop != "" && content != "" {
			og.Set(prop, content)
		}
	})
	return og
}

// extractJSONLD parses every linked-data block independently. A malformed
// block is skipped without disturbing its siblings, and @graph wrappers are
// flattened into their member entities in document order.
func extractJSONLD(doc *goquery.Document) []pagelens.Entity {
	var entities []pagelens.Entity
	doc.Find(`script[type="application/ld+json"]`).Each(func(_ int, s *goquery.Selection) {
		dec := json.NewDecoder(strings.NewReader(s.Text()))
		dec.UseNumber()

		var v any
		if err := dec.Decode(&v); err != nil {
			return // malformed JSON-LD, skip
		}

		switch t := v.(type) {
		case map[string]any:
			if graph, ok := t["@graph"].([]any); ok {
				entities = append(entities, entityMaps(graph)...)
			} else {
				entities = append(entities, pagelens.Entity(t))
			}
		case []any:
			entities = append(entities, entityMaps(t)...)
		}
	})
	return entities
}

// entityMaps converts array members to entities. Non-object members carry
// no properties to render, so they are skipped rather than passed through.
func entityMaps(arr []any) []pagelens.Entity {
	var out []pagelens.Entity
	for _, el := range arr {
		if m, ok := el.(map[string]any); ok {
			out = append(out, pagelens.Entity(m))
		}
	}
	return out
}

// extractContactInfo finds phones and emails by regex over the body text and
// addresses in address-hinted elements. All three are deduplicated by exact
// string, preserving first-seen order. Returns nil when nothing was found.
func extractContactInfo(doc *goquery.Document) *pagelens.ContactInfo {
	bodyText := doc.Find("body").Text()

	var phones []string
	seenPhones := make(map[string]bool)
	for _, m := range phonePattern.FindAllString(bodyText, -1) {
		m = strings.TrimSpace(m)
		if trackingIDPattern.MatchString(m) || seenPhones[m] {
			continue
		}
		seenPhones[m] = true
		phones = append(phones, m)
	}

	var emails []string
	seenEmails := make(map[string]bool)
	for _, m := range emailPattern.FindAllString(bodyText, -1) {
		m = strings.TrimSpace(m)
		if seenEmails[m] {
			continue
		}
		seenEmails[m] = true
		emails = append(emails, m)
	}

	var addresses []string
	seenAddrs := make(map[string]bool)
	doc.Find(`[itemprop="address"], .address, [class*="address"]`).Each(func(_ int, s *goquery.Selection) {
		t := clean(s.Text())
		if len(t) <= 10 || seenAddrs[t] {
			return
		}
		seenAddrs[t] = true
		addresses = append(addresses, t)
	})

	if len(phones) == 0 && len(emails) == 0 && len(addresses) == 0 {
		return nil
	}
	return &pagelens.ContactInfo{Phones: phones, Emails: emails, Addresses: addresses}
}

// cleanTitle splits a raw title on separator characters and keeps the
// shortest segment longer than one character; brand names are typically
// shorter than the trailing tagline. Titles without separators pass through
// unchanged.
func cleanTitle(raw string) string {
	parts := titleSeparators.Split(raw, -1)
	var kept []string
	for _, p := range parts {
		if len(p) > 1 {
			kept = append(kept, p)
		}
	}
	if len(kept) < 2 {
		return raw
	}
	shortest := kept[0]
	for _, p := range kept[1:] {
		if len(p) < len(shortest) {
			shortest = p
		}
	}
	return shortest
}
