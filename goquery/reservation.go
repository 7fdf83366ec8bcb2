package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/semanticgateway/pagelens"
)

// Reservation confidence priors. Hand-set, not calibrated probabilities;
// what matters is the ordering: platform link > platform fingerprint >
// generic booking link.
const (
	confidencePlatformLinked = 0.95
	confidencePlatformHinted = 0.7
	confidenceDirectLink     = 0.6
)

// reservationPlatform pairs a platform name with the DOM fingerprints that
// identify it: outbound links, embedded frames, class/id tokens, and script
// sources.
type reservationPlatform struct {
	name      string
	selectors []string
}

// Evaluated in order; candidates are deduplicated by (platform, URL).
var reservationPlatforms = []reservationPlatform{
	{
		name: pagelens.PlatformOpenTable,
		selectors: []string{
			`a[href*="opentable.com"]`,
			`iframe[src*="opentable.com"]`,
			`[class*="opentable"]`,
			`[id*="opentable"]`,
			`script[src*="opentable"]`,
		},
	},
	{
		name: pagelens.PlatformResy,
		selectors: []string{
			`a[href*="resy.com"]`,
			`iframe[src*="resy.com"]`,
			`[class*="resy"]`,
			`script[src*="resy"]`,
		},
	},
	{
		name: pagelens.PlatformTock,
		selectors: []string{
			`a[href*="exploretock.com"]`,
			`iframe[src*="exploretock.com"]`,
			`script[src*="exploretock"]`,
		},
	},
	{
		name: pagelens.PlatformYelp,
		selectors: []string{
			`a[href*="yelp.com/reservations"]`,
		},
	},
}

// detectReservations matches known booking-platform fingerprints against the
// document. The generic "book now" fallback runs only when no platform
// produced a candidate, so platform detection always takes precedence.
func detectReservations(doc *goquery.Document, base *url.URL) []pagelens.ReservationInfo {
	var results []pagelens.ReservationInfo
	seen := make(map[string]bool)

	for _, platform := range reservationPlatforms {
		for _, selector := range platform.selectors {
			doc.Find(selector).Each(func(_ int, s *goquery.Selection) {
				href := s.AttrOr("href", "")
				if href == "" {
					href = s.AttrOr("src", "")
				}
				resolved := ""
				if href != "" {
					resolved = resolveRef(base, href)
				}

				key := platform.name + ":" + resolved
				if seen[key] {
					return
				}
				seen[key] = true

				confidence := confidencePlatformHinted
				if resolved != "" {
					confidence = confidencePlatformLinked
				}
				results = append(results, pagelens.ReservationInfo{
					Platform:   platform.name,
					URL:        resolved,
					Confidence: confidence,
				})
			})
		}
	}

	if len(results) > 0 {
		return results
	}

	// Generic fallback: anchors whose visible text reads like a booking
	// call-to-action and that carry a real href.
	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		text := strings.ToLower(clean(s.Text()))
		href := s.AttrOr("href", "")
		if href == "" || strings.HasPrefix(href, "#") || strings.HasPrefix(href, "javascript") {
			return
		}
		if !strings.Contains(text, "reserv") &&
			!strings.Contains(text, "book a table") &&
			!strings.Contains(text, "book now") {
			return
		}

		resolved := resolveRef(base, href)
		if seen[resolved] {
			return
		}
		seen[resolved] = true
		results = append(results, pagelens.ReservationInfo{
			Platform:   pagelens.PlatformDirect,
			URL:        resolved,
			Confidence: confidenceDirectLink,
		})
	})

	return results
}
