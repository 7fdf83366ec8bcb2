package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/semanticgateway/pagelens"
)

// Address confidence priors: matches carrying a ZIP code versus without.
const (
	confidenceAddressZIP   = 0.7
	confidenceAddressNoZIP = 0.55
)

// US street address with optional ZIP: "123 Main St, Springfield, IL 62704".
var addressPattern = regexp.MustCompile(
	`(\d{1,6}\s+[A-Za-z0-9\s.]+(?:St|Street|Ave|Avenue|Blvd|Boulevard|Dr|Drive|Rd|Road|Way|Ln|Lane|Ct|Court|Pl|Place|Pkwy|Parkway|Cir|Circle|Hwy|Highway)\.?)\s*,?\s*([A-Za-z\s]+?)\s*,?\s*([A-Z]{2})\s*(\d{5}(?:-\d{4})?)?`)

var usStates = map[string]bool{
	"AL": true, "AK": true, "AZ": true, "AR": true, "CA": true, "CO": true,
	"CT": true, "DE": true, "FL": true, "GA": true, "HI": true, "ID": true,
	"IL": true, "IN": true, "IA": true, "KS": true, "KY": true, "LA": true,
	"ME": true, "MD": true, "MA": true, "MI": true, "MN": true, "MS": true,
	"MO": true, "MT": true, "NE": true, "NV": true, "NH": true, "NJ": true,
	"NM": true, "NY": true, "NC": true, "ND": true, "OH": true, "OK": true,
	"OR": true, "PA": true, "RI": true, "SC": true, "SD": true, "TN": true,
	"TX": true, "UT": true, "VT": true, "VA": true, "WA": true, "WV": true,
	"WI": true, "WY": true, "DC": true,
}

// extractAddresses matches US postal addresses in address-labeled elements
// plus the page body. Matches with a real two-letter state survive; a ZIP
// code raises confidence.
func extractAddresses(doc *goquery.Document) []pagelens.HeuristicAddress {
	addresses := []pagelens.HeuristicAddress{}
	seen := make(map[string]bool)

	for _, m := range addressPattern.FindAllStringSubmatch(addressCorpus(doc), -1) {
		street := clean(m[1])
		city := clean(m[2])
		state := m[3]
		zip := m[4]

		if len(street) < 5 || !usStates[state] {
			continue
		}
		key := strings.ToLower(street + "|" + city + "|" + state)
		if seen[key] {
			continue
		}
		seen[key] = true

		confidence := confidenceAddressNoZIP
		if zip != "" {
			confidence = confidenceAddressZIP
		}
		addresses = append(addresses, pagelens.HeuristicAddress{
			StreetAddress: street,
			City:          city,
			State:         state,
			PostalCode:    zip,
			Confidence:    confidence,
		})
	}
	return addresses
}

// addressCorpus gathers text from address-labeled elements, semantic
// address markup, and the footer, then appends the body so free-floating
// addresses are still found.
func addressCorpus(doc *goquery.Document) string {
	labeled := attrContainsFold(doc.Selection, "class", "address").
		AddSelection(attrContainsFold(doc.Selection, "id", "address")).
		AddSelection(attrContainsFold(doc.Selection, "class", "location")).
		AddSelection(attrContainsFold(doc.Selection, "id", "location")).
		AddSelection(doc.Find(`[itemprop="address"], address, footer`))

	var sb strings.Builder
	labeled.Each(func(_ int, el *goquery.Selection) {
		sb.WriteString(el.Text())
		sb.WriteString("\n")
	})
	sb.WriteString(doc.Find("body").Text())
	return sb.String()
}
