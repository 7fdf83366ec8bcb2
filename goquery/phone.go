package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/semanticgateway/pagelens"
)

// Phone confidence priors: explicit tel: links versus pattern matches in
// contact-labeled text.
const (
	confidencePhoneTelLink = 0.9
	confidencePhoneText    = 0.75
)

// extractPhones reads tel: links first, then scans contact-labeled elements
// for NANP-shaped numbers. Long unbroken digit runs are discarded as
// call-tracking identifiers.
func extractPhones(doc *goquery.Document) []pagelens.HeuristicPhone {
	phones := []pagelens.HeuristicPhone{}
	seen := make(map[string]bool)

	add := func(value string, confidence float64) {
		if len(digitsOnly(value)) < 10 || seen[value] {
			return
		}
		seen[value] = true
		phones = append(phones, pagelens.HeuristicPhone{
			Value:      value,
			Confidence: confidence,
		})
	}

	doc.Find(`a[href^="tel:"]`).Each(func(_ int, el *goquery.Selection) {
		href, _ := el.Attr("href")
		number := strings.TrimSpace(strings.TrimPrefix(href, "tel:"))
		if len(number) >= 10 {
			add(number, confidencePhoneTelLink)
		}
	})

	for _, match := range phonePattern.FindAllString(phoneCorpus(doc), -1) {
		if trackingIDPattern.MatchString(match) {
			continue
		}
		add(strings.TrimSpace(match), confidencePhoneText)
	}
	return phones
}

// phoneCorpus gathers text from contact-labeled elements, telephone
// microdata, and the footer.
func phoneCorpus(doc *goquery.Document) string {
	labeled := attrContainsFold(doc.Selection, "class", "phone").
		AddSelection(attrContainsFold(doc.Selection, "class", "tel")).
		AddSelection(attrContainsFold(doc.Selection, "class", "contact")).
		AddSelection(attrContainsFold(doc.Selection, "id", "phone")).
		AddSelection(attrContainsFold(doc.Selection, "id", "contact")).
		AddSelection(doc.Find(`[itemprop="telephone"], footer`))

	var sb strings.Builder
	labeled.Each(func(_ int, el *goquery.Selection) {
		sb.WriteString(el.Text())
		sb.WriteString("\n")
	})
	return sb.String()
}

func digitsOnly(s string) string {
	var sb strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
