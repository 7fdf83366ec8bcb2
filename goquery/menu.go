package goquery

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/semanticgateway/pagelens"
	"github.com/shopspring/decimal"
)

// Currency-prefixed price, e.g. "$12" or "$ 9.50".
var pricePattern = regexp.MustCompile(`\$\s?(\d{1,4}(?:\.\d{1,2})?)`)

// Plausible price window for a single dish. Values outside it are usually
// catering packages, gift cards, or phone-number fragments.
var (
	minItemPrice = decimal.NewFromInt(1)
	maxItemPrice = decimal.NewFromInt(500)
)

// Menu confidence priors per strategy, with and without a price attached.
const (
	confidenceSelectorPriced   = 0.65
	confidenceSelectorUnpriced = 0.45
	confidencePriceAnchored    = 0.55
	confidenceHeadingPriced    = 0.6
	confidenceHeadingUnpriced  = 0.4
)

// maxMenuItems caps a single parse against runaway pages.
const maxMenuItems = 80

// Menu-item-shaped selectors, strongest first. Once a pass over a selector
// leaves at least five items we treat that as the found menu and stop, so
// weaker selectors don't add duplicate noise.
var menuSelectors = []string{
	`[class*="menu-item"]`,
	`[class*="menu_item"]`,
	`[class*="menuitem"]`,
	`[class*="dish"]`,
	`[class*="food-item"]`,
	`[class*="food_item"]`,
	`[class*="menu"] li`,
	`[class*="menu"] [class*="item"]`,
	`.menu-section li`,
	`.menu-category li`,
}

var boilerplateWords = map[string]bool{
	"home": true, "about": true, "contact": true, "menu": true,
	"gallery": true, "events": true, "press": true, "careers": true,
	"privacy": true, "terms": true, "login": true, "sign in": true,
	"sign up": true, "subscribe": true, "newsletter": true,
	"follow us": true, "read more": true, "learn more": true,
	"view all": true, "see all": true, "back to top": true,
	"copyright": true, "all rights reserved": true,
}

// extractMenuItems runs the three menu strategies in strict order, each
// attempted only when the previous one yielded nothing. Items are
// deduplicated case-insensitively by name across the whole parse.
func extractMenuItems(doc *goquery.Document) []pagelens.HeuristicMenuItem {
	items := []pagelens.HeuristicMenuItem{}
	seen := make(map[string]bool)

	add := func(item *pagelens.HeuristicMenuItem) {
		if item == nil {
			return
		}
		key := strings.ToLower(item.Name)
		if seen[key] {
			return
		}
		seen[key] = true
		items = append(items, *item)
	}

	// Strategy 1: menu-shaped CSS selectors.
	for _, selector := range menuSelectors {
		doc.Find(selector).Each(func(_ int, el *goquery.Selection) {
			add(parseMenuElement(el))
		})
		if len(items) >= 5 {
			break
		}
	}

	// Strategy 2: price-anchored, working backwards from prices to names.
	if len(items) == 0 {
		doc.Find("*").EachWithBreak(func(_ int, el *goquery.Selection) bool {
			if len(items) >= maxMenuItems {
				return false
			}
			// Only leaf-ish elements; containers repeat their children's
			// prices.
			if el.Children().Length() > 3 {
				return true
			}
			price, ok := matchPrice(strings.TrimSpace(el.Text()))
			if !ok {
				return true
			}
			add(parseContextualMenuItem(el, price))
			return true
		})
	}

	// Strategy 3: heading-like children of menu-labeled containers.
	if len(items) == 0 {
		menuContainers(doc).Each(func(_ int, container *goquery.Selection) {
			container.Find(`h3, h4, h5, dt, [class*="title"], [class*="name"]`).Each(func(_ int, el *goquery.Selection) {
				if len(items) >= maxMenuItems {
					return
				}
				add(parseHeadingMenuItem(el))
			})
		})
	}

	return items
}

// parseMenuElement extracts an item from a menu-shaped element: name from a
// heading or bold child (else the first text line), description from a
// distinct child, price from anywhere in the element's text.
func parseMenuElement(el *goquery.Selection) *pagelens.HeuristicMenuItem {
	fullText := strings.TrimSpace(el.Text())
	if len(fullText) < 3 || len(fullText) > 500 {
		return nil
	}

	price := priceInRange(fullText)

	name := firstText(el, `h3, h4, h5, [class*="title"], [class*="name"], dt`)
	if name == "" {
		name = firstText(el, "strong, b")
	}
	if name == "" {
		for _, line := range strings.Split(fullText, "\n") {
			if line = strings.TrimSpace(line); len(line) > 1 {
				name = line
				break
			}
		}
	}

	name = stripPrice(name)
	if len(name) < 2 || len(name) > 100 || isBoilerplate(name) {
		return nil
	}

	desc := firstText(el, `p, [class*="desc"], [class*="description"], dd`)
	if len(desc) <= 5 || desc == name {
		desc = ""
	}

	confidence := confidenceSelectorUnpriced
	if price != nil {
		confidence = confidenceSelectorPriced
	}
	return &pagelens.HeuristicMenuItem{
		Name:        name,
		Description: desc,
		Price:       price,
		Section:     findSectionHeading(el),
		Confidence:  confidence,
	}
}

// parseContextualMenuItem derives an item around a matched price: name from
// a bold or heading child, else the text preceding the price, else a
// preceding sibling heading.
func parseContextualMenuItem(el *goquery.Selection, price decimal.Decimal) *pagelens.HeuristicMenuItem {
	fullText := clean(el.Text())

	beforePrice := fullText
	if loc := pricePattern.FindStringIndex(fullText); loc != nil {
		beforePrice = strings.TrimSpace(fullText[:loc[0]])
	}

	name := firstText(el, `h3, h4, h5, [class*="title"], [class*="name"], strong, b`)
	if name == "" && len(beforePrice) > 2 && len(beforePrice) < 100 {
		name = beforePrice
	}
	if name == "" {
		prev := strings.TrimSpace(el.PrevFiltered("h3, h4, h5, dt, strong").Text())
		if len(prev) > 2 && len(prev) < 100 {
			name = prev
		}
	}
	if name == "" || len(name) < 2 || isBoilerplate(name) {
		return nil
	}
	name = stripPrice(name)

	desc := clean(descriptionCandidate(el).Text())
	if desc == name || len(desc) <= 5 {
		desc = ""
	}

	return &pagelens.HeuristicMenuItem{
		Name:        name,
		Description: desc,
		Price:       &price,
		Section:     findSectionHeading(el),
		Confidence:  confidencePriceAnchored,
	}
}

// parseHeadingMenuItem reads an item from a heading-like child of a menu
// container, pulling the price from the immediate parent's text and the
// description from the next sibling.
func parseHeadingMenuItem(el *goquery.Selection) *pagelens.HeuristicMenuItem {
	name := clean(el.Text())
	if nameLen := utf8.RuneCountInString(name); nameLen < 2 || nameLen > 80 {
		return nil
	}
	if isBoilerplate(name) {
		return nil
	}

	price := priceInRange(el.Parent().Text())

	desc := strings.TrimSpace(el.NextFiltered(`p, span, [class*="desc"]`).Text())
	if len(desc) <= 5 || len(desc) >= 300 {
		desc = ""
	}

	confidence := confidenceHeadingUnpriced
	if price != nil {
		confidence = confidenceHeadingPriced
	}
	return &pagelens.HeuristicMenuItem{
		Name:        name,
		Description: desc,
		Price:       price,
		Section:     findSectionHeading(el),
		Confidence:  confidence,
	}
}

// menuContainers selects elements whose id or class mentions "menu",
// excluding navigation menus, detected structurally by an anchor-heavy
// anchor-to-text ratio.
func menuContainers(doc *goquery.Document) *goquery.Selection {
	candidates := attrContainsFold(doc.Selection, "id", "menu").
		AddSelection(attrContainsFold(doc.Selection, "class", "menu"))

	return candidates.FilterFunction(func(_ int, container *goquery.Selection) bool {
		if container.Is("nav") || container.Closest("nav").Length() > 0 {
			return false
		}
		return container.Find("a").Length() <= container.Find("p, li, div").Length()
	})
}

// findSectionHeading walks up to five ancestor levels looking for the
// nearest preceding h2/h3 to use as the item's menu section.
func findSectionHeading(el *goquery.Selection) string {
	current := el
	for i := 0; i < 5; i++ {
		prev := current.PrevAllFiltered("h2, h3").First()
		if prev.Length() > 0 {
			if text := clean(prev.Text()); len(text) > 1 && len(text) < 50 {
				return text
			}
		}
		parent := current.Parent()
		if parent.Length() == 0 || parent.Is("body") {
			break
		}
		current = parent
	}
	return "Menu"
}

// descriptionCandidate finds the first paragraph, description-classed
// element, or childless span under el, in document order.
func descriptionCandidate(el *goquery.Selection) *goquery.Selection {
	return el.Find(`p, [class*="desc"], span`).FilterFunction(func(_ int, s *goquery.Selection) bool {
		if goquery.NodeName(s) == "span" && !s.Is(`[class*="desc"]`) {
			return s.Children().Length() == 0
		}
		return true
	}).First()
}

// matchPrice extracts the first in-window price from text.
func matchPrice(text string) (decimal.Decimal, bool) {
	m := pricePattern.FindStringSubmatch(text)
	if m == nil {
		return decimal.Decimal{}, false
	}
	price, err := decimal.NewFromString(m[1])
	if err != nil || price.LessThan(minItemPrice) || price.GreaterThan(maxItemPrice) {
		return decimal.Decimal{}, false
	}
	return price, true
}

// priceInRange returns the first in-window price found in text, or nil.
func priceInRange(text string) *decimal.Decimal {
	if price, ok := matchPrice(text); ok {
		return &price
	}
	return nil
}

// stripPrice removes any price fragment from a candidate name.
func stripPrice(name string) string {
	return clean(pricePattern.ReplaceAllString(name, ""))
}

// isBoilerplate rejects navigational and chrome strings that masquerade as
// item names. Short all-caps strings are usually nav items.
func isBoilerplate(text string) bool {
	lower := strings.ToLower(strings.TrimSpace(text))
	if boilerplateWords[lower] {
		return true
	}
	if utf8.RuneCountInString(lower) < 2 {
		return true
	}
	if text == strings.ToUpper(text) && utf8.RuneCountInString(text) < 4 && !containsDigit(text) {
		return true
	}
	return false
}

func containsDigit(s string) bool {
	return strings.ContainsFunc(s, unicode.IsDigit)
}
