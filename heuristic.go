package pagelens

import "github.com/shopspring/decimal"

// HeuristicMenuItem is a menu item recovered from page markup when no
// JSON-LD menu exists. Items are deduplicated case-insensitively by name
// across the whole parse.
type HeuristicMenuItem struct {
	Name        string           `json:"name"`
	Description string           `json:"description,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	Section     string           `json:"section"`
	Confidence  float64          `json:"confidence"`
}

// HeuristicHours is one day's opening hours recovered from page text.
// Opens and Closes are 24-hour "HH:MM" strings.
type HeuristicHours struct {
	DayOfWeek  string  `json:"dayOfWeek"`
	Opens      string  `json:"opens"`
	Closes     string  `json:"closes"`
	Confidence float64 `json:"confidence"`
}

// HeuristicAddress is a US street address recovered from page text.
// State is always a validated 2-letter code; matches without one are
// discarded before they reach this type.
type HeuristicAddress struct {
	StreetAddress string  `json:"streetAddress"`
	City          string  `json:"city,omitempty"`
	State         string  `json:"state,omitempty"`
	PostalCode    string  `json:"postalCode,omitempty"`
	Confidence    float64 `json:"confidence"`
}

// HeuristicPhone is a phone number recovered from tel: links or
// contact-labeled elements.
type HeuristicPhone struct {
	Value      string  `json:"value"`
	Confidence float64 `json:"confidence"`
}

// HeuristicResults bundles the output of all heuristic parsers.
// Every result is a lower-confidence suggestion meant for operator review,
// never a verified fact.
type HeuristicResults struct {
	MenuItems []HeuristicMenuItem `json:"menuItems"`
	Hours     []HeuristicHours    `json:"hours"`
	Addresses []HeuristicAddress  `json:"addresses"`
	Phones    []HeuristicPhone    `json:"phones"`
}

// HeuristicParser runs the fallback parsers over raw HTML. It is invoked as
// a separate pass from Extractor; the caller decides which results to use
// based on what structured data already answered.
type HeuristicParser interface {
	ParseHeuristics(rawHTML string, pageURL string) (*HeuristicResults, error)
}
