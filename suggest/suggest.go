// Package suggest maps extraction results onto review-ready business
// profile suggestions. Each suggested field carries a provenance label and
// a confidence score so an operator can see where a value came from before
// accepting it. Nothing here auto-commits; the output is a proposal.
package suggest

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/semanticgateway/pagelens"
	"github.com/shopspring/decimal"
)

// Provenance labels, strongest claim first. A field filled from a stronger
// provenance is never overwritten by a weaker one.
const (
	ProvenanceManual         = "manual"
	ProvenanceJSONLD         = "json-ld-extracted"
	ProvenanceHTMLHeuristic  = "html-heuristic"
	ProvenanceHTMLTitle      = "html-title"
	ProvenanceHTMLMeta       = "html-meta"
	ProvenanceWidgetDetected = "widget-detected"
	ProvenanceRegexBodyText  = "regex-body-text"
)

// provenanceRank orders provenances for Precedence. Title, meta, heuristic,
// and widget detection share a tier; only body-text regex ranks below them.
var provenanceRank = map[string]int{
	ProvenanceManual:         4,
	ProvenanceJSONLD:         3,
	ProvenanceHTMLHeuristic:  2,
	ProvenanceHTMLTitle:      2,
	ProvenanceHTMLMeta:       2,
	ProvenanceWidgetDetected: 2,
	ProvenanceRegexBodyText:  1,
}

// Precedence returns the rank of a provenance label, higher meaning a
// stronger claim on a field. Unknown labels rank lowest.
func Precedence(provenance string) int {
	return provenanceRank[provenance]
}

// businessTypes are the JSON-LD @type values accepted as the page's primary
// business entity, checked in jsonLd order.
var businessTypes = map[string]bool{
	"Restaurant":        true,
	"FoodEstablishment": true,
	"LocalBusiness":     true,
	"Hotel":             true,
	"LodgingBusiness":   true,
	"CafeOrCoffeeShop":  true,
	"BarOrPub":          true,
}

var titleSeparators = regexp.MustCompile(`\s*[|–—·]\s*`)

// FieldConfidence records where one suggested field came from and how much
// to trust it.
type FieldConfidence struct {
	FieldName  string  `json:"fieldName"`
	Provenance string  `json:"provenance"`
	Confidence float64 `json:"confidence"`
}

// HoursSpec is one suggested day of opening hours.
type HoursSpec struct {
	DayOfWeek string `json:"dayOfWeek"`
	Opens     string `json:"opens"`
	Closes    string `json:"closes"`
}

// MenuSectionItem is one suggested menu item within a section.
type MenuSectionItem struct {
	Name        string           `json:"name"`
	Description string           `json:"description,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty"`
}

// MenuSection groups suggested menu items under a section heading.
type MenuSection struct {
	Name  string            `json:"name"`
	Items []MenuSectionItem `json:"items"`
}

// Fields holds the suggested business profile values. Zero values mean no
// suggestion was found for that field.
type Fields struct {
	Name           string        `json:"name,omitempty"`
	Type           string        `json:"type,omitempty"`
	Cuisine        string        `json:"cuisine,omitempty"`
	PriceRange     string        `json:"priceRange,omitempty"`
	Description    string        `json:"description,omitempty"`
	Phone          string        `json:"phone,omitempty"`
	Email          string        `json:"email,omitempty"`
	ImageURL       string        `json:"imageUrl,omitempty"`
	StreetAddress  string        `json:"streetAddress,omitempty"`
	City           string        `json:"city,omitempty"`
	State          string        `json:"state,omitempty"`
	PostalCode     string        `json:"postalCode,omitempty"`
	RatingValue    string        `json:"ratingValue,omitempty"`
	ReviewCount    string        `json:"reviewCount,omitempty"`
	MenuURL        string        `json:"menuUrl,omitempty"`
	ReservationURL string        `json:"reservationUrl,omitempty"`
	Hours          []HoursSpec   `json:"hours,omitempty"`
	MenuSections   []MenuSection `json:"menuSections,omitempty"`
}

// Result is the full suggestion proposal for one page.
type Result struct {
	SourceURL  string            `json:"sourceUrl"`
	Fields     Fields            `json:"suggestedFields"`
	Confidence []FieldConfidence `json:"suggestedConfidence"`
}

// Build maps one extraction (plus optional heuristic results) onto field
// suggestions. JSON-LD wins over fallbacks; heuristic values fill only
// fields JSON-LD left empty. Menu sections are always built from heuristic
// items because JSON-LD rarely carries the full menu inline.
func Build(sourceURL string, extraction *pagelens.ExtractionResult, heuristics *pagelens.HeuristicResults) *Result {
	r := &Result{SourceURL: sourceURL, Confidence: []FieldConfidence{}}

	structured := &extraction.Structured

	if business := findBusinessEntity(structured.JSONLD); business != nil {
		r.applyBusinessEntity(business)
	}

	// Fallbacks from regex-parsed contact info.
	if contact := structured.ContactInfo; contact != nil {
		if r.Fields.Phone == "" && len(contact.Phones) > 0 {
			r.Fields.Phone = contact.Phones[0]
			r.record("phone", ProvenanceRegexBodyText, 0.5)
		}
		if r.Fields.Email == "" && len(contact.Emails) > 0 {
			r.Fields.Email = contact.Emails[0]
			r.record("email", ProvenanceRegexBodyText, 0.5)
		}
	}

	if len(structured.Reservations) > 0 {
		r.Fields.ReservationURL = structured.Reservations[0].URL
		r.record("reservation", ProvenanceWidgetDetected, structured.Reservations[0].Confidence)
	}

	if r.Fields.Name == "" && structured.Title != "" {
		r.Fields.Name = brandFromTitle(structured.Title)
		r.record("name", ProvenanceHTMLTitle, 0.6)
	}
	if r.Fields.Description == "" && structured.Description != "" {
		r.Fields.Description = structured.Description
		r.record("description", ProvenanceHTMLMeta, 0.6)
	}

	if heuristics != nil {
		r.applyHeuristics(heuristics)
	}

	return r
}

func (r *Result) record(field, provenance string, confidence float64) {
	r.Confidence = append(r.Confidence, FieldConfidence{
		FieldName:  field,
		Provenance: provenance,
		Confidence: confidence,
	})
}

// applyBusinessEntity fills fields from the primary JSON-LD entity with the
// per-field confidence each schema.org property earns.
func (r *Result) applyBusinessEntity(business pagelens.Entity) {
	if name := business.String("name"); name != "" {
		r.Fields.Name = name
		r.record("name", ProvenanceJSONLD, 0.9)
	}
	if t := business.Type(); t != "" {
		r.Fields.Type = t
		r.record("type", ProvenanceJSONLD, 0.95)
	}
	if cuisine := scalarOrJoined(business["servesCuisine"]); cuisine != "" {
		r.Fields.Cuisine = cuisine
		r.record("cuisine", ProvenanceJSONLD, 0.9)
	}
	if pr := business.String("priceRange"); pr != "" {
		r.Fields.PriceRange = pr
		r.record("priceRange", ProvenanceJSONLD, 0.85)
	}
	if desc := business.String("description"); desc != "" {
		r.Fields.Description = desc
		r.record("description", ProvenanceJSONLD, 0.85)
	}
	if phone := business.String("telephone"); phone != "" {
		r.Fields.Phone = phone
		r.record("phone", ProvenanceJSONLD, 0.9)
	}
	if email := business.String("email"); email != "" {
		r.Fields.Email = email
		r.record("email", ProvenanceJSONLD, 0.9)
	}
	r.Fields.ImageURL = stringOrURLChild(business, "image")

	if addr := business.Child("address"); addr != nil {
		r.Fields.StreetAddress = addr.String("streetAddress")
		r.Fields.City = addr.String("addressLocality")
		r.Fields.State = addr.String("addressRegion")
		r.Fields.PostalCode = addr.String("postalCode")
		r.record("address", ProvenanceJSONLD, 0.9)
	}
	if rating := business.Child("aggregateRating"); rating != nil {
		r.Fields.RatingValue = scalarString(rating["ratingValue"])
		r.Fields.ReviewCount = scalarString(rating["reviewCount"])
		r.record("rating", ProvenanceJSONLD, 0.9)
	}
	if menuURL := stringOrURLChild(business, "hasMenu"); menuURL != "" {
		r.Fields.MenuURL = menuURL
		r.record("menu", ProvenanceJSONLD, 0.8)
	}
	if hours := hoursFromSpec(business["openingHoursSpecification"]); len(hours) > 0 {
		r.Fields.Hours = hours
		r.record("hours", ProvenanceJSONLD, 0.85)
	}
}

// applyHeuristics merges fallback parser output into fields the structured
// pass left empty.
func (r *Result) applyHeuristics(h *pagelens.HeuristicResults) {
	if len(r.Fields.Hours) == 0 && len(h.Hours) > 0 {
		for _, hh := range h.Hours {
			r.Fields.Hours = append(r.Fields.Hours, HoursSpec{
				DayOfWeek: hh.DayOfWeek,
				Opens:     hh.Opens,
				Closes:    hh.Closes,
			})
		}
		r.record("hours", ProvenanceHTMLHeuristic, maxHoursConfidence(h.Hours))
	}

	if r.Fields.StreetAddress == "" && len(h.Addresses) > 0 {
		addr := h.Addresses[0]
		r.Fields.StreetAddress = addr.StreetAddress
		if addr.City != "" {
			r.Fields.City = addr.City
		}
		if addr.State != "" {
			r.Fields.State = addr.State
		}
		if addr.PostalCode != "" {
			r.Fields.PostalCode = addr.PostalCode
		}
		r.record("address", ProvenanceHTMLHeuristic, addr.Confidence)
	}

	if r.Fields.Phone == "" && len(h.Phones) > 0 {
		r.Fields.Phone = h.Phones[0].Value
		r.record("phone", ProvenanceHTMLHeuristic, h.Phones[0].Confidence)
	}

	if len(h.MenuItems) > 0 {
		r.Fields.MenuSections = groupMenuSections(h.MenuItems)
		r.record("menu", ProvenanceHTMLHeuristic, maxMenuConfidence(h.MenuItems))
	}
}

// groupMenuSections buckets items under their section headings, preserving
// the order sections first appear in.
func groupMenuSections(items []pagelens.HeuristicMenuItem) []MenuSection {
	var order []string
	bySection := make(map[string][]MenuSectionItem)

	for _, item := range items {
		section := item.Section
		if section == "" {
			section = "Menu"
		}
		if _, ok := bySection[section]; !ok {
			order = append(order, section)
		}
		bySection[section] = append(bySection[section], MenuSectionItem{
			Name:        item.Name,
			Description: item.Description,
			Price:       item.Price,
		})
	}

	sections := make([]MenuSection, 0, len(order))
	for _, name := range order {
		sections = append(sections, MenuSection{Name: name, Items: bySection[name]})
	}
	return sections
}

// findBusinessEntity returns the first entity with a recognized business
// @type, or nil.
func findBusinessEntity(entities []pagelens.Entity) pagelens.Entity {
	for _, e := range entities {
		if businessTypes[e.Type()] {
			return e
		}
	}
	return nil
}

// brandFromTitle reduces a page title to its brand segment: the shortest
// separator-delimited part, earliest on ties.
func brandFromTitle(title string) string {
	var parts []string
	for _, p := range titleSeparators.Split(title, -1) {
		if len(p) > 1 {
			parts = append(parts, p)
		}
	}
	if len(parts) < 2 {
		return title
	}
	best := parts[0]
	for _, p := range parts[1:] {
		if len(p) < len(best) {
			best = p
		}
	}
	return best
}

// hoursFromSpec converts a JSON-LD openingHoursSpecification value, which
// may be a single object or an array, into HoursSpec entries. Array-valued
// dayOfWeek collapses to its first element.
func hoursFromSpec(v any) []HoursSpec {
	var specs []pagelens.Entity
	switch spec := v.(type) {
	case map[string]any:
		specs = append(specs, pagelens.Entity(spec))
	case []any:
		for _, item := range spec {
			if m, ok := item.(map[string]any); ok {
				specs = append(specs, pagelens.Entity(m))
			}
		}
	}

	hours := make([]HoursSpec, 0, len(specs))
	for _, spec := range specs {
		day := spec.String("dayOfWeek")
		if day == "" {
			if arr, ok := spec["dayOfWeek"].([]any); ok && len(arr) > 0 {
				day, _ = arr[0].(string)
			}
		}
		hours = append(hours, HoursSpec{
			DayOfWeek: day,
			Opens:     spec.String("opens"),
			Closes:    spec.String("closes"),
		})
	}
	return hours
}

// stringOrURLChild reads a property that is either a URL string or an
// object with a url field, the usual shapes for image and hasMenu.
func stringOrURLChild(e pagelens.Entity, key string) string {
	if s := e.String(key); s != "" {
		return s
	}
	if child := e.Child(key); child != nil {
		return child.String("url")
	}
	return ""
}

func scalarOrJoined(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case []any:
		var parts []string
		for _, item := range val {
			if s, ok := item.(string); ok {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, ", ")
	}
	return ""
}

func scalarString(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case json.Number:
		return val.String()
	}
	return ""
}

func maxHoursConfidence(hours []pagelens.HeuristicHours) float64 {
	var max float64
	for _, h := range hours {
		if h.Confidence > max {
			max = h.Confidence
		}
	}
	return max
}

func maxMenuConfidence(items []pagelens.HeuristicMenuItem) float64 {
	var max float64
	for _, i := range items {
		if i.Confidence > max {
			max = i.Confidence
		}
	}
	return max
}
