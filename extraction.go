package pagelens

import (
	"bytes"
	"encoding/json"
)

// Reservation platforms recognized by the detector. PlatformDirect marks a
// generic "book now" style link found when no known platform matched.
const (
	PlatformOpenTable = "opentable"
	PlatformResy      = "resy"
	PlatformTock      = "tock"
	PlatformYelp      = "yelp-reservations"
	PlatformDirect    = "direct"
)

// ReservationInfo describes a detected reservation widget or link.
type ReservationInfo struct {
	Platform   string  `json:"platform"`
	URL        string  `json:"url"`
	Confidence float64 `json:"confidence"`
}

// Validate returns an error if the reservation info contains invalid fields.
func (r *ReservationInfo) Validate() error {
	if r.Platform == "" {
		return Errorf(EINVALID, "reservation platform required")
	}
	if r.Confidence < 0 || r.Confidence > 1 {
		return Errorf(EINVALID, "reservation confidence %v outside [0,1]", r.Confidence)
	}
	return nil
}

// Entity is a single JSON-LD entity parsed from a linked-data block.
type Entity map[string]any

// Type returns the entity's @type as a string, or "" if absent or not a string.
func (e Entity) Type() string {
	t, _ := e["@type"].(string)
	return t
}

// String returns the string value of a property, or "" if absent or not a string.
func (e Entity) String(key string) string {
	s, _ := e[key].(string)
	return s
}

// Child returns a nested object property as an Entity, or nil.
func (e Entity) Child(key string) Entity {
	switch v := e[key].(type) {
	case map[string]any:
		return Entity(v)
	case Entity:
		return v
	}
	return nil
}

// OGData holds OpenGraph properties in first-seen key order.
// Setting an existing key replaces its value in place (last write wins).
type OGData struct {
	keys   []string
	values map[string]string
}

// Set stores a property value, preserving first-seen key order.
func (d *OGData) Set(key, value string) {
	if d.values == nil {
		d.values = make(map[string]string)
	}
	if _, ok := d.values[key]; !ok {
		d.keys = append(d.keys, key)
	}
	d.values[key] = value
}

// Get returns the value for a key, or "" if absent.
func (d *OGData) Get(key string) string {
	if d == nil {
		return ""
	}
	return d.values[key]
}

// Len returns the number of stored properties.
func (d *OGData) Len() int {
	if d == nil {
		return 0
	}
	return len(d.keys)
}

// Keys returns the property keys in first-seen order.
func (d *OGData) Keys() []string {
	if d == nil {
		return nil
	}
	return d.keys
}

// MarshalJSON encodes the properties as a JSON object in first-seen key order.
func (d *OGData) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range d.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		vb, err := json.Marshal(d.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// ContactInfo holds contact details mined from the page. Each slice is
// deduplicated by exact string, preserving first-seen order.
type ContactInfo struct {
	Phones    []string `json:"phones"`
	Emails    []string `json:"emails"`
	Addresses []string `json:"addresses"`
}

// Empty reports whether no contact details were found.
func (c *ContactInfo) Empty() bool {
	return c == nil || (len(c.Phones) == 0 && len(c.Emails) == 0 && len(c.Addresses) == 0)
}

// StructuredData holds the machine-readable facts mined from a page.
type StructuredData struct {
	Title        string            `json:"title,omitempty"`
	Description  string            `json:"description,omitempty"`
	OGData       *OGData           `json:"ogData,omitempty"`
	JSONLD       []Entity          `json:"jsonLd,omitempty"`
	ContactInfo  *ContactInfo      `json:"contactInfo,omitempty"`
	Reservations []ReservationInfo `json:"reservations,omitempty"`
}

// QualitySignals summarizes how much usable signal an extraction produced.
type QualitySignals struct {
	HasMainContent       bool    `json:"hasMainContent"`
	HasStructuredData    bool    `json:"hasStructuredData"`
	HasNavigation        bool    `json:"hasNavigation"`
	HasContactInfo       bool    `json:"hasContactInfo"`
	HasReservationWidget bool    `json:"hasReservationWidget"`
	ContentSections      int     `json:"contentSections"`
	InformationDensity   float64 `json:"informationDensity"`
}

// ExtractionResult is the complete output of one extraction call.
// It is produced fresh per call and never mutated after return.
type ExtractionResult struct {
	Markdown        string         `json:"markdown"`
	Structured      StructuredData `json:"structured"`
	PDFs            []string       `json:"pdfs"`
	TokensOriginal  int            `json:"tokensOriginal"`
	TokensExtracted int            `json:"tokensExtracted"`
	Quality         QualitySignals `json:"quality"`
}

// NavLink is a navigation link with resolved absolute URL, deduplicated by
// visible text.
type NavLink struct {
	Text string `json:"text"`
	URL  string `json:"url"`
}

// Table holds the retained cells of one HTML table.
type Table struct {
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}

// PageParts collects the outputs of all extraction stages for assembly.
// It is the sole join point between the concurrent stages and the
// deterministic markdown assembler.
type PageParts struct {
	SourceURL    string
	Title        string
	Description  string
	JSONLD       []Entity
	NavLinks     []NavLink
	Content      string
	Tables       []Table
	Contact      *ContactInfo
	Reservations []ReservationInfo
	PDFs         []string
}

// Extractor produces an ExtractionResult from raw HTML.
// Implementations must tolerate malformed markup and must not share mutable
// parser state across calls.
type Extractor interface {
	// Extract parses rawHTML and assembles the markdown digest and
	// structured facts. pageURL is used to resolve relative links.
	Extract(rawHTML string, pageURL string, includePDFs bool) (*ExtractionResult, error)
}

// ContentStrategy isolates main page content as markdown text.
// Strategies return "" (not an error) when they cannot find enough content;
// errors are reserved for invalid inputs.
type ContentStrategy interface {
	// Name identifies the strategy for logging and diagnostics.
	Name() string

	// ExtractContent returns the main content as markdown lines, or ""
	// if the strategy found nothing usable.
	ExtractContent(rawHTML string, pageURL string) (string, error)
}

// NoContentNote is the placeholder body used when a fetched page is too
// small to extract anything from.
const NoContentNote = "*No meaningful content extracted. Site may require JavaScript rendering.*"

// NewEmptyResult builds the minimal "no content" result for a near-empty
// page. All quality flags are false and the markdown carries a short note.
func NewEmptyResult(pageURL string, tokensOriginal int) *ExtractionResult {
	markdown := "# " + pageURL + "\n\n" + NoContentNote
	return &ExtractionResult{
		Markdown:        markdown,
		Structured:      StructuredData{Title: pageURL},
		PDFs:            []string{},
		TokensOriginal:  tokensOriginal,
		TokensExtracted: EstimateTokens(markdown),
	}
}
