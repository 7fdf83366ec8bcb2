package goquery

import (
	"net/url"

	"github.com/semanticgateway/pagelens"
	"github.com/semanticgateway/pagelens/readability"
	"golang.org/x/sync/errgroup"
)

// Ensure Extractor implements the engine interfaces at compile time.
var (
	_ pagelens.Extractor       = (*Extractor)(nil)
	_ pagelens.HeuristicParser = (*Extractor)(nil)
)

// Extractor is the extraction engine. Each call parses its own document, so
// concurrent extractions for independent pages never share mutable parser
// state.
type Extractor struct {
	strategies []pagelens.ContentStrategy
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithContentStrategies replaces the default content strategy cascade
// (readability primary, manual secondary). The longest non-empty strategy
// output wins.
func WithContentStrategies(strategies ...pagelens.ContentStrategy) Option {
	return func(e *Extractor) {
		e.strategies = strategies
	}
}

// NewExtractor creates a new Extractor.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{}
	for _, opt := range opts {
		opt(e)
	}
	if len(e.strategies) == 0 {
		e.strategies = []pagelens.ContentStrategy{
			readability.NewStrategy(),
			NewManualStrategy(),
		}
	}
	return e
}

// Extract parses rawHTML once and fans the read-only stages out
// concurrently over the shared tree: structured data, reservations,
// navigation, tables, PDFs, and every content strategy. The markdown
// assembler is the sole join point.
func (e *Extractor) Extract(rawHTML string, pageURL string, includePDFs bool) (*pagelens.ExtractionResult, error) {
	doc := Load(rawHTML)
	base, err := url.Parse(pageURL)
	if err != nil {
		base = nil
	}

	var (
		structured   *pagelens.StructuredData
		reservations []pagelens.ReservationInfo
		navLinks     []pagelens.NavLink
		tables       []pagelens.Table
		pdfs         []string
		contents     = make([]string, len(e.strategies))
	)

	var g errgroup.Group
	g.Go(func() error {
		structured = extractStructured(doc, base)
		return nil
	})
	g.Go(func() error {
		reservations = detectReservations(doc, base)
		return nil
	})
	g.Go(func() error {
		navLinks = extractNavLinks(doc, base)
		return nil
	})
	g.Go(func() error {
		tables = extractTables(doc)
		return nil
	})
	g.Go(func() error {
		pdfs = collectPDFLinks(doc, base)
		return nil
	})
	for i, strategy := range e.strategies {
		g.Go(func() error {
			text, err := strategy.ExtractContent(rawHTML, pageURL)
			if err != nil {
				// A failed strategy contributes nothing; the others
				// still compete.
				return nil
			}
			contents[i] = text
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	structured.Reservations = reservations

	parts := &pagelens.PageParts{
		SourceURL:    pageURL,
		Title:        structured.Title,
		Description:  structured.Description,
		JSONLD:       structured.JSONLD,
		NavLinks:     navLinks,
		Content:      longest(contents),
		Tables:       tables,
		Contact:      structured.ContactInfo,
		Reservations: reservations,
		PDFs:         pdfs,
	}
	markdown := pagelens.AssembleMarkdown(parts)

	resultPDFs := []string{}
	if includePDFs {
		resultPDFs = pdfs
	}

	return &pagelens.ExtractionResult{
		Markdown:        markdown,
		Structured:      *structured,
		PDFs:            resultPDFs,
		TokensOriginal:  pagelens.EstimateTokens(rawHTML),
		TokensExtracted: pagelens.EstimateTokens(markdown),
		Quality:         pagelens.ComputeQuality(markdown, structured),
	}, nil
}

// longest returns the candidate with the most extracted text.
func longest(candidates []string) string {
	best := ""
	for _, c := range candidates {
		if len(c) > len(best) {
			best = c
		}
	}
	return best
}
