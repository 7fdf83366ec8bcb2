package mock

import "github.com/semanticgateway/pagelens"

var (
	_ pagelens.Extractor       = (*Extractor)(nil)
	_ pagelens.HeuristicParser = (*Extractor)(nil)
)

// Extractor is a mock implementation of pagelens.Extractor and
// pagelens.HeuristicParser.
type Extractor struct {
	ExtractFn         func(rawHTML string, pageURL string, includePDFs bool) (*pagelens.ExtractionResult, error)
	ParseHeuristicsFn func(rawHTML string, pageURL string) (*pagelens.HeuristicResults, error)
}

func (e *Extractor) Extract(rawHTML string, pageURL string, includePDFs bool) (*pagelens.ExtractionResult, error) {
	return e.ExtractFn(rawHTML, pageURL, includePDFs)
}

func (e *Extractor) ParseHeuristics(rawHTML string, pageURL string) (*pagelens.HeuristicResults, error) {
	return e.ParseHeuristicsFn(rawHTML, pageURL)
}
