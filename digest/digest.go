// Package digest orchestrates turning a URL into an LLM-ready extraction:
// fetch, extract, and account for the token savings.
package digest

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/semanticgateway/pagelens"
	"github.com/shopspring/decimal"
)

// minUsableHTML is the raw HTML length below which a page is treated as
// empty and short-circuited to the empty result.
const minUsableHTML = 100

// tokenCostPer1K is the reference LLM input price used to express token
// savings in dollars.
var tokenCostPer1K = decimal.RequireFromString("0.03")

// Service runs the fetch-and-extract pipeline for single pages.
type Service struct {
	Fetcher   pagelens.Fetcher
	Extractor pagelens.Extractor
	Parser    pagelens.HeuristicParser
}

// Meta describes one extraction run: how long it took and how many tokens
// the digest saved over feeding the raw HTML to a model.
type Meta struct {
	ProcessingTime   time.Duration   `json:"processingTime"`
	TokensSaved      int             `json:"tokensSaved"`
	PercentReduction float64         `json:"percentReduction"`
	CostSavedUSD     decimal.Decimal `json:"costSavedUSD"`
	ContentHash      string          `json:"contentHash"`
}

// ExtractURL fetches a page and runs the full extraction over it.
func (s *Service) ExtractURL(ctx context.Context, pageURL string, includePDFs bool) (*pagelens.ExtractionResult, *Meta, error) {
	begin := time.Now()

	rawHTML, err := s.Fetcher.Fetch(ctx, pageURL)
	if err != nil {
		return nil, nil, err
	}

	result, err := s.extract(rawHTML, pageURL, includePDFs)
	if err != nil {
		return nil, nil, err
	}

	return result, buildMeta(begin, result), nil
}

// ExtractHTML runs the extraction over HTML the caller already has, such as
// a stored snapshot.
func (s *Service) ExtractHTML(rawHTML string, pageURL string, includePDFs bool) (*pagelens.ExtractionResult, *Meta, error) {
	begin := time.Now()

	result, err := s.extract(rawHTML, pageURL, includePDFs)
	if err != nil {
		return nil, nil, err
	}

	return result, buildMeta(begin, result), nil
}

// ParseHeuristics fetches a page and runs the fallback parsers over it.
func (s *Service) ParseHeuristics(ctx context.Context, pageURL string) (*pagelens.HeuristicResults, error) {
	rawHTML, err := s.Fetcher.Fetch(ctx, pageURL)
	if err != nil {
		return nil, err
	}
	return s.Parser.ParseHeuristics(rawHTML, pageURL)
}

func (s *Service) extract(rawHTML string, pageURL string, includePDFs bool) (*pagelens.ExtractionResult, error) {
	if len(strings.TrimSpace(rawHTML)) < minUsableHTML {
		return pagelens.NewEmptyResult(pageURL, pagelens.EstimateTokens(rawHTML)), nil
	}
	return s.Extractor.Extract(rawHTML, pageURL, includePDFs)
}

func buildMeta(begin time.Time, result *pagelens.ExtractionResult) *Meta {
	saved := result.TokensOriginal - result.TokensExtracted
	if saved < 0 {
		saved = 0
	}

	var percent float64
	if result.TokensOriginal > 0 {
		percent = float64(saved) / float64(result.TokensOriginal) * 100
	}

	cost := decimal.NewFromInt(int64(saved)).
		Div(decimal.NewFromInt(1000)).
		Mul(tokenCostPer1K).
		Round(4)

	return &Meta{
		ProcessingTime:   time.Since(begin),
		TokensSaved:      saved,
		PercentReduction: percent,
		CostSavedUSD:     cost,
		ContentHash:      fmt.Sprintf("%016x", xxhash.Sum64String(result.Markdown)),
	}
}
