package slog

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/semanticgateway/pagelens"
)

// Ensure LoggingExtractor implements both extraction interfaces.
var (
	_ pagelens.Extractor       = (*LoggingExtractor)(nil)
	_ pagelens.HeuristicParser = (*LoggingExtractor)(nil)
)

// ExtractorParser is the combined interface an extraction backend exposes.
type ExtractorParser interface {
	pagelens.Extractor
	pagelens.HeuristicParser
}

// LoggingExtractor wraps an extraction backend with structured logging.
type LoggingExtractor struct {
	next   ExtractorParser
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next ExtractorParser, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs token counts and
// quality signals for the page.
func (e *LoggingExtractor) Extract(rawHTML string, pageURL string, includePDFs bool) (*pagelens.ExtractionResult, error) {
	begin := time.Now()
	requestID := uuid.New().String()

	result, err := e.next.Extract(rawHTML, pageURL, includePDFs)
	if err != nil {
		e.logger.Error("extract",
			"request_id", requestID,
			"url", pageURL,
			"duration", time.Since(begin),
			"err", err,
		)
		return nil, err
	}

	e.logger.Info("extract",
		"request_id", requestID,
		"url", pageURL,
		"tokens_original", result.TokensOriginal,
		"tokens_extracted", result.TokensExtracted,
		"has_main_content", result.Quality.HasMainContent,
		"reservations", len(result.Structured.Reservations),
		"duration", time.Since(begin),
	)
	return result, nil
}

// ParseHeuristics delegates to the wrapped parser and logs result counts.
func (e *LoggingExtractor) ParseHeuristics(rawHTML string, pageURL string) (*pagelens.HeuristicResults, error) {
	begin := time.Now()
	requestID := uuid.New().String()

	results, err := e.next.ParseHeuristics(rawHTML, pageURL)
	if err != nil {
		e.logger.Error("heuristics",
			"request_id", requestID,
			"url", pageURL,
			"duration", time.Since(begin),
			"err", err,
		)
		return nil, err
	}

	e.logger.Info("heuristics",
		"request_id", requestID,
		"url", pageURL,
		"menu_items", len(results.MenuItems),
		"hours", len(results.Hours),
		"addresses", len(results.Addresses),
		"phones", len(results.Phones),
		"duration", time.Since(begin),
	)
	return results, nil
}
