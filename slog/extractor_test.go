package slog_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/semanticgateway/pagelens"
	"github.com/semanticgateway/pagelens/mock"
	lensslog "github.com/semanticgateway/pagelens/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("logs token counts and quality", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Extractor{
			ExtractFn: func(rawHTML string, pageURL string, includePDFs bool) (*pagelens.ExtractionResult, error) {
				return &pagelens.ExtractionResult{
					TokensOriginal:  1000,
					TokensExtracted: 150,
					Quality:         pagelens.QualitySignals{HasMainContent: true},
				}, nil
			},
		}

		extractor := lensslog.NewLoggingExtractor(inner, logger)
		result, err := extractor.Extract("<html></html>", "https://example.com", false)

		require.NoError(t, err)
		assert.Equal(t, 1000, result.TokensOriginal)
		output := buf.String()
		assert.Contains(t, output, "extract")
		assert.Contains(t, output, "tokens_original=1000")
		assert.Contains(t, output, "tokens_extracted=150")
		assert.Contains(t, output, "has_main_content=true")
		assert.Contains(t, output, "request_id=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Extractor{
			ExtractFn: func(rawHTML string, pageURL string, includePDFs bool) (*pagelens.ExtractionResult, error) {
				return nil, pagelens.Errorf(pagelens.EINVALID, "empty HTML input")
			},
		}

		extractor := lensslog.NewLoggingExtractor(inner, logger)
		_, err := extractor.Extract("", "https://example.com", false)

		require.Error(t, err)
		assert.Contains(t, buf.String(), "err=")
	})
}

func TestLoggingExtractor_ParseHeuristics(t *testing.T) {
	t.Parallel()

	t.Run("logs result counts", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Extractor{
			ParseHeuristicsFn: func(rawHTML string, pageURL string) (*pagelens.HeuristicResults, error) {
				return &pagelens.HeuristicResults{
					MenuItems: []pagelens.HeuristicMenuItem{{Name: "Caesar Salad"}},
					Phones:    []pagelens.HeuristicPhone{{Value: "(212) 555-1234"}},
				}, nil
			},
		}

		extractor := lensslog.NewLoggingExtractor(inner, logger)
		results, err := extractor.ParseHeuristics("<html></html>", "https://example.com")

		require.NoError(t, err)
		assert.Len(t, results.MenuItems, 1)
		output := buf.String()
		assert.Contains(t, output, "heuristics")
		assert.Contains(t, output, "menu_items=1")
		assert.Contains(t, output, "phones=1")
	})
}
