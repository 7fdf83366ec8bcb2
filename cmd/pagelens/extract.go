package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/semanticgateway/pagelens"
	"github.com/semanticgateway/pagelens/digest"
	"github.com/semanticgateway/pagelens/fs"
)

// extractOutput is the JSON envelope printed by extract --json.
type extractOutput struct {
	Result *pagelens.ExtractionResult `json:"result"`
	Meta   *digest.Meta               `json:"meta"`
}

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	result, meta, err := deps.Service.ExtractURL(deps.Ctx, c.URL, c.PDFs)
	if err != nil {
		return err
	}

	if c.Out != "" {
		path, err := fs.NewWriter(c.Out).WriteDigest(c.URL, result)
		if err != nil {
			return err
		}
		fmt.Fprintf(deps.Stderr, "wrote %s\n", path)
	}

	if c.JSON {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(extractOutput{Result: result, Meta: meta})
	}

	fmt.Fprintln(deps.Stdout, result.Markdown)

	if !c.Markdown {
		fmt.Fprintf(deps.Stderr, "\n%d tokens -> %d tokens (%.1f%% reduction, ~$%s saved) in %s\n",
			result.TokensOriginal,
			result.TokensExtracted,
			meta.PercentReduction,
			meta.CostSavedUSD.String(),
			meta.ProcessingTime.Round(time.Millisecond),
		)
	}
	return nil
}
