package main

import (
	"encoding/json"

	"github.com/semanticgateway/pagelens/suggest"
)

// Run executes the suggest command.
func (c *SuggestCmd) Run(deps *Dependencies) error {
	rawHTML, err := deps.Service.Fetcher.Fetch(deps.Ctx, c.URL)
	if err != nil {
		return err
	}

	result, _, err := deps.Service.ExtractHTML(rawHTML, c.URL, true)
	if err != nil {
		return err
	}

	// Heuristics are best-effort; suggestions without them are still valid.
	heuristics, err := deps.Service.Parser.ParseHeuristics(rawHTML, c.URL)
	if err != nil {
		heuristics = nil
	}

	suggestions := suggest.Build(c.URL, result, heuristics)

	enc := json.NewEncoder(deps.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(suggestions)
}
