package goquery

import (
	"github.com/semanticgateway/pagelens"
	"golang.org/x/sync/errgroup"
)

// ParseHeuristics runs the four fallback parsers over one parsed document.
// Parsers read distinct result slots so they fan out without locking.
func (e *Extractor) ParseHeuristics(rawHTML string, pageURL string) (*pagelens.HeuristicResults, error) {
	if rawHTML == "" {
		return nil, pagelens.Errorf(pagelens.EINVALID, "empty HTML input for %s", pageURL)
	}
	doc := Load(rawHTML)

	results := &pagelens.HeuristicResults{}
	var g errgroup.Group
	g.Go(func() error {
		results.MenuItems = extractMenuItems(doc)
		return nil
	})
	g.Go(func() error {
		results.Hours = extractHours(doc)
		return nil
	})
	g.Go(func() error {
		results.Addresses = extractAddresses(doc)
		return nil
	})
	g.Go(func() error {
		results.Phones = extractPhones(doc)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
