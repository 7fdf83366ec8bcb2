// Package goquery implements the pagelens extraction engine on top of the
// goquery DOM library: document loading, structured-data mining, reservation
// detection, table and PDF collection, manual content extraction, and the
// fallback heuristic parsers.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Load parses possibly malformed HTML into a queryable document.
// Loading never fails: the HTML5 parser error-corrects unclosed tags and bad
// entities, and an empty or hopeless input degrades to a minimal valid empty
// tree. Every downstream stage can therefore assume a valid document.
func Load(rawHTML string) *goquery.Document {
	node, err := html.Parse(strings.NewReader(rawHTML))
	if err != nil {
		node, _ = html.Parse(strings.NewReader(""))
	}
	return goquery.NewDocumentFromNode(node)
}
