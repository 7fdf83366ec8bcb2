// Package readability implements the primary content strategy on top of
// go-readability, which scores candidate containers by text density to
// isolate the main article.
package readability

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"
	"github.com/semanticgateway/pagelens"
)

// minArticleText is the minimum number of extracted characters for the
// readability pass to count as successful.
const minArticleText = 100

// Ensure Strategy implements pagelens.ContentStrategy at compile time.
var _ pagelens.ContentStrategy = (*Strategy)(nil)

// Strategy extracts main content via go-readability and re-walks the
// retained block elements into markdown lines.
type Strategy struct{}

// NewStrategy creates a new Strategy.
func NewStrategy() *Strategy {
	return &Strategy{}
}

// Name returns the strategy's identifier.
func (s *Strategy) Name() string {
	return "readability"
}

// ExtractContent runs readability over the raw HTML. Returns "" when the
// isolated article is too short to trust; parse failures also yield "" so a
// bad page never aborts the whole extraction.
func (s *Strategy) ExtractContent(rawHTML string, pageURL string) (string, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return "", pagelens.Errorf(pagelens.EINVALID, "empty HTML input")
	}

	var base *url.URL
	if pageURL != "" {
		base, _ = url.Parse(pageURL)
	}

	parser := readability.NewParser()
	parser.CharThresholds = minArticleText

	article, err := parser.Parse(strings.NewReader(rawHTML), base)
	if err != nil {
		return "", nil
	}
	if len(strings.TrimSpace(article.TextContent)) < minArticleText {
		return "", nil
	}

	out := strings.TrimSpace(strings.Join(walkBlocks(article.Content), "\n"))
	if len(out) <= 50 {
		return "", nil
	}
	return out, nil
}

// walkBlocks converts the article's retained block elements into markdown
// lines using a fixed tag mapping, collapsing consecutive identical lines.
func walkBlocks(contentHTML string) []string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(contentHTML))
	if err != nil {
		return nil
	}

	var lines []string
	doc.Find("h1, h2, h3, h4, p, li, blockquote, pre").Each(func(_ int, el *goquery.Selection) {
		t := clean(el.Text())
		if len(t) < 2 {
			return
		}
		switch goquery.NodeName(el) {
		case "h1":
			t = "# " + t
		case "h2":
			t = "## " + t
		case "h3":
			t = "### " + t
		case "h4":
			t = "#### " + t
		case "li":
			t = "- " + t
		case "blockquote":
			t = "> " + t
		}
		if n := len(lines); n > 0 && lines[n-1] == t {
			return
		}
		lines = append(lines, t)
	})
	return lines
}

func clean(t string) string {
	return strings.Join(strings.Fields(t), " ")
}
