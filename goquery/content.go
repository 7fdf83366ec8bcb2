package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/semanticgateway/pagelens"
)

// Ordered candidates for the main content container. The first whose text
// exceeds minContainerText wins.
var mainContentSelectors = []string{
	"main",
	`[role="main"]`,
	"#main-content",
	"#content",
	"article",
	".content",
	".main-content",
}

// Boilerplate removed when falling back to the whole body.
const noiseSelector = `script, style, nav, header, footer, noscript, iframe, ` +
	`[role="navigation"], .cookie-notice, .cookie-banner, ` +
	`.popup, .modal, .advertisement, .ad, #sidebar, .sidebar`

// Block elements walked into markdown fragments. Besides the usual blocks
// this picks up definition lists, figure captions, and class hints common on
// menu pages.
const manualBlockSelector = `h1, h2, h3, h4, h5, p, li, blockquote, dt, dd, figcaption, ` +
	`[class*="price"], [class*="menu-item"], [class*="description"]`

const minContainerText = 100

// Ensure ManualStrategy implements pagelens.ContentStrategy at compile time.
var _ pagelens.ContentStrategy = (*ManualStrategy)(nil)

// ManualStrategy is the selector-driven content extractor used alongside the
// readability strategy. It tries known main-content containers first and
// falls back to the full body with boilerplate removed.
type ManualStrategy struct{}

// NewManualStrategy creates a new ManualStrategy.
func NewManualStrategy() *ManualStrategy {
	return &ManualStrategy{}
}

// Name returns the strategy's identifier.
func (s *ManualStrategy) Name() string {
	return "manual"
}

// ExtractContent walks the chosen container's block elements into markdown
// lines. Returns "" when no container yields enough text.
func (s *ManualStrategy) ExtractContent(rawHTML string, pageURL string) (string, error) {
	doc := Load(rawHTML)

	var target *goquery.Selection
	for _, sel := range mainContentSelectors {
		el := doc.Find(sel).First()
		if el.Length() > 0 && len(clean(el.Text())) > minContainerText {
			target = el
			break
		}
	}

	if target == nil {
		target = doc.Find("body").Clone()
		target.Find(noiseSelector).Remove()
	}

	var lines []string
	target.Find(manualBlockSelector).Each(func(_ int, el *goquery.Selection) {
		t := clean(el.Text())
		if len(t) < 2 {
			return
		}
		lines = append(lines, manualMarkdownLine(goquery.NodeName(el), t))
	})

	out := strings.TrimSpace(strings.Join(collapseRepeats(lines), "\n"))
	if len(out) <= 50 {
		return "", nil
	}
	return out, nil
}

// manualMarkdownLine maps a block element to its markdown form. Second and
// third level headings get a leading blank line so sections stay visually
// separated after assembly.
func manualMarkdownLine(tag, t string) string {
	switch tag {
	case "h1":
		return "# " + t
	case "h2":
		return "\n## " + t
	case "h3":
		return "\n### " + t
	case "h4", "h5":
		return "**" + t + "**"
	case "li":
		return "- " + t
	case "blockquote":
		return "> " + t
	}
	return t
}

// collapseRepeats drops consecutive identical lines; repeated markup often
// renders the same text in adjacent wrappers.
func collapseRepeats(lines []string) []string {
	var out []string
	for i, l := range lines {
		if i > 0 && l == lines[i-1] {
			continue
		}
		out = append(out, l)
	}
	return out
}
