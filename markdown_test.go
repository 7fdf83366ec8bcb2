package pagelens_test

import (
	"strings"
	"testing"

	"github.com/semanticgateway/pagelens"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssembleMarkdown(t *testing.T) {
	t.Parallel()

	t.Run("title falls back to URL", func(t *testing.T) {
		t.Parallel()

		out := pagelens.AssembleMarkdown(&pagelens.PageParts{
			SourceURL: "https://example.com",
		})

		assert.True(t, strings.HasPrefix(out, "# https://example.com"))
		assert.Contains(t, out, "Source: https://example.com")
	})

	t.Run("description becomes a blockquote", func(t *testing.T) {
		t.Parallel()

		out := pagelens.AssembleMarkdown(&pagelens.PageParts{
			SourceURL:   "https://example.com",
			Title:       "Joe's Diner",
			Description: "Best burgers in town.",
		})

		assert.Contains(t, out, "# Joe's Diner")
		assert.Contains(t, out, "> Best burgers in town.")
	})

	t.Run("empty sections emit no headers", func(t *testing.T) {
		t.Parallel()

		out := pagelens.AssembleMarkdown(&pagelens.PageParts{
			SourceURL: "https://example.com",
			Title:     "Empty Page",
		})

		assert.NotContains(t, out, "## ")
	})

	t.Run("short content is omitted", func(t *testing.T) {
		t.Parallel()

		out := pagelens.AssembleMarkdown(&pagelens.PageParts{
			SourceURL: "https://example.com",
			Content:   "too short",
		})

		assert.NotContains(t, out, "## Content")
	})

	t.Run("full assembly keeps fixed section order", func(t *testing.T) {
		t.Parallel()

		out := pagelens.AssembleMarkdown(&pagelens.PageParts{
			SourceURL:   "https://example.com",
			Title:       "Joe's Diner",
			Description: "Best burgers.",
			JSONLD: []pagelens.Entity{
				{"@type": "Restaurant", "name": "Joe's Diner"},
			},
			NavLinks: []pagelens.NavLink{
				{Text: "Menu", URL: "https://example.com/menu"},
			},
			Content: strings.Repeat("Real page content with substance. ", 5),
			Tables: []pagelens.Table{
				{Headers: []string{"Dish", "Price"}, Rows: [][]string{{"Burger", "$12"}}},
			},
			Contact: &pagelens.ContactInfo{
				Phones:    []string{"(212) 555-1234"},
				Emails:    []string{"info@example.com"},
				Addresses: []string{"123 Main St, Springfield, IL 62704"},
			},
			Reservations: []pagelens.ReservationInfo{
				{Platform: pagelens.PlatformOpenTable, URL: "https://www.opentable.com/r/joes", Confidence: 0.95},
			},
			PDFs: []string{"https://example.com/menu.pdf"},
		})

		order := []string{
			"# Joe's Diner",
			"> Best burgers.",
			"Source: https://example.com",
			"## Structured Data",
			"**Name:** Joe's Diner",
			"## Navigation",
			"- [Menu](https://example.com/menu)",
			"## Content",
			"## Tables",
			"| Dish | Price |",
			"| --- | --- |",
			"| Burger | $12 |",
			"## Contact",
			"**Phone:** (212) 555-1234",
			"**Email:** info@example.com",
			"**Address:** 123 Main St, Springfield, IL 62704",
			"## Reservations",
			"- **opentable**: https://www.opentable.com/r/joes",
			"## Documents",
			"- https://example.com/menu.pdf",
		}
		pos := -1
		for _, want := range order {
			idx := strings.Index(out, want)
			require.GreaterOrEqual(t, idx, 0, "missing %q", want)
			assert.Greater(t, idx, pos, "%q out of order", want)
			pos = idx
		}
	})

	t.Run("headerless tables skip the separator row", func(t *testing.T) {
		t.Parallel()

		out := pagelens.AssembleMarkdown(&pagelens.PageParts{
			SourceURL: "https://example.com",
			Tables: []pagelens.Table{
				{Rows: [][]string{{"Mon", "11-10"}}},
			},
		})

		assert.Contains(t, out, "| Mon | 11-10 |")
		assert.NotContains(t, out, "---")
	})

	t.Run("collapses runs of blank lines", func(t *testing.T) {
		t.Parallel()

		out := pagelens.AssembleMarkdown(&pagelens.PageParts{
			SourceURL: "https://example.com",
			Content:   "First paragraph of real content here.\n\n\n\nSecond paragraph after many blanks.",
		})

		assert.NotContains(t, out, "\n\n\n")
	})

	t.Run("identical input yields identical output", func(t *testing.T) {
		t.Parallel()

		parts := &pagelens.PageParts{
			SourceURL: "https://example.com",
			Title:     "Stable",
			JSONLD: []pagelens.Entity{
				{"@type": "Thing", "zeta": "z", "alpha": "a", "mid": "m"},
			},
		}

		first := pagelens.AssembleMarkdown(parts)
		for i := 0; i < 10; i++ {
			assert.Equal(t, first, pagelens.AssembleMarkdown(parts))
		}
	})
}
