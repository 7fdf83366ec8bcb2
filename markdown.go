package pagelens

import (
	"regexp"
	"strings"
)

// Sections are assembled in a fixed order; a section is emitted only when it
// has something to say, so the digest never contains an empty heading.
var blankRuns = regexp.MustCompile(`\n{3,}`)

// minContentLength is the threshold below which the winning content
// strategy's output is considered noise and the Content section is omitted.
const minContentLength = 50

// AssembleMarkdown joins all extraction stage outputs into the final digest.
// The result is deterministic for identical inputs: fixed section order,
// runs of 3+ newlines collapsed to one blank line, and surrounding
// whitespace trimmed.
func AssembleMarkdown(p *PageParts) string {
	var s []string

	title := p.Title
	if title == "" {
		title = p.SourceURL
	}
	s = append(s, "# "+title)
	if p.Description != "" {
		s = append(s, "> "+p.Description+"\n")
	}
	s = append(s, "Source: "+p.SourceURL+"\n")

	if len(p.JSONLD) > 0 {
		s = append(s, "## Structured Data")
		for _, e := range p.JSONLD {
			s = append(s, FormatEntity(e))
		}
		s = append(s, "")
	}

	if len(p.NavLinks) > 0 {
		s = append(s, "## Navigation")
		links := make([]string, 0, len(p.NavLinks))
		for _, l := range p.NavLinks {
			links = append(links, "- ["+l.Text+"]("+l.URL+")")
		}
		s = append(s, strings.Join(links, "\n"), "")
	}

	if len(p.Content) > minContentLength {
		s = append(s, "## Content", p.Content, "")
	}

	if len(p.Tables) > 0 {
		s = append(s, "## Tables")
		for _, t := range p.Tables {
			s = append(s, formatTable(t)...)
			s = append(s, "")
		}
	}

	if !p.Contact.Empty() {
		s = append(s, "## Contact")
		if len(p.Contact.Phones) > 0 {
			s = append(s, "**Phone:** "+strings.Join(p.Contact.Phones, ", "))
		}
		if len(p.Contact.Emails) > 0 {
			s = append(s, "**Email:** "+strings.Join(p.Contact.Emails, ", "))
		}
		if len(p.Contact.Addresses) > 0 {
			s = append(s, "**Address:** "+strings.Join(p.Contact.Addresses, "; "))
		}
		s = append(s, "")
	}

	if len(p.Reservations) > 0 {
		s = append(s, "## Reservations")
		for _, r := range p.Reservations {
			s = append(s, "- **"+r.Platform+"**: "+r.URL)
		}
		s = append(s, "")
	}

	if len(p.PDFs) > 0 {
		s = append(s, "## Documents")
		for _, pdf := range p.PDFs {
			s = append(s, "- "+pdf)
		}
		s = append(s, "")
	}

	out := strings.Join(s, "\n")
	return strings.TrimSpace(blankRuns.ReplaceAllString(out, "\n\n"))
}

// formatTable renders one table as a markdown pipe table. The header and
// separator rows are emitted only when the table had recognizable headers.
func formatTable(t Table) []string {
	var lines []string
	if len(t.Headers) > 0 {
		lines = append(lines, "| "+strings.Join(t.Headers, " | ")+" |")
		seps := make([]string, len(t.Headers))
		for i := range seps {
			seps[i] = "---"
		}
		lines = append(lines, "| "+strings.Join(seps, " | ")+" |")
	}
	for _, row := range t.Rows {
		lines = append(lines, "| "+strings.Join(row, " | ")+" |")
	}
	return lines
}
