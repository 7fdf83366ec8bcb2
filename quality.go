package pagelens

import (
	"math"
	"strings"
)

// ComputeQuality derives boolean and float signals from an assembled digest.
// It is a pure function of the markdown and structured data: identical
// inputs always yield identical signals.
func ComputeQuality(markdown string, s *StructuredData) QualitySignals {
	var nonBlank, useful, sections int
	for _, line := range strings.Split(markdown, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		nonBlank++
		if len(line) > 10 {
			useful++
		}
		if strings.HasPrefix(line, "## ") {
			sections++
		}
	}

	density := 0.0
	if nonBlank > 0 {
		density = math.Round(float64(useful)/float64(nonBlank)*100) / 100
	}

	return QualitySignals{
		HasMainContent:       len(strings.TrimSpace(sectionBody(markdown, "## Content"))) > 100,
		HasStructuredData:    len(s.JSONLD) > 0,
		HasNavigation:        hasSection(markdown, "## Navigation"),
		HasContactInfo:       !s.ContactInfo.Empty(),
		HasReservationWidget: len(s.Reservations) > 0,
		ContentSections:      sections,
		InformationDensity:   density,
	}
}

// sectionBody returns the text between a section heading and the next
// second-level heading, or "" when the section is absent.
func sectionBody(markdown, heading string) string {
	lines := strings.Split(markdown, "\n")
	start := -1
	for i, line := range lines {
		if strings.TrimSpace(line) == heading {
			start = i + 1
			break
		}
	}
	if start < 0 {
		return ""
	}
	end := len(lines)
	for i := start; i < len(lines); i++ {
		if strings.HasPrefix(lines[i], "## ") {
			end = i
			break
		}
	}
	return strings.Join(lines[start:end], "\n")
}

func hasSection(markdown, heading string) bool {
	for _, line := range strings.Split(markdown, "\n") {
		if strings.TrimSpace(line) == heading {
			return true
		}
	}
	return false
}
