package goquery

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/semanticgateway/pagelens"
)

// Hours confidence priors: labeled hours elements versus whole-body text.
const (
	confidenceHoursLabeled = 0.7
	confidenceHoursBody    = 0.5
)

// canonicalDays in week order, used for circular range expansion.
var canonicalDays = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

var dayAliases = map[string]int{
	"monday": 0, "mon": 0,
	"tuesday": 1, "tues": 1, "tue": 1,
	"wednesday": 2, "wed": 2,
	"thursday": 3, "thurs": 3, "thur": 3, "thu": 3,
	"friday": 4, "fri": 4,
	"saturday": 5, "sat": 5,
	"sunday": 6, "sun": 6,
}

// Alternation ordered longest alias first so "thursday" is not consumed as
// "thu" followed by stray text.
const dayAlt = `monday|tuesday|wednesday|thursday|saturday|sunday|friday|thurs|thur|mon|tues|tue|wed|thu|fri|sat|sun`

const timeAlt = `\d{1,2}(?::\d{2})?\s*(?:am|pm)?`

// "Mon-Fri: 11am - 10pm", "Saturday 9:00am to 2:00pm", "Tue & Wed 5pm-9pm".
var hoursPattern = regexp.MustCompile(
	`(?i)\b(` + dayAlt + `)(?:\s*[-–—&,]\s*(` + dayAlt + `))?\s*[:.]?\s*(` + timeAlt + `)\s*(?:[-–—]|to)+\s*(` + timeAlt + `)`)

var timePattern = regexp.MustCompile(`(?i)(\d{1,2})(?::(\d{2}))?\s*(am|pm)?`)

// extractHours scans labeled hours elements first and falls back to the
// whole body text. Ranges like "Mon-Fri" expand circularly through the
// week; the first match for a given day wins.
func extractHours(doc *goquery.Document) []pagelens.HeuristicHours {
	corpus, confidence := hoursCorpus(doc)

	hours := []pagelens.HeuristicHours{}
	claimed := make(map[string]bool)

	for _, m := range hoursPattern.FindAllStringSubmatch(corpus, -1) {
		opens := normalizeTime(m[3])
		closes := normalizeTime(m[4])
		if opens == "" || closes == "" {
			continue
		}
		for _, day := range expandDayRange(m[1], m[2]) {
			if claimed[day] {
				continue
			}
			claimed[day] = true
			hours = append(hours, pagelens.HeuristicHours{
				DayOfWeek:  day,
				Opens:      opens,
				Closes:     closes,
				Confidence: confidence,
			})
		}
	}
	return hours
}

// hoursCorpus gathers text from hours-labeled elements, falling back to the
// full body when no element is labeled.
func hoursCorpus(doc *goquery.Document) (string, float64) {
	labeled := attrContainsFold(doc.Selection, "class", "hour").
		AddSelection(attrContainsFold(doc.Selection, "id", "hour")).
		AddSelection(attrContainsFold(doc.Selection, "class", "schedule")).
		AddSelection(attrContainsFold(doc.Selection, "id", "schedule")).
		AddSelection(attrContainsFold(doc.Selection, "class", "time")).
		AddSelection(attrContainsFold(doc.Selection, "id", "time")).
		AddSelection(attrContainsFold(doc.Selection, "class", "opening"))

	var sb strings.Builder
	labeled.Each(func(_ int, el *goquery.Selection) {
		sb.WriteString(el.Text())
		sb.WriteString("\n")
	})
	if strings.TrimSpace(sb.String()) != "" {
		return sb.String(), confidenceHoursLabeled
	}
	return doc.Find("body").Text(), confidenceHoursBody
}

// expandDayRange resolves "mon".."fri" style ranges, walking the week
// circularly so "Sat-Mon" covers Saturday, Sunday, Monday.
func expandDayRange(from, to string) []string {
	start, ok := dayAliases[strings.ToLower(from)]
	if !ok {
		return nil
	}
	if to == "" {
		return []string{canonicalDays[start]}
	}
	end, ok := dayAliases[strings.ToLower(to)]
	if !ok {
		return []string{canonicalDays[start]}
	}

	days := []string{canonicalDays[start]}
	for i := start; i != end; {
		i = (i + 1) % len(canonicalDays)
		days = append(days, canonicalDays[i])
		if len(days) == len(canonicalDays) {
			break
		}
	}
	return days
}

// normalizeTime converts "11am", "9:30 PM", "14:00" to 24-hour HH:MM.
func normalizeTime(raw string) string {
	m := timePattern.FindStringSubmatch(raw)
	if m == nil {
		return ""
	}
	hour, err := strconv.Atoi(m[1])
	if err != nil || hour > 23 {
		return ""
	}
	minutes := "00"
	if m[2] != "" {
		minutes = m[2]
	}
	switch strings.ToLower(m[3]) {
	case "pm":
		if hour < 12 {
			hour += 12
		}
	case "am":
		if hour == 12 {
			hour = 0
		}
	}
	return fmt.Sprintf("%02d:%s", hour, minutes)
}
