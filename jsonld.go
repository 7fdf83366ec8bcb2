package pagelens

import (
	"encoding/json"
	"sort"
	"strconv"
	"strings"
)

// hospitalityTypes get dedicated labeled formatting; every other type falls
// through to a generic property dump so no entity is silently dropped.
var hospitalityTypes = map[string]bool{
	"Restaurant":        true,
	"LocalBusiness":     true,
	"Hotel":             true,
	"FoodEstablishment": true,
}

// FormatEntity renders one JSON-LD entity as markdown lines.
// Output is deterministic: generic properties are emitted in sorted key
// order and numeric scalars keep their source representation when the
// entity was decoded with json.Number.
func FormatEntity(e Entity) string {
	return formatEntity(e, 0)
}

func formatEntity(e Entity, depth int) string {
	if e == nil {
		return ""
	}

	p := strings.Repeat("  ", depth)
	var lines []string

	if hospitalityTypes[e.Type()] {
		lines = appendHospitality(lines, e, p)
	} else {
		lines = appendGeneric(lines, e, p, depth)
	}

	return strings.Join(lines, "\n")
}

func appendHospitality(lines []string, e Entity, p string) []string {
	if v := e.String("name"); v != "" {
		lines = append(lines, p+"**Name:** "+v)
	}
	if v := e.String("description"); v != "" {
		lines = append(lines, p+"**Description:** "+v)
	}
	if v := scalarOrJoined(e["servesCuisine"]); v != "" {
		lines = append(lines, p+"**Cuisine:** "+v)
	}
	if v := e.String("priceRange"); v != "" {
		lines = append(lines, p+"**Price Range:** "+v)
	}
	if v := e.String("telephone"); v != "" {
		lines = append(lines, p+"**Phone:** "+v)
	}
	if a := e.Child("address"); a != nil {
		parts := make([]string, 0, 4)
		for _, k := range []string{"streetAddress", "addressLocality", "addressRegion", "postalCode"} {
			if v := formatScalar(a[k]); v != "" {
				parts = append(parts, v)
			}
		}
		if len(parts) > 0 {
			lines = append(lines, p+"**Address:** "+strings.Join(parts, ", "))
		}
	}
	if r := e.Child("aggregateRating"); r != nil {
		if v := formatScalar(r["ratingValue"]); v != "" {
			line := p + "**Rating:** " + v + "/5"
			if c := formatScalar(r["reviewCount"]); c != "" {
				line += " (" + c + " reviews)"
			}
			lines = append(lines, line)
		}
	}
	if specs := entityList(e["openingHoursSpecification"]); len(specs) > 0 {
		lines = append(lines, p+"**Hours:**")
		for _, h := range specs {
			days := scalarOrJoined(h["dayOfWeek"])
			lines = append(lines, p+"  "+days+": "+formatScalar(h["opens"])+"–"+formatScalar(h["closes"]))
		}
	}
	// hasMenu may also be a nested Menu entity; only a plain URL is useful
	// as a one-line fact.
	if v := e.String("hasMenu"); v != "" {
		lines = append(lines, p+"**Menu:** "+v)
	}
	return lines
}

func appendGeneric(lines []string, e Entity, p string, depth int) []string {
	if t := e.Type(); t != "" {
		lines = append(lines, p+"**Type:** "+t)
	}

	keys := make([]string, 0, len(e))
	for k := range e {
		if strings.HasPrefix(k, "@") {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		switch v := e[k].(type) {
		case string, json.Number, float64, int:
			lines = append(lines, p+"**"+k+":** "+formatScalar(v))
		case []any:
			if joined := joinStrings(v); joined != "" {
				lines = append(lines, p+"**"+k+":** "+joined)
			}
		case map[string]any:
			if nested := formatEntity(Entity(v), depth+1); nested != "" {
				lines = append(lines, nested)
			}
		}
	}
	return lines
}

// formatScalar renders a scalar JSON value as text. json.Number values keep
// their exact source representation.
func formatScalar(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case json.Number:
		return t.String()
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	}
	return ""
}

// scalarOrJoined renders a value that may be a scalar or an array of
// strings, such as servesCuisine or dayOfWeek.
func scalarOrJoined(v any) string {
	if arr, ok := v.([]any); ok {
		return joinStrings(arr)
	}
	return formatScalar(v)
}

// joinStrings joins the string elements of a JSON array with ", ".
// Returns "" when the array holds no strings at all.
func joinStrings(arr []any) string {
	if len(arr) == 0 {
		return ""
	}
	if _, ok := arr[0].(string); !ok {
		return ""
	}
	parts := make([]string, 0, len(arr))
	for _, el := range arr {
		if s, ok := el.(string); ok {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, ", ")
}

// entityList normalizes a property that may hold one object or an array of
// objects, preserving order.
func entityList(v any) []Entity {
	switch t := v.(type) {
	case map[string]any:
		return []Entity{Entity(t)}
	case []any:
		var out []Entity
		for _, el := range t {
			if m, ok := el.(map[string]any); ok {
				out = append(out, Entity(m))
			}
		}
		return out
	}
	return nil
}
