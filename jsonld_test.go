package pagelens_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/semanticgateway/pagelens"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEntity(t *testing.T, raw string) pagelens.Entity {
	t.Helper()
	var m map[string]any
	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()
	require.NoError(t, dec.Decode(&m))
	return pagelens.Entity(m)
}

func TestFormatEntity(t *testing.T) {
	t.Parallel()

	t.Run("restaurant gets labeled hospitality formatting", func(t *testing.T) {
		t.Parallel()

		e := decodeEntity(t, `{
			"@type": "Restaurant",
			"name": "Joe's Diner",
			"description": "A neighborhood institution.",
			"servesCuisine": ["American", "Burgers"],
			"priceRange": "$$",
			"telephone": "(212) 555-1234",
			"address": {
				"streetAddress": "123 Main St",
				"addressLocality": "Springfield",
				"addressRegion": "IL",
				"postalCode": "62704"
			},
			"aggregateRating": {"ratingValue": 4.5, "reviewCount": 120},
			"openingHoursSpecification": [
				{"dayOfWeek": ["Monday", "Tuesday"], "opens": "11:00", "closes": "22:00"}
			],
			"hasMenu": "https://example.com/menu"
		}`)

		out := pagelens.FormatEntity(e)

		assert.Contains(t, out, "**Name:** Joe's Diner")
		assert.Contains(t, out, "**Description:** A neighborhood institution.")
		assert.Contains(t, out, "**Cuisine:** American, Burgers")
		assert.Contains(t, out, "**Price Range:** $$")
		assert.Contains(t, out, "**Phone:** (212) 555-1234")
		assert.Contains(t, out, "**Address:** 123 Main St, Springfield, IL, 62704")
		assert.Contains(t, out, "**Rating:** 4.5/5 (120 reviews)")
		assert.Contains(t, out, "**Hours:**")
		assert.Contains(t, out, "Monday, Tuesday: 11:00–22:00")
		assert.Contains(t, out, "**Menu:** https://example.com/menu")
	})

	t.Run("object-valued hasMenu is skipped", func(t *testing.T) {
		t.Parallel()

		e := decodeEntity(t, `{
			"@type": "Restaurant",
			"name": "Joe's Diner",
			"hasMenu": {"@type": "Menu", "name": "Dinner"}
		}`)

		out := pagelens.FormatEntity(e)

		assert.NotContains(t, out, "**Menu:**")
	})

	t.Run("generic entity dumps sorted properties", func(t *testing.T) {
		t.Parallel()

		e := decodeEntity(t, `{
			"@type": "Event",
			"@context": "https://schema.org",
			"zebra": "last",
			"alpha": "first",
			"count": 42
		}`)

		out := pagelens.FormatEntity(e)

		assert.Contains(t, out, "**Type:** Event")
		assert.NotContains(t, out, "@context")
		alphaIdx := strings.Index(out, "**alpha:** first")
		countIdx := strings.Index(out, "**count:** 42")
		zebraIdx := strings.Index(out, "**zebra:** last")
		require.GreaterOrEqual(t, alphaIdx, 0)
		require.GreaterOrEqual(t, countIdx, 0)
		require.GreaterOrEqual(t, zebraIdx, 0)
		assert.Less(t, alphaIdx, countIdx)
		assert.Less(t, countIdx, zebraIdx)
	})

	t.Run("nested generic objects indent", func(t *testing.T) {
		t.Parallel()

		e := decodeEntity(t, `{
			"@type": "Event",
			"location": {"@type": "Place", "name": "Main Hall"}
		}`)

		out := pagelens.FormatEntity(e)

		assert.Contains(t, out, "  **Type:** Place")
		assert.Contains(t, out, "  **name:** Main Hall")
	})

	t.Run("numbers keep their source representation", func(t *testing.T) {
		t.Parallel()

		e := decodeEntity(t, `{"@type": "Thing", "value": 4.50}`)

		out := pagelens.FormatEntity(e)

		assert.Contains(t, out, "**value:** 4.50")
	})

	t.Run("deterministic across repeated calls", func(t *testing.T) {
		t.Parallel()

		e := decodeEntity(t, `{
			"@type": "Event",
			"c": "3", "a": "1", "b": "2", "e": "5", "d": "4"
		}`)

		first := pagelens.FormatEntity(e)
		for i := 0; i < 20; i++ {
			assert.Equal(t, first, pagelens.FormatEntity(e))
		}
	})
}
