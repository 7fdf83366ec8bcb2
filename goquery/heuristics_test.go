package goquery_test

import (
	"testing"

	"github.com/semanticgateway/pagelens"
	"github.com/semanticgateway/pagelens/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseHeuristics(t *testing.T, html string) *pagelens.HeuristicResults {
	t.Helper()
	e := goquery.NewExtractor()
	results, err := e.ParseHeuristics(html, "https://example.com")
	require.NoError(t, err)
	return results
}

func TestParseHeuristics_Menu(t *testing.T) {
	t.Parallel()

	t.Run("menu-item selectors with price and description", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<h2>Starters</h2>
			<div class="menu-item">
				<h3>Caesar Salad</h3>
				<p>Crisp romaine with house dressing</p>
				<span class="price">$12</span>
			</div>
			<div class="menu-item">
				<h3>Garlic Bread</h3>
			</div>
		</body></html>`

		results := parseHeuristics(t, html)

		require.Len(t, results.MenuItems, 2)

		salad := results.MenuItems[0]
		assert.Equal(t, "Caesar Salad", salad.Name)
		assert.Equal(t, "Crisp romaine with house dressing", salad.Description)
		require.NotNil(t, salad.Price)
		assert.Equal(t, "12", salad.Price.String())
		assert.Equal(t, "Starters", salad.Section)
		assert.Equal(t, 0.65, salad.Confidence)

		bread := results.MenuItems[1]
		assert.Nil(t, bread.Price)
		assert.Equal(t, 0.45, bread.Confidence)
	})

	t.Run("price-anchored fallback", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<div><span><strong>Caesar Salad</strong> $12</span></div>
		</body></html>`

		results := parseHeuristics(t, html)

		require.NotEmpty(t, results.MenuItems)
		item := results.MenuItems[0]
		assert.Equal(t, "Caesar Salad", item.Name)
		require.NotNil(t, item.Price)
		assert.Equal(t, "12", item.Price.String())
		assert.Equal(t, 0.55, item.Confidence)
	})

	t.Run("prices outside the plausible window are ignored", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<div><span>Catering package $1200</span></div>
			<div><span>Kids cone $0.50</span></div>
		</body></html>`

		results := parseHeuristics(t, html)

		assert.Empty(t, results.MenuItems)
	})

	t.Run("boilerplate names are rejected", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<div class="menu-item"><h3>Menu</h3></div>
			<div class="menu-item"><h3>Sign In</h3></div>
			<div class="menu-item"><h3>Pasta Carbonara</h3></div>
		</body></html>`

		results := parseHeuristics(t, html)

		require.Len(t, results.MenuItems, 1)
		assert.Equal(t, "Pasta Carbonara", results.MenuItems[0].Name)
	})

	t.Run("items deduplicate case-insensitively by name", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<div class="menu-item"><h3>Caesar Salad</h3></div>
			<div class="dish"><h3>CAESAR SALAD</h3></div>
		</body></html>`

		results := parseHeuristics(t, html)

		assert.Len(t, results.MenuItems, 1)
	})

	t.Run("section defaults to Menu", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<div class="menu-item"><h3>Caesar Salad</h3></div>
		</body></html>`

		results := parseHeuristics(t, html)

		require.Len(t, results.MenuItems, 1)
		assert.Equal(t, "Menu", results.MenuItems[0].Section)
	})
}

func TestParseHeuristics_Hours(t *testing.T) {
	t.Parallel()

	t.Run("day range expands with normalized times", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<div class="hours">Mon-Fri 11:00am-10:00pm</div>
		</body></html>`

		results := parseHeuristics(t, html)

		require.Len(t, results.Hours, 5)
		days := make([]string, 0, 5)
		for _, h := range results.Hours {
			days = append(days, h.DayOfWeek)
			assert.Equal(t, "11:00", h.Opens)
			assert.Equal(t, "22:00", h.Closes)
			assert.Equal(t, 0.7, h.Confidence)
		}
		assert.Equal(t, []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}, days)
	})

	t.Run("circular range wraps the week", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<div id="schedule">Sat-Mon 9am-5pm</div>
		</body></html>`

		results := parseHeuristics(t, html)

		require.Len(t, results.Hours, 3)
		assert.Equal(t, "Saturday", results.Hours[0].DayOfWeek)
		assert.Equal(t, "Sunday", results.Hours[1].DayOfWeek)
		assert.Equal(t, "Monday", results.Hours[2].DayOfWeek)
		assert.Equal(t, "09:00", results.Hours[0].Opens)
		assert.Equal(t, "17:00", results.Hours[0].Closes)
	})

	t.Run("first match per day wins", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<div class="hours">Monday 11am-10pm Monday 9am-5pm</div>
		</body></html>`

		results := parseHeuristics(t, html)

		require.Len(t, results.Hours, 1)
		assert.Equal(t, "11:00", results.Hours[0].Opens)
	})

	t.Run("midnight and noon normalize correctly", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<div class="hours">Fri 12pm-12am</div>
		</body></html>`

		results := parseHeuristics(t, html)

		require.Len(t, results.Hours, 1)
		assert.Equal(t, "12:00", results.Hours[0].Opens)
		assert.Equal(t, "00:00", results.Hours[0].Closes)
	})

	t.Run("body text matches carry lower confidence", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<p>We are open Tue-Thu 5pm to 11pm for dinner service.</p>
		</body></html>`

		results := parseHeuristics(t, html)

		require.Len(t, results.Hours, 3)
		assert.Equal(t, 0.5, results.Hours[0].Confidence)
		assert.Equal(t, "17:00", results.Hours[0].Opens)
		assert.Equal(t, "23:00", results.Hours[0].Closes)
	})
}

func TestParseHeuristics_Addresses(t *testing.T) {
	t.Parallel()

	t.Run("full address with zip", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<footer>123 Main St, Springfield, IL 62704</footer>
		</body></html>`

		results := parseHeuristics(t, html)

		require.Len(t, results.Addresses, 1)
		addr := results.Addresses[0]
		assert.Equal(t, "123 Main St", addr.StreetAddress)
		assert.Equal(t, "Springfield", addr.City)
		assert.Equal(t, "IL", addr.State)
		assert.Equal(t, "62704", addr.PostalCode)
		assert.Equal(t, 0.7, addr.Confidence)
	})

	t.Run("missing zip lowers confidence", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<div class="location">456 Oak Avenue, Portland, OR</div>
		</body></html>`

		results := parseHeuristics(t, html)

		require.Len(t, results.Addresses, 1)
		assert.Equal(t, "", results.Addresses[0].PostalCode)
		assert.Equal(t, 0.55, results.Addresses[0].Confidence)
	})

	t.Run("invalid state codes are rejected", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<p>789 Fake Blvd, Nowhere, ZZ 12345</p>
		</body></html>`

		results := parseHeuristics(t, html)

		assert.Empty(t, results.Addresses)
	})

	t.Run("duplicates collapse across corpus sources", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<address>123 Main St, Springfield, IL 62704</address>
			<footer>123 Main St, Springfield, IL 62704</footer>
		</body></html>`

		results := parseHeuristics(t, html)

		assert.Len(t, results.Addresses, 1)
	})
}

func TestParseHeuristics_Phones(t *testing.T) {
	t.Parallel()

	t.Run("tel links earn highest confidence", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<a href="tel:+12125551234">Call us</a>
		</body></html>`

		results := parseHeuristics(t, html)

		require.Len(t, results.Phones, 1)
		assert.Equal(t, "+12125551234", results.Phones[0].Value)
		assert.Equal(t, 0.9, results.Phones[0].Confidence)
	})

	t.Run("contact-labeled text matches at lower confidence", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<div class="contact">Reach us at (212) 555-1234 today.</div>
		</body></html>`

		results := parseHeuristics(t, html)

		require.Len(t, results.Phones, 1)
		assert.Equal(t, "(212) 555-1234", results.Phones[0].Value)
		assert.Equal(t, 0.75, results.Phones[0].Confidence)
	})

	t.Run("tracking ids are filtered", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<footer>Ref 12125551234987</footer>
		</body></html>`

		results := parseHeuristics(t, html)

		assert.Empty(t, results.Phones)
	})

	t.Run("dedup is by exact matched string", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<a href="tel:2125551234">Call</a>
			<a href="tel:2125551234">Call again</a>
			<footer>(212) 555-1234</footer>
		</body></html>`

		results := parseHeuristics(t, html)

		require.Len(t, results.Phones, 2)
		assert.Equal(t, "2125551234", results.Phones[0].Value)
		assert.Equal(t, 0.9, results.Phones[0].Confidence)
		assert.Equal(t, "(212) 555-1234", results.Phones[1].Value)
		assert.Equal(t, 0.75, results.Phones[1].Confidence)
	})
}

func TestParseHeuristics_EmptyInput(t *testing.T) {
	t.Parallel()

	e := goquery.NewExtractor()
	_, err := e.ParseHeuristics("", "https://example.com")
	require.Error(t, err)
	assert.Equal(t, pagelens.EINVALID, pagelens.ErrorCode(err))
}
