package goquery

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/semanticgateway/pagelens"
)

// extractTables pulls headers and data rows out of each HTML table.
// Headers come from a thead or the first row's header cells; a first row
// already captured as headers is skipped; rows whose cells are all empty are
// discarded. Tables that retain zero rows are dropped entirely.
func extractTables(doc *goquery.Document) []pagelens.Table {
	var tables []pagelens.Table

	doc.Find("table").Each(func(_ int, table *goquery.Selection) {
		var headers []string
		table.Find("thead th, thead td, tr:first-child th").Each(func(_ int, th *goquery.Selection) {
			headers = append(headers, clean(th.Text()))
		})

		var rows [][]string
		table.Find("tbody tr, tr").Each(func(i int, tr *goquery.Selection) {
			if i == 0 && len(headers) > 0 && tr.Find("th").Length() > 0 {
				return
			}
			var row []string
			hasContent := false
			tr.Find("td, th").Each(func(_ int, td *goquery.Selection) {
				cell := clean(td.Text())
				if cell != "" {
					hasContent = true
				}
				row = append(row, cell)
			})
			if hasContent {
				rows = append(rows, row)
			}
		})

		if len(rows) > 0 {
			tables = append(tables, pagelens.Table{Headers: headers, Rows: rows})
		}
	})

	return tables
}
