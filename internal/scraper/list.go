package scraper

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jiundev/gongmo/internal/ipo"
	"github.com/jiundev/gongmo/internal/logger"
)

// parseScheduleList extracts all Schedule records of the given variant from
// a page body. Tables are located by their summary attribute; when the
// marker is absent (markup drift) every table on the page is scanned.
// Rows below the variant's minimum column count are skipped silently,
// malformed rows are skipped with a debug log.
func parseScheduleList(html string, v Variant, baseURL string) ([]*ipo.Schedule, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	tables := doc.Find("table").FilterFunction(func(_ int, sel *goquery.Selection) bool {
		summary, _ := sel.Attr("summary")
		return summary == v.tableSummary()
	})
	if tables.Length() == 0 {
		tables = doc.Find("table")
	}

	var results []*ipo.Schedule

	tables.Find("tr").Each(func(_ int, row *goquery.Selection) {
		var cells []*goquery.Selection
		row.Find("td").Each(func(_ int, cell *goquery.Selection) {
			cells = append(cells, cell)
		})

		if len(cells) < v.minColumns() {
			return
		}

		s := parseRow(v, cells, baseURL)
		if s == nil {
			logger.Debug("skipping row without usable company name", logger.Fields{
				"cell": strings.TrimSpace(cells[0].Text()),
			})
			return
		}
		results = append(results, s)
	})

	return results, nil
}
