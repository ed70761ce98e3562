package scraper

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jiundev/gongmo/internal/ipo"
)

// SourceName is the provenance tag recorded on every collected Schedule.
const SourceName = "38커뮤니케이션"

// Variant selects which page layout a row belongs to. The two layouts are
// parsed by independent functions; the caller chooses explicitly rather
// than guessing from column counts.
type Variant int

const (
	// VariantSubscription is the 청약 일정 page (o=k).
	VariantSubscription Variant = iota
	// VariantListing is the 신규 상장 page (o=nw).
	VariantListing
)

// minColumns returns the minimum cell count for a data row of the variant;
// shorter rows are headers or spacers.
func (v Variant) minColumns() int {
	if v == VariantListing {
		return 7
	}
	return 5
}

// tableSummary returns the summary attribute marking the variant's data
// table on the page.
func (v Variant) tableSummary() string {
	if v == VariantListing {
		return "신규상장종목"
	}
	return "공모주 소식"
}

// extractCompanyName pulls the company name out of the first cell,
// preferring anchor text over the raw cell text. Returns "" for header and
// empty cells.
func extractCompanyName(cell *goquery.Selection) string {
	text := cell.Find("a").First().Text()
	if strings.TrimSpace(text) == "" {
		text = cell.Text()
	}
	return cleanCompanyName(text)
}

// extractDetailURL returns the absolutized href of the first anchor in the
// cell, or "".
func extractDetailURL(cell *goquery.Selection, baseURL string) string {
	href, ok := cell.Find("a").First().Attr("href")
	if !ok || href == "" {
		return ""
	}
	if !strings.HasPrefix(href, "http") {
		href = baseURL + href
	}
	return href
}

// parseSubscriptionRow converts one 청약 일정 table row into a Schedule.
// Cell layout: [0] company + detail link, [1] subscription period,
// [2] final offer price, [3] offer price range, [4] competition ratio,
// [5] underwriters. Returns nil when the row carries no usable company name.
func parseSubscriptionRow(cells []*goquery.Selection, baseURL string) *ipo.Schedule {
	name := extractCompanyName(cells[0])
	if name == "" {
		return nil
	}

	s := ipo.NewSchedule(name, SourceName)
	s.DetailURL = extractDetailURL(cells[0], baseURL)
	s.SubscriptionStart, s.SubscriptionEnd = parseDateRange(cells[1].Text())
	s.FinalOfferPrice = parsePrice(cells[2].Text())
	s.OfferPriceMin, s.OfferPriceMax = parsePriceRange(cells[3].Text())
	s.InstitutionalCompetition = parseCompetition(cells[4].Text())
	if len(cells) > 5 {
		s.LeadUnderwriter = cleanUnderwriter(cells[5].Text())
	}

	return s
}

// parseListingRow converts one 신규 상장 table row into a Schedule carrying
// only the listing date and final offer price. Cell layout: [0] company,
// [1] listing date, [4] offer price; the remaining columns are market
// performance figures this collector does not use.
func parseListingRow(cells []*goquery.Selection, baseURL string) *ipo.Schedule {
	name := extractCompanyName(cells[0])
	if name == "" {
		return nil
	}

	s := ipo.NewSchedule(name, SourceName)
	s.DetailURL = extractDetailURL(cells[0], baseURL)
	s.ListingDate = parseSingleDate(strings.ReplaceAll(cells[1].Text(), "/", "."))
	s.FinalOfferPrice = parsePrice(cells[4].Text())

	return s
}

// parseRow dispatches to the variant's row parser.
func parseRow(v Variant, cells []*goquery.Selection, baseURL string) *ipo.Schedule {
	if v == VariantListing {
		return parseListingRow(cells, baseURL)
	}
	return parseSubscriptionRow(cells, baseURL)
}
