package scraper

import (
	"os"
	"testing"
)

func loadFixture(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile("testdata/fixtures/" + name)
	if err != nil {
		t.Fatalf("failed to load fixture %s: %v", name, err)
	}
	return string(data)
}

func TestParseSubscriptionList(t *testing.T) {
	html := loadFixture(t, "subscription.html")

	records, err := parseScheduleList(html, VariantSubscription, "http://www.38.co.kr")
	if err != nil {
		t.Fatalf("parseScheduleList failed: %v", err)
	}

	// Header row is rejected by the name check; the duplicate row survives
	// until the filter step.
	if len(records) != 4 {
		t.Fatalf("expected 4 raw records, got %d", len(records))
	}
	if records[0].CompanyName != "테스트기업" {
		t.Fatalf("unexpected record order, first parsed company: %s", records[0].CompanyName)
	}
}

func TestParseSubscriptionListUsesMarkedTableOnly(t *testing.T) {
	html := loadFixture(t, "subscription.html")

	records, err := parseScheduleList(html, VariantSubscription, "http://www.38.co.kr")
	if err != nil {
		t.Fatalf("parseScheduleList failed: %v", err)
	}

	for _, r := range records {
		if r.CompanyName == "실시간 인기주 TOP10" {
			t.Error("record from unmarked table should not be parsed when marker table exists")
		}
	}
}

func TestParseSubscriptionRowFields(t *testing.T) {
	html := loadFixture(t, "subscription.html")

	records, err := parseScheduleList(html, VariantSubscription, "http://www.38.co.kr")
	if err != nil {
		t.Fatalf("parseScheduleList failed: %v", err)
	}

	r := records[0]
	if r.CompanyName != "테스트기업" {
		t.Fatalf("unexpected company: %s", r.CompanyName)
	}
	if !r.SubscriptionStart.Equal(date(2025, 1, 15)) || !r.SubscriptionEnd.Equal(date(2025, 1, 16)) {
		t.Errorf("unexpected subscription window: %v ~ %v", r.SubscriptionStart, r.SubscriptionEnd)
	}
	if r.FinalOfferPrice != 10000 {
		t.Errorf("expected final price 10000, got %d", r.FinalOfferPrice)
	}
	if r.OfferPriceMin != 9000 || r.OfferPriceMax != 11000 {
		t.Errorf("unexpected price range: %d~%d", r.OfferPriceMin, r.OfferPriceMax)
	}
	if r.InstitutionalCompetition != 967.60 {
		t.Errorf("expected competition 967.60, got %v", r.InstitutionalCompetition)
	}
	if r.LeadUnderwriter != "A증권" {
		t.Errorf("expected lead underwriter A증권, got %q", r.LeadUnderwriter)
	}
	if r.DetailURL != "http://www.38.co.kr/html/fund/?o=v&no=2101" {
		t.Errorf("unexpected detail URL: %s", r.DetailURL)
	}
	if r.Source != SourceName {
		t.Errorf("unexpected source: %s", r.Source)
	}

	// Parenthetical market tag is stripped, rollover range crosses the year.
	tagged := records[1]
	if tagged.CompanyName != "한빛테크" {
		t.Errorf("expected parenthetical tag to be stripped, got %q", tagged.CompanyName)
	}
	if !tagged.SubscriptionEnd.Equal(date(2026, 1, 2)) {
		t.Errorf("expected rollover end 2026-01-02, got %v", tagged.SubscriptionEnd)
	}
}

func TestParseListingList(t *testing.T) {
	html := loadFixture(t, "listing.html")

	records, err := parseScheduleList(html, VariantListing, "http://www.38.co.kr")
	if err != nil {
		t.Fatalf("parseScheduleList failed: %v", err)
	}

	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}

	r := records[0]
	if r.CompanyName != "테스트기업" {
		t.Errorf("unexpected company: %s", r.CompanyName)
	}
	// Slash-separated listing dates are normalized before parsing.
	if !r.ListingDate.Equal(date(2025, 1, 25)) {
		t.Errorf("expected listing date 2025-01-25, got %v", r.ListingDate)
	}
	if r.FinalOfferPrice != 10000 {
		t.Errorf("expected offer price 10000, got %d", r.FinalOfferPrice)
	}
	if !r.SubscriptionStart.IsZero() {
		t.Error("listing rows must not carry subscription dates")
	}

	if !records[1].ListingDate.Equal(date(2025, 1, 20)) {
		t.Errorf("expected listing date 2025-01-20, got %v", records[1].ListingDate)
	}
}

func TestParseListFallsBackToAllTables(t *testing.T) {
	html := `<html><body><table>
		<tr><td><a href="/x">무마커기업</a></td><td>2025.02.01~02.02</td><td>-</td><td>5,000~6,000</td><td>-</td><td>E증권</td></tr>
	</table></body></html>`

	records, err := parseScheduleList(html, VariantSubscription, "http://www.38.co.kr")
	if err != nil {
		t.Fatalf("parseScheduleList failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record from fallback scan, got %d", len(records))
	}
	if records[0].CompanyName != "무마커기업" {
		t.Errorf("unexpected company: %s", records[0].CompanyName)
	}
}

func TestParseListSkipsShortRows(t *testing.T) {
	html := `<html><body><table summary="공모주 소식">
		<tr><td>빈줄</td></tr>
		<tr><td>짧은행</td><td>2025.02.01</td><td>-</td></tr>
	</table></body></html>`

	records, err := parseScheduleList(html, VariantSubscription, "http://www.38.co.kr")
	if err != nil {
		t.Fatalf("parseScheduleList failed: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("expected short rows to be skipped, got %d records", len(records))
	}
}
