package scraper

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestParseDateRange(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		start time.Time
		end   time.Time
	}{
		{
			name:  "short range shares start year",
			text:  "2025.01.15~01.16",
			start: date(2025, 1, 15),
			end:   date(2025, 1, 16),
		},
		{
			name:  "year rollover December to January",
			text:  "2025.12.29~01.02",
			start: date(2025, 12, 29),
			end:   date(2026, 1, 2),
		},
		{
			name:  "full range with both years",
			text:  "2025.12.29~2026.01.02",
			start: date(2025, 12, 29),
			end:   date(2026, 1, 2),
		},
		{
			name:  "single date collapses to itself",
			text:  "2025.01.15",
			start: date(2025, 1, 15),
			end:   date(2025, 1, 15),
		},
		{
			name:  "single digit month and day",
			text:  "2025.1.5~1.7",
			start: date(2025, 1, 5),
			end:   date(2025, 1, 7),
		},
		{
			name:  "hyphen separator",
			text:  "2025.01.15-01.16",
			start: date(2025, 1, 15),
			end:   date(2025, 1, 16),
		},
		{name: "dash placeholder", text: "-"},
		{name: "empty cell", text: ""},
		{name: "invalid day yields no dates", text: "2025.01.32~02.01"},
		{name: "not a date at all", text: "미정"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := parseDateRange(tt.text)
			if !start.Equal(tt.start) {
				t.Errorf("parseDateRange(%q) start = %v, expected %v", tt.text, start, tt.start)
			}
			if !end.Equal(tt.end) {
				t.Errorf("parseDateRange(%q) end = %v, expected %v", tt.text, end, tt.end)
			}
		})
	}
}

func TestParseSingleDate(t *testing.T) {
	if got := parseSingleDate("2025.01.25"); !got.Equal(date(2025, 1, 25)) {
		t.Errorf("parseSingleDate = %v", got)
	}
	if got := parseSingleDate("2025.1.5"); !got.Equal(date(2025, 1, 5)) {
		t.Errorf("parseSingleDate = %v", got)
	}
	if got := parseSingleDate("-"); !got.IsZero() {
		t.Errorf("expected zero time for dash, got %v", got)
	}
	if got := parseSingleDate("2025.02.30"); !got.IsZero() {
		t.Errorf("expected zero time for invalid date, got %v", got)
	}
}

func TestParsePrice(t *testing.T) {
	tests := []struct {
		text     string
		expected int
	}{
		{"10,000원", 10000},
		{"10,000", 10000},
		{" 7,500 ", 7500},
		{"-", 0},
		{"", 0},
		{"미정", 0},
	}

	for _, tt := range tests {
		if got := parsePrice(tt.text); got != tt.expected {
			t.Errorf("parsePrice(%q) = %d, expected %d", tt.text, got, tt.expected)
		}
	}
}

func TestParsePriceRange(t *testing.T) {
	tests := []struct {
		text      string
		low, high int
	}{
		{"9,000~11,000", 9000, 11000},
		{"9,000-11,000", 9000, 11000},
		{"10,000", 10000, 10000},
		{"-", 0, 0},
		{"", 0, 0},
	}

	for _, tt := range tests {
		low, high := parsePriceRange(tt.text)
		if low != tt.low || high != tt.high {
			t.Errorf("parsePriceRange(%q) = (%d, %d), expected (%d, %d)", tt.text, low, high, tt.low, tt.high)
		}
	}
}

func TestParseCompetition(t *testing.T) {
	tests := []struct {
		text     string
		expected float64
	}{
		{"967.60:1", 967.60},
		{"1,234.56:1", 1234.56},
		{"120 : 1", 120},
		{"-", 0},
		{"", 0},
		{"경쟁률", 0},
	}

	for _, tt := range tests {
		if got := parseCompetition(tt.text); got != tt.expected {
			t.Errorf("parseCompetition(%q) = %v, expected %v", tt.text, got, tt.expected)
		}
	}
}

func TestCleanUnderwriter(t *testing.T) {
	tests := []struct {
		text     string
		expected string
	}{
		{"A증권/B증권", "A증권"},
		{"A증권, B증권", "A증권"},
		{"미래에셋증권·한국투자증권", "미래에셋증권"},
		{"NH투자증권|삼성증권", "NH투자증권"},
		{"  한화투자증권  ", "한화투자증권"},
		{"-", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := cleanUnderwriter(tt.text); got != tt.expected {
			t.Errorf("cleanUnderwriter(%q) = %q, expected %q", tt.text, got, tt.expected)
		}
	}
}

func TestCleanCompanyName(t *testing.T) {
	tests := []struct {
		text     string
		expected string
	}{
		{"테스트기업", "테스트기업"},
		{"한빛테크(코넥스)", "한빛테크"},
		{"스팩주(유가)  제12호", "스팩주 제12호"},
		{"종목명", ""},
		{"기업명", ""},
		{"회사명", ""},
		{"", ""},
		{"  ", ""},
	}

	for _, tt := range tests {
		if got := cleanCompanyName(tt.text); got != tt.expected {
			t.Errorf("cleanCompanyName(%q) = %q, expected %q", tt.text, got, tt.expected)
		}
	}
}
