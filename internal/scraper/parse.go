package scraper

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Primitive field parsers shared by the subscription-page and listing-page
// row parsers. All of them treat "-" and empty text as "no value" and
// return zero values instead of errors on malformed input.

var (
	// "2025.01.15~01.16" — end month/day inherit the start year.
	dateRangeShortPattern = regexp.MustCompile(`(\d{4})\.(\d{1,2})\.(\d{1,2})~(\d{1,2})\.(\d{1,2})`)
	// "2025.12.29~2026.01.02" — both full dates.
	dateRangeFullPattern = regexp.MustCompile(`(\d{4})\.(\d{1,2})\.(\d{1,2})~(\d{4})\.(\d{1,2})\.(\d{1,2})`)
	// "2025.01.15" — a single date.
	singleDatePattern = regexp.MustCompile(`(\d{4})\.(\d{1,2})\.(\d{1,2})`)

	nonDigitPattern    = regexp.MustCompile(`[^\d]`)
	competitionPattern = regexp.MustCompile(`([\d,.]+)\s*:\s*1`)
	parenTagPattern    = regexp.MustCompile(`\(.*?\)`)
	whitespacePattern  = regexp.MustCompile(`\s+`)
)

// makeDate builds a calendar date, returning the zero time for invalid
// combinations such as day 32 (time.Date would silently normalize them).
func makeDate(year, month, day int) time.Time {
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day {
		return time.Time{}
	}
	return t
}

// normalizeRangeSeparators maps the separator variants seen in the wild
// (hyphen, en dash, fullwidth tilde) onto "~".
func normalizeRangeSeparators(text string) string {
	replacer := strings.NewReplacer("-", "~", "–", "~", "～", "~")
	return replacer.Replace(text)
}

// parseDateRange parses a subscription period cell. Three patterns are
// tried in order: year-prefixed short range, two full dates, single date.
// A short range whose end precedes its start rolls over into the next year
// (December subscription ending in January).
func parseDateRange(text string) (start, end time.Time) {
	text = strings.TrimSpace(text)
	if text == "" || text == "-" {
		return time.Time{}, time.Time{}
	}

	text = normalizeRangeSeparators(text)

	if m := dateRangeShortPattern.FindStringSubmatch(text); m != nil {
		year := atoi(m[1])
		start = makeDate(year, atoi(m[2]), atoi(m[3]))
		end = makeDate(year, atoi(m[4]), atoi(m[5]))
		if start.IsZero() || end.IsZero() {
			return time.Time{}, time.Time{}
		}
		if end.Before(start) {
			end = makeDate(year+1, atoi(m[4]), atoi(m[5]))
			if end.IsZero() {
				return time.Time{}, time.Time{}
			}
		}
		return start, end
	}

	if m := dateRangeFullPattern.FindStringSubmatch(text); m != nil {
		start = makeDate(atoi(m[1]), atoi(m[2]), atoi(m[3]))
		end = makeDate(atoi(m[4]), atoi(m[5]), atoi(m[6]))
		if start.IsZero() || end.IsZero() {
			return time.Time{}, time.Time{}
		}
		return start, end
	}

	if m := singleDatePattern.FindStringSubmatch(text); m != nil {
		single := makeDate(atoi(m[1]), atoi(m[2]), atoi(m[3]))
		if single.IsZero() {
			return time.Time{}, time.Time{}
		}
		return single, single
	}

	return time.Time{}, time.Time{}
}

// parseSingleDate parses a lone "YYYY.MM.DD" date.
func parseSingleDate(text string) time.Time {
	text = strings.TrimSpace(text)
	if text == "" || text == "-" {
		return time.Time{}
	}

	if m := singleDatePattern.FindStringSubmatch(text); m != nil {
		return makeDate(atoi(m[1]), atoi(m[2]), atoi(m[3]))
	}
	return time.Time{}
}

// parsePrice extracts the digit sequence from a price cell ("10,000원" ->
// 10000). Returns 0 when the cell carries no digits.
func parsePrice(text string) int {
	text = strings.TrimSpace(text)
	if text == "" || text == "-" {
		return 0
	}

	digits := nonDigitPattern.ReplaceAllString(text, "")
	if digits == "" {
		return 0
	}

	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0
	}
	return n
}

// parsePriceRange parses "9,000~11,000" into (low, high). A single value
// yields the same number for both ends.
func parsePriceRange(text string) (low, high int) {
	text = strings.TrimSpace(text)
	if text == "" || text == "-" {
		return 0, 0
	}

	parts := strings.Split(normalizeRangeSeparators(text), "~")
	switch len(parts) {
	case 1:
		p := parsePrice(parts[0])
		return p, p
	case 2:
		return parsePrice(parts[0]), parsePrice(parts[1])
	}
	return 0, 0
}

// parseCompetition parses a "967.60:1" ratio cell into its float value.
// Returns 0 when no ratio is present.
func parseCompetition(text string) float64 {
	text = strings.TrimSpace(text)
	if text == "" || text == "-" {
		return 0
	}

	m := competitionPattern.FindStringSubmatch(text)
	if m == nil {
		return 0
	}

	v, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", ""), 64)
	if err != nil {
		return 0
	}
	return v
}

// underwriterSeparators split a multi-underwriter cell; the first entry is
// the lead underwriter.
var underwriterSeparators = []string{",", "/", "·", "|"}

// cleanUnderwriter normalizes an underwriter cell, keeping only the lead
// (first-listed) underwriter.
func cleanUnderwriter(text string) string {
	text = strings.TrimSpace(text)
	if text == "" || text == "-" {
		return ""
	}

	text = strings.TrimSpace(whitespacePattern.ReplaceAllString(text, " "))
	for _, sep := range underwriterSeparators {
		if strings.Contains(text, sep) {
			text = strings.TrimSpace(strings.Split(text, sep)[0])
			break
		}
	}
	return text
}

// headerLabels are column-header cells that otherwise look like company
// names.
var headerLabels = map[string]bool{
	"종목명": true,
	"기업명": true,
	"회사명": true,
}

// cleanCompanyName canonicalizes a company-name string: header labels are
// rejected, parenthetical market tags such as "(코넥스)" are stripped, and
// internal whitespace is collapsed. Returns "" when nothing usable remains.
func cleanCompanyName(text string) string {
	text = strings.TrimSpace(text)
	if text == "" || headerLabels[text] {
		return ""
	}

	text = parenTagPattern.ReplaceAllString(text, "")
	text = strings.TrimSpace(whitespacePattern.ReplaceAllString(text, " "))
	return text
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
