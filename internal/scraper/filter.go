package scraper

import (
	"strings"

	"github.com/jiundev/gongmo/internal/ipo"
	"github.com/jiundev/gongmo/internal/logger"
)

// filterValid keeps only usable records: company names containing a noise
// keyword (promotional banners, navigation labels) are dropped, records
// without a subscription start date are dropped, and exact duplicates on
// company + subscription start are suppressed keeping the first occurrence.
func filterValid(records []*ipo.Schedule, noiseKeywords []string) []*ipo.Schedule {
	valid := make([]*ipo.Schedule, 0, len(records))
	seen := make(map[string]bool)

	for _, s := range records {
		if containsNoise(s.CompanyName, noiseKeywords) {
			logger.Debug("dropping noise record", logger.Fields{"company": s.CompanyName})
			continue
		}

		if s.SubscriptionStart.IsZero() {
			continue
		}

		key := s.UniqueID()
		if seen[key] {
			continue
		}
		seen[key] = true

		valid = append(valid, s)
	}

	return valid
}

func containsNoise(name string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(name, kw) {
			return true
		}
	}
	return false
}
