// Package publisher exports the collected schedules as static-site data
// (JSON and an iCalendar feed) and pushes the result to a git remote.
package publisher

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jiundev/gongmo/internal/calendar"
	"github.com/jiundev/gongmo/internal/ipo"
	"github.com/jiundev/gongmo/internal/logger"
)

// DataFileName is the JSON artifact consumed by the static site.
const DataFileName = "data.json"

// FeedFileName is the subscribable iCalendar artifact.
const FeedFileName = "gongmo.ics"

// SiteData is the top-level shape of data.json.
type SiteData struct {
	LastUpdated string     `json:"last_updated"`
	SiteURL     string     `json:"site_url,omitempty"`
	TotalCount  int        `json:"total_count"`
	Items       []SiteItem `json:"items"`
}

// SiteItem is one schedule as exposed to the static site. Dates are ISO
// strings; absent dates are null.
type SiteItem struct {
	CompanyName              string  `json:"company_name"`
	SubscriptionStart        *string `json:"subscription_start"`
	SubscriptionEnd          *string `json:"subscription_end"`
	ListingDate              *string `json:"listing_date"`
	OfferPriceRange          string  `json:"offer_price_range"`
	FinalOfferPrice          int     `json:"final_offer_price,omitempty"`
	OfferPriceMin            int     `json:"offer_price_min,omitempty"`
	OfferPriceMax            int     `json:"offer_price_max,omitempty"`
	LeadUnderwriter          string  `json:"lead_underwriter,omitempty"`
	InstitutionalCompetition float64 `json:"institutional_competition,omitempty"`
	Source                   string  `json:"source"`
	DetailURL                string  `json:"detail_url,omitempty"`
}

// Generator writes the static-site artifacts into an output directory.
type Generator struct {
	outputDir string
	siteURL   string
}

// NewGenerator creates a Generator, creating the output directory if
// needed.
func NewGenerator(outputDir, siteURL string) (*Generator, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}
	return &Generator{outputDir: outputDir, siteURL: siteURL}, nil
}

// Generate writes data.json and the ICS feed for the record list and
// returns the path of the JSON artifact.
func (g *Generator) Generate(records []*ipo.Schedule) (string, error) {
	data := SiteData{
		LastUpdated: time.Now().Format(time.RFC3339),
		SiteURL:     g.siteURL,
		TotalCount:  len(records),
		Items:       make([]SiteItem, 0, len(records)),
	}

	for _, rec := range records {
		data.Items = append(data.Items, toSiteItem(rec))
	}

	encoded, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding site data: %w", err)
	}

	dataPath := filepath.Join(g.outputDir, DataFileName)
	if err := os.WriteFile(dataPath, encoded, 0644); err != nil {
		return "", fmt.Errorf("writing site data: %w", err)
	}

	feedPath := filepath.Join(g.outputDir, FeedFileName)
	if err := os.WriteFile(feedPath, []byte(calendar.GenerateICS(records)), 0644); err != nil {
		return "", fmt.Errorf("writing feed: %w", err)
	}

	logger.Info("static data generated", logger.Fields{
		"path":  dataPath,
		"count": len(records),
	})

	return dataPath, nil
}

func toSiteItem(rec *ipo.Schedule) SiteItem {
	return SiteItem{
		CompanyName:              rec.CompanyName,
		SubscriptionStart:        isoDateOrNil(rec.SubscriptionStart),
		SubscriptionEnd:          isoDateOrNil(rec.SubscriptionEnd),
		ListingDate:              isoDateOrNil(rec.ListingDate),
		OfferPriceRange:          rec.OfferPriceRange(),
		FinalOfferPrice:          rec.FinalOfferPrice,
		OfferPriceMin:            rec.OfferPriceMin,
		OfferPriceMax:            rec.OfferPriceMax,
		LeadUnderwriter:          rec.LeadUnderwriter,
		InstitutionalCompetition: rec.InstitutionalCompetition,
		Source:                   rec.Source,
		DetailURL:                rec.DetailURL,
	}
}

func isoDateOrNil(t time.Time) *string {
	if t.IsZero() {
		return nil
	}
	s := t.Format("2006-01-02")
	return &s
}
