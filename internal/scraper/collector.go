package scraper

import (
	"fmt"
	"time"

	"github.com/jiundev/gongmo/internal/config"
	"github.com/jiundev/gongmo/internal/ipo"
	"github.com/jiundev/gongmo/internal/logger"
)

// Collector orchestrates the fetch → parse → filter → merge pipeline over
// the subscription-schedule and listing-schedule pages. A Collector holds
// no state across runs; each Collect call produces a fresh record list.
type Collector struct {
	fetcher       *Fetcher
	baseURL       string
	delay         time.Duration
	noiseKeywords []string
}

// NewCollector creates a Collector from the application configuration.
func NewCollector(cfg *config.Config) *Collector {
	return &Collector{
		fetcher:       NewFetcher(cfg.RequestTimeout(), cfg.MaxRetries),
		baseURL:       cfg.BaseURL,
		delay:         cfg.RequestDelay(),
		noiseKeywords: cfg.NoiseKeywords,
	}
}

func (c *Collector) subscriptionURL() string {
	return c.baseURL + "/html/fund/index.htm?o=k"
}

func (c *Collector) listingURL() string {
	return c.baseURL + "/html/fund/index.htm?o=nw"
}

// Collect fetches both source pages and returns the merged, filtered record
// list. Page-level fetch or parse failures abort the whole run; only
// row-level failures are absorbed.
func (c *Collector) Collect() ([]*ipo.Schedule, error) {
	logger.Info("collecting subscription schedules", logger.Fields{"url": c.subscriptionURL()})

	html, err := c.fetcher.Fetch(c.subscriptionURL())
	if err != nil {
		return nil, fmt.Errorf("fetching subscription page: %w", err)
	}

	records, err := parseScheduleList(html, VariantSubscription, c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing subscription page: %w", err)
	}
	records = filterValid(records, c.noiseKeywords)

	// Politeness pause before hitting the same host again.
	time.Sleep(c.delay)

	logger.Info("collecting listing schedules", logger.Fields{"url": c.listingURL()})

	listingHTML, err := c.fetcher.Fetch(c.listingURL())
	if err != nil {
		return nil, fmt.Errorf("fetching listing page: %w", err)
	}

	listings, err := parseScheduleList(listingHTML, VariantListing, c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing listing page: %w", err)
	}

	records = mergeListings(records, listings)
	records = filterValid(records, c.noiseKeywords)

	logger.Info("collection complete", logger.Fields{"count": len(records)})

	return records, nil
}

// mergeListings folds listing-page records into the subscription-page
// records. A listing record for an already-seen company only backfills that
// record's listing date (overwriting any prior value); an unseen company is
// appended as a new, subscription-less record.
func mergeListings(records, listings []*ipo.Schedule) []*ipo.Schedule {
	byName := make(map[string]*ipo.Schedule, len(records))
	for _, s := range records {
		byName[s.CompanyName] = s
	}

	for _, l := range listings {
		if existing, ok := byName[l.CompanyName]; ok {
			if !l.ListingDate.IsZero() {
				existing.ListingDate = l.ListingDate
			}
			continue
		}
		records = append(records, l)
	}

	return records
}
