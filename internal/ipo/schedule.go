package ipo

import (
	"crypto/md5"
	"fmt"
	"time"
)

// DefaultDepositRate is the subscription deposit rate (%) applied when the
// source does not state one.
const DefaultDepositRate = 50

// Schedule represents one company's IPO timeline for a single offering cycle.
// Date fields use the zero time.Time to mean "unknown". CompanyName is the
// only required field.
type Schedule struct {
	CompanyName string `json:"company_name"`

	// Subscription window (청약)
	SubscriptionStart time.Time `json:"subscription_start,omitempty"`
	SubscriptionEnd   time.Time `json:"subscription_end,omitempty"`

	// Other milestone dates
	DemandForecastStart time.Time `json:"demand_forecast_start,omitempty"`
	DemandForecastEnd   time.Time `json:"demand_forecast_end,omitempty"`
	RefundDate          time.Time `json:"refund_date,omitempty"`
	ListingDate         time.Time `json:"listing_date,omitempty"`
	LockupExpiryDate    time.Time `json:"lockup_expiry_date,omitempty"`

	// Offering terms
	OfferPriceMin   int `json:"offer_price_min,omitempty"`
	OfferPriceMax   int `json:"offer_price_max,omitempty"`
	FinalOfferPrice int `json:"final_offer_price,omitempty"`
	TotalShares     int `json:"total_shares,omitempty"`
	TotalAmount     int `json:"total_amount,omitempty"` // 억원

	// Underwriters
	LeadUnderwriter string   `json:"lead_underwriter,omitempty"`
	Underwriters    []string `json:"underwriters,omitempty"`

	// Subscription terms
	SubscriptionLimit int `json:"subscription_limit,omitempty"` // 주
	MinSubscription   int `json:"min_subscription,omitempty"`
	DepositRate       int `json:"deposit_rate,omitempty"` // %

	// Competition ratios, e.g. 967.60 for "967.60:1"
	InstitutionalCompetition float64 `json:"institutional_competition,omitempty"`
	RetailCompetition        float64 `json:"retail_competition,omitempty"`

	// Metadata
	StockCode   string    `json:"stock_code,omitempty"`
	DetailURL   string    `json:"detail_url,omitempty"`
	Source      string    `json:"source"`
	CollectedAt time.Time `json:"collected_at"`
}

// NewSchedule creates a Schedule with CollectedAt and the default deposit
// rate populated.
func NewSchedule(companyName, source string) *Schedule {
	return &Schedule{
		CompanyName: companyName,
		DepositRate: DefaultDepositRate,
		Source:      source,
		CollectedAt: time.Now(),
	}
}

// UniqueID returns a deterministic 16-hex-character key for duplicate
// suppression, derived from the company name and subscription start date.
func (s *Schedule) UniqueID() string {
	raw := fmt.Sprintf("%s_%s", s.CompanyName, isoDate(s.SubscriptionStart))
	return fmt.Sprintf("%x", md5.Sum([]byte(raw)))[:16]
}

// OfferPriceRange returns the offering price as display text: the final
// price if confirmed, otherwise the hoped-for range, otherwise "미정".
func (s *Schedule) OfferPriceRange() string {
	if s.FinalOfferPrice > 0 {
		return formatWon(s.FinalOfferPrice) + "원"
	}
	if s.OfferPriceMin > 0 && s.OfferPriceMax > 0 {
		return formatWon(s.OfferPriceMin) + "~" + formatWon(s.OfferPriceMax) + "원"
	}
	return "미정"
}

// SubscriptionPeriod returns the subscription window as "MM/DD~MM/DD",
// a single "MM/DD" when only the start is known, or "미정".
func (s *Schedule) SubscriptionPeriod() string {
	switch {
	case !s.SubscriptionStart.IsZero() && !s.SubscriptionEnd.IsZero():
		return s.SubscriptionStart.Format("01/02") + "~" + s.SubscriptionEnd.Format("01/02")
	case !s.SubscriptionStart.IsZero():
		return s.SubscriptionStart.Format("01/02")
	}
	return "미정"
}

func (s *Schedule) String() string {
	return fmt.Sprintf("IPO(%s, 청약: %s, 공모가: %s)", s.CompanyName, s.SubscriptionPeriod(), s.OfferPriceRange())
}

// formatWon renders an integer with thousands separators (10000 -> "10,000").
func formatWon(n int) string {
	if n < 0 {
		return "-" + formatWon(-n)
	}
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	var out []byte
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, c)
	}
	return string(out)
}

// isoDate formats a date as YYYY-MM-DD, or "" for the zero time.
func isoDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}
