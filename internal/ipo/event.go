package ipo

import (
	"crypto/md5"
	"fmt"
	"strings"
	"time"
)

// EventSource tags every event this bot creates, so that sync and cleanup
// only ever touch our own calendar entries.
const EventSource = "gong-mo-bot"

// Event is one calendar-event payload derived from a Schedule milestone.
// Start and End carry all-day semantics: End is exclusive, i.e. one day
// after the last day of the event.
type Event struct {
	ID          string     `json:"id"`
	CompanyName string     `json:"company_name"`
	Milestone   Milestone  `json:"milestone"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Start       time.Time  `json:"start"`
	End         time.Time  `json:"end"`
	ColorID     string     `json:"color_id"`
	Reminders   []Reminder `json:"reminders"`
}

// GenerateEventID creates the deterministic 16-hex-character identity tag
// for one milestone of one company. It is the idempotency key the calendar
// sync uses to find-or-create.
func GenerateEventID(companyName string, m Milestone, start time.Time) string {
	raw := fmt.Sprintf("%s_%s_%s", companyName, m, start.Format("2006-01-02"))
	return fmt.Sprintf("%x", md5.Sum([]byte(raw)))[:16]
}

// Derive expands a Schedule into its calendar events, one per populated
// milestone. It is a pure function: deriving twice from the same Schedule
// yields identical events.
func Derive(s *Schedule) []Event {
	var events []Event

	if !s.DemandForecastStart.IsZero() {
		events = append(events, newEvent(s, MilestoneDemandForecast, s.DemandForecastStart, s.DemandForecastEnd))
	}
	if !s.SubscriptionStart.IsZero() {
		events = append(events, newEvent(s, MilestoneSubscription, s.SubscriptionStart, s.SubscriptionEnd))
	}
	if !s.RefundDate.IsZero() {
		events = append(events, newEvent(s, MilestoneRefund, s.RefundDate, time.Time{}))
	}
	if !s.ListingDate.IsZero() {
		events = append(events, newEvent(s, MilestoneListing, s.ListingDate, time.Time{}))
	}
	if !s.LockupExpiryDate.IsZero() {
		events = append(events, newEvent(s, MilestoneLockupExpiry, s.LockupExpiryDate, time.Time{}))
	}

	return events
}

func newEvent(s *Schedule, m Milestone, start, end time.Time) Event {
	title := fmt.Sprintf("[%s] %s", m.KoreanName(), s.CompanyName)
	if m == MilestoneSubscription && !end.IsZero() {
		title = fmt.Sprintf("[%s] %s (%s-%s)",
			m.KoreanName(), s.CompanyName, start.Format("01/02"), end.Format("01/02"))
	}

	actualEnd := end
	if actualEnd.IsZero() {
		actualEnd = start
	}

	return Event{
		ID:          GenerateEventID(s.CompanyName, m, start),
		CompanyName: s.CompanyName,
		Milestone:   m,
		Title:       title,
		Description: buildDescription(s, m),
		Start:       start,
		End:         actualEnd.AddDate(0, 0, 1),
		ColorID:     m.ColorID(),
		Reminders:   m.Reminders(),
	}
}

// buildDescription renders the multi-section plain-text event body.
func buildDescription(s *Schedule, m Milestone) string {
	lines := []string{
		fmt.Sprintf("[%s] %s", m.KoreanName(), s.CompanyName),
		"",
		"=== 공모 정보 ===",
		"공모가: " + s.OfferPriceRange(),
	}

	if s.TotalShares > 0 {
		lines = append(lines, fmt.Sprintf("공모주식수: %s주", formatWon(s.TotalShares)))
	}
	if s.TotalAmount > 0 {
		lines = append(lines, fmt.Sprintf("공모금액: %s억원", formatWon(s.TotalAmount)))
	}

	lines = append(lines, "", "=== 주요 일정 ===")

	if !s.DemandForecastStart.IsZero() {
		lines = append(lines, "수요예측: "+dateSpan(s.DemandForecastStart, s.DemandForecastEnd))
	}
	if !s.SubscriptionStart.IsZero() {
		lines = append(lines, "청약: "+dateSpan(s.SubscriptionStart, s.SubscriptionEnd))
	}
	if !s.RefundDate.IsZero() {
		lines = append(lines, "환불: "+isoDate(s.RefundDate))
	}
	if !s.ListingDate.IsZero() {
		lines = append(lines, "상장: "+isoDate(s.ListingDate))
	}

	if s.LeadUnderwriter != "" {
		lines = append(lines, "", "=== 주관사 ===", "대표주관: "+s.LeadUnderwriter)
		if len(s.Underwriters) > 0 {
			lines = append(lines, "공동주관: "+strings.Join(s.Underwriters, ", "))
		}
	}

	if s.DetailURL != "" {
		lines = append(lines, "", "상세정보: "+s.DetailURL)
	}

	lines = append(lines, "", "---", "자동 생성: 공모주 캘린더 봇")

	return strings.Join(lines, "\n")
}

func dateSpan(start, end time.Time) string {
	if end.IsZero() {
		return isoDate(start)
	}
	return isoDate(start) + "~" + isoDate(end)
}
