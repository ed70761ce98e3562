package ipo

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestUniqueID(t *testing.T) {
	s := &Schedule{
		CompanyName:       "테스트기업",
		SubscriptionStart: date(2025, 1, 15),
		SubscriptionEnd:   date(2025, 1, 16),
	}

	id1 := s.UniqueID()
	id2 := s.UniqueID()

	if id1 == "" {
		t.Fatal("UniqueID should not be empty")
	}
	if len(id1) != 16 {
		t.Errorf("expected ID length of 16, got %d", len(id1))
	}
	if id1 != id2 {
		t.Errorf("UniqueID should be deterministic, got %s vs %s", id1, id2)
	}

	other := &Schedule{
		CompanyName:       "테스트기업",
		SubscriptionStart: date(2025, 2, 15),
	}
	if other.UniqueID() == id1 {
		t.Error("different subscription dates should yield different IDs")
	}
}

func TestOfferPriceRange(t *testing.T) {
	tests := []struct {
		name     string
		schedule Schedule
		expected string
	}{
		{
			name:     "final price confirmed",
			schedule: Schedule{CompanyName: "테스트", FinalOfferPrice: 10000},
			expected: "10,000원",
		},
		{
			name:     "price range only",
			schedule: Schedule{CompanyName: "테스트", OfferPriceMin: 9000, OfferPriceMax: 11000},
			expected: "9,000~11,000원",
		},
		{
			name:     "final price wins over range",
			schedule: Schedule{CompanyName: "테스트", FinalOfferPrice: 10000, OfferPriceMin: 9000, OfferPriceMax: 11000},
			expected: "10,000원",
		},
		{
			name:     "no price information",
			schedule: Schedule{CompanyName: "테스트"},
			expected: "미정",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.schedule.OfferPriceRange(); got != tt.expected {
				t.Errorf("OfferPriceRange() = %q, expected %q", got, tt.expected)
			}
		})
	}
}

func TestSubscriptionPeriod(t *testing.T) {
	s := &Schedule{
		CompanyName:       "테스트",
		SubscriptionStart: date(2025, 1, 15),
		SubscriptionEnd:   date(2025, 1, 16),
	}
	if got := s.SubscriptionPeriod(); got != "01/15~01/16" {
		t.Errorf("SubscriptionPeriod() = %q, expected %q", got, "01/15~01/16")
	}

	startOnly := &Schedule{CompanyName: "테스트", SubscriptionStart: date(2025, 1, 15)}
	if got := startOnly.SubscriptionPeriod(); got != "01/15" {
		t.Errorf("SubscriptionPeriod() = %q, expected %q", got, "01/15")
	}

	empty := &Schedule{CompanyName: "테스트"}
	if got := empty.SubscriptionPeriod(); got != "미정" {
		t.Errorf("SubscriptionPeriod() = %q, expected %q", got, "미정")
	}
}

func TestFormatWon(t *testing.T) {
	tests := []struct {
		in       int
		expected string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{10000, "10,000"},
		{1234567, "1,234,567"},
	}

	for _, tt := range tests {
		if got := formatWon(tt.in); got != tt.expected {
			t.Errorf("formatWon(%d) = %q, expected %q", tt.in, got, tt.expected)
		}
	}
}

func TestNewSchedule(t *testing.T) {
	s := NewSchedule("테스트기업", "38커뮤니케이션")

	if s.CompanyName != "테스트기업" {
		t.Errorf("unexpected company name: %s", s.CompanyName)
	}
	if s.Source != "38커뮤니케이션" {
		t.Errorf("unexpected source: %s", s.Source)
	}
	if s.DepositRate != DefaultDepositRate {
		t.Errorf("expected default deposit rate %d, got %d", DefaultDepositRate, s.DepositRate)
	}
	if s.CollectedAt.IsZero() {
		t.Error("expected CollectedAt to be set")
	}
}
