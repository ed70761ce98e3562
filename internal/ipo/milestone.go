package ipo

// Milestone identifies one kind of IPO calendar event.
type Milestone string

const (
	MilestoneDemandForecast Milestone = "demand_forecast" // 수요예측
	MilestoneSubscription   Milestone = "subscription"    // 청약
	MilestoneRefund         Milestone = "refund"          // 환불
	MilestoneListing        Milestone = "listing"         // 상장
	MilestoneLockupExpiry   Milestone = "lockup_expiry"   // 락업해제
)

// Reminder is a single notification offset before an event.
type Reminder struct {
	Method  string `json:"method"`
	Minutes int    `json:"minutes"`
}

// milestoneInfo bundles the per-milestone presentation and reminder policy.
type milestoneInfo struct {
	koreanName string
	colorID    string
	reminders  []Reminder
}

// milestoneTable is the closed mapping from milestone to its Korean label,
// calendar color tag, and reminder offsets. Reminder sets replace any
// platform default reminders.
var milestoneTable = map[Milestone]milestoneInfo{
	MilestoneDemandForecast: {
		koreanName: "수요예측",
		colorID:    "1", // 라벤더
		reminders: []Reminder{
			{Method: "popup", Minutes: 60 * 24},
		},
	},
	MilestoneSubscription: {
		koreanName: "청약",
		colorID:    "11", // 토마토
		reminders: []Reminder{
			{Method: "popup", Minutes: 60 * 24 * 2},
			{Method: "popup", Minutes: 60 * 24},
			{Method: "popup", Minutes: 60 * 9},
		},
	},
	MilestoneRefund: {
		koreanName: "환불",
		colorID:    "5", // 바나나
		reminders: []Reminder{
			{Method: "popup", Minutes: 60 * 9},
		},
	},
	MilestoneListing: {
		koreanName: "상장",
		colorID:    "10", // 바질
		reminders: []Reminder{
			{Method: "popup", Minutes: 60 * 24},
			{Method: "popup", Minutes: 60 * 9},
		},
	},
	MilestoneLockupExpiry: {
		koreanName: "락업해제",
		colorID:    "6", // 탠저린
		reminders: []Reminder{
			{Method: "popup", Minutes: 60 * 24 * 7},
			{Method: "popup", Minutes: 60 * 24},
		},
	},
}

// KoreanName returns the Korean display label for the milestone.
func (m Milestone) KoreanName() string {
	return milestoneTable[m].koreanName
}

// ColorID returns the calendar color tag for the milestone.
func (m Milestone) ColorID() string {
	return milestoneTable[m].colorID
}

// Reminders returns the reminder offsets for the milestone. The returned
// slice is a copy.
func (m Milestone) Reminders() []Reminder {
	src := milestoneTable[m].reminders
	out := make([]Reminder, len(src))
	copy(out, src)
	return out
}
