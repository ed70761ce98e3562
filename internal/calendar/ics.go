package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/jiundev/gongmo/internal/ipo"
)

// GenerateICS renders the collected schedules as an iCalendar feed of
// all-day events, one VEVENT per derived milestone. The feed is published
// alongside the static site so users can subscribe without the bot's
// calendar.
func GenerateICS(records []*ipo.Schedule) string {
	var ics strings.Builder

	ics.WriteString("BEGIN:VCALENDAR\r\n")
	ics.WriteString("VERSION:2.0\r\n")
	ics.WriteString("PRODID:-//gongmo//gongmo-bot//KO\r\n")
	ics.WriteString("CALSCALE:GREGORIAN\r\n")
	ics.WriteString("METHOD:PUBLISH\r\n")
	ics.WriteString("X-WR-CALNAME:공모주 캘린더\r\n")

	stamp := formatICSTime(time.Now().UTC())

	for _, rec := range records {
		for _, ev := range ipo.Derive(rec) {
			ics.WriteString("BEGIN:VEVENT\r\n")
			ics.WriteString(fmt.Sprintf("UID:%s@gong-mo\r\n", ev.ID))
			ics.WriteString(fmt.Sprintf("DTSTAMP:%s\r\n", stamp))

			// All-day events: DTEND is already exclusive on the derived event.
			ics.WriteString(fmt.Sprintf("DTSTART;VALUE=DATE:%s\r\n", formatICSDate(ev.Start)))
			ics.WriteString(fmt.Sprintf("DTEND;VALUE=DATE:%s\r\n", formatICSDate(ev.End)))

			ics.WriteString(fmt.Sprintf("SUMMARY:%s\r\n", escapeICS(ev.Title)))
			ics.WriteString(fmt.Sprintf("DESCRIPTION:%s\r\n", escapeICS(ev.Description)))
			if rec.DetailURL != "" {
				ics.WriteString(fmt.Sprintf("URL:%s\r\n", rec.DetailURL))
			}
			ics.WriteString(fmt.Sprintf("CATEGORIES:%s\r\n", escapeICS(ev.Milestone.KoreanName())))
			ics.WriteString("STATUS:CONFIRMED\r\n")
			ics.WriteString("TRANSP:TRANSPARENT\r\n")
			ics.WriteString("END:VEVENT\r\n")
		}
	}

	ics.WriteString("END:VCALENDAR\r\n")

	return ics.String()
}

// formatICSDate formats a date-only value (all-day events).
func formatICSDate(t time.Time) string {
	return t.Format("20060102")
}

// formatICSTime formats a time.Time as an iCalendar datetime string
func formatICSTime(t time.Time) string {
	return t.UTC().Format("20060102T150405Z")
}

// escapeICS escapes special characters according to RFC 5545.
func escapeICS(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, ",", "\\,")
	s = strings.ReplaceAll(s, ";", "\\;")
	s = strings.ReplaceAll(s, "\n", "\\n")
	return s
}
