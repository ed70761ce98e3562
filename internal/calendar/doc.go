// Package calendar synchronizes derived IPO events into a Google Calendar
// and renders the collected schedules as an iCalendar feed.
//
// Every event the bot creates carries private extended properties
// (ipo_event_id, company_name, event_type, source) so that sync,
// listing and cleanup only ever see the bot's own entries. The
// ipo_event_id property is the deterministic identity tag from the ipo
// package and drives find-or-create idempotency.
package calendar
