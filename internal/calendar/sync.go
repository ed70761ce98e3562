package calendar

import (
	"github.com/jiundev/gongmo/internal/ipo"
	"github.com/jiundev/gongmo/internal/logger"
)

// SyncAction is the outcome of processing one event.
type SyncAction string

const (
	ActionCreate SyncAction = "create"
	ActionUpdate SyncAction = "update"
	ActionSkip   SyncAction = "skip"
	ActionDelete SyncAction = "delete"
	ActionError  SyncAction = "error"
)

// SyncResult records what happened to one event during sync or cleanup.
type SyncResult struct {
	Action     SyncAction
	EventTitle string
	EventID    string
	Link       string
	Err        error
}

// Success reports whether the result is a non-error outcome.
func (r SyncResult) Success() bool {
	return r.Action != ActionError
}

// SyncSchedule derives calendar events from one Schedule and finds,
// creates or updates each in the target calendar. Per-event failures are
// recorded as error results; they never abort the remaining events.
func (c *Client) SyncSchedule(s *ipo.Schedule) []SyncResult {
	events := ipo.Derive(s)
	results := make([]SyncResult, 0, len(events))

	for _, ev := range events {
		results = append(results, c.syncEvent(ev))
	}

	return results
}

func (c *Client) syncEvent(ev ipo.Event) SyncResult {
	body := toAPIEvent(ev)

	existing, err := c.findByEventTag(ev.ID)
	if err != nil {
		logger.Error("event lookup failed", logger.Fields{"title": ev.Title}, err)
		return SyncResult{Action: ActionError, EventTitle: ev.Title, Err: err}
	}

	if existing == nil {
		created, err := c.insertEvent(body)
		if err != nil {
			logger.Error("event create failed", logger.Fields{"title": ev.Title}, err)
			return SyncResult{Action: ActionError, EventTitle: ev.Title, Err: err}
		}
		logger.Info("event created", logger.Fields{"title": ev.Title})
		return SyncResult{Action: ActionCreate, EventTitle: ev.Title, EventID: created.ID, Link: created.HTMLLink}
	}

	if shouldUpdate(existing, body) {
		updated, err := c.updateEvent(existing.ID, body)
		if err != nil {
			logger.Error("event update failed", logger.Fields{"title": ev.Title}, err)
			return SyncResult{Action: ActionError, EventTitle: ev.Title, Err: err}
		}
		logger.Info("event updated", logger.Fields{"title": ev.Title})
		return SyncResult{Action: ActionUpdate, EventTitle: ev.Title, EventID: updated.ID, Link: updated.HTMLLink}
	}

	logger.Debug("event unchanged", logger.Fields{"title": ev.Title})
	return SyncResult{Action: ActionSkip, EventTitle: ev.Title, EventID: existing.ID, Link: existing.HTMLLink}
}

// shouldUpdate compares the fields that matter for display: title, start,
// end, and description length (descriptions are large; length change is a
// sufficient dirtiness signal).
func shouldUpdate(existing, next *apiEvent) bool {
	if existing.Summary != next.Summary {
		return true
	}
	if dateOf(existing.Start) != dateOf(next.Start) {
		return true
	}
	if dateOf(existing.End) != dateOf(next.End) {
		return true
	}
	if len(existing.Description) != len(next.Description) {
		return true
	}
	return false
}

func dateOf(d *apiDate) string {
	if d == nil {
		return ""
	}
	return d.Date
}

// CleanupAll deletes every event the bot has created in the calendar,
// paging through the full result set.
func (c *Client) CleanupAll() []SyncResult {
	return c.cleanupByProperty(propSource + "=" + ipo.EventSource)
}

// CleanupCompany deletes all bot events for one company.
func (c *Client) CleanupCompany(companyName string) []SyncResult {
	return c.cleanupByProperty(propCompany + "=" + companyName)
}

func (c *Client) cleanupByProperty(property string) []SyncResult {
	var results []SyncResult
	var targets []apiEvent

	pageToken := ""
	for {
		list, err := c.listEvents(&listParams{
			PrivateExtendedProperty: property,
			SingleEvents:            true,
			MaxResults:              250,
			PageToken:               pageToken,
		})
		if err != nil {
			logger.Error("event search failed", logger.Fields{"property": property}, err)
			return append(results, SyncResult{Action: ActionError, Err: err})
		}

		targets = append(targets, list.Items...)
		pageToken = list.NextPageToken
		if pageToken == "" {
			break
		}
	}

	logger.Info("deleting events", logger.Fields{"count": len(targets)})

	for _, ev := range targets {
		if err := c.deleteEvent(ev.ID); err != nil {
			logger.Error("event delete failed", logger.Fields{"title": ev.Summary}, err)
			results = append(results, SyncResult{Action: ActionError, EventTitle: ev.Summary, EventID: ev.ID, Err: err})
			continue
		}
		logger.Info("event deleted", logger.Fields{"title": ev.Summary})
		results = append(results, SyncResult{Action: ActionDelete, EventTitle: ev.Summary, EventID: ev.ID})
	}

	return results
}
