package calendar

import (
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/dghubble/sling"

	"github.com/jiundev/gongmo/internal/ipo"
)

// Property keys attached to every bot-created event.
const (
	propEventID = "ipo_event_id"
	propCompany = "company_name"
	propType    = "event_type"
	propSource  = "source"
)

// Client is a thin REST client for the Google Calendar v3 events surface.
// Construct one per run and pass it down; there is no global service handle.
type Client struct {
	base       *sling.Sling
	calendarID string
}

// NewClient creates a calendar client against apiBase (production:
// https://www.googleapis.com/calendar/v3) using a bearer token.
func NewClient(apiBase, calendarID, token string) *Client {
	httpClient := &http.Client{Timeout: 30 * time.Second}
	base := sling.New().
		Client(httpClient).
		Base(apiBase+"/").
		Set("Authorization", "Bearer "+token).
		Set("User-Agent", "gongmo-bot/1.0 (github.com/jiundev/gongmo)")

	return &Client{base: base, calendarID: calendarID}
}

// apiEvent mirrors the calendar API event resource, limited to the fields
// the bot reads or writes.
type apiEvent struct {
	ID                 string        `json:"id,omitempty"`
	Summary            string        `json:"summary,omitempty"`
	Description        string        `json:"description,omitempty"`
	Start              *apiDate      `json:"start,omitempty"`
	End                *apiDate      `json:"end,omitempty"`
	ColorID            string        `json:"colorId,omitempty"`
	Reminders          *apiReminders `json:"reminders,omitempty"`
	ExtendedProperties *apiExtProps  `json:"extendedProperties,omitempty"`
	HTMLLink           string        `json:"htmlLink,omitempty"`
}

// apiDate carries the all-day form of an event boundary.
type apiDate struct {
	Date string `json:"date,omitempty"`
}

type apiReminders struct {
	UseDefault bool          `json:"useDefault"`
	Overrides  []apiReminder `json:"overrides,omitempty"`
}

type apiReminder struct {
	Method  string `json:"method"`
	Minutes int    `json:"minutes"`
}

type apiExtProps struct {
	Private map[string]string `json:"private,omitempty"`
}

type apiEventList struct {
	Items         []apiEvent `json:"items"`
	NextPageToken string     `json:"nextPageToken,omitempty"`
}

type apiCalendar struct {
	ID      string `json:"id,omitempty"`
	Summary string `json:"summary,omitempty"`
}

type apiError struct {
	Err struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (e *apiError) Error() string {
	return fmt.Sprintf("calendar API error %d: %s", e.Err.Code, e.Err.Message)
}

type listParams struct {
	PrivateExtendedProperty string `url:"privateExtendedProperty,omitempty"`
	SingleEvents            bool   `url:"singleEvents,omitempty"`
	MaxResults              int    `url:"maxResults,omitempty"`
	PageToken               string `url:"pageToken,omitempty"`
	TimeMin                 string `url:"timeMin,omitempty"`
	OrderBy                 string `url:"orderBy,omitempty"`
}

func (c *Client) eventsPath() string {
	return fmt.Sprintf("calendars/%s/events", url.PathEscape(c.calendarID))
}

// toAPIEvent converts a derived ipo.Event into the wire representation.
func toAPIEvent(ev ipo.Event) *apiEvent {
	reminders := &apiReminders{UseDefault: false}
	for _, r := range ev.Reminders {
		reminders.Overrides = append(reminders.Overrides, apiReminder(r))
	}

	return &apiEvent{
		Summary:     ev.Title,
		Description: ev.Description,
		Start:       &apiDate{Date: ev.Start.Format("2006-01-02")},
		End:         &apiDate{Date: ev.End.Format("2006-01-02")},
		ColorID:     ev.ColorID,
		Reminders:   reminders,
		ExtendedProperties: &apiExtProps{Private: map[string]string{
			propEventID: ev.ID,
			propCompany: ev.CompanyName,
			propType:    string(ev.Milestone),
			propSource:  ipo.EventSource,
		}},
	}
}

// listEvents runs one list call with the given params.
func (c *Client) listEvents(params *listParams) (*apiEventList, error) {
	out := new(apiEventList)
	apiErr := new(apiError)

	resp, err := c.base.New().Get(c.eventsPath()).QueryStruct(params).Receive(out, apiErr)
	if err != nil {
		return nil, fmt.Errorf("listing events: %w", err)
	}
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("listing events: %w", apiErr)
	}

	return out, nil
}

// findByEventTag returns the event carrying the identity tag, or nil.
func (c *Client) findByEventTag(tag string) (*apiEvent, error) {
	list, err := c.listEvents(&listParams{
		PrivateExtendedProperty: propEventID + "=" + tag,
		SingleEvents:            true,
		MaxResults:              1,
	})
	if err != nil {
		return nil, err
	}
	if len(list.Items) == 0 {
		return nil, nil
	}
	return &list.Items[0], nil
}

// insertEvent creates a new calendar event.
func (c *Client) insertEvent(ev *apiEvent) (*apiEvent, error) {
	out := new(apiEvent)
	apiErr := new(apiError)

	resp, err := c.base.New().Post(c.eventsPath()).BodyJSON(ev).Receive(out, apiErr)
	if err != nil {
		return nil, fmt.Errorf("inserting event: %w", err)
	}
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("inserting event: %w", apiErr)
	}

	return out, nil
}

// updateEvent replaces an existing calendar event.
func (c *Client) updateEvent(eventID string, ev *apiEvent) (*apiEvent, error) {
	out := new(apiEvent)
	apiErr := new(apiError)

	path := c.eventsPath() + "/" + url.PathEscape(eventID)
	resp, err := c.base.New().Put(path).BodyJSON(ev).Receive(out, apiErr)
	if err != nil {
		return nil, fmt.Errorf("updating event: %w", err)
	}
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("updating event: %w", apiErr)
	}

	return out, nil
}

// deleteEvent removes a calendar event by its API ID.
func (c *Client) deleteEvent(eventID string) error {
	apiErr := new(apiError)

	path := c.eventsPath() + "/" + url.PathEscape(eventID)
	resp, err := c.base.New().Delete(path).Receive(nil, apiErr)
	if err != nil {
		return fmt.Errorf("deleting event: %w", err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("deleting event: %w", apiErr)
	}

	return nil
}

// GetCalendarInfo fetches the target calendar's metadata, confirming both
// connectivity and authorization.
func (c *Client) GetCalendarInfo() (*CalendarInfo, error) {
	out := new(apiCalendar)
	apiErr := new(apiError)

	path := "calendars/" + url.PathEscape(c.calendarID)
	resp, err := c.base.New().Get(path).Receive(out, apiErr)
	if err != nil {
		return nil, fmt.Errorf("getting calendar info: %w", err)
	}
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("getting calendar info: %w", apiErr)
	}

	return &CalendarInfo{ID: out.ID, Summary: out.Summary}, nil
}

// CalendarInfo is the subset of calendar metadata the CLI reports.
type CalendarInfo struct {
	ID      string
	Summary string
}

// UpcomingEvent is one bot-created event returned by ListUpcoming.
type UpcomingEvent struct {
	Title string
	Start string
	Link  string
}

// ListUpcoming returns up to maxResults future bot events ordered by start
// time.
func (c *Client) ListUpcoming(maxResults int) ([]UpcomingEvent, error) {
	list, err := c.listEvents(&listParams{
		PrivateExtendedProperty: propSource + "=" + ipo.EventSource,
		SingleEvents:            true,
		MaxResults:              maxResults,
		TimeMin:                 time.Now().UTC().Format(time.RFC3339),
		OrderBy:                 "startTime",
	})
	if err != nil {
		return nil, err
	}

	events := make([]UpcomingEvent, 0, len(list.Items))
	for _, item := range list.Items {
		start := ""
		if item.Start != nil {
			start = item.Start.Date
		}
		events = append(events, UpcomingEvent{
			Title: item.Summary,
			Start: start,
			Link:  item.HTMLLink,
		})
	}

	return events, nil
}
