package gcalendar

import "time"

// DefaultCalendarID targets the authenticated account's own calendar.
const DefaultCalendarID = "primary"

// CreateEventRequest is the input for creating a calendar event.
type CreateEventRequest struct {
	CalendarID  string
	Summary     string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	Timezone    string // IANA name, e.g. "America/New_York"
	// PrivateKey is stored as an extended private property so later exports
	// can recognise events they created.
	PrivateKey string
}

// Event is a simplified representation of a calendar event.
type Event struct {
	ID          string
	Summary     string
	Description string
	HtmlLink    string
	StartTime   time.Time
	EndTime     time.Time
	PrivateKey  string
}

// ListEventsRequest is the input for listing calendar events.
type ListEventsRequest struct {
	CalendarID string
	TimeMin    time.Time
	TimeMax    time.Time
	MaxResults int64
}
