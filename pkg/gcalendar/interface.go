package gcalendar

import "context"

// Calendar is the subset of the Calendar API the assistant exports to.
type Calendar interface {
	CreateEvent(ctx context.Context, req CreateEventRequest) (*Event, error)
	ListEvents(ctx context.Context, req ListEventsRequest) ([]Event, error)
}

var _ Calendar = (*Client)(nil)
