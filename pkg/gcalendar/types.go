package gcalendar

import "time"

// ReminderEventRequest is the input for creating a reminder event.
type ReminderEventRequest struct {
	CalendarID  string
	Title       string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	Timezone    string // IANA name, e.g. "Europe/London"
}

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID        string
	Title     string
	HTMLLink  string
	StartTime time.Time
	EndTime   time.Time
}
