package daytime

import (
	"fmt"
	"time"
)

// DayFormat is the wire format for a calendar day ("YYYY-MM-DD").
const DayFormat = "2006-01-02"

// Merger combines a calendar day with a wall-clock time into one
// absolute timestamp in a fixed location.
type Merger struct {
	location *time.Location
}

// NewMerger creates a Merger for the given IANA timezone string,
// e.g. "Europe/London". "Local" uses the device timezone.
func NewMerger(timezone string) (*Merger, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Merger{location: loc}, nil
}

// Merge returns day's date components combined with clock's
// hour/minute/second. day's time portion and clock's date portion are
// ignored. Pure and deterministic for given inputs.
func (m *Merger) Merge(day, clock time.Time) time.Time {
	day = day.In(m.location)
	clock = clock.In(m.location)
	return time.Date(
		day.Year(), day.Month(), day.Day(),
		clock.Hour(), clock.Minute(), clock.Second(), 0,
		m.location,
	)
}

// ParseDay parses a "YYYY-MM-DD" string into midnight of that day.
func (m *Merger) ParseDay(s string) (time.Time, error) {
	day, err := time.ParseInLocation(DayFormat, s, m.location)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid calendar day %q: %w", s, err)
	}
	return day, nil
}

// DayWindow returns the half-open interval [start, end) covering the
// calendar day that contains t. Day filtering tests timestamps against
// this window.
func (m *Merger) DayWindow(t time.Time) (time.Time, time.Time) {
	t = t.In(m.location)
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, m.location)
	return start, start.AddDate(0, 0, 1)
}
