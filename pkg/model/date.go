package model

import "time"

// DateFormat is the wire format for date-only query parameters.
const DateFormat = "2006-01-02"

// Day truncates t to midnight UTC. All dates handled by the booking
// engine are day-granular; every date crossing the service boundary is
// normalized through this function before any comparison.
func Day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Today returns the current date at day granularity.
func Today() time.Time {
	return Day(time.Now())
}

// ParseDate parses a date-only string ("2006-01-02") into a normalized day.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return time.Time{}, err
	}
	return Day(t), nil
}
