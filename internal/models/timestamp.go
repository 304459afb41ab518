package models

import "time"

const (
	// TimestampLayout is the wire format of every updatedAt/timestamp field
	// (millisecond precision, UTC, "Z" suffix).
	TimestampLayout = "2006-01-02T15:04:05.000Z07:00"
	// DateLayout is used for calendar dates such as scheduledDate and scadenza.
	DateLayout = "2006-01-02"
)

// FormatTimestamp renders t in the wire format.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// ParseTimestamp parses a wire timestamp. Missing or malformed values yield
// the zero time, which sorts before any real modification.
func ParseTimestamp(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// FormatDate renders the local calendar date of t.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
