// Package timeutil provides the timestamp and duration formats used in status comments
// and in the hand-off start-time file.
package timeutil

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	// StampLayout is the layout written to the hand-off file: ISO-8601 with an
	// explicit +00:00 offset and six fractional digits.
	StampLayout = "2006-01-02T15:04:05.000000-07:00"

	// stampLayoutWhole is used when the time has no sub-second part.
	stampLayoutWhole = "2006-01-02T15:04:05-07:00"

	// DisplayLayout is the layout shown in comment bodies.
	DisplayLayout = "2006-01-02 15:04 UTC"

	naiveLayout = "2006-01-02T15:04:05"
)

// ErrInvalidTimestamp is returned when a value is not an ISO-8601 timestamp.
var ErrInvalidTimestamp = errors.New("invalid ISO-8601 timestamp")

// FormatStamp renders t in UTC using [StampLayout], or without the fraction
// when t falls on a whole second. Both forms are read by Python's
// datetime.fromisoformat on every version.
func FormatStamp(t time.Time) string {
	t = t.UTC()
	if t.Nanosecond() < int(time.Microsecond) {
		return t.Format(stampLayoutWhole)
	}
	return t.Format(StampLayout)
}

// FormatDisplay renders t in UTC for a comment body, e.g. "2024-01-01 00:05 UTC".
func FormatDisplay(t time.Time) string {
	return t.UTC().Format(DisplayLayout)
}

// ParseStamp parses an ISO-8601 timestamp and returns it in UTC.
//
// Accepted forms:
//   - 2024-01-01T00:00:00+00:00
//   - 2024-01-01T00:00:00.123456+00:00
//   - 2024-01-01T00:00:00Z
//   - 2024-01-01T00:00:00 (no offset, read as UTC)
func ParseStamp(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("%w: empty value", ErrInvalidTimestamp)
	}

	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.ParseInLocation(naiveLayout, value, time.UTC); err == nil {
		return t, nil
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTimestamp, value)
}

// ElapsedMinutes returns the whole minutes between start and end, rounded down.
// A negative interval (clock skew between hosts) yields 0.
func ElapsedMinutes(start, end time.Time) int {
	d := end.Sub(start)
	if d < 0 {
		return 0
	}
	return int(d / time.Minute)
}

// FormatDuration formats a duration into a human-readable string.
// It rounds to the nearest second and displays in "Xm Ys" or "Ys" format.
func FormatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	minutes := d / time.Minute
	seconds := (d % time.Minute) / time.Second

	if minutes > 0 {
		return fmt.Sprintf("%dm %ds", minutes, seconds)
	}
	return fmt.Sprintf("%ds", seconds)
}
