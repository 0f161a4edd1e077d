package domain

import (
	"fmt"
	"time"
)

// TimeLayout is the wire format for booking instants. Instants without a zone are UTC.
const TimeLayout = "2006-01-02T15:04:05"

// ParseInstant accepts TimeLayout or RFC 3339.
func ParseInstant(s string) (time.Time, error) {
	if t, err := time.ParseInLocation(TimeLayout, s, time.UTC); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

// ParseInterval parses a booking interval and requires start < end.
func ParseInterval(start, end string) (time.Time, time.Time, error) {
	st, err := ParseInstant(start)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: malformed interval", ErrInvalidRequest)
	}
	et, err := ParseInstant(end)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: malformed interval", ErrInvalidRequest)
	}
	if !st.Before(et) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: malformed interval", ErrInvalidRequest)
	}
	return st, et, nil
}

func FormatInstant(t time.Time) string {
	return t.UTC().Format(TimeLayout)
}
