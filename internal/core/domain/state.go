package domain

import (
	"fmt"
	"strings"
	"time"
)

// BookingState selects which of a user's bookings a listing returns.
type BookingState string

const (
	StateAll      BookingState = "ALL"
	StateCurrent  BookingState = "CURRENT"
	StatePast     BookingState = "PAST"
	StateFuture   BookingState = "FUTURE"
	StateWaiting  BookingState = "WAITING"
	StateApproved BookingState = "APPROVED"
	StateRejected BookingState = "REJECTED"
)

var knownStates = map[BookingState]bool{
	StateAll:      true,
	StateCurrent:  true,
	StatePast:     true,
	StateFuture:   true,
	StateWaiting:  true,
	StateApproved: true,
	StateRejected: true,
}

// ParseBookingState is case-insensitive; an empty string means ALL.
func ParseBookingState(s string) (BookingState, error) {
	if strings.TrimSpace(s) == "" {
		return StateAll, nil
	}
	st := BookingState(strings.ToUpper(strings.TrimSpace(s)))
	if !knownStates[st] {
		return "", fmt.Errorf("%w: unknown state: %s", ErrInvalidRequest, s)
	}
	return st, nil
}

// Status returns the booking status the state restricts to, if any.
func (s BookingState) Status() (BookingStatus, bool) {
	switch s {
	case StateWaiting:
		return BookingWaiting, true
	case StateApproved:
		return BookingApproved, true
	case StateRejected:
		return BookingRejected, true
	}
	return "", false
}

// Match applies the temporal part of the filter. Status states and ALL match everything.
func (s BookingState) Match(b *Booking, now time.Time) bool {
	switch s {
	case StateCurrent:
		return b.IsCurrent(now)
	case StatePast:
		return b.IsPast(now)
	case StateFuture:
		return b.IsFuture(now)
	}
	return true
}
