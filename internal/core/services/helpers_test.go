package services_test

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/srgjo27/shareit/internal/core/domain"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

var fixedNow = time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func testRenter() *domain.User {
	return &domain.User{ID: 1, Name: "renter", Email: "renter@example.com"}
}

func testOwner() *domain.User {
	return &domain.User{ID: 2, Name: "owner", Email: "owner@example.com"}
}

func testItem(available bool) *domain.Item {
	return &domain.Item{ID: 10, OwnerID: 2, Name: "Drill", Description: "Cordless drill", Available: available}
}

func testBooking(status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:       100,
		ItemID:   10,
		RenterID: 1,
		OwnerID:  2,
		Start:    fixedNow.Add(24 * time.Hour),
		End:      fixedNow.Add(48 * time.Hour),
		Status:   status,
	}
}

type stubBookings struct {
	dates  domain.BookingDates
	booked bool
	rented bool
}

func (s stubBookings) BookingDatesFor(context.Context, int64) (domain.BookingDates, error) {
	return s.dates, nil
}

func (s stubBookings) HasBookings(context.Context, int64) (bool, error) { return s.booked, nil }

func (s stubBookings) HasRenterBookings(context.Context, int64) (bool, error) { return s.rented, nil }
