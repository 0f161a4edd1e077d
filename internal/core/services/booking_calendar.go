package services

import (
	"context"
	"fmt"

	"github.com/srgjo27/shareit/internal/core/domain"
)

// BookingDatesFor returns the end of the item's latest finished booking and
// the start of its next one, as of now. Rejected bookings do not count.
func (s *BookingService) BookingDatesFor(ctx context.Context, itemID int64) (domain.BookingDates, error) {
	dates, err := s.bookingRepo.DatesForItem(ctx, itemID, s.now().UTC())
	if err != nil {
		return domain.BookingDates{}, fmt.Errorf("booking dates of item %d: %w", itemID, err)
	}
	return dates, nil
}

func (s *BookingService) HasBookings(ctx context.Context, itemID int64) (bool, error) {
	ok, err := s.bookingRepo.ExistsForItem(ctx, itemID)
	if err != nil {
		return false, fmt.Errorf("check bookings of item %d: %w", itemID, err)
	}
	return ok, nil
}

func (s *BookingService) HasRenterBookings(ctx context.Context, userID int64) (bool, error) {
	bookings, err := s.bookingRepo.ListByRenter(ctx, userID)
	if err != nil {
		return false, fmt.Errorf("list bookings by renter: %w", err)
	}
	return len(bookings) > 0, nil
}
