package services

import (
	"context"
	"log/slog"
)

// HasCompletedBookingFor reports whether userID rented itemID over an interval
// that has already ended. Lookup failures yield false.
func (s *BookingService) HasCompletedBookingFor(ctx context.Context, userID, itemID int64) bool {
	ok, err := s.bookingRepo.ExistsCompleted(ctx, userID, itemID, s.now().UTC())
	if err != nil {
		s.logger.WarnContext(ctx, "completed booking check failed",
			slog.Int64("user_id", userID),
			slog.Int64("item_id", itemID),
			slog.String("error", err.Error()),
		)
		return false
	}
	return ok
}
