package services

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/srgjo27/shareit/internal/core/domain"
)

// FetchForUser returns the booking if userID is its renter or the item owner.
// Only the booking record is cached; user and item summaries are read fresh.
func (s *BookingService) FetchForUser(ctx context.Context, bookingID, userID int64) (*domain.BookingView, error) {
	ctx, span := tracer.Start(ctx, "BookingService.FetchForUser", trace.WithAttributes(
		attribute.Int64("booking.id", bookingID),
		attribute.Int64("user.id", userID),
	))
	defer span.End()

	booking, hit := s.cache.Get(ctx, bookingID)
	span.SetAttributes(attribute.Bool("cache.hit", hit))
	if !hit {
		var err error
		booking, err = s.bookingRepo.GetByID(ctx, bookingID)
		if err != nil {
			return nil, fmt.Errorf("get booking: %w", err)
		}
		s.cache.Add(ctx, booking)
	}

	viewer, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}

	if !booking.CanView(userID) {
		return nil, fmt.Errorf("%w: booking visible only to renter or owner", domain.ErrInvalidState)
	}

	a := s.newAssembler()
	a.users[viewer.ID] = viewer

	return a.view(ctx, booking)
}
