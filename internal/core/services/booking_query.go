package services

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/srgjo27/shareit/internal/core/domain"
)

// ListForRenter returns the renter's bookings matching state.
func (s *BookingService) ListForRenter(ctx context.Context, renterID int64, state domain.BookingState) ([]domain.BookingView, error) {
	ctx, span := tracer.Start(ctx, "BookingService.ListForRenter", trace.WithAttributes(
		attribute.Int64("user.id", renterID),
		attribute.String("state", string(state)),
	))
	defer span.End()

	renter, err := s.userRepo.GetByID(ctx, renterID)
	if err != nil {
		return nil, fmt.Errorf("check renter: %w", err)
	}

	var bookings []domain.Booking
	if status, ok := state.Status(); ok {
		bookings, err = s.bookingRepo.ListByRenterAndStatus(ctx, renterID, status)
	} else {
		bookings, err = s.bookingRepo.ListByRenter(ctx, renterID)
	}
	if err != nil {
		return nil, fmt.Errorf("list bookings by renter: %w", err)
	}

	a := s.newAssembler()
	a.users[renter.ID] = renter

	return s.filterAndAssemble(ctx, a, bookings, state)
}

// ListForOwner returns bookings of items owned by ownerID matching state.
func (s *BookingService) ListForOwner(ctx context.Context, ownerID int64, state domain.BookingState) ([]domain.BookingView, error) {
	ctx, span := tracer.Start(ctx, "BookingService.ListForOwner", trace.WithAttributes(
		attribute.Int64("user.id", ownerID),
		attribute.String("state", string(state)),
	))
	defer span.End()

	exists, err := s.userRepo.Exists(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("check owner: %w", err)
	}
	if !exists {
		return nil, domain.ErrUserNotFound
	}

	var bookings []domain.Booking
	if status, ok := state.Status(); ok {
		bookings, err = s.bookingRepo.ListByOwnerAndStatus(ctx, ownerID, status)
	} else {
		bookings, err = s.bookingRepo.ListByOwner(ctx, ownerID)
	}
	if err != nil {
		return nil, fmt.Errorf("list bookings by owner: %w", err)
	}

	return s.filterAndAssemble(ctx, s.newAssembler(), bookings, state)
}

func (s *BookingService) filterAndAssemble(ctx context.Context, a *assembler, bookings []domain.Booking, state domain.BookingState) ([]domain.BookingView, error) {
	now := s.now().UTC()

	views := make([]domain.BookingView, 0, len(bookings))
	for i := range bookings {
		b := &bookings[i]
		if !state.Match(b, now) {
			continue
		}
		view, err := a.view(ctx, b)
		if err != nil {
			return nil, err
		}
		views = append(views, *view)
	}

	return views, nil
}
