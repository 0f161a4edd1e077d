package ports

import (
	"context"

	"github.com/srgjo27/shareit/internal/core/domain"
)

// BookingCache holds booking records by id. It misses on any backend failure
// and never fails the caller.
type BookingCache interface {
	Get(ctx context.Context, bookingID int64) (*domain.Booking, bool)
	// Add stores the booking only when no entry exists, so a read that loaded
	// an older record cannot replace one written after a status change.
	Add(ctx context.Context, booking *domain.Booking)
	// Set overwrites the entry with the record just persisted.
	Set(ctx context.Context, booking *domain.Booking)
}
