package ports

import (
	"context"

	"github.com/srgjo27/shareit/internal/core/domain"
)

type EventPublisher interface {
	BookingCreated(ctx context.Context, booking *domain.Booking)
	BookingStatusChanged(ctx context.Context, booking *domain.Booking)
}
