package services

import (
	"context"

	"github.com/srgjo27/shareit/internal/core/domain"
)

type noopCache struct{}

func (noopCache) Get(context.Context, int64) (*domain.Booking, bool) { return nil, false }

func (noopCache) Add(context.Context, *domain.Booking) {}

func (noopCache) Set(context.Context, *domain.Booking) {}

type noopPublisher struct{}

func (noopPublisher) BookingCreated(context.Context, *domain.Booking) {}

func (noopPublisher) BookingStatusChanged(context.Context, *domain.Booking) {}
