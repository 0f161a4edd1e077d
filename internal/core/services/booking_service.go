package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/srgjo27/shareit/internal/core/domain"
	"github.com/srgjo27/shareit/internal/core/ports"
)

var tracer = otel.Tracer("github.com/srgjo27/shareit/internal/core/services")

type BookingService struct {
	userRepo    ports.UserRepository
	itemRepo    ports.ItemRepository
	bookingRepo ports.BookingRepository
	cache       ports.BookingCache
	events      ports.EventPublisher
	logger      *slog.Logger
	now         func() time.Time
}

type Option func(*BookingService)

func WithCache(cache ports.BookingCache) Option {
	return func(s *BookingService) { s.cache = cache }
}

func WithEventPublisher(events ports.EventPublisher) Option {
	return func(s *BookingService) { s.events = events }
}

func WithClock(now func() time.Time) Option {
	return func(s *BookingService) { s.now = now }
}

func NewBookingService(
	userRepo ports.UserRepository,
	itemRepo ports.ItemRepository,
	bookingRepo ports.BookingRepository,
	logger *slog.Logger,
	opts ...Option,
) *BookingService {
	s := &BookingService{
		userRepo:    userRepo,
		itemRepo:    itemRepo,
		bookingRepo: bookingRepo,
		cache:       noopCache{},
		events:      noopPublisher{},
		logger:      logger,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create stores a new WAITING booking of an available item for renterID.
// Any status carried by the input is ignored.
func (s *BookingService) Create(ctx context.Context, input domain.CreateBookingInput, renterID int64) (*domain.BookingView, error) {
	ctx, span := tracer.Start(ctx, "BookingService.Create", trace.WithAttributes(
		attribute.Int64("renter.id", renterID),
		attribute.Int64("item.id", input.ItemID),
	))
	defer span.End()

	renter, err := s.userRepo.GetByID(ctx, renterID)
	if err != nil {
		return nil, fmt.Errorf("check renter: %w", err)
	}

	item, err := s.itemRepo.GetByID(ctx, input.ItemID)
	if err != nil {
		return nil, fmt.Errorf("check item: %w", err)
	}

	if !item.IsAvailable() {
		return nil, fmt.Errorf("%w: item not available for booking", domain.ErrInvalidState)
	}

	start, end, err := domain.ParseInterval(input.Start, input.End)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	booking := &domain.Booking{
		ItemID:    item.ID,
		RenterID:  renter.ID,
		OwnerID:   item.OwnerID,
		Start:     start,
		End:       end,
		Status:    domain.BookingWaiting,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.bookingRepo.Insert(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.logger.InfoContext(ctx, "booking created",
		slog.Int64("booking_id", booking.ID),
		slog.Int64("item_id", booking.ItemID),
		slog.Int64("renter_id", booking.RenterID),
		slog.Int64("owner_id", booking.OwnerID),
	)

	s.events.BookingCreated(ctx, booking)

	return newBookingView(booking, renter, item), nil
}

// SetStatus records the owner's decision on a booking. Only the owner of the
// booked item may call it; repeated calls overwrite the previous decision.
func (s *BookingService) SetStatus(ctx context.Context, bookingID int64, approve bool, actingUserID int64) (*domain.BookingView, error) {
	ctx, span := tracer.Start(ctx, "BookingService.SetStatus", trace.WithAttributes(
		attribute.Int64("booking.id", bookingID),
		attribute.Int64("user.id", actingUserID),
		attribute.Bool("approve", approve),
	))
	defer span.End()

	exists, err := s.userRepo.Exists(ctx, actingUserID)
	if err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: user not found", domain.ErrInvalidRequest)
	}

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	if booking.OwnerID != actingUserID {
		return nil, fmt.Errorf("%w: only the owner may confirm a booking", domain.ErrInvalidRequest)
	}

	previous := booking.Status
	booking.Status = domain.DecisionStatus(approve)
	booking.UpdatedAt = s.now().UTC()

	if err := s.bookingRepo.Update(ctx, booking); err != nil {
		return nil, fmt.Errorf("update booking: %w", err)
	}
	s.cache.Set(ctx, booking)

	level := slog.LevelInfo
	if previous.IsTerminal() {
		level = slog.LevelWarn
	}
	s.logger.Log(ctx, level, "booking status changed",
		slog.Int64("booking_id", booking.ID),
		slog.String("from", string(previous)),
		slog.String("to", string(booking.Status)),
	)

	s.events.BookingStatusChanged(ctx, booking)

	return s.assemble(ctx, booking)
}
