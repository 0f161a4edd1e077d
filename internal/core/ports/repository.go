package ports

import (
	"context"
	"time"

	"github.com/srgjo27/shareit/internal/core/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, userID int64) (*domain.User, error)
	Exists(ctx context.Context, userID int64) (bool, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, userID int64) error
}

type ItemRepository interface {
	Create(ctx context.Context, item *domain.Item) error
	GetByID(ctx context.Context, itemID int64) (*domain.Item, error)
	Update(ctx context.Context, item *domain.Item) error
	Delete(ctx context.Context, itemID int64) error
	// ListByOwner and ListByRequest are ordered by id.
	ListByOwner(ctx context.Context, ownerID int64) ([]domain.Item, error)
	ListByRequest(ctx context.Context, requestID int64) ([]domain.Item, error)
	// Search matches available items whose name or description contains text, ignoring case.
	Search(ctx context.Context, text string) ([]domain.Item, error)
}

// BookingRepository lists are ordered by start descending, then id descending.
type BookingRepository interface {
	Insert(ctx context.Context, booking *domain.Booking) error
	GetByID(ctx context.Context, bookingID int64) (*domain.Booking, error)
	Update(ctx context.Context, booking *domain.Booking) error
	ListByRenter(ctx context.Context, renterID int64) ([]domain.Booking, error)
	ListByRenterAndStatus(ctx context.Context, renterID int64, status domain.BookingStatus) ([]domain.Booking, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]domain.Booking, error)
	ListByOwnerAndStatus(ctx context.Context, ownerID int64, status domain.BookingStatus) ([]domain.Booking, error)
	ExistsCompleted(ctx context.Context, renterID, itemID int64, before time.Time) (bool, error)
	ExistsForItem(ctx context.Context, itemID int64) (bool, error)
	// DatesForItem ignores rejected bookings.
	DatesForItem(ctx context.Context, itemID int64, now time.Time) (domain.BookingDates, error)
}

type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) error
	ListByItem(ctx context.Context, itemID int64) ([]domain.Comment, error)
}

// RequestRepository lists are ordered newest first.
type RequestRepository interface {
	Create(ctx context.Context, request *domain.ItemRequest) error
	GetByID(ctx context.Context, requestID int64) (*domain.ItemRequest, error)
	ListByRequester(ctx context.Context, userID int64) ([]domain.ItemRequest, error)
	ListExcludingRequester(ctx context.Context, userID int64) ([]domain.ItemRequest, error)
}
