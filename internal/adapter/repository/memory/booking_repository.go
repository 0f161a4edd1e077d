package memory

import (
	"context"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/srgjo27/shareit/internal/core/domain"
)

type BookingRepository struct {
	mu       sync.RWMutex
	seq      atomic.Int64
	bookings map[int64]domain.Booking
}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{bookings: make(map[int64]domain.Booking)}
}

func (r *BookingRepository) Insert(ctx context.Context, booking *domain.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	booking.ID = r.seq.Add(1)
	r.bookings[booking.ID] = *booking
	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, bookingID int64) (*domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.bookings[bookingID]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	return &b, nil
}

func (r *BookingRepository) Update(ctx context.Context, booking *domain.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.bookings[booking.ID]; !ok {
		return domain.ErrBookingNotFound
	}
	r.bookings[booking.ID] = *booking
	return nil
}

func (r *BookingRepository) ListByRenter(ctx context.Context, renterID int64) ([]domain.Booking, error) {
	return r.list(func(b *domain.Booking) bool { return b.RenterID == renterID }), nil
}

func (r *BookingRepository) ListByRenterAndStatus(ctx context.Context, renterID int64, status domain.BookingStatus) ([]domain.Booking, error) {
	return r.list(func(b *domain.Booking) bool { return b.RenterID == renterID && b.Status == status }), nil
}

func (r *BookingRepository) ListByOwner(ctx context.Context, ownerID int64) ([]domain.Booking, error) {
	return r.list(func(b *domain.Booking) bool { return b.OwnerID == ownerID }), nil
}

func (r *BookingRepository) ListByOwnerAndStatus(ctx context.Context, ownerID int64, status domain.BookingStatus) ([]domain.Booking, error) {
	return r.list(func(b *domain.Booking) bool { return b.OwnerID == ownerID && b.Status == status }), nil
}

func (r *BookingRepository) ExistsCompleted(ctx context.Context, renterID, itemID int64, before time.Time) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, b := range r.bookings {
		if b.RenterID == renterID && b.ItemID == itemID && b.End.Before(before) {
			return true, nil
		}
	}
	return false, nil
}

func (r *BookingRepository) ExistsForItem(ctx context.Context, itemID int64) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, b := range r.bookings {
		if b.ItemID == itemID {
			return true, nil
		}
	}
	return false, nil
}

func (r *BookingRepository) DatesForItem(ctx context.Context, itemID int64, now time.Time) (domain.BookingDates, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var dates domain.BookingDates
	for _, b := range r.bookings {
		if b.ItemID != itemID || b.Status == domain.BookingRejected {
			continue
		}
		if b.End.Before(now) && (dates.Last == nil || b.End.After(*dates.Last)) {
			end := b.End
			dates.Last = &end
		}
		if b.Start.After(now) && (dates.Next == nil || b.Start.Before(*dates.Next)) {
			start := b.Start
			dates.Next = &start
		}
	}
	return dates, nil
}

// list orders by start descending, then id descending, matching the SQL store.
func (r *BookingRepository) list(match func(*domain.Booking) bool) []domain.Booking {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var res []domain.Booking
	for _, b := range r.bookings {
		if match(&b) {
			res = append(res, b)
		}
	}

	sort.Slice(res, func(i, j int) bool {
		if !res[i].Start.Equal(res[j].Start) {
			return res[i].Start.After(res[j].Start)
		}
		return res[i].ID > res[j].ID
	})

	return res
}
