package services

import (
	"context"
	"fmt"

	"github.com/srgjo27/shareit/internal/core/domain"
)

func newBookingView(b *domain.Booking, renter *domain.User, item *domain.Item) *domain.BookingView {
	return &domain.BookingView{
		ID:     b.ID,
		ItemID: b.ItemID,
		Status: b.Status,
		Start:  domain.FormatInstant(b.Start),
		End:    domain.FormatInstant(b.End),
		Booker: renter.Summary(),
		Item:   item.Summary(),
	}
}

// assembler resolves renter and item summaries, fetching each id once per call.
type assembler struct {
	s     *BookingService
	users map[int64]*domain.User
	items map[int64]*domain.Item
}

func (s *BookingService) newAssembler() *assembler {
	return &assembler{
		s:     s,
		users: make(map[int64]*domain.User),
		items: make(map[int64]*domain.Item),
	}
}

func (a *assembler) view(ctx context.Context, b *domain.Booking) (*domain.BookingView, error) {
	renter, ok := a.users[b.RenterID]
	if !ok {
		u, err := a.s.userRepo.GetByID(ctx, b.RenterID)
		if err != nil {
			return nil, fmt.Errorf("resolve renter of booking %d: %w", b.ID, err)
		}
		a.users[b.RenterID] = u
		renter = u
	}

	item, ok := a.items[b.ItemID]
	if !ok {
		i, err := a.s.itemRepo.GetByID(ctx, b.ItemID)
		if err != nil {
			return nil, fmt.Errorf("resolve item of booking %d: %w", b.ID, err)
		}
		a.items[b.ItemID] = i
		item = i
	}

	return newBookingView(b, renter, item), nil
}

func (s *BookingService) assemble(ctx context.Context, b *domain.Booking) (*domain.BookingView, error) {
	return s.newAssembler().view(ctx, b)
}
