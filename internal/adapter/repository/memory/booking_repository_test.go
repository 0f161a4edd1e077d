package memory_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/srgjo27/shareit/internal/adapter/repository/memory"
	"github.com/srgjo27/shareit/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingRepository_InsertAssignsUniqueIDs(t *testing.T) {
	repo := memory.NewBookingRepository()
	ctx := context.Background()

	var wg sync.WaitGroup
	ids := make(chan int64, 50)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			b := &domain.Booking{RenterID: 1, OwnerID: 2, ItemID: 3, Status: domain.BookingWaiting}
			assert.NoError(t, repo.Insert(ctx, b))
			ids <- b.ID
		}()
	}
	wg.Wait()
	close(ids)

	seen := map[int64]bool{}
	for id := range ids {
		assert.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
	assert.Len(t, seen, 50)
}

func TestBookingRepository_ListOrderAndFilters(t *testing.T) {
	repo := memory.NewBookingRepository()
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	early := &domain.Booking{RenterID: 1, OwnerID: 2, ItemID: 3, Start: base, End: base.Add(time.Hour), Status: domain.BookingApproved}
	late := &domain.Booking{RenterID: 1, OwnerID: 2, ItemID: 3, Start: base.Add(24 * time.Hour), End: base.Add(25 * time.Hour), Status: domain.BookingWaiting}
	other := &domain.Booking{RenterID: 5, OwnerID: 6, ItemID: 7, Start: base, End: base.Add(time.Hour), Status: domain.BookingWaiting}
	for _, b := range []*domain.Booking{early, late, other} {
		require.NoError(t, repo.Insert(ctx, b))
	}

	byRenter, err := repo.ListByRenter(ctx, 1)
	require.NoError(t, err)
	require.Len(t, byRenter, 2)
	assert.Equal(t, late.ID, byRenter[0].ID)
	assert.Equal(t, early.ID, byRenter[1].ID)

	waiting, err := repo.ListByOwnerAndStatus(ctx, 2, domain.BookingWaiting)
	require.NoError(t, err)
	require.Len(t, waiting, 1)
	assert.Equal(t, late.ID, waiting[0].ID)

	approved, err := repo.ListByRenterAndStatus(ctx, 1, domain.BookingApproved)
	require.NoError(t, err)
	require.Len(t, approved, 1)
	assert.Equal(t, early.ID, approved[0].ID)

	byOwner, err := repo.ListByOwner(ctx, 6)
	require.NoError(t, err)
	assert.Len(t, byOwner, 1)
}

func TestBookingRepository_ExistsCompleted(t *testing.T) {
	repo := memory.NewBookingRepository()
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Insert(ctx, &domain.Booking{
		RenterID: 1, ItemID: 3, Start: now.Add(-2 * time.Hour), End: now,
	}))

	ok, err := repo.ExistsCompleted(ctx, 1, 3, now)
	require.NoError(t, err)
	assert.False(t, ok, "end equal to now is not completed")

	ok, err = repo.ExistsCompleted(ctx, 1, 3, now.Add(time.Second))
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.ExistsCompleted(ctx, 2, 3, now.Add(time.Second))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBookingRepository_GetAndUpdate(t *testing.T) {
	repo := memory.NewBookingRepository()
	ctx := context.Background()

	_, err := repo.GetByID(ctx, 42)
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)

	b := &domain.Booking{RenterID: 1, Status: domain.BookingWaiting}
	require.NoError(t, repo.Insert(ctx, b))

	got, err := repo.GetByID(ctx, b.ID)
	require.NoError(t, err)
	got.Status = domain.BookingRejected

	stored, err := repo.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingWaiting, stored.Status, "returned bookings are copies")

	require.NoError(t, repo.Update(ctx, got))
	stored, err = repo.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingRejected, stored.Status)

	assert.ErrorIs(t, repo.Update(ctx, &domain.Booking{ID: 999}), domain.ErrBookingNotFound)
}

func TestUserRepository_EmailUnique(t *testing.T) {
	repo := memory.NewUserRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &domain.User{Name: "a", Email: "a@example.com"}))
	err := repo.Create(ctx, &domain.User{Name: "b", Email: "A@example.com"})
	assert.ErrorIs(t, err, domain.ErrInvalidState)

	ok, err := repo.Exists(ctx, 1)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestBookingRepository_DatesForItem(t *testing.T) {
	repo := memory.NewBookingRepository()
	ctx := context.Background()
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	day := 24 * time.Hour

	bookings := []*domain.Booking{
		{ItemID: 3, Start: now.Add(-5 * day), End: now.Add(-4 * day), Status: domain.BookingApproved},
		{ItemID: 3, Start: now.Add(-3 * day), End: now.Add(-2 * day), Status: domain.BookingApproved},
		{ItemID: 3, Start: now.Add(-2 * day), End: now.Add(-day), Status: domain.BookingRejected},
		{ItemID: 3, Start: now.Add(-time.Hour), End: now.Add(time.Hour), Status: domain.BookingApproved},
		{ItemID: 3, Start: now.Add(3 * day), End: now.Add(4 * day), Status: domain.BookingWaiting},
		{ItemID: 3, Start: now.Add(2 * day), End: now.Add(3 * day), Status: domain.BookingRejected},
		{ItemID: 4, Start: now.Add(day), End: now.Add(2 * day), Status: domain.BookingApproved},
	}
	for _, b := range bookings {
		require.NoError(t, repo.Insert(ctx, b))
	}

	dates, err := repo.DatesForItem(ctx, 3, now)
	require.NoError(t, err)
	require.NotNil(t, dates.Last)
	require.NotNil(t, dates.Next)
	assert.True(t, now.Add(-2*day).Equal(*dates.Last))
	assert.True(t, now.Add(3*day).Equal(*dates.Next))

	dates, err = repo.DatesForItem(ctx, 9, now)
	require.NoError(t, err)
	assert.Nil(t, dates.Last)
	assert.Nil(t, dates.Next)

	ok, err := repo.ExistsForItem(ctx, 4)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = repo.ExistsForItem(ctx, 9)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestUserRepository_UpdateAndDelete(t *testing.T) {
	repo := memory.NewUserRepository()
	ctx := context.Background()

	a := &domain.User{Name: "a", Email: "a@example.com"}
	b := &domain.User{Name: "b", Email: "b@example.com"}
	require.NoError(t, repo.Create(ctx, a))
	require.NoError(t, repo.Create(ctx, b))

	b.Email = "A@EXAMPLE.com"
	assert.ErrorIs(t, repo.Update(ctx, b), domain.ErrEmailTaken)

	a.Email = "A@example.com"
	require.NoError(t, repo.Update(ctx, a), "a user may keep its own address")

	require.NoError(t, repo.Delete(ctx, a.ID))
	assert.ErrorIs(t, repo.Delete(ctx, a.ID), domain.ErrUserNotFound)
	assert.ErrorIs(t, repo.Update(ctx, a), domain.ErrUserNotFound)
}

func TestItemRepository_SearchAndListing(t *testing.T) {
	repo := memory.NewItemRepository()
	ctx := context.Background()
	requestID := int64(7)

	drill := &domain.Item{OwnerID: 1, Name: "Drill", Description: "Cordless DRILL", Available: true}
	saw := &domain.Item{OwnerID: 1, Name: "Saw", Description: "Hand saw", Available: false, RequestID: &requestID}
	driller := &domain.Item{OwnerID: 2, Name: "Tent", Description: "fits a driller", Available: true, RequestID: &requestID}
	for _, it := range []*domain.Item{drill, saw, driller} {
		require.NoError(t, repo.Create(ctx, it))
	}

	found, err := repo.Search(ctx, "dRiLl")
	require.NoError(t, err)
	require.Len(t, found, 2)
	assert.Equal(t, drill.ID, found[0].ID)
	assert.Equal(t, driller.ID, found[1].ID)

	found, err = repo.Search(ctx, "saw")
	require.NoError(t, err)
	assert.Empty(t, found, "unavailable items are not searchable")

	owned, err := repo.ListByOwner(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, owned, 2)

	answers, err := repo.ListByRequest(ctx, requestID)
	require.NoError(t, err)
	assert.Len(t, answers, 2)

	require.NoError(t, repo.Delete(ctx, saw.ID))
	_, err = repo.GetByID(ctx, saw.ID)
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

func TestRequestRepository_Ordering(t *testing.T) {
	repo := memory.NewRequestRepository()
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	older := &domain.ItemRequest{RequesterID: 1, Text: "ladder", Created: base}
	newer := &domain.ItemRequest{RequesterID: 1, Text: "tent", Created: base.Add(time.Hour)}
	foreign := &domain.ItemRequest{RequesterID: 2, Text: "kayak", Created: base}
	for _, req := range []*domain.ItemRequest{older, newer, foreign} {
		require.NoError(t, repo.Create(ctx, req))
	}

	own, err := repo.ListByRequester(ctx, 1)
	require.NoError(t, err)
	require.Len(t, own, 2)
	assert.Equal(t, newer.ID, own[0].ID)
	assert.Equal(t, older.ID, own[1].ID)

	others, err := repo.ListExcludingRequester(ctx, 1)
	require.NoError(t, err)
	require.Len(t, others, 1)
	assert.Equal(t, foreign.ID, others[0].ID)

	_, err = repo.GetByID(ctx, 99)
	assert.ErrorIs(t, err, domain.ErrRequestNotFound)
}
