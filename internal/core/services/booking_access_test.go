package services_test

import (
	"context"
	"testing"

	"github.com/srgjo27/shareit/internal/core/domain"
	"github.com/srgjo27/shareit/internal/core/ports/mocks"
	"github.com/srgjo27/shareit/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestFetchForUser_RenterAndOwner(t *testing.T) {
	for _, viewer := range []*domain.User{testRenter(), testOwner()} {
		t.Run(viewer.Name, func(t *testing.T) {
			mockUserRepo := mocks.NewUserRepository(t)
			mockItemRepo := mocks.NewItemRepository(t)
			mockBookingRepo := mocks.NewBookingRepository(t)

			service := services.NewBookingService(mockUserRepo, mockItemRepo, mockBookingRepo, newTestLogger())

			mockBookingRepo.On("GetByID", mock.Anything, int64(100)).Return(testBooking(domain.BookingWaiting), nil)
			mockUserRepo.On("GetByID", mock.Anything, viewer.ID).Return(viewer, nil)
			mockUserRepo.On("GetByID", mock.Anything, int64(1)).Return(testRenter(), nil).Maybe()
			mockItemRepo.On("GetByID", mock.Anything, int64(10)).Return(testItem(true), nil)

			view, err := service.FetchForUser(context.Background(), 100, viewer.ID)

			require.NoError(t, err)
			assert.Equal(t, int64(100), view.ID)
			assert.Equal(t, int64(1), view.Booker.ID)
			assert.Equal(t, "Drill", view.Item.Name)
		})
	}
}

func TestFetchForUser_Fail_Stranger(t *testing.T) {
	mockUserRepo := mocks.NewUserRepository(t)
	mockItemRepo := mocks.NewItemRepository(t)
	mockBookingRepo := mocks.NewBookingRepository(t)

	service := services.NewBookingService(mockUserRepo, mockItemRepo, mockBookingRepo, newTestLogger())

	stranger := &domain.User{ID: 3, Name: "stranger", Email: "stranger@example.com"}
	mockBookingRepo.On("GetByID", mock.Anything, int64(100)).Return(testBooking(domain.BookingApproved), nil)
	mockUserRepo.On("GetByID", mock.Anything, int64(3)).Return(stranger, nil)

	view, err := service.FetchForUser(context.Background(), 100, 3)

	assert.Nil(t, view)
	assert.ErrorIs(t, err, domain.ErrInvalidState)
	assert.Contains(t, err.Error(), "booking visible only to renter or owner")
}

func TestFetchForUser_Fail_UnknownUser(t *testing.T) {
	mockUserRepo := mocks.NewUserRepository(t)
	mockItemRepo := mocks.NewItemRepository(t)
	mockBookingRepo := mocks.NewBookingRepository(t)

	service := services.NewBookingService(mockUserRepo, mockItemRepo, mockBookingRepo, newTestLogger())

	mockBookingRepo.On("GetByID", mock.Anything, int64(100)).Return(testBooking(domain.BookingWaiting), nil)
	mockUserRepo.On("GetByID", mock.Anything, int64(42)).Return(nil, domain.ErrUserNotFound)

	_, err := service.FetchForUser(context.Background(), 100, 42)

	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestFetchForUser_Fail_UnknownBooking(t *testing.T) {
	mockUserRepo := mocks.NewUserRepository(t)
	mockItemRepo := mocks.NewItemRepository(t)
	mockBookingRepo := mocks.NewBookingRepository(t)

	service := services.NewBookingService(mockUserRepo, mockItemRepo, mockBookingRepo, newTestLogger())

	mockBookingRepo.On("GetByID", mock.Anything, int64(5)).Return(nil, domain.ErrBookingNotFound)

	_, err := service.FetchForUser(context.Background(), 5, 1)

	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
	mockUserRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestFetchForUser_CacheMissAddsRecord(t *testing.T) {
	mockUserRepo := mocks.NewUserRepository(t)
	mockItemRepo := mocks.NewItemRepository(t)
	mockBookingRepo := mocks.NewBookingRepository(t)
	mockCache := mocks.NewBookingCache(t)

	service := services.NewBookingService(mockUserRepo, mockItemRepo, mockBookingRepo, newTestLogger(),
		services.WithCache(mockCache),
	)

	mockCache.On("Get", mock.Anything, int64(100)).Return(nil, false)
	mockBookingRepo.On("GetByID", mock.Anything, int64(100)).Return(testBooking(domain.BookingWaiting), nil)
	mockCache.On("Add", mock.Anything, mock.MatchedBy(func(b *domain.Booking) bool {
		return b.ID == 100 && b.Status == domain.BookingWaiting
	})).Return()
	mockUserRepo.On("GetByID", mock.Anything, int64(1)).Return(testRenter(), nil).Once()
	mockItemRepo.On("GetByID", mock.Anything, int64(10)).Return(testItem(true), nil)

	view, err := service.FetchForUser(context.Background(), 100, 1)

	require.NoError(t, err)
	assert.Equal(t, "renter", view.Booker.Name)
	mockCache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything)
}

func TestFetchForUser_CacheHitStillChecksViewer(t *testing.T) {
	mockUserRepo := mocks.NewUserRepository(t)
	mockItemRepo := mocks.NewItemRepository(t)
	mockBookingRepo := mocks.NewBookingRepository(t)
	mockCache := mocks.NewBookingCache(t)

	service := services.NewBookingService(mockUserRepo, mockItemRepo, mockBookingRepo, newTestLogger(),
		services.WithCache(mockCache),
	)

	mockCache.On("Get", mock.Anything, int64(100)).Return(testBooking(domain.BookingApproved), true)
	mockUserRepo.On("GetByID", mock.Anything, int64(2)).Return(testOwner(), nil)
	mockUserRepo.On("GetByID", mock.Anything, int64(1)).Return(testRenter(), nil)
	mockUserRepo.On("GetByID", mock.Anything, int64(3)).Return(&domain.User{ID: 3, Name: "stranger"}, nil)
	mockItemRepo.On("GetByID", mock.Anything, int64(10)).Return(testItem(true), nil)

	view, err := service.FetchForUser(context.Background(), 100, 2)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingApproved, view.Status)

	_, err = service.FetchForUser(context.Background(), 100, 3)
	assert.ErrorIs(t, err, domain.ErrInvalidState)

	mockBookingRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestFetchForUser_CacheHitReadsCurrentItem(t *testing.T) {
	mockUserRepo := mocks.NewUserRepository(t)
	mockItemRepo := mocks.NewItemRepository(t)
	mockBookingRepo := mocks.NewBookingRepository(t)
	mockCache := mocks.NewBookingCache(t)

	service := services.NewBookingService(mockUserRepo, mockItemRepo, mockBookingRepo, newTestLogger(),
		services.WithCache(mockCache),
	)

	renamed := testItem(false)
	renamed.Name = "Hammer"

	mockCache.On("Get", mock.Anything, int64(100)).Return(testBooking(domain.BookingWaiting), true)
	mockUserRepo.On("GetByID", mock.Anything, int64(1)).Return(testRenter(), nil)
	mockItemRepo.On("GetByID", mock.Anything, int64(10)).Return(renamed, nil)

	view, err := service.FetchForUser(context.Background(), 100, 1)

	require.NoError(t, err)
	assert.Equal(t, "Hammer", view.Item.Name)
	assert.False(t, view.Item.Available)
}
