package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/srgjo27/shareit/internal/core/domain"
	"github.com/srgjo27/shareit/internal/core/ports/mocks"
	"github.com/srgjo27/shareit/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestItemService_Create(t *testing.T) {
	mockItemRepo := mocks.NewItemRepository(t)
	mockUserRepo := mocks.NewUserRepository(t)
	mockCommentRepo := mocks.NewCommentRepository(t)

	service := services.NewItemService(mockItemRepo, mockUserRepo, mockCommentRepo, mocks.NewRequestRepository(t), stubBookings{}, newTestLogger())

	mockUserRepo.On("GetByID", mock.Anything, int64(2)).Return(testOwner(), nil)
	mockItemRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Item")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Item).ID = 10
		}).
		Return(nil)

	view, err := service.Create(context.Background(), domain.CreateItemInput{
		Name: "Drill", Description: "Cordless drill", Available: true,
	}, 2)

	require.NoError(t, err)
	assert.Equal(t, int64(10), view.ID)
	assert.Equal(t, int64(2), view.OwnerID)
	assert.Empty(t, view.Comments)
}

func TestItemService_Create_Fail_Validation(t *testing.T) {
	mockItemRepo := mocks.NewItemRepository(t)
	mockUserRepo := mocks.NewUserRepository(t)

	service := services.NewItemService(mockItemRepo, mockUserRepo, mocks.NewCommentRepository(t), mocks.NewRequestRepository(t), stubBookings{}, newTestLogger())

	mockUserRepo.On("GetByID", mock.Anything, int64(2)).Return(testOwner(), nil)

	_, err := service.Create(context.Background(), domain.CreateItemInput{Description: "no name"}, 2)
	assert.ErrorIs(t, err, domain.ErrInvalidRequest)

	_, err = service.Create(context.Background(), domain.CreateItemInput{Name: "no description"}, 2)
	assert.ErrorIs(t, err, domain.ErrInvalidRequest)
}

func TestItemService_Update_OwnerTogglesAvailability(t *testing.T) {
	mockItemRepo := mocks.NewItemRepository(t)
	mockCommentRepo := mocks.NewCommentRepository(t)

	service := services.NewItemService(mockItemRepo, mocks.NewUserRepository(t), mockCommentRepo, mocks.NewRequestRepository(t), stubBookings{}, newTestLogger())

	available := false
	mockItemRepo.On("GetByID", mock.Anything, int64(10)).Return(testItem(true), nil)
	mockItemRepo.On("Update", mock.Anything, mock.MatchedBy(func(i *domain.Item) bool {
		return !i.Available && i.Name == "Drill"
	})).Return(nil)
	mockCommentRepo.On("ListByItem", mock.Anything, int64(10)).Return([]domain.Comment{}, nil)

	view, err := service.Update(context.Background(), 10, domain.UpdateItemInput{Available: &available}, 2)

	require.NoError(t, err)
	assert.False(t, view.Available)
}

func TestItemService_Update_Fail_NotOwner(t *testing.T) {
	mockItemRepo := mocks.NewItemRepository(t)

	service := services.NewItemService(mockItemRepo, mocks.NewUserRepository(t), mocks.NewCommentRepository(t), mocks.NewRequestRepository(t), stubBookings{}, newTestLogger())

	name := "Hammer"
	mockItemRepo.On("GetByID", mock.Anything, int64(10)).Return(testItem(true), nil)

	_, err := service.Update(context.Background(), 10, domain.UpdateItemInput{Name: &name}, 1)

	assert.ErrorIs(t, err, domain.ErrNotFound)
	mockItemRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestItemService_GetIncludesComments(t *testing.T) {
	mockItemRepo := mocks.NewItemRepository(t)
	mockCommentRepo := mocks.NewCommentRepository(t)

	service := services.NewItemService(mockItemRepo, mocks.NewUserRepository(t), mockCommentRepo, mocks.NewRequestRepository(t), stubBookings{}, newTestLogger())

	mockItemRepo.On("GetByID", mock.Anything, int64(10)).Return(testItem(true), nil)
	mockCommentRepo.On("ListByItem", mock.Anything, int64(10)).Return([]domain.Comment{
		{ID: 1, ItemID: 10, AuthorID: 1, AuthorName: "renter", Text: "solid", Created: fixedNow},
	}, nil)

	view, err := service.Get(context.Background(), 10)

	require.NoError(t, err)
	require.Len(t, view.Comments, 1)
	assert.Equal(t, "2026-06-15T12:00:00", view.Comments[0].Created)
}

func TestItemService_Create_Fail_UnknownRequest(t *testing.T) {
	mockUserRepo := mocks.NewUserRepository(t)
	mockRequestRepo := mocks.NewRequestRepository(t)

	service := services.NewItemService(mocks.NewItemRepository(t), mockUserRepo, mocks.NewCommentRepository(t), mockRequestRepo, stubBookings{}, newTestLogger())

	requestID := int64(7)
	mockUserRepo.On("GetByID", mock.Anything, int64(2)).Return(testOwner(), nil)
	mockRequestRepo.On("GetByID", mock.Anything, requestID).Return(nil, domain.ErrRequestNotFound)

	_, err := service.Create(context.Background(), domain.CreateItemInput{
		Name: "Drill", Description: "Cordless drill", Available: true, RequestID: &requestID,
	}, 2)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestItemService_ListByOwner_FillsBookingDates(t *testing.T) {
	mockItemRepo := mocks.NewItemRepository(t)
	mockUserRepo := mocks.NewUserRepository(t)
	mockCommentRepo := mocks.NewCommentRepository(t)

	last := fixedNow.Add(-24 * time.Hour)
	bookings := stubBookings{dates: domain.BookingDates{Last: &last}}
	service := services.NewItemService(mockItemRepo, mockUserRepo, mockCommentRepo, mocks.NewRequestRepository(t), bookings, newTestLogger())

	mockUserRepo.On("GetByID", mock.Anything, int64(2)).Return(testOwner(), nil)
	mockItemRepo.On("ListByOwner", mock.Anything, int64(2)).Return([]domain.Item{*testItem(true)}, nil)
	mockCommentRepo.On("ListByItem", mock.Anything, int64(10)).Return([]domain.Comment{}, nil)

	views, err := service.ListByOwner(context.Background(), 2)

	require.NoError(t, err)
	require.Len(t, views, 1)
	require.NotNil(t, views[0].LastBooking)
	assert.Equal(t, "2026-06-14T12:00:00", *views[0].LastBooking)
	assert.Nil(t, views[0].NextBooking)
}

func TestItemService_Search_BlankSkipsStore(t *testing.T) {
	mockItemRepo := mocks.NewItemRepository(t)

	service := services.NewItemService(mockItemRepo, mocks.NewUserRepository(t), mocks.NewCommentRepository(t), mocks.NewRequestRepository(t), stubBookings{}, newTestLogger())

	views, err := service.Search(context.Background(), "")

	require.NoError(t, err)
	assert.Empty(t, views)
	mockItemRepo.AssertNotCalled(t, "Search", mock.Anything, mock.Anything)
}

func TestItemService_Delete_Fail_Booked(t *testing.T) {
	mockItemRepo := mocks.NewItemRepository(t)

	service := services.NewItemService(mockItemRepo, mocks.NewUserRepository(t), mocks.NewCommentRepository(t), mocks.NewRequestRepository(t), stubBookings{booked: true}, newTestLogger())

	mockItemRepo.On("GetByID", mock.Anything, int64(10)).Return(testItem(true), nil)

	_, err := service.Delete(context.Background(), 10, 2)

	assert.ErrorIs(t, err, domain.ErrInvalidState)
	mockItemRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
