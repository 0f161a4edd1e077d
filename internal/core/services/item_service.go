package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/srgjo27/shareit/internal/core/domain"
	"github.com/srgjo27/shareit/internal/core/ports"
)

// itemBookings answers booking questions about an item without exposing the booking store.
type itemBookings interface {
	BookingDatesFor(ctx context.Context, itemID int64) (domain.BookingDates, error)
	HasBookings(ctx context.Context, itemID int64) (bool, error)
}

type ItemService struct {
	itemRepo    ports.ItemRepository
	userRepo    ports.UserRepository
	commentRepo ports.CommentRepository
	requestRepo ports.RequestRepository
	bookings    itemBookings
	logger      *slog.Logger
}

func NewItemService(
	itemRepo ports.ItemRepository,
	userRepo ports.UserRepository,
	commentRepo ports.CommentRepository,
	requestRepo ports.RequestRepository,
	bookings itemBookings,
	logger *slog.Logger,
) *ItemService {
	return &ItemService{
		itemRepo:    itemRepo,
		userRepo:    userRepo,
		commentRepo: commentRepo,
		requestRepo: requestRepo,
		bookings:    bookings,
		logger:      logger,
	}
}

func (s *ItemService) Create(ctx context.Context, input domain.CreateItemInput, ownerID int64) (*domain.ItemView, error) {
	if _, err := s.userRepo.GetByID(ctx, ownerID); err != nil {
		return nil, fmt.Errorf("check owner: %w", err)
	}

	if strings.TrimSpace(input.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrInvalidRequest)
	}
	if strings.TrimSpace(input.Description) == "" {
		return nil, fmt.Errorf("%w: description is required", domain.ErrInvalidRequest)
	}

	if input.RequestID != nil {
		if _, err := s.requestRepo.GetByID(ctx, *input.RequestID); err != nil {
			return nil, fmt.Errorf("check request: %w", err)
		}
	}

	now := time.Now().UTC()
	item := &domain.Item{
		OwnerID:     ownerID,
		Name:        input.Name,
		Description: input.Description,
		Available:   input.Available,
		RequestID:   input.RequestID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.itemRepo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("create item: %w", err)
	}

	s.logger.InfoContext(ctx, "item created",
		slog.Int64("item_id", item.ID),
		slog.Int64("owner_id", ownerID),
	)

	return toItemView(item, nil), nil
}

func (s *ItemService) Get(ctx context.Context, itemID int64) (*domain.ItemView, error) {
	item, err := s.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}

	comments, err := s.commentRepo.ListByItem(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}

	return toItemView(item, comments), nil
}

// ListByOwner returns the owner's items with their comments and the dates of
// the last and next booking.
func (s *ItemService) ListByOwner(ctx context.Context, ownerID int64) ([]domain.ItemView, error) {
	if _, err := s.userRepo.GetByID(ctx, ownerID); err != nil {
		return nil, fmt.Errorf("check owner: %w", err)
	}

	items, err := s.itemRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list items by owner: %w", err)
	}

	views := make([]domain.ItemView, 0, len(items))
	for i := range items {
		comments, err := s.commentRepo.ListByItem(ctx, items[i].ID)
		if err != nil {
			return nil, fmt.Errorf("list comments: %w", err)
		}

		dates, err := s.bookings.BookingDatesFor(ctx, items[i].ID)
		if err != nil {
			return nil, err
		}

		view := toItemView(&items[i], comments)
		view.LastBooking = formatOptional(dates.Last)
		view.NextBooking = formatOptional(dates.Next)
		views = append(views, *view)
	}

	return views, nil
}

// Search returns available items whose name or description contains text.
// Blank text matches nothing.
func (s *ItemService) Search(ctx context.Context, text string) ([]domain.ItemView, error) {
	if strings.TrimSpace(text) == "" {
		return []domain.ItemView{}, nil
	}

	items, err := s.itemRepo.Search(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("search items: %w", err)
	}

	return toItemViews(items), nil
}

// Update applies a partial update. Items of other users are reported as not found.
func (s *ItemService) Update(ctx context.Context, itemID int64, input domain.UpdateItemInput, userID int64) (*domain.ItemView, error) {
	item, err := s.ownedItem(ctx, itemID, userID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if strings.TrimSpace(*input.Name) == "" {
			return nil, fmt.Errorf("%w: name must not be blank", domain.ErrInvalidRequest)
		}
		item.Name = *input.Name
	}
	if input.Description != nil {
		if strings.TrimSpace(*input.Description) == "" {
			return nil, fmt.Errorf("%w: description must not be blank", domain.ErrInvalidRequest)
		}
		item.Description = *input.Description
	}
	if input.Available != nil {
		item.Available = *input.Available
	}
	item.UpdatedAt = time.Now().UTC()

	if err := s.itemRepo.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("update item: %w", err)
	}

	comments, err := s.commentRepo.ListByItem(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}

	return toItemView(item, comments), nil
}

// Delete removes an item that was never booked and returns it.
func (s *ItemService) Delete(ctx context.Context, itemID, userID int64) (*domain.ItemView, error) {
	item, err := s.ownedItem(ctx, itemID, userID)
	if err != nil {
		return nil, err
	}

	booked, err := s.bookings.HasBookings(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if booked {
		return nil, fmt.Errorf("%w: item has bookings", domain.ErrInvalidState)
	}

	if err := s.itemRepo.Delete(ctx, itemID); err != nil {
		return nil, fmt.Errorf("delete item: %w", err)
	}

	s.logger.InfoContext(ctx, "item deleted",
		slog.Int64("item_id", itemID),
		slog.Int64("owner_id", userID),
	)

	return toItemView(item, nil), nil
}

func (s *ItemService) ownedItem(ctx context.Context, itemID, userID int64) (*domain.Item, error) {
	item, err := s.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}

	if item.OwnerID != userID {
		return nil, fmt.Errorf("%w: item not accessible", domain.ErrNotFound)
	}

	return item, nil
}

func toItemView(item *domain.Item, comments []domain.Comment) *domain.ItemView {
	views := make([]domain.CommentView, 0, len(comments))
	for i := range comments {
		views = append(views, toCommentView(&comments[i]))
	}

	return &domain.ItemView{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		Available:   item.Available,
		OwnerID:     item.OwnerID,
		RequestID:   item.RequestID,
		Comments:    views,
	}
}

func toItemViews(items []domain.Item) []domain.ItemView {
	views := make([]domain.ItemView, 0, len(items))
	for i := range items {
		views = append(views, *toItemView(&items[i], nil))
	}
	return views
}

func toCommentView(c *domain.Comment) domain.CommentView {
	return domain.CommentView{
		ID:         c.ID,
		Text:       c.Text,
		AuthorName: c.AuthorName,
		Created:    domain.FormatInstant(c.Created),
	}
}

func formatOptional(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := domain.FormatInstant(*t)
	return &s
}
