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

type eligibilityChecker interface {
	HasCompletedBookingFor(ctx context.Context, userID, itemID int64) bool
}

type CommentService struct {
	commentRepo ports.CommentRepository
	userRepo    ports.UserRepository
	itemRepo    ports.ItemRepository
	eligibility eligibilityChecker
	logger      *slog.Logger
}

func NewCommentService(
	commentRepo ports.CommentRepository,
	userRepo ports.UserRepository,
	itemRepo ports.ItemRepository,
	eligibility eligibilityChecker,
	logger *slog.Logger,
) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		userRepo:    userRepo,
		itemRepo:    itemRepo,
		eligibility: eligibility,
		logger:      logger,
	}
}

// Add stores a comment by a user who has finished renting the item.
func (s *CommentService) Add(ctx context.Context, itemID, userID int64, text string) (*domain.CommentView, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("check author: %w", err)
	}

	if _, err := s.itemRepo.GetByID(ctx, itemID); err != nil {
		return nil, fmt.Errorf("check item: %w", err)
	}

	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: comment text is required", domain.ErrInvalidRequest)
	}

	if !s.eligibility.HasCompletedBookingFor(ctx, userID, itemID) {
		return nil, fmt.Errorf("%w: user did not rent item, cannot comment", domain.ErrInvalidState)
	}

	comment := &domain.Comment{
		ItemID:     itemID,
		AuthorID:   user.ID,
		AuthorName: user.Name,
		Text:       text,
		Created:    time.Now().UTC(),
	}

	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}

	s.logger.InfoContext(ctx, "comment added",
		slog.Int64("comment_id", comment.ID),
		slog.Int64("item_id", itemID),
		slog.Int64("author_id", userID),
	)

	view := toCommentView(comment)
	return &view, nil
}
