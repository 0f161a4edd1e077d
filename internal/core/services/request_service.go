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

type RequestService struct {
	requestRepo ports.RequestRepository
	userRepo    ports.UserRepository
	itemRepo    ports.ItemRepository
	logger      *slog.Logger
}

func NewRequestService(
	requestRepo ports.RequestRepository,
	userRepo ports.UserRepository,
	itemRepo ports.ItemRepository,
	logger *slog.Logger,
) *RequestService {
	return &RequestService{
		requestRepo: requestRepo,
		userRepo:    userRepo,
		itemRepo:    itemRepo,
		logger:      logger,
	}
}

func (s *RequestService) Create(ctx context.Context, input domain.CreateRequestInput, userID int64) (*domain.RequestView, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, fmt.Errorf("check requester: %w", err)
	}

	if strings.TrimSpace(input.Text) == "" {
		return nil, fmt.Errorf("%w: text is required", domain.ErrInvalidRequest)
	}
	if strings.TrimSpace(input.Description) == "" {
		return nil, fmt.Errorf("%w: description is required", domain.ErrInvalidRequest)
	}

	req := &domain.ItemRequest{
		RequesterID: userID,
		Text:        input.Text,
		Description: input.Description,
		Created:     time.Now().UTC(),
	}

	if err := s.requestRepo.Create(ctx, req); err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	s.logger.InfoContext(ctx, "item request created",
		slog.Int64("request_id", req.ID),
		slog.Int64("requester_id", userID),
	)

	return toRequestView(req, nil), nil
}

func (s *RequestService) Get(ctx context.Context, requestID int64) (*domain.RequestView, error) {
	req, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, fmt.Errorf("get request: %w", err)
	}

	return s.withAnswers(ctx, req)
}

// ListOwn returns the user's requests, newest first.
func (s *RequestService) ListOwn(ctx context.Context, userID int64) ([]domain.RequestView, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("check requester: %w", err)
	}
	if !exists {
		return nil, domain.ErrUserNotFound
	}

	requests, err := s.requestRepo.ListByRequester(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list requests: %w", err)
	}

	return s.views(ctx, requests)
}

// ListOthers returns every request not made by userID, newest first.
func (s *RequestService) ListOthers(ctx context.Context, userID int64) ([]domain.RequestView, error) {
	requests, err := s.requestRepo.ListExcludingRequester(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list requests: %w", err)
	}

	return s.views(ctx, requests)
}

func (s *RequestService) views(ctx context.Context, requests []domain.ItemRequest) ([]domain.RequestView, error) {
	views := make([]domain.RequestView, 0, len(requests))
	for i := range requests {
		view, err := s.withAnswers(ctx, &requests[i])
		if err != nil {
			return nil, err
		}
		views = append(views, *view)
	}
	return views, nil
}

func (s *RequestService) withAnswers(ctx context.Context, req *domain.ItemRequest) (*domain.RequestView, error) {
	items, err := s.itemRepo.ListByRequest(ctx, req.ID)
	if err != nil {
		return nil, fmt.Errorf("list answers to request %d: %w", req.ID, err)
	}
	return toRequestView(req, items), nil
}

func toRequestView(req *domain.ItemRequest, items []domain.Item) *domain.RequestView {
	return &domain.RequestView{
		ID:          req.ID,
		Text:        req.Text,
		Description: req.Description,
		Created:     domain.FormatInstant(req.Created),
		Items:       toItemViews(items),
	}
}
