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

type renterBookings interface {
	HasRenterBookings(ctx context.Context, userID int64) (bool, error)
}

type UserService struct {
	repo        ports.UserRepository
	itemRepo    ports.ItemRepository
	requestRepo ports.RequestRepository
	bookings    renterBookings
	logger      *slog.Logger
}

func NewUserService(
	repo ports.UserRepository,
	itemRepo ports.ItemRepository,
	requestRepo ports.RequestRepository,
	bookings renterBookings,
	logger *slog.Logger,
) *UserService {
	return &UserService{
		repo:        repo,
		itemRepo:    itemRepo,
		requestRepo: requestRepo,
		bookings:    bookings,
		logger:      logger,
	}
}

func (s *UserService) Create(ctx context.Context, input domain.CreateUserInput) (*domain.User, error) {
	name, err := validName(input.Name)
	if err != nil {
		return nil, err
	}
	email, err := validEmail(input.Email)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Name:      name,
		Email:     email,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.logger.InfoContext(ctx, "user created", slog.Int64("user_id", user.ID))

	return user, nil
}

func (s *UserService) Get(ctx context.Context, id int64) (*domain.User, error) {
	return s.repo.GetByID(ctx, id)
}

// Update applies a partial update; nil fields keep their value.
func (s *UserService) Update(ctx context.Context, id int64, input domain.UpdateUserInput) (*domain.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if user.Name, err = validName(*input.Name); err != nil {
			return nil, err
		}
	}
	if input.Email != nil {
		if user.Email, err = validEmail(*input.Email); err != nil {
			return nil, err
		}
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}

	return user, nil
}

// Delete removes a user that owns no items and has no bookings or requests.
func (s *UserService) Delete(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	items, err := s.itemRepo.ListByOwner(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list items by owner: %w", err)
	}
	if len(items) > 0 {
		return nil, fmt.Errorf("%w: user owns items", domain.ErrInvalidState)
	}

	rented, err := s.bookings.HasRenterBookings(ctx, id)
	if err != nil {
		return nil, err
	}
	if rented {
		return nil, fmt.Errorf("%w: user has bookings", domain.ErrInvalidState)
	}

	requests, err := s.requestRepo.ListByRequester(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list requests: %w", err)
	}
	if len(requests) > 0 {
		return nil, fmt.Errorf("%w: user has item requests", domain.ErrInvalidState)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, fmt.Errorf("delete user: %w", err)
	}

	s.logger.InfoContext(ctx, "user deleted", slog.Int64("user_id", id))

	return user, nil
}

func validName(raw string) (string, error) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return "", fmt.Errorf("%w: name is required", domain.ErrInvalidRequest)
	}
	return name, nil
}

func validEmail(raw string) (string, error) {
	email := strings.TrimSpace(raw)
	if email == "" || !strings.Contains(email, "@") {
		return "", fmt.Errorf("%w: valid email is required", domain.ErrInvalidRequest)
	}
	return email, nil
}
