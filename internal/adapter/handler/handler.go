package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/srgjo27/shareit/internal/core/domain"
)

// UserHeader names the acting user on every request that has one.
const UserHeader = "X-Sharer-User-Id"

type BookingService interface {
	Create(ctx context.Context, input domain.CreateBookingInput, renterID int64) (*domain.BookingView, error)
	SetStatus(ctx context.Context, bookingID int64, approve bool, actingUserID int64) (*domain.BookingView, error)
	FetchForUser(ctx context.Context, bookingID, userID int64) (*domain.BookingView, error)
	ListForRenter(ctx context.Context, renterID int64, state domain.BookingState) ([]domain.BookingView, error)
	ListForOwner(ctx context.Context, ownerID int64, state domain.BookingState) ([]domain.BookingView, error)
}

type ItemService interface {
	Create(ctx context.Context, input domain.CreateItemInput, ownerID int64) (*domain.ItemView, error)
	Get(ctx context.Context, itemID int64) (*domain.ItemView, error)
	Update(ctx context.Context, itemID int64, input domain.UpdateItemInput, userID int64) (*domain.ItemView, error)
	Delete(ctx context.Context, itemID, userID int64) (*domain.ItemView, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]domain.ItemView, error)
	Search(ctx context.Context, text string) ([]domain.ItemView, error)
}

type UserService interface {
	Create(ctx context.Context, input domain.CreateUserInput) (*domain.User, error)
	Get(ctx context.Context, id int64) (*domain.User, error)
	Update(ctx context.Context, id int64, input domain.UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, id int64) (*domain.User, error)
}

type CommentService interface {
	Add(ctx context.Context, itemID, userID int64, text string) (*domain.CommentView, error)
}

type RequestService interface {
	Create(ctx context.Context, input domain.CreateRequestInput, userID int64) (*domain.RequestView, error)
	Get(ctx context.Context, requestID int64) (*domain.RequestView, error)
	ListOwn(ctx context.Context, userID int64) ([]domain.RequestView, error)
	ListOthers(ctx context.Context, userID int64) ([]domain.RequestView, error)
}

type Handler struct {
	bookings BookingService
	items    ItemService
	users    UserService
	comments CommentService
	requests RequestService
	logger   *slog.Logger
	timeout  time.Duration
}

func NewHandler(
	bookings BookingService,
	items ItemService,
	users UserService,
	comments CommentService,
	requests RequestService,
	logger *slog.Logger,
	timeout time.Duration,
) *Handler {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Handler{
		bookings: bookings,
		items:    items,
		users:    users,
		comments: comments,
		requests: requests,
		logger:   logger,
		timeout:  timeout,
	}
}

func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(h.logger))
	r.Use(recoverer(h.logger))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/users", func(r chi.Router) {
		r.Post("/", h.createUser)
		r.Get("/{id}", h.getUser)
		r.Patch("/{id}", h.updateUser)
		r.Delete("/{id}", h.deleteUser)
	})

	r.Route("/items", func(r chi.Router) {
		r.Post("/", h.createItem)
		r.Get("/", h.listOwnerItems)
		r.Get("/search", h.searchItems)
		r.Get("/{id}", h.getItem)
		r.Patch("/{id}", h.updateItem)
		r.Delete("/{id}", h.deleteItem)
		r.Post("/{id}/comment", h.addComment)
	})

	r.Route("/requests", func(r chi.Router) {
		r.Post("/", h.createRequest)
		r.Get("/", h.listOwnRequests)
		r.Get("/all", h.listOtherRequests)
		r.Get("/{id}", h.getRequest)
	})

	r.Route("/bookings", func(r chi.Router) {
		r.Post("/", h.createBooking)
		r.Get("/", h.listRenterBookings)
		r.Get("/owner", h.listOwnerBookings)
		r.Get("/{id}", h.getBooking)
		r.Patch("/{id}", h.setBookingStatus)
	})

	return r
}

func (h *Handler) requestContext(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), h.timeout)
}
