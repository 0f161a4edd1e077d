package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/srgjo27/shareit/internal/adapter/handler/mocks"
	"github.com/srgjo27/shareit/internal/core/domain"
)

type testDeps struct {
	bookings *mocks.BookingService
	items    *mocks.ItemService
	users    *mocks.UserService
	comments *mocks.CommentService
	requests *mocks.RequestService
	router   http.Handler
}

func setupRouter(t *testing.T) testDeps {
	t.Helper()
	d := testDeps{
		bookings: mocks.NewBookingService(t),
		items:    mocks.NewItemService(t),
		users:    mocks.NewUserService(t),
		comments: mocks.NewCommentService(t),
		requests: mocks.NewRequestService(t),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	d.router = NewHandler(d.bookings, d.items, d.users, d.comments, d.requests, logger, time.Second).Routes()
	return d
}

func doRequest(t *testing.T, h http.Handler, method, target, userID string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set(UserHeader, userID)
	}

	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) errorResponse {
	t.Helper()
	var resp errorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func sampleView() *domain.BookingView {
	return &domain.BookingView{
		ID:     100,
		ItemID: 10,
		Status: domain.BookingWaiting,
		Start:  "2026-07-01T10:00:00",
		End:    "2026-07-02T10:00:00",
		Booker: domain.UserSummary{ID: 1, Name: "renter", Email: "renter@example.com"},
		Item:   domain.ItemSummary{ID: 10, Name: "Drill", Available: true, OwnerID: 2},
	}
}

func TestHandler_CreateBooking_Success(t *testing.T) {
	d := setupRouter(t)

	d.bookings.On("Create", mock.Anything, domain.CreateBookingInput{
		ItemID: 10, Start: "2026-07-01T10:00:00", End: "2026-07-02T10:00:00",
	}, int64(1)).Return(sampleView(), nil)

	w := doRequest(t, d.router, http.MethodPost, "/bookings", "1", map[string]any{
		"itemId": 10, "start": "2026-07-01T10:00:00", "end": "2026-07-02T10:00:00",
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp domain.BookingView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(100), resp.ID)
	assert.Equal(t, domain.BookingWaiting, resp.Status)
	assert.Equal(t, "renter", resp.Booker.Name)
}

func TestHandler_MissingOrInvalidUserHeader(t *testing.T) {
	d := setupRouter(t)

	for _, user := range []string{"", "abc"} {
		w := doRequest(t, d.router, http.MethodGet, "/bookings", user, nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "InvalidRequest", decodeError(t, w).Error)
	}
}

func TestHandler_ErrorMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
		kind string
	}{
		{"not found", domain.ErrBookingNotFound, http.StatusNotFound, "NotFound"},
		{"invalid state", errors.Join(domain.ErrInvalidState, errors.New("booking visible only to renter or owner")), http.StatusConflict, "InvalidState"},
		{"invalid request", domain.ErrInvalidRequest, http.StatusBadRequest, "InvalidRequest"},
		{"internal", errors.New("db down"), http.StatusInternalServerError, "Internal"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := setupRouter(t)
			d.bookings.On("FetchForUser", mock.Anything, int64(100), int64(3)).Return(nil, tc.err)

			w := doRequest(t, d.router, http.MethodGet, "/bookings/100", "3", nil)

			assert.Equal(t, tc.code, w.Code)
			resp := decodeError(t, w)
			assert.Equal(t, tc.kind, resp.Error)
			if tc.code == http.StatusInternalServerError {
				assert.NotContains(t, resp.Description, "db down")
			}
		})
	}
}

func TestHandler_SetStatus(t *testing.T) {
	d := setupRouter(t)

	approved := sampleView()
	approved.Status = domain.BookingApproved
	d.bookings.On("SetStatus", mock.Anything, int64(100), true, int64(2)).Return(approved, nil)

	w := doRequest(t, d.router, http.MethodPatch, "/bookings/100?approved=true", "2", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"APPROVED"`)

	w = doRequest(t, d.router, http.MethodPatch, "/bookings/100?approved=maybe", "2", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(t, d.router, http.MethodPatch, "/bookings/abc?approved=true", "2", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ListBookings(t *testing.T) {
	d := setupRouter(t)

	d.bookings.On("ListForRenter", mock.Anything, int64(1), domain.StateAll).Return([]domain.BookingView{*sampleView()}, nil)
	d.bookings.On("ListForOwner", mock.Anything, int64(2), domain.StateWaiting).Return([]domain.BookingView{}, nil)

	w := doRequest(t, d.router, http.MethodGet, "/bookings", "1", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var views []domain.BookingView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &views))
	assert.Len(t, views, 1)

	w = doRequest(t, d.router, http.MethodGet, "/bookings/owner?state=waiting", "2", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	w = doRequest(t, d.router, http.MethodGet, "/bookings?state=SOMETIME", "1", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decodeError(t, w).Description, "unknown state: SOMETIME")
}

func TestHandler_Users(t *testing.T) {
	d := setupRouter(t)

	d.users.On("Create", mock.Anything, domain.CreateUserInput{Name: "Ann", Email: "ann@example.com"}).
		Return(&domain.User{ID: 1, Name: "Ann", Email: "ann@example.com"}, nil)
	d.users.On("Get", mock.Anything, int64(9)).Return(nil, domain.ErrUserNotFound)

	w := doRequest(t, d.router, http.MethodPost, "/users", "", map[string]string{"name": "Ann", "email": "ann@example.com"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":1,"name":"Ann","email":"ann@example.com"}`, w.Body.String())

	w = doRequest(t, d.router, http.MethodGet, "/users/9", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_Items(t *testing.T) {
	d := setupRouter(t)

	item := &domain.ItemView{ID: 10, Name: "Drill", Description: "Cordless", Available: true, OwnerID: 2, Comments: []domain.CommentView{}}
	d.items.On("Create", mock.Anything, domain.CreateItemInput{Name: "Drill", Description: "Cordless", Available: true}, int64(2)).Return(item, nil)
	d.items.On("Update", mock.Anything, int64(10), mock.MatchedBy(func(in domain.UpdateItemInput) bool {
		return in.Available != nil && !*in.Available && in.Name == nil
	}), int64(2)).Return(item, nil)

	w := doRequest(t, d.router, http.MethodPost, "/items", "2", map[string]any{"name": "Drill", "description": "Cordless", "available": true})
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, d.router, http.MethodPost, "/items", "2", map[string]any{"name": "Drill", "description": "Cordless"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(t, d.router, http.MethodPatch, "/items/10", "2", map[string]any{"available": false})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_AddComment(t *testing.T) {
	d := setupRouter(t)

	d.comments.On("Add", mock.Anything, int64(10), int64(1), "nice").
		Return(&domain.CommentView{ID: 1, Text: "nice", AuthorName: "renter", Created: "2026-07-05T00:00:00"}, nil)

	w := doRequest(t, d.router, http.MethodPost, "/items/10/comment", "1", map[string]string{"text": "nice"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"authorName":"renter"`)
}

func TestHandler_Health(t *testing.T) {
	d := setupRouter(t)

	w := doRequest(t, d.router, http.MethodGet, "/health", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestHandler_UserPatchAndDelete(t *testing.T) {
	d := setupRouter(t)

	d.users.On("Update", mock.Anything, int64(1), mock.MatchedBy(func(in domain.UpdateUserInput) bool {
		return in.Name == nil && in.Email != nil && *in.Email == "new@example.com"
	})).Return(&domain.User{ID: 1, Name: "Ann", Email: "new@example.com"}, nil)
	d.users.On("Delete", mock.Anything, int64(2)).Return(nil, fmt.Errorf("%w: user owns items", domain.ErrInvalidState))

	w := doRequest(t, d.router, http.MethodPatch, "/users/1", "", map[string]string{"email": "new@example.com"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":1,"name":"Ann","email":"new@example.com"}`, w.Body.String())

	w = doRequest(t, d.router, http.MethodDelete, "/users/2", "", nil)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_OwnerItemsAndSearch(t *testing.T) {
	d := setupRouter(t)

	last := "2026-07-02T10:00:00"
	d.items.On("ListByOwner", mock.Anything, int64(2)).Return([]domain.ItemView{
		{ID: 10, Name: "Drill", Available: true, OwnerID: 2, Comments: []domain.CommentView{}, LastBooking: &last},
	}, nil)
	d.items.On("Search", mock.Anything, "drill").Return([]domain.ItemView{}, nil)
	d.items.On("Delete", mock.Anything, int64(10), int64(2)).Return(nil, fmt.Errorf("%w: item has bookings", domain.ErrInvalidState))

	w := doRequest(t, d.router, http.MethodGet, "/items", "2", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"lastBooking":"2026-07-02T10:00:00"`)
	assert.Contains(t, w.Body.String(), `"nextBooking":null`)

	w = doRequest(t, d.router, http.MethodGet, "/items/search?text=drill", "2", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	w = doRequest(t, d.router, http.MethodDelete, "/items/10", "2", nil)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_Requests(t *testing.T) {
	d := setupRouter(t)

	view := &domain.RequestView{ID: 5, Text: "Need a ladder", Description: "Three metres", Created: "2026-06-15T12:00:00", Items: []domain.ItemView{}}
	d.requests.On("Create", mock.Anything, domain.CreateRequestInput{Text: "Need a ladder", Description: "Three metres"}, int64(1)).Return(view, nil)
	d.requests.On("ListOwn", mock.Anything, int64(1)).Return([]domain.RequestView{*view}, nil)
	d.requests.On("ListOthers", mock.Anything, int64(2)).Return([]domain.RequestView{*view}, nil)
	d.requests.On("Get", mock.Anything, int64(6)).Return(nil, domain.ErrRequestNotFound)

	w := doRequest(t, d.router, http.MethodPost, "/requests", "1", map[string]string{"text": "Need a ladder", "description": "Three metres"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"items":[]`)

	w = doRequest(t, d.router, http.MethodGet, "/requests", "1", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, d.router, http.MethodGet, "/requests/all", "2", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, d.router, http.MethodGet, "/requests/6", "1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(t, d.router, http.MethodGet, "/requests", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRecoverer_LogsPanicAsJSONError(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&logs, nil))

	h := middleware.RequestID(recoverer(logger)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/items/1", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Internal","description":"internal server error"}`, w.Body.String())
	assert.Contains(t, logs.String(), `"msg":"panic recovered"`)
	assert.Contains(t, logs.String(), `"error":"boom"`)
	assert.Regexp(t, `"request_id":"[^"]+"`, logs.String())
}
