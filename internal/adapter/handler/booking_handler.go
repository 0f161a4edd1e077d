package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/srgjo27/shareit/internal/core/domain"
)

type bookingRequest struct {
	ItemID int64                `json:"itemId"`
	Start  string               `json:"start"`
	End    string               `json:"end"`
	Status domain.BookingStatus `json:"status,omitempty"`
}

func (h *Handler) createBooking(w http.ResponseWriter, r *http.Request) {
	userID, err := actingUser(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	var req bookingRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	ctx, cancel := h.requestContext(r)
	defer cancel()

	view, err := h.bookings.Create(ctx, domain.CreateBookingInput{
		ItemID: req.ItemID,
		Start:  req.Start,
		End:    req.End,
		Status: req.Status,
	}, userID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, view)
}

func (h *Handler) setBookingStatus(w http.ResponseWriter, r *http.Request) {
	userID, err := actingUser(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	bookingID, err := pathID(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	approved, err := strconv.ParseBool(r.URL.Query().Get("approved"))
	if err != nil {
		h.handleError(w, r, badRequest("approved must be true or false"))
		return
	}

	ctx, cancel := h.requestContext(r)
	defer cancel()

	view, err := h.bookings.SetStatus(ctx, bookingID, approved, userID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, view)
}

func (h *Handler) getBooking(w http.ResponseWriter, r *http.Request) {
	userID, err := actingUser(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	bookingID, err := pathID(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	ctx, cancel := h.requestContext(r)
	defer cancel()

	view, err := h.bookings.FetchForUser(ctx, bookingID, userID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, view)
}

func (h *Handler) listRenterBookings(w http.ResponseWriter, r *http.Request) {
	h.listBookings(w, r, h.bookings.ListForRenter)
}

func (h *Handler) listOwnerBookings(w http.ResponseWriter, r *http.Request) {
	h.listBookings(w, r, h.bookings.ListForOwner)
}

type listFunc func(ctx context.Context, userID int64, state domain.BookingState) ([]domain.BookingView, error)

func (h *Handler) listBookings(w http.ResponseWriter, r *http.Request, list listFunc) {
	userID, err := actingUser(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	state, err := domain.ParseBookingState(r.URL.Query().Get("state"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	ctx, cancel := h.requestContext(r)
	defer cancel()

	views, err := list(ctx, userID, state)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, views)
}
