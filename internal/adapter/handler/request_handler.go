package handler

import (
	"context"
	"net/http"

	"github.com/srgjo27/shareit/internal/core/domain"
)

type itemRequestBody struct {
	Text        string `json:"text"`
	Description string `json:"description"`
}

func (h *Handler) createRequest(w http.ResponseWriter, r *http.Request) {
	userID, err := actingUser(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	var req itemRequestBody
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	ctx, cancel := h.requestContext(r)
	defer cancel()

	view, err := h.requests.Create(ctx, domain.CreateRequestInput{Text: req.Text, Description: req.Description}, userID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, view)
}

func (h *Handler) listOwnRequests(w http.ResponseWriter, r *http.Request) {
	h.listRequests(w, r, h.requests.ListOwn)
}

func (h *Handler) listOtherRequests(w http.ResponseWriter, r *http.Request) {
	h.listRequests(w, r, h.requests.ListOthers)
}

func (h *Handler) listRequests(w http.ResponseWriter, r *http.Request, list func(ctx context.Context, userID int64) ([]domain.RequestView, error)) {
	userID, err := actingUser(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	ctx, cancel := h.requestContext(r)
	defer cancel()

	views, err := list(ctx, userID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, views)
}

func (h *Handler) getRequest(w http.ResponseWriter, r *http.Request) {
	if _, err := actingUser(r); err != nil {
		h.handleError(w, r, err)
		return
	}

	requestID, err := pathID(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	ctx, cancel := h.requestContext(r)
	defer cancel()

	view, err := h.requests.Get(ctx, requestID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, view)
}
