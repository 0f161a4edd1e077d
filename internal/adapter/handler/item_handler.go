package handler

import (
	"net/http"

	"github.com/srgjo27/shareit/internal/core/domain"
)

type itemRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   *bool  `json:"available"`
	RequestID   *int64 `json:"requestId"`
}

type itemPatchRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Available   *bool   `json:"available"`
}

type commentRequest struct {
	Text string `json:"text"`
}

func (h *Handler) createItem(w http.ResponseWriter, r *http.Request) {
	userID, err := actingUser(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	var req itemRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}
	if req.Available == nil {
		h.handleError(w, r, badRequest("available is required"))
		return
	}

	ctx, cancel := h.requestContext(r)
	defer cancel()

	view, err := h.items.Create(ctx, domain.CreateItemInput{
		Name:        req.Name,
		Description: req.Description,
		Available:   *req.Available,
		RequestID:   req.RequestID,
	}, userID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, view)
}

func (h *Handler) getItem(w http.ResponseWriter, r *http.Request) {
	itemID, err := pathID(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	ctx, cancel := h.requestContext(r)
	defer cancel()

	view, err := h.items.Get(ctx, itemID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, view)
}

func (h *Handler) updateItem(w http.ResponseWriter, r *http.Request) {
	userID, err := actingUser(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	itemID, err := pathID(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	var req itemPatchRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	ctx, cancel := h.requestContext(r)
	defer cancel()

	view, err := h.items.Update(ctx, itemID, domain.UpdateItemInput{
		Name:        req.Name,
		Description: req.Description,
		Available:   req.Available,
	}, userID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, view)
}

func (h *Handler) deleteItem(w http.ResponseWriter, r *http.Request) {
	userID, err := actingUser(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	itemID, err := pathID(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	ctx, cancel := h.requestContext(r)
	defer cancel()

	view, err := h.items.Delete(ctx, itemID, userID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, view)
}

func (h *Handler) listOwnerItems(w http.ResponseWriter, r *http.Request) {
	userID, err := actingUser(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	ctx, cancel := h.requestContext(r)
	defer cancel()

	views, err := h.items.ListByOwner(ctx, userID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, views)
}

func (h *Handler) searchItems(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	views, err := h.items.Search(ctx, r.URL.Query().Get("text"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, views)
}

func (h *Handler) addComment(w http.ResponseWriter, r *http.Request) {
	userID, err := actingUser(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	itemID, err := pathID(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	var req commentRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	ctx, cancel := h.requestContext(r)
	defer cancel()

	view, err := h.comments.Add(ctx, itemID, userID, req.Text)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, view)
}
