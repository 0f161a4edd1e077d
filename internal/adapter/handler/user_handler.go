package handler

import (
	"net/http"

	"github.com/srgjo27/shareit/internal/core/domain"
)

type userRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type userPatchRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	var req userRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	ctx, cancel := h.requestContext(r)
	defer cancel()

	user, err := h.users.Create(ctx, domain.CreateUserInput{Name: req.Name, Email: req.Email})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, user.Summary())
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	ctx, cancel := h.requestContext(r)
	defer cancel()

	user, err := h.users.Get(ctx, userID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, user.Summary())
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	var req userPatchRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	ctx, cancel := h.requestContext(r)
	defer cancel()

	user, err := h.users.Update(ctx, userID, domain.UpdateUserInput{Name: req.Name, Email: req.Email})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, user.Summary())
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	ctx, cancel := h.requestContext(r)
	defer cancel()

	user, err := h.users.Delete(ctx, userID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, user.Summary())
}
