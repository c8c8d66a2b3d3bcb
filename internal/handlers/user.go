package handlers

import (
	"net/http"

	"taskboard/internal/models"
)

// UsersResponse is the collection envelope for user listings.
type UsersResponse struct {
	Users []models.User `json:"users"`
	Count int           `json:"count"`
}

// GetUsers returns all users.
func (h *Handlers) GetUsers(w http.ResponseWriter, r *http.Request) {
	users := h.store.GetUsers(r.Context())
	h.respondJSON(w, http.StatusOK, UsersResponse{Users: users, Count: len(users)})
}

// GetUserByID returns a single user by ID.
func (h *Handlers) GetUserByID(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	user, err := h.store.GetUserByID(r.Context(), id)
	if err != nil {
		h.respondStoreError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, user)
}

// CreateUser validates and stores a new user.
func (h *Handlers) CreateUser(w http.ResponseWriter, r *http.Request) {
	var user models.User
	if !h.decodeBody(w, r, &user) {
		return
	}
	if !h.validateStruct(w, &user) {
		return
	}

	created, err := h.store.CreateUser(r.Context(), user)
	if err != nil {
		h.respondStoreError(w, err)
		return
	}
	h.respondJSON(w, http.StatusCreated, created)
}
