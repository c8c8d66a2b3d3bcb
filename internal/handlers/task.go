package handlers

import (
	"errors"
	"net/http"

	"taskboard/internal/models"
	"taskboard/internal/store"
)

// TasksResponse is the collection envelope for task listings.
type TasksResponse struct {
	Tasks []models.Task `json:"tasks"`
	Count int           `json:"count"`
}

// GetTasks returns tasks, optionally filtered by the status and userId
// query parameters.
func (h *Handlers) GetTasks(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	ownerID := r.URL.Query().Get("userId")

	tasks, err := h.store.GetTasks(r.Context(), status, ownerID)
	if err != nil {
		h.respondStoreError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, TasksResponse{Tasks: tasks, Count: len(tasks)})
}

// checkOwnerExists verifies that a non-zero owner references an
// existing user, writing a 400 response if it does not. The store does
// not enforce this itself.
func (h *Handlers) checkOwnerExists(w http.ResponseWriter, r *http.Request, ownerID int64) bool {
	if ownerID == 0 {
		return true
	}
	if _, err := h.store.GetUserByID(r.Context(), ownerID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			h.respondError(w, http.StatusBadRequest, "userId does not reference an existing user")
			return false
		}
		h.respondStoreError(w, err)
		return false
	}
	return true
}

// CreateTask validates and stores a new task.
func (h *Handlers) CreateTask(w http.ResponseWriter, r *http.Request) {
	var task models.Task
	if !h.decodeBody(w, r, &task) {
		return
	}
	if !h.validateStruct(w, &task) {
		return
	}
	if !h.checkOwnerExists(w, r, task.OwnerID) {
		return
	}

	created, err := h.store.CreateTask(r.Context(), task)
	if err != nil {
		h.respondStoreError(w, err)
		return
	}
	h.respondJSON(w, http.StatusCreated, created)
}

// UpdateTask applies a partial update to an existing task. Fields
// omitted from the body keep their current values.
func (h *Handlers) UpdateTask(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid task id")
		return
	}

	var patch models.Task
	if !h.decodeBody(w, r, &patch) {
		return
	}
	if !h.checkOwnerExists(w, r, patch.OwnerID) {
		return
	}

	updated, err := h.store.UpdateTask(r.Context(), id, patch)
	if err != nil {
		h.respondStoreError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, updated)
}
