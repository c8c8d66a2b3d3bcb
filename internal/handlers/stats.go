package handlers

import "net/http"

// StatsResponse mirrors the wire shape of the stats endpoint: user and
// task counts grouped per entity kind.
type StatsResponse struct {
	Users UserStats `json:"users"`
	Tasks TaskStats `json:"tasks"`
}

type UserStats struct {
	Total int `json:"total"`
}

type TaskStats struct {
	Total      int `json:"total"`
	Pending    int `json:"pending"`
	InProgress int `json:"inProgress"`
	Completed  int `json:"completed"`
}

// GetStats returns aggregate counts over the current store contents.
func (h *Handlers) GetStats(w http.ResponseWriter, r *http.Request) {
	summary := h.store.GetStats(r.Context())
	h.respondJSON(w, http.StatusOK, StatsResponse{
		Users: UserStats{Total: summary.UserTotal},
		Tasks: TaskStats{
			Total:      summary.TaskTotal,
			Pending:    summary.Pending,
			InProgress: summary.InProgress,
			Completed:  summary.Completed,
		},
	})
}
