package store

import (
	"context"

	"taskboard/internal/models"
)

// Store defines the operation contract consumed by the HTTP layer.
// All mutations go through this interface; nothing else may touch the
// underlying tables.
type Store interface {
	// User operations
	GetUsers(ctx context.Context) []models.User
	GetUserByID(ctx context.Context, id int64) (models.User, error)
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// Task operations
	GetTasks(ctx context.Context, status, ownerID string) ([]models.Task, error)
	CreateTask(ctx context.Context, task models.Task) (models.Task, error)
	UpdateTask(ctx context.Context, id int64, patch models.Task) (models.Task, error)

	// Aggregates
	GetStats(ctx context.Context) StatsSummary
}
