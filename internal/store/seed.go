package store

import "taskboard/internal/models"

// seededIDs is the number of sample rows placed in each table; the
// allocators start just past them.
const seededIDs = 3

// NewSeededStore returns a store pre-populated with the sample users
// and tasks the service ships with. The next allocated ID for either
// kind is 4.
func NewSeededStore() *MemoryStore {
	s := NewMemoryStore(seededIDs + 1)

	s.users.Insert(1, models.User{ID: 1, Name: "John Doe", Email: "john@example.com", Role: "developer"})
	s.users.Insert(2, models.User{ID: 2, Name: "Jane Smith", Email: "jane@example.com", Role: "designer"})
	s.users.Insert(3, models.User{ID: 3, Name: "Bob Johnson", Email: "bob@example.com", Role: "manager"})

	s.tasks.Insert(1, models.Task{ID: 1, Title: "Implement authentication", Status: models.StatusPending, OwnerID: 1})
	s.tasks.Insert(2, models.Task{ID: 2, Title: "Design user interface", Status: models.StatusInProgress, OwnerID: 2})
	s.tasks.Insert(3, models.Task{ID: 3, Title: "Review code changes", Status: models.StatusCompleted, OwnerID: 3})

	return s
}
