package store

import (
	"context"
	"strconv"
	"sync"

	"taskboard/internal/models"
)

// MemoryStore implements Store entirely in memory: concurrent tables
// keyed by allocator-issued IDs, with a read-through cache invalidated
// on every mutation. It performs no I/O and never blocks on anything
// but its own locks.
type MemoryStore struct {
	users *table[models.User]
	tasks *table[models.Task]

	userIDs *idAllocator
	taskIDs *idAllocator

	// createMu serializes the duplicate scan with the subsequent insert
	// for each entity kind, so two equal candidates racing through
	// create can never both land in a table.
	userCreateMu sync.Mutex
	taskCreateMu sync.Mutex

	cache *cache
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore returns an empty store whose allocators start at seed
// for both entity kinds.
func NewMemoryStore(seed int64) *MemoryStore {
	return &MemoryStore{
		users:   newTable[models.User](),
		tasks:   newTable[models.Task](),
		userIDs: newIDAllocator(seed),
		taskIDs: newIDAllocator(seed),
		cache:   newCache(),
	}
}

// GetUsers returns a snapshot of all users, cached until the next user
// mutation.
func (s *MemoryStore) GetUsers(ctx context.Context) []models.User {
	v := s.cache.GetOrCompute(cacheUsers, "all", func() any {
		return s.users.All()
	})
	return v.([]models.User)
}

type userLookup struct {
	user  models.User
	found bool
}

// GetUserByID returns the user with the given ID, or ErrUserNotFound.
func (s *MemoryStore) GetUserByID(ctx context.Context, id int64) (models.User, error) {
	v := s.cache.GetOrCompute(cacheUserByID, strconv.FormatInt(id, 10), func() any {
		u, ok := s.users.Get(id)
		return userLookup{user: u, found: ok}
	})
	lookup := v.(userLookup)
	if !lookup.found {
		return models.User{}, ErrUserNotFound
	}
	return lookup.user, nil
}

// CreateUser assigns the next user ID and stores the candidate, unless
// an equal user already exists. On duplicate no ID is consumed and no
// cache entry is touched.
func (s *MemoryStore) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	s.userCreateMu.Lock()
	defer s.userCreateMu.Unlock()

	if s.users.Contains(user.Equal) {
		return models.User{}, ErrUserExists
	}
	user.ID = s.userIDs.Next()
	s.users.Insert(user.ID, user)
	s.cache.Invalidate(cacheUsers, cacheUserByID, cacheStats)
	return user, nil
}

// GetTasks returns the tasks matching the optional status and owner
// filters, cached per filter combination until the next task mutation.
func (s *MemoryStore) GetTasks(ctx context.Context, status, ownerID string) ([]models.Task, error) {
	owner, hasOwner, err := parseOwnerFilter(ownerID)
	if err != nil {
		return nil, err
	}
	v := s.cache.GetOrCompute(cacheTasks, status+"|"+ownerID, func() any {
		return filterTasks(s.tasks.All(), status, owner, hasOwner)
	})
	return v.([]models.Task), nil
}

// CreateTask assigns the next task ID and stores the candidate, unless
// a task with the same title, status and owner already exists.
func (s *MemoryStore) CreateTask(ctx context.Context, task models.Task) (models.Task, error) {
	s.taskCreateMu.Lock()
	defer s.taskCreateMu.Unlock()

	if s.tasks.Contains(task.Equal) {
		return models.Task{}, ErrTaskExists
	}
	task.ID = s.taskIDs.Next()
	s.tasks.Insert(task.ID, task)
	s.cache.Invalidate(cacheTasks, cacheStats)
	return task, nil
}

// UpdateTask applies a partial update to the task with the given ID and
// returns the result, or ErrTaskNotFound if the ID is absent. Fields
// left zero in the patch keep their current values.
func (s *MemoryStore) UpdateTask(ctx context.Context, id int64, patch models.Task) (models.Task, error) {
	updated, ok := s.tasks.Update(id, func(existing models.Task) models.Task {
		return existing.Merge(patch)
	})
	if !ok {
		return models.Task{}, ErrTaskNotFound
	}
	s.cache.Invalidate(cacheTasks, cacheStats)
	return updated, nil
}

// GetStats returns aggregate counts over the current contents, cached
// until any mutation.
func (s *MemoryStore) GetStats(ctx context.Context) StatsSummary {
	v := s.cache.GetOrCompute(cacheStats, "summary", func() any {
		return computeStats(s.users.Len(), s.tasks.All())
	})
	return v.(StatsSummary)
}
