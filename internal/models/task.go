package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Status is the lifecycle state of a task. The canonical wire form is
// lowercase with hyphens ("pending", "in-progress", "completed").
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
)

// AllowedStatuses returns the canonical string forms accepted by ParseStatus,
// in declaration order. Useful for client-facing error messages.
func AllowedStatuses() []string {
	return []string{
		string(StatusPending),
		string(StatusInProgress),
		string(StatusCompleted),
	}
}

// InvalidStatusError reports a status string outside the closed
// enumeration, along with the values that would have been accepted.
type InvalidStatusError struct {
	Value   string
	Allowed []string
}

func (e *InvalidStatusError) Error() string {
	return fmt.Sprintf("invalid status: %s", e.Value)
}

// ParseStatus converts an external status string into a Status.
// Matching is case-insensitive; unknown values yield an *InvalidStatusError.
func ParseStatus(v string) (Status, error) {
	for _, s := range AllowedStatuses() {
		if strings.EqualFold(v, s) {
			return Status(s), nil
		}
	}
	return "", &InvalidStatusError{Value: v, Allowed: AllowedStatuses()}
}

// UnmarshalJSON parses the wire form through ParseStatus so that a request
// body with an unknown status fails decoding with the allowed values attached.
func (s *Status) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParseStatus(raw)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Task represents a unit of work, optionally assigned to a user.
// OwnerID 0 means unassigned. Tasks are never deleted.
type Task struct {
	ID      int64  `json:"id"`
	Title   string `json:"title" validate:"required"`
	Status  Status `json:"status" validate:"required"`
	OwnerID int64  `json:"userId"`
}

// Equal reports whether two tasks describe the same work item.
// The ID is excluded: two tasks with the same title, status and owner
// are duplicates regardless of when they were created.
func (t Task) Equal(other Task) bool {
	return t.Title == other.Title &&
		t.Status == other.Status &&
		t.OwnerID == other.OwnerID
}

// Merge applies a partial update, overwriting only the fields that are
// set in the patch. Zero values (empty title, empty status, owner 0)
// mean "leave unchanged", not "clear".
func (t Task) Merge(patch Task) Task {
	if patch.Title != "" {
		t.Title = patch.Title
	}
	if patch.Status != "" {
		t.Status = patch.Status
	}
	if patch.OwnerID != 0 {
		t.OwnerID = patch.OwnerID
	}
	return t
}
