package models

// User represents a registered member that tasks can be assigned to.
// Users are immutable once created and are never deleted.
type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role" validate:"required"`
}

// Equal reports whether two users carry the same data. Duplicate
// detection runs before an ID is assigned, so only the descriptive
// fields participate.
func (u User) Equal(other User) bool {
	return u.Name == other.Name &&
		u.Email == other.Email &&
		u.Role == other.Role
}
