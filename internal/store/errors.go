package store

import (
	"errors"
	"fmt"
)

// Common store errors. Handlers translate these into HTTP status codes;
// the store itself never maps to protocol concerns.
var (
	// ErrNotFound is returned when a requested entity does not exist.
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when a create would add an entity equal
	// to one already in the store.
	ErrDuplicate = errors.New("entity already exists")

	// ErrInvalidQueryParam is returned when a filter argument cannot be
	// parsed, e.g. a non-numeric owner filter.
	ErrInvalidQueryParam = errors.New("invalid query parameter")

	// Entity-specific variants, wrapping the generic sentinels so that
	// errors.Is works against either form.

	ErrUserNotFound = fmt.Errorf("%w: user", ErrNotFound)
	ErrTaskNotFound = fmt.Errorf("%w: task", ErrNotFound)
	ErrUserExists   = fmt.Errorf("%w: user", ErrDuplicate)
	ErrTaskExists   = fmt.Errorf("%w: task", ErrDuplicate)
)
