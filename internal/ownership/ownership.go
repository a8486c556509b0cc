package ownership

import (
	"errors"

	"github.com/google/uuid"
)

// ErrAccessDenied is returned when a user tries to act on a resource
// they do not own.
var ErrAccessDenied = errors.New("access denied")

// Resource is anything with an owner. The bool result is false when the
// resource has no owner recorded, which is never treated as owned.
type Resource interface {
	OwnerID() (uuid.UUID, bool)
}

// Shared resources (system default categories) are owned by everyone.
type Shared interface {
	Shared() bool
}

func IsOwned(res Resource, userID uuid.UUID) bool {
	if s, ok := res.(Shared); ok && s.Shared() {
		return true
	}

	owner, ok := res.OwnerID()
	if !ok {
		return false
	}

	return owner == userID
}

// Assert returns ErrAccessDenied unless userID owns res.
func Assert(res Resource, userID uuid.UUID) error {
	if !IsOwned(res, userID) {
		return ErrAccessDenied
	}

	return nil
}
