package category

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mrodrig/grana/internal/transaction"
)

var ErrNotFound = errors.New("category not found")

// Category classifies transactions. System default categories have no
// owner and are visible to every user.
type Category struct {
	ID        uuid.UUID
	Name      string
	Type      transaction.Type
	Color     string
	Icon      string
	UserID    *uuid.UUID
	Default   bool
	CreatedAt time.Time
}

func (c *Category) OwnerID() (uuid.UUID, bool) {
	if c.UserID == nil {
		return uuid.Nil, false
	}

	return *c.UserID, true
}

// Shared marks default categories as owned by everyone.
func (c *Category) Shared() bool { return c.Default }

// Match returns the first category whose name equals name, ignoring case.
// Returns nil when there is no match.
func Match(cats []*Category, name string) *Category {
	for _, c := range cats {
		if strings.EqualFold(c.Name, name) {
			return c
		}
	}

	return nil
}
