package recurring

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mrodrig/grana/internal/transaction"
)

var (
	ErrNotFound     = errors.New("schedule not found")
	ErrInvalidState = errors.New("invalid schedule state")
)

// Frequency is how often a schedule fires.
type Frequency string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
	FrequencyAnnual  Frequency = "annual"
)

func (f Frequency) Valid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly, FrequencyAnnual:
		return true
	}

	return false
}

// Schedule is a template that periodically generates a transaction.
// NextOccurrence is owned by the recurrence calculator: it is derived from
// the start date on creation and advanced on every firing, never set by a
// caller directly.
type Schedule struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	CategoryID     uuid.UUID
	Kind           transaction.Type
	Amount         decimal.Decimal
	Description    string
	PaymentMethod  transaction.PaymentMethod
	StartDate      time.Time
	EndDate        *time.Time
	Frequency      Frequency
	DayOfMonth     *int
	NextOccurrence time.Time
	Active         bool
	CreatedAt      time.Time
	UpdatedAt      *time.Time
}

func (s *Schedule) OwnerID() (uuid.UUID, bool) {
	if s.UserID == uuid.Nil {
		return uuid.Nil, false
	}

	return s.UserID, true
}

func (s *Schedule) dayOfMonth() int {
	if s.DayOfMonth == nil {
		return 0
	}

	return *s.DayOfMonth
}
