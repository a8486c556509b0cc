package objective

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrNotFound = errors.New("objective not found")

// Type distinguishes what an objective measures. Category limits cap
// spending; the other two accumulate towards a target.
type Type string

const (
	TypeCategoryLimit  Type = "category_limit"
	TypeMonthlySavings Type = "monthly_savings"
	TypeInvestmentGoal Type = "investment_goal"
)

// Alert is the 4-state classification of an objective's progress.
type Alert string

const (
	AlertNone      Alert = "none"
	AlertYellow    Alert = "yellow"
	AlertRed       Alert = "red"
	AlertCompleted Alert = "completed"
)

// Objective is a savings goal or spending cap for a "YYYY-MM" period.
type Objective struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Type          Type
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
	CategoryID    *uuid.UUID
	Period        string
	Active        bool
	CreatedAt     time.Time
	UpdatedAt     *time.Time
}

func (o *Objective) OwnerID() (uuid.UUID, bool) {
	if o.UserID == uuid.Nil {
		return uuid.Nil, false
	}

	return o.UserID, true
}
