package investment

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrNotFound     = errors.New("investment not found")
	ErrInvalidState = errors.New("invalid investment state")
)

// Investment is a held asset position. CurrentPrice is supplied by an
// external pricing source at read time and is never persisted.
type Investment struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Name          string
	Symbol        string
	Quantity      decimal.Decimal
	AveragePrice  decimal.Decimal
	TotalInvested decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     *time.Time
}

func (i *Investment) OwnerID() (uuid.UUID, bool) {
	if i.UserID == uuid.Nil {
		return uuid.Nil, false
	}

	return i.UserID, true
}

// MovementKind is what happened to the position.
type MovementKind string

const (
	MovementPurchase   MovementKind = "purchase"
	MovementSale       MovementKind = "sale"
	MovementDividend   MovementKind = "dividend"
	MovementYield      MovementKind = "yield"
	MovementAdjustment MovementKind = "adjustment"
)

func (k MovementKind) Valid() bool {
	switch k {
	case MovementPurchase, MovementSale, MovementDividend, MovementYield, MovementAdjustment:
		return true
	}

	return false
}

// Label is the human-readable form used in synthesized descriptions.
func (k MovementKind) Label() string {
	switch k {
	case MovementPurchase:
		return "Purchase"
	case MovementSale:
		return "Sale"
	case MovementDividend:
		return "Dividend"
	case MovementYield:
		return "Yield"
	case MovementAdjustment:
		return "Adjustment"
	}

	return string(k)
}

// Movement records a single event on an investment. Fees default to zero
// when absent.
type Movement struct {
	ID           uuid.UUID
	InvestmentID uuid.UUID
	UserID       uuid.UUID
	Kind         MovementKind
	Quantity     decimal.Decimal
	UnitPrice    decimal.Decimal
	Amount       decimal.Decimal
	Fees         decimal.Decimal
	Date         time.Time
	CreatedAt    time.Time
}

func (m *Movement) OwnerID() (uuid.UUID, bool) {
	if m.UserID == uuid.Nil {
		return uuid.Nil, false
	}

	return m.UserID, true
}
