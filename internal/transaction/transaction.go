package transaction

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrNotFound = errors.New("transaction not found")

// Type represents the type of transaction (income or expense).
type Type string

const (
	TypeIncome  Type = "income"
	TypeExpense Type = "expense"
)

// PaymentMethod represents how a transaction was paid.
type PaymentMethod string

const (
	PaymentCash       PaymentMethod = "cash"
	PaymentDebitCard  PaymentMethod = "debit_card"
	PaymentCreditCard PaymentMethod = "credit_card"
	PaymentTransfer   PaymentMethod = "transfer"
	PaymentPix        PaymentMethod = "pix"
)

// Transaction represents a posted ledger entry. Entries are created either
// by the user (out of scope here) or synthesized from a recurring schedule
// or an investment movement, in which case ScheduleID or InvestmentID
// points back at the source.
type Transaction struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	CategoryID    uuid.UUID
	Amount        decimal.Decimal
	Type          Type
	Description   string
	PaymentMethod PaymentMethod
	Date          time.Time
	ScheduleID    *uuid.UUID
	InvestmentID  *uuid.UUID
	CreatedAt     time.Time
	UpdatedAt     *time.Time
	DeletedAt     *time.Time
}

func (t *Transaction) OwnerID() (uuid.UUID, bool) {
	if t.UserID == uuid.Nil {
		return uuid.Nil, false
	}

	return t.UserID, true
}
