package investment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mrodrig/grana/internal/ownership"
	"github.com/mrodrig/grana/internal/transaction"
)

//go:generate mockgen -source=service.go -destination=service_mock.go -package=investment
type Repository interface {
	GetInvestment(ctx context.Context, id uuid.UUID) (*Investment, error)
	CreateMovement(ctx context.Context, m *Movement) error
	ListMovements(ctx context.Context, investmentID uuid.UUID) ([]*Movement, error)
}

// Synthesizer posts the ledger counterpart of a movement.
type Synthesizer interface {
	FromMovement(ctx context.Context, m *Movement, inv *Investment, userID uuid.UUID) (*transaction.Transaction, error)
}

type Service struct {
	repo  Repository
	synth Synthesizer
}

func NewService(repo Repository, synth Synthesizer) *Service {
	return &Service{repo: repo, synth: synth}
}

func (s *Service) Get(ctx context.Context, userID, id uuid.UUID) (*Investment, error) {
	inv, err := s.repo.GetInvestment(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := ownership.Assert(inv, userID); err != nil {
		return nil, err
	}

	return inv, nil
}

// Valuation computes the derived view of the position at the given market
// price. The price comes from an external source and may be zero when the
// quote is unknown.
func (s *Service) Valuation(ctx context.Context, userID, id uuid.UUID, currentPrice decimal.Decimal) (Valuation, error) {
	inv, err := s.Get(ctx, userID, id)
	if err != nil {
		return Valuation{}, err
	}

	return Valuate(inv, currentPrice)
}

type MovementParams struct {
	InvestmentID uuid.UUID
	Kind         MovementKind
	Quantity     decimal.Decimal
	UnitPrice    decimal.Decimal
	Amount       decimal.Decimal
	Fees         *decimal.Decimal
	Date         time.Time
}

// RecordMovement persists the movement and then posts its ledger
// counterpart. The movement is durable before synthesis starts, so a
// synthesis failure returns the saved movement together with a retryable
// error instead of rolling anything back.
func (s *Service) RecordMovement(ctx context.Context, userID uuid.UUID, params MovementParams) (*Movement, *transaction.Transaction, error) {
	if !params.Kind.Valid() {
		return nil, nil, fmt.Errorf("%w: unknown movement kind %q", ErrInvalidState, params.Kind)
	}

	if params.Quantity.IsNegative() || params.Amount.IsNegative() {
		return nil, nil, fmt.Errorf("%w: negative quantity or amount", ErrInvalidState)
	}

	inv, err := s.repo.GetInvestment(ctx, params.InvestmentID)
	if err != nil {
		return nil, nil, err
	}

	if err := ownership.Assert(inv, userID); err != nil {
		return nil, nil, err
	}

	fees := decimal.Zero
	if params.Fees != nil {
		fees = *params.Fees
	}

	mv := &Movement{
		InvestmentID: inv.ID,
		UserID:       userID,
		Kind:         params.Kind,
		Quantity:     params.Quantity,
		UnitPrice:    params.UnitPrice,
		Amount:       params.Amount,
		Fees:         fees,
		Date:         params.Date,
	}

	if err := s.repo.CreateMovement(ctx, mv); err != nil {
		return nil, nil, fmt.Errorf("creating movement: %w", err)
	}

	tx, err := s.synth.FromMovement(ctx, mv, inv, userID)
	if err != nil {
		return mv, nil, fmt.Errorf("posting ledger entry for movement %s: %w", mv.ID, err)
	}

	return mv, tx, nil
}

func (s *Service) Movements(ctx context.Context, userID, investmentID uuid.UUID) ([]*Movement, error) {
	if _, err := s.Get(ctx, userID, investmentID); err != nil {
		return nil, err
	}

	return s.repo.ListMovements(ctx, investmentID)
}
