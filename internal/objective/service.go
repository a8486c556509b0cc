package objective

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mrodrig/grana/internal/ownership"
)

//go:generate mockgen -source=service.go -destination=service_mock.go -package=objective
type Repository interface {
	GetObjective(ctx context.Context, id uuid.UUID) (*Objective, error)
	ListActive(ctx context.Context, userID uuid.UUID) ([]*Objective, error)
	UpdateCurrentAmount(ctx context.Context, id uuid.UUID, amount decimal.Decimal) error
}

// SpendingReader reads aggregated spend from the ledger. Implemented by
// the transaction store's read model.
type SpendingReader interface {
	SpentInPeriod(ctx context.Context, userID, categoryID uuid.UUID, period string) (decimal.Decimal, error)
}

type Service struct {
	repo     Repository
	spending SpendingReader
}

func NewService(repo Repository, spending SpendingReader) *Service {
	return &Service{repo: repo, spending: spending}
}

func (s *Service) Get(ctx context.Context, userID, id uuid.UUID) (*Objective, error) {
	o, err := s.repo.GetObjective(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := ownership.Assert(o, userID); err != nil {
		return nil, err
	}

	return o, nil
}

// Progress returns the objective's derived progress. For category limits
// the current amount is not client-reported: it is refreshed from the
// period's actual spend before computing.
func (s *Service) Progress(ctx context.Context, userID, id uuid.UUID) (*Objective, Progress, error) {
	o, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, Progress{}, err
	}

	if o.Type == TypeCategoryLimit && o.CategoryID != nil {
		spent, err := s.spending.SpentInPeriod(ctx, o.UserID, *o.CategoryID, o.Period)
		if err != nil {
			return nil, Progress{}, fmt.Errorf("reading period spend: %w", err)
		}

		if !spent.Equal(o.CurrentAmount) {
			o.CurrentAmount = spent

			if err := s.repo.UpdateCurrentAmount(ctx, o.ID, spent); err != nil {
				return nil, Progress{}, fmt.Errorf("refreshing current amount: %w", err)
			}
		}
	}

	return o, ProgressOf(o), nil
}

func (s *Service) ListActive(ctx context.Context, userID uuid.UUID) ([]*Objective, error) {
	return s.repo.ListActive(ctx, userID)
}
