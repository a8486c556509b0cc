package recurring

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mrodrig/grana/internal/ownership"
	"github.com/mrodrig/grana/internal/transaction"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=recurring
type Repository interface {
	CreateSchedule(ctx context.Context, s *Schedule) error
	GetSchedule(ctx context.Context, id uuid.UUID) (*Schedule, error)
	UpdateSchedule(ctx context.Context, s *Schedule) error
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
	ListSchedules(ctx context.Context, userID uuid.UUID) ([]*Schedule, error)
	FindDue(ctx context.Context, asOf time.Time) ([]*Schedule, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	UserID        uuid.UUID
	CategoryID    uuid.UUID
	Kind          transaction.Type
	Amount        decimal.Decimal
	Description   string
	PaymentMethod transaction.PaymentMethod
	StartDate     time.Time
	EndDate       *time.Time
	Frequency     Frequency
	DayOfMonth    *int
}

// Create persists a new schedule with its first occurrence derived from
// the start date.
func (s *Service) Create(ctx context.Context, params CreateParams) (*Schedule, error) {
	dom := 0
	if params.DayOfMonth != nil {
		dom = *params.DayOfMonth
	}

	next, err := InitialOccurrence(params.StartDate, params.Frequency, dom)
	if err != nil {
		return nil, err
	}

	sched := &Schedule{
		UserID:         params.UserID,
		CategoryID:     params.CategoryID,
		Kind:           params.Kind,
		Amount:         params.Amount,
		Description:    params.Description,
		PaymentMethod:  params.PaymentMethod,
		StartDate:      params.StartDate,
		EndDate:        params.EndDate,
		Frequency:      params.Frequency,
		DayOfMonth:     params.DayOfMonth,
		NextOccurrence: next,
		Active:         true,
	}

	if err := s.repo.CreateSchedule(ctx, sched); err != nil {
		return nil, fmt.Errorf("creating schedule: %w", err)
	}

	return sched, nil
}

func (s *Service) Get(ctx context.Context, userID, id uuid.UUID) (*Schedule, error) {
	sched, err := s.repo.GetSchedule(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := ownership.Assert(sched, userID); err != nil {
		return nil, err
	}

	return sched, nil
}

func (s *Service) List(ctx context.Context, userID uuid.UUID) ([]*Schedule, error) {
	return s.repo.ListSchedules(ctx, userID)
}

type UpdateParams struct {
	CategoryID    *uuid.UUID
	Amount        *decimal.Decimal
	Description   *string
	PaymentMethod *transaction.PaymentMethod
	StartDate     *time.Time
	EndDate       *time.Time
	Frequency     *Frequency
	DayOfMonth    *int
}

// Update applies the given fields. Whenever the start date, frequency or
// day of month change, the next occurrence is recomputed from the start
// date; callers can never set it themselves.
func (s *Service) Update(ctx context.Context, userID, id uuid.UUID, params UpdateParams) (*Schedule, error) {
	sched, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if params.CategoryID != nil {
		sched.CategoryID = *params.CategoryID
	}

	if params.Amount != nil {
		sched.Amount = *params.Amount
	}

	if params.Description != nil {
		sched.Description = *params.Description
	}

	if params.PaymentMethod != nil {
		sched.PaymentMethod = *params.PaymentMethod
	}

	if params.EndDate != nil {
		sched.EndDate = params.EndDate
	}

	recompute := false

	if params.StartDate != nil {
		sched.StartDate = *params.StartDate
		recompute = true
	}

	if params.Frequency != nil {
		sched.Frequency = *params.Frequency
		recompute = true
	}

	if params.DayOfMonth != nil {
		sched.DayOfMonth = params.DayOfMonth
		recompute = true
	}

	if recompute {
		next, err := InitialOccurrence(sched.StartDate, sched.Frequency, sched.dayOfMonth())
		if err != nil {
			return nil, err
		}

		sched.NextOccurrence = next
	}

	if err := s.repo.UpdateSchedule(ctx, sched); err != nil {
		return nil, fmt.Errorf("updating schedule: %w", err)
	}

	return sched, nil
}

// Deactivate stops the schedule from firing without deleting its history.
func (s *Service) Deactivate(ctx context.Context, userID, id uuid.UUID) error {
	sched, err := s.Get(ctx, userID, id)
	if err != nil {
		return err
	}

	if err := s.repo.SetActive(ctx, sched.ID, false); err != nil {
		return fmt.Errorf("deactivating schedule: %w", err)
	}

	return nil
}

// FindDue returns the schedules whose next occurrence has arrived as of
// the given date. Firing them exactly once is the synthesizer's job.
func (s *Service) FindDue(ctx context.Context, asOf time.Time) ([]*Schedule, error) {
	return s.repo.FindDue(ctx, asOf)
}
