package synthesis

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/mrodrig/grana/internal/category"
	"github.com/mrodrig/grana/internal/investment"
	"github.com/mrodrig/grana/internal/ownership"
	"github.com/mrodrig/grana/internal/recurring"
	"github.com/mrodrig/grana/internal/transaction"
)

// The lazily created category for investment postings.
const (
	investmentsCategoryName  = "Investments"
	investmentsCategoryColor = "#7E57C2"
	investmentsCategoryIcon  = "trending-up"
)

var ErrInvalidState = errors.New("invalid synthesis state")

// PersistenceError marks a store failure that happened after the source
// entity was already durable. Callers may retry; masking it as success
// would leave a movement or due schedule without its ledger counterpart.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// Retryable reports whether err is a persistence failure worth retrying.
func Retryable(err error) bool {
	var pe *PersistenceError
	return errors.As(err, &pe)
}

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=synthesis
type Repository interface {
	// BeginFiring opens a unit of work that serializes concurrent firings
	// of the same schedule.
	BeginFiring(ctx context.Context, scheduleID uuid.UUID) (FiringTx, error)
	BeginPosting(ctx context.Context) (PostingTx, error)
}

type FiringTx interface {
	Schedule(ctx context.Context) (*recurring.Schedule, error)
	CreateTransaction(ctx context.Context, tx *transaction.Transaction) error
	AdvanceSchedule(ctx context.Context, next time.Time) error
	Commit() error
	Rollback() error
}

type PostingTx interface {
	FindAvailableCategories(ctx context.Context, userID uuid.UUID, typ transaction.Type) ([]*category.Category, error)
	UpsertCategory(ctx context.Context, c *category.Category) error
	CreateTransaction(ctx context.Context, tx *transaction.Transaction) error
	Commit() error
	Rollback() error
}

// Service turns due recurring schedules and investment movements into
// posted ledger transactions.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// FromSchedule fires the schedule's pending occurrence: it posts one
// transaction and advances the next occurrence, all in one unit of work.
// A schedule that is inactive or not due as of asOf is a no-op, which
// makes concurrent firings of the same due date converge on a single
// posting: whoever commits first advances the schedule, everyone else
// re-reads it as no longer due.
func (s *Service) FromSchedule(ctx context.Context, scheduleID, userID uuid.UUID, asOf time.Time) (*transaction.Transaction, error) {
	ftx, err := s.repo.BeginFiring(ctx, scheduleID)
	if err != nil {
		return nil, &PersistenceError{Op: "beginning firing", Err: err}
	}
	defer ftx.Rollback()

	sched, err := ftx.Schedule(ctx)
	if err != nil {
		return nil, err
	}

	if err := ownership.Assert(sched, userID); err != nil {
		return nil, err
	}

	if !recurring.DueOn(sched, asOf) {
		slog.Info("schedule not due, skipping", "schedule", sched.ID, "next", sched.NextOccurrence)
		return nil, nil
	}

	due := sched.NextOccurrence

	tx := &transaction.Transaction{
		UserID:        sched.UserID,
		CategoryID:    sched.CategoryID,
		Amount:        sched.Amount,
		Type:          sched.Kind,
		Description:   sched.Description,
		PaymentMethod: sched.PaymentMethod,
		Date:          due,
		ScheduleID:    &sched.ID,
	}

	if err := ftx.CreateTransaction(ctx, tx); err != nil {
		return nil, &PersistenceError{Op: "creating scheduled transaction", Err: err}
	}

	dom := 0
	if sched.DayOfMonth != nil {
		dom = *sched.DayOfMonth
	}

	next, err := recurring.NextOccurrence(due, sched.Frequency, dom)
	if err != nil {
		return nil, fmt.Errorf("computing next occurrence: %w", err)
	}

	if err := ftx.AdvanceSchedule(ctx, next); err != nil {
		return nil, &PersistenceError{Op: "advancing schedule", Err: err}
	}

	if err := ftx.Commit(); err != nil {
		return nil, &PersistenceError{Op: "committing firing", Err: err}
	}

	slog.Info("fired schedule", "schedule", sched.ID, "due", due, "next", next)

	return tx, nil
}

// FromMovement posts the ledger counterpart of an investment movement.
// Adjustments never post. Purchases post as expenses carrying their fees;
// sales, dividends and yields post the bare amount as income. The
// "Investments" category of the matching type is resolved among the
// user's available categories or created on first use.
func (s *Service) FromMovement(ctx context.Context, m *investment.Movement, inv *investment.Investment, userID uuid.UUID) (*transaction.Transaction, error) {
	if err := ownership.Assert(inv, userID); err != nil {
		return nil, err
	}

	if m.Kind == investment.MovementAdjustment {
		slog.Info("adjustment movement, nothing to post", "movement", m.ID)
		return nil, nil
	}

	typ, err := transactionType(m.Kind)
	if err != nil {
		return nil, err
	}

	amount := m.Amount
	if typ == transaction.TypeExpense {
		amount = amount.Add(m.Fees)
	}

	ptx, err := s.repo.BeginPosting(ctx)
	if err != nil {
		return nil, &PersistenceError{Op: "beginning posting", Err: err}
	}
	defer ptx.Rollback()

	cats, err := ptx.FindAvailableCategories(ctx, userID, typ)
	if err != nil {
		return nil, &PersistenceError{Op: "listing categories", Err: err}
	}

	cat := category.Match(cats, investmentsCategoryName)
	if cat == nil {
		cat = &category.Category{
			Name:   investmentsCategoryName,
			Type:   typ,
			Color:  investmentsCategoryColor,
			Icon:   investmentsCategoryIcon,
			UserID: &userID,
		}

		if err := ptx.UpsertCategory(ctx, cat); err != nil {
			return nil, &PersistenceError{Op: "creating investments category", Err: err}
		}

		slog.Info("created investments category", "category", cat.ID, "type", typ)
	}

	tx := &transaction.Transaction{
		UserID:        userID,
		CategoryID:    cat.ID,
		Amount:        amount,
		Type:          typ,
		Description:   fmt.Sprintf("%s - %s (%s)", m.Kind.Label(), inv.Name, inv.Symbol),
		PaymentMethod: transaction.PaymentTransfer,
		Date:          m.Date,
		InvestmentID:  &inv.ID,
	}

	if err := ptx.CreateTransaction(ctx, tx); err != nil {
		return nil, &PersistenceError{Op: "creating movement transaction", Err: err}
	}

	if err := ptx.Commit(); err != nil {
		return nil, &PersistenceError{Op: "committing posting", Err: err}
	}

	return tx, nil
}

func transactionType(kind investment.MovementKind) (transaction.Type, error) {
	switch kind {
	case investment.MovementPurchase:
		return transaction.TypeExpense, nil
	case investment.MovementSale, investment.MovementDividend, investment.MovementYield:
		return transaction.TypeIncome, nil
	}

	return "", fmt.Errorf("%w: movement kind %q cannot post", ErrInvalidState, kind)
}
