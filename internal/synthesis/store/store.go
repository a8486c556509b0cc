package store

import (
	"context"
	"database/sql"
	"fmt"
	"hash/fnv"
	"time"

	"github.com/google/uuid"

	"github.com/mrodrig/grana/internal/category"
	categorystore "github.com/mrodrig/grana/internal/category/store"
	"github.com/mrodrig/grana/internal/recurring"
	recurringstore "github.com/mrodrig/grana/internal/recurring/store"
	"github.com/mrodrig/grana/internal/synthesis"
	"github.com/mrodrig/grana/internal/transaction"
	transactionstore "github.com/mrodrig/grana/internal/transaction/store"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// firingLockKey derives a Postgres advisory lock key for one schedule,
// so workers firing the same schedule serialize on the database
// regardless of the day each sweep started. The re-read of the schedule
// inside the transaction then turns the losers into no-ops.
func firingLockKey(scheduleID uuid.UUID) int64 {
	h := fnv.New64a()
	h.Write([]byte(scheduleID.String()))

	return int64(h.Sum64())
}

type firingTx struct {
	tx         *sql.Tx
	scheduleID uuid.UUID
	schedules  *recurringstore.Store
	ledger     *transactionstore.Store
}

func (s *Store) BeginFiring(ctx context.Context, scheduleID uuid.UUID) (synthesis.FiringTx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning firing tx: %w", err)
	}

	lockKey := firingLockKey(scheduleID)
	if _, err := dbTx.ExecContext(ctx, "SELECT pg_advisory_xact_lock($1)", lockKey); err != nil {
		dbTx.Rollback()
		return nil, fmt.Errorf("acquiring firing lock: %w", err)
	}

	return &firingTx{
		tx:         dbTx,
		scheduleID: scheduleID,
		schedules:  recurringstore.New(dbTx),
		ledger:     transactionstore.New(dbTx),
	}, nil
}

func (ftx *firingTx) Commit() error   { return ftx.tx.Commit() }
func (ftx *firingTx) Rollback() error { return ftx.tx.Rollback() }

func (ftx *firingTx) Schedule(ctx context.Context) (*recurring.Schedule, error) {
	return ftx.schedules.GetSchedule(ctx, ftx.scheduleID)
}

func (ftx *firingTx) CreateTransaction(ctx context.Context, tx *transaction.Transaction) error {
	return ftx.ledger.CreateTransaction(ctx, tx)
}

func (ftx *firingTx) AdvanceSchedule(ctx context.Context, next time.Time) error {
	query := `
		UPDATE recurring_schedules
		SET next_occurrence = $1, updated_at = NOW()
		WHERE id = $2
	`

	if _, err := ftx.tx.ExecContext(ctx, query, next, ftx.scheduleID); err != nil {
		return fmt.Errorf("advancing schedule: %w", err)
	}

	return nil
}

type postingTx struct {
	tx         *sql.Tx
	categories *categorystore.Store
	ledger     *transactionstore.Store
}

func (s *Store) BeginPosting(ctx context.Context) (synthesis.PostingTx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning posting tx: %w", err)
	}

	return &postingTx{
		tx:         dbTx,
		categories: categorystore.New(dbTx),
		ledger:     transactionstore.New(dbTx),
	}, nil
}

func (ptx *postingTx) Commit() error   { return ptx.tx.Commit() }
func (ptx *postingTx) Rollback() error { return ptx.tx.Rollback() }

func (ptx *postingTx) FindAvailableCategories(ctx context.Context, userID uuid.UUID, typ transaction.Type) ([]*category.Category, error) {
	return ptx.categories.FindAvailable(ctx, userID, typ)
}

func (ptx *postingTx) UpsertCategory(ctx context.Context, c *category.Category) error {
	return ptx.categories.UpsertCategory(ctx, c)
}

func (ptx *postingTx) CreateTransaction(ctx context.Context, tx *transaction.Transaction) error {
	return ptx.ledger.CreateTransaction(ctx, tx)
}
