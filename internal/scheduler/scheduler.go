package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/mrodrig/grana/internal/recurring"
	"github.com/mrodrig/grana/internal/transaction"
)

//go:generate mockgen -source=scheduler.go -destination=scheduler_mock.go -package=scheduler

// Schedules selects the recurring schedules that are due to fire.
type Schedules interface {
	FindDue(ctx context.Context, asOf time.Time) ([]*recurring.Schedule, error)
}

// Firer posts the ledger transaction for one due schedule. It is
// idempotent per (schedule, due date), so a crashed or overlapping run
// can safely retry.
type Firer interface {
	FromSchedule(ctx context.Context, scheduleID, userID uuid.UUID, asOf time.Time) (*transaction.Transaction, error)
}

// Runner is the batch trigger that periodically fires due schedules.
type Runner struct {
	schedules   Schedules
	firer       Firer
	concurrency int
}

func NewRunner(schedules Schedules, firer Firer, concurrency int) *Runner {
	if concurrency < 1 {
		concurrency = 1
	}

	return &Runner{
		schedules:   schedules,
		firer:       firer,
		concurrency: concurrency,
	}
}

// Run fires due schedules once immediately and then on every tick until
// the context is cancelled.
func (r *Runner) Run(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if err := r.RunOnce(ctx, time.Now()); err != nil {
			slog.Error("firing batch failed", "error", err)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// RunOnce fires every schedule due as of asOf. Individual firing failures
// are logged and skipped so one broken schedule cannot starve the rest;
// only the due query itself aborts the batch.
func (r *Runner) RunOnce(ctx context.Context, asOf time.Time) error {
	due, err := r.schedules.FindDue(ctx, asOf)
	if err != nil {
		return fmt.Errorf("finding due schedules: %w", err)
	}

	if len(due) == 0 {
		return nil
	}

	slog.Info("firing due schedules", "count", len(due), "as_of", asOf.Format(time.DateOnly))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)

	for _, sched := range due {
		sched := sched
		g.Go(func() error {
			tx, err := r.firer.FromSchedule(ctx, sched.ID, sched.UserID, asOf)
			if err != nil {
				slog.Error("firing schedule failed", "schedule", sched.ID, "error", err)
				return nil
			}

			if tx != nil {
				slog.Info("posted scheduled transaction", "schedule", sched.ID, "transaction", tx.ID)
			}

			return nil
		})
	}

	return g.Wait()
}
