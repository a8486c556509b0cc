package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mrodrig/grana/internal/recurring"
	"github.com/mrodrig/grana/internal/transaction"
)

// DBTX is satisfied by both *sql.DB and *sql.Tx.
type DBTX interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

type Store struct {
	db DBTX
}

func New(db DBTX) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

const selectScheduleColumns = `
	s.id, s.user_id, s.category_id, s.kind, s.amount, s.description, s.payment_method,
	s.start_date, s.end_date, s.frequency, s.day_of_month, s.next_occurrence, s.active,
	s.created_at, s.updated_at
`

func scanSchedule(sc scanner) (*recurring.Schedule, error) {
	var s recurring.Schedule

	var kindStr, methodStr, freqStr string

	if err := sc.Scan(
		&s.ID, &s.UserID, &s.CategoryID, &kindStr, &s.Amount, &s.Description, &methodStr,
		&s.StartDate, &s.EndDate, &freqStr, &s.DayOfMonth, &s.NextOccurrence, &s.Active,
		&s.CreatedAt, &s.UpdatedAt,
	); err != nil {
		return nil, err
	}

	s.Kind = transaction.Type(kindStr)
	s.PaymentMethod = transaction.PaymentMethod(methodStr)
	s.Frequency = recurring.Frequency(freqStr)

	return &s, nil
}

func (s *Store) CreateSchedule(ctx context.Context, sched *recurring.Schedule) error {
	query := `
		INSERT INTO recurring_schedules
			(user_id, category_id, kind, amount, description, payment_method,
			 start_date, end_date, frequency, day_of_month, next_occurrence, active,
			 created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		sched.UserID, sched.CategoryID, sched.Kind, sched.Amount,
		sched.Description, sched.PaymentMethod,
		sched.StartDate, sched.EndDate, sched.Frequency, sched.DayOfMonth,
		sched.NextOccurrence, sched.Active,
	).Scan(&sched.ID, &sched.CreatedAt, &sched.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating schedule: %w", err)
	}

	return nil
}

func (s *Store) GetSchedule(ctx context.Context, id uuid.UUID) (*recurring.Schedule, error) {
	query := `SELECT ` + selectScheduleColumns + `
		FROM recurring_schedules s
		WHERE s.id = $1`

	sched, err := scanSchedule(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, recurring.ErrNotFound
		}

		return nil, fmt.Errorf("getting schedule: %w", err)
	}

	return sched, nil
}

func (s *Store) UpdateSchedule(ctx context.Context, sched *recurring.Schedule) error {
	query := `
		UPDATE recurring_schedules
		SET category_id = $1, kind = $2, amount = $3, description = $4,
			payment_method = $5, start_date = $6, end_date = $7, frequency = $8,
			day_of_month = $9, next_occurrence = $10, updated_at = NOW()
		WHERE id = $11
	`

	_, err := s.db.ExecContext(ctx, query,
		sched.CategoryID, sched.Kind, sched.Amount, sched.Description,
		sched.PaymentMethod, sched.StartDate, sched.EndDate, sched.Frequency,
		sched.DayOfMonth, sched.NextOccurrence, sched.ID,
	)
	if err != nil {
		return fmt.Errorf("updating schedule: %w", err)
	}

	return nil
}

func (s *Store) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	query := `
		UPDATE recurring_schedules
		SET active = $1, updated_at = NOW()
		WHERE id = $2
	`

	_, err := s.db.ExecContext(ctx, query, active, id)
	if err != nil {
		return fmt.Errorf("setting schedule active: %w", err)
	}

	return nil
}

func (s *Store) ListSchedules(ctx context.Context, userID uuid.UUID) ([]*recurring.Schedule, error) {
	query := `SELECT ` + selectScheduleColumns + `
		FROM recurring_schedules s
		WHERE s.user_id = $1
		ORDER BY s.next_occurrence ASC`

	return s.querySchedules(ctx, query, userID)
}

// FindDue selects the schedules that should fire as of the given date.
// Firing gates strictly on next_occurrence, not only on the schedule's
// active window.
func (s *Store) FindDue(ctx context.Context, asOf time.Time) ([]*recurring.Schedule, error) {
	query := `SELECT ` + selectScheduleColumns + `
		FROM recurring_schedules s
		WHERE s.active
			AND s.start_date <= $1
			AND (s.end_date IS NULL OR s.end_date >= $1)
			AND s.next_occurrence <= $1
		ORDER BY s.next_occurrence ASC`

	return s.querySchedules(ctx, query, asOf)
}

func (s *Store) querySchedules(ctx context.Context, query string, args ...any) ([]*recurring.Schedule, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing schedules: %w", err)
	}
	defer rows.Close()

	var scheds []*recurring.Schedule

	for rows.Next() {
		sched, err := scanSchedule(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning schedule: %w", err)
		}

		scheds = append(scheds, sched)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating schedule rows: %w", err)
	}

	return scheds, nil
}
