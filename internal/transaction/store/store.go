package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mrodrig/grana/internal/transaction"
)

// DBTX is satisfied by both *sql.DB and *sql.Tx, so the same queries can
// run standalone or inside a synthesis unit of work.
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

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

const selectTransactionColumns = `
	t.id, t.user_id, t.category_id, t.amount, t.type, t.description, t.payment_method,
	t.date, t.schedule_id, t.investment_id, t.created_at, t.updated_at, t.deleted_at
`

func scanTransaction(s scanner) (*transaction.Transaction, error) {
	var tx transaction.Transaction

	var typeStr, methodStr string

	if err := s.Scan(
		&tx.ID, &tx.UserID, &tx.CategoryID, &tx.Amount, &typeStr, &tx.Description, &methodStr,
		&tx.Date, &tx.ScheduleID, &tx.InvestmentID,
		&tx.CreatedAt, &tx.UpdatedAt, &tx.DeletedAt,
	); err != nil {
		return nil, err
	}

	tx.Type = transaction.Type(typeStr)
	tx.PaymentMethod = transaction.PaymentMethod(methodStr)

	return &tx, nil
}

func (s *Store) CreateTransaction(ctx context.Context, tx *transaction.Transaction) error {
	query := `
		INSERT INTO transactions (user_id, category_id, amount, type, description, payment_method, date, schedule_id, investment_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		tx.UserID,
		tx.CategoryID,
		tx.Amount,
		tx.Type,
		tx.Description,
		tx.PaymentMethod,
		tx.Date,
		tx.ScheduleID,
		tx.InvestmentID,
	).Scan(&tx.ID, &tx.CreatedAt, &tx.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating transaction: %w", err)
	}

	return nil
}

func (s *Store) GetTransaction(ctx context.Context, id uuid.UUID) (*transaction.Transaction, error) {
	query := `SELECT ` + selectTransactionColumns + `
		FROM transactions t
		WHERE t.id = $1 AND t.deleted_at IS NULL`

	tx, err := scanTransaction(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, transaction.ErrNotFound
		}

		return nil, fmt.Errorf("getting transaction: %w", err)
	}

	return tx, nil
}

type ListFilter struct {
	Type      *transaction.Type
	StartDate *time.Time
	EndDate   *time.Time
}

func (s *Store) ListTransactions(ctx context.Context, userID uuid.UUID, filter ListFilter) ([]*transaction.Transaction, error) {
	query := `SELECT ` + selectTransactionColumns + `
		FROM transactions t
		WHERE t.user_id = $1 AND t.deleted_at IS NULL`

	args := []any{userID}

	argIdx := 2

	if filter.Type != nil {
		query += fmt.Sprintf(" AND t.type = $%d", argIdx)

		args = append(args, *filter.Type)
		argIdx++
	}

	if filter.StartDate != nil {
		query += fmt.Sprintf(" AND t.date >= $%d", argIdx)

		args = append(args, *filter.StartDate)
		argIdx++
	}

	if filter.EndDate != nil {
		query += fmt.Sprintf(" AND t.date <= $%d", argIdx)

		args = append(args, *filter.EndDate)
		argIdx++
	}

	query += " ORDER BY t.date ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}
	defer rows.Close()

	var txs []*transaction.Transaction

	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning transaction: %w", err)
		}

		txs = append(txs, tx)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating transaction rows: %w", err)
	}

	return txs, nil
}

// CategoryUsage is a read-model row for reporting.
type CategoryUsage struct {
	CategoryID uuid.UUID
	Name       string
	Count      int64
	Total      decimal.Decimal
}

// MostUsedCategories returns the user's categories ordered by how many
// transactions reference them. Reporting only, not used by the calculators.
func (s *Store) MostUsedCategories(ctx context.Context, userID uuid.UUID, limit int) ([]CategoryUsage, error) {
	query := `
		SELECT t.category_id, c.name, COUNT(*) AS uses, COALESCE(SUM(t.amount), 0) AS total
		FROM transactions t
		JOIN categories c ON c.id = t.category_id
		WHERE t.user_id = $1 AND t.deleted_at IS NULL
		GROUP BY t.category_id, c.name
		ORDER BY uses DESC, total DESC
		LIMIT $2
	`

	rows, err := s.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("listing most used categories: %w", err)
	}
	defer rows.Close()

	var usages []CategoryUsage

	for rows.Next() {
		var u CategoryUsage
		if err := rows.Scan(&u.CategoryID, &u.Name, &u.Count, &u.Total); err != nil {
			return nil, fmt.Errorf("scanning category usage: %w", err)
		}

		usages = append(usages, u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating category usage rows: %w", err)
	}

	return usages, nil
}

// SpentInPeriod sums the user's expenses for a category within a "YYYY-MM"
// period. Backs the current amount of category-limit objectives.
func (s *Store) SpentInPeriod(ctx context.Context, userID, categoryID uuid.UUID, period string) (decimal.Decimal, error) {
	start, err := time.Parse("2006-01", period)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parsing period %q: %w", period, err)
	}

	end := start.AddDate(0, 1, 0)

	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM transactions
		WHERE user_id = $1 AND category_id = $2 AND type = $3
			AND date >= $4 AND date < $5 AND deleted_at IS NULL
	`

	var total decimal.Decimal

	err = s.db.QueryRowContext(ctx, query,
		userID, categoryID, transaction.TypeExpense, start, end,
	).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("summing period spend: %w", err)
	}

	return total, nil
}
