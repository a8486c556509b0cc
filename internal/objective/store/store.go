package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mrodrig/grana/internal/objective"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

const selectObjectiveColumns = `
	o.id, o.user_id, o.type, o.target_amount, o.current_amount, o.category_id,
	o.period, o.active, o.created_at, o.updated_at
`

func scanObjective(sc scanner) (*objective.Objective, error) {
	var o objective.Objective

	var typeStr string

	var current decimal.NullDecimal

	if err := sc.Scan(
		&o.ID, &o.UserID, &typeStr, &o.TargetAmount, &current, &o.CategoryID,
		&o.Period, &o.Active, &o.CreatedAt, &o.UpdatedAt,
	); err != nil {
		return nil, err
	}

	o.Type = objective.Type(typeStr)

	// A null current amount computes as zero.
	if current.Valid {
		o.CurrentAmount = current.Decimal
	}

	return &o, nil
}

func (s *Store) GetObjective(ctx context.Context, id uuid.UUID) (*objective.Objective, error) {
	query := `SELECT ` + selectObjectiveColumns + `
		FROM objectives o
		WHERE o.id = $1`

	o, err := scanObjective(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, objective.ErrNotFound
		}

		return nil, fmt.Errorf("getting objective: %w", err)
	}

	return o, nil
}

func (s *Store) ListActive(ctx context.Context, userID uuid.UUID) ([]*objective.Objective, error) {
	query := `SELECT ` + selectObjectiveColumns + `
		FROM objectives o
		WHERE o.user_id = $1 AND o.active
		ORDER BY o.period DESC, o.created_at ASC`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing objectives: %w", err)
	}
	defer rows.Close()

	var objs []*objective.Objective

	for rows.Next() {
		o, err := scanObjective(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning objective: %w", err)
		}

		objs = append(objs, o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating objective rows: %w", err)
	}

	return objs, nil
}

func (s *Store) UpdateCurrentAmount(ctx context.Context, id uuid.UUID, amount decimal.Decimal) error {
	query := `
		UPDATE objectives
		SET current_amount = $1, updated_at = NOW()
		WHERE id = $2
	`

	_, err := s.db.ExecContext(ctx, query, amount, id)
	if err != nil {
		return fmt.Errorf("updating current amount: %w", err)
	}

	return nil
}
