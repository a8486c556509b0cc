package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mrodrig/grana/internal/investment"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) GetInvestment(ctx context.Context, id uuid.UUID) (*investment.Investment, error) {
	query := `
		SELECT id, user_id, name, symbol, quantity, average_price, total_invested, created_at, updated_at
		FROM investments
		WHERE id = $1
	`

	var inv investment.Investment

	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&inv.ID, &inv.UserID, &inv.Name, &inv.Symbol,
		&inv.Quantity, &inv.AveragePrice, &inv.TotalInvested,
		&inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, investment.ErrNotFound
		}

		return nil, fmt.Errorf("getting investment: %w", err)
	}

	return &inv, nil
}

func (s *Store) CreateMovement(ctx context.Context, m *investment.Movement) error {
	query := `
		INSERT INTO investment_movements
			(investment_id, user_id, kind, quantity, unit_price, amount, fees, date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		m.InvestmentID, m.UserID, m.Kind, m.Quantity, m.UnitPrice, m.Amount, m.Fees, m.Date,
	).Scan(&m.ID, &m.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating movement: %w", err)
	}

	return nil
}

func (s *Store) ListMovements(ctx context.Context, investmentID uuid.UUID) ([]*investment.Movement, error) {
	query := `
		SELECT id, investment_id, user_id, kind, quantity, unit_price, amount, fees, date, created_at
		FROM investment_movements
		WHERE investment_id = $1
		ORDER BY date ASC, created_at ASC
	`

	rows, err := s.db.QueryContext(ctx, query, investmentID)
	if err != nil {
		return nil, fmt.Errorf("listing movements: %w", err)
	}
	defer rows.Close()

	var mvs []*investment.Movement

	for rows.Next() {
		var m investment.Movement

		var kindStr string

		if err := rows.Scan(
			&m.ID, &m.InvestmentID, &m.UserID, &kindStr,
			&m.Quantity, &m.UnitPrice, &m.Amount, &m.Fees, &m.Date, &m.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning movement: %w", err)
		}

		m.Kind = investment.MovementKind(kindStr)
		mvs = append(mvs, &m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating movement rows: %w", err)
	}

	return mvs, nil
}

// PositionSummary is a read-model row aggregating movements per kind.
type PositionSummary struct {
	Kind  investment.MovementKind
	Count int64
	Total decimal.Decimal
	Fees  decimal.Decimal
}

// SummarizeMovements aggregates a position's movements by kind. Reporting
// only, kept out of the valuation calculator.
func (s *Store) SummarizeMovements(ctx context.Context, investmentID uuid.UUID) ([]PositionSummary, error) {
	query := `
		SELECT kind, COUNT(*), COALESCE(SUM(amount), 0), COALESCE(SUM(fees), 0)
		FROM investment_movements
		WHERE investment_id = $1
		GROUP BY kind
		ORDER BY kind
	`

	rows, err := s.db.QueryContext(ctx, query, investmentID)
	if err != nil {
		return nil, fmt.Errorf("summarizing movements: %w", err)
	}
	defer rows.Close()

	var sums []PositionSummary

	for rows.Next() {
		var ps PositionSummary

		var kindStr string

		if err := rows.Scan(&kindStr, &ps.Count, &ps.Total, &ps.Fees); err != nil {
			return nil, fmt.Errorf("scanning movement summary: %w", err)
		}

		ps.Kind = investment.MovementKind(kindStr)
		sums = append(sums, ps)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating movement summary rows: %w", err)
	}

	return sums, nil
}
