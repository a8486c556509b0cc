package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/mrodrig/grana/internal/category"
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

const selectCategoryColumns = `
	c.id, c.name, c.type, c.color, c.icon, c.user_id, c.is_default, c.created_at
`

type scanner interface {
	Scan(dest ...any) error
}

func scanCategory(s scanner) (*category.Category, error) {
	var c category.Category

	var typeStr string

	if err := s.Scan(
		&c.ID, &c.Name, &typeStr, &c.Color, &c.Icon, &c.UserID, &c.Default, &c.CreatedAt,
	); err != nil {
		return nil, err
	}

	c.Type = transaction.Type(typeStr)

	return &c, nil
}

// FindAvailable returns the default categories plus the user's personal
// categories of the given type.
func (s *Store) FindAvailable(ctx context.Context, userID uuid.UUID, typ transaction.Type) ([]*category.Category, error) {
	query := `SELECT ` + selectCategoryColumns + `
		FROM categories c
		WHERE c.type = $1 AND (c.is_default OR c.user_id = $2)
		ORDER BY c.is_default DESC, c.name ASC`

	rows, err := s.db.QueryContext(ctx, query, typ, userID)
	if err != nil {
		return nil, fmt.Errorf("listing available categories: %w", err)
	}
	defer rows.Close()

	var cats []*category.Category

	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning category: %w", err)
		}

		cats = append(cats, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating category rows: %w", err)
	}

	return cats, nil
}

func (s *Store) GetCategory(ctx context.Context, id uuid.UUID) (*category.Category, error) {
	query := `SELECT ` + selectCategoryColumns + `
		FROM categories c
		WHERE c.id = $1`

	c, err := scanCategory(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, category.ErrNotFound
		}

		return nil, fmt.Errorf("getting category: %w", err)
	}

	return c, nil
}

// UpsertCategory creates the category if no personal category with the
// same name (case-insensitive) and type exists for the user, and fills in
// the stored row either way. Relies on a unique index over
// (user_id, lower(name), type) so concurrent first-use cannot race.
func (s *Store) UpsertCategory(ctx context.Context, c *category.Category) error {
	query := `
		INSERT INTO categories (name, type, color, icon, user_id, is_default, created_at)
		VALUES ($1, $2, $3, $4, $5, FALSE, NOW())
		ON CONFLICT (user_id, lower(name), type)
			DO UPDATE SET name = categories.name
		RETURNING id, name, color, icon, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		c.Name, c.Type, c.Color, c.Icon, c.UserID,
	).Scan(&c.ID, &c.Name, &c.Color, &c.Icon, &c.CreatedAt)
	if err != nil {
		return fmt.Errorf("upserting category: %w", err)
	}

	return nil
}
