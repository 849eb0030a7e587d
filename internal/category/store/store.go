package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/mywallet/mywallet/internal/category"
	"github.com/mywallet/mywallet/internal/transaction"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) CreateCategory(ctx context.Context, c *category.Category) error {
	query := `
		INSERT INTO categories (name, type, parent_category, emoji)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	var parent *string
	if c.Parent != "" {
		parent = &c.Parent
	}

	err := s.db.QueryRowContext(ctx, query, c.Name, c.Type, parent, c.Emoji).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return category.ErrDuplicate
		}

		return fmt.Errorf("creating category: %w", err)
	}

	return nil
}

func (s *Store) ListCategories(ctx context.Context, typ transaction.Type) ([]*category.Category, error) {
	query := `
		SELECT id, name, type, parent_category, emoji, created_at
		FROM categories
		WHERE type = $1
		ORDER BY parent_category NULLS FIRST, name
	`

	rows, err := s.db.QueryContext(ctx, query, typ)
	if err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}
	defer rows.Close()

	var categories []*category.Category

	for rows.Next() {
		var c category.Category

		var typeStr string

		var parent, emoji sql.NullString

		if err := rows.Scan(&c.ID, &c.Name, &typeStr, &parent, &emoji, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning category: %w", err)
		}

		c.Type = transaction.Type(typeStr)
		c.Parent = parent.String
		c.Emoji = emoji.String

		categories = append(categories, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating category rows: %w", err)
	}

	return categories, nil
}

func (s *Store) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting category: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting category: %w", err)
	}

	if affected == 0 {
		return category.ErrNotFound
	}

	return nil
}
