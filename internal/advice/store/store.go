package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/mywallet/mywallet/internal/advice"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) CreateRecommendation(ctx context.Context, rec *advice.Recommendation) error {
	query := `
		INSERT INTO ai_recommendations (user_telegram_id, recommendation_text, category)
		VALUES ($1, $2, NULLIF($3, ''))
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query, rec.UserTelegramID, rec.Text, rec.Category).Scan(&rec.ID, &rec.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating recommendation: %w", err)
	}

	return nil
}

func (s *Store) ListRecommendations(ctx context.Context, userID int64, unreadOnly bool) ([]*advice.Recommendation, error) {
	query := `
		SELECT id, user_telegram_id, recommendation_text, category, created_at, is_read
		FROM ai_recommendations
		WHERE user_telegram_id = $1
	`

	if unreadOnly {
		query += " AND is_read = FALSE"
	}

	query += " ORDER BY created_at DESC"

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing recommendations: %w", err)
	}
	defer rows.Close()

	var recs []*advice.Recommendation

	for rows.Next() {
		var rec advice.Recommendation

		var category sql.NullString

		if err := rows.Scan(&rec.ID, &rec.UserTelegramID, &rec.Text, &category, &rec.CreatedAt, &rec.IsRead); err != nil {
			return nil, fmt.Errorf("scanning recommendation: %w", err)
		}

		rec.Category = category.String

		recs = append(recs, &rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating recommendation rows: %w", err)
	}

	return recs, nil
}

func (s *Store) MarkRecommendationRead(ctx context.Context, id uuid.UUID) error {
	result, err := s.db.ExecContext(ctx, `UPDATE ai_recommendations SET is_read = TRUE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("marking recommendation read: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("marking recommendation read: %w", err)
	}

	if affected == 0 {
		return advice.ErrNotFound
	}

	return nil
}
