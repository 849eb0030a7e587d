package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mywallet/mywallet/internal/transaction"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanTransaction reads a transaction row from the scanner and returns a populated Transaction.
// Expected column order: id, user_telegram_id, amount_cents, type, category, currency,
// description, payment_method, project, date, created_at, ai_categorized,
// voice_transcription, receipt_image_url, original_amount_cents, original_currency, is_team_finance
func scanTransaction(s scanner) (*transaction.Transaction, error) {
	var tx transaction.Transaction

	var typeStr, currencyStr string

	var category, description, paymentMethod, project, voice, receipt sql.NullString

	var originalAmount sql.NullInt64

	var originalCurrency sql.NullString

	if err := s.Scan(
		&tx.ID, &tx.UserTelegramID, &tx.Amount, &typeStr, &category, &currencyStr,
		&description, &paymentMethod, &project, &tx.Date, &tx.CreatedAt, &tx.AICategorized,
		&voice, &receipt, &originalAmount, &originalCurrency, &tx.IsTeamFinance,
	); err != nil {
		return nil, err
	}

	tx.Type = transaction.Type(typeStr)
	tx.Category = category.String
	tx.Currency = transaction.Currency(currencyStr)
	tx.Description = description.String
	tx.PaymentMethod = transaction.PaymentMethod(paymentMethod.String)
	tx.Project = project.String
	tx.VoiceTranscription = voice.String
	tx.ReceiptImageURL = receipt.String

	if originalAmount.Valid {
		tx.OriginalAmount = &originalAmount.Int64
	}

	if originalCurrency.Valid {
		currency := transaction.Currency(originalCurrency.String)
		tx.OriginalCurrency = &currency
	}

	return &tx, nil
}

const selectTransactionColumns = `
	id, user_telegram_id, amount_cents, type, category, currency,
	description, payment_method, project, date, created_at, ai_categorized,
	voice_transcription, receipt_image_url, original_amount_cents, original_currency, is_team_finance
`

const insertTransactionQuery = `
	INSERT INTO transactions (
		user_telegram_id, amount_cents, type, category, currency,
		description, payment_method, project, date, ai_categorized,
		voice_transcription, receipt_image_url, original_amount_cents, original_currency, is_team_finance
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	RETURNING id, created_at
`

// execer is satisfied by both *sql.DB and *sql.Tx.
type execer interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func insertTransaction(ctx context.Context, db execer, tx *transaction.Transaction) error {
	if tx.Date.IsZero() {
		tx.Date = time.Now()
	}

	var originalCurrency *string
	if tx.OriginalCurrency != nil {
		s := string(*tx.OriginalCurrency)
		originalCurrency = &s
	}

	return db.QueryRowContext(ctx, insertTransactionQuery,
		tx.UserTelegramID,
		tx.Amount,
		tx.Type,
		tx.Category,
		tx.Currency,
		tx.Description,
		tx.PaymentMethod,
		tx.Project,
		tx.Date,
		tx.AICategorized,
		tx.VoiceTranscription,
		tx.ReceiptImageURL,
		tx.OriginalAmount,
		originalCurrency,
		tx.IsTeamFinance,
	).Scan(&tx.ID, &tx.CreatedAt)
}

func (s *Store) CreateTransaction(ctx context.Context, tx *transaction.Transaction) error {
	if err := insertTransaction(ctx, s.db, tx); err != nil {
		return fmt.Errorf("creating transaction: %w", err)
	}

	return nil
}

func (s *Store) GetTransaction(ctx context.Context, id uuid.UUID) (*transaction.Transaction, error) {
	query := `SELECT ` + selectTransactionColumns + `
		FROM transactions
		WHERE id = $1`

	tx, err := scanTransaction(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, transaction.ErrNotFound
		}

		return nil, fmt.Errorf("getting transaction: %w", err)
	}

	return tx, nil
}

func (s *Store) ListTransactions(ctx context.Context, filter transaction.Filter) ([]*transaction.Transaction, error) {
	query := `SELECT ` + selectTransactionColumns + `
		FROM transactions
		WHERE user_telegram_id = $1`

	args := []any{filter.UserID}

	argIdx := 2

	if filter.StartDate != nil {
		query += fmt.Sprintf(" AND date >= $%d", argIdx)

		args = append(args, *filter.StartDate)
		argIdx++
	}

	if filter.EndDate != nil {
		query += fmt.Sprintf(" AND date <= $%d", argIdx)

		args = append(args, *filter.EndDate)
		argIdx++
	}

	if filter.Type != nil {
		query += fmt.Sprintf(" AND type = $%d", argIdx)

		args = append(args, *filter.Type)
		argIdx++
	}

	if filter.Category != nil {
		query += fmt.Sprintf(" AND category = $%d", argIdx)

		args = append(args, *filter.Category)
		argIdx++
	}

	query += " ORDER BY date DESC"

	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argIdx)

		args = append(args, filter.Limit)
	}

	return s.queryTransactions(ctx, query, args...)
}

func (s *Store) ListRecent(ctx context.Context, userID int64, limit int) ([]*transaction.Transaction, error) {
	query := `SELECT ` + selectTransactionColumns + `
		FROM transactions
		WHERE user_telegram_id = $1
		ORDER BY created_at DESC
		LIMIT $2`

	return s.queryTransactions(ctx, query, userID, limit)
}

func (s *Store) queryTransactions(ctx context.Context, query string, args ...any) ([]*transaction.Transaction, error) {
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

func (s *Store) UpdateTransaction(ctx context.Context, tx *transaction.Transaction) error {
	query := `
		UPDATE transactions
		SET amount_cents = $1, type = $2, category = $3, currency = $4,
			description = $5, payment_method = $6, project = $7, date = $8,
			is_team_finance = $9
		WHERE id = $10 AND user_telegram_id = $11
	`

	result, err := s.db.ExecContext(ctx, query,
		tx.Amount,
		tx.Type,
		tx.Category,
		tx.Currency,
		tx.Description,
		tx.PaymentMethod,
		tx.Project,
		tx.Date,
		tx.IsTeamFinance,
		tx.ID,
		tx.UserTelegramID,
	)
	if err != nil {
		return fmt.Errorf("updating transaction: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating transaction: %w", err)
	}

	if affected == 0 {
		return transaction.ErrNotFound
	}

	return nil
}

func (s *Store) DeleteTransaction(ctx context.Context, id uuid.UUID) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM transactions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting transaction: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting transaction: %w", err)
	}

	if affected == 0 {
		return transaction.ErrNotFound
	}

	return nil
}

// CreateExchangePair inserts both legs of an exchange atomically so a
// concurrent reader never sees money leave one currency without arriving in
// the other.
func (s *Store) CreateExchangePair(ctx context.Context, expense, income *transaction.Transaction) error {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning exchange tx: %w", err)
	}
	defer dbTx.Rollback()

	if err := insertTransaction(ctx, dbTx, expense); err != nil {
		return fmt.Errorf("creating expense leg: %w", err)
	}

	if err := insertTransaction(ctx, dbTx, income); err != nil {
		return fmt.Errorf("creating income leg: %w", err)
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("committing exchange: %w", err)
	}

	return nil
}
