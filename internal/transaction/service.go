package transaction

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=transaction
type Repository interface {
	CreateTransaction(ctx context.Context, tx *Transaction) error
	GetTransaction(ctx context.Context, id uuid.UUID) (*Transaction, error)
	ListTransactions(ctx context.Context, filter Filter) ([]*Transaction, error)
	ListRecent(ctx context.Context, userID int64, limit int) ([]*Transaction, error)
	UpdateTransaction(ctx context.Context, tx *Transaction) error
	DeleteTransaction(ctx context.Context, id uuid.UUID) error

	// CreateExchangePair inserts both legs of a currency exchange in a
	// single database transaction so a concurrent balance read never
	// observes only one leg.
	CreateExchangePair(ctx context.Context, expense, income *Transaction) error
}

const (
	// DefaultListLimit bounds ordinary listing queries.
	DefaultListLimit = 100

	// AggregateListLimit bounds the window the balance and statistics
	// engines aggregate over.
	AggregateListLimit = 10000
)

// Filter narrows a transaction listing. Results are ordered by economic
// date, newest first.
type Filter struct {
	UserID    int64
	StartDate *time.Time
	EndDate   *time.Time
	Type      *Type
	Category  *string
	Limit     int
}

type Service struct {
	repo    Repository
	ownerID int64
}

// NewService returns a Service scoped to the single configured owner; every
// query it issues is filtered by ownerID.
func NewService(repo Repository, ownerID int64) *Service {
	return &Service{repo: repo, ownerID: ownerID}
}

// Owner returns the configured owner identifier.
func (s *Service) Owner() int64 {
	return s.ownerID
}

type CreateParams struct {
	Amount        int64
	Type          Type
	Category      string
	Currency      Currency
	Description   string
	PaymentMethod PaymentMethod
	Project       string
	Date          time.Time

	AICategorized      bool
	VoiceTranscription string
	ReceiptImageURL    string
	IsTeamFinance      bool
}

func (p CreateParams) validate() error {
	if p.Amount <= 0 {
		return ErrInvalidAmount
	}

	if p.Amount > MaxAmount {
		return ErrAmountTooLarge
	}

	if !p.Type.Valid() {
		return ErrInvalidType
	}

	if p.Currency != "" && !p.Currency.Valid() {
		return ErrInvalidCurrency
	}

	if !p.PaymentMethod.Valid() {
		return ErrInvalidPaymentMethod
	}

	return nil
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Transaction, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}

	tx := paramsToTransaction(params, s.ownerID)
	if err := s.repo.CreateTransaction(ctx, tx); err != nil {
		return nil, err
	}

	return tx, nil
}

// CreateBatch inserts a series of transactions, used by the historical
// importer. The batch is not atomic; a failure aborts at the offending row.
func (s *Service) CreateBatch(ctx context.Context, params []CreateParams) ([]*Transaction, error) {
	txs := make([]*Transaction, 0, len(params))

	for _, p := range params {
		tx, err := s.Create(ctx, p)
		if err != nil {
			return txs, err
		}

		txs = append(txs, tx)
	}

	return txs, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Transaction, error) {
	return s.repo.GetTransaction(ctx, id)
}

func (s *Service) List(ctx context.Context, filter Filter) ([]*Transaction, error) {
	filter.UserID = s.ownerID
	if filter.Limit <= 0 {
		filter.Limit = DefaultListLimit
	}

	return s.repo.ListTransactions(ctx, filter)
}

// ListWindow returns every transaction in [start, end] up to the aggregate
// limit. It is the query the balance and statistics engines consume.
func (s *Service) ListWindow(ctx context.Context, start, end *time.Time) ([]*Transaction, error) {
	return s.repo.ListTransactions(ctx, Filter{
		UserID:    s.ownerID,
		StartDate: start,
		EndDate:   end,
		Limit:     AggregateListLimit,
	})
}

// Recent returns the most recently recorded transactions, by creation time.
func (s *Service) Recent(ctx context.Context, limit int) ([]*Transaction, error) {
	if limit <= 0 {
		limit = 10
	}

	return s.repo.ListRecent(ctx, s.ownerID, limit)
}

func (s *Service) Update(ctx context.Context, tx *Transaction) error {
	if tx.Amount <= 0 {
		return ErrInvalidAmount
	}

	if tx.Amount > MaxAmount {
		return ErrAmountTooLarge
	}

	if !tx.Type.Valid() {
		return ErrInvalidType
	}

	if !tx.Currency.Valid() {
		return ErrInvalidCurrency
	}

	if !tx.PaymentMethod.Valid() {
		return ErrInvalidPaymentMethod
	}

	return s.repo.UpdateTransaction(ctx, tx)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteTransaction(ctx, id)
}

func paramsToTransaction(p CreateParams, ownerID int64) *Transaction {
	currency := p.Currency
	if currency == "" {
		currency = DefaultCurrency
	}

	return &Transaction{
		UserTelegramID:     ownerID,
		Amount:             p.Amount,
		Type:               p.Type,
		Category:           strings.TrimSpace(p.Category),
		Currency:           currency,
		Description:        p.Description,
		PaymentMethod:      p.PaymentMethod,
		Project:            p.Project,
		Date:               p.Date,
		AICategorized:      p.AICategorized,
		VoiceTranscription: p.VoiceTranscription,
		ReceiptImageURL:    p.ReceiptImageURL,
		IsTeamFinance:      p.IsTeamFinance,
	}
}
