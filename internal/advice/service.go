// Package advice generates and stores budget recommendations derived from
// recent spending.
package advice

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mywallet/mywallet/internal/transaction"
)

var (
	ErrNotFound = errors.New("recommendation not found")

	// ErrNoData means the lookback window held no transactions to advise on.
	ErrNoData = errors.New("not enough transactions to generate recommendations")
)

// lookback is the spending window recommendations are based on.
const lookback = 30 * 24 * time.Hour

// Recommendation is one stored piece of generated advice.
type Recommendation struct {
	ID             uuid.UUID
	UserTelegramID int64
	Text           string
	Category       string
	CreatedAt      time.Time
	IsRead         bool
}

//go:generate mockgen -source=service.go -destination=service_mock.go -package=advice
type Repository interface {
	CreateRecommendation(ctx context.Context, rec *Recommendation) error
	ListRecommendations(ctx context.Context, userID int64, unreadOnly bool) ([]*Recommendation, error)
	MarkRecommendationRead(ctx context.Context, id uuid.UUID) error
}

// Adviser produces advice text from a spending summary.
type Adviser interface {
	Recommendations(ctx context.Context, summary string) (string, error)
}

// Lister is the slice of the transaction service the generator needs.
type Lister interface {
	ListWindow(ctx context.Context, start, end *time.Time) ([]*transaction.Transaction, error)
	Owner() int64
}

type Service struct {
	repo    Repository
	adviser Adviser
	txs     Lister
	now     func() time.Time
}

func NewService(repo Repository, adviser Adviser, txs Lister) *Service {
	return &Service{repo: repo, adviser: adviser, txs: txs, now: time.Now}
}

// Generate summarizes the last 30 days of spending, asks the adviser for
// recommendations and stores the result.
func (s *Service) Generate(ctx context.Context) (*Recommendation, error) {
	end := s.now()
	start := end.Add(-lookback)

	txs, err := s.txs.ListWindow(ctx, &start, &end)
	if err != nil {
		return nil, fmt.Errorf("loading spending window: %w", err)
	}

	if len(txs) == 0 {
		return nil, ErrNoData
	}

	text, err := s.adviser.Recommendations(ctx, Summarize(txs))
	if err != nil {
		return nil, fmt.Errorf("generating recommendations: %w", err)
	}

	rec := &Recommendation{
		UserTelegramID: s.txs.Owner(),
		Text:           text,
	}

	if err := s.repo.CreateRecommendation(ctx, rec); err != nil {
		return nil, fmt.Errorf("storing recommendation: %w", err)
	}

	return rec, nil
}

// List returns stored recommendations, optionally only unread ones.
func (s *Service) List(ctx context.Context, unreadOnly bool) ([]*Recommendation, error) {
	return s.repo.ListRecommendations(ctx, s.txs.Owner(), unreadOnly)
}

func (s *Service) MarkRead(ctx context.Context, id uuid.UUID) error {
	return s.repo.MarkRecommendationRead(ctx, id)
}

// Summarize renders expenses as a per-category table with percentages, the
// shape the adviser prompt expects. Income and internal bookkeeping rows
// are left out.
func Summarize(txs []*transaction.Transaction) string {
	totals := make(map[string]int64)

	var totalExpense int64

	for _, tx := range txs {
		if tx.Type != transaction.TypeExpense {
			continue
		}

		category := tx.Category
		if category == "" {
			category = transaction.CategoryOther
		}

		totals[category] += tx.Amount
		totalExpense += tx.Amount
	}

	categories := make([]string, 0, len(totals))
	for category := range totals {
		categories = append(categories, category)
	}

	sort.Slice(categories, func(i, j int) bool {
		if totals[categories[i]] != totals[categories[j]] {
			return totals[categories[i]] > totals[categories[j]]
		}

		return categories[i] < categories[j]
	})

	var b strings.Builder

	fmt.Fprintf(&b, "Общие траты: %s грн\n\nРаспределение по категориям:\n", transaction.FormatAmount(totalExpense))

	for _, category := range categories {
		var percentage float64
		if totalExpense > 0 {
			percentage = float64(totals[category]) / float64(totalExpense) * 100
		}

		fmt.Fprintf(&b, "- %s: %s грн (%.1f%%)\n", category, transaction.FormatAmount(totals[category]), percentage)
	}

	return b.String()
}
