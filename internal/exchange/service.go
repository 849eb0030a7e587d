// Package exchange records a user-initiated currency exchange as a paired
// expense/income transaction across two currencies.
package exchange

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mywallet/mywallet/internal/transaction"
)

var ErrSameCurrency = errors.New("exchange currencies must differ")

// Params describes one exchange action. Amounts are cents; ToAmount is
// whatever the user reports receiving and may be zero.
type Params struct {
	FromCurrency transaction.Currency
	FromAmount   int64
	ToCurrency   transaction.Currency
	ToAmount     int64
}

func (p Params) validate() error {
	if !p.FromCurrency.Valid() || !p.ToCurrency.Valid() {
		return transaction.ErrInvalidCurrency
	}

	if p.FromCurrency == p.ToCurrency {
		return ErrSameCurrency
	}

	if p.FromAmount <= 0 {
		return transaction.ErrInvalidAmount
	}

	if p.FromAmount > transaction.MaxAmount || p.ToAmount > transaction.MaxAmount {
		return transaction.ErrAmountTooLarge
	}

	if p.ToAmount < 0 {
		return transaction.ErrInvalidAmount
	}

	return nil
}

// Result holds both recorded legs and the implied rate. The rate is derived
// from the legs for display only and is never persisted.
type Result struct {
	Expense *transaction.Transaction
	Income  *transaction.Transaction
	Rate    float64
}

type Service struct {
	repo    transaction.Repository
	ownerID int64
	now     func() time.Time
}

func NewService(repo transaction.Repository, ownerID int64) *Service {
	return &Service{repo: repo, ownerID: ownerID, now: time.Now}
}

// Exchange writes the expense leg in the source currency and the income leg
// in the target currency, both under the fixed exchange category and dated
// now. The income leg carries the counter-leg amount and currency so the
// rate can always be recomputed. Both inserts happen in one store-level
// transaction.
func (s *Service) Exchange(ctx context.Context, params Params) (*Result, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}

	now := s.now()

	expense := &transaction.Transaction{
		UserTelegramID: s.ownerID,
		Amount:         params.FromAmount,
		Type:           transaction.TypeExpense,
		Category:       transaction.CategoryExchange,
		Currency:       params.FromCurrency,
		Description:    fmt.Sprintf("→ %s", transaction.FormatMoney(params.ToAmount, params.ToCurrency)),
		Date:           now,
	}

	fromAmount := params.FromAmount
	fromCurrency := params.FromCurrency

	income := &transaction.Transaction{
		UserTelegramID:   s.ownerID,
		Amount:           params.ToAmount,
		Type:             transaction.TypeIncome,
		Category:         transaction.CategoryExchange,
		Currency:         params.ToCurrency,
		Description:      fmt.Sprintf("← %s", transaction.FormatMoney(params.FromAmount, params.FromCurrency)),
		Date:             now,
		OriginalAmount:   &fromAmount,
		OriginalCurrency: &fromCurrency,
	}

	if err := s.repo.CreateExchangePair(ctx, expense, income); err != nil {
		return nil, fmt.Errorf("recording exchange: %w", err)
	}

	return &Result{
		Expense: expense,
		Income:  income,
		Rate:    Rate(params.FromAmount, params.ToAmount),
	}, nil
}

// Rate returns the implied to/from exchange rate, 0 when from is zero.
func Rate(fromAmount, toAmount int64) float64 {
	if fromAmount == 0 {
		return 0
	}

	return float64(toAmount) / float64(fromAmount)
}
