// Package balance computes per-currency income/expense/net totals from a
// transaction set.
package balance

import (
	"context"
	"strings"
	"time"

	"github.com/mywallet/mywallet/internal/transaction"
)

// Totals is the aggregate for one currency, in cents.
type Totals struct {
	Income  int64
	Expense int64
	Balance int64
}

// Compute partitions transactions by currency and accumulates income and
// expense totals. Internal cash-to-card transfers are excluded from the
// expense side: moving money onto one's own card is not an outflow.
// Currencies without transactions are absent from the result.
func Compute(txs []*transaction.Transaction) map[transaction.Currency]Totals {
	balances := make(map[transaction.Currency]Totals)

	for _, tx := range txs {
		currency := tx.Currency
		if currency == "" {
			currency = transaction.DefaultCurrency
		}

		totals := balances[currency]

		switch {
		case tx.Type == transaction.TypeIncome:
			totals.Income += tx.Amount
		case !isInternalTransfer(tx):
			totals.Expense += tx.Amount
		}

		totals.Balance = totals.Income - totals.Expense
		balances[currency] = totals
	}

	return balances
}

// isInternalTransfer reports whether tx records moving the user's own cash
// onto their card. The description match is intentionally loose: either the
// literal "на карту", or a cash word next to a card word.
func isInternalTransfer(tx *transaction.Transaction) bool {
	if tx.Category != transaction.CategoryTransfers {
		return false
	}

	desc := strings.ToLower(tx.Description)

	if strings.Contains(desc, "на карту") {
		return true
	}

	return strings.Contains(desc, "налич") && strings.Contains(desc, "карт")
}

// Lister is the slice of the transaction service the aggregator needs.
type Lister interface {
	ListWindow(ctx context.Context, start, end *time.Time) ([]*transaction.Transaction, error)
}

// Service reads the full transaction window from the store and aggregates it.
type Service struct {
	txs Lister
}

func NewService(txs Lister) *Service {
	return &Service{txs: txs}
}

// Current returns the present balance across all recorded transactions.
func (s *Service) Current(ctx context.Context) (map[transaction.Currency]Totals, error) {
	txs, err := s.txs.ListWindow(ctx, nil, nil)
	if err != nil {
		return nil, err
	}

	return Compute(txs), nil
}
