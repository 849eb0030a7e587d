// Package stats buckets transactions into reporting periods and computes
// category-level totals, percentages and top-N rankings.
package stats

import (
	"context"
	"sort"
	"time"

	"github.com/mywallet/mywallet/internal/transaction"
)

// TopCategories is how many breakdown entries reports display.
const TopCategories = 5

// uncategorized labels transactions recorded without a category.
const uncategorized = "Без категории"

// CategoryTotal is one breakdown entry, in cents.
type CategoryTotal struct {
	Category string
	Total    int64
}

// Total sums the amounts of transactions matching typ.
func Total(txs []*transaction.Transaction, typ transaction.Type) int64 {
	var total int64

	for _, tx := range txs {
		if tx.Type == typ {
			total += tx.Amount
		}
	}

	return total
}

// Breakdown aggregates per-category totals for transactions of typ, sorted
// descending by total. The sort is stable: categories with equal totals keep
// first-seen order. For expenses, the partner-payout category is dropped —
// that money is held on behalf of others, not spent.
func Breakdown(txs []*transaction.Transaction, typ transaction.Type) []CategoryTotal {
	totals := make(map[string]int64)

	var order []string

	for _, tx := range txs {
		if tx.Type != typ {
			continue
		}

		category := tx.Category
		if category == "" {
			category = uncategorized
		}

		if typ == transaction.TypeExpense && category == transaction.CategoryPartners {
			continue
		}

		if _, seen := totals[category]; !seen {
			order = append(order, category)
		}

		totals[category] += tx.Amount
	}

	breakdown := make([]CategoryTotal, 0, len(order))
	for _, category := range order {
		breakdown = append(breakdown, CategoryTotal{Category: category, Total: totals[category]})
	}

	sort.SliceStable(breakdown, func(i, j int) bool {
		return breakdown[i].Total > breakdown[j].Total
	})

	return breakdown
}

// Percentage returns part of whole as a percentage, 0 when whole is zero.
func Percentage(part, whole int64) float64 {
	if whole == 0 {
		return 0
	}

	return float64(part) / float64(whole) * 100
}

// TopN truncates a breakdown to its n largest entries. The remainder is
// dropped, not folded into an "other" bucket.
func TopN(breakdown []CategoryTotal, n int) []CategoryTotal {
	if len(breakdown) <= n {
		return breakdown
	}

	return breakdown[:n]
}

// Entry is a ranked breakdown row with its share of the type's total.
type Entry struct {
	Category string
	Total    int64
	Percent  float64
}

// Report is the statistics summary for one period.
type Report struct {
	Period Period
	Start  time.Time
	End    time.Time

	Income  int64
	Expense int64
	Balance int64

	TopExpenses []Entry
	TopIncome   []Entry
}

// Lister is the slice of the transaction service the engine needs.
type Lister interface {
	ListWindow(ctx context.Context, start, end *time.Time) ([]*transaction.Transaction, error)
}

// Service produces period reports from stored transactions.
type Service struct {
	txs Lister
	now func() time.Time
}

func NewService(txs Lister) *Service {
	return &Service{txs: txs, now: time.Now}
}

// Report aggregates the period ending now into totals and top category
// rankings. Percentages are computed against the breakdown baseline, so
// excluded partner payouts do not distort expense shares.
func (s *Service) Report(ctx context.Context, period Period) (*Report, error) {
	start, end, err := period.Range(s.now())
	if err != nil {
		return nil, err
	}

	txs, err := s.txs.ListWindow(ctx, &start, &end)
	if err != nil {
		return nil, err
	}

	income := Total(txs, transaction.TypeIncome)
	expense := Total(txs, transaction.TypeExpense)

	report := &Report{
		Period:  period,
		Start:   start,
		End:     end,
		Income:  income,
		Expense: expense,
		Balance: income - expense,
	}

	report.TopExpenses = rank(Breakdown(txs, transaction.TypeExpense))
	report.TopIncome = rank(Breakdown(txs, transaction.TypeIncome))

	return report, nil
}

func rank(breakdown []CategoryTotal) []Entry {
	var baseline int64
	for _, ct := range breakdown {
		baseline += ct.Total
	}

	top := TopN(breakdown, TopCategories)

	entries := make([]Entry, 0, len(top))
	for _, ct := range top {
		entries = append(entries, Entry{
			Category: ct.Category,
			Total:    ct.Total,
			Percent:  Percentage(ct.Total, baseline),
		})
	}

	return entries
}
