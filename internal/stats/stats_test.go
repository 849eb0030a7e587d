package stats_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mywallet/mywallet/internal/stats"
	"github.com/mywallet/mywallet/internal/transaction"
)

func expense(category string, amount int64) *transaction.Transaction {
	return &transaction.Transaction{
		Amount:   amount,
		Type:     transaction.TypeExpense,
		Category: category,
		Currency: transaction.CurrencyUAH,
	}
}

func income(category string, amount int64) *transaction.Transaction {
	return &transaction.Transaction{
		Amount:   amount,
		Type:     transaction.TypeIncome,
		Category: category,
		Currency: transaction.CurrencyUAH,
	}
}

func TestPeriodRange(t *testing.T) {
	// A Thursday afternoon.
	now := time.Date(2025, 3, 13, 15, 42, 10, 0, time.UTC)

	t.Run("Day", func(t *testing.T) {
		start, end, err := stats.PeriodDay.Range(now)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, 3, 13, 0, 0, 0, 0, time.UTC), start)
		assert.Equal(t, now, end)
	})

	t.Run("WeekStartsMonday", func(t *testing.T) {
		start, _, err := stats.PeriodWeek.Range(now)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), start)
		assert.Equal(t, time.Monday, start.Weekday())
	})

	t.Run("WeekOnSunday", func(t *testing.T) {
		sunday := time.Date(2025, 3, 16, 8, 0, 0, 0, time.UTC)
		start, _, err := stats.PeriodWeek.Range(sunday)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), start)
	})

	t.Run("MonthStartsDayOne", func(t *testing.T) {
		start, _, err := stats.PeriodMonth.Range(now)
		require.NoError(t, err)
		assert.Equal(t, 1, start.Day())
		assert.Zero(t, start.Hour())
		assert.Zero(t, start.Minute())
	})

	t.Run("YearStartsJanFirst", func(t *testing.T) {
		start, _, err := stats.PeriodYear.Range(now)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), start)
	})

	t.Run("AllUsesEpochFloor", func(t *testing.T) {
		start, _, err := stats.PeriodAll.Range(now)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), start)

		later := now.AddDate(3, 0, 0)
		start2, _, err := stats.PeriodAll.Range(later)
		require.NoError(t, err)
		assert.Equal(t, start, start2)
	})

	t.Run("Unknown", func(t *testing.T) {
		_, _, err := stats.Period("quarter").Range(now)
		assert.Error(t, err)
	})
}

func TestTotal(t *testing.T) {
	txs := []*transaction.Transaction{
		income("Зарплата", 100000),
		expense("Продукты", 30000),
		expense("Такси", 5000),
	}

	assert.Equal(t, int64(100000), stats.Total(txs, transaction.TypeIncome))
	assert.Equal(t, int64(35000), stats.Total(txs, transaction.TypeExpense))
}

func TestBreakdown_AggregatesAndSorts(t *testing.T) {
	txs := []*transaction.Transaction{
		expense("A", 100),
		expense("B", 300),
		expense("B", 50),
	}

	got := stats.Breakdown(txs, transaction.TypeExpense)

	require.Len(t, got, 2)
	assert.Equal(t, stats.CategoryTotal{Category: "B", Total: 350}, got[0])
	assert.Equal(t, stats.CategoryTotal{Category: "A", Total: 100}, got[1])
}

func TestBreakdown_TiesKeepFirstSeenOrder(t *testing.T) {
	txs := []*transaction.Transaction{
		expense("Кафе", 100),
		expense("Такси", 100),
		expense("Книги", 100),
	}

	got := stats.Breakdown(txs, transaction.TypeExpense)

	require.Len(t, got, 3)
	assert.Equal(t, "Кафе", got[0].Category)
	assert.Equal(t, "Такси", got[1].Category)
	assert.Equal(t, "Книги", got[2].Category)
}

func TestBreakdown_ExcludesPartnersFromExpenses(t *testing.T) {
	txs := []*transaction.Transaction{
		expense(transaction.CategoryPartners, 2000000),
		expense("Продукты", 30000),
	}

	got := stats.Breakdown(txs, transaction.TypeExpense)

	require.Len(t, got, 1)
	assert.Equal(t, "Продукты", got[0].Category)
}

func TestBreakdown_UncategorizedLabel(t *testing.T) {
	got := stats.Breakdown([]*transaction.Transaction{expense("", 100)}, transaction.TypeExpense)

	require.Len(t, got, 1)
	assert.Equal(t, "Без категории", got[0].Category)
}

func TestPercentage(t *testing.T) {
	assert.InDelta(t, 50.0, stats.Percentage(50, 100), 1e-9)
	assert.InDelta(t, 100.0, stats.Percentage(100, 100), 1e-9)
	assert.Zero(t, stats.Percentage(50, 0))
	assert.Zero(t, stats.Percentage(0, 100))

	got := stats.Percentage(33, 100)
	assert.GreaterOrEqual(t, got, 0.0)
	assert.LessOrEqual(t, got, 100.0)
}

func TestTopN(t *testing.T) {
	breakdown := []stats.CategoryTotal{
		{Category: "a", Total: 700},
		{Category: "b", Total: 600},
		{Category: "c", Total: 500},
		{Category: "d", Total: 400},
		{Category: "e", Total: 300},
		{Category: "f", Total: 200},
		{Category: "g", Total: 100},
	}

	got := stats.TopN(breakdown, stats.TopCategories)

	require.Len(t, got, 5)
	assert.Equal(t, "a", got[0].Category)
	assert.Equal(t, "e", got[4].Category)

	short := []stats.CategoryTotal{{Category: "x", Total: 1}}
	assert.Len(t, stats.TopN(short, stats.TopCategories), 1)
}
