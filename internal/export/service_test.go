package export_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mywallet/mywallet/internal/export"
	"github.com/mywallet/mywallet/internal/transaction"
)

type fakeLister struct {
	txs []*transaction.Transaction
}

func (f *fakeLister) ListWindow(_ context.Context, _, _ *time.Time) ([]*transaction.Transaction, error) {
	return f.txs, nil
}

func TestWorkbook(t *testing.T) {
	date := time.Date(2025, 3, 10, 14, 30, 0, 0, time.UTC)

	lister := &fakeLister{txs: []*transaction.Transaction{
		{
			Amount:        120050,
			Type:          transaction.TypeExpense,
			Category:      "Продукты",
			Currency:      transaction.CurrencyUAH,
			Description:   "Ашан",
			PaymentMethod: transaction.PaymentCard,
			Date:          date,
		},
		{
			Amount:   500000,
			Type:     transaction.TypeIncome,
			Category: "Зарплата",
			Currency: transaction.CurrencyUAH,
			Date:     date,
		},
	}}

	service := export.NewService(lister)

	f, err := service.Workbook(context.Background(), date.AddDate(0, -1, 0), date)
	require.NoError(t, err)
	defer f.Close()

	assert.ElementsMatch(t,
		[]string{"Все транзакции", "Статистика по категориям", "Месячная сводка"},
		f.GetSheetList())

	// Transactions sheet: header plus one row per transaction.
	rows, err := f.GetRows("Все транзакции")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Дата", rows[0][0])
	assert.Equal(t, "10.03.2025 14:30", rows[1][0])
	assert.Equal(t, "Расход", rows[1][1])
	assert.Equal(t, "Продукты", rows[1][2])
	assert.Equal(t, "1200.5", rows[1][3])
	assert.Equal(t, "Доход", rows[2][1])

	// Category sheet carries both sections with percentages.
	catRows, err := f.GetRows("Статистика по категориям")
	require.NoError(t, err)

	var flat []string
	for _, row := range catRows {
		flat = append(flat, row...)
	}

	assert.Contains(t, flat, "РАСХОДЫ")
	assert.Contains(t, flat, "ДОХОДЫ")
	assert.Contains(t, flat, "100.0%")
	assert.Contains(t, flat, "ИТОГО")

	// Summary sheet shows the balance per currency in use.
	sumRows, err := f.GetRows("Месячная сводка")
	require.NoError(t, err)

	flat = flat[:0]
	for _, row := range sumRows {
		flat = append(flat, row...)
	}

	assert.Contains(t, flat, "Общий доход (UAH):")
	assert.Contains(t, flat, "Баланс (UAH):")
	assert.NotContains(t, flat, "Баланс (EUR):")
}

func TestWorkbook_Empty(t *testing.T) {
	service := export.NewService(&fakeLister{})

	f, err := service.Workbook(context.Background(), time.Now().AddDate(0, -1, 0), time.Now())
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Все транзакции")
	require.NoError(t, err)
	require.Len(t, rows, 1)
}

func TestFilename(t *testing.T) {
	name := export.NewService(&fakeLister{}).Filename()
	assert.Regexp(t, `^MyWallet_Export_\d{8}_\d{6}\.xlsx$`, name)
}
