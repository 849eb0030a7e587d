package wallet_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mywallet/mywallet/internal/importer/wallet"
	"github.com/mywallet/mywallet/internal/transaction"
)

func TestParse(t *testing.T) {
	input := "Дата;Тип;Категория;Сумма;Валюта;Описание;Способ оплаты;Проект\n" +
		"01.03.2025;expense;Продукты;1 200,50;UAH;Ашан;Карта;\n" +
		"02.03.2025 14:30;доход;Фриланс;500;$;Оплата за проект;;Генетика\n"

	params, err := wallet.NewParser().Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, params, 2)

	first := params[0]
	assert.Equal(t, int64(120050), first.Amount)
	assert.Equal(t, transaction.TypeExpense, first.Type)
	assert.Equal(t, "Продукты", first.Category)
	assert.Equal(t, transaction.CurrencyUAH, first.Currency)
	assert.Equal(t, "Ашан", first.Description)
	assert.Equal(t, transaction.PaymentCard, first.PaymentMethod)
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), first.Date)

	second := params[1]
	assert.Equal(t, int64(50000), second.Amount)
	assert.Equal(t, transaction.TypeIncome, second.Type)
	assert.Equal(t, transaction.CurrencyUSD, second.Currency)
	assert.Equal(t, transaction.PaymentMethod(""), second.PaymentMethod)
	assert.Equal(t, "Генетика", second.Project)
	assert.Equal(t, time.Date(2025, 3, 2, 14, 30, 0, 0, time.UTC), second.Date)
}

func TestParse_SkipsPreambleAndFooter(t *testing.T) {
	input := "Экспорт кошелька\n" +
		";;\n" +
		"Дата;Тип;Сумма\n" +
		"01.03.2025;expense;100\n" +
		"Итого;;100\n"

	params, err := wallet.NewParser().Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, params, 1)
	assert.Equal(t, int64(10000), params[0].Amount)
}

func TestParse_MissingHeader(t *testing.T) {
	_, err := wallet.NewParser().Parse(strings.NewReader("a;b;c\n1;2;3\n"))
	assert.ErrorContains(t, err, "no header row found")
}

func TestParse_BadRow(t *testing.T) {
	tests := []struct {
		name    string
		row     string
		wantErr string
	}{
		{name: "UnknownType", row: "01.03.2025;savings;100", wantErr: "unknown transaction type"},
		{name: "BadAmount", row: "01.03.2025;expense;сто", wantErr: "parsing amount"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := "Дата;Тип;Сумма\n" + tt.row + "\n"

			_, err := wallet.NewParser().Parse(strings.NewReader(input))
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestParse_DefaultsCurrency(t *testing.T) {
	input := "Дата;Тип;Сумма\n01.03.2025;expense;100\n"

	params, err := wallet.NewParser().Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, params, 1)
	assert.Equal(t, transaction.DefaultCurrency, params[0].Currency)
}
