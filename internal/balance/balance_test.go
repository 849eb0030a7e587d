package balance_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mywallet/mywallet/internal/balance"
	"github.com/mywallet/mywallet/internal/transaction"
)

func tx(amount int64, typ transaction.Type, currency transaction.Currency, category, description string) *transaction.Transaction {
	return &transaction.Transaction{
		Amount:      amount,
		Type:        typ,
		Currency:    currency,
		Category:    category,
		Description: description,
	}
}

func TestCompute_IncomeOnly(t *testing.T) {
	txs := []*transaction.Transaction{
		tx(10000, transaction.TypeIncome, transaction.CurrencyUAH, "Зарплата", ""),
		tx(5000, transaction.TypeIncome, transaction.CurrencyUAH, "Фриланс", ""),
	}

	got := balance.Compute(txs)

	assert.Len(t, got, 1)
	assert.Equal(t, int64(15000), got[transaction.CurrencyUAH].Income)
	assert.Zero(t, got[transaction.CurrencyUAH].Expense)
	assert.Equal(t, got[transaction.CurrencyUAH].Income, got[transaction.CurrencyUAH].Balance)
}

func TestCompute_PartitionsByCurrency(t *testing.T) {
	txs := []*transaction.Transaction{
		tx(100000, transaction.TypeIncome, transaction.CurrencyUAH, "Зарплата", ""),
		tx(30000, transaction.TypeExpense, transaction.CurrencyUAH, "Продукты", ""),
		tx(27000, transaction.TypeIncome, transaction.CurrencyUSD, "Проекты", ""),
	}

	got := balance.Compute(txs)

	assert.Len(t, got, 2)
	assert.Equal(t, int64(70000), got[transaction.CurrencyUAH].Balance)
	assert.Equal(t, int64(27000), got[transaction.CurrencyUSD].Balance)
	assert.NotContains(t, got, transaction.CurrencyEUR)
}

func TestCompute_ExcludesInternalTransfers(t *testing.T) {
	tests := []struct {
		name        string
		category    string
		description string
		excluded    bool
	}{
		{
			name:        "CashToCard",
			category:    transaction.CategoryTransfers,
			description: "наличные на карту",
			excluded:    true,
		},
		{
			name:        "CardMentionOnly",
			category:    transaction.CategoryTransfers,
			description: "положил на карту",
			excluded:    true,
		},
		{
			name:        "CaseInsensitive",
			category:    transaction.CategoryTransfers,
			description: "Наличные НА КАРТУ",
			excluded:    true,
		},
		{
			name:        "TransferToSomeoneElse",
			category:    transaction.CategoryTransfers,
			description: "другу за обед",
			excluded:    false,
		},
		{
			name:        "OtherCategoryWithCardDescription",
			category:    "Продукты",
			description: "наличные на карту",
			excluded:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := balance.Compute([]*transaction.Transaction{
				tx(5000, transaction.TypeExpense, transaction.CurrencyUAH, tt.category, tt.description),
			})

			if tt.excluded {
				assert.Zero(t, got[transaction.CurrencyUAH].Expense)
			} else {
				assert.Equal(t, int64(5000), got[transaction.CurrencyUAH].Expense)
			}
		})
	}
}

func TestCompute_EmptyCurrencyDefaultsToUAH(t *testing.T) {
	got := balance.Compute([]*transaction.Transaction{
		tx(100, transaction.TypeIncome, "", "Другое", ""),
	})

	assert.Equal(t, int64(100), got[transaction.CurrencyUAH].Income)
}

func TestCompute_Empty(t *testing.T) {
	assert.Empty(t, balance.Compute(nil))
}
