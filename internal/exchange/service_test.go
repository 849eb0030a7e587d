package exchange_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mywallet/mywallet/internal/exchange"
	"github.com/mywallet/mywallet/internal/transaction"
)

const ownerID int64 = 421337

func TestExchange(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := transaction.NewMockRepository(ctrl)
	service := exchange.NewService(repo, ownerID)

	var expense, income *transaction.Transaction

	repo.EXPECT().
		CreateExchangePair(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e, i *transaction.Transaction) error {
			expense, income = e, i
			return nil
		})

	// 100 UAH sold for 2.70 USD.
	result, err := service.Exchange(context.Background(), exchange.Params{
		FromCurrency: transaction.CurrencyUAH,
		FromAmount:   10000,
		ToCurrency:   transaction.CurrencyUSD,
		ToAmount:     270,
	})
	require.NoError(t, err)
	require.NotNil(t, expense)
	require.NotNil(t, income)

	assert.Equal(t, transaction.TypeExpense, expense.Type)
	assert.Equal(t, int64(10000), expense.Amount)
	assert.Equal(t, transaction.CurrencyUAH, expense.Currency)
	assert.Equal(t, transaction.CategoryExchange, expense.Category)
	assert.Equal(t, "→ 2.70 $", expense.Description)
	assert.Equal(t, ownerID, expense.UserTelegramID)

	assert.Equal(t, transaction.TypeIncome, income.Type)
	assert.Equal(t, int64(270), income.Amount)
	assert.Equal(t, transaction.CurrencyUSD, income.Currency)
	assert.Equal(t, transaction.CategoryExchange, income.Category)
	assert.Equal(t, "← 100.00 ₴", income.Description)

	require.NotNil(t, income.OriginalAmount)
	require.NotNil(t, income.OriginalCurrency)
	assert.Equal(t, int64(10000), *income.OriginalAmount)
	assert.Equal(t, transaction.CurrencyUAH, *income.OriginalCurrency)

	assert.Equal(t, expense.Date, income.Date)
	assert.InDelta(t, 0.027, result.Rate, 1e-9)
}

func TestExchange_Validation(t *testing.T) {
	tests := []struct {
		name    string
		params  exchange.Params
		wantErr error
	}{
		{
			name: "SameCurrency",
			params: exchange.Params{
				FromCurrency: transaction.CurrencyUAH,
				FromAmount:   100,
				ToCurrency:   transaction.CurrencyUAH,
				ToAmount:     100,
			},
			wantErr: exchange.ErrSameCurrency,
		},
		{
			name: "ZeroFromAmount",
			params: exchange.Params{
				FromCurrency: transaction.CurrencyUAH,
				ToCurrency:   transaction.CurrencyUSD,
				ToAmount:     100,
			},
			wantErr: transaction.ErrInvalidAmount,
		},
		{
			name: "NegativeToAmount",
			params: exchange.Params{
				FromCurrency: transaction.CurrencyUAH,
				FromAmount:   100,
				ToCurrency:   transaction.CurrencyUSD,
				ToAmount:     -1,
			},
			wantErr: transaction.ErrInvalidAmount,
		},
		{
			name: "UnknownCurrency",
			params: exchange.Params{
				FromCurrency: "GBP",
				FromAmount:   100,
				ToCurrency:   transaction.CurrencyUSD,
				ToAmount:     100,
			},
			wantErr: transaction.ErrInvalidCurrency,
		},
		{
			name: "FromOverCeiling",
			params: exchange.Params{
				FromCurrency: transaction.CurrencyUAH,
				FromAmount:   transaction.MaxAmount + 1,
				ToCurrency:   transaction.CurrencyUSD,
				ToAmount:     100,
			},
			wantErr: transaction.ErrAmountTooLarge,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := transaction.NewMockRepository(ctrl)
			service := exchange.NewService(repo, ownerID)

			_, err := service.Exchange(context.Background(), tt.params)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestExchange_ZeroToAmountAllowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := transaction.NewMockRepository(ctrl)
	service := exchange.NewService(repo, ownerID)

	repo.EXPECT().CreateExchangePair(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	result, err := service.Exchange(context.Background(), exchange.Params{
		FromCurrency: transaction.CurrencyUSD,
		FromAmount:   10000,
		ToCurrency:   transaction.CurrencyUAH,
	})
	require.NoError(t, err)
	assert.Zero(t, result.Rate)
}

func TestExchange_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := transaction.NewMockRepository(ctrl)
	service := exchange.NewService(repo, ownerID)

	repo.EXPECT().
		CreateExchangePair(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("connection reset"))

	_, err := service.Exchange(context.Background(), exchange.Params{
		FromCurrency: transaction.CurrencyUAH,
		FromAmount:   10000,
		ToCurrency:   transaction.CurrencyUSD,
		ToAmount:     270,
	})
	assert.ErrorContains(t, err, "recording exchange")
}
