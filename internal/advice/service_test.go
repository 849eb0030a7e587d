package advice_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mywallet/mywallet/internal/advice"
	"github.com/mywallet/mywallet/internal/transaction"
)

const ownerID int64 = 421337

func expense(category string, amount int64) *transaction.Transaction {
	return &transaction.Transaction{
		Amount:   amount,
		Type:     transaction.TypeExpense,
		Category: category,
		Currency: transaction.CurrencyUAH,
	}
}

func TestGenerate(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := advice.NewMockRepository(ctrl)
	adviser := advice.NewMockAdviser(ctrl)
	txs := advice.NewMockLister(ctrl)

	service := advice.NewService(repo, adviser, txs)

	window := []*transaction.Transaction{
		expense("Кафе", 30000),
		expense("Продукты", 70000),
	}

	txs.EXPECT().
		ListWindow(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(window, nil)
	txs.EXPECT().Owner().Return(ownerID)

	adviser.EXPECT().
		Recommendations(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, summary string) (string, error) {
			assert.Contains(t, summary, "Общие траты: 1000.00 грн")
			assert.Contains(t, summary, "- Продукты: 700.00 грн (70.0%)")
			return "1. Сократите траты на кафе.", nil
		})

	repo.EXPECT().
		CreateRecommendation(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, rec *advice.Recommendation) error {
			assert.Equal(t, ownerID, rec.UserTelegramID)
			assert.Equal(t, "1. Сократите траты на кафе.", rec.Text)
			return nil
		})

	rec, err := service.Generate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "1. Сократите траты на кафе.", rec.Text)
}

func TestGenerate_NoData(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := advice.NewMockRepository(ctrl)
	adviser := advice.NewMockAdviser(ctrl)
	txs := advice.NewMockLister(ctrl)

	service := advice.NewService(repo, adviser, txs)

	txs.EXPECT().ListWindow(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

	_, err := service.Generate(context.Background())
	assert.ErrorIs(t, err, advice.ErrNoData)
}

func TestSummarize(t *testing.T) {
	txs := []*transaction.Transaction{
		expense("Кафе", 25000),
		expense("Кафе", 25000),
		expense("Продукты", 50000),
		expense("", 100),
		{Amount: 500000, Type: transaction.TypeIncome, Category: "Зарплата"},
	}

	got := advice.Summarize(txs)

	assert.Contains(t, got, "Общие траты: 1001.00 грн")
	assert.Contains(t, got, "- Продукты: 500.00 грн")
	assert.Contains(t, got, "- Кафе: 500.00 грн")
	assert.Contains(t, got, "- "+transaction.CategoryOther+": 1.00 грн")
	assert.NotContains(t, got, "Зарплата")
}

func TestSummarize_Empty(t *testing.T) {
	got := advice.Summarize(nil)
	assert.Contains(t, got, "Общие траты: 0.00 грн")
}
