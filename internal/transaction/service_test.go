package transaction_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mywallet/mywallet/internal/transaction"
)

const ownerID int64 = 421337

func TestService_Create(t *testing.T) {
	type testCase struct {
		name      string
		params    transaction.CreateParams
		setupMock func(m *transaction.MockRepository)
		wantErr   error
	}

	tests := []testCase{
		{
			name: "Success",
			params: transaction.CreateParams{
				Amount:      50000,
				Type:        transaction.TypeExpense,
				Category:    "Продукты",
				Description: "АТБ",
				Date:        time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC),
			},
			setupMock: func(m *transaction.MockRepository) {
				m.EXPECT().
					CreateTransaction(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, tx *transaction.Transaction) error {
						tx.ID = uuid.New()
						tx.CreatedAt = time.Now()
						return nil
					})
			},
		},
		{
			name: "NegativeAmountRejectedBeforeStore",
			params: transaction.CreateParams{
				Amount: -100,
				Type:   transaction.TypeExpense,
			},
			wantErr: transaction.ErrInvalidAmount,
		},
		{
			name: "ZeroAmountRejected",
			params: transaction.CreateParams{
				Amount: 0,
				Type:   transaction.TypeIncome,
			},
			wantErr: transaction.ErrInvalidAmount,
		},
		{
			name: "AmountAboveCeiling",
			params: transaction.CreateParams{
				Amount: transaction.MaxAmount + 1,
				Type:   transaction.TypeIncome,
			},
			wantErr: transaction.ErrAmountTooLarge,
		},
		{
			name: "UnknownType",
			params: transaction.CreateParams{
				Amount: 100,
				Type:   "refund",
			},
			wantErr: transaction.ErrInvalidType,
		},
		{
			name: "UnknownCurrency",
			params: transaction.CreateParams{
				Amount:   100,
				Type:     transaction.TypeExpense,
				Currency: "GBP",
			},
			wantErr: transaction.ErrInvalidCurrency,
		},
		{
			name: "UnknownPaymentMethod",
			params: transaction.CreateParams{
				Amount:        100,
				Type:          transaction.TypeExpense,
				PaymentMethod: "cheque",
			},
			wantErr: transaction.ErrInvalidPaymentMethod,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := transaction.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := transaction.NewService(repo, ownerID)
			got, err := svc.Create(context.Background(), tt.params)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			require.NotNil(t, got)
			assert.NotEmpty(t, got.ID)
			assert.Equal(t, ownerID, got.UserTelegramID)
		})
	}
}

func TestService_Create_DefaultsCurrency(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := transaction.NewMockRepository(ctrl)
	repo.EXPECT().
		CreateTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tx *transaction.Transaction) error {
			assert.Equal(t, transaction.CurrencyUAH, tx.Currency)
			return nil
		})

	svc := transaction.NewService(repo, ownerID)
	_, err := svc.Create(context.Background(), transaction.CreateParams{
		Amount: 100,
		Type:   transaction.TypeIncome,
	})
	require.NoError(t, err)
}

func TestService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := transaction.NewMockRepository(ctrl)
	repo.EXPECT().
		ListTransactions(gomock.Any(), transaction.Filter{
			UserID: ownerID,
			Limit:  transaction.DefaultListLimit,
		}).
		Return([]*transaction.Transaction{
			{ID: uuid.New()},
			{ID: uuid.New()},
		}, nil)

	svc := transaction.NewService(repo, ownerID)
	got, err := svc.List(context.Background(), transaction.Filter{})
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestService_List_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := transaction.NewMockRepository(ctrl)
	repo.EXPECT().
		ListTransactions(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("connection refused"))

	svc := transaction.NewService(repo, ownerID)
	_, err := svc.List(context.Background(), transaction.Filter{})
	assert.Error(t, err)
}

func TestService_ListWindow_UsesAggregateLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	repo := transaction.NewMockRepository(ctrl)
	repo.EXPECT().
		ListTransactions(gomock.Any(), transaction.Filter{
			UserID:    ownerID,
			StartDate: &start,
			Limit:     transaction.AggregateListLimit,
		}).
		Return(nil, nil)

	svc := transaction.NewService(repo, ownerID)
	_, err := svc.ListWindow(context.Background(), &start, nil)
	require.NoError(t, err)
}

func TestService_Update_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := transaction.NewMockRepository(ctrl)
	svc := transaction.NewService(repo, ownerID)

	err := svc.Update(context.Background(), &transaction.Transaction{
		Amount:   -5,
		Type:     transaction.TypeExpense,
		Currency: transaction.CurrencyUAH,
	})
	assert.ErrorIs(t, err, transaction.ErrInvalidAmount)

	err = svc.Update(context.Background(), &transaction.Transaction{
		Amount:        100,
		Type:          transaction.TypeExpense,
		Currency:      transaction.CurrencyUAH,
		PaymentMethod: "cheque",
	})
	assert.ErrorIs(t, err, transaction.ErrInvalidPaymentMethod)
}

func TestService_Delete_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()

	repo := transaction.NewMockRepository(ctrl)
	repo.EXPECT().
		DeleteTransaction(gomock.Any(), id).
		Return(transaction.ErrNotFound)

	svc := transaction.NewService(repo, ownerID)
	err := svc.Delete(context.Background(), id)
	assert.ErrorIs(t, err, transaction.ErrNotFound)
}

func TestService_CreateBatch_StopsOnInvalidRow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := transaction.NewMockRepository(ctrl)
	repo.EXPECT().
		CreateTransaction(gomock.Any(), gomock.Any()).
		Return(nil)

	svc := transaction.NewService(repo, ownerID)
	created, err := svc.CreateBatch(context.Background(), []transaction.CreateParams{
		{Amount: 100, Type: transaction.TypeIncome},
		{Amount: -1, Type: transaction.TypeExpense},
		{Amount: 200, Type: transaction.TypeExpense},
	})

	assert.ErrorIs(t, err, transaction.ErrInvalidAmount)
	assert.Len(t, created, 1)
}
