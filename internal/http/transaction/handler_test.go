package transaction_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	txHandler "github.com/mywallet/mywallet/internal/http/transaction"
	"github.com/mywallet/mywallet/internal/transaction"
)

const ownerID int64 = 421337

func newRouter(repo *transaction.MockRepository) *chi.Mux {
	h := txHandler.NewHandler(transaction.NewService(repo, ownerID))

	r := chi.NewRouter()
	r.Route("/transactions", h.Routes)

	return r
}

func TestHandler_Create_TeamFinance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var stored *transaction.Transaction

	repo := transaction.NewMockRepository(ctrl)
	repo.EXPECT().
		CreateTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tx *transaction.Transaction) error {
			tx.ID = uuid.New()
			tx.CreatedAt = time.Now()
			stored = tx
			return nil
		})

	body := `{"amount": 50000, "type": "expense", "category": "Продукты", "is_team_finance": true}`

	req := httptest.NewRequest(http.MethodPost, "/transactions/", strings.NewReader(body))
	rec := httptest.NewRecorder()
	newRouter(repo).ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, stored)
	assert.True(t, stored.IsTeamFinance)

	var resp struct {
		IsTeamFinance bool `json:"is_team_finance"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.IsTeamFinance)
}

func TestHandler_Update_TeamFinance(t *testing.T) {
	tests := []struct {
		name    string
		initial bool
		body    string
		want    bool
	}{
		{name: "SetFlag", initial: false, body: `{"is_team_finance": true}`, want: true},
		{name: "ClearFlag", initial: true, body: `{"is_team_finance": false}`, want: false},
		{name: "OmittedFlagKeepsValue", initial: true, body: `{"description": "обед"}`, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			id := uuid.New()

			var updated *transaction.Transaction

			repo := transaction.NewMockRepository(ctrl)
			repo.EXPECT().
				GetTransaction(gomock.Any(), id).
				Return(&transaction.Transaction{
					ID:             id,
					UserTelegramID: ownerID,
					Amount:         10000,
					Type:           transaction.TypeExpense,
					Category:       "Кафе",
					Currency:       transaction.CurrencyUAH,
					Date:           time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC),
					IsTeamFinance:  tt.initial,
				}, nil)
			repo.EXPECT().
				UpdateTransaction(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, tx *transaction.Transaction) error {
					updated = tx
					return nil
				})

			req := httptest.NewRequest(http.MethodPatch, "/transactions/"+id.String(), strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			newRouter(repo).ServeHTTP(rec, req)

			require.Equal(t, http.StatusOK, rec.Code)
			require.NotNil(t, updated)
			assert.Equal(t, tt.want, updated.IsTeamFinance)
		})
	}
}
