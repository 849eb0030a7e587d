package transaction

import (
	"time"

	"github.com/google/uuid"

	"github.com/mywallet/mywallet/internal/transaction"
)

type transactionResponse struct {
	ID               uuid.UUID                 `json:"id"`
	Amount           int64                     `json:"amount"`
	Type             transaction.Type          `json:"type"`
	Category         string                    `json:"category,omitempty"`
	Currency         transaction.Currency      `json:"currency"`
	Description      string                    `json:"description,omitempty"`
	PaymentMethod    transaction.PaymentMethod `json:"payment_method,omitempty"`
	Project          string                    `json:"project,omitempty"`
	Date             time.Time                 `json:"date"`
	CreatedAt        time.Time                 `json:"created_at"`
	AICategorized    bool                      `json:"ai_categorized,omitempty"`
	OriginalAmount   *int64                    `json:"original_amount,omitempty"`
	OriginalCurrency *transaction.Currency     `json:"original_currency,omitempty"`
	IsTeamFinance    bool                      `json:"is_team_finance,omitempty"`
}

func toResponse(tx *transaction.Transaction) transactionResponse {
	return transactionResponse{
		ID:               tx.ID,
		Amount:           tx.Amount,
		Type:             tx.Type,
		Category:         tx.Category,
		Currency:         tx.Currency,
		Description:      tx.Description,
		PaymentMethod:    tx.PaymentMethod,
		Project:          tx.Project,
		Date:             tx.Date,
		CreatedAt:        tx.CreatedAt,
		AICategorized:    tx.AICategorized,
		OriginalAmount:   tx.OriginalAmount,
		OriginalCurrency: tx.OriginalCurrency,
		IsTeamFinance:    tx.IsTeamFinance,
	}
}

func toResponseList(txs []*transaction.Transaction) []transactionResponse {
	resp := make([]transactionResponse, len(txs))
	for i, tx := range txs {
		resp[i] = toResponse(tx)
	}

	return resp
}
