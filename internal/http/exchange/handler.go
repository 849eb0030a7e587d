package exchange

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/mywallet/mywallet/internal/exchange"
	"github.com/mywallet/mywallet/internal/transaction"
)

type Handler struct {
	svc *exchange.Service
}

func NewHandler(svc *exchange.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.exchange)
}

type exchangeRequest struct {
	FromCurrency transaction.Currency `json:"from_currency"`
	FromAmount   int64                `json:"from_amount"`
	ToCurrency   transaction.Currency `json:"to_currency"`
	ToAmount     int64                `json:"to_amount"`
}

type legResponse struct {
	ID          uuid.UUID            `json:"id"`
	Amount      int64                `json:"amount"`
	Currency    transaction.Currency `json:"currency"`
	Description string               `json:"description"`
}

type exchangeResponse struct {
	Expense legResponse `json:"expense"`
	Income  legResponse `json:"income"`
	Rate    float64     `json:"rate"`
}

func toLeg(tx *transaction.Transaction) legResponse {
	return legResponse{
		ID:          tx.ID,
		Amount:      tx.Amount,
		Currency:    tx.Currency,
		Description: tx.Description,
	}
}

func (h *Handler) exchange(w http.ResponseWriter, r *http.Request) {
	var req exchangeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.svc.Exchange(r.Context(), exchange.Params{
		FromCurrency: req.FromCurrency,
		FromAmount:   req.FromAmount,
		ToCurrency:   req.ToCurrency,
		ToAmount:     req.ToAmount,
	})
	if err != nil {
		switch {
		case errors.Is(err, exchange.ErrSameCurrency),
			errors.Is(err, transaction.ErrInvalidAmount),
			errors.Is(err, transaction.ErrAmountTooLarge),
			errors.Is(err, transaction.ErrInvalidCurrency):
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		default:
			http.Error(w, "internal error", http.StatusInternalServerError)
		}

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(exchangeResponse{
		Expense: toLeg(result.Expense),
		Income:  toLeg(result.Income),
		Rate:    result.Rate,
	}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
