package balance

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mywallet/mywallet/internal/balance"
	"github.com/mywallet/mywallet/internal/transaction"
)

type Handler struct {
	svc *balance.Service
}

func NewHandler(svc *balance.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.current)
}

type currencyBalanceResponse struct {
	Currency transaction.Currency `json:"currency"`
	Symbol   string               `json:"symbol"`
	Income   int64                `json:"income"`
	Expense  int64                `json:"expense"`
	Balance  int64                `json:"balance"`
}

func (h *Handler) current(w http.ResponseWriter, r *http.Request) {
	totals, err := h.svc.Current(r.Context())
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	resp := make([]currencyBalanceResponse, 0, len(totals))

	for _, currency := range transaction.Currencies() {
		t, ok := totals[currency]
		if !ok {
			continue
		}

		resp = append(resp, currencyBalanceResponse{
			Currency: currency,
			Symbol:   currency.Symbol(),
			Income:   t.Income,
			Expense:  t.Expense,
			Balance:  t.Balance,
		})
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
