package stats

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/mywallet/mywallet/internal/stats"
)

type Handler struct {
	svc *stats.Service
}

func NewHandler(svc *stats.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.report)
}

type entryResponse struct {
	Category string  `json:"category"`
	Total    int64   `json:"total"`
	Percent  float64 `json:"percent"`
}

type reportResponse struct {
	Period      stats.Period    `json:"period"`
	Start       time.Time       `json:"start"`
	End         time.Time       `json:"end"`
	Income      int64           `json:"income"`
	Expense     int64           `json:"expense"`
	Balance     int64           `json:"balance"`
	TopExpenses []entryResponse `json:"top_expenses"`
	TopIncome   []entryResponse `json:"top_income"`
}

func toEntries(entries []stats.Entry) []entryResponse {
	resp := make([]entryResponse, len(entries))
	for i, e := range entries {
		resp[i] = entryResponse{Category: e.Category, Total: e.Total, Percent: e.Percent}
	}

	return resp
}

func (h *Handler) report(w http.ResponseWriter, r *http.Request) {
	period := stats.Period(r.URL.Query().Get("period"))
	if period == "" {
		period = stats.PeriodMonth
	}

	if !period.Valid() {
		http.Error(w, "unknown period", http.StatusBadRequest)
		return
	}

	report, err := h.svc.Report(r.Context(), period)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	resp := reportResponse{
		Period:      report.Period,
		Start:       report.Start,
		End:         report.End,
		Income:      report.Income,
		Expense:     report.Expense,
		Balance:     report.Balance,
		TopExpenses: toEntries(report.TopExpenses),
		TopIncome:   toEntries(report.TopIncome),
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
